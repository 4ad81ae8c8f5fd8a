package keybench

import (
	"io"
	"os"
)

// DefaultCount is the number of keys per run.
const DefaultCount = 10000

// DefaultKeySizes is the key-size sweep in bytes.
var DefaultKeySizes = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}

// Config holds the sweep parameters.
type Config struct {
	Count    int
	KeySizes []int
	Variants []Variant
	Source   KeySource
	Out      io.Writer
}

// Option configures a Runner.
type Option func(*Config)

// WithCount sets the number of keys per run.
func WithCount(n int) Option {
	return func(c *Config) { c.Count = n }
}

// WithKeySizes sets the key-size sweep.
func WithKeySizes(sizes ...int) Option {
	return func(c *Config) { c.KeySizes = sizes }
}

// WithVariants sets the variants run for each key size, in order.
func WithVariants(vs ...Variant) Option {
	return func(c *Config) { c.Variants = vs }
}

// WithSource sets where key batches come from.
func WithSource(s KeySource) Option {
	return func(c *Config) { c.Source = s }
}

// WithOutput sets the report destination.
func WithOutput(w io.Writer) Option {
	return func(c *Config) { c.Out = w }
}

// Runner executes a sweep: for each key size, for each variant, generate a
// fresh batch, time the insert pass, then time the lookup pass.
type Runner struct {
	cfg      Config
	reporter *Reporter
}

// New returns a Runner; without options it runs the fixed two-variant sweep
// over DefaultKeySizes with DefaultCount random keys, reporting to stdout.
func New(opts ...Option) *Runner {
	cfg := Config{
		Count:    DefaultCount,
		KeySizes: DefaultKeySizes,
		Variants: Defaults(),
		Out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == nil {
		cfg.Source = NewRandomBytes(nil)
	}
	cfg.Count = max(cfg.Count, 0)
	return &Runner{cfg: cfg, reporter: NewReporter(cfg.Out)}
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run executes the sweep and returns the results in report order.
func (r *Runner) Run() []Result {
	r.reporter.Header(r.cfg.Count)

	results := make([]Result, 0, 2*len(r.cfg.KeySizes)*len(r.cfg.Variants))
	for _, size := range r.cfg.KeySizes {
		for _, v := range r.cfg.Variants {
			ins, get := r.RunOne(v, size)
			results = append(results, ins, get)
		}
	}
	return results
}

// RunOne benchmarks a single variant at one key size and reports both passes.
func (r *Runner) RunOne(v Variant, keySize int) (Result, Result) {
	keys := r.cfg.Source.Keys(r.cfg.Count, keySize)
	ins, get := Measure(v, keySize, keys)
	r.reporter.Report(ins)
	r.reporter.Report(get)
	return ins, get
}

// Measure runs both passes of v over keys of keySize bytes without reporting.
func Measure(v Variant, keySize int, keys []string) (Result, Result) {
	c := v.New(len(keys))
	defer release(c)

	ins := Result{Variant: v.Name, Pass: Insert, KeySize: keySize, Count: len(keys)}
	ins.Total = InsertPass(c, keys)
	settle(c)
	ins.Entries = Len(c)

	get := Result{Variant: v.Name, Pass: Lookup, KeySize: keySize, Count: len(keys), Entries: ins.Entries}
	get.Total, get.Checksum = LookupPass(c, keys)
	return ins, get
}
