// Package exact implements the SMT-style incremental placement & routing
// engine (§4.J): given a logic network and a clocking scheme, it searches
// candidate grid dimensions in increasing-area order, attempting to place
// every vertex and route every edge under the clocking discipline, and
// commits the first satisfiable dimension found.
package exact

import "time"

// Config collects every knob recognized by the exact engine (§6). It is
// built via functional options, the teacher's builder.BuilderOption idiom
// generalized from graph construction to engine configuration.
type Config struct {
	UpperBound        int
	FixedSize         int
	VerticalOffset    bool
	Crossings         bool
	CrossingsLimit    int
	WireLimit         int
	MinimizeCrossings bool
	IOPorts           bool
	BorderIO          bool
	Desynchronize     bool
	ArtificialLatches bool
	StraightInverters bool
	SchemeName        string
	TopoliNano        bool
	TwoDDWave         bool
	Timeout           time.Duration
	NumThreads        int
}

// Option mutates a Config under construction.
type Option func(*Config)

// DefaultConfig returns the zero-value-sane defaults: single-threaded,
// crossings disabled, no explicit timeout (the caller must opt in via
// WithTimeout for a bounded search).
func DefaultConfig() Config {
	return Config{NumThreads: 1}
}

// New applies opts over DefaultConfig.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithUpperBound(n int) Option        { return func(c *Config) { c.UpperBound = n } }
func WithFixedSize(n int) Option         { return func(c *Config) { c.FixedSize = n } }
func WithCrossings(allow bool) Option    { return func(c *Config) { c.Crossings = allow } }
func WithCrossingsLimit(n int) Option    { return func(c *Config) { c.CrossingsLimit = n } }
func WithWireLimit(n int) Option         { return func(c *Config) { c.WireLimit = n } }
func WithMinimizeCrossings(b bool) Option { return func(c *Config) { c.MinimizeCrossings = b } }
func WithIOPorts(b bool) Option          { return func(c *Config) { c.IOPorts = b } }
func WithBorderIO(b bool) Option         { return func(c *Config) { c.BorderIO = b } }
func WithDesynchronize(b bool) Option    { return func(c *Config) { c.Desynchronize = b } }
func WithArtificialLatches(b bool) Option { return func(c *Config) { c.ArtificialLatches = b } }
func WithStraightInverters(b bool) Option { return func(c *Config) { c.StraightInverters = b } }
func WithScheme(name string) Option      { return func(c *Config) { c.SchemeName = name } }
func WithTopoliNano(b bool) Option       { return func(c *Config) { c.TopoliNano = b } }
func WithTwoDDWave(b bool) Option        { return func(c *Config) { c.TwoDDWave = b } }
func WithTimeout(d time.Duration) Option { return func(c *Config) { c.Timeout = d } }
func WithNumThreads(n int) Option {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.NumThreads = n
	}
}
