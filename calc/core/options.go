package core

const (
	// DefaultTableSize is the number of table entries used when no
	// option overrides it. Seven entries give roughly twelve correct digits.
	DefaultTableSize = 7
	// MaxTableSize bounds the table length. Beyond it the smallest
	// multiplier 1+10^-n is no longer distinct from 1 at float64 precision
	// in a useful way.
	MaxTableSize = 15
)

// Config defines the precision settings shared by all engines.
type Config struct {
	// TableSize is the number of constant table entries (digits) per engine.
	TableSize int
	// Tolerance is the absolute stopping threshold of iterative solvers.
	Tolerance float64
	// MaxIterations caps iterative solvers.
	MaxIterations int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings of a classic ten-digit calculator.
func DefaultConfig() Config {
	return Config{
		TableSize:     DefaultTableSize,
		Tolerance:     1e-15,
		MaxIterations: 1024,
	}
}

// WithTableSize sets the number of table entries. Values outside
// [1, MaxTableSize] are ignored.
func WithTableSize(n int) Option {
	return func(cfg *Config) {
		if n >= 1 && n <= MaxTableSize {
			cfg.TableSize = n
		}
	}
}

// WithTolerance sets the convergence tolerance of iterative solvers.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.Tolerance = tol
		}
	}
}

// WithMaxIterations sets the iteration cap of iterative solvers.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxIterations = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
