package machine

// Config configures an automaton.
//
// The zero value is not valid; start from DefaultConfig and adjust with the
// WithX setters.
type Config struct {
	// Logger receives diagnostics. It is never consulted for control flow.
	//
	// Default: NopLogger
	Logger Logger

	// UsePrefilter enables candidate search in LongestSubstring mode.
	// Before walking from an offset, the engine jumps to the next offset
	// whose upcoming symbols can start an accepting run. Results are
	// identical with and without the prefilter.
	//
	// Default: true
	UsePrefilter bool

	// MaxPrefilterLiterals bounds the number of start literals extracted
	// from the table. Tables whose start region fans out wider than this
	// fall back to shorter literals, and eventually to no prefilter.
	//
	// Default: 64
	MaxPrefilterLiterals int

	// MaxPrefilterLen is the longest start literal extracted.
	//
	// Default: 3 symbols
	MaxPrefilterLen int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Logger:               NopLogger{},
		UsePrefilter:         true,
		MaxPrefilterLiterals: 64,
		MaxPrefilterLen:      3,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.Logger == nil {
		return &Error{
			Kind:    InvalidConfig,
			Message: "Logger must not be nil",
		}
	}

	if c.MaxPrefilterLiterals <= 0 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "MaxPrefilterLiterals must be > 0",
		}
	}

	if c.MaxPrefilterLen < 1 || c.MaxPrefilterLen > 16 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "MaxPrefilterLen must be in range [1, 16]",
		}
	}

	return nil
}

// WithLogger returns a new config with the specified logger
func (c Config) WithLogger(l Logger) Config {
	c.Logger = l
	return c
}

// WithPrefilter returns a new config with the prefilter enabled/disabled
func (c Config) WithPrefilter(enabled bool) Config {
	c.UsePrefilter = enabled
	return c
}

// WithMaxPrefilterLiterals returns a new config with the specified literal limit
func (c Config) WithMaxPrefilterLiterals(n int) Config {
	c.MaxPrefilterLiterals = n
	return c
}

// WithMaxPrefilterLen returns a new config with the specified literal length
func (c Config) WithMaxPrefilterLen(n int) Config {
	c.MaxPrefilterLen = n
	return c
}
