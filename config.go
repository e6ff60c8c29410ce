package seqmatch

// Config controls a few knobs a pattern builder otherwise defaults on its
// own. There is deliberately little here: the matching algorithm itself has
// no tunable strategy to select between (see package doc, Non-goals), so
// Config is limited to the handful of values a caller building many large
// patterns might reasonably want control over.
type Config struct {
	// MaxQuantifier is the upper bound substituted for "no limit" by
	// ZeroOrMore and OneOrMore. It only needs to be large enough that the
	// Finder runs out of items before it runs out of count — any positive
	// value >= the longest sequence a pattern will ever be matched against
	// works. Default: the largest representable int.
	MaxQuantifier int

	// GroupCapacityHint pre-sizes the slice each capturing group uses to
	// accumulate spans during a single matching attempt. Too low just means
	// an extra allocation or two on a pattern with many repeated captures;
	// it is never a correctness concern. Default: 4.
	GroupCapacityHint int
}

// DefaultConfig returns the configuration Start uses.
func DefaultConfig() Config {
	return Config{
		MaxQuantifier:     maxQuantifier,
		GroupCapacityHint: 4,
	}
}

// Validate reports whether c's fields are in range.
func (c Config) Validate() error {
	if c.MaxQuantifier < 1 {
		return &ConfigError{Field: "MaxQuantifier", Message: "must be >= 1"}
	}
	if c.GroupCapacityHint < 0 {
		return &ConfigError{Field: "GroupCapacityHint", Message: "must be >= 0"}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "seqmatch: invalid config: " + e.Field + ": " + e.Message
}
