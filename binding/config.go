package binding

import "go.uber.org/zap"

// Config holds the options of one bind call.
type Config struct {
	// IgnoreCase matches segments and the option prefix regardless of case,
	// dashes and underscores.
	IgnoreCase bool
	// Mandatory turns a key without a matching member into an error.
	Mandatory bool
	// OptionPrefix restricts binding to keys starting with it. The prefix
	// is removed before the key is split.
	OptionPrefix string
	// Logger receives per-key decisions at debug level. Nil disables logging.
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}
