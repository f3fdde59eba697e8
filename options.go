package sigslot

import "github.com/rs/zerolog"

// Option configures a Signal at construction time.
type Option func(*settings)

// settings holds configuration common to all Signal instantiations.
type settings struct {
	logger zerolog.Logger
	name   string
}

func defaultSettings() settings {
	return settings{
		logger: zerolog.Nop(),
	}
}

// WithLogger installs a logger for debug-level diagnostics: connects,
// disconnects, block state changes, emissions and weak self-disconnects.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithName tags every log line with a signal name. Useful when several
// signals share one logger. Has no effect without WithLogger.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}
