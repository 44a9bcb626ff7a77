package usersig

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Option is a function that can be passed to New to configure the Signer.
type Option func(s *Signer)

// WithClock configures the Signer to use the specified clock.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(clock clock.Clock) Option {
	return func(s *Signer) {
		s.clock = clock
	}
}

// WithLogger configures the Signer to emit debug logs through the given
// logger. By default signing is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Signer) {
		s.log = logger
	}
}
