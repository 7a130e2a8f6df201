// Package timegate picks an action based on the current Unix time.
package timegate

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/whitebox/pkg/clock"
	"github.com/dmitrymomot/whitebox/pkg/logger"
)

const (
	ActionA = "Action A"
	ActionB = "Action B"
)

// DefaultThreshold is the Unix second from which ActionB is selected.
const DefaultThreshold int64 = 10

// Selector chooses ActionA before the threshold and ActionB from it on.
type Selector struct {
	clock     clock.Clock
	threshold int64
	log       *slog.Logger
}

type Option func(*Selector)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(s *Selector) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithThreshold sets the Unix second at which the selection flips to ActionB.
func WithThreshold(sec int64) Option {
	return func(s *Selector) {
		s.threshold = sec
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Selector) {
		s.log = l
	}
}

func New(opts ...Option) *Selector {
	s := &Selector{
		clock:     clock.System,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select reads the clock once and returns ActionA when the whole Unix
// seconds are below the threshold, ActionB otherwise.
func (s *Selector) Select(ctx context.Context) string {
	sec := s.clock.Now().Unix()

	action := ActionB
	if sec < s.threshold {
		action = ActionA
	}

	if s.log != nil {
		s.log.DebugContext(ctx, "action selected",
			slog.Int64("unix", sec),
			slog.Int64("threshold", s.threshold),
			logger.Result(action),
		)
	}
	return action
}
