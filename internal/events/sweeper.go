// internal/events/sweeper.go
package events

import (
	"context"
	"log"
	"time"
)

// Sweeper removes expired events on a daily schedule. It fires once at
// startup to catch anything that expired while the service was down, then at
// every following midnight.
type Sweeper struct {
	service Service
	now     func() time.Time
}

// NewSweeper creates a sweeper over the given scheduling engine.
func NewSweeper(service Service) *Sweeper {
	return &Sweeper{service: service, now: time.Now}
}

// Run blocks until the context is cancelled, sweeping expired events once
// immediately and then at each midnight.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	for {
		timer := time.NewTimer(s.untilNextMidnight())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	deleted, err := s.service.DeleteExpiredEvents(ctx)
	if err != nil {
		log.Printf("event sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("event sweep removed %d expired event(s)", deleted)
	}
}

func (s *Sweeper) untilNextMidnight() time.Duration {
	now := s.now().UTC()
	next := toDate(now).Add(24 * time.Hour)
	return next.Sub(now)
}
