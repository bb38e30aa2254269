package scanner

import (
	"context"
	"time"
)

// Bridges for the external scanner_test package, which cannot reach
// unexported identifiers directly.
const (
	InviteTTL       = inviteTTL
	MinPollInterval = minPollInterval
	MaxPollInterval = maxPollInterval
)

func (l *FilterLoader) SetNowFn(fn func() time.Time) { l.nowFn = fn }

func (s *PollScanner) Interval() time.Duration { return s.interval }

func (s *PollScanner) Cycle(ctx context.Context) bool { return s.cycle(ctx) }

func (s *StreamScanner) Loader() *FilterLoader { return s.loader }

func (s *StreamScanner) RefreshFilter(ctx context.Context, current *Filter) *Filter {
	return s.refreshFilter(ctx, current)
}
