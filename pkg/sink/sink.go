package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/chatradar/chatradar/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/broadcaster.go -pkg mocks -skip-ensure -fmt goimports . Broadcaster

// Store persists mention events and assigns ids
type Store interface {
	Create(ctx context.Context, event domain.MentionEvent) (int64, error)
}

// Notifier accepts mention ids for asynchronous delivery. Enqueue must not block.
type Notifier interface {
	Enqueue(mentionID int64) bool
}

// Broadcaster accepts persisted mentions for realtime fan-out
type Broadcaster interface {
	Publish(mention domain.Mention)
}

// Sink persists mention events and triggers downstream dispatch. The insert is
// the only latency-sensitive step, notification and broadcast hand-offs are
// non-blocking. Safe for concurrent use, all state lives in the collaborators.
type Sink struct {
	store       Store
	notifier    Notifier
	broadcaster Broadcaster
	nowFn       func() time.Time
}

// New creates a sink. notifier and broadcaster may be nil when the
// corresponding pipeline is disabled.
func New(store Store, notifier Notifier, broadcaster Broadcaster) *Sink {
	return &Sink{store: store, notifier: notifier, broadcaster: broadcaster, nowFn: time.Now}
}

// Record persists the event and returns the assigned mention id. The mention
// is durable before either the notification queue or the broadcaster sees it.
func (s *Sink) Record(ctx context.Context, event domain.MentionEvent) (int64, error) {
	id, err := s.store.Create(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("insert mention: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Enqueue(id)
	}
	if s.broadcaster != nil {
		s.broadcaster.Publish(domain.Mention{MentionEvent: event, ID: id, CreatedAt: s.nowFn()})
	}
	return id, nil
}
