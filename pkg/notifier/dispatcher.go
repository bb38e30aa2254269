package notifier

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/chatradar/chatradar/pkg/domain"
)

//go:generate moq -out mocks/mention_store.go -pkg mocks -skip-ensure -fmt goimports . MentionStore
//go:generate moq -out mocks/policy_store.go -pkg mocks -skip-ensure -fmt goimports . PolicyStore
//go:generate moq -out mocks/email_sender.go -pkg mocks -skip-ensure -fmt goimports . EmailSender
//go:generate moq -out mocks/platform_sender.go -pkg mocks -skip-ensure -fmt goimports . PlatformSender

// MentionStore reloads persisted mentions by id
type MentionStore interface {
	Get(ctx context.Context, id int64) (*domain.Mention, error)
}

// PolicyStore provides per-tenant notification policies
type PolicyStore interface {
	GetNotificationPolicy(ctx context.Context, tenantID int64) (domain.NotificationPolicy, error)
}

// EmailSender delivers one mention notification by email
type EmailSender interface {
	SendEmail(ctx context.Context, address, keyword, excerpt, link string) error
}

// PlatformSender delivers one mention notification via a platform bot
type PlatformSender interface {
	SendMessage(ctx context.Context, target, keyword, excerpt, link string) error
}

// Params holds dispatcher configuration and collaborators
type Params struct {
	Mentions  MentionStore
	Policies  PolicyStore
	Email     EmailSender
	Platform  PlatformSender
	QueueSize int // default 2000
	Workers   int // default 4
}

// Dispatcher decouples mention recording from notification delivery: a bounded
// FIFO queue of mention ids drained by a fixed worker pool. Enqueue never
// blocks the caller, a full queue drops the notification (the mention itself
// is already durable and visible through the UI).
type Dispatcher struct {
	mentions MentionStore
	policies PolicyStore
	email    EmailSender
	platform PlatformSender
	queue    chan int64
	workers  int

	dropped atomic.Int64
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
}

// New creates a stopped dispatcher
func New(params Params) *Dispatcher {
	if params.QueueSize == 0 {
		params.QueueSize = 2000
	}
	if params.Workers == 0 {
		params.Workers = 4
	}
	return &Dispatcher{
		mentions: params.Mentions,
		policies: params.Policies,
		email:    params.Email,
		platform: params.Platform,
		queue:    make(chan int64, params.QueueSize),
		workers:  params.Workers,
	}
}

// Start launches the worker pool
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx, d.cancel = context.WithCancel(ctx)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	lgr.Printf("[INFO] notification dispatcher started with %d workers, queue capacity %d", d.workers, cap(d.queue))
}

// Stop cancels the workers and waits for them to finish the current item
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
	lgr.Printf("[INFO] notification dispatcher stopped, %d notifications dropped total", d.dropped.Load())
}

// Enqueue submits a mention id for delivery. Never blocks: when the queue is
// full the notification is dropped and counted, scanning is unaffected.
func (d *Dispatcher) Enqueue(mentionID int64) bool {
	select {
	case d.queue <- mentionID:
		return true
	default:
		d.dropped.Add(1)
		lgr.Printf("[WARN] notification queue full, dropped mention %d", mentionID)
		return false
	}
}

// Dropped returns the number of notifications dropped on queue overflow
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case id := <-d.queue:
			d.process(ctx, id)
		}
	}
}

// process delivers one mention to all enabled channels. Each channel is
// attempted independently, a failure in one never blocks the other and never
// crashes the worker.
func (d *Dispatcher) process(ctx context.Context, mentionID int64) {
	mention, err := d.mentions.Get(ctx, mentionID)
	if err != nil {
		lgr.Printf("[WARN] failed to load mention %d for notification: %v", mentionID, err)
		return
	}

	policy, err := d.policies.GetNotificationPolicy(ctx, mention.TenantID)
	if err != nil {
		lgr.Printf("[WARN] failed to load notification policy for tenant %d: %v", mention.TenantID, err)
		return
	}

	if policy.Mode == domain.NotifyDisabled {
		return
	}
	if !policy.EmailEnabled && !policy.TelegramEnabled {
		return
	}
	if policy.Mode == domain.NotifyLeads && !mention.IsLead {
		return
	}
	if policy.Mode == domain.NotifyDigest {
		return // digest delivery belongs to the external batch job
	}

	payload := domain.NewMentionPayload(mention, time.Now())
	excerpt := excerptOf(payload.Message)

	if policy.EmailEnabled && policy.Email != "" && d.email != nil {
		if err := d.email.SendEmail(ctx, policy.Email, mention.Keyword, excerpt, payload.MessageLink); err != nil {
			lgr.Printf("[WARN] email delivery failed for mention %d tenant %d: %v", mentionID, mention.TenantID, err)
		}
	}
	if policy.TelegramEnabled && policy.TelegramTarget != "" && d.platform != nil {
		if err := d.platform.SendMessage(ctx, policy.TelegramTarget, mention.Keyword, excerpt, payload.MessageLink); err != nil {
			lgr.Printf("[WARN] telegram delivery failed for mention %d tenant %d: %v", mentionID, mention.TenantID, err)
		}
	}
}

// excerptOf trims a sanitized message to notification size
func excerptOf(message string) string {
	const maxLen = 200
	runes := []rune(message)
	if len(runes) <= maxLen {
		return message
	}
	return string(runes[:maxLen]) + "…"
}
