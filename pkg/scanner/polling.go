package scanner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/chatradar/chatradar/pkg/domain"
)

// poll interval clamp bounds
const (
	minPollInterval = 15 * time.Second
	maxPollInterval = 600 * time.Second
)

// PollScanner scans chats on a timed loop over a request/response transport.
// Each cycle reloads the chat filter, fetches messages since the per-chat
// high-water mark and checks persistence-level dedup before recording, so
// restarts and duplicated polls never produce duplicate mentions.
type PollScanner struct {
	platform  string
	transport PollTransport
	loader    *FilterLoader
	matcher   Matcher
	sink      Sink
	dedup     DedupStore
	rules     *ruleCache
	interval  time.Duration
	cooldown  time.Duration
	limiter   *rate.Limiter
	tenant    *int64

	highWater map[string]time.Time // per-chat monotonic last-seen, forward only

	state  atomic.Int32
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// PollParams holds dependencies for a polling scanner
type PollParams struct {
	Platform string
	Transport PollTransport
	Loader   *FilterLoader
	Keywords KeywordStore
	Matcher  Matcher
	Sink     Sink
	Dedup    DedupStore
	Interval time.Duration // clamped to [15s, 600s]
	Cooldown time.Duration // wait after a rate-limit response, default 30s
	RPS      float64       // per-chat fetch pacing, default 1
	TenantID *int64
}

// NewPollScanner creates a polling scanner in the Stopped state
func NewPollScanner(params PollParams) *PollScanner {
	interval := params.Interval
	if interval < minPollInterval {
		interval = minPollInterval
	}
	if interval > maxPollInterval {
		interval = maxPollInterval
	}
	if params.Cooldown == 0 {
		params.Cooldown = 30 * time.Second
	}
	if params.RPS == 0 {
		params.RPS = 1
	}
	return &PollScanner{
		platform:  params.Platform,
		transport: params.Transport,
		loader:    params.Loader,
		matcher:   params.Matcher,
		sink:      params.Sink,
		dedup:     params.Dedup,
		rules:     newRuleCache(params.Keywords),
		interval:  interval,
		cooldown:  params.Cooldown,
		limiter:   rate.NewLimiter(rate.Limit(params.RPS), 1),
		tenant:    params.TenantID,
		highWater: map[string]time.Time{},
	}
}

// Start launches the poll loop. Idempotent when already running. Credential
// failures surface on the first fetch and stop the loop.
func (s *PollScanner) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CompareAndSwap(stateStopped, stateStarting) {
		lgr.Printf("[DEBUG] %s scanner already running, start ignored", s.platform)
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state.Store(stateRunning)

	s.wg.Add(1)
	go s.run(runCtx)

	lgr.Printf("[INFO] %s scanner started, poll interval %v", s.platform, s.interval)
	return nil
}

// Stop signals cancellation and waits for the current cycle to finish
func (s *PollScanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Load() == stateStopped {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.state.Store(stateStopped)
	lgr.Printf("[INFO] %s scanner stopped", s.platform)
}

// Status reports the scanner's operational state
func (s *PollScanner) Status() domain.ScannerStatus {
	return domain.ScannerStatus{
		Platform:    s.platform,
		Running:     s.state.Load() == stateRunning,
		MultiTenant: s.tenant == nil,
		TenantID:    s.tenant,
	}
}

func (s *PollScanner) run(ctx context.Context) {
	defer s.wg.Done()
	defer s.state.Store(stateStopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if !s.cycle(ctx) { // run immediately on start
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.cycle(ctx) {
				return
			}
		}
	}
}

// cycle runs one full poll pass. Returns false on a fatal condition
// (credentials), which terminates the scanner.
func (s *PollScanner) cycle(ctx context.Context) bool {
	filter, _, err := s.loader.Load(ctx)
	if err != nil {
		lgr.Printf("[WARN] %s filter load failed, skipping cycle: %v", s.platform, err)
		return true
	}
	s.rules.reset()

	for _, watch := range filter.Watches() {
		if ctx.Err() != nil {
			return false
		}
		if !s.pollChat(ctx, watch) {
			lgr.Printf("[ERROR] %s credentials rejected, scanner stopped, operator intervention required", s.platform)
			return false
		}
	}
	return true
}

// pollChat fetches and processes new messages for one chat. Returns false only
// on an authorization failure, all other errors skip the chat for this cycle.
func (s *PollScanner) pollChat(ctx context.Context, watch *domain.ChatWatch) bool {
	if err := s.limiter.Wait(ctx); err != nil {
		return true // context cancelled, cycle loop handles it
	}

	since := s.highWater[watch.PlatformChatID]
	msgs, err := s.transport.FetchMessages(ctx, watch.PlatformChatID, since)
	if err != nil {
		var rl *RateLimitError
		switch {
		case errors.Is(err, ErrUnauthorized):
			return false
		case errors.Is(err, ErrForbidden):
			lgr.Printf("[WARN] %s access denied to chat %q, skipped this cycle", s.platform, watch.Title)
			return true
		case errors.As(err, &rl):
			wait := rl.RetryAfter
			if wait == 0 {
				wait = s.cooldown
			}
			lgr.Printf("[WARN] %s rate limited on chat %q, cooling down %v", s.platform, watch.Title, wait)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
			}
			return true
		default:
			lgr.Printf("[WARN] %s fetch failed for chat %q: %v", s.platform, watch.Title, err)
			return true
		}
	}

	for _, msg := range msgs {
		s.processMessage(ctx, watch, msg)
		if msg.SentAt.After(s.highWater[watch.PlatformChatID]) {
			s.highWater[watch.PlatformChatID] = msg.SentAt
		}
	}
	return true
}

func (s *PollScanner) processMessage(ctx context.Context, watch *domain.ChatWatch, msg Message) {
	if msg.Text == "" {
		return
	}

	for _, tenantID := range watch.Watchers {
		tr := s.rules.get(ctx, tenantID)
		if len(tr.rules) == 0 {
			continue
		}

		for _, res := range s.matcher.Match(ctx, tr.rules, msg.Text, tr.settings) {
			exists, err := s.dedup.Exists(ctx, tenantID, s.platform, msg.MessageID, res.Keyword)
			if err != nil {
				lgr.Printf("[WARN] dedup check failed for tenant %d message %s: %v", tenantID, msg.MessageID, err)
				continue
			}
			if exists {
				continue
			}

			event := domain.MentionEvent{
				TenantID:       tenantID,
				Keyword:        res.Keyword,
				Message:        msg.Text,
				Platform:       s.platform,
				PlatformChatID: watch.PlatformChatID,
				ChatTitle:      watch.Title,
				ChatHandle:     watch.Handle,
				MessageID:      msg.MessageID,
				SenderID:       msg.SenderID,
				SenderName:     msg.SenderName,
				SenderHandle:   msg.SenderHandle,
				Similarity:     res.Similarity,
				OccurredAt:     msg.SentAt,
			}
			if _, err := s.sink.Record(ctx, event); err != nil {
				lgr.Printf("[ERROR] failed to record mention for tenant %d keyword %q: %v", tenantID, res.Keyword, err)
			}
		}
	}
}
