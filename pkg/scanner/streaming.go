package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/chatradar/chatradar/pkg/domain"
)

// scanner lifecycle states
const (
	stateStopped int32 = iota
	stateStarting
	stateRunning
)

// StreamScanner consumes a long-lived message stream from one chat platform,
// matches messages against watching tenants' keywords and hands matches to the
// sink. Stopped -> Starting -> Running -> Stopped; a scanner stopped by a fatal
// error is not restarted automatically.
type StreamScanner struct {
	platform  string
	transport StreamTransport
	loader    *FilterLoader
	matcher   Matcher
	sink      Sink
	rules     *ruleCache
	refresh   time.Duration
	tenant    *int64 // set for single-tenant (user session) scanners

	state  atomic.Int32
	mu     sync.Mutex // guards start/stop transitions
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// StreamParams holds dependencies for a streaming scanner
type StreamParams struct {
	Platform        string
	Transport       StreamTransport
	Loader          *FilterLoader
	Keywords        KeywordStore
	Matcher         Matcher
	Sink            Sink
	RefreshInterval time.Duration
	TenantID        *int64
}

// NewStreamScanner creates a streaming scanner in the Stopped state
func NewStreamScanner(params StreamParams) *StreamScanner {
	if params.RefreshInterval == 0 {
		params.RefreshInterval = time.Minute
	}
	return &StreamScanner{
		platform:  params.Platform,
		transport: params.Transport,
		loader:    params.Loader,
		matcher:   params.Matcher,
		sink:      params.Sink,
		rules:     newRuleCache(params.Keywords),
		refresh:   params.RefreshInterval,
		tenant:    params.TenantID,
	}
}

// Start connects the transport, subscribes to the current chat filter and
// launches the scan loop. Idempotent when already running. Missing or invalid
// credentials fail the start and leave the scanner Stopped.
func (s *StreamScanner) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CompareAndSwap(stateStopped, stateStarting) {
		lgr.Printf("[DEBUG] %s scanner already running, start ignored", s.platform)
		return nil
	}

	if err := s.transport.Connect(ctx); err != nil {
		s.state.Store(stateStopped)
		return fmt.Errorf("connect %s: %w", s.platform, err)
	}

	filter, _, err := s.loader.Load(ctx)
	if err != nil {
		_ = s.transport.Close()
		s.state.Store(stateStopped)
		return fmt.Errorf("load chat filter for %s: %w", s.platform, err)
	}

	if err := s.subscribe(ctx, filter.Identities()); err != nil {
		_ = s.transport.Close()
		s.state.Store(stateStopped)
		return fmt.Errorf("subscribe %s: %w", s.platform, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state.Store(stateRunning)

	s.wg.Add(1)
	go s.run(runCtx, filter)

	lgr.Printf("[INFO] %s scanner started, watching %d chats", s.platform, len(filter.Identities()))
	return nil
}

// Stop signals cancellation and closes the transport without waiting for
// in-flight message handling
func (s *StreamScanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Load() == stateStopped {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	if err := s.transport.Close(); err != nil {
		lgr.Printf("[WARN] %s transport close: %v", s.platform, err)
	}
	s.wg.Wait()
	s.state.Store(stateStopped)
	lgr.Printf("[INFO] %s scanner stopped", s.platform)
}

// Status reports the scanner's operational state
func (s *StreamScanner) Status() domain.ScannerStatus {
	return domain.ScannerStatus{
		Platform:    s.platform,
		Running:     s.state.Load() == stateRunning,
		MultiTenant: s.tenant == nil,
		TenantID:    s.tenant,
	}
}

// run is the single scan loop: inbound messages and periodic filter refresh
// are handled sequentially on one goroutine
func (s *StreamScanner) run(ctx context.Context, filter *Filter) {
	defer s.wg.Done()
	defer s.state.Store(stateStopped)

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			filter = s.refreshFilter(ctx, filter)

		case msg, ok := <-s.transport.Messages():
			if !ok {
				s.reportStreamEnd()
				return
			}
			s.handleMessage(ctx, filter, msg)
		}
	}
}

// reportStreamEnd logs why the message stream closed. Authorization loss needs
// an operator to re-auth the session, the scanner stays Stopped.
func (s *StreamScanner) reportStreamEnd() {
	err := s.transport.Err()
	switch {
	case err == nil:
		lgr.Printf("[INFO] %s message stream closed", s.platform)
	case errors.Is(err, ErrUnauthorized):
		lgr.Printf("[ERROR] %s authorization lost, scanner stopped, re-auth required: %v", s.platform, err)
	default:
		lgr.Printf("[ERROR] %s message stream failed, scanner stopped: %v", s.platform, err)
	}
}

// refreshFilter reloads the chat filter and resubscribes only when the
// identity set actually changed
func (s *StreamScanner) refreshFilter(ctx context.Context, current *Filter) *Filter {
	filter, changed, err := s.loader.Load(ctx)
	if err != nil {
		lgr.Printf("[WARN] %s filter refresh failed, keeping previous: %v", s.platform, err)
		return current
	}
	if changed {
		if err := s.subscribe(ctx, filter.Identities()); err != nil {
			lgr.Printf("[WARN] %s resubscribe failed, keeping previous filter: %v", s.platform, err)
			return current
		}
	}
	s.rules.reset() // keyword rules are reloaded lazily each cycle
	return filter
}

// subscribe updates the transport subscription, honoring a single
// platform-mandated wait on rate limiting
func (s *StreamScanner) subscribe(ctx context.Context, identities []string) error {
	err := s.transport.Subscribe(ctx, identities)
	var rl *RateLimitError
	if errors.As(err, &rl) {
		lgr.Printf("[WARN] %s subscribe rate limited, waiting %v", s.platform, rl.RetryAfter)
		select {
		case <-time.After(rl.RetryAfter):
		case <-ctx.Done():
			return ctx.Err()
		}
		err = s.transport.Subscribe(ctx, identities)
	}
	return err
}

// handleMessage fans one inbound message out to all watching tenants
func (s *StreamScanner) handleMessage(ctx context.Context, filter *Filter, msg Message) {
	if msg.Text == "" {
		return
	}

	watch := filter.Lookup(msg.ChatID, msg.ChatHandle)
	if watch == nil {
		return
	}

	for _, tenantID := range watch.Watchers {
		tr := s.rules.get(ctx, tenantID)
		if len(tr.rules) == 0 {
			continue
		}

		for _, res := range s.matcher.Match(ctx, tr.rules, msg.Text, tr.settings) {
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
