package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/pkg/matcher"
)

//go:generate moq -out mocks/chat_store.go -pkg mocks -skip-ensure -fmt goimports . ChatStore
//go:generate moq -out mocks/plan_policy.go -pkg mocks -skip-ensure -fmt goimports . PlanPolicy
//go:generate moq -out mocks/keyword_store.go -pkg mocks -skip-ensure -fmt goimports . KeywordStore
//go:generate moq -out mocks/invite_resolver.go -pkg mocks -skip-ensure -fmt goimports . InviteResolver
//go:generate moq -out mocks/sink.go -pkg mocks -skip-ensure -fmt goimports . Sink
//go:generate moq -out mocks/matcher.go -pkg mocks -skip-ensure -fmt goimports . Matcher
//go:generate moq -out mocks/stream_transport.go -pkg mocks -skip-ensure -fmt goimports . StreamTransport
//go:generate moq -out mocks/poll_transport.go -pkg mocks -skip-ensure -fmt goimports . PollTransport
//go:generate moq -out mocks/dedup_store.go -pkg mocks -skip-ensure -fmt goimports . DedupStore

// ErrUnauthorized indicates missing or invalid platform credentials.
// Fatal at startup, terminal mid-run.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates access denied to a specific chat, not the platform
var ErrForbidden = errors.New("forbidden")

// RateLimitError is a platform-imposed wait signal for a single operation
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %v", e.RetryAfter)
}

// Message is a normalized inbound chat message, platform independent
type Message struct {
	ChatID       string
	ChatHandle   string
	ChatTitle    string
	MessageID    string
	SenderID     string
	SenderName   string
	SenderHandle string
	Text         string
	SentAt       time.Time
}

// ChatRef is one enabled chat record from the external chat store
type ChatRef struct {
	ID            int64
	NativeID      string // platform-native identity, empty if unknown
	Handle        string // public handle/username, empty for private chats
	InviteToken   string // invite link token requiring resolution
	Title         string
	IsGlobal      bool
	OwnerTenantID int64
}

// ResolvedChat is the concrete identity a scanner subscribes to
type ResolvedChat struct {
	NativeID string
	Handle   string
	Title    string
}

// ChatStore lists chats and their subscribers from the external store
type ChatStore interface {
	ListEnabledChats(ctx context.Context, platform string) ([]ChatRef, error)
	ListWatchers(ctx context.Context, chatID int64) ([]int64, error)
}

// PlanPolicy decides whether a tenant's plan allows tracking
type PlanPolicy interface {
	Permitted(ctx context.Context, tenantID int64) (bool, error)
}

// KeywordStore provides tenant keyword rules and matching overrides
type KeywordStore interface {
	ListEnabledKeywords(ctx context.Context, tenantID int64) ([]domain.KeywordRule, error)
	MatcherSettings(ctx context.Context, tenantID int64) (domain.MatcherSettings, error)
}

// InviteResolver resolves an invite token to a concrete chat identity
type InviteResolver interface {
	Resolve(ctx context.Context, token string) (ResolvedChat, error)
}

// Sink accepts matched mention events for persistence and fan-out
type Sink interface {
	Record(ctx context.Context, event domain.MentionEvent) (int64, error)
}

// Matcher evaluates keyword rules against a message
type Matcher interface {
	Match(ctx context.Context, rules []domain.KeywordRule, message string, settings domain.MatcherSettings) []matcher.Result
}

// StreamTransport is the long-lived event-stream connection to a chat platform
type StreamTransport interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context, identities []string) error
	Messages() <-chan Message
	Err() error // close reason after Messages is closed
	Close() error
}

// PollTransport fetches chat history over request/response transport
type PollTransport interface {
	FetchMessages(ctx context.Context, chatID string, since time.Time) ([]Message, error)
}

// DedupStore answers whether a mention is already recorded, used by the
// polling scanner to survive restarts and duplicated polls
type DedupStore interface {
	Exists(ctx context.Context, tenantID int64, platform, messageID, keyword string) (bool, error)
}

// tenantRules caches one tenant's rules and settings for a scan cycle
type tenantRules struct {
	rules    []domain.KeywordRule
	settings domain.MatcherSettings
}

// ruleCache loads tenant keyword rules lazily and keeps them for one cycle
type ruleCache struct {
	store  KeywordStore
	loaded map[int64]*tenantRules
}

func newRuleCache(store KeywordStore) *ruleCache {
	return &ruleCache{store: store, loaded: map[int64]*tenantRules{}}
}

// get returns cached rules for a tenant, loading them on first access.
// Load failures are cached as empty rule sets to avoid hammering the store
// within one cycle.
func (c *ruleCache) get(ctx context.Context, tenantID int64) *tenantRules {
	if tr, ok := c.loaded[tenantID]; ok {
		return tr
	}

	tr := &tenantRules{}
	rules, err := c.store.ListEnabledKeywords(ctx, tenantID)
	if err != nil {
		lgr.Printf("[WARN] failed to load keywords for tenant %d: %v", tenantID, err)
		c.loaded[tenantID] = tr
		return tr
	}
	tr.rules = rules

	settings, err := c.store.MatcherSettings(ctx, tenantID)
	if err != nil {
		lgr.Printf("[WARN] failed to load matcher settings for tenant %d: %v", tenantID, err)
	} else {
		tr.settings = settings
	}

	c.loaded[tenantID] = tr
	return tr
}

// reset drops all cached tenants, called on filter refresh
func (c *ruleCache) reset() {
	c.loaded = map[int64]*tenantRules{}
}
