package scanner_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/pkg/matcher"
	"github.com/chatradar/chatradar/pkg/scanner"
	"github.com/chatradar/chatradar/pkg/scanner/mocks"
)

// streamTestEnv wires a stream scanner with mocked collaborators and a
// controllable message channel
type streamTestEnv struct {
	scanner   *scanner.StreamScanner
	transport *mocks.StreamTransportMock
	sink      *mocks.SinkMock
	messages  chan scanner.Message
	recorded  atomic.Int32
}

func newStreamTestEnv(t *testing.T) *streamTestEnv {
	t.Helper()
	env := &streamTestEnv{messages: make(chan scanner.Message, 10)}

	env.transport = &mocks.StreamTransportMock{
		ConnectFunc:   func(_ context.Context) error { return nil },
		SubscribeFunc: func(_ context.Context, _ []string) error { return nil },
		MessagesFunc:  func() <-chan scanner.Message { return env.messages },
		ErrFunc:       func() error { return nil },
		CloseFunc:     func() error { return nil },
	}

	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) {
			return []scanner.ChatRef{{ID: 1, NativeID: "-100111", Handle: "@watched", Title: "Watched Chat", OwnerTenantID: 7}}, nil
		},
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}
	keywords := &mocks.KeywordStoreMock{
		ListEnabledKeywordsFunc: func(_ context.Context, _ int64) ([]domain.KeywordRule, error) {
			return []domain.KeywordRule{{Text: "скидка"}}, nil
		},
		MatcherSettingsFunc: func(_ context.Context, _ int64) (domain.MatcherSettings, error) {
			return domain.MatcherSettings{}, nil
		},
	}
	m := &mocks.MatcherMock{
		MatchFunc: func(_ context.Context, rules []domain.KeywordRule, message string, _ domain.MatcherSettings) []matcher.Result {
			var results []matcher.Result
			for _, r := range rules {
				if strings.Contains(strings.ToLower(message), r.Text) {
					results = append(results, matcher.Result{Keyword: r.Text})
				}
			}
			return results
		},
	}
	env.sink = &mocks.SinkMock{
		RecordFunc: func(_ context.Context, _ domain.MentionEvent) (int64, error) {
			env.recorded.Add(1)
			return int64(env.recorded.Load()), nil
		},
	}

	env.scanner = scanner.NewStreamScanner(scanner.StreamParams{
		Platform:        "telegram",
		Transport:       env.transport,
		Loader:          scanner.NewFilterLoader("telegram", chats, policy, nil),
		Keywords:        keywords,
		Matcher:         m,
		Sink:            env.sink,
		RefreshInterval: time.Minute,
	})
	return env
}

func TestStreamScanner_StartStop(t *testing.T) {
	env := newStreamTestEnv(t)

	require.NoError(t, env.scanner.Start(context.Background()))
	status := env.scanner.Status()
	assert.True(t, status.Running)
	assert.True(t, status.MultiTenant)
	assert.Equal(t, "telegram", status.Platform)

	// idempotent start
	require.NoError(t, env.scanner.Start(context.Background()))
	assert.Len(t, env.transport.ConnectCalls(), 1, "second start is a no-op")

	env.scanner.Stop()
	assert.False(t, env.scanner.Status().Running)
	assert.NotEmpty(t, env.transport.CloseCalls())
}

func TestStreamScanner_FatalConnect(t *testing.T) {
	env := newStreamTestEnv(t)
	env.transport.ConnectFunc = func(_ context.Context) error { return scanner.ErrUnauthorized }

	err := env.scanner.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrUnauthorized)
	assert.False(t, env.scanner.Status().Running, "scanner stays stopped on bad credentials")
}

func TestStreamScanner_MatchRecorded(t *testing.T) {
	env := newStreamTestEnv(t)
	require.NoError(t, env.scanner.Start(context.Background()))
	defer env.scanner.Stop()

	env.messages <- scanner.Message{
		ChatID:     "-100111",
		MessageID:  "42",
		SenderName: "Ivan",
		Text:       "Большая скидка!",
		SentAt:     time.Now(),
	}

	require.Eventually(t, func() bool { return env.recorded.Load() == 1 }, time.Second, 10*time.Millisecond)

	calls := env.sink.RecordCalls()
	require.Len(t, calls, 1)
	event := calls[0].Event
	assert.Equal(t, int64(7), event.TenantID)
	assert.Equal(t, "скидка", event.Keyword)
	assert.Equal(t, "-100111", event.PlatformChatID)
	assert.Equal(t, "Watched Chat", event.ChatTitle)
	assert.Equal(t, "42", event.MessageID)
	assert.Nil(t, event.Similarity)
}

func TestStreamScanner_IgnoresUnwatchedAndEmpty(t *testing.T) {
	env := newStreamTestEnv(t)
	require.NoError(t, env.scanner.Start(context.Background()))
	defer env.scanner.Stop()

	env.messages <- scanner.Message{ChatID: "-100999", Text: "скидка тут"} // not watched
	env.messages <- scanner.Message{ChatID: "-100111", Text: ""}          // empty text
	env.messages <- scanner.Message{ChatID: "-100111", Text: "ничего"}    // no keyword match
	env.messages <- scanner.Message{ChatID: "-100111", MessageID: "1", Text: "скидка", SentAt: time.Now()}

	require.Eventually(t, func() bool { return env.recorded.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond) // allow any stray records to land
	assert.Equal(t, int32(1), env.recorded.Load())
}

func TestStreamScanner_SubscribeRateLimitedRetriesOnce(t *testing.T) {
	env := newStreamTestEnv(t)
	attempts := 0
	env.transport.SubscribeFunc = func(_ context.Context, _ []string) error {
		attempts++
		if attempts == 1 {
			return &scanner.RateLimitError{RetryAfter: 10 * time.Millisecond}
		}
		return nil
	}

	require.NoError(t, env.scanner.Start(context.Background()))
	defer env.scanner.Stop()
	assert.Equal(t, 2, attempts, "single retry after the mandated wait")
}

func TestStreamScanner_AuthLossMidRun(t *testing.T) {
	env := newStreamTestEnv(t)
	env.transport.ErrFunc = func() error { return scanner.ErrUnauthorized }

	require.NoError(t, env.scanner.Start(context.Background()))
	close(env.messages) // transport reports the stream ended

	require.Eventually(t, func() bool { return !env.scanner.Status().Running }, time.Second, 10*time.Millisecond)
}

func TestStreamScanner_RefreshResubscribesOnChange(t *testing.T) {
	env := newStreamTestEnv(t)
	require.NoError(t, env.scanner.Start(context.Background()))
	defer env.scanner.Stop()

	before := len(env.transport.SubscribeCalls())

	// same identity set, refresh must not resubscribe
	filter, _, err := env.scanner.Loader().Load(context.Background())
	require.NoError(t, err)
	env.scanner.RefreshFilter(context.Background(), filter)
	assert.Len(t, env.transport.SubscribeCalls(), before)
}
