package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/pkg/notifier/mocks"
)

func makeMention(id int64) *domain.Mention {
	sim := 0.87
	return &domain.Mention{
		MentionEvent: domain.MentionEvent{
			TenantID:       7,
			Keyword:        "hosting",
			Message:        "looking for managed hosting, any recommendations?",
			Platform:       "telegram",
			PlatformChatID: "-1001",
			ChatTitle:      "devops chat",
			ChatHandle:     "devopschat",
			MessageID:      "4242",
			SenderID:       "100",
			SenderName:     "Alice",
			Similarity:     &sim,
			OccurredAt:     time.Now().Add(-time.Minute),
		},
		ID:        id,
		IsLead:    true,
		CreatedAt: time.Now(),
	}
}

func TestDispatcher_DeliversBothChannels(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.Mention, error) {
			return makeMention(id), nil
		},
	}
	policies := &mocks.PolicyStoreMock{
		GetNotificationPolicyFunc: func(ctx context.Context, tenantID int64) (domain.NotificationPolicy, error) {
			return domain.NotificationPolicy{
				EmailEnabled:    true,
				TelegramEnabled: true,
				Mode:            domain.NotifyAll,
				Email:           "owner@example.com",
				TelegramTarget:  "200",
			}, nil
		},
	}
	email := &mocks.EmailSenderMock{
		SendEmailFunc: func(ctx context.Context, address, keyword, excerpt, link string) error { return nil },
	}
	platform := &mocks.PlatformSenderMock{
		SendMessageFunc: func(ctx context.Context, target, keyword, excerpt, link string) error { return nil },
	}

	d := New(Params{Mentions: mentions, Policies: policies, Email: email, Platform: platform, Workers: 1})
	d.Start(context.Background())
	defer d.Stop()

	require.True(t, d.Enqueue(1))

	assert.Eventually(t, func() bool {
		return len(email.SendEmailCalls()) == 1 && len(platform.SendMessageCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	emailCall := email.SendEmailCalls()[0]
	assert.Equal(t, "owner@example.com", emailCall.Address)
	assert.Equal(t, "hosting", emailCall.Keyword)
	assert.Contains(t, emailCall.Excerpt, "managed hosting")

	tgCall := platform.SendMessageCalls()[0]
	assert.Equal(t, "200", tgCall.Target)
	assert.Equal(t, "hosting", tgCall.Keyword)
}

func TestDispatcher_EnqueueNeverBlocksOnOverflow(t *testing.T) {
	// dispatcher is never started, the queue only fills
	d := New(Params{QueueSize: 3})

	for i := 0; i < 3; i++ {
		assert.True(t, d.Enqueue(int64(i)), "enqueue %d within capacity", i)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.False(t, d.Enqueue(100))
		assert.False(t, d.Enqueue(101))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
	assert.Equal(t, int64(2), d.Dropped())
}

func TestDispatcher_PolicySkips(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.NotificationPolicy
		isLead bool
		sent   bool
	}{
		{
			name:   "all channels disabled",
			policy: domain.NotificationPolicy{Mode: domain.NotifyAll, Email: "a@b.c", TelegramTarget: "1"},
			isLead: true,
			sent:   false,
		},
		{
			name: "leads mode skips non-lead",
			policy: domain.NotificationPolicy{
				EmailEnabled: true, TelegramEnabled: true,
				Mode: domain.NotifyLeads, Email: "a@b.c", TelegramTarget: "1",
			},
			isLead: false,
			sent:   false,
		},
		{
			name: "leads mode delivers lead",
			policy: domain.NotificationPolicy{
				EmailEnabled: true, TelegramEnabled: true,
				Mode: domain.NotifyLeads, Email: "a@b.c", TelegramTarget: "1",
			},
			isLead: true,
			sent:   true,
		},
		{
			name: "disabled mode silences enabled channels",
			policy: domain.NotificationPolicy{
				EmailEnabled: true, TelegramEnabled: true,
				Mode: domain.NotifyDisabled, Email: "a@b.c", TelegramTarget: "1",
			},
			isLead: true,
			sent:   false,
		},
		{
			name: "digest mode defers everything",
			policy: domain.NotificationPolicy{
				EmailEnabled: true, TelegramEnabled: true,
				Mode: domain.NotifyDigest, Email: "a@b.c", TelegramTarget: "1",
			},
			isLead: true,
			sent:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mentions := &mocks.MentionStoreMock{
				GetFunc: func(ctx context.Context, id int64) (*domain.Mention, error) {
					m := makeMention(id)
					m.IsLead = tt.isLead
					return m, nil
				},
			}
			policies := &mocks.PolicyStoreMock{
				GetNotificationPolicyFunc: func(ctx context.Context, tenantID int64) (domain.NotificationPolicy, error) {
					return tt.policy, nil
				},
			}
			email := &mocks.EmailSenderMock{
				SendEmailFunc: func(ctx context.Context, address, keyword, excerpt, link string) error { return nil },
			}
			platform := &mocks.PlatformSenderMock{
				SendMessageFunc: func(ctx context.Context, target, keyword, excerpt, link string) error { return nil },
			}

			d := New(Params{Mentions: mentions, Policies: policies, Email: email, Platform: platform})
			d.process(context.Background(), 1)

			if tt.sent {
				assert.Len(t, email.SendEmailCalls(), 1)
				assert.Len(t, platform.SendMessageCalls(), 1)
			} else {
				assert.Empty(t, email.SendEmailCalls())
				assert.Empty(t, platform.SendMessageCalls())
			}
		})
	}
}

func TestDispatcher_ChannelFailuresIndependent(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.Mention, error) {
			return makeMention(id), nil
		},
	}
	policies := &mocks.PolicyStoreMock{
		GetNotificationPolicyFunc: func(ctx context.Context, tenantID int64) (domain.NotificationPolicy, error) {
			return domain.NotificationPolicy{
				EmailEnabled:    true,
				TelegramEnabled: true,
				Mode:            domain.NotifyAll,
				Email:           "owner@example.com",
				TelegramTarget:  "200",
			}, nil
		},
	}
	email := &mocks.EmailSenderMock{
		SendEmailFunc: func(ctx context.Context, address, keyword, excerpt, link string) error {
			return errors.New("smtp down")
		},
	}
	platform := &mocks.PlatformSenderMock{
		SendMessageFunc: func(ctx context.Context, target, keyword, excerpt, link string) error { return nil },
	}

	d := New(Params{Mentions: mentions, Policies: policies, Email: email, Platform: platform})
	d.process(context.Background(), 1)

	// email failure does not prevent telegram delivery
	assert.Len(t, email.SendEmailCalls(), 1)
	assert.Len(t, platform.SendMessageCalls(), 1)
}

func TestDispatcher_MentionLoadFailureSkips(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.Mention, error) {
			return nil, errors.New("not found")
		},
	}
	policies := &mocks.PolicyStoreMock{
		GetNotificationPolicyFunc: func(ctx context.Context, tenantID int64) (domain.NotificationPolicy, error) {
			t.Fatal("policy should not be loaded when mention load fails")
			return domain.NotificationPolicy{}, nil
		},
	}

	d := New(Params{Mentions: mentions, Policies: policies})
	d.process(context.Background(), 99)
	assert.Len(t, mentions.GetCalls(), 1)
}

func TestDispatcher_NilSendersSkipped(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.Mention, error) {
			return makeMention(id), nil
		},
	}
	policies := &mocks.PolicyStoreMock{
		GetNotificationPolicyFunc: func(ctx context.Context, tenantID int64) (domain.NotificationPolicy, error) {
			return domain.NotificationPolicy{
				EmailEnabled:    true,
				TelegramEnabled: true,
				Mode:            domain.NotifyAll,
				Email:           "owner@example.com",
				TelegramTarget:  "200",
			}, nil
		},
	}

	d := New(Params{Mentions: mentions, Policies: policies}) // no senders wired
	assert.NotPanics(t, func() { d.process(context.Background(), 1) })
}

func TestExcerptOf(t *testing.T) {
	assert.Equal(t, "short", excerptOf("short"))

	long := strings.Repeat("й", 250)
	got := excerptOf(long)
	assert.Equal(t, 201, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
