package scanner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatradar/chatradar/pkg/scanner"
	"github.com/chatradar/chatradar/pkg/scanner/mocks"
)

func TestFilterLoader_OwnedAndGlobalChats(t *testing.T) {
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, platform string) ([]scanner.ChatRef, error) {
			assert.Equal(t, "telegram", platform)
			return []scanner.ChatRef{
				{ID: 1, NativeID: "-100111", Title: "Owned Chat", OwnerTenantID: 10},
				{ID: 2, NativeID: "-100222", Title: "Global Chat", IsGlobal: true},
			}, nil
		},
		ListWatchersFunc: func(_ context.Context, chatID int64) ([]int64, error) {
			assert.Equal(t, int64(2), chatID)
			return []int64{10, 20, 30}, nil
		},
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, tenantID int64) (bool, error) {
			return tenantID != 30, nil // tenant 30 is plan-excluded
		},
	}

	loader := scanner.NewFilterLoader("telegram", chats, policy, nil)
	filter, changed, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, changed, "first load always reports change")

	owned := filter.Lookup("-100111", "")
	require.NotNil(t, owned)
	assert.Equal(t, []int64{10}, owned.Watchers)

	global := filter.Lookup("-100222", "")
	require.NotNil(t, global)
	assert.ElementsMatch(t, []int64{10, 20}, global.Watchers, "plan-excluded tenant never becomes a watcher")

	assert.Len(t, filter.Identities(), 2)
}

func TestFilterLoader_ExcludedOwnerDropsChat(t *testing.T) {
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) {
			return []scanner.ChatRef{{ID: 1, NativeID: "-100111", Title: "Owned", OwnerTenantID: 10}}, nil
		},
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, _ int64) (bool, error) { return false, nil },
	}

	loader := scanner.NewFilterLoader("telegram", chats, policy, nil)
	filter, _, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, filter.Identities(), "chat owned by excluded tenant is not subscribed")
	assert.Nil(t, filter.Lookup("-100111", ""))
}

func TestFilterLoader_HandleLookup(t *testing.T) {
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) {
			return []scanner.ChatRef{{ID: 1, NativeID: "-100111", Handle: "@CryptoTalk", OwnerTenantID: 5}}, nil
		},
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}

	loader := scanner.NewFilterLoader("telegram", chats, policy, nil)
	filter, _, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, filter.Lookup("unknown-id", "cryptotalk"), "case-insensitive handle fallback")
	assert.NotNil(t, filter.Lookup("unknown-id", "@CryptoTalk"))
	assert.Nil(t, filter.Lookup("unknown-id", "other"))
}

func TestFilterLoader_InviteResolutionCached(t *testing.T) {
	resolveCalls := 0
	resolver := &mocks.InviteResolverMock{
		ResolveFunc: func(_ context.Context, token string) (scanner.ResolvedChat, error) {
			resolveCalls++
			return scanner.ResolvedChat{NativeID: "-100999", Title: "Private " + token}, nil
		},
	}
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) {
			return []scanner.ChatRef{{ID: 1, InviteToken: "abc123", OwnerTenantID: 1}}, nil
		},
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}

	loader := scanner.NewFilterLoader("telegram", chats, policy, resolver)
	now := time.Now()
	loader.SetNowFn(func() time.Time { return now })

	_, _, err := loader.Load(context.Background())
	require.NoError(t, err)
	_, _, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resolveCalls, "second load served from invite cache")

	// expired entry triggers a fresh resolution
	now = now.Add(scanner.InviteTTL + time.Minute)
	_, _, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resolveCalls)
}

func TestFilterLoader_ResolutionFailureSkipsChatOnly(t *testing.T) {
	resolver := &mocks.InviteResolverMock{
		ResolveFunc: func(_ context.Context, _ string) (scanner.ResolvedChat, error) {
			return scanner.ResolvedChat{}, errors.New("invite expired")
		},
	}
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) {
			return []scanner.ChatRef{
				{ID: 1, InviteToken: "broken", OwnerTenantID: 1},
				{ID: 2, NativeID: "-100222", Title: "Good", OwnerTenantID: 1},
			}, nil
		},
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}

	loader := scanner.NewFilterLoader("telegram", chats, policy, resolver)
	filter, _, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"-100222"}, filter.Identities(), "unresolvable chat skipped, others kept")
}

func TestFilterLoader_ChangedFlag(t *testing.T) {
	refs := []scanner.ChatRef{{ID: 1, NativeID: "-100111", OwnerTenantID: 1}}
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) { return refs, nil },
	}
	policy := &mocks.PlanPolicyMock{
		PermittedFunc: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}

	loader := scanner.NewFilterLoader("telegram", chats, policy, nil)

	_, changed, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)

	_, changed, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, changed, "same identity set, no resubscription needed")

	refs = append(refs, scanner.ChatRef{ID: 2, NativeID: "-100222", OwnerTenantID: 1})
	_, changed, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestFilterLoader_StoreError(t *testing.T) {
	chats := &mocks.ChatStoreMock{
		ListEnabledChatsFunc: func(_ context.Context, _ string) ([]scanner.ChatRef, error) {
			return nil, errors.New("store down")
		},
	}
	policy := &mocks.PlanPolicyMock{}

	loader := scanner.NewFilterLoader("telegram", chats, policy, nil)
	_, _, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list enabled chats")
}
