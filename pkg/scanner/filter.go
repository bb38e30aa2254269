package scanner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/chatradar/chatradar/pkg/domain"
)

// inviteTTL bounds how long a resolved invite token is reused before the
// expensive resolution call is repeated
const inviteTTL = time.Hour

// Filter is an immutable snapshot of chat-to-watchers mappings for one platform,
// rebuilt from scratch on every load
type Filter struct {
	byID     map[string]*domain.ChatWatch
	byHandle map[string]*domain.ChatWatch
	ids      []string
}

// Lookup finds the watch for a message by platform chat id, falling back to
// the chat handle. Both lookups are O(1).
func (f *Filter) Lookup(chatID, handle string) *domain.ChatWatch {
	if f == nil {
		return nil
	}
	if w, ok := f.byID[chatID]; ok {
		return w
	}
	if handle != "" {
		if w, ok := f.byHandle[strings.ToLower(strings.TrimPrefix(handle, "@"))]; ok {
			return w
		}
	}
	return nil
}

// Identities returns the deduplicated chat identity list to subscribe to
func (f *Filter) Identities() []string {
	if f == nil {
		return nil
	}
	return f.ids
}

// Watches returns all chat watches in the snapshot
func (f *Filter) Watches() []*domain.ChatWatch {
	if f == nil {
		return nil
	}
	watches := make([]*domain.ChatWatch, 0, len(f.byID))
	for _, id := range f.ids {
		watches = append(watches, f.byID[id])
	}
	return watches
}

type inviteEntry struct {
	chat      ResolvedChat
	expiresAt time.Time
}

// FilterLoader rebuilds the chat-to-watchers mapping for one platform,
// merging owned and subscribed chats and excluding tenants whose plan
// forbids tracking. Reconciliation, not incremental.
type FilterLoader struct {
	platform string
	chats    ChatStore
	policy   PlanPolicy
	resolver InviteResolver

	invites  map[string]inviteEntry
	lastIDs  string // sorted joined identity set from the previous load
	nowFn    func() time.Time
}

// NewFilterLoader creates a loader for one platform. resolver may be nil for
// platforms without invite links.
func NewFilterLoader(platform string, chats ChatStore, policy PlanPolicy, resolver InviteResolver) *FilterLoader {
	return &FilterLoader{
		platform: platform,
		chats:    chats,
		policy:   policy,
		resolver: resolver,
		invites:  map[string]inviteEntry{},
		nowFn:    time.Now,
	}
}

// Load rebuilds the filter snapshot. The changed flag reports whether the
// resolved identity set differs from the previous load, so callers can skip
// resubscription churn. Not safe for concurrent use, each loader belongs to
// a single scanner.
func (l *FilterLoader) Load(ctx context.Context) (filter *Filter, changed bool, err error) {
	refs, err := l.chats.ListEnabledChats(ctx, l.platform)
	if err != nil {
		return nil, false, fmt.Errorf("list enabled chats for %s: %w", l.platform, err)
	}

	permitted := map[int64]bool{} // memoized plan policy answers for this load
	isPermitted := func(tenantID int64) bool {
		if v, ok := permitted[tenantID]; ok {
			return v
		}
		ok, err := l.policy.Permitted(ctx, tenantID)
		if err != nil {
			lgr.Printf("[WARN] plan policy check failed for tenant %d: %v", tenantID, err)
			ok = false
		}
		permitted[tenantID] = ok
		return ok
	}

	filter = &Filter{byID: map[string]*domain.ChatWatch{}, byHandle: map[string]*domain.ChatWatch{}}
	for _, ref := range refs {
		watchers := l.watchersFor(ctx, ref, isPermitted)
		if len(watchers) == 0 {
			continue
		}

		resolved, err := l.resolve(ctx, ref)
		if err != nil {
			lgr.Printf("[WARN] skip chat %q for this cycle, resolution failed: %v", ref.Title, err)
			continue
		}

		watch, ok := filter.byID[resolved.NativeID]
		if !ok {
			watch = &domain.ChatWatch{
				PlatformChatID: resolved.NativeID,
				Title:          resolved.Title,
				Handle:         resolved.Handle,
			}
			filter.byID[resolved.NativeID] = watch
			filter.ids = append(filter.ids, resolved.NativeID)
			if resolved.Handle != "" {
				filter.byHandle[strings.ToLower(strings.TrimPrefix(resolved.Handle, "@"))] = watch
			}
		}
		watch.Watchers = mergeWatchers(watch.Watchers, watchers)
	}

	key := identityKey(filter.ids)
	changed = key != l.lastIDs
	l.lastIDs = key

	lgr.Printf("[DEBUG] filter loaded for %s: %d chats, changed=%v", l.platform, len(filter.ids), changed)
	return filter, changed, nil
}

// watchersFor computes the permitted watcher set for one chat: subscribers for
// shared chats, the owner otherwise
func (l *FilterLoader) watchersFor(ctx context.Context, ref ChatRef, isPermitted func(int64) bool) []int64 {
	if !ref.IsGlobal {
		if isPermitted(ref.OwnerTenantID) {
			return []int64{ref.OwnerTenantID}
		}
		return nil
	}

	subscribers, err := l.chats.ListWatchers(ctx, ref.ID)
	if err != nil {
		lgr.Printf("[WARN] failed to list watchers for chat %d: %v", ref.ID, err)
		return nil
	}
	watchers := make([]int64, 0, len(subscribers))
	for _, id := range subscribers {
		if isPermitted(id) {
			watchers = append(watchers, id)
		}
	}
	return watchers
}

// resolve maps a chat ref to the concrete identity the scanner subscribes to.
// Invite tokens are resolved through a TTL cache.
func (l *FilterLoader) resolve(ctx context.Context, ref ChatRef) (ResolvedChat, error) {
	switch {
	case ref.NativeID != "":
		return ResolvedChat{NativeID: ref.NativeID, Handle: ref.Handle, Title: ref.Title}, nil
	case ref.Handle != "":
		return ResolvedChat{NativeID: "@" + strings.TrimPrefix(ref.Handle, "@"), Handle: ref.Handle, Title: ref.Title}, nil
	case ref.InviteToken != "":
		return l.resolveInvite(ctx, ref.InviteToken)
	default:
		return ResolvedChat{}, fmt.Errorf("chat %d has no resolvable identity", ref.ID)
	}
}

func (l *FilterLoader) resolveInvite(ctx context.Context, token string) (ResolvedChat, error) {
	now := l.nowFn()
	if entry, ok := l.invites[token]; ok && now.Before(entry.expiresAt) {
		return entry.chat, nil
	}

	if l.resolver == nil {
		return ResolvedChat{}, fmt.Errorf("no invite resolver configured")
	}
	chat, err := l.resolver.Resolve(ctx, token)
	if err != nil {
		return ResolvedChat{}, fmt.Errorf("resolve invite: %w", err)
	}

	l.invites[token] = inviteEntry{chat: chat, expiresAt: now.Add(inviteTTL)}
	return chat, nil
}

// mergeWatchers appends new tenant ids, keeping the set unique
func mergeWatchers(existing, extra []int64) []int64 {
	seen := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range extra {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			existing = append(existing, id)
		}
	}
	return existing
}

func identityKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}
