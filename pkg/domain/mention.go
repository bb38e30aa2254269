package domain

import "time"

// MentionEvent is an in-flight keyword match, produced by a scanner and not yet persisted.
// Exactly one event is emitted per (tenant, keyword, message) combination per scan.
type MentionEvent struct {
	TenantID       int64
	Keyword        string
	Message        string
	Platform       string
	PlatformChatID string
	ChatTitle      string
	ChatHandle     string
	MessageID      string
	SenderID       string
	SenderName     string
	SenderHandle   string
	Similarity     *float64 // nil for exact matches, [0,1] for semantic
	OccurredAt     time.Time
}

// Mention is a persisted MentionEvent with storage-assigned identity and UI flags
type Mention struct {
	MentionEvent
	ID        int64
	IsRead    bool
	IsLead    bool
	CreatedAt time.Time
}

// NotificationMode controls how mentions are delivered to a tenant
type NotificationMode string

const (
	NotifyAll      NotificationMode = "all"
	NotifyLeads    NotificationMode = "leads"
	NotifyDigest   NotificationMode = "digest"
	NotifyDisabled NotificationMode = "disabled"
)

// NotificationPolicy is the per-tenant delivery configuration
type NotificationPolicy struct {
	EmailEnabled    bool
	TelegramEnabled bool
	Mode            NotificationMode
	Email           string
	TelegramTarget  string
}
