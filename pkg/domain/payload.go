package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// MentionPayload is the JSON shape delivered to realtime dashboard clients
// and returned by the mentions API.
type MentionPayload struct {
	ID                int64  `json:"id"`
	TenantID          int64  `json:"tenantId"`
	ChatTitle         string `json:"chatTitle"`
	ChatIcon          string `json:"chatIcon"`
	SenderName        string `json:"senderName"`
	SenderInitials    string `json:"senderInitials"`
	SenderProfileLink string `json:"senderProfileLink,omitempty"`
	Message           string `json:"message"`
	Keyword           string `json:"keyword"`
	Timestamp         string `json:"timestamp"`
	IsLead            bool   `json:"isLead"`
	IsRead            bool   `json:"isRead"`
	CreatedAt         string `json:"createdAt"`
	MessageLink       string `json:"messageLink,omitempty"`
	TopicMatchPercent *int   `json:"topicMatchPercent,omitempty"`
}

// strict policy strips all markup from message text before it leaves the system
var sanitizer = bluemonday.StrictPolicy()

// NewMentionPayload converts a persisted mention to its client-facing shape.
// now is passed explicitly to keep relative timestamps testable.
func NewMentionPayload(m *Mention, now time.Time) MentionPayload {
	p := MentionPayload{
		ID:             m.ID,
		TenantID:       m.TenantID,
		ChatTitle:      m.ChatTitle,
		ChatIcon:       Initials(m.ChatTitle),
		SenderName:     m.SenderName,
		SenderInitials: Initials(m.SenderName),
		Message:        sanitizer.Sanitize(m.Message),
		Keyword:        m.Keyword,
		Timestamp:      RelativeTime(m.OccurredAt, now),
		IsLead:         m.IsLead,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339),
	}

	if m.SenderHandle != "" {
		p.SenderProfileLink = "https://t.me/" + strings.TrimPrefix(m.SenderHandle, "@")
	}
	if m.ChatHandle != "" && m.MessageID != "" {
		p.MessageLink = fmt.Sprintf("https://t.me/%s/%s", strings.TrimPrefix(m.ChatHandle, "@"), m.MessageID)
	}
	if m.Similarity != nil {
		pct := int(math.Round(*m.Similarity * 100))
		p.TopicMatchPercent = &pct
	}
	return p
}

// Initials derives up to two uppercase initials from a display name,
// e.g. "Crypto Signals Daily" -> "CS"
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				initials = append(initials, unicode.ToUpper(r))
				break
			}
		}
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// RelativeTime renders a human-friendly relative timestamp like "5m ago"
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "yesterday"
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
