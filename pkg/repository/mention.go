package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/chatradar/chatradar/pkg/domain"
)

// MentionRepository handles mention-related database operations
type MentionRepository struct {
	db *sqlx.DB
}

// mentionSQL represents a mention for SQL operations
type mentionSQL struct {
	ID             int64     `db:"id"`
	TenantID       int64     `db:"tenant_id"`
	Keyword        string    `db:"keyword"`
	Message        string    `db:"message"`
	Platform       string    `db:"platform"`
	PlatformChatID string    `db:"platform_chat_id"`
	ChatTitle      string    `db:"chat_title"`
	ChatHandle     string    `db:"chat_handle"`
	MessageID      string    `db:"message_id"`
	SenderID       string    `db:"sender_id"`
	SenderName     string    `db:"sender_name"`
	SenderHandle   string    `db:"sender_handle"`
	Similarity     *float64  `db:"similarity"`
	OccurredAt     time.Time `db:"occurred_at"`
	IsRead         bool      `db:"is_read"`
	IsLead         bool      `db:"is_lead"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewMentionRepository creates a new mention repository
func NewMentionRepository(database *sqlx.DB) *MentionRepository {
	return &MentionRepository{db: database}
}

// Create inserts a mention produced by a scanner and returns the assigned id.
// Scanners from multiple goroutines hit this concurrently, SQLite lock errors
// are retried with backoff.
func (r *MentionRepository) Create(ctx context.Context, event domain.MentionEvent) (int64, error) {
	rec := &mentionSQL{
		TenantID:       event.TenantID,
		Keyword:        event.Keyword,
		Message:        event.Message,
		Platform:       event.Platform,
		PlatformChatID: event.PlatformChatID,
		ChatTitle:      event.ChatTitle,
		ChatHandle:     event.ChatHandle,
		MessageID:      event.MessageID,
		SenderID:       event.SenderID,
		SenderName:     event.SenderName,
		SenderHandle:   event.SenderHandle,
		Similarity:     event.Similarity,
		OccurredAt:     event.OccurredAt,
	}

	query := `
		INSERT INTO mentions (
			tenant_id, keyword, message, platform, platform_chat_id,
			chat_title, chat_handle, message_id, sender_id, sender_name,
			sender_handle, similarity, occurred_at
		) VALUES (
			:tenant_id, :keyword, :message, :platform, :platform_chat_id,
			:chat_title, :chat_handle, :message_id, :sender_id, :sender_name,
			:sender_handle, :similarity, :occurred_at
		)
	`

	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create mention: %w", err)}
		}
		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Exists checks whether the same keyword already matched the same platform
// message for the tenant, used by the polling scanner for replay dedup
func (r *MentionRepository) Exists(ctx context.Context, tenantID int64, platform, messageID, keyword string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM mentions WHERE tenant_id = ? AND platform = ? AND message_id = ? AND keyword = ?)",
		tenantID, platform, messageID, keyword)
	if err != nil {
		return false, fmt.Errorf("check mention exists: %w", err)
	}
	return exists, nil
}

// Get retrieves a mention by ID
func (r *MentionRepository) Get(ctx context.Context, id int64) (*domain.Mention, error) {
	var rec mentionSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM mentions WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get mention: %w", err)
	}
	return toDomainMention(&rec), nil
}

// List retrieves the tenant's newest mentions
func (r *MentionRepository) List(ctx context.Context, tenantID int64, limit int) ([]*domain.Mention, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT * FROM mentions
		WHERE tenant_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var recs []mentionSQL
	err := r.db.SelectContext(ctx, &recs, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}

	mentions := make([]*domain.Mention, len(recs))
	for i := range recs {
		mentions[i] = toDomainMention(&recs[i])
	}
	return mentions, nil
}

// SetRead updates the read flag
func (r *MentionRepository) SetRead(ctx context.Context, id int64, read bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE mentions SET is_read = ? WHERE id = ?", read, id)
	if err != nil {
		return fmt.Errorf("set mention read: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mention %d not found", id)
	}
	return nil
}

// SetLead updates the lead flag
func (r *MentionRepository) SetLead(ctx context.Context, id int64, lead bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE mentions SET is_lead = ? WHERE id = ?", lead, id)
	if err != nil {
		return fmt.Errorf("set mention lead: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mention %d not found", id)
	}
	return nil
}

// CountUnread returns the number of unread mentions for the tenant
func (r *MentionRepository) CountUnread(ctx context.Context, tenantID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM mentions WHERE tenant_id = ? AND is_read = 0", tenantID)
	if err != nil {
		return 0, fmt.Errorf("count unread mentions: %w", err)
	}
	return count, nil
}

func toDomainMention(rec *mentionSQL) *domain.Mention {
	return &domain.Mention{
		MentionEvent: domain.MentionEvent{
			TenantID:       rec.TenantID,
			Keyword:        rec.Keyword,
			Message:        rec.Message,
			Platform:       rec.Platform,
			PlatformChatID: rec.PlatformChatID,
			ChatTitle:      rec.ChatTitle,
			ChatHandle:     rec.ChatHandle,
			MessageID:      rec.MessageID,
			SenderID:       rec.SenderID,
			SenderName:     rec.SenderName,
			SenderHandle:   rec.SenderHandle,
			Similarity:     rec.Similarity,
			OccurredAt:     rec.OccurredAt,
		},
		ID:        rec.ID,
		IsRead:    rec.IsRead,
		IsLead:    rec.IsLead,
		CreatedAt: rec.CreatedAt,
	}
}
