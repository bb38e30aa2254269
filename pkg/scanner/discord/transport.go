// Package discord adapts the Discord REST API to the scanner's poll
// transport contract.
package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/chatradar/chatradar/pkg/scanner"
)

const defaultBaseURL = "https://discord.com/api/v10"

// snowflakes encode milliseconds since the Discord epoch in the top 42 bits
const discordEpochMs = 1420070400000

// Transport fetches channel history over the Discord REST API. Implements
// scanner.PollTransport and scanner.InviteResolver. Request pacing is the
// poll scanner's job, the transport only translates errors.
type Transport struct {
	token   string
	baseURL string
	client  *http.Client
}

// New creates a transport authenticated with a bot token
func New(token string) *Transport {
	return &Transport{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// message is the wire shape of a Discord channel message
type message struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Author    struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		GlobalName string `json:"global_name"`
	} `json:"author"`
}

// FetchMessages returns channel messages newer than since, oldest first
func (t *Transport) FetchMessages(ctx context.Context, chatID string, since time.Time) ([]scanner.Message, error) {
	q := url.Values{"limit": {"100"}}
	if !since.IsZero() {
		q.Set("after", snowflakeAfter(since))
	}
	endpoint := fmt.Sprintf("%s/channels/%s/messages?%s", t.baseURL, url.PathEscape(chatID), q.Encode())

	body, err := t.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var raw []message
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode messages for channel %s: %w", chatID, err)
	}

	// API returns newest first
	sort.Slice(raw, func(i, j int) bool { return raw[i].Timestamp.Before(raw[j].Timestamp) })

	msgs := make([]scanner.Message, 0, len(raw))
	for _, m := range raw {
		if !since.IsZero() && !m.Timestamp.After(since) {
			continue
		}
		name := m.Author.GlobalName
		if name == "" {
			name = m.Author.Username
		}
		msgs = append(msgs, scanner.Message{
			ChatID:       m.ChannelID,
			MessageID:    m.ID,
			SenderID:     m.Author.ID,
			SenderName:   name,
			SenderHandle: m.Author.Username,
			Text:         m.Content,
			SentAt:       m.Timestamp,
		})
	}
	return msgs, nil
}

// Resolve turns an invite code into the target channel identity
func (t *Transport) Resolve(ctx context.Context, token string) (scanner.ResolvedChat, error) {
	body, err := t.get(ctx, fmt.Sprintf("%s/invites/%s", t.baseURL, url.PathEscape(token)))
	if err != nil {
		return scanner.ResolvedChat{}, err
	}

	var invite struct {
		Channel struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"channel"`
		Guild struct {
			Name string `json:"name"`
		} `json:"guild"`
	}
	if err := json.Unmarshal(body, &invite); err != nil {
		return scanner.ResolvedChat{}, fmt.Errorf("decode invite %s: %w", token, err)
	}
	if invite.Channel.ID == "" {
		return scanner.ResolvedChat{}, fmt.Errorf("invite %s has no channel", token)
	}

	title := invite.Channel.Name
	if invite.Guild.Name != "" {
		title = invite.Guild.Name + " / " + invite.Channel.Name
	}
	return scanner.ResolvedChat{NativeID: invite.Channel.ID, Title: title}, nil
}

// get performs an authenticated request and translates platform errors into
// the scanner's taxonomy
func (t *Transport) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discord request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("discord auth: %w", scanner.ErrUnauthorized)
	case http.StatusForbidden:
		return nil, fmt.Errorf("discord access: %w", scanner.ErrForbidden)
	case http.StatusTooManyRequests:
		return nil, &scanner.RateLimitError{RetryAfter: retryAfter(resp)}
	default:
		return nil, fmt.Errorf("discord responded with %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// retryAfter extracts the wait hint from a 429 response, header first then
// the JSON body, fallback 5s
func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}
	var body struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.RetryAfter > 0 {
		return time.Duration(body.RetryAfter * float64(time.Second))
	}
	return 5 * time.Second
}

// snowflakeAfter builds the smallest snowflake for messages sent after ts
func snowflakeAfter(ts time.Time) string {
	ms := ts.UnixMilli() - discordEpochMs
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatInt(ms<<22, 10)
}
