// Package telegram adapts a Telegram bot long-poll stream to the scanner's
// stream transport contract. The bot must be a member of the watched chats.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	tb "gopkg.in/telebot.v4"

	"github.com/chatradar/chatradar/pkg/scanner"
)

// Params configures the transport
type Params struct {
	Token    string
	PollTime time.Duration // long poll timeout, default 10s
}

// Transport streams chat messages through the Telegram bot API. Implements
// scanner.StreamTransport and scanner.InviteResolver.
type Transport struct {
	params Params

	bot  *tb.Bot
	msgs chan scanner.Message

	mu         sync.Mutex
	subscribed map[string]struct{}
	closeErr   error
	started    bool
}

// New creates a disconnected transport
func New(params Params) *Transport {
	if params.PollTime == 0 {
		params.PollTime = 10 * time.Second
	}
	return &Transport{
		params:     params,
		msgs:       make(chan scanner.Message, 256),
		subscribed: map[string]struct{}{},
	}
}

// Connect authenticates the bot and starts the update stream. An invalid
// token surfaces as scanner.ErrUnauthorized so the scanner treats it as fatal.
func (t *Transport) Connect(ctx context.Context) error {
	if strings.TrimSpace(t.params.Token) == "" {
		return fmt.Errorf("empty bot token: %w", scanner.ErrUnauthorized)
	}

	bot, err := tb.NewBot(tb.Settings{
		Token:   t.params.Token,
		Poller:  &tb.LongPoller{Timeout: t.params.PollTime},
		OnError: func(err error, _ tb.Context) { t.pollError(err) },
	})
	if err != nil {
		if isAuthError(err) {
			return fmt.Errorf("telegram auth: %w", scanner.ErrUnauthorized)
		}
		return fmt.Errorf("create telegram bot: %w", err)
	}
	t.bot = bot

	bot.Handle(tb.OnText, func(c tb.Context) error {
		t.forward(c.Message())
		return nil
	})
	bot.Handle(tb.OnChannelPost, func(c tb.Context) error {
		t.forward(c.Message())
		return nil
	})

	t.mu.Lock()
	t.started = true
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		bot.Stop()
	}()
	go func() {
		bot.Start() // blocks until Stop
		t.mu.Lock()
		if t.closeErr == nil && ctx.Err() == nil {
			t.closeErr = fmt.Errorf("telegram poll loop ended")
		}
		t.mu.Unlock()
		close(t.msgs)
	}()

	lgr.Printf("[INFO] telegram transport connected as @%s", bot.Me.Username)
	return nil
}

// Subscribe replaces the set of chat identities the transport forwards.
// The bot API delivers updates for every chat the bot is in, filtering
// happens here. Handle identities may carry a leading @, stored stripped
// and lowercased so they match incoming chat usernames.
func (t *Transport) Subscribe(_ context.Context, identities []string) error {
	subs := make(map[string]struct{}, len(identities))
	for _, id := range identities {
		id = strings.ToLower(strings.TrimPrefix(id, "@"))
		if id == "" {
			continue
		}
		subs[id] = struct{}{}
	}

	t.mu.Lock()
	t.subscribed = subs
	t.mu.Unlock()
	lgr.Printf("[DEBUG] telegram transport subscribed to %d chats", len(subs))
	return nil
}

// Messages returns the inbound message stream, closed on disconnect
func (t *Transport) Messages() <-chan scanner.Message {
	return t.msgs
}

// Err returns the close reason after Messages is closed
func (t *Transport) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closeErr
}

// Close stops the poll loop
func (t *Transport) Close() error {
	t.mu.Lock()
	started := t.started
	t.started = false
	t.mu.Unlock()

	if started && t.bot != nil {
		go t.bot.Stop() // long poll may be mid-request, don't block shutdown on it
	}
	return nil
}

// Resolve looks up a chat by public handle. Bot accounts cannot join through
// invite links, so tokens resolve only when they are usernames.
func (t *Transport) Resolve(_ context.Context, token string) (scanner.ResolvedChat, error) {
	if t.bot == nil {
		return scanner.ResolvedChat{}, fmt.Errorf("transport not connected")
	}

	chat, err := t.bot.ChatByUsername("@" + strings.TrimPrefix(token, "@"))
	if err != nil {
		var flood tb.FloodError
		if errors.As(err, &flood) {
			return scanner.ResolvedChat{}, &scanner.RateLimitError{RetryAfter: time.Duration(flood.RetryAfter) * time.Second}
		}
		return scanner.ResolvedChat{}, fmt.Errorf("resolve chat %q: %w", token, err)
	}
	return scanner.ResolvedChat{
		NativeID: strconv.FormatInt(chat.ID, 10),
		Handle:   chat.Username,
		Title:    chat.Title,
	}, nil
}

// forward converts a telebot message and pushes it to the stream when its
// chat is subscribed. A full channel drops the message, the poll loop must
// never block on a slow consumer.
func (t *Transport) forward(m *tb.Message) {
	if m == nil || m.Chat == nil {
		return
	}

	chatID := strconv.FormatInt(m.Chat.ID, 10)
	t.mu.Lock()
	_, byID := t.subscribed[chatID]
	var byHandle bool
	if m.Chat.Username != "" {
		_, byHandle = t.subscribed[strings.ToLower(m.Chat.Username)]
	}
	t.mu.Unlock()
	if !byID && !byHandle {
		return
	}

	msg := convertMessage(m)
	select {
	case t.msgs <- msg:
	default:
		lgr.Printf("[WARN] telegram message %s dropped, stream buffer full", msg.MessageID)
	}
}

// pollError inspects errors reported by the poll loop. Losing authorization
// mid-run is terminal, record the cause and stop the bot so Err surfaces it.
func (t *Transport) pollError(err error) {
	if err == nil {
		return
	}
	if !isAuthError(err) {
		lgr.Printf("[WARN] telegram poll error: %v", err)
		return
	}

	t.mu.Lock()
	if t.closeErr == nil {
		t.closeErr = fmt.Errorf("telegram auth lost: %w", scanner.ErrUnauthorized)
	}
	bot := t.bot
	t.mu.Unlock()
	if bot != nil {
		go bot.Stop() // poll loop is mid-request, don't block the error callback
	}
}

// convertMessage maps a telebot message to the normalized scanner message
func convertMessage(m *tb.Message) scanner.Message {
	msg := scanner.Message{
		ChatID:     strconv.FormatInt(m.Chat.ID, 10),
		ChatHandle: m.Chat.Username,
		ChatTitle:  m.Chat.Title,
		MessageID:  strconv.Itoa(m.ID),
		Text:       m.Text,
		SentAt:     m.Time(),
	}
	if m.Sender != nil {
		msg.SenderID = strconv.FormatInt(m.Sender.ID, 10)
		msg.SenderName = strings.TrimSpace(m.Sender.FirstName + " " + m.Sender.LastName)
		msg.SenderHandle = m.Sender.Username
	}
	return msg
}

// isAuthError classifies telebot errors that mean bad credentials
func isAuthError(err error) bool {
	if errors.Is(err, tb.ErrUnauthorized) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "401") || strings.Contains(strings.ToLower(s), "unauthorized")
}
