package notifier

import (
	"context"
	"fmt"

	tb "gopkg.in/telebot.v4"
)

// TelegramSender delivers mention notifications through a Telegram bot
type TelegramSender struct {
	bot *tb.Bot
}

// NewTelegramSender creates a sender for the given bot token. The token is
// verified against the Telegram API on creation.
func NewTelegramSender(token string) (*TelegramSender, error) {
	bot, err := tb.NewBot(tb.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot}, nil
}

// target is a raw telegram recipient, either a numeric chat id or @username
type target string

func (t target) Recipient() string { return string(t) }

// SendMessage sends one mention notification to the tenant's configured target
func (s *TelegramSender) SendMessage(ctx context.Context, to, keyword, excerpt, link string) error {
	text := fmt.Sprintf("🔔 Keyword *%s* mentioned:\n\n%s", keyword, excerpt)
	if link != "" {
		text += "\n\n" + link
	}

	// telebot's Send has no context support, run it aside so a cancelled
	// worker is not stuck behind a slow API call
	done := make(chan error, 1)
	go func() {
		_, err := s.bot.Send(target(to), text, &tb.SendOptions{ParseMode: tb.ModeMarkdown, DisableWebPagePreview: true})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send telegram message to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
