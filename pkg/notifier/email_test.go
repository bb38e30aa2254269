package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/go-pkgz/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailClient struct {
	text   string
	params email.Params
	err    error
}

func (f *fakeEmailClient) Send(text string, params email.Params) error {
	f.text, f.params = text, params
	return f.err
}

func TestSMTPSender_SendEmail(t *testing.T) {
	client := &fakeEmailClient{}
	s := &SMTPSender{client: client, from: "alerts@example.com"}

	err := s.SendEmail(context.Background(), "user@example.com", "hosting", "looking for hosting advice", "https://t.me/c/1/2")
	require.NoError(t, err)

	assert.Equal(t, "alerts@example.com", client.params.From)
	assert.Equal(t, []string{"user@example.com"}, client.params.To)
	assert.Equal(t, "Keyword mention: hosting", client.params.Subject)
	assert.Contains(t, client.text, `Keyword "hosting" mentioned:`)
	assert.Contains(t, client.text, "looking for hosting advice")
	assert.Contains(t, client.text, "https://t.me/c/1/2")
}

func TestSMTPSender_SendEmailError(t *testing.T) {
	client := &fakeEmailClient{err: errors.New("smtp down")}
	s := &SMTPSender{client: client, from: "alerts@example.com"}

	err := s.SendEmail(context.Background(), "user@example.com", "vps", "text", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user@example.com")
}

func TestEmailContent_NoLink(t *testing.T) {
	subject, text := emailContent("crm", "short excerpt", "")
	assert.Equal(t, "Keyword mention: crm", subject)
	assert.NotContains(t, text, "\n\nhttps://")
}
