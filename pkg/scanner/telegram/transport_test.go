package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tb "gopkg.in/telebot.v4"

	"github.com/chatradar/chatradar/pkg/scanner"
)

func tbMessage(chatID int64, handle, title string, id int, text string) *tb.Message {
	return &tb.Message{
		ID:       id,
		Text:     text,
		Unixtime: time.Now().Unix(),
		Chat:     &tb.Chat{ID: chatID, Username: handle, Title: title},
		Sender:   &tb.User{ID: 42, FirstName: "Ann", LastName: "Lee", Username: "annlee"},
	}
}

func TestTransport_ConnectEmptyTokenUnauthorized(t *testing.T) {
	tr := New(Params{})
	err := tr.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanner.ErrUnauthorized))
}

func TestTransport_ForwardFiltersBySubscription(t *testing.T) {
	tr := New(Params{Token: "x"})
	require.NoError(t, tr.Subscribe(context.Background(), []string{"-1001", "SomeHandle"}))

	tr.forward(tbMessage(-1001, "", "watched by id", 1, "hello"))
	tr.forward(tbMessage(-2002, "somehandle", "watched by handle", 2, "hi"))
	tr.forward(tbMessage(-3003, "other", "not watched", 3, "ignored"))

	require.Len(t, tr.msgs, 2)

	first := <-tr.msgs
	assert.Equal(t, "-1001", first.ChatID)
	assert.Equal(t, "1", first.MessageID)
	assert.Equal(t, "hello", first.Text)
	assert.Equal(t, "Ann Lee", first.SenderName)
	assert.Equal(t, "annlee", first.SenderHandle)
	assert.Equal(t, "42", first.SenderID)

	second := <-tr.msgs
	assert.Equal(t, "-2002", second.ChatID)
	assert.Equal(t, "somehandle", second.ChatHandle)
}

func TestTransport_SubscribePrefixedHandles(t *testing.T) {
	tr := New(Params{Token: "x"})
	require.NoError(t, tr.Subscribe(context.Background(), []string{"@SomeChat", "@", ""}))

	tr.forward(tbMessage(-2002, "somechat", "watched by handle", 1, "hello"))
	tr.forward(tbMessage(-3003, "", "no handle at all", 2, "ignored"))

	require.Len(t, tr.msgs, 1, "prefixed handle identity must match the bare chat username")
	msg := <-tr.msgs
	assert.Equal(t, "somechat", msg.ChatHandle)
	assert.Equal(t, "hello", msg.Text)
}

func TestTransport_SubscribeReplacesSet(t *testing.T) {
	tr := New(Params{Token: "x"})
	require.NoError(t, tr.Subscribe(context.Background(), []string{"-1001"}))
	require.NoError(t, tr.Subscribe(context.Background(), []string{"-2002"}))

	tr.forward(tbMessage(-1001, "", "old subscription", 1, "gone"))
	tr.forward(tbMessage(-2002, "", "current subscription", 2, "kept"))

	require.Len(t, tr.msgs, 1)
	msg := <-tr.msgs
	assert.Equal(t, "-2002", msg.ChatID)
}

func TestTransport_ForwardDropsWhenBufferFull(t *testing.T) {
	tr := New(Params{Token: "x"})
	tr.msgs = make(chan scanner.Message, 1)
	require.NoError(t, tr.Subscribe(context.Background(), []string{"-1001"}))

	tr.forward(tbMessage(-1001, "", "chat", 1, "first"))
	tr.forward(tbMessage(-1001, "", "chat", 2, "second, dropped"))

	require.Len(t, tr.msgs, 1)
	msg := <-tr.msgs
	assert.Equal(t, "1", msg.MessageID)
}

func TestTransport_PollErrorAuthLoss(t *testing.T) {
	tr := New(Params{Token: "x"})

	tr.pollError(errors.New("api error: some transient failure"))
	assert.NoError(t, tr.Err(), "transient poll errors are not terminal")

	tr.pollError(tb.ErrUnauthorized)
	err := tr.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanner.ErrUnauthorized))

	tr.pollError(errors.New("telegram: 401 Unauthorized"))
	assert.True(t, errors.Is(tr.Err(), scanner.ErrUnauthorized), "first terminal cause is kept")
}

func TestConvertMessage_NoSender(t *testing.T) {
	m := &tb.Message{
		ID:       7,
		Text:     "channel post",
		Unixtime: time.Now().Unix(),
		Chat:     &tb.Chat{ID: -500, Title: "news channel"},
	}
	msg := convertMessage(m)
	assert.Equal(t, "-500", msg.ChatID)
	assert.Equal(t, "7", msg.MessageID)
	assert.Empty(t, msg.SenderID)
	assert.Empty(t, msg.SenderName)
}
