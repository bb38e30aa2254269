package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatradar/chatradar/pkg/broadcast"
	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/server/mocks"
)

func TestServer_WebsocketDeliversBroadcast(t *testing.T) {
	b := broadcast.New(10 * time.Millisecond)
	defer b.Close()

	s := testServer(t, &mocks.MentionStoreMock{}, b, nil)
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?tenant=7"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	b.Publish(domain.Mention{
		MentionEvent: domain.MentionEvent{
			TenantID:   7,
			Keyword:    "vps",
			Message:    "any vps deals?",
			Platform:   "telegram",
			ChatTitle:  "deals",
			SenderName: "Eve",
			OccurredAt: time.Now(),
		},
		ID:        3,
		CreatedAt: time.Now(),
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame broadcast.Batch
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "mentions", frame.Type)
	require.Len(t, frame.Mentions, 1)
	assert.Equal(t, int64(3), frame.Mentions[0].ID)
	assert.Equal(t, "vps", frame.Mentions[0].Keyword)
}

func TestServer_WebsocketUnregistersOnDisconnect(t *testing.T) {
	registry := &mocks.RegistryMock{
		RegisterFunc:   func(tenantID int64, client broadcast.Client) string { return "conn-1" },
		UnregisterFunc: func(tenantID int64, connID string) {},
	}

	s := testServer(t, &mocks.MentionStoreMock{}, registry, nil)
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?tenant=9"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Eventually(t, func() bool { return len(registry.RegisterCalls()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(9), registry.RegisterCalls()[0].TenantID)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return len(registry.UnregisterCalls()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "conn-1", registry.UnregisterCalls()[0].ConnID)
}

func TestServer_WebsocketRequiresTenant(t *testing.T) {
	s := testServer(t, &mocks.MentionStoreMock{}, &mocks.RegistryMock{}, nil)
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
