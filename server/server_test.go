package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/server/mocks"
)

func testServer(t *testing.T, mentions MentionStore, registry Registry, scanners []StatusReporter) *Server {
	t.Helper()
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
	}
	return New(cfg, mentions, registry, scanners, "test", false)
}

func TestServer_StatusHandler(t *testing.T) {
	tenantID := int64(12)
	scanners := []StatusReporter{
		&mocks.StatusReporterMock{StatusFunc: func() domain.ScannerStatus {
			return domain.ScannerStatus{Platform: "telegram", Running: true, MultiTenant: true}
		}},
		&mocks.StatusReporterMock{StatusFunc: func() domain.ScannerStatus {
			return domain.ScannerStatus{Platform: "discord", Running: false, TenantID: &tenantID}
		}},
	}

	s := testServer(t, &mocks.MentionStoreMock{}, &mocks.RegistryMock{}, scanners)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status   string                 `json:"status"`
		Version  string                 `json:"version"`
		Scanners []domain.ScannerStatus `json:"scanners"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
	require.Len(t, resp.Scanners, 2)
	assert.Equal(t, "telegram", resp.Scanners[0].Platform)
	assert.True(t, resp.Scanners[0].Running)
	assert.Equal(t, "discord", resp.Scanners[1].Platform)
	require.NotNil(t, resp.Scanners[1].TenantID)
	assert.Equal(t, tenantID, *resp.Scanners[1].TenantID)
}

func TestServer_MentionsHandler(t *testing.T) {
	sim := 0.91
	mentions := &mocks.MentionStoreMock{
		ListFunc: func(ctx context.Context, tenantID int64, limit int) ([]*domain.Mention, error) {
			return []*domain.Mention{{
				MentionEvent: domain.MentionEvent{
					TenantID:   tenantID,
					Keyword:    "hosting",
					Message:    "who knows a good hosting?",
					Platform:   "telegram",
					ChatTitle:  "web dev",
					SenderName: "Dana",
					Similarity: &sim,
					OccurredAt: time.Now().Add(-2 * time.Minute),
				},
				ID:        11,
				CreatedAt: time.Now(),
			}}, nil
		},
		CountUnreadFunc: func(ctx context.Context, tenantID int64) (int, error) { return 3, nil },
	}

	s := testServer(t, mentions, &mocks.RegistryMock{}, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentions?tenant=7&limit=10", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Mentions []domain.MentionPayload `json:"mentions"`
		Unread   int                     `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Mentions, 1)
	assert.Equal(t, 3, resp.Unread)
	assert.Equal(t, int64(11), resp.Mentions[0].ID)
	assert.Equal(t, "hosting", resp.Mentions[0].Keyword)
	require.NotNil(t, resp.Mentions[0].TopicMatchPercent)
	assert.Equal(t, 91, *resp.Mentions[0].TopicMatchPercent)

	require.Len(t, mentions.ListCalls(), 1)
	assert.Equal(t, int64(7), mentions.ListCalls()[0].TenantID)
	assert.Equal(t, 10, mentions.ListCalls()[0].Limit)
}

func TestServer_MentionsHandlerBadRequests(t *testing.T) {
	s := testServer(t, &mocks.MentionStoreMock{}, &mocks.RegistryMock{}, nil)

	tests := []struct {
		name string
		url  string
	}{
		{"missing tenant", "/api/v1/mentions"},
		{"bad tenant", "/api/v1/mentions?tenant=abc"},
		{"negative tenant", "/api/v1/mentions?tenant=-1"},
		{"bad limit", "/api/v1/mentions?tenant=1&limit=huge"},
		{"limit over cap", "/api/v1/mentions?tenant=1&limit=100000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, http.NoBody))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServer_MentionsHandlerStoreError(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		ListFunc: func(ctx context.Context, tenantID int64, limit int) ([]*domain.Mention, error) {
			return nil, errors.New("db gone")
		},
	}
	s := testServer(t, mentions, &mocks.RegistryMock{}, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentions?tenant=1", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db gone", "internal error details stay out of responses")
}

func TestServer_SetReadHandler(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		SetReadFunc: func(ctx context.Context, id int64, read bool) error { return nil },
	}
	s := testServer(t, mentions, &mocks.RegistryMock{}, nil)

	// no body defaults to true
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mentions/5/read", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, mentions.SetReadCalls(), 1)
	assert.Equal(t, int64(5), mentions.SetReadCalls()[0].ID)
	assert.True(t, mentions.SetReadCalls()[0].Read)

	// explicit false
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mentions/5/read", strings.NewReader(`{"value":false}`))
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, mentions.SetReadCalls(), 2)
	assert.False(t, mentions.SetReadCalls()[1].Read)

	// bad id
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mentions/abc/read", http.NoBody))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SetLeadHandlerNotFound(t *testing.T) {
	mentions := &mocks.MentionStoreMock{
		SetLeadFunc: func(ctx context.Context, id int64, lead bool) error {
			return fmt.Errorf("mention %d not found", id)
		},
	}
	s := testServer(t, mentions, &mocks.RegistryMock{}, nil)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mentions/99/lead", http.NoBody))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Run(t *testing.T) {
	s := testServer(t, &mocks.MentionStoreMock{}, &mocks.RegistryMock{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
