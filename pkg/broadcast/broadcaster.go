// Package broadcast pushes freshly recorded mentions to live dashboard
// connections. Events are coalesced in a short window so a burst inside one
// chat costs roughly one network push per connected client instead of one
// per message.
package broadcast

import (
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/chatradar/chatradar/pkg/domain"
)

//go:generate moq -out mocks/client.go -pkg mocks -skip-ensure -fmt goimports . Client

// Client is a live connection capable of receiving JSON pushes,
// satisfied by *websocket.Conn.
type Client interface {
	WriteJSON(v any) error
	Close() error
}

// Batch is the wire frame delivered to a client, all mentions for one tenant
// that arrived within a single coalescing window.
type Batch struct {
	Type     string                  `json:"type"`
	Mentions []domain.MentionPayload `json:"mentions"`
}

// Broadcaster owns the pending event buffer and the registry of live
// connections keyed by tenant. A single flush task drains the buffer, the
// mutex is held only for append and swap, never across a write to a client.
type Broadcaster struct {
	window time.Duration
	nowFn  func() time.Time

	mu      sync.Mutex
	pending []domain.Mention
	armed   bool
	closed  bool

	cmu     sync.RWMutex
	clients map[int64]map[string]Client // tenant id -> connection id -> client
}

// New creates a broadcaster with the given coalescing window,
// zero or negative window defaults to 80ms
func New(window time.Duration) *Broadcaster {
	if window <= 0 {
		window = 80 * time.Millisecond
	}
	return &Broadcaster{
		window:  window,
		nowFn:   time.Now,
		clients: make(map[int64]map[string]Client),
	}
}

// Register adds a live connection for the tenant and returns its connection id
func (b *Broadcaster) Register(tenantID int64, client Client) string {
	id := uuid.New().String()

	b.cmu.Lock()
	defer b.cmu.Unlock()
	if b.clients[tenantID] == nil {
		b.clients[tenantID] = make(map[string]Client)
	}
	b.clients[tenantID][id] = client
	lgr.Printf("[DEBUG] broadcast client %s registered for tenant %d, %d total", id, tenantID, len(b.clients[tenantID]))
	return id
}

// Unregister removes the connection from the live set, the connection itself
// is closed by the caller
func (b *Broadcaster) Unregister(tenantID int64, connID string) {
	b.cmu.Lock()
	defer b.cmu.Unlock()
	if conns, ok := b.clients[tenantID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(b.clients, tenantID)
		}
	}
}

// Publish appends the mention to the pending buffer and arms the flush task
// if it is not already armed. Never blocks on client I/O.
func (b *Broadcaster) Publish(m domain.Mention) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.pending = append(b.pending, m)
	if !b.armed {
		b.armed = true
		time.AfterFunc(b.window, b.flush)
	}
}

// flush swaps the pending buffer out under the lock, delivers it, and re-arms
// itself when new events arrived while it was writing
func (b *Broadcaster) flush() {
	b.mu.Lock()
	batch := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(batch) > 0 {
		b.deliver(batch)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		b.armed = false
		return
	}
	if len(b.pending) > 0 {
		time.AfterFunc(b.window, b.flush)
		return
	}
	b.armed = false
}

// deliver groups the drained buffer into one batch per tenant, preserving
// submission order, and writes each batch to every live connection of that
// tenant. A failed write evicts only the failing connection.
func (b *Broadcaster) deliver(mentions []domain.Mention) {
	now := b.nowFn()

	order := []int64{}
	byTenant := map[int64][]domain.MentionPayload{}
	for i := range mentions {
		m := mentions[i]
		if _, ok := byTenant[m.TenantID]; !ok {
			order = append(order, m.TenantID)
		}
		byTenant[m.TenantID] = append(byTenant[m.TenantID], domain.NewMentionPayload(&m, now))
	}

	for _, tenantID := range order {
		frame := Batch{Type: "mentions", Mentions: byTenant[tenantID]}

		b.cmu.RLock()
		conns := make(map[string]Client, len(b.clients[tenantID]))
		for id, c := range b.clients[tenantID] {
			conns[id] = c
		}
		b.cmu.RUnlock()

		for id, client := range conns {
			if err := client.WriteJSON(frame); err != nil {
				lgr.Printf("[WARN] broadcast write failed for tenant %d client %s, evicting: %v", tenantID, id, err)
				b.Unregister(tenantID, id)
				_ = client.Close()
			}
		}
	}
}

// Close evicts all clients and stops accepting events
func (b *Broadcaster) Close() {
	b.mu.Lock()
	b.closed = true
	b.pending = nil
	b.mu.Unlock()

	b.cmu.Lock()
	defer b.cmu.Unlock()
	for tenantID, conns := range b.clients {
		for id, c := range conns {
			_ = c.Close()
			delete(conns, id)
		}
		delete(b.clients, tenantID)
	}
	lgr.Printf("[INFO] broadcaster closed")
}
