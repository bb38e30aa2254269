package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// dashboard clients connect from their own origins, auth is handled upstream
	CheckOrigin: func(r *http.Request) bool { return true },
}

// websocketHandler upgrades the connection and registers it with the
// broadcaster for the tenant. The read loop only detects disconnect, all
// outbound traffic comes from the broadcaster.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantParam(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		lgr.Printf("[WARN] websocket upgrade failed for tenant %d: %v", tenantID, err)
		return
	}

	connID := s.registry.Register(tenantID, conn)
	lgr.Printf("[INFO] websocket client connected, tenant %d conn %s", tenantID, connID)

	go func() {
		defer func() {
			s.registry.Unregister(tenantID, connID)
			_ = conn.Close()
			lgr.Printf("[INFO] websocket client disconnected, tenant %d conn %s", tenantID, connID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
