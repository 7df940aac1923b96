package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"katechon/internal/commands"
)

// WSInvokeRequest is one command invocation sent over the socket
type WSInvokeRequest struct {
	ID      string          `json:"id"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args"`
}

// WSInvokeReply answers exactly one WSInvokeRequest, matched by ID
type WSInvokeReply struct {
	ID     string      `json:"id"`
	OK     bool        `json:"ok"`
	Result interface{} `json:"result"`
	Error  string      `json:"error,omitempty"`
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocket connection wrapper with mutex for thread-safe writes
type safeWSConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *safeWSConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *safeWSConn) ReadMessage() (int, []byte, error) {
	return s.conn.ReadMessage()
}

func (s *safeWSConn) Close() error {
	return s.conn.Close()
}

// GET /ws
// Every frame is handled on its own goroutine so a slow completion does
// not hold up a location guess queued behind it. Replies may therefore
// arrive out of order.
func WSInvokeHandler(registry *commands.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawConn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("[WS] WebSocket upgrade failed:", err)
			return
		}
		conn := &safeWSConn{conn: rawConn}
		defer conn.Close()

		var wg sync.WaitGroup
		defer wg.Wait()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("[WS] read error: %v", err)
				}
				return
			}

			var req WSInvokeRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				conn.WriteJSON(WSInvokeReply{OK: false, Error: "invalid JSON"})
				continue
			}
			if req.ID == "" {
				req.ID = uuid.New().String()
			}
			if req.Command == "" {
				conn.WriteJSON(WSInvokeReply{ID: req.ID, OK: false, Error: "missing command"})
				continue
			}

			wg.Add(1)
			go func(req WSInvokeRequest) {
				defer wg.Done()
				result, err := registry.Invoke(ctx, req.Command, req.Args)
				reply := WSInvokeReply{ID: req.ID, OK: err == nil, Result: result}
				if err != nil {
					reply.Error = err.Error()
				}
				if werr := conn.WriteJSON(reply); werr != nil {
					log.Printf("[WS] failed to write reply %s: %v", req.ID, werr)
				}
			}(req)
		}
	}
}
