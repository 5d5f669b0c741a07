package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/docweave/docweave/internal/walker"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The site is served from the same host; allow its pages to connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is pushed to every connected page when a rebuild completes.
type reloadMessage struct {
	BuildID string `json:"build_id"`
}

// ReloadHub tracks live-reload websocket connections and broadcasts build
// IDs to them.
type ReloadHub struct {
	mu      sync.Mutex
	conns   map[*websocket.Conn]bool
	buildID string
}

// NewReloadHub returns an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{conns: make(map[*websocket.Conn]bool)}
}

// Handle upgrades the request to a websocket and keeps it registered until
// the client goes away. The current build ID is sent immediately so pages
// loaded from a stale build reload at once.
func (h *ReloadHub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("reload: websocket upgrade: %v", err)
		return
	}

	// Registration and the initial send happen under the same lock that
	// Broadcast writes under: a connection only ever has one writer at a
	// time.
	h.mu.Lock()
	h.conns[conn] = true
	if h.buildID != "" {
		_ = conn.WriteJSON(reloadMessage{BuildID: h.buildID})
	}
	h.mu.Unlock()

	// Read loop: we expect no messages, but reading is how close is detected.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("reload: websocket read: %v", err)
				}
				return
			}
		}
	}()
}

// Broadcast records the new build ID and pushes it to every connected page.
func (h *ReloadHub) Broadcast(buildID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buildID = buildID
	for conn := range h.conns {
		if err := conn.WriteJSON(reloadMessage{BuildID: buildID}); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// BuildID returns the most recently broadcast build ID.
func (h *ReloadHub) BuildID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buildID
}

// Watch polls the markdown tree under docsDir and invokes onChange whenever
// its content fingerprint moves. It returns when ctx is cancelled. Polling
// keeps the watcher portable and is cheap at docs-tree sizes.
func Watch(ctx context.Context, docsDir string, include, exclude []string, interval time.Duration, onChange func()) {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	fingerprint := func() string {
		files, err := walker.Walk(walker.WalkerConfig{RootDir: docsDir, Include: include, Exclude: exclude})
		if err != nil {
			return ""
		}
		return walker.Fingerprint(files)
	}

	last := fingerprint()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if fp := fingerprint(); fp != "" && fp != last {
				last = fp
				onChange()
			}
		}
	}
}
