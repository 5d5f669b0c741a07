package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/docweave/docweave/internal/nav"
)

var testOutline = nav.Outline{
	{Label: "Docs", Items: []nav.Item{
		{Label: "A", Path: "/a"},
		{Label: "B", Path: "/b"},
		{Label: "C", Path: "/c"},
		{Label: "D", Path: "/d"},
		{Label: "E", Path: "/e"},
	}},
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0, SiteDir: t.TempDir()}, "Test Docs", testOutline,
		rand.New(rand.NewSource(1)))
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestNavEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/nav", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp navResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Title != "Test Docs" {
		t.Errorf("title = %q, want %q", resp.Title, "Test Docs")
	}
	if len(resp.Pages) != 5 {
		t.Fatalf("pages = %d, want 5", len(resp.Pages))
	}
	if resp.Pages[0].Path != "/a" || resp.Pages[4].Path != "/e" {
		t.Errorf("pages out of order: %+v", resp.Pages)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/suggest?path=/c", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp suggestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Path != "/c" {
		t.Errorf("path = %q, want /c", resp.Path)
	}
	if len(resp.Suggestions) < 2 {
		t.Fatalf("suggestions = %d, want at least 2", len(resp.Suggestions))
	}
	// Sequential suggestions come first.
	if resp.Suggestions[0].Path != "/d" || resp.Suggestions[1].Path != "/e" {
		t.Errorf("sequential suggestions = %+v, want /d then /e first", resp.Suggestions[:2])
	}
	for _, s := range resp.Suggestions {
		if s.Path == "/c" {
			t.Error("suggestions contain the current page")
		}
	}
}

func TestSuggestNormalizesPath(t *testing.T) {
	srv := newTestServer(t)

	// Trailing slash and query noise are stripped before lookup.
	req := httptest.NewRequest("GET", "/api/suggest?path="+
		"%2Fc%2F%3Futm%3D1", nil) // "/c/?utm=1"
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp suggestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Path != "/c" {
		t.Errorf("normalized path = %q, want /c", resp.Path)
	}
	if len(resp.Suggestions) == 0 || resp.Suggestions[0].Path != "/d" {
		t.Errorf("suggestions = %+v, want /d first", resp.Suggestions)
	}
}

func TestSuggestUnknownPath(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/suggest?path=/not-in-graph", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unknown path should still return 200, got %d", w.Code)
	}

	var resp suggestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	seen := make(map[string]bool)
	for _, s := range resp.Suggestions {
		if seen[s.Path] {
			t.Errorf("duplicate suggestion %q", s.Path)
		}
		seen[s.Path] = true
	}
}

func TestSuggestMissingParam(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/suggest", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing path, got %d", w.Code)
	}
}

func TestStaticFiles(t *testing.T) {
	siteDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<html>hi</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := New(Config{Port: 0, SiteDir: siteDir}, "T", nil, rand.New(rand.NewSource(1)))

	req := httptest.NewRequest("GET", "/index.html", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for static file, got %d", w.Code)
	}
	if w.Body.String() != "<html>hi</html>" {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, SiteDir: t.TempDir(), AllowAll: true}, "T", nil,
		rand.New(rand.NewSource(1)))

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestReloadHubBroadcastState(t *testing.T) {
	hub := NewReloadHub()
	if hub.BuildID() != "" {
		t.Errorf("new hub build ID = %q, want empty", hub.BuildID())
	}
	hub.Broadcast("build-1")
	if hub.BuildID() != "build-1" {
		t.Errorf("build ID = %q, want build-1", hub.BuildID())
	}
}

func TestReloadHubConcurrentConnectAndBroadcast(t *testing.T) {
	hub := NewReloadHub()
	hub.Broadcast("build-0") // non-empty, so every new connection gets an initial send

	ts := httptest.NewServer(http.HandlerFunc(hub.Handle))
	defer ts.Close()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	// Broadcast continuously while connections come and go. A connection has
	// exactly one writer at a time, so the initial send and the broadcasts
	// must never interleave on the wire.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 100; i++ {
			hub.Broadcast(fmt.Sprintf("build-%d", i))
		}
	}()

	var conns []*websocket.Conn
	for i := 0; i < 10; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}
		conns = append(conns, conn)

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg reloadMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("conn %d: reading initial build: %v", i, err)
		}
		if msg.BuildID == "" {
			t.Errorf("conn %d: initial build ID is empty", i)
		}
	}

	<-done
	for _, c := range conns {
		c.Close()
	}
}

func TestWatchDetectsChange(t *testing.T) {
	docsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(docsDir, "index.md"), []byte("# v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	go Watch(ctx, docsDir, nil, nil, 10*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	// Give the watcher a moment to take its baseline, then edit.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(docsDir, "index.md"), []byte("# v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}
