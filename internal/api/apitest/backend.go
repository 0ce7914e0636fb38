// Package apitest provides an in-memory backend for exercising the client.
// It keeps a queue, a settings map and a login state, and records every
// request so tests can assert on what the client sent.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"nhooyr.io/websocket"

	"github.com/ytget/amdl-client/internal/model"
)

// Request is one recorded call
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// Backend is a fake download manager server
type Backend struct {
	*httptest.Server

	mu          sync.Mutex
	tasks       []model.Task
	settings    map[string]any
	login       model.LoginStatus
	results     model.SearchResults
	discography model.Discography
	storefronts []byte
	logLines    []string
	failures    map[string]int
	requests    []Request
}

// New starts a fake backend; it is closed with the test
func New(t interface {
	Cleanup(func())
}) *Backend {
	b := &Backend{
		settings: map[string]any{},
		login:    model.LoginIdle,
		failures: map[string]int{},
	}
	b.Server = httptest.NewServer(b.Router())
	t.Cleanup(b.Close)
	return b
}

// Router builds the backend routes
func (b *Backend) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(b.record)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/download", b.handleDownload).Methods("POST")
	api.HandleFunc("/queue", b.handleQueue).Methods("GET")
	api.HandleFunc("/search", b.handleSearch).Methods("GET")
	api.HandleFunc("/artist", b.handleArtist).Methods("GET")
	api.HandleFunc("/history/clear", b.handleClear).Methods("POST")
	api.HandleFunc("/settings", b.handleGetSettings).Methods("GET")
	api.HandleFunc("/settings", b.handleSaveSettings).Methods("POST")
	api.HandleFunc("/settings/parallel", b.handleParallel).Methods("POST")
	api.HandleFunc("/login/status", b.handleLoginStatus).Methods("GET")
	api.HandleFunc("/login", b.handleLogin).Methods("POST")
	api.HandleFunc("/2fa", b.handle2FA).Methods("POST")
	router.HandleFunc("/static/data/storefronts.json", b.handleStorefronts).Methods("GET")
	router.HandleFunc("/ws/logs", b.handleLogs)
	return router
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
		code := b.failures[r.URL.Path]
		b.mu.Unlock()

		if code != 0 {
			http.Error(w, "injected failure", code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Fail makes every call to path answer with code; 0 clears the failure
func (b *Backend) Fail(path string, code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if code == 0 {
		delete(b.failures, path)
		return
	}
	b.failures[path] = code
}

// SetTasks replaces the queue
func (b *Backend) SetTasks(tasks []model.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append([]model.Task(nil), tasks...)
}

// Tasks returns a copy of the queue
func (b *Backend) Tasks() []model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Task(nil), b.tasks...)
}

// SetSettings replaces the configuration
func (b *Backend) SetSettings(cfg map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.settings = cfg
}

// Settings returns the current configuration
func (b *Backend) Settings() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]any, len(b.settings))
	for k, v := range b.settings {
		out[k] = v
	}
	return out
}

// SetLoginStatus sets the login state reported by the status endpoint
func (b *Backend) SetLoginStatus(st model.LoginStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.login = st
}

// SetSearchResults sets what the search endpoint answers
func (b *Backend) SetSearchResults(r model.SearchResults) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results = r
}

// SetDiscography sets what the artist endpoint answers
func (b *Backend) SetDiscography(d model.Discography) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.discography = d
}

// SetStorefronts sets the raw storefront document
func (b *Backend) SetStorefronts(doc []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.storefronts = doc
}

// SetLogLines sets the lines pushed to every log stream subscriber before the
// server closes the socket
func (b *Backend) SetLogLines(lines ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logLines = lines
}

// Requests returns the recorded calls, optionally filtered by path
func (b *Backend) Requests(path string) []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Request
	for _, r := range b.requests {
		if path == "" || r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (b *Backend) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req model.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "invalid request", http.StatusUnprocessableEntity)
		return
	}
	b.mu.Lock()
	task := model.Task{
		ID:          model.TaskID(strconv.Itoa(len(b.tasks) + 1)),
		URL:         req.URL,
		Status:      model.TaskStatusPending,
		Title:       req.Title,
		Artist:      req.Artist,
		Album:       req.Album,
		Image:       req.Image,
		Codec:       req.Codec,
		TrackNumber: req.TrackNumber,
		TotalTracks: req.TotalTracks,
		SubTasks:    []model.SubTask{},
	}
	b.tasks = append(b.tasks, task)
	b.mu.Unlock()
	writeJSON(w, map[string]any{"status": "added", "task": task})
}

func (b *Backend) handleQueue(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	tasks := append([]model.Task{}, b.tasks...)
	b.mu.Unlock()
	writeJSON(w, tasks)
}

func (b *Backend) handleSearch(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.results)
}

func (b *Backend) handleArtist(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("url") == "" {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.discography)
}

func (b *Backend) handleClear(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	kept := b.tasks[:0:0]
	for _, t := range b.tasks {
		if t.Status.IsActive() {
			kept = append(kept, t)
		}
	}
	b.tasks = kept
	b.mu.Unlock()
	writeJSON(w, map[string]string{"status": "cleared"})
}

func (b *Backend) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, b.Settings())
}

func (b *Backend) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	update := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	for k, v := range update {
		b.settings[k] = v
	}
	b.mu.Unlock()
	writeJSON(w, map[string]string{"status": "updated"})
}

func (b *Backend) handleParallel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Limit int `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string]any{"status": "updated", "limit": req.Limit})
}

func (b *Backend) handleLoginStatus(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, map[string]any{"status": b.login})
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.login = model.LoginAuthenticating
	b.mu.Unlock()
	writeJSON(w, map[string]string{"status": "started"})
}

func (b *Backend) handle2FA(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.login != model.LoginWaiting2FA {
		writeJSON(w, map[string]string{"status": "error"})
		return
	}
	b.login = model.LoginAuthenticating
	writeJSON(w, map[string]string{"status": "submitted"})
}

func (b *Backend) handleStorefronts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	doc := b.storefronts
	b.mu.Unlock()
	if doc == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

func (b *Backend) handleLogs(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close(websocket.StatusInternalError, "log stream aborted")

	b.mu.Lock()
	lines := append([]string(nil), b.logLines...)
	b.mu.Unlock()

	ctx := context.Background()
	for _, line := range lines {
		if err := c.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
			return
		}
	}
	c.Close(websocket.StatusNormalClosure, "")
}
