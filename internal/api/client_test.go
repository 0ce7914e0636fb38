package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/amdl-client/internal/api/apitest"
	"github.com/ytget/amdl-client/internal/model"
)

func newTestClient(t *testing.T) (*Client, *apitest.Backend) {
	t.Helper()
	backend := apitest.New(t)
	c, err := NewClient(backend.URL, WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c, backend
}

func intPtr(n int) *int { return &n }

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://localhost:8000", false},
		{"https with slash", "https://example.com/", false},
		{"no scheme", "localhost:8000", true},
		{"ftp", "ftp://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestEnqueue(t *testing.T) {
	c, backend := newTestClient(t)

	req := model.DownloadRequest{
		URL:         "https://music.apple.com/us/album/x/1",
		Codec:       "alac",
		Title:       "Album",
		Artist:      "Artist",
		Album:       "Album",
		TrackNumber: intPtr(1),
		TotalTracks: intPtr(12),
	}
	if err := c.Enqueue(context.Background(), req); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	calls := backend.Requests("/api/download")
	if len(calls) != 1 {
		t.Fatalf("Expected 1 download call, got %d", len(calls))
	}
	var sent model.DownloadRequest
	if err := json.Unmarshal(calls[0].Body, &sent); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if diff := cmp.Diff(req, sent); diff != "" {
		t.Errorf("Request body mismatch (-want +got):\n%s", diff)
	}

	tasks := backend.Tasks()
	if len(tasks) != 1 || tasks[0].Status != model.TaskStatusPending {
		t.Errorf("Expected one pending task, got %+v", tasks)
	}
}

func TestEnqueueFailure(t *testing.T) {
	c, backend := newTestClient(t)
	backend.Fail("/api/download", http.StatusInternalServerError)

	err := c.Enqueue(context.Background(), model.DownloadRequest{URL: "u", Codec: "alac"})
	if err == nil {
		t.Fatal("Expected error from failing backend")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "failed to add to queue") {
		t.Errorf("Unexpected error text %q", err.Error())
	}

	if err := c.Enqueue(context.Background(), model.DownloadRequest{}); err == nil {
		t.Error("Expected error for empty url")
	}
}

func TestQueue(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetTasks([]model.Task{
		{ID: "1", URL: "a", Status: model.TaskStatusDownloading, Progress: "Track 2/10 (40%): Song"},
		{ID: "2", URL: "b", Status: model.TaskStatusPending},
	})

	tasks, err := c.Queue(context.Background())
	if err != nil {
		t.Fatalf("Queue() error: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Progress != "Track 2/10 (40%): Song" {
		t.Errorf("Unexpected tasks %+v", tasks)
	}

	calls := backend.Requests("/api/queue")
	if calls[0].Query != "t=1700000000000" {
		t.Errorf("Expected cache-busting query, got %q", calls[0].Query)
	}
}

func TestQueueMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()
	c, _ := NewClient(srv.URL, WithLogger(log.New(io.Discard, "", 0)))

	if _, err := c.Queue(context.Background()); err == nil || !strings.Contains(err.Error(), "malformed") {
		t.Errorf("Expected malformed response error, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetSearchResults(model.SearchResults{
		Songs: []model.SearchItem{{ID: "1", Type: model.ItemSongs, Name: "Song", URL: "u1"}},
	})

	res, err := c.Search(context.Background(), "daft punk & co")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(res.Songs) != 1 || res.Songs[0].Name != "Song" {
		t.Errorf("Unexpected results %+v", res)
	}
	calls := backend.Requests("/api/search")
	if calls[0].Query != "query=daft+punk+%26+co" {
		t.Errorf("Expected encoded query, got %q", calls[0].Query)
	}
}

func TestResolveArtist(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetDiscography(model.Discography{
		Albums: []model.SearchItem{{Name: "LP", URL: "a1", ReleaseDate: "2020-01-01"}},
	})

	d, err := c.ResolveArtist(context.Background(), "https://music.apple.com/us/artist/x/1")
	if err != nil {
		t.Fatalf("ResolveArtist() error: %v", err)
	}
	if len(d.Albums) != 1 {
		t.Errorf("Expected 1 album, got %d", len(d.Albums))
	}

	backend.Fail("/api/artist", http.StatusBadRequest)
	_, err = c.ResolveArtist(context.Background(), "bad")
	if err == nil || !strings.Contains(err.Error(), "failed to load artist data") {
		t.Errorf("Expected artist load error, got %v", err)
	}
}

func TestClearHistory(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetTasks([]model.Task{
		{ID: "1", Status: model.TaskStatusCompleted},
		{ID: "2", Status: model.TaskStatusFailed},
		{ID: "3", Status: model.TaskStatusPending},
		{ID: "4", Status: model.TaskStatusDownloading},
	})

	if err := c.ClearHistory(context.Background()); err != nil {
		t.Fatalf("ClearHistory() error: %v", err)
	}
	tasks := backend.Tasks()
	if len(tasks) != 2 || tasks[0].ID != "3" || tasks[1].ID != "4" {
		t.Errorf("Expected only active tasks to remain, got %+v", tasks)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	c, backend := newTestClient(t)
	backend.SetSettings(map[string]any{"storefront": "us", "embed-cover": true})

	cfg, err := c.Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if cfg["storefront"] != "us" || cfg["embed-cover"] != true {
		t.Errorf("Unexpected settings %v", cfg)
	}

	if err := c.SaveSettings(context.Background(), map[string]any{"limit-max": 200.0}); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}
	merged := backend.Settings()
	want := map[string]any{"storefront": "us", "embed-cover": true, "limit-max": 200.0}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("Settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSetParallelLimit(t *testing.T) {
	c, backend := newTestClient(t)
	if err := c.SetParallelLimit(context.Background(), 3); err != nil {
		t.Fatalf("SetParallelLimit() error: %v", err)
	}
	calls := backend.Requests("/api/settings/parallel")
	if len(calls) != 1 || string(calls[0].Body) != `{"limit":3}` {
		t.Errorf("Unexpected parallel calls %+v", calls)
	}
}

func TestLoginFlow(t *testing.T) {
	c, backend := newTestClient(t)
	ctx := context.Background()

	st, err := c.LoginStatus(ctx)
	if err != nil || st != model.LoginIdle {
		t.Fatalf("Expected idle, got %q (%v)", st, err)
	}

	if err := c.Login(ctx, "user", "pass"); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if body := string(backend.Requests("/api/login")[0].Body); body != `{"password":"pass","username":"user"}` {
		t.Errorf("Unexpected login body %s", body)
	}

	if err := c.Submit2FA(ctx, "123456"); err == nil {
		t.Error("Expected an error when no login waits for a code")
	}

	backend.SetLoginStatus(model.LoginWaiting2FA)
	if err := c.Submit2FA(ctx, "123456"); err != nil {
		t.Fatalf("Submit2FA() error: %v", err)
	}
	st, _ = c.LoginStatus(ctx)
	if st != model.LoginAuthenticating {
		t.Errorf("Expected authenticating after 2FA, got %q", st)
	}
}

func TestStorefronts(t *testing.T) {
	c, backend := newTestClient(t)

	if _, err := c.Storefronts(context.Background()); err == nil {
		t.Error("Expected error when storefront list is missing")
	}

	backend.SetStorefronts([]byte(`{"data":[{"id":"gb","attributes":{"name":"United Kingdom","supportedLanguageTags":["en-GB"],"defaultLanguageTag":"en-GB"}}]}`))
	list, err := c.Storefronts(context.Background())
	if err != nil {
		t.Fatalf("Storefronts() error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "United Kingdom" {
		t.Errorf("Unexpected storefronts %+v", list)
	}
}

func TestRequestHeaders(t *testing.T) {
	c, _ := newTestClient(t)
	req, err := c.newRequest(context.Background(), http.MethodPost, "/api/login", nil, map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("newRequest() error: %v", err)
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Error("Expected JSON content type")
	}
	if req.Header.Get("X-Request-ID") == "" {
		t.Error("Expected request id header")
	}
	if req.Header.Get("X-Client-Session") != c.SessionID() {
		t.Error("Expected session header")
	}
}

func TestErrorMessage(t *testing.T) {
	e := &Error{StatusCode: 404}
	if e.Error() != "backend returned 404 Not Found" {
		t.Errorf("Unexpected message %q", e.Error())
	}
	e.Message = "nope"
	if e.Error() != "backend returned 404 Not Found: nope" {
		t.Errorf("Unexpected message %q", e.Error())
	}
}
