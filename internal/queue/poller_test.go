package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/amdl-client/internal/model"
)

type fakeBackend struct {
	mu       sync.Mutex
	tasks    []model.Task
	err      error
	clearErr error
	polls    int
	clears   int
}

func (f *fakeBackend) Queue(ctx context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Task(nil), f.tasks...), nil
}

func (f *fakeBackend) ClearHistory(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return f.clearErr
}

func (f *fakeBackend) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

func TestPollPublishesView(t *testing.T) {
	backend := &fakeBackend{tasks: []model.Task{{ID: "1", Status: model.TaskStatusPending}}}
	p := NewPoller(backend, nil, time.Hour)

	var got []View
	p.SetUpdateCallback(func(v View) { got = append(got, v) })

	if err := p.Poll(context.Background()); err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	if len(got) != 1 || got[0].PendingCount != 1 {
		t.Fatalf("Expected one view with one pending task, got %+v", got)
	}

	backend.err = errors.New("connection refused")
	if err := p.Poll(context.Background()); err == nil {
		t.Error("Expected poll error")
	}
	if len(got) != 1 {
		t.Error("Failed poll must not publish a view")
	}
	if len(p.Last()) != 1 {
		t.Error("Failed poll must keep the previous snapshot")
	}
}

func TestRefreshCoalesces(t *testing.T) {
	p := NewPoller(&fakeBackend{}, nil, 0)
	if p.interval != DefaultInterval {
		t.Errorf("Expected default interval, got %v", p.interval)
	}
	p.Refresh()
	p.Refresh()
	p.Refresh()
	if len(p.trigger) != 1 {
		t.Errorf("Expected one pending refresh, got %d", len(p.trigger))
	}
}

func TestRunPollsOnTrigger(t *testing.T) {
	backend := &fakeBackend{}
	p := NewPoller(backend, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for backend.pollCount() < 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	p.Refresh()
	for backend.pollCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if backend.pollCount() < 2 {
		t.Errorf("Expected initial and triggered polls, got %d", backend.pollCount())
	}
}

func TestClearHistory(t *testing.T) {
	backend := &fakeBackend{}
	p := NewPoller(backend, nil, time.Hour)

	if err := p.ClearHistory(context.Background()); err != nil {
		t.Fatalf("ClearHistory() error: %v", err)
	}
	if len(p.trigger) != 1 {
		t.Error("Successful clear should request a refresh")
	}
	<-p.trigger

	backend.clearErr = errors.New("500")
	if err := p.ClearHistory(context.Background()); err == nil {
		t.Error("Expected clear error")
	}
	if len(p.trigger) != 0 {
		t.Error("Failed clear must not refresh")
	}
}
