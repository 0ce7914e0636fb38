package queue

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/amdl-client/internal/model"
)

// DefaultInterval is the queue refresh period
const DefaultInterval = 2 * time.Second

// Backend is the part of the API the queue views need
type Backend interface {
	Queue(ctx context.Context) ([]model.Task, error)
	ClearHistory(ctx context.Context) error
}

// Poller fetches the queue on a fixed interval and on demand, and hands each
// successfully fetched snapshot to the update callback as a View. A failed
// fetch is logged and leaves the previous render untouched.
type Poller struct {
	backend  Backend
	state    *ViewState
	interval time.Duration
	trigger  chan struct{}

	mu       sync.Mutex
	onUpdate func(View)
	last     []model.Task
}

// NewPoller creates a poller; interval <= 0 uses DefaultInterval
func NewPoller(backend Backend, state *ViewState, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if state == nil {
		state = NewViewState()
	}
	return &Poller{
		backend:  backend,
		state:    state,
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}
}

// SetUpdateCallback sets the function receiving each new view
func (p *Poller) SetUpdateCallback(callback func(View)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// State returns the expand state shared with the views
func (p *Poller) State() *ViewState {
	return p.state
}

// Refresh asks for an immediate poll. Requests made while one is already
// pending are merged.
func (p *Poller) Refresh() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Run polls until ctx is done
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	_ = p.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-p.trigger:
		}
		_ = p.Poll(ctx)
	}
}

// Poll fetches one snapshot and publishes its view
func (p *Poller) Poll(ctx context.Context) error {
	tasks, err := p.backend.Queue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("Queue update error: %v", err)
		}
		return err
	}

	view := BuildView(tasks, p.state)

	p.mu.Lock()
	p.last = tasks
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback(view)
	}
	return nil
}

// Last returns the most recent snapshot
func (p *Poller) Last() []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Task(nil), p.last...)
}

// ClearHistory removes finished tasks on the backend and refreshes the views.
// On failure the current render stays as it is.
func (p *Poller) ClearHistory(ctx context.Context) error {
	if err := p.backend.ClearHistory(ctx); err != nil {
		log.Printf("Failed to clear history: %v", err)
		return fmt.Errorf("failed to clear history: %w", err)
	}
	p.Refresh()
	return nil
}
