package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ytget/amdl-client/internal/model"
)

// DefaultInterval is the login status refresh period
const DefaultInterval = 2 * time.Second

// ErrEmptyInput is returned when a required field is blank
var ErrEmptyInput = errors.New("empty input")

// Backend is the part of the API the login flow needs
type Backend interface {
	LoginStatus(ctx context.Context) (model.LoginStatus, error)
	Login(ctx context.Context, username, password string) error
	Submit2FA(ctx context.Context, code string) error
}

// Poller checks the login status on an interval until the login succeeds.
// Each status is resolved and handed to the update callback.
type Poller struct {
	backend  Backend
	interval time.Duration

	mu       sync.Mutex
	onUpdate func(model.LoginStatus, ViewState)
	cancel   context.CancelFunc
	parent   context.Context
	done     chan struct{}
}

// NewPoller creates a login poller; interval <= 0 uses DefaultInterval
func NewPoller(backend Backend, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{backend: backend, interval: interval}
}

// SetUpdateCallback sets the function receiving each resolved status
func (p *Poller) SetUpdateCallback(callback func(model.LoginStatus, ViewState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// Start begins polling under ctx. Calling Start again restarts the loop.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.parent = ctx
	p.startLocked()
}

// Restart begins a fresh polling loop after a credential submit
func (p *Poller) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.parent == nil {
		p.parent = context.Background()
	}
	p.startLocked()
}

// Stop ends the polling loop and waits for it to exit
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

// Running reports whether a polling loop is active
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *Poller) startLocked() {
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(p.parent)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done
	go p.run(ctx, done)
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if p.Check(ctx) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Check polls once and reports whether polling should stop
func (p *Poller) Check(ctx context.Context) bool {
	status, err := p.backend.LoginStatus(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("Poll Error: %v", err)
		}
		return false
	}
	vs := Resolve(status)

	p.mu.Lock()
	callback := p.onUpdate
	p.mu.Unlock()
	if callback != nil {
		callback(status, vs)
	}
	return vs.StopPolling
}

// Login submits credentials. Blank fields and failed requests return an error
// so the dialog can shake; success restarts polling.
func (p *Poller) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrEmptyInput
	}
	if err := p.backend.Login(ctx, username, password); err != nil {
		log.Printf("Login request failed: %v", err)
		return err
	}
	p.Restart()
	return nil
}

// Submit2FA sends the second-factor code. A blank code or a transport failure
// returns an error.
func (p *Poller) Submit2FA(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyInput
	}
	if err := p.backend.Submit2FA(ctx, code); err != nil {
		log.Printf("2FA submit failed: %v", err)
		return err
	}
	return nil
}
