package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ytget/amdl-client/internal/model"
)

// Codecs understood by the backend
const (
	CodecALAC  = "alac"
	CodecAAC   = "aac"
	CodecAtmos = "atmos"
)

// RetryCodec is used when a failed task is submitted again
const RetryCodec = CodecALAC

// Default pacing of bulk submissions
const (
	DefaultBatchRate  rate.Limit = 5
	DefaultBatchBurst            = 5
)

// Service handles enqueue operations
type Service struct {
	backend Enqueuer
	limiter *rate.Limiter

	mu       sync.RWMutex
	codec    string
	onUpdate func(model.DownloadRequest) // called after each successful enqueue
}

// NewService creates a new download service
func NewService(backend Enqueuer, codec string) *Service {
	if codec == "" {
		codec = CodecALAC
	}
	return &Service{
		backend: backend,
		codec:   codec,
		limiter: rate.NewLimiter(DefaultBatchRate, DefaultBatchBurst),
	}
}

// SetUpdateCallback sets the callback function for added requests
func (s *Service) SetUpdateCallback(callback func(model.DownloadRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetCodec sets the codec used when a request names none
func (s *Service) SetCodec(codec string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if codec == "" {
		codec = CodecALAC
	}
	s.codec = codec
}

// Codec returns the current default codec
func (s *Service) Codec() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codec
}

// SetBatchRate changes the pacing of AddBatch
func (s *Service) SetBatchRate(limit rate.Limit, burst int) {
	s.limiter.SetLimit(limit)
	s.limiter.SetBurst(burst)
}

// Add submits one request
func (s *Service) Add(ctx context.Context, req model.DownloadRequest) error {
	if req.Codec == "" {
		req.Codec = s.Codec()
	}
	if err := s.backend.Enqueue(ctx, req); err != nil {
		log.Printf("Failed to add %s to queue: %v", req.URL, err)
		return err
	}
	log.Printf("Added to queue: %s (%s)", req.URL, req.Codec)
	s.notifyUpdate(req)
	return nil
}

// AddBatch submits requests one by one, paced by the batch limiter. Every
// request is attempted; the number added and the joined errors are returned.
func (s *Service) AddBatch(ctx context.Context, reqs []model.DownloadRequest) (int, error) {
	added := 0
	var errs []error
	for _, req := range reqs {
		if err := s.limiter.Wait(ctx); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.Add(ctx, req); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", req.URL, err))
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

// Retry submits the URL of a failed task again as a new request
func (s *Service) Retry(ctx context.Context, task model.Task) error {
	if task.URL == "" {
		return fmt.Errorf("task %s has no url", task.ID)
	}
	return s.Add(ctx, model.DownloadRequest{URL: task.URL, Codec: RetryCodec})
}

func (s *Service) notifyUpdate(req model.DownloadRequest) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(req)
	}
}
