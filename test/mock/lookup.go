// Package mock provides test doubles for the route finder.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, gated responses).
package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// LookupService is a configurable implementation of domain.ConnectionLookupService.
type LookupService struct {
	mu        sync.Mutex
	result    *domain.LookupResult
	err       error
	delay     time.Duration
	gate      chan struct{}
	calls     int
	lastQuery domain.SearchQuery
}

// NewLookupService creates a lookup double that answers with no connections until configured.
func NewLookupService() *LookupService {
	return &LookupService{result: &domain.LookupResult{}}
}

// WithConnections configures the service to return the given connections.
func (s *LookupService) WithConnections(connections []domain.Connection) *LookupService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &domain.LookupResult{Connections: connections}
	s.err = nil
	return s
}

// WithNoConnection configures the explicit "no connection" answer.
func (s *LookupService) WithNoConnection(message string) *LookupService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &domain.LookupResult{NoConnection: true, Message: message}
	s.err = nil
	return s
}

// WithError configures the service to fail with err.
func (s *LookupService) WithError(err error) *LookupService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// WithDelay configures the service to wait the given duration before responding.
func (s *LookupService) WithDelay(d time.Duration) *LookupService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// WithGate makes every call block until Release is called or its context ends.
func (s *LookupService) WithGate() *LookupService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
	return s
}

// Release unblocks every call waiting on the gate.
func (s *LookupService) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate != nil {
		close(s.gate)
		s.gate = nil
	}
}

// Find implements domain.ConnectionLookupService.
// It respects context cancellation while delayed or gated.
func (s *LookupService) Find(ctx context.Context, query domain.SearchQuery) (*domain.LookupResult, error) {
	s.mu.Lock()
	s.calls++
	s.lastQuery = query
	delay, gate := s.delay, s.gate
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, domain.NewTransportError("send request", ctx.Err())
		case <-time.After(delay):
		}
	}
	if gate != nil {
		select {
		case <-ctx.Done():
			return nil, domain.NewTransportError("send request", ctx.Err())
		case <-gate:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	result := *s.result
	result.Connections = append([]domain.Connection(nil), s.result.Connections...)
	return &result, nil
}

// CallCount returns the number of times Find was called.
func (s *LookupService) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastQuery returns the query of the most recent call.
func (s *LookupService) LastQuery() domain.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// Ensure LookupService implements domain.ConnectionLookupService at compile time.
var _ domain.ConnectionLookupService = (*LookupService)(nil)

// SampleConnections returns count connections between from and to,
// the cheapest last so ranking by the service is visible in tests.
func SampleConnections(from, to string, count int) []domain.Connection {
	connections := make([]domain.Connection, count)
	for i := 0; i < count; i++ {
		connections[i] = domain.Connection{
			ID:            strconv.Itoa(i + 1),
			FromCity:      from,
			ToCity:        to,
			DurationHours: 2 + float64(i)*0.5,
			Airfare:       4500 - float64(i)*300,
		}
	}
	return connections
}
