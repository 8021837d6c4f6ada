package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/timeutil"
)

// DefaultSessionTTL is the idle lifetime of a session when none is configured.
const DefaultSessionTTL = 30 * time.Minute

// SessionObserver is notified whenever the number of live sessions changes.
type SessionObserver interface {
	SessionsChanged(active int)
}

// ControllerFactory builds the controller of a new session.
type ControllerFactory func() *SearchController

// Session is one UI session owning exactly one SearchController.
type Session struct {
	ID         string
	Controller *SearchController
	CreatedAt  time.Time

	lastSeen time.Time
}

// SessionManager defines the operations presentation layers use to reach their controller.
type SessionManager interface {
	// Create starts a new session seeded by the controller factory.
	Create() *Session

	// Get returns a live session and marks it as used.
	// It fails with domain.ErrSessionNotFound for unknown or expired sessions.
	Get(id string) (*Session, error)

	// Delete closes and removes a session.
	Delete(id string) error

	// Len returns the number of live sessions.
	Len() int
}

// SessionConfig contains the lifetime settings of the registry.
type SessionConfig struct {
	TTL   time.Duration
	Clock timeutil.Clock
}

// SessionRegistry keeps sessions in memory and evicts the ones idle for longer than the TTL.
type SessionRegistry struct {
	newController ControllerFactory
	ttl           time.Duration
	clock         timeutil.Clock
	observer      SessionObserver
	log           *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionRegistry creates a registry. If config is nil, the default TTL and the real clock are used.
func NewSessionRegistry(factory ControllerFactory, config *SessionConfig, observer SessionObserver, log *logger.Logger) *SessionRegistry {
	r := &SessionRegistry{
		newController: factory,
		ttl:           DefaultSessionTTL,
		clock:         timeutil.NewRealClock(),
		observer:      observer,
		log:           log,
		sessions:      make(map[string]*Session),
	}
	if config != nil {
		if config.TTL > 0 {
			r.ttl = config.TTL
		}
		if config.Clock != nil {
			r.clock = config.Clock
		}
	}
	if r.log == nil {
		r.log = logger.Nop()
	}
	return r
}

// Create implements SessionManager.Create.
func (r *SessionRegistry) Create() *Session {
	now := r.clock.Now()
	s := &Session{
		ID:         uuid.NewString(),
		Controller: r.newController(),
		CreatedAt:  now,
		lastSeen:   now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	active := len(r.sessions)
	r.mu.Unlock()

	r.log.WithSession(s.ID).Debug().Msg("session created")
	r.changed(active)
	return s
}

// Get implements SessionManager.Get.
func (r *SessionRegistry) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	if timeutil.Expired(r.clock, s.lastSeen, r.ttl) {
		delete(r.sessions, id)
		active := len(r.sessions)
		r.mu.Unlock()

		s.Controller.Close()
		r.changed(active)
		return nil, domain.ErrSessionNotFound
	}
	s.lastSeen = r.clock.Now()
	r.mu.Unlock()

	return s, nil
}

// Delete implements SessionManager.Delete.
func (r *SessionRegistry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	active := len(r.sessions)
	r.mu.Unlock()

	s.Controller.Close()
	r.log.WithSession(id).Debug().Msg("session deleted")
	r.changed(active)
	return nil
}

// Len implements SessionManager.Len.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes every expired session and returns how many were removed.
func (r *SessionRegistry) Sweep() int {
	var expired []*Session

	r.mu.Lock()
	for id, s := range r.sessions {
		if timeutil.Expired(r.clock, s.lastSeen, r.ttl) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	active := len(r.sessions)
	r.mu.Unlock()

	if len(expired) == 0 {
		return 0
	}
	for _, s := range expired {
		s.Controller.Close()
	}
	r.log.Info().Int("expired", len(expired)).Int("active", active).Msg("expired sessions swept")
	r.changed(active)
	return len(expired)
}

// Run sweeps expired sessions every interval until ctx is done, then closes every session.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *SessionRegistry) closeAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Controller.Close()
	}
	r.changed(0)
}

func (r *SessionRegistry) changed(active int) {
	if r.observer != nil {
		r.observer.SessionsChanged(active)
	}
}

// Ensure SessionRegistry implements SessionManager at compile time.
var _ SessionManager = (*SessionRegistry)(nil)
