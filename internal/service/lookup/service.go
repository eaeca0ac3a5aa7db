// Package lookup keeps the per-session definition popover. Only the result
// for the currently active word is ever applied; results for words the user
// has moved away from are dropped.
package lookup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/michaelwsd/lingualift/internal/domain"
)

type definer interface {
	Define(ctx context.Context, word string) string
}

// Status is the popover lifecycle state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
)

// Popover is a snapshot of a session's popover.
type Popover struct {
	Word       string
	Definition string
	Status     Status
}

type popover struct {
	mu    sync.Mutex
	seq   uint64
	state Popover
	// changed is closed whenever state leaves StatusLoading or the subject
	// changes; waiters then re-read state.
	changed chan struct{}
}

func newPopover() *popover {
	return &popover{state: Popover{Status: StatusIdle}, changed: make(chan struct{})}
}

// notify wakes waiters. Caller holds p.mu.
func (p *popover) notify() {
	close(p.changed)
	p.changed = make(chan struct{})
}

// Service tracks popovers per session.
type Service struct {
	definer  definer
	mu       sync.Mutex
	sessions *expirable.LRU[uuid.UUID, *popover]
	inflight sync.WaitGroup
	log      *slog.Logger
}

// NewService creates a lookup service holding at most size sessions for ttl.
func NewService(log *slog.Logger, d definer, size int, ttl time.Duration) *Service {
	return &Service{
		definer:  d,
		sessions: expirable.NewLRU[uuid.UUID, *popover](size, nil, ttl),
		log:      log.With("service", "lookup"),
	}
}

func (s *Service) popover(sessionID uuid.UUID) *popover {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.sessions.Get(sessionID)
	if !ok {
		p = newPopover()
		s.sessions.Add(sessionID, p)
	}
	return p
}

// Open makes word the active subject and starts its lookup. The lookup runs
// detached from ctx so a dropped request does not abort it; its result is
// applied only if word is still the active subject when it arrives.
func (s *Service) Open(ctx context.Context, sessionID uuid.UUID, word string) (Popover, error) {
	clean := domain.CleanWord(word)
	if clean == "" {
		return Popover{}, domain.NewValidationError("word", "required")
	}

	p := s.popover(sessionID)
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.state = Popover{Word: clean, Status: StatusLoading}
	p.notify()
	snapshot := p.state
	p.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		def := s.definer.Define(detached, clean)
		s.apply(detached, p, seq, def)
	}()

	return snapshot, nil
}

func (s *Service) apply(ctx context.Context, p *popover, seq uint64, def string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.seq != seq {
		s.log.DebugContext(ctx, "stale lookup dropped",
			slog.String("active_word", p.state.Word),
			slog.Uint64("seq", seq),
		)
		return
	}
	p.state.Definition = def
	p.state.Status = StatusReady
	p.notify()
}

// Get returns the session's popover.
func (s *Service) Get(sessionID uuid.UUID) Popover {
	p := s.popover(sessionID)
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Wait blocks until the active subject's lookup resolves, the popover is
// closed, or ctx is done. It returns the popover as it stands.
func (s *Service) Wait(ctx context.Context, sessionID uuid.UUID) (Popover, error) {
	p := s.popover(sessionID)
	for {
		p.mu.Lock()
		state, changed := p.state, p.changed
		p.mu.Unlock()

		if state.Status != StatusLoading {
			return state, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return state, ctx.Err()
		}
	}
}

// Close dismisses the popover. Any in-flight lookup becomes stale.
func (s *Service) Close(sessionID uuid.UUID) {
	p := s.popover(sessionID)
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	p.state = Popover{Status: StatusIdle}
	p.notify()
}

// Shutdown waits for in-flight lookups to finish or for ctx to end.
func (s *Service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
