package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// Workspace is the state of one session: the passage on screen, the
// worksheet built from it and the latest collection practice passage.
type Workspace struct {
	Passage   *domain.Passage
	Worksheet *domain.Worksheet
	Practice  *domain.Passage

	passageSeq  uint64
	practiceSeq uint64
}

// Workspaces keeps one Workspace per session. Idle sessions expire and the
// least recently used are evicted past the size limit.
type Workspaces struct {
	mu  sync.Mutex
	lru *expirable.LRU[uuid.UUID, Workspace]
}

// NewWorkspaces creates a store for at most size sessions kept for ttl.
func NewWorkspaces(size int, ttl time.Duration) *Workspaces {
	return &Workspaces{lru: expirable.NewLRU[uuid.UUID, Workspace](size, nil, ttl)}
}

// Get returns the session's workspace, or a zero Workspace.
func (s *Workspaces) Get(sessionID uuid.UUID) Workspace {
	ws, _ := s.lru.Get(sessionID)
	return ws
}

// BeginPassage reserves the session's next passage generation. Only the
// result committed with the latest token is stored.
func (s *Workspaces) BeginPassage(sessionID uuid.UUID) uint64 {
	var token uint64
	s.update(sessionID, func(ws *Workspace) {
		ws.passageSeq++
		token = ws.passageSeq
	})
	return token
}

// CommitPassage replaces the current passage if token is still the latest
// one handed out by BeginPassage. The worksheet belonged to the old passage
// and is dropped. It reports false and stores nothing for a superseded token.
func (s *Workspaces) CommitPassage(sessionID uuid.UUID, token uint64, p *domain.Passage) bool {
	stored := false
	s.update(sessionID, func(ws *Workspace) {
		if ws.passageSeq != token {
			return
		}
		ws.Passage = p
		ws.Worksheet = nil
		stored = true
	})
	return stored
}

// SetWorksheet stores the worksheet built from passageID. It reports false
// and stores nothing when passageID is no longer the current passage.
func (s *Workspaces) SetWorksheet(sessionID, passageID uuid.UUID, w *domain.Worksheet) bool {
	stored := false
	s.update(sessionID, func(ws *Workspace) {
		if ws.Passage == nil || ws.Passage.ID != passageID {
			return
		}
		ws.Worksheet = w
		stored = true
	})
	return stored
}

// BeginPractice reserves the session's next practice passage generation.
func (s *Workspaces) BeginPractice(sessionID uuid.UUID) uint64 {
	var token uint64
	s.update(sessionID, func(ws *Workspace) {
		ws.practiceSeq++
		token = ws.practiceSeq
	})
	return token
}

// CommitPractice stores the practice passage if token is still the latest.
func (s *Workspaces) CommitPractice(sessionID uuid.UUID, token uint64, p *domain.Passage) bool {
	stored := false
	s.update(sessionID, func(ws *Workspace) {
		if ws.practiceSeq != token {
			return
		}
		ws.Practice = p
		stored = true
	})
	return stored
}

// Len returns the number of live sessions.
func (s *Workspaces) Len() int { return s.lru.Len() }

func (s *Workspaces) update(sessionID uuid.UUID, fn func(*Workspace)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, _ := s.lru.Get(sessionID)
	fn(&ws)
	s.lru.Add(sessionID, ws)
}
