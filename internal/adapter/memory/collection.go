// Package memory holds process-local stores: the default saved-word
// collection and the per-session workspace.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// CollectionRepo keeps saved words per owner, most recent first. Owners idle
// for longer than the ttl are forgotten, as are the least recently used ones
// past the size limit.
type CollectionRepo struct {
	mu    sync.Mutex
	words *expirable.LRU[uuid.UUID, []domain.SavedWord]
}

// NewCollectionRepo creates an empty repository for at most size owners.
func NewCollectionRepo(size int, ttl time.Duration) *CollectionRepo {
	return &CollectionRepo{words: expirable.NewLRU[uuid.UUID, []domain.SavedWord](size, nil, ttl)}
}

// Create stores word for ownerID and returns a copy.
func (r *CollectionRepo) Create(_ context.Context, ownerID uuid.UUID, word *domain.SavedWord) (*domain.SavedWord, error) {
	w := *word
	w.UserID = ownerID

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, _ := r.words.Get(ownerID)
	r.words.Add(ownerID, append([]domain.SavedWord{w}, stored...))
	return &w, nil
}

// List returns the owner's words, most recent first.
func (r *CollectionRepo) List(_ context.Context, ownerID uuid.UUID) ([]*domain.SavedWord, error) {
	r.mu.Lock()
	stored, _ := r.words.Get(ownerID)
	r.mu.Unlock()

	out := make([]*domain.SavedWord, len(stored))
	for i := range stored {
		w := stored[i]
		out[i] = &w
	}
	return out, nil
}

// Delete removes one word. Returns domain.ErrNotFound if the owner has no
// word with that id.
func (r *CollectionRepo) Delete(_ context.Context, ownerID, wordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, _ := r.words.Get(ownerID)
	idx := slices.IndexFunc(stored, func(w domain.SavedWord) bool { return w.ID == wordID })
	if idx < 0 {
		return domain.ErrNotFound
	}
	// Clone so slices handed out by List are never rewritten.
	r.words.Add(ownerID, slices.Delete(slices.Clone(stored), idx, idx+1))
	return nil
}

// Count returns the number of words the owner has saved.
func (r *CollectionRepo) Count(_ context.Context, ownerID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, _ := r.words.Get(ownerID)
	return len(stored), nil
}

// Ping implements the readiness check.
func (r *CollectionRepo) Ping(context.Context) error { return nil }
