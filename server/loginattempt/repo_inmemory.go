package loginattempt

import (
	"errors"
	"sync"
	"time"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface
type InMemoryRepo struct {
	mu       sync.Mutex
	attempts map[string]*Attempt
	now      func() time.Time
}

// NewInMemoryRepo creates a new in-memory login attempt repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		attempts: make(map[string]*Attempt),
		now:      time.Now,
	}
}

// Upsert stores or updates a login attempt
func (r *InMemoryRepo) Upsert(id string, attempt *Attempt) error {
	if id == "" {
		return errors.New("attempt id cannot be empty")
	}
	if attempt == nil {
		return errors.New("attempt cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to prevent external modifications
	r.attempts[id] = &Attempt{
		Verifier:   attempt.Verifier,
		ReturnPath: attempt.ReturnPath,
		CreatedAt:  attempt.CreatedAt,
		ExpiresAt:  attempt.ExpiresAt,
	}

	return nil
}

// Take retrieves and deletes a login attempt. Expired attempts are dropped
// and reported as ErrNotFound.
func (r *InMemoryRepo) Take(id string) (*Attempt, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	attempt, exists := r.attempts[id]
	if !exists {
		return nil, ErrNotFound
	}
	delete(r.attempts, id)

	if !attempt.ExpiresAt.IsZero() && r.now().After(attempt.ExpiresAt) {
		return nil, ErrNotFound
	}

	return &Attempt{
		Verifier:   attempt.Verifier,
		ReturnPath: attempt.ReturnPath,
		CreatedAt:  attempt.CreatedAt,
		ExpiresAt:  attempt.ExpiresAt,
	}, nil
}

// Delete removes a login attempt
func (r *InMemoryRepo) Delete(id string) error {
	if id == "" {
		return errors.New("attempt id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attempts, id)
	return nil
}
