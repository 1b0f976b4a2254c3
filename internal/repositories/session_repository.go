package repository

import (
	"context"
	"sync"

	"github.com/florista/storefront/internal/models"
)

// SessionRepository keeps per-session UI state: active view, cart dialog
// visibility and the constructor's selection.
type SessionRepository struct {
	mu     sync.RWMutex
	states map[string]*models.SessionState
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{states: make(map[string]*models.SessionState)}
}

// Get returns the session state, defaulting to the home view for new
// sessions.
func (r *SessionRepository) Get(_ context.Context, sessionID string) (*models.SessionState, error) {
	r.mu.RLock()
	state, ok := r.states[sessionID]
	r.mu.RUnlock()

	if !ok {
		return &models.SessionState{
			SessionID:       sessionID,
			ActiveView:      models.ViewHome,
			SelectedFlowers: []int64{},
		}, nil
	}

	return copyState(state), nil
}

func (r *SessionRepository) Save(_ context.Context, state *models.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state.SessionID] = copyState(state)

	return nil
}

func copyState(state *models.SessionState) *models.SessionState {
	out := *state
	out.SelectedFlowers = make([]int64, len(state.SelectedFlowers))
	copy(out.SelectedFlowers, state.SelectedFlowers)

	return &out
}
