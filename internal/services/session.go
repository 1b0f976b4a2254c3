package service

import (
	"context"

	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
)

// SessionService is the view router: one active view per session, plus the
// cart dialog flag. Switching views is unconditional and loses no state —
// every screen reads from the shared session stores.
type SessionService interface {
	State(ctx context.Context, sessionID string) (*models.SessionState, error)
	SetActiveView(ctx context.Context, sessionID, view string) (*models.SessionState, error)
	SetCartOpen(ctx context.Context, sessionID string, open bool) (*models.SessionState, error)
}

type sessionService struct {
	repo *repository.SessionRepository
}

func NewSessionService(repo *repository.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) State(ctx context.Context, sessionID string) (*models.SessionState, error) {
	return s.repo.Get(ctx, sessionID)
}

func (s *sessionService) SetActiveView(ctx context.Context, sessionID, view string) (*models.SessionState, error) {

	state, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.ActiveView = view

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

func (s *sessionService) SetCartOpen(ctx context.Context, sessionID string, open bool) (*models.SessionState, error) {

	state, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.CartOpen = open

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}
