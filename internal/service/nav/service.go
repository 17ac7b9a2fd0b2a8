package nav

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	navmodel "github.com/campuscare/maya/backend/internal/model/nav"
)

var (
	ErrSessionNotFound = errors.New("nav session not found")
	ErrInvalidRole     = errors.New("invalid role")
)

// Service keeps one navigation state per app session: the role picked on the
// welcome screen, written once and only read afterwards. Exit tears the
// state down idempotently.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*state
}

type state struct {
	role   navmodel.Role
	exited bool
}

// NewService bootstraps the in-memory navigation service.
func NewService() *Service {
	return &Service{sessions: make(map[string]*state)}
}

// Login opens an app session for the selected role. An empty role is a
// valid anonymous entry and reads as student for routing purposes.
func (s *Service) Login(_ context.Context, role navmodel.Role) (string, error) {
	switch role {
	case navmodel.RoleStudent, navmodel.RoleCounsellor, navmodel.RoleAdmin, "":
	default:
		return "", ErrInvalidRole
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &state{role: role}
	s.mu.Unlock()
	return id, nil
}

// Role reads the stored role for an app session. Every Back call within the
// same session observes the same value until an explicit exit.
func (s *Service) Role(_ context.Context, sessionID string) (navmodel.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return "", ErrSessionNotFound
	}
	return st.role, nil
}

// Back resolves a back request against the session's stored role. When the
// result is ExitApp the session-scoped state (role and flags) is cleared;
// repeating the call performs no further teardown.
func (s *Service) Back(_ context.Context, sessionID string, current navmodel.ScreenID) (navmodel.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return navmodel.Action{}, ErrSessionNotFound
	}

	action := ResolveBack(current, st.role)
	if action.Kind == navmodel.ActionExit && !st.exited {
		st.role = ""
		st.exited = true
	}
	return action, nil
}

// Exited reports whether the session has been torn down by a root-level
// back request.
func (s *Service) Exited(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	return st.exited, nil
}
