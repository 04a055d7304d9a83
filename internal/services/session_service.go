package services

import (
	"sync"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// sessionService tracks the single account active in this process. A
// successful login replaces the current session; a failed one leaves it
// untouched.
type sessionService struct {
	directory DirectoryServicer

	mu      sync.Mutex
	current models.Session
}

// NewSessionService creates a new SessionServicer starting logged out.
func NewSessionService(directory DirectoryServicer) SessionServicer {
	return &sessionService{
		directory: directory,
		current:   models.LoggedOut,
	}
}

// Authenticate dispatches to the directory for the given role and activates
// the session on success.
func (s *sessionService) Authenticate(role models.Role, handle, password string) (models.Session, error) {
	var session models.Session

	switch role {
	case models.RoleUser:
		user, err := s.directory.LoginUser(handle, password)
		if err != nil {
			return models.LoggedOut, err
		}
		session = models.Session{Handle: user.Handle, Role: models.RoleUser, DisplayName: user.FullName}
	case models.RoleAdmin:
		admin, err := s.directory.LoginAdmin(handle, password)
		if err != nil {
			return models.LoggedOut, err
		}
		session = models.Session{Handle: admin.Handle, Role: models.RoleAdmin, DisplayName: admin.DisplayName}
	default:
		return models.LoggedOut, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown role")
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
	return session, nil
}

// Current returns the active session, or the logged-out session when none is
// active.
func (s *sessionService) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// EndSession clears the session unconditionally. Calling it while logged out
// is a no-op.
func (s *sessionService) EndSession() {
	s.mu.Lock()
	s.current = models.LoggedOut
	s.mu.Unlock()
}
