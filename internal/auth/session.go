package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// Session is the record of the currently authenticated operator. Permissions
// are copied from the user row at login time and are not re-read afterwards,
// so edits to a user take effect at their next login.
type Session struct {
	Token            string             `json:"token"`
	UserID           int64              `json:"user_id"`
	Username         string             `json:"username"`
	FullName         string             `json:"full_name"`
	Role             string             `json:"role"`
	DepartmentAccess *string            `json:"department_access"`
	Permissions      user.PermissionSet `json:"permissions"`
}

// NewSession builds a session for a freshly authenticated user.
func NewSession(u *user.User) *Session {
	return &Session{
		Token:            uuid.NewString(),
		UserID:           u.ID,
		Username:         u.Username,
		FullName:         u.FullName,
		Role:             u.Role,
		DepartmentAccess: u.DepartmentAccess,
		Permissions:      u.Permissions,
	}
}

// Store holds at most one session for the lifetime of the process. It is the
// single-operator model of a desktop application, not a per-request session
// table. The lock is never held across I/O.
type Store struct {
	mu      sync.Mutex
	current *Session
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.current = nil
		return
	}
	copied := *sess
	s.current = &copied
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns a copy of the active session, or nil when nobody is logged
// in. Callers cannot mutate the stored session through the returned value.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}
