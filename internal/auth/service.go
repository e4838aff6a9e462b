package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"

	errors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/audit"
	auditmodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/audit"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// UserRepository is the data access surface for accounts.
type UserRepository interface {
	Create(u *user.User) error
	GetByID(id int64) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	List() ([]user.User, error)
	Update(u *user.User) error
	UpdatePassword(id int64, passwordHash string) error
	TouchLastLogin(id int64) error
	Delete(id int64) error
}

// Service handles authentication and user management. Mutating methods take
// the caller's session explicitly; there is no ambient current-user state
// outside the Store.
type Service struct {
	repo     UserRepository
	sessions *Store
	recorder audit.Recorder
	logger   *slog.Logger
}

func NewService(repo UserRepository, sessions *Store, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		recorder: recorder,
		logger:   logger,
	}
}

// Login verifies credentials, stamps last_login and installs the session.
func (s *Service) Login(req LoginRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		s.logger.Warn("login failed: unknown username", "username", req.Username)
		return nil, errors.ErrInvalidCredentials
	}

	if !u.IsActive {
		s.logger.Warn("login refused: account deactivated", "username", req.Username)
		return nil, errors.ErrUserInactive
	}

	if !VerifyPassword(req.Password, u.PasswordHash) {
		s.logger.Warn("login failed: bad password", "username", req.Username)
		return nil, errors.ErrInvalidCredentials
	}

	if err := s.repo.TouchLastLogin(u.ID); err != nil {
		// Non-fatal; the session is still valid.
		s.logger.Error("failed to update last_login", "error", err, "user_id", u.ID)
	}

	sess := NewSession(u)
	s.sessions.Set(sess)

	s.recorder.Record(audit.Entry{
		UserID:     &u.ID,
		Username:   u.Username,
		Action:     auditmodel.ActionLogin,
		EntityType: auditmodel.EntityUser,
		EntityID:   strPtr(fmt.Sprintf("%d", u.ID)),
		Details:    strPtr(fmt.Sprintf("User logged in: %s", u.Username)),
	})

	s.logger.Info("login successful", "username", u.Username, "role", u.Role)
	return sess, nil
}

// Logout clears the session slot. Calling it with no active session is a
// no-op.
func (s *Service) Logout() {
	sess := s.sessions.Current()
	if sess != nil {
		s.recorder.Record(audit.Entry{
			UserID:     &sess.UserID,
			Username:   sess.Username,
			Action:     auditmodel.ActionLogout,
			EntityType: auditmodel.EntityUser,
			EntityID:   strPtr(fmt.Sprintf("%d", sess.UserID)),
			Details:    strPtr(fmt.Sprintf("User logged out: %s", sess.Username)),
		})
	}
	s.sessions.Clear()
}

// CurrentSession returns a copy of the active session, or nil.
func (s *Service) CurrentSession() *Session {
	return s.sessions.Current()
}

// CreateUser adds an account. Permissions come from the request override when
// present, otherwise from the role defaults.
func (s *Service) CreateUser(sess *Session, req CreateUserRequest) (*UserInfo, error) {
	if err := Authorize(sess, user.CapManageUsers); err != nil {
		s.logger.Warn("create user denied", "requested_by", sessionUsername(sess))
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	permissions := user.PermissionsForRole(req.Role)
	if req.Permissions != nil {
		permissions = *req.Permissions
	}

	u := &user.User{
		Username:         req.Username,
		PasswordHash:     HashPassword(req.Password),
		FullName:         req.FullName,
		Role:             req.Role,
		DepartmentAccess: req.DepartmentAccess,
		IsActive:         true,
		Permissions:      permissions,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", req.Username)
		return nil, err
	}

	info := toUserInfo(u)
	s.recorder.Record(audit.Entry{
		UserID:     &sess.UserID,
		Username:   sess.Username,
		Action:     auditmodel.ActionCreate,
		EntityType: auditmodel.EntityUser,
		EntityID:   strPtr(fmt.Sprintf("%d", u.ID)),
		NewValue:   marshalSnapshot(info),
		Details:    strPtr(fmt.Sprintf("Created user: %s (%s)", u.Username, u.Role)),
	})

	s.logger.Info("user created", "username", u.Username, "role", u.Role, "created_by", sess.Username)
	return &info, nil
}

// ListUsers returns every account, ordered by id.
func (s *Service) ListUsers(sess *Session) ([]UserInfo, error) {
	if err := Authorize(sess, user.CapManageUsers); err != nil {
		return nil, err
	}

	users, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = toUserInfo(&users[i])
	}
	return infos, nil
}

// UpdateUser replaces the mutable fields of an account. A missing user id is
// a silent no-op, mirroring the repository's full-row replace semantics.
func (s *Service) UpdateUser(sess *Session, req UpdateUserRequest) error {
	if err := Authorize(sess, user.CapManageUsers); err != nil {
		s.logger.Warn("update user denied", "requested_by", sessionUsername(sess))
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	var oldValue *string
	if existing, err := s.repo.GetByID(req.UserID); err == nil {
		oldValue = marshalSnapshot(toUserInfo(existing))
	}

	permissions := user.PermissionsForRole(req.Role)
	if req.Permissions != nil {
		permissions = *req.Permissions
	}

	u := &user.User{
		ID:               req.UserID,
		FullName:         req.FullName,
		Role:             req.Role,
		DepartmentAccess: req.DepartmentAccess,
		IsActive:         req.IsActive,
		Permissions:      permissions,
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", req.UserID)
		return err
	}

	s.recorder.Record(audit.Entry{
		UserID:     &sess.UserID,
		Username:   sess.Username,
		Action:     auditmodel.ActionUpdate,
		EntityType: auditmodel.EntityUser,
		EntityID:   strPtr(fmt.Sprintf("%d", req.UserID)),
		OldValue:   oldValue,
		NewValue:   marshalSnapshot(req),
		Details:    strPtr(fmt.Sprintf("Updated user: %s", req.FullName)),
	})

	s.logger.Info("user updated", "user_id", req.UserID, "updated_by", sess.Username)
	return nil
}

// DeleteUser removes an account. Deleting the account behind the current
// session is rejected unconditionally, regardless of permissions.
func (s *Service) DeleteUser(sess *Session, userID int64) error {
	if err := Authorize(sess, user.CapManageUsers); err != nil {
		s.logger.Warn("delete user denied", "requested_by", sessionUsername(sess))
		return err
	}
	if sess.UserID == userID {
		s.logger.Warn("self-delete rejected", "user_id", userID)
		return errors.ErrSelfDelete
	}

	var oldValue *string
	if existing, err := s.repo.GetByID(userID); err == nil {
		oldValue = marshalSnapshot(toUserInfo(existing))
	}

	if err := s.repo.Delete(userID); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		return err
	}

	s.recorder.Record(audit.Entry{
		UserID:     &sess.UserID,
		Username:   sess.Username,
		Action:     auditmodel.ActionDelete,
		EntityType: auditmodel.EntityUser,
		EntityID:   strPtr(fmt.Sprintf("%d", userID)),
		OldValue:   oldValue,
		Details:    strPtr(fmt.Sprintf("Deleted user id %d", userID)),
	})

	s.logger.Info("user deleted", "user_id", userID, "deleted_by", sess.Username)
	return nil
}

// ResetUserPassword sets a new password for another account.
func (s *Service) ResetUserPassword(sess *Session, req ResetPasswordRequest) error {
	if err := Authorize(sess, user.CapManageUsers); err != nil {
		s.logger.Warn("password reset denied", "requested_by", sessionUsername(sess))
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(req.UserID, HashPassword(req.NewPassword)); err != nil {
		s.logger.Error("failed to reset password", "error", err, "user_id", req.UserID)
		return err
	}

	s.logger.Info("password reset", "user_id", req.UserID, "reset_by", sess.Username)
	return nil
}

// ChangeOwnPassword verifies the current password before replacing it.
func (s *Service) ChangeOwnPassword(sess *Session, req ChangePasswordRequest) error {
	if sess == nil {
		return errors.ErrNotAuthenticated
	}
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetByID(sess.UserID)
	if err != nil {
		return errors.ErrUserNotFound
	}

	if !VerifyPassword(req.CurrentPassword, u.PasswordHash) {
		return errors.NewUnauthenticatedError("Current password is incorrect", errors.ErrCodeInvalidCredentials)
	}

	if err := s.repo.UpdatePassword(sess.UserID, HashPassword(req.NewPassword)); err != nil {
		s.logger.Error("failed to change password", "error", err, "user_id", sess.UserID)
		return err
	}

	s.logger.Info("password changed", "user_id", sess.UserID)
	return nil
}

func sessionUsername(sess *Session) string {
	if sess == nil {
		return auditmodel.SystemUsername
	}
	return sess.Username
}

func strPtr(s string) *string { return &s }

func marshalSnapshot(v interface{}) *string {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}
