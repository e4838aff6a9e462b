package auth

import (
	"fmt"

	errors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/core/common/validation"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// roleRule rejects role values outside the fixed enumeration. Empty strings
// pass so Required reports the missing field instead.
func roleRule(value interface{}) *errors.AppError {
	role, ok := value.(string)
	if !ok || role == "" || user.ValidRole(role) {
		return nil
	}
	return errors.NewValidationFieldError("role",
		fmt.Sprintf("role has an unrecognized value %q", role), errors.ErrCodeInvalidRole)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("username", r.Username).Required()
	v.Field("password", r.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// CreateUserRequest carries everything needed for a new account. Permissions
// may be supplied to override the role-derived defaults; no consistency with
// the role is enforced.
type CreateUserRequest struct {
	Username         string              `json:"username"`
	Password         string              `json:"password"`
	FullName         string              `json:"full_name"`
	Role             string              `json:"role"`
	DepartmentAccess *string             `json:"department_access"`
	Permissions      *user.PermissionSet `json:"permissions"`
}

func (r CreateUserRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("username", r.Username).Required().MinLength(3).MaxLength(50)
	v.Field("password", r.Password).Required().MinLength(6)
	v.Field("full_name", r.FullName).Required().MaxLength(100)
	v.Field("role", r.Role).Required().Custom(roleRule)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateUserRequest replaces the mutable fields of an account. The password
// is managed separately through reset/change operations.
type UpdateUserRequest struct {
	UserID           int64               `json:"user_id"`
	FullName         string              `json:"full_name"`
	Role             string              `json:"role"`
	DepartmentAccess *string             `json:"department_access"`
	IsActive         bool                `json:"is_active"`
	Permissions      *user.PermissionSet `json:"permissions"`
}

func (r UpdateUserRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("user_id", r.UserID).Required()
	v.Field("full_name", r.FullName).Required().MaxLength(100)
	v.Field("role", r.Role).Required().Custom(roleRule)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("current_password", r.CurrentPassword).Required()
	v.Field("new_password", r.NewPassword).Required().MinLength(6)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type ResetPasswordRequest struct {
	UserID      int64  `json:"user_id"`
	NewPassword string `json:"new_password"`
}

func (r ResetPasswordRequest) Validate() error {
	v := validation.NewValidator()
	v.Field("user_id", r.UserID).Required()
	v.Field("new_password", r.NewPassword).Required().MinLength(6)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UserInfo is the outward shape of an account; the password hash never
// leaves the service.
type UserInfo struct {
	ID               int64              `json:"id"`
	Username         string             `json:"username"`
	FullName         string             `json:"full_name"`
	Role             string             `json:"role"`
	DepartmentAccess *string            `json:"department_access"`
	IsActive         bool               `json:"is_active"`
	Permissions      user.PermissionSet `json:"permissions"`
	CreatedAt        string             `json:"created_at"`
	LastLogin        *string            `json:"last_login"`
}

func toUserInfo(u *user.User) UserInfo {
	return UserInfo{
		ID:               u.ID,
		Username:         u.Username,
		FullName:         u.FullName,
		Role:             u.Role,
		DepartmentAccess: u.DepartmentAccess,
		IsActive:         u.IsActive,
		Permissions:      u.Permissions,
		CreatedAt:        u.CreatedAt,
		LastLogin:        u.LastLogin,
	}
}
