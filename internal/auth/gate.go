package auth

import (
	errors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// Authorize is the gate in front of every mutating operation. A nil session
// means nobody is logged in; a session without the capability is refused.
// The check is purely in-memory against the permissions captured at login.
func Authorize(sess *Session, cap user.Capability) error {
	if sess == nil {
		return errors.ErrNotAuthenticated
	}
	if !sess.Permissions.Allows(cap) {
		return errors.ErrPermissionDenied
	}
	return nil
}
