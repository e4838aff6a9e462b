package user

// User is a system account. The permission columns live directly on the users
// table; PermissionSet is embedded so both User and the login session share
// one value type.
type User struct {
	ID               int64         `gorm:"primaryKey" json:"id"`
	Username         string        `gorm:"column:username;uniqueIndex;not null" json:"username"`
	PasswordHash     string        `gorm:"column:password_hash;not null" json:"-"`
	FullName         string        `gorm:"column:full_name;not null" json:"full_name"`
	Role             string        `gorm:"column:role;not null;default:viewer" json:"role"`
	DepartmentAccess *string       `gorm:"column:department_access" json:"department_access"`
	IsActive         bool          `gorm:"column:is_active;default:true" json:"is_active"`
	Permissions      PermissionSet `gorm:"embedded" json:"permissions"`
	CreatedAt        string        `gorm:"column:created_at" json:"created_at"`
	LastLogin        *string       `gorm:"column:last_login" json:"last_login"`
}

func (User) TableName() string { return "users" }

// Role names. "custom" marks accounts whose permissions were hand-picked by
// an administrator instead of derived from a role.
const (
	RoleAdmin     = "admin"
	RoleHRManager = "hr_manager"
	RoleHRStaff   = "hr_staff"
	RoleViewer    = "viewer"
	RoleCustom    = "custom"
)

// ValidRole reports whether role is one of the fixed role names.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHRManager, RoleHRStaff, RoleViewer, RoleCustom:
		return true
	}
	return false
}
