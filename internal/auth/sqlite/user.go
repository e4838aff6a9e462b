package sqlite

import (
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"

	errors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/auth"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// UserRepository implements auth.UserRepository using GORM over the shared
// sqlite handle.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *user.User) error {
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	}
	if err := r.db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.ErrUsernameExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(id int64) (*user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

// Update replaces the mutable account fields by id. Username, password hash
// and created_at are managed elsewhere. Zero rows affected is not an error.
func (r *UserRepository) Update(u *user.User) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"full_name":                u.FullName,
			"role":                     u.Role,
			"department_access":        u.DepartmentAccess,
			"is_active":                u.IsActive,
			"can_view_employees":       u.Permissions.CanViewEmployees,
			"can_add_employees":        u.Permissions.CanAddEmployees,
			"can_edit_employees":       u.Permissions.CanEditEmployees,
			"can_delete_employees":     u.Permissions.CanDeleteEmployees,
			"can_manage_users":         u.Permissions.CanManageUsers,
			"can_view_all_departments": u.Permissions.CanViewAllDepartments,
			"can_export_data":          u.Permissions.CanExportData,
			"can_view_reports":         u.Permissions.CanViewReports,
			"can_manage_settings":      u.Permissions.CanManageSettings,
			"can_backup_database":      u.Permissions.CanBackupDatabase,
			"can_view_audit_logs":      u.Permissions.CanViewAuditLogs,
		}).Error
}

func (r *UserRepository) UpdatePassword(id int64, passwordHash string) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepository) TouchLastLogin(id int64) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now().Format("2006-01-02 15:04:05")).Error
}

func (r *UserRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&user.User{}).Error
}

func isUniqueViolation(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
