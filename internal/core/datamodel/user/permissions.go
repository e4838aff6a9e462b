package user

// Capability names one of the eleven permission switches. Authorization
// checks go through PermissionSet.Allows so callers never reach into the
// individual booleans.
type Capability string

const (
	CapViewEmployees      Capability = "view_employees"
	CapAddEmployees       Capability = "add_employees"
	CapEditEmployees      Capability = "edit_employees"
	CapDeleteEmployees    Capability = "delete_employees"
	CapManageUsers        Capability = "manage_users"
	CapViewAllDepartments Capability = "view_all_departments"
	CapExportData         Capability = "export_data"
	CapViewReports        Capability = "view_reports"
	CapManageSettings     Capability = "manage_settings"
	CapBackupDatabase     Capability = "backup_database"
	CapViewAuditLogs      Capability = "view_audit_logs"
)

// PermissionSet is the flat capability bundle stored as columns on the users
// table and denormalized into the session at login time.
type PermissionSet struct {
	CanViewEmployees      bool `gorm:"column:can_view_employees;default:true" json:"can_view_employees"`
	CanAddEmployees       bool `gorm:"column:can_add_employees;default:false" json:"can_add_employees"`
	CanEditEmployees      bool `gorm:"column:can_edit_employees;default:false" json:"can_edit_employees"`
	CanDeleteEmployees    bool `gorm:"column:can_delete_employees;default:false" json:"can_delete_employees"`
	CanManageUsers        bool `gorm:"column:can_manage_users;default:false" json:"can_manage_users"`
	CanViewAllDepartments bool `gorm:"column:can_view_all_departments;default:false" json:"can_view_all_departments"`
	CanExportData         bool `gorm:"column:can_export_data;default:false" json:"can_export_data"`
	CanViewReports        bool `gorm:"column:can_view_reports;default:false" json:"can_view_reports"`
	CanManageSettings     bool `gorm:"column:can_manage_settings;default:false" json:"can_manage_settings"`
	CanBackupDatabase     bool `gorm:"column:can_backup_database;default:false" json:"can_backup_database"`
	CanViewAuditLogs      bool `gorm:"column:can_view_audit_logs;default:false" json:"can_view_audit_logs"`
}

// Allows reports whether the set grants the given capability. Unknown
// capabilities are never granted.
func (p PermissionSet) Allows(c Capability) bool {
	switch c {
	case CapViewEmployees:
		return p.CanViewEmployees
	case CapAddEmployees:
		return p.CanAddEmployees
	case CapEditEmployees:
		return p.CanEditEmployees
	case CapDeleteEmployees:
		return p.CanDeleteEmployees
	case CapManageUsers:
		return p.CanManageUsers
	case CapViewAllDepartments:
		return p.CanViewAllDepartments
	case CapExportData:
		return p.CanExportData
	case CapViewReports:
		return p.CanViewReports
	case CapManageSettings:
		return p.CanManageSettings
	case CapBackupDatabase:
		return p.CanBackupDatabase
	case CapViewAuditLogs:
		return p.CanViewAuditLogs
	}
	return false
}

// AdminPermissions grants everything.
func AdminPermissions() PermissionSet {
	return PermissionSet{
		CanViewEmployees:      true,
		CanAddEmployees:       true,
		CanEditEmployees:      true,
		CanDeleteEmployees:    true,
		CanManageUsers:        true,
		CanViewAllDepartments: true,
		CanExportData:         true,
		CanViewReports:        true,
		CanManageSettings:     true,
		CanBackupDatabase:     true,
		CanViewAuditLogs:      true,
	}
}

// HRManagerPermissions can run the employee register but not administer the
// system itself.
func HRManagerPermissions() PermissionSet {
	return PermissionSet{
		CanViewEmployees:      true,
		CanAddEmployees:       true,
		CanEditEmployees:      true,
		CanDeleteEmployees:    true,
		CanViewAllDepartments: true,
		CanExportData:         true,
		CanViewReports:        true,
	}
}

// HRStaffPermissions can view and add records only.
func HRStaffPermissions() PermissionSet {
	return PermissionSet{
		CanViewEmployees: true,
		CanAddEmployees:  true,
	}
}

// ViewerPermissions is read-only access.
func ViewerPermissions() PermissionSet {
	return PermissionSet{
		CanViewEmployees: true,
	}
}

// PermissionsForRole derives the default permission set for a role. Unknown
// role names fall back to viewer defaults; administrators may override the
// result per user, and no consistency with the role is enforced.
func PermissionsForRole(role string) PermissionSet {
	switch role {
	case RoleAdmin:
		return AdminPermissions()
	case RoleHRManager:
		return HRManagerPermissions()
	case RoleHRStaff:
		return HRStaffPermissions()
	default:
		return ViewerPermissions()
	}
}
