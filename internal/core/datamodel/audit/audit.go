package audit

// Log is one immutable audit trail entry. Rows are only ever inserted; the
// application never updates or deletes them.
type Log struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	UserID     *int64  `gorm:"column:user_id" json:"user_id"`
	Username   string  `gorm:"column:username;not null" json:"username"`
	Action     string  `gorm:"column:action;not null" json:"action"`
	EntityType string  `gorm:"column:entity_type;not null" json:"entity_type"`
	EntityID   *string `gorm:"column:entity_id" json:"entity_id"`
	OldValue   *string `gorm:"column:old_value" json:"old_value"`
	NewValue   *string `gorm:"column:new_value" json:"new_value"`
	Details    *string `gorm:"column:details" json:"details"`
	CreatedAt  string  `gorm:"column:created_at" json:"created_at"`
}

func (Log) TableName() string { return "audit_logs" }

// Action tags recorded alongside mutations.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
	ActionExport = "EXPORT"
	ActionImport = "IMPORT"
)

// Entity types an audit entry can reference.
const (
	EntityEmployee = "EMPLOYEE"
	EntityUser     = "USER"
	EntityDatabase = "DATABASE"
	EntitySystem   = "SYSTEM"
)

// SystemUsername is recorded when a mutation happens with no active session,
// e.g. bootstrap or CLI maintenance.
const SystemUsername = "system"
