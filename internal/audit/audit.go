package audit

import (
	auditmodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/audit"
)

// Entry is what callers hand to the recorder. Snapshot values are
// pre-serialized JSON; nil means "no snapshot on this side".
type Entry struct {
	UserID     *int64
	Username   string
	Action     string
	EntityType string
	EntityID   *string
	OldValue   *string
	NewValue   *string
	Details    *string
}

func (e Entry) toLog() *auditmodel.Log {
	username := e.Username
	if username == "" {
		username = auditmodel.SystemUsername
	}
	return &auditmodel.Log{
		UserID:     e.UserID,
		Username:   username,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		OldValue:   e.OldValue,
		NewValue:   e.NewValue,
		Details:    e.Details,
	}
}

// Recorder appends audit entries. Implementations must never let a failed
// write surface to the mutation it accompanies.
type Recorder interface {
	Record(e Entry)
}

// Repository is the data access surface for the audit trail.
type Repository interface {
	Insert(log *auditmodel.Log) error
	Query(f Filters) ([]auditmodel.Log, int64, error)
	Summary() (*Summary, error)
}
