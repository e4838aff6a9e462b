package audit

import (
	auditmodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/audit"
)

// Filters narrows an audit query. Empty fields are not applied. Username
// matches as a substring; action and entity type match exactly; dates bound
// the created_at day.
type Filters struct {
	Username   string `json:"username"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

// Result is one page of entries plus the total number of rows matching the
// filters regardless of pagination.
type Result struct {
	Logs       []auditmodel.Log `json:"logs"`
	TotalCount int64            `json:"total_count"`
}

type ActionCount struct {
	Action string `db:"action" json:"action"`
	Count  int64  `db:"count" json:"count"`
}

type UserActivity struct {
	Username string `db:"username" json:"username"`
	Count    int64  `db:"count" json:"count"`
}

// Summary aggregates the trail for the audit dashboard.
type Summary struct {
	TotalLogs       int64          `json:"total_logs"`
	TodayLogs       int64          `json:"today_logs"`
	WeekLogs        int64          `json:"week_logs"`
	ActionBreakdown []ActionCount  `json:"action_breakdown"`
	ActiveUsers     []UserActivity `json:"active_users"`
}
