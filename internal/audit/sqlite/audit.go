package sqlite

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"github.com/frahmantamala/hrm-records/internal/audit"
	auditmodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/audit"
)

// AuditRepository persists the append-only trail with GORM and reads the
// summary aggregates through sqlx over the same underlying connection.
type AuditRepository struct {
	db  *gorm.DB
	sqx *sqlx.DB
}

func NewAuditRepository(db *gorm.DB, sqx *sqlx.DB) audit.Repository {
	return &AuditRepository{db: db, sqx: sqx}
}

func (r *AuditRepository) Insert(log *auditmodel.Log) error {
	if log.CreatedAt == "" {
		log.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	}
	return r.db.Create(log).Error
}

func (r *AuditRepository) Query(f audit.Filters) ([]auditmodel.Log, int64, error) {
	base := r.db.Model(&auditmodel.Log{})

	if f.Username != "" {
		base = base.Where("username LIKE ?", "%"+f.Username+"%")
	}
	if f.Action != "" {
		base = base.Where("action = ?", f.Action)
	}
	if f.EntityType != "" {
		base = base.Where("entity_type = ?", f.EntityType)
	}
	if f.StartDate != "" {
		base = base.Where("date(created_at) >= date(?)", f.StartDate)
	}
	if f.EndDate != "" {
		base = base.Where("date(created_at) <= date(?)", f.EndDate)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []auditmodel.Log
	err := base.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *AuditRepository) Summary() (*audit.Summary, error) {
	var summary audit.Summary

	if err := r.sqx.Get(&summary.TotalLogs,
		`SELECT COUNT(*) FROM audit_logs`); err != nil {
		return nil, err
	}
	if err := r.sqx.Get(&summary.TodayLogs,
		`SELECT COUNT(*) FROM audit_logs WHERE date(created_at) = date('now', 'localtime')`); err != nil {
		return nil, err
	}
	if err := r.sqx.Get(&summary.WeekLogs,
		`SELECT COUNT(*) FROM audit_logs WHERE date(created_at) >= date('now', '-7 days')`); err != nil {
		return nil, err
	}

	if err := r.sqx.Select(&summary.ActionBreakdown,
		`SELECT action, COUNT(*) AS count FROM audit_logs
		 GROUP BY action ORDER BY count DESC LIMIT 10`); err != nil {
		return nil, err
	}

	if err := r.sqx.Select(&summary.ActiveUsers,
		`SELECT username, COUNT(*) AS count FROM audit_logs
		 WHERE date(created_at) >= date('now', '-7 days')
		 GROUP BY username ORDER BY count DESC LIMIT 5`); err != nil {
		return nil, err
	}

	return &summary, nil
}
