package employee

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/hrm-records/internal/audit"
	"github.com/frahmantamala/hrm-records/internal/auth"
	"github.com/frahmantamala/hrm-records/internal/core/common/validation"
	auditmodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/audit"
	employeemodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// Service handles employee record business logic. Every mutation passes the
// authorization gate first and emits exactly one audit entry on success.
type Service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *slog.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

func validateRecord(e *employeemodel.Employee) error {
	v := validation.NewValidator()
	v.Field("epf_number", e.EPFNumber).Required().MaxLength(20)
	v.Field("name_with_initials", e.NameWithInitials).Required().MaxLength(100)
	v.Field("full_name", e.FullName).Required().MaxLength(200)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// List returns employees matching the filters, ordered by EPF number.
func (s *Service) List(f Filters) ([]employeemodel.Employee, error) {
	records, err := s.repo.List(f)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return records, nil
}

// Get returns one employee by EPF number.
func (s *Service) Get(epfNumber string) (*employeemodel.Employee, error) {
	record, err := s.repo.GetByEPF(epfNumber)
	if err != nil {
		s.logger.Warn("employee lookup failed", "error", err, "epf_number", epfNumber)
		return nil, err
	}
	return record, nil
}

// Create inserts a new record. The caller supplies the EPF number; a
// duplicate fails and leaves the original untouched.
func (s *Service) Create(sess *auth.Session, e *employeemodel.Employee) error {
	if err := auth.Authorize(sess, user.CapAddEmployees); err != nil {
		s.logger.Warn("create employee denied", "epf_number", e.EPFNumber)
		return err
	}
	if err := validateRecord(e); err != nil {
		return err
	}
	if e.WorkingStatus == "" {
		e.WorkingStatus = employeemodel.WorkingStatusActive
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create employee", "error", err, "epf_number", e.EPFNumber)
		return err
	}

	s.recorder.Record(audit.Entry{
		UserID:     sessionUserID(sess),
		Username:   sessionUsername(sess),
		Action:     auditmodel.ActionCreate,
		EntityType: auditmodel.EntityEmployee,
		EntityID:   &e.EPFNumber,
		NewValue:   marshalSnapshot(e),
		Details:    detailString("Created employee: %s (%s)", e.NameWithInitials, e.EPFNumber),
	})

	s.logger.Info("employee created", "epf_number", e.EPFNumber, "by", sessionUsername(sess))
	return nil
}

// Update replaces the full record. Updating a missing EPF number affects
// zero rows and reports success.
func (s *Service) Update(sess *auth.Session, e *employeemodel.Employee) error {
	if err := auth.Authorize(sess, user.CapEditEmployees); err != nil {
		s.logger.Warn("update employee denied", "epf_number", e.EPFNumber)
		return err
	}
	if err := validateRecord(e); err != nil {
		return err
	}

	var oldValue *string
	if existing, err := s.repo.GetByEPF(e.EPFNumber); err == nil {
		oldValue = marshalSnapshot(existing)
	}

	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update employee", "error", err, "epf_number", e.EPFNumber)
		return err
	}

	s.recorder.Record(audit.Entry{
		UserID:     sessionUserID(sess),
		Username:   sessionUsername(sess),
		Action:     auditmodel.ActionUpdate,
		EntityType: auditmodel.EntityEmployee,
		EntityID:   &e.EPFNumber,
		OldValue:   oldValue,
		NewValue:   marshalSnapshot(e),
		Details:    detailString("Updated employee: %s (%s)", e.NameWithInitials, e.EPFNumber),
	})

	s.logger.Info("employee updated", "epf_number", e.EPFNumber, "by", sessionUsername(sess))
	return nil
}

// Delete removes a record by EPF number. Deleting a missing key is a no-op.
func (s *Service) Delete(sess *auth.Session, epfNumber string) error {
	if err := auth.Authorize(sess, user.CapDeleteEmployees); err != nil {
		s.logger.Warn("delete employee denied", "epf_number", epfNumber)
		return err
	}

	var oldValue *string
	var name string
	if existing, err := s.repo.GetByEPF(epfNumber); err == nil {
		oldValue = marshalSnapshot(existing)
		name = existing.NameWithInitials
	}

	if err := s.repo.Delete(epfNumber); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "epf_number", epfNumber)
		return err
	}

	s.recorder.Record(audit.Entry{
		UserID:     sessionUserID(sess),
		Username:   sessionUsername(sess),
		Action:     auditmodel.ActionDelete,
		EntityType: auditmodel.EntityEmployee,
		EntityID:   &epfNumber,
		OldValue:   oldValue,
		Details:    detailString("Deleted employee: %s (%s)", name, epfNumber),
	})

	s.logger.Info("employee deleted", "epf_number", epfNumber, "by", sessionUsername(sess))
	return nil
}

// DistinctValues returns the sorted non-empty values of a filterable column.
func (s *Service) DistinctValues(field DistinctField) ([]string, error) {
	values, err := s.repo.DistinctValues(field)
	if err != nil {
		s.logger.Error("failed to load distinct values", "error", err, "field", string(field))
		return nil, err
	}
	return values, nil
}

// DashboardStats aggregates the register.
func (s *Service) DashboardStats() (*DashboardStats, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		s.logger.Error("failed to compute dashboard stats", "error", err)
		return nil, err
	}
	return stats, nil
}

func sessionUserID(sess *auth.Session) *int64 {
	if sess == nil {
		return nil
	}
	id := sess.UserID
	return &id
}

func sessionUsername(sess *auth.Session) string {
	if sess == nil {
		return auditmodel.SystemUsername
	}
	return sess.Username
}

func detailString(format string, args ...interface{}) *string {
	s := fmt.Sprintf(format, args...)
	return &s
}

func marshalSnapshot(v interface{}) *string {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}
