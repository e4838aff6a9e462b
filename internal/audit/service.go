package audit

import (
	"log/slog"
)

// Service records and reads the audit trail.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends an entry. A failed write is logged and swallowed: the audit
// trail must never block the mutation it describes.
func (s *Service) Record(e Entry) {
	if err := s.repo.Insert(e.toLog()); err != nil {
		s.logger.Error("failed to write audit log",
			"error", err,
			"action", e.Action,
			"entity_type", e.EntityType)
	}
}

// Query returns one page of entries plus the total matching count.
func (s *Service) Query(f Filters) (*Result, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	logs, total, err := s.repo.Query(f)
	if err != nil {
		s.logger.Error("failed to query audit logs", "error", err)
		return nil, err
	}

	return &Result{Logs: logs, TotalCount: total}, nil
}

// Summary aggregates trail activity for the dashboard.
func (s *Service) Summary() (*Summary, error) {
	summary, err := s.repo.Summary()
	if err != nil {
		s.logger.Error("failed to summarize audit logs", "error", err)
		return nil, err
	}
	return summary, nil
}
