package maintenance

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/audit"
	"github.com/frahmantamala/hrm-records/internal/auth"
	auditmodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/audit"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

// Info describes the live database file.
type Info struct {
	Path          string `json:"path"`
	SizeBytes     int64  `json:"size_bytes"`
	SizeFormatted string `json:"size_formatted"`
	EmployeeCount int64  `json:"employee_count"`
	UserCount     int64  `json:"user_count"`
}

// Service copies the database file in and out of the data directory. The
// substitution is file-level and non-atomic: import takes a backup first,
// and the process must be restarted afterwards because the open connection
// still points at the replaced file.
type Service struct {
	cfg      internal.DatabaseConfig
	sqx      *sqlx.DB
	recorder audit.Recorder
	logger   *slog.Logger
}

func NewService(cfg internal.DatabaseConfig, sqx *sqlx.DB, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		sqx:      sqx,
		recorder: recorder,
		logger:   logger,
	}
}

// Export copies the database file verbatim to destinationPath.
func (s *Service) Export(sess *auth.Session, destinationPath string) (string, error) {
	if err := auth.Authorize(sess, user.CapBackupDatabase); err != nil {
		s.logger.Warn("database export denied")
		return "", err
	}

	dbPath := s.cfg.DatabasePath()
	if _, err := os.Stat(dbPath); err != nil {
		return "", internal.NewIOError("Database file not found", err)
	}

	if err := copyFile(dbPath, destinationPath); err != nil {
		s.logger.Error("database export failed", "error", err, "destination", destinationPath)
		return "", internal.NewIOError("Failed to export database", err)
	}

	s.recorder.Record(audit.Entry{
		UserID:     sessionUserID(sess),
		Username:   sess.Username,
		Action:     auditmodel.ActionExport,
		EntityType: auditmodel.EntityDatabase,
		Details:    strPtr(fmt.Sprintf("Database exported to: %s", destinationPath)),
	})

	s.logger.Info("database exported", "destination", destinationPath)
	return fmt.Sprintf("Database exported successfully to: %s", destinationPath), nil
}

// Import validates the source file, backs up the live database and replaces
// it. The caller must restart the application afterwards.
func (s *Service) Import(sess *auth.Session, sourcePath string) (string, error) {
	if err := auth.Authorize(sess, user.CapBackupDatabase); err != nil {
		s.logger.Warn("database import denied")
		return "", err
	}

	if _, err := os.Stat(sourcePath); err != nil {
		return "", internal.NewIOError("Source database file not found", err)
	}

	if err := validateDatabaseFile(sourcePath); err != nil {
		s.logger.Warn("database import rejected", "error", err, "source", sourcePath)
		return "", err
	}

	dbPath := s.cfg.DatabasePath()
	if _, err := os.Stat(dbPath); err == nil {
		if err := copyFile(dbPath, s.cfg.BackupPath()); err != nil {
			s.logger.Error("pre-import backup failed", "error", err)
			return "", internal.NewIOError("Failed to create backup", err)
		}
	}

	if err := copyFile(sourcePath, dbPath); err != nil {
		// The backup taken above is the only recovery path from here.
		s.logger.Error("database import failed after backup", "error", err, "backup", s.cfg.BackupPath())
		return "", internal.NewIOError("Failed to import database", err)
	}

	s.recorder.Record(audit.Entry{
		UserID:     sessionUserID(sess),
		Username:   sess.Username,
		Action:     auditmodel.ActionImport,
		EntityType: auditmodel.EntityDatabase,
		Details:    strPtr(fmt.Sprintf("Database imported from: %s", sourcePath)),
	})

	s.logger.Info("database imported", "source", sourcePath, "backup", s.cfg.BackupPath())
	return "Database imported successfully. Please restart the application for changes to take effect.", nil
}

// DatabaseInfo reports the file size and row counts of the live database.
func (s *Service) DatabaseInfo() (*Info, error) {
	info := &Info{Path: s.cfg.DatabasePath()}

	if st, err := os.Stat(info.Path); err == nil {
		info.SizeBytes = st.Size()
	}
	info.SizeFormatted = formatFileSize(info.SizeBytes)

	if err := s.sqx.Get(&info.EmployeeCount, `SELECT COUNT(*) FROM employees`); err != nil {
		return nil, err
	}
	if err := s.sqx.Get(&info.UserCount, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, err
	}

	return info, nil
}

// validateDatabaseFile opens the candidate and checks that it carries the
// expected tables before anything is overwritten.
func validateDatabaseFile(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return internal.NewValidationError("Invalid database file", internal.ErrCodeInvalidDatabase).WithCause(err)
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	for _, table := range []string{"employees", "users"} {
		var count int64
		err := db.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil || count == 0 {
			return internal.ErrInvalidDatabase
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func formatFileSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

func sessionUserID(sess *auth.Session) *int64 {
	if sess == nil {
		return nil
	}
	id := sess.UserID
	return &id
}

func strPtr(s string) *string { return &s }
