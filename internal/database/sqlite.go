package database

import (
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/auth"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Default bootstrap credentials, created only when the users table is empty.
// The password is expected to be changed on first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Open creates the data directory if needed and opens the sqlite database.
// The pool is capped at a single connection: the application model is one
// logical handle shared by every operation.
func Open(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

// Sqlx wraps the same underlying connection for raw aggregate queries.
func Sqlx(db *gorm.DB) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(sqlDB, "sqlite3"), nil
}

// Migrate applies the embedded goose migrations. All migrations are
// additive: columns are created with defaults, never dropped or renamed.
func Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	goose.SetTableName("schema_migrations")

	return goose.Up(sqlDB, "migrations")
}

// EnsureDefaultAdmin creates the bootstrap administrator when no accounts
// exist yet, so a fresh installation is never locked out.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&user.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &user.User{
		Username:     DefaultAdminUsername,
		PasswordHash: auth.HashPassword(DefaultAdminPassword),
		FullName:     "System Administrator",
		Role:         user.RoleAdmin,
		IsActive:     true,
		Permissions:  user.AdminPermissions(),
		CreatedAt:    time.Now().Format("2006-01-02 15:04:05"),
	}
	return db.Create(admin).Error
}
