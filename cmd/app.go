package cmd

import (
	"fmt"

	"github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/api"
	"github.com/frahmantamala/hrm-records/internal/audit"
	auditrepo "github.com/frahmantamala/hrm-records/internal/audit/sqlite"
	"github.com/frahmantamala/hrm-records/internal/auth"
	authrepo "github.com/frahmantamala/hrm-records/internal/auth/sqlite"
	"github.com/frahmantamala/hrm-records/internal/database"
	employeesvc "github.com/frahmantamala/hrm-records/internal/employee"
	employeerepo "github.com/frahmantamala/hrm-records/internal/employee/sqlite"
	"github.com/frahmantamala/hrm-records/internal/maintenance"
	"github.com/frahmantamala/hrm-records/internal/storage"
	"github.com/frahmantamala/hrm-records/pkg/logger"
	"gorm.io/gorm"
)

var (
	loginUsername string
	loginPassword string
)

// app bundles everything a command needs after startup.
type app struct {
	Config *internal.Config
	DB     *gorm.DB
	API    *api.API
}

// initApp opens the database, applies pending migrations, ensures the
// bootstrap administrator and wires the service graph. Every command except
// migrate goes through here.
func initApp() (*app, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := database.EnsureDefaultAdmin(db); err != nil {
		return nil, fmt.Errorf("failed to ensure default admin: %w", err)
	}

	sqx, err := database.Sqlx(db)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap database: %w", err)
	}

	log := logger.L()
	sessions := auth.NewStore()

	auditSvc := audit.NewService(auditrepo.NewAuditRepository(db, sqx), log)
	authSvc := auth.NewService(authrepo.NewUserRepository(db), sessions, auditSvc, log)
	employeeSvc := employeesvc.NewService(employeerepo.NewEmployeeRepository(db, sqx), auditSvc, log)
	maintenanceSvc := maintenance.NewService(cfg.Database, sqx, auditSvc, log)
	images := storage.NewImageStore(cfg.Database.DataDir, log)

	return &app{
		Config: cfg,
		DB:     db,
		API:    api.New(authSvc, employeeSvc, auditSvc, maintenanceSvc, images, sessions),
	}, nil
}

// login authenticates with the --username/--password flags and leaves the
// session installed for the rest of the command.
func (a *app) login() error {
	_, err := a.API.Login(auth.LoginRequest{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		return fmt.Errorf("%s", internal.Message(err))
	}
	return nil
}
