package api

import (
	"sync"

	"github.com/frahmantamala/hrm-records/internal/audit"
	"github.com/frahmantamala/hrm-records/internal/auth"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
	employeesvc "github.com/frahmantamala/hrm-records/internal/employee"
	"github.com/frahmantamala/hrm-records/internal/maintenance"
	"github.com/frahmantamala/hrm-records/internal/storage"
)

// API is the single entry point the shell calls into. All database-touching
// operations share one mutex; the file is a single-writer store and
// interleaved mutations would corrupt audit ordering.
type API struct {
	mu sync.Mutex

	auth        *auth.Service
	employees   *employeesvc.Service
	audits      *audit.Service
	maintenance *maintenance.Service
	images      *storage.ImageStore
	sessions    *auth.Store
}

func New(
	authSvc *auth.Service,
	employeeSvc *employeesvc.Service,
	auditSvc *audit.Service,
	maintenanceSvc *maintenance.Service,
	images *storage.ImageStore,
	sessions *auth.Store,
) *API {
	return &API{
		auth:        authSvc,
		employees:   employeeSvc,
		audits:      auditSvc,
		maintenance: maintenanceSvc,
		images:      images,
		sessions:    sessions,
	}
}

// --- authentication and accounts ---

func (a *API) Login(req auth.LoginRequest) (*auth.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.Login(req)
}

func (a *API) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.auth.Logout()
}

func (a *API) CurrentSession() *auth.Session {
	return a.auth.CurrentSession()
}

func (a *API) ChangeOwnPassword(req auth.ChangePasswordRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.ChangeOwnPassword(a.sessions.Current(), req)
}

func (a *API) CreateUser(req auth.CreateUserRequest) (*auth.UserInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.CreateUser(a.sessions.Current(), req)
}

func (a *API) ListUsers() ([]auth.UserInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.ListUsers(a.sessions.Current())
}

func (a *API) UpdateUser(req auth.UpdateUserRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.UpdateUser(a.sessions.Current(), req)
}

func (a *API) DeleteUser(userID int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.DeleteUser(a.sessions.Current(), userID)
}

func (a *API) ResetUserPassword(req auth.ResetPasswordRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.ResetUserPassword(a.sessions.Current(), req)
}

// --- employee records ---

func (a *API) ListEmployees(f employeesvc.Filters) ([]employee.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.List(f)
}

func (a *API) GetEmployee(epfNumber string) (*employee.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.Get(epfNumber)
}

func (a *API) CreateEmployee(e *employee.Employee) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.Create(a.sessions.Current(), e)
}

func (a *API) UpdateEmployee(e *employee.Employee) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.Update(a.sessions.Current(), e)
}

func (a *API) DeleteEmployee(epfNumber string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.Delete(a.sessions.Current(), epfNumber)
}

func (a *API) Departments() ([]string, error) {
	return a.distinct(employeesvc.FieldDepartment)
}

func (a *API) TransportRoutes() ([]string, error) {
	return a.distinct(employeesvc.FieldTransportRoute)
}

func (a *API) PoliceAreas() ([]string, error) {
	return a.distinct(employeesvc.FieldPoliceArea)
}

func (a *API) Designations() ([]string, error) {
	return a.distinct(employeesvc.FieldDesignation)
}

func (a *API) Allocations() ([]string, error) {
	return a.distinct(employeesvc.FieldAllocation)
}

func (a *API) distinct(field employeesvc.DistinctField) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.DistinctValues(field)
}

func (a *API) DashboardStats() (*employeesvc.DashboardStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.employees.DashboardStats()
}

// --- employee images ---

func (a *API) SaveEmployeeImage(epfNumber, imageData string) (string, error) {
	return a.images.Save(epfNumber, imageData)
}

func (a *API) GetEmployeeImage(imagePath string) (string, error) {
	return a.images.Load(imagePath)
}

// --- audit trail ---

func (a *API) QueryAuditLogs(f audit.Filters) (*audit.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := auth.Authorize(a.sessions.Current(), user.CapViewAuditLogs); err != nil {
		return nil, err
	}
	return a.audits.Query(f)
}

func (a *API) AuditSummary() (*audit.Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := auth.Authorize(a.sessions.Current(), user.CapViewAuditLogs); err != nil {
		return nil, err
	}
	return a.audits.Summary()
}

// --- database maintenance ---

func (a *API) ExportDatabase(destinationPath string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maintenance.Export(a.sessions.Current(), destinationPath)
}

func (a *API) ImportDatabase(sourcePath string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maintenance.Import(a.sessions.Current(), sourcePath)
}

func (a *API) DatabaseInfo() (*maintenance.Info, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maintenance.DatabaseInfo()
}
