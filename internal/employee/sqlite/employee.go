package sqlite

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	errors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/employee"
	employeesvc "github.com/frahmantamala/hrm-records/internal/employee"
)

// EmployeeRepository implements the employee.Repository interface using GORM
// for row access and sqlx for the dashboard aggregates, both over the same
// underlying sqlite connection.
type EmployeeRepository struct {
	db  *gorm.DB
	sqx *sqlx.DB
}

func NewEmployeeRepository(db *gorm.DB, sqx *sqlx.DB) employeesvc.Repository {
	return &EmployeeRepository{db: db, sqx: sqx}
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
	}
	if err := r.db.Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateEPF
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) GetByEPF(epfNumber string) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.Where("epf_number = ?", epfNumber).First(&e).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List applies the filter's predicate list, each one a parameterized AND
// clause, and orders by EPF number ascending.
func (r *EmployeeRepository) List(f employeesvc.Filters) ([]employee.Employee, error) {
	query := r.db.Model(&employee.Employee{})

	for _, p := range f.Predicates() {
		switch p.Kind {
		case employeesvc.MatchSubstring:
			query = query.Where(p.Column+" LIKE ?", "%"+p.Value+"%")
		default:
			query = query.Where(p.Column+" = ?", p.Value)
		}
	}

	var records []employee.Employee
	err := query.Order("epf_number ASC").Find(&records).Error
	return records, err
}

// Update replaces every mutable column by EPF number. created_at is
// immutable after creation. Zero rows affected is not an error.
func (r *EmployeeRepository) Update(e *employee.Employee) error {
	return r.db.Model(&employee.Employee{}).
		Where("epf_number = ?", e.EPFNumber).
		Updates(map[string]interface{}{
			"name_with_initials": e.NameWithInitials,
			"full_name":          e.FullName,
			"dob":                e.DOB,
			"police_area":        e.PoliceArea,
			"transport_route":    e.TransportRoute,
			"mobile_1":           e.Mobile1,
			"mobile_2":           e.Mobile2,
			"address":            e.Address,
			"date_of_join":       e.DateOfJoin,
			"date_of_resign":     e.DateOfResign,
			"working_status":     e.WorkingStatus,
			"marital_status":     e.MaritalStatus,
			"cader":              e.Cader,
			"designation":        e.Designation,
			"allocation":         e.Allocation,
			"department":         e.Department,
			"image_path":         e.ImagePath,
		}).Error
}

func (r *EmployeeRepository) Delete(epfNumber string) error {
	return r.db.Where("epf_number = ?", epfNumber).Delete(&employee.Employee{}).Error
}

var distinctColumns = map[employeesvc.DistinctField]string{
	employeesvc.FieldDepartment:     "department",
	employeesvc.FieldTransportRoute: "transport_route",
	employeesvc.FieldPoliceArea:     "police_area",
	employeesvc.FieldDesignation:    "designation",
	employeesvc.FieldAllocation:     "allocation",
}

// DistinctValues returns the sorted distinct non-null, non-empty values of a
// whitelisted column.
func (r *EmployeeRepository) DistinctValues(field employeesvc.DistinctField) ([]string, error) {
	column, ok := distinctColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown distinct field %q", string(field))
	}

	var values []string
	query := fmt.Sprintf(
		"SELECT DISTINCT %s FROM employees WHERE %s IS NOT NULL AND %s != '' ORDER BY %s",
		column, column, column, column)
	if err := r.sqx.Select(&values, query); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *EmployeeRepository) Stats() (*employeesvc.DashboardStats, error) {
	var stats employeesvc.DashboardStats

	if err := r.sqx.Get(&stats.TotalEmployees,
		`SELECT COUNT(*) FROM employees`); err != nil {
		return nil, err
	}
	if err := r.sqx.Get(&stats.ActiveEmployees,
		`SELECT COUNT(*) FROM employees WHERE working_status = ?`,
		employee.WorkingStatusActive); err != nil {
		return nil, err
	}
	if err := r.sqx.Get(&stats.ResignedEmployees,
		`SELECT COUNT(*) FROM employees WHERE working_status = ?`,
		employee.WorkingStatusResigned); err != nil {
		return nil, err
	}

	groupQuery := `SELECT COALESCE(%s, 'Unassigned') AS name, COUNT(*) AS count
		 FROM employees WHERE working_status = 'active'
		 GROUP BY %s ORDER BY count DESC`

	if err := r.sqx.Select(&stats.Departments,
		fmt.Sprintf(groupQuery, "department", "department")); err != nil {
		return nil, err
	}
	if err := r.sqx.Select(&stats.Caders,
		fmt.Sprintf(groupQuery, "cader", "cader")); err != nil {
		return nil, err
	}
	if err := r.sqx.Select(&stats.Allocations,
		fmt.Sprintf(groupQuery, "allocation", "allocation")); err != nil {
		return nil, err
	}

	if err := r.sqx.Get(&stats.RecentJoinings,
		`SELECT COUNT(*) FROM employees WHERE date_of_join >= date('now', '-30 days')`); err != nil {
		return nil, err
	}
	if err := r.sqx.Get(&stats.RecentResignations,
		`SELECT COUNT(*) FROM employees WHERE date_of_resign >= date('now', '-30 days')`); err != nil {
		return nil, err
	}

	return &stats, nil
}

func isUniqueViolation(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
