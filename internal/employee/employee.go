package employee

import (
	employeemodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/employee"
)

// DistinctField names a column whose distinct values populate the filter
// dropdowns in the UI.
type DistinctField string

const (
	FieldDepartment     DistinctField = "department"
	FieldTransportRoute DistinctField = "transport_route"
	FieldPoliceArea     DistinctField = "police_area"
	FieldDesignation    DistinctField = "designation"
	FieldAllocation     DistinctField = "allocation"
)

// Repository is the data access surface for employee records.
type Repository interface {
	Create(e *employeemodel.Employee) error
	GetByEPF(epfNumber string) (*employeemodel.Employee, error)
	List(f Filters) ([]employeemodel.Employee, error)
	// Update replaces the full row by EPF number; a missing key affects zero
	// rows and is not an error.
	Update(e *employeemodel.Employee) error
	Delete(epfNumber string) error
	DistinctValues(field DistinctField) ([]string, error)
	Stats() (*DashboardStats, error)
}
