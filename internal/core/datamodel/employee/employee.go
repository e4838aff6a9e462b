package employee

// Employee is a single HR record. The EPF number is the stable external
// identifier supplied by the caller; it is never generated here. Date fields
// are kept as ISO-8601 strings the way the UI hands them over.
type Employee struct {
	EPFNumber        string  `gorm:"primaryKey;column:epf_number" json:"epf_number"`
	NameWithInitials string  `gorm:"column:name_with_initials;not null" json:"name_with_initials"`
	FullName         string  `gorm:"column:full_name;not null" json:"full_name"`
	DOB              *string `gorm:"column:dob" json:"dob"`
	PoliceArea       *string `gorm:"column:police_area" json:"police_area"`
	TransportRoute   *string `gorm:"column:transport_route" json:"transport_route"`
	Mobile1          *string `gorm:"column:mobile_1" json:"mobile_1"`
	Mobile2          *string `gorm:"column:mobile_2" json:"mobile_2"`
	Address          *string `gorm:"column:address" json:"address"`
	DateOfJoin       *string `gorm:"column:date_of_join" json:"date_of_join"`
	DateOfResign     *string `gorm:"column:date_of_resign" json:"date_of_resign"`
	WorkingStatus    string  `gorm:"column:working_status;default:active" json:"working_status"`
	MaritalStatus    *string `gorm:"column:marital_status" json:"marital_status"`
	Cader            *string `gorm:"column:cader" json:"cader"`
	Designation      *string `gorm:"column:designation" json:"designation"`
	Allocation       *string `gorm:"column:allocation" json:"allocation"`
	Department       *string `gorm:"column:department" json:"department"`
	ImagePath        *string `gorm:"column:image_path" json:"image_path"`
	CreatedAt        string  `gorm:"column:created_at" json:"created_at"`
}

func (Employee) TableName() string { return "employees" }

const (
	WorkingStatusActive   = "active"
	WorkingStatusResigned = "resign"
)
