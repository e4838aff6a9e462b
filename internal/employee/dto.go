package employee

// MatchKind says how a filter predicate compares its column.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchSubstring
)

// Predicate is one typed column comparison. Predicates always AND together.
type Predicate struct {
	Column string
	Kind   MatchKind
	Value  string
}

// Filters is the optional-field filter for employee listings. Empty fields
// are omitted entirely; the EPF number matches as a substring, the
// categorical fields match exactly.
type Filters struct {
	EPFNumber      string `json:"epf_number"`
	Department     string `json:"department"`
	TransportRoute string `json:"transport_route"`
	WorkingStatus  string `json:"working_status"`
}

// Predicates expands the filter into its non-empty predicate list.
func (f Filters) Predicates() []Predicate {
	var preds []Predicate
	if f.EPFNumber != "" {
		preds = append(preds, Predicate{Column: "epf_number", Kind: MatchSubstring, Value: f.EPFNumber})
	}
	if f.Department != "" {
		preds = append(preds, Predicate{Column: "department", Kind: MatchExact, Value: f.Department})
	}
	if f.TransportRoute != "" {
		preds = append(preds, Predicate{Column: "transport_route", Kind: MatchExact, Value: f.TransportRoute})
	}
	if f.WorkingStatus != "" {
		preds = append(preds, Predicate{Column: "working_status", Kind: MatchExact, Value: f.WorkingStatus})
	}
	return preds
}

type GroupCount struct {
	Name  string `db:"name" json:"name"`
	Count int64  `db:"count" json:"count"`
}

// DashboardStats aggregates the register for the landing page. Group counts
// cover active employees only; the recent counters look back 30 days.
type DashboardStats struct {
	TotalEmployees     int64        `json:"total_employees"`
	ActiveEmployees    int64        `json:"active_employees"`
	ResignedEmployees  int64        `json:"resigned_employees"`
	Departments        []GroupCount `json:"departments"`
	Caders             []GroupCount `json:"caders"`
	Allocations        []GroupCount `json:"allocations"`
	RecentJoinings     int64        `json:"recent_joinings"`
	RecentResignations int64        `json:"recent_resignations"`
}
