package salary

// CalcResponse is the full payslip payload: identity, the raw snapshots the
// calculation used, and every intermediate figure.
type CalcResponse struct {
	EmpID              string    `json:"empId"`
	Name               string    `json:"name"`
	Period             string    `json:"period"`
	AttendancePeriod   string    `json:"attendancePeriod,omitempty"`
	AttendanceFallback bool      `json:"attendanceFallback"`
	AdvancePeriod      string    `json:"advancePeriod,omitempty"`
	AdvanceFallback    bool      `json:"advanceFallback"`
	Breakdown          Breakdown `json:"breakdown"`
}

// SummaryResponse is the organization-wide net for a period. Employees whose
// computed net is non-finite are excluded from both figures.
type SummaryResponse struct {
	Period         string  `json:"period"`
	TotalNet       float64 `json:"totalNet"`
	EmployeesCount int     `json:"employeesCount"`
}
