package advance

import "time"

// Advance is the monthly allowance/bonus record, one per (empId, period),
// independent of attendance.
type Advance struct {
	ID             string
	EmpID          string
	Period         string
	CostOfLiving   float64
	Medical        float64
	Conveyance     float64
	Bonus          float64 // performance bonus
	Attendance     float64 // attendance bonus
	Food           float64
	Reimbursements float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Snapshot feeds the payroll calculator; the zero value stands in when no
// record exists for the employee at all.
type Snapshot struct {
	Period         string
	CostOfLiving   float64
	Medical        float64
	Conveyance     float64
	Bonus          float64
	Attendance     float64
	Food           float64
	Reimbursements float64
	Found          bool
}

func (a Advance) ToSnapshot() Snapshot {
	return Snapshot{
		Period:         a.Period,
		CostOfLiving:   a.CostOfLiving,
		Medical:        a.Medical,
		Conveyance:     a.Conveyance,
		Bonus:          a.Bonus,
		Attendance:     a.Attendance,
		Food:           a.Food,
		Reimbursements: a.Reimbursements,
		Found:          true,
	}
}
