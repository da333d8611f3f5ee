package attendance

import "time"

// Attendance is a monthly record, one per (empId, period).
type Attendance struct {
	ID           string
	EmpID        string
	Period       string
	WorkingDays  float64
	OvertimeHrs  float64
	LeaveAllowed float64
	NoPayLeave   float64
	LeaveTaken   float64
	Other        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot is the subset of fields the payroll calculator consumes, together
// with where it came from. When no record exists at all the zero Snapshot is
// used, so downstream arithmetic sees zeros.
type Snapshot struct {
	Period      string
	WorkingDays float64
	OvertimeHrs float64
	NoPayLeave  float64
	Found       bool
}

func (a Attendance) ToSnapshot() Snapshot {
	return Snapshot{
		Period:      a.Period,
		WorkingDays: a.WorkingDays,
		OvertimeHrs: a.OvertimeHrs,
		NoPayLeave:  a.NoPayLeave,
		Found:       true,
	}
}
