package salary

import (
	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
)

// Statutory and working-time constants.
const (
	workDaysPerMonth   = 22
	workHoursPerDay    = 8
	overtimeMultiplier = 1.5
	epfEmployeeRate    = 0.08
	epfEmployerRate    = 0.12
	etfRate            = 0.03
)

// CalcInput is everything the calculator needs: the base salary plus the
// attendance/advance snapshots served by the fallback lookups.
type CalcInput struct {
	Basic      float64
	Attendance attendance.Snapshot
	Advance    advance.Snapshot
}

// Breakdown is the full payroll result: every intermediate figure is exposed
// so the caller can render a payslip-style breakdown. APIT and salary-advance
// deductions are fixed at zero; computing them is a known gap.
type Breakdown struct {
	Basic                 float64 `json:"basic"`
	HourlyRate            float64 `json:"hourlyRate"`
	OvertimeHrs           float64 `json:"overtimeHrs"`
	OvertimePay           float64 `json:"overtimePay"`
	NoPayLeave            float64 `json:"noPayLeave"`
	NoPayDeduction        float64 `json:"noPayDeduction"`
	CostOfLiving          float64 `json:"costOfLiving"`
	Food                  float64 `json:"food"`
	Conveyance            float64 `json:"conveyance"`
	Medical               float64 `json:"medical"`
	TotalAllowances       float64 `json:"totalAllowances"`
	Gross                 float64 `json:"gross"`
	PerformanceBonus      float64 `json:"performanceBonus"`
	AttendanceBonus       float64 `json:"attendanceBonus"`
	Bonus                 float64 `json:"bonus"`
	Reimbursements        float64 `json:"reimbursements"`
	SalaryBeforeDeduction float64 `json:"salaryBeforeDeduction"`
	EPFEmployee           float64 `json:"epfEmp"`
	EPFEmployer           float64 `json:"epfEr"`
	ETF                   float64 `json:"etf"`
	APIT                  float64 `json:"apit"`
	SalaryAdvance         float64 `json:"salaryAdvance"`
	TotalDeductions       float64 `json:"totalDeductions"`
	NetPayable            float64 `json:"netPayable"`
}

// Calculate is a pure function of its inputs: no rounding is applied until
// display. The employer EPF share is informational and never deducted from
// the net.
func Calculate(in CalcInput) Breakdown {
	var hourlyRate float64
	if in.Basic > 0 {
		hourlyRate = in.Basic / (workDaysPerMonth * workHoursPerDay)
	}

	overtimePay := in.Attendance.OvertimeHrs * hourlyRate * overtimeMultiplier
	noPayDeduction := (in.Basic / workDaysPerMonth) * in.Attendance.NoPayLeave

	totalAllowances := in.Advance.CostOfLiving + in.Advance.Food + in.Advance.Conveyance + in.Advance.Medical
	gross := in.Basic + totalAllowances
	bonus := in.Advance.Bonus + in.Advance.Attendance

	salaryBeforeDeduction := gross + overtimePay + bonus + in.Advance.Reimbursements

	epfEmployee := salaryBeforeDeduction * epfEmployeeRate
	epfEmployer := salaryBeforeDeduction * epfEmployerRate
	etf := salaryBeforeDeduction * etfRate

	totalDeductions := noPayDeduction + epfEmployee + etf
	netPayable := salaryBeforeDeduction - totalDeductions

	return Breakdown{
		Basic:                 in.Basic,
		HourlyRate:            hourlyRate,
		OvertimeHrs:           in.Attendance.OvertimeHrs,
		OvertimePay:           overtimePay,
		NoPayLeave:            in.Attendance.NoPayLeave,
		NoPayDeduction:        noPayDeduction,
		CostOfLiving:          in.Advance.CostOfLiving,
		Food:                  in.Advance.Food,
		Conveyance:            in.Advance.Conveyance,
		Medical:               in.Advance.Medical,
		TotalAllowances:       totalAllowances,
		Gross:                 gross,
		PerformanceBonus:      in.Advance.Bonus,
		AttendanceBonus:       in.Advance.Attendance,
		Bonus:                 bonus,
		Reimbursements:        in.Advance.Reimbursements,
		SalaryBeforeDeduction: salaryBeforeDeduction,
		EPFEmployee:           epfEmployee,
		EPFEmployer:           epfEmployer,
		ETF:                   etf,
		TotalDeductions:       totalDeductions,
		NetPayable:            netPayable,
	}
}
