package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
)

func TestCalculateGolden(t *testing.T) {
	in := CalcInput{
		Basic: 88000,
		Attendance: attendance.Snapshot{
			OvertimeHrs: 10,
			NoPayLeave:  0,
			Found:       true,
		},
		Advance: advance.Snapshot{
			CostOfLiving: 35200,
			Food:         0,
			Conveyance:   13200,
			Medical:      8800,
			Bonus:        17600,
			Attendance:   4400,
			Found:        true,
		},
	}

	got := Calculate(in)

	assert.InDelta(t, 500, got.HourlyRate, 1e-9)
	assert.InDelta(t, 7500, got.OvertimePay, 1e-9)
	assert.InDelta(t, 57200, got.TotalAllowances, 1e-9)
	assert.InDelta(t, 145200, got.Gross, 1e-9)
	assert.InDelta(t, 22000, got.Bonus, 1e-9)
	assert.InDelta(t, 174700, got.SalaryBeforeDeduction, 1e-9)
	assert.InDelta(t, 13976, got.EPFEmployee, 1e-6)
	assert.InDelta(t, 20964, got.EPFEmployer, 1e-6)
	assert.InDelta(t, 5241, got.ETF, 1e-6)
	assert.InDelta(t, 19217, got.TotalDeductions, 1e-6)
	assert.InDelta(t, 155483, got.NetPayable, 1e-6)

	// Deterministic: same inputs, same result.
	assert.Equal(t, got, Calculate(in))
}

func TestCalculateEndToEndFixture(t *testing.T) {
	in := CalcInput{
		Basic: 100000,
		Advance: advance.Snapshot{
			Bonus:      20000,
			Attendance: 5000,
			Found:      true,
		},
	}

	got := Calculate(in)

	assert.InDelta(t, 100000, got.Gross, 1e-9)
	assert.InDelta(t, 25000, got.Bonus, 1e-9)
	assert.InDelta(t, 125000, got.SalaryBeforeDeduction, 1e-9)
	assert.InDelta(t, 10000, got.EPFEmployee, 1e-6)
	assert.InDelta(t, 3750, got.ETF, 1e-6)
	assert.InDelta(t, 13750, got.TotalDeductions, 1e-6)
	assert.InDelta(t, 111250, got.NetPayable, 1e-6)
}

func TestCalculateZeroBasic(t *testing.T) {
	got := Calculate(CalcInput{
		Attendance: attendance.Snapshot{OvertimeHrs: 12},
	})

	assert.Zero(t, got.HourlyRate)
	assert.Zero(t, got.OvertimePay)
	assert.Zero(t, got.NetPayable)
}

func TestCalculateNoPayDeduction(t *testing.T) {
	got := Calculate(CalcInput{
		Basic:      22000,
		Attendance: attendance.Snapshot{NoPayLeave: 2},
	})

	assert.InDelta(t, 2000, got.NoPayDeduction, 1e-9)
	// 22000 - 2000 - 8% - 3% of 22000
	assert.InDelta(t, 22000-2000-1760-660, got.NetPayable, 1e-6)
}

func TestCalculateAPITAndAdvanceStayZero(t *testing.T) {
	got := Calculate(CalcInput{Basic: 500000})
	assert.Zero(t, got.APIT)
	assert.Zero(t, got.SalaryAdvance)
}
