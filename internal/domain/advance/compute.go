package advance

// Fixed percentage split of the base salary used by the compute endpoint.
const (
	costOfLivingRate     = 0.40
	medicalRate          = 0.10
	conveyanceRate       = 0.15
	performanceBonusRate = 0.20
	attendanceBonusRate  = 0.05
)

// ComputeBreakdown derives the standard monthly allowance/bonus split from an
// employee's base salary. Food and reimbursements are not salary-derived and
// stay zero.
func ComputeBreakdown(baseSalary float64) Snapshot {
	if baseSalary < 0 {
		baseSalary = 0
	}
	return Snapshot{
		CostOfLiving: baseSalary * costOfLivingRate,
		Medical:      baseSalary * medicalRate,
		Conveyance:   baseSalary * conveyanceRate,
		Bonus:        baseSalary * performanceBonusRate,
		Attendance:   baseSalary * attendanceBonusRate,
		Found:        true,
	}
}
