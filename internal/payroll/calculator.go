package payroll

import "math"

// Statutory policy constants. These encode product-wide assumptions, not
// per-employee configuration: every month is standardized to 30 working
// days, PF is 12% of earned basic and employee ESI is 0.75%.
const (
	TotalWorkingDays = 30.0
	PFRate           = 0.12
	ESIRate          = 0.0075
)

type Breakdown struct {
	EarnedBasic float64
	PF          float64
	ESI         float64
	Net         float64
}

// Compute derives the monthly pay figures from the basic salary and the
// days present. EarnedBasic, PF and ESI are returned unrounded; callers
// round where a figure is stored or printed. Net is rounded to two decimals
// because that is the stored value.
func Compute(basicSalary, attendanceDays float64) Breakdown {
	earned := basicSalary / TotalWorkingDays * attendanceDays
	pf := earned * PFRate
	esi := earned * ESIRate

	return Breakdown{
		EarnedBasic: earned,
		PF:          pf,
		ESI:         esi,
		Net:         Round2(earned - pf - esi),
	}
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
