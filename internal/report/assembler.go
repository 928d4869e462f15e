package report

import (
	"fmt"

	"go-payroll/internal/company"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
)

// Statutory reporting constants. The muster roll uses a fixed 26-day month
// and a flat 10% deduction; these are documented simplifications of the
// register format, not derived from attendance records.
const (
	StandardDeduction = 50000.0
	TDSRate           = 0.05

	MusterDaysPresent   = 26.0
	MusterDeductionRate = 0.10

	// Employer contributes 3.25% ESI against the employee's 0.75%.
	EmployerESIFactor = 3.25 / 0.75
)

type Form16Data struct {
	EmployerName string
	EmployerPAN  string
	EmployerTAN  string

	EmployeeName string
	EmployeePAN  string
	EmployeeUAN  string
	Period       string

	AmountPaid    float64
	TaxDeducted   float64
	TaxDeposited  float64
	TaxableSalary float64
}

type MusterRow struct {
	Serial      int
	Name        string
	DaysPresent float64
	Gross       float64
	Deduction   float64
	Net         float64
	PF          float64
	ESI         float64
}

type MusterRollData struct {
	Organization string
	Address      string
	PFAccount    string
	ESICode      string
	PTCircle     string
	MonthLabel   string
	Rows         []MusterRow
}

type PFESIRow struct {
	Name        string
	EmployeePF  float64
	EmployerPF  float64
	TotalPF     float64
	EmployeeESI float64
	EmployerESI float64
	TotalESI    float64
}

type PFESISummaryData struct {
	Organization string
	PFAccount    string
	ESICode      string
	MonthLabel   string
	Rows         []PFESIRow
}

type PayslipData struct {
	EmployeeName   string
	EmployeeNumber string
	Designation    string
	MonthLabel     string
	AttendanceDays float64
	NetSalary      float64
}

// AssembleForm16 projects one employee onto the Part A tax summary. Annual
// pay is twelve months of basic, TDS is a flat 5% and the taxable figure is
// annual pay less the standard deduction, floored at zero.
func AssembleForm16(empl employee.Employee, comp *company.Company, fiscalYear string) Form16Data {
	annual := empl.BasicSalary * 12
	tax := annual * TDSRate
	taxable := annual - StandardDeduction
	if taxable < 0 {
		taxable = 0
	}

	data := Form16Data{
		EmployeeName:  empl.Name,
		EmployeePAN:   orNotFound(empl.PAN),
		EmployeeUAN:   orNotFound(empl.UAN),
		Period:        fiscalYear,
		AmountPaid:    annual,
		TaxDeducted:   tax,
		TaxDeposited:  tax,
		TaxableSalary: taxable,
	}

	if comp != nil {
		data.EmployerName = comp.Name
		data.EmployerPAN = comp.PANNumber
		data.EmployerTAN = comp.TANNumber
	}

	return data
}

// AssembleMusterRoll builds one register row per employee. Gross is the
// monthly basic with the fixed 26 days present.
func AssembleMusterRoll(employees []employee.Employee, comp *company.Company, monthLabel string) MusterRollData {
	rows := make([]MusterRow, len(employees))
	for i, empl := range employees {
		rows[i] = MusterRow{
			Serial:      i + 1,
			Name:        empl.Name,
			DaysPresent: MusterDaysPresent,
			Gross:       empl.BasicSalary,
			Deduction:   empl.BasicSalary * MusterDeductionRate,
			Net:         empl.BasicSalary * (1 - MusterDeductionRate),
			PF:          empl.BasicSalary * payroll.PFRate,
			ESI:         empl.BasicSalary * payroll.ESIRate,
		}
	}

	data := MusterRollData{MonthLabel: monthLabel, Rows: rows}
	if comp != nil {
		data.Organization = comp.Name
		data.Address = comp.Address
		data.PFAccount = comp.PFCode
		data.ESICode = comp.ESICode
		data.PTCircle = comp.PTCircle
	}
	return data
}

// AssemblePFESISummary builds the monthly contribution rows. The employer
// matches PF at 12% and contributes ESI at 3.25% against the employee's
// 0.75%.
func AssemblePFESISummary(employees []employee.Employee, comp *company.Company, monthLabel string) PFESISummaryData {
	rows := make([]PFESIRow, len(employees))
	for i, empl := range employees {
		pf := empl.BasicSalary * payroll.PFRate
		esi := empl.BasicSalary * payroll.ESIRate
		employerESI := esi * EmployerESIFactor

		rows[i] = PFESIRow{
			Name:        empl.Name,
			EmployeePF:  pf,
			EmployerPF:  pf,
			TotalPF:     pf * 2,
			EmployeeESI: esi,
			EmployerESI: employerESI,
			TotalESI:    esi + employerESI,
		}
	}

	data := PFESISummaryData{MonthLabel: monthLabel, Rows: rows}
	if comp != nil {
		data.Organization = comp.Name
		data.PFAccount = comp.PFCode
		data.ESICode = comp.ESICode
	}
	return data
}

func orNotFound(v *string) string {
	if v == nil || *v == "" {
		return "Not Found"
	}
	return *v
}

// FormatAmount renders a currency figure the way the printed registers show
// it, two decimals with a rupee prefix.
func FormatAmount(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
