package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type pdfRenderer struct{}

// NewPDFRenderer returns the gofpdf-backed Renderer used for all statutory
// documents.
func NewPDFRenderer() Renderer {
	return &pdfRenderer{}
}

func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	return pdf
}

func title(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.SetLineWidth(0.4)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, 195, y)
	pdf.Ln(5)
}

func sectionHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}

func keyValueTable(pdf *gofpdf.Fpdf, heading string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(150, 8, heading, "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(45, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(105, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func gridRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, fill bool) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", fill, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) Form16(data Form16Data) ([]byte, error) {
	pdf := newDoc()
	title(pdf, "FORM 16 - TAX DEDUCTION CERTIFICATE (Part A)")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Certificate under Section 203 of Income Tax Act", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	keyValueTable(pdf, "Employer Details", [][2]string{
		{"Name:", data.EmployerName},
		{"PAN:", data.EmployerPAN},
		{"TAN:", data.EmployerTAN},
	})

	keyValueTable(pdf, "Employee Details", [][2]string{
		{"Name:", data.EmployeeName},
		{"PAN:", data.EmployeePAN},
		{"UAN:", data.EmployeeUAN},
		{"Salary Period:", data.Period},
	})

	keyValueTable(pdf, "PART A - Tax Deduction Summary", [][2]string{
		{"Amount Paid/Credited:", FormatAmount(data.AmountPaid)},
		{"Total TDS Deducted:", FormatAmount(data.TaxDeducted)},
		{"TDS Deposited with Govt:", FormatAmount(data.TaxDeposited)},
		{"Standard Deduction:", FormatAmount(StandardDeduction)},
		{"Taxable Salary:", FormatAmount(data.TaxableSalary)},
	})

	return output(pdf)
}

func (r *pdfRenderer) MusterRoll(data MusterRollData) ([]byte, error) {
	pdf := newDoc()
	title(pdf, "MUSTER ROLL - REGISTER OF WAGES")

	keyValueTable(pdf, "Establishment", [][2]string{
		{"Organization:", data.Organization},
		{"Address:", data.Address},
		{"Month:", data.MonthLabel},
		{"PF Account:", data.PFAccount},
		{"ESI Code:", data.ESICode},
		{"PT Circle:", data.PTCircle},
	})

	widths := []float64{10, 45, 20, 25, 25, 25, 20, 15}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	gridRow(pdf, widths, []string{"Sl", "Employee Name", "Days", "Gross (Rs.)", "Deduction (Rs.)", "Net Pay (Rs.)", "PF (Rs.)", "ESI (Rs.)"}, true)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range data.Rows {
		gridRow(pdf, widths, []string{
			fmt.Sprintf("%d", row.Serial),
			row.Name,
			fmt.Sprintf("%.0f", row.DaysPresent),
			fmt.Sprintf("%.2f", row.Gross),
			fmt.Sprintf("%.2f", row.Deduction),
			fmt.Sprintf("%.2f", row.Net),
			fmt.Sprintf("%.2f", row.PF),
			fmt.Sprintf("%.2f", row.ESI),
		}, false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 7, fmt.Sprintf("TOTAL: %d Employees", len(data.Rows)), "1", 1, "C", false, 0, "")

	return output(pdf)
}

func (r *pdfRenderer) PFESISummary(data PFESISummaryData) ([]byte, error) {
	pdf := newDoc()
	title(pdf, "PF & ESI MONTHLY CONTRIBUTION SUMMARY - "+data.MonthLabel)

	keyValueTable(pdf, "Organization", [][2]string{
		{"Organization:", data.Organization},
		{"PF Account:", data.PFAccount},
		{"ESI Code:", data.ESICode},
	})

	widths := []float64{60, 40, 40, 40}

	sectionHeading(pdf, "PROVIDENT FUND (PF) CONTRIBUTION:")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	gridRow(pdf, widths, []string{"Employee", "Employee PF (Rs.)", "Employer PF (Rs.)", "Total PF (Rs.)"}, true)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range data.Rows {
		gridRow(pdf, widths, []string{
			row.Name,
			fmt.Sprintf("%.2f", row.EmployeePF),
			fmt.Sprintf("%.2f", row.EmployerPF),
			fmt.Sprintf("%.2f", row.TotalPF),
		}, false)
	}

	pdf.Ln(6)
	sectionHeading(pdf, "ESIC CONTRIBUTION (Salary < Rs. 21,000):")
	pdf.SetFont("Helvetica", "B", 9)
	gridRow(pdf, widths, []string{"Employee", "Employee ESI (Rs.)", "Employer ESI (Rs.)", "Total ESI (Rs.)"}, true)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range data.Rows {
		gridRow(pdf, widths, []string{
			row.Name,
			fmt.Sprintf("%.2f", row.EmployeeESI),
			fmt.Sprintf("%.2f", row.EmployerESI),
			fmt.Sprintf("%.2f", row.TotalESI),
		}, false)
	}

	return output(pdf)
}

func (r *pdfRenderer) Payslip(data PayslipData) ([]byte, error) {
	pdf := newDoc()
	title(pdf, "PAYSLIP - "+data.MonthLabel)

	keyValueTable(pdf, "Employee", [][2]string{
		{"Name:", data.EmployeeName},
		{"Employee No:", data.EmployeeNumber},
		{"Designation:", data.Designation},
	})

	keyValueTable(pdf, "Pay Summary", [][2]string{
		{"Days Present:", fmt.Sprintf("%.1f", data.AttendanceDays)},
		{"Net Salary:", FormatAmount(data.NetSalary)},
	})

	return output(pdf)
}
