package report

// Renderer turns assembled report data into a paginated PDF byte stream.
// Implementations only lay out what they are handed; all arithmetic happens
// in the assembler.
//
//go:generate mockgen -source=renderer.go -destination=mock/renderer_mock.go -package=mock
type Renderer interface {
	Form16(data Form16Data) ([]byte, error)
	MusterRoll(data MusterRollData) ([]byte, error)
	PFESISummary(data PFESISummaryData) ([]byte, error)
	Payslip(data PayslipData) ([]byte, error)
}
