package report

import (
	"context"
	"fmt"
	"time"

	"go-payroll/internal/company"
	"go-payroll/internal/employee"
	reporterrors "go-payroll/internal/report/errors"
	"go-payroll/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TypeForm16     = "form16"
	TypeMusterRoll = "muster"
	TypePFESI      = "pf_esi"
)

// Document is a rendered report ready to stream out.
type Document struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, reportType, userID string) (Document, error)
}

type service struct {
	userRepo     user.Repository
	employeeRepo employee.Repository
	companyRepo  company.Repository
	renderer     Renderer
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(
	userRepo user.Repository,
	employeeRepo employee.Repository,
	companyRepo company.Repository,
	renderer Renderer,
) Service {
	return &service{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		renderer:     renderer,
		logger:       zap.L().Named("report.service"),
		now:          time.Now,
	}
}

func (s *service) Generate(ctx context.Context, reportType, userID string) (Document, error) {
	var (
		doc Document
		err error
	)

	switch reportType {
	case TypeForm16:
		doc, err = s.generateForm16(ctx, userID)
	case TypeMusterRoll:
		doc, err = s.generateMusterRoll(ctx)
	case TypePFESI:
		doc, err = s.generatePFESISummary(ctx)
	default:
		return Document{}, reporterrors.ErrInvalidReportType
	}

	if err != nil {
		return Document{}, err
	}

	s.logger.Info("report generated",
		zap.String("type", reportType),
		zap.String("user_id", userID),
		zap.Int("bytes", len(doc.Bytes)),
	)
	return doc, nil
}

// Form 16 is scoped to the employee linked to the requesting user. Accounts
// without a link (admins) fall back to the first employee on record, the
// behavior the report screen has always had.
func (s *service) generateForm16(ctx context.Context, userID string) (Document, error) {
	empl, err := s.resolveEmployee(ctx, userID)
	if err != nil {
		return Document{}, err
	}

	comp := s.companySnapshot(ctx)
	data := AssembleForm16(*empl, comp, s.fiscalYearLabel())

	payload, err := s.renderer.Form16(data)
	if err != nil {
		return Document{}, reporterrors.ErrRenderFailed.Wrap(err)
	}

	return Document{
		Filename:    fmt.Sprintf("Form16_%s.pdf", userID),
		ContentType: "application/pdf",
		Bytes:       payload,
	}, nil
}

func (s *service) generateMusterRoll(ctx context.Context) (Document, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return Document{}, err
	}

	comp := s.companySnapshot(ctx)
	data := AssembleMusterRoll(employees, comp, s.monthLabel())

	payload, err := s.renderer.MusterRoll(data)
	if err != nil {
		return Document{}, reporterrors.ErrRenderFailed.Wrap(err)
	}

	return Document{
		Filename:    fmt.Sprintf("MusterRoll_%s.pdf", s.now().Format("2006_01")),
		ContentType: "application/pdf",
		Bytes:       payload,
	}, nil
}

func (s *service) generatePFESISummary(ctx context.Context) (Document, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return Document{}, err
	}

	comp := s.companySnapshot(ctx)
	data := AssemblePFESISummary(employees, comp, s.monthLabel())

	payload, err := s.renderer.PFESISummary(data)
	if err != nil {
		return Document{}, reporterrors.ErrRenderFailed.Wrap(err)
	}

	return Document{
		Filename:    fmt.Sprintf("PF_ESI_%s.pdf", s.now().Format("2006_01")),
		ContentType: "application/pdf",
		Bytes:       payload,
	}, nil
}

func (s *service) resolveEmployee(ctx context.Context, userID string) (*employee.Employee, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, reporterrors.ErrNoEmployeeForUser
	}

	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, reporterrors.ErrNoEmployeeForUser
	}

	if u.EmployeeID != nil {
		if empl, err := s.employeeRepo.FindByID(ctx, u.EmployeeID.String()); err == nil {
			return empl, nil
		}
	}

	empl, err := s.employeeRepo.FindFirst(ctx)
	if err != nil {
		return nil, reporterrors.ErrNoEmployeeForUser
	}
	return empl, nil
}

// companySnapshot tolerates a missing singleton: reports fall back to blank
// employer fields rather than failing.
func (s *service) companySnapshot(ctx context.Context) *company.Company {
	comp, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil
	}
	return comp
}

// Indian fiscal year, April through March.
func (s *service) fiscalYearLabel() string {
	now := s.now()
	start := now.Year()
	if now.Month() < time.April {
		start--
	}
	return fmt.Sprintf("FY %d-%02d", start, (start+1)%100)
}

func (s *service) monthLabel() string {
	return s.now().Format("January 2006")
}
