package payroll

import (
	"context"
	"encoding/json"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	resolver     attendance.Resolver
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	resolver attendance.Resolver,
) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, resolver, nil)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	resolver attendance.Resolver,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
		outbox:       outboxRepo,
		logger:       zap.L().Named("payroll.service"),
	}
}

// Generate creates the single payroll row for (employee, month, year).
// Attendance resolution happens first: a stored record always wins over the
// manual attendance_days value in the request.
func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	days, err := s.resolver.ResolveDays(ctx, req.EmployeeID, req.Month, req.Year, req.AttendanceDays)
	if err != nil {
		return PayrollResponse{}, err
	}

	empl, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	// Row insert and outbox insert share one transaction: both commit or
	// neither does.
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("generate payroll begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return PayrollResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		return PayrollResponse{}, payrollerrors.ErrDuplicatePayroll
	}

	breakdown := Compute(empl.BasicSalary, days)

	payroll := &Payroll{
		ID:             uuid.New(),
		EmployeeID:     employeeUUID,
		Month:          req.Month,
		Year:           req.Year,
		AttendanceDays: days,
		NetSalary:      breakdown.Net,
	}

	if err := qtx.Create(ctx, payroll); err != nil {
		s.logger.Error("generate payroll persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PayrollGeneratedEvent{
			EventType:  "payroll_generated",
			RequestID:  rid,
			PayrollID:  payroll.ID.String(),
			EmployeeID: req.EmployeeID,
			Month:      req.Month,
			Year:       req.Year,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll",
			AggregateID:   payroll.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate payroll outbox persist failed",
				zap.String("payroll_id", payroll.ID.String()),
				zap.Error(err),
			)
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("generate payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("payroll generated",
		zap.String("request_id", rid),
		zap.String("payroll_id", payroll.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Float64("net_salary", breakdown.Net),
	)

	resp := mapToResponse(*payroll)
	resp.EmployeeName = empl.Name
	resp.EarnedBasic = Round2(breakdown.EarnedBasic)
	resp.PFDeduction = Round2(breakdown.PF)
	resp.ESIDeduction = Round2(breakdown.ESI)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	payroll, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*payroll), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	payrolls, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidPayrollID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit().Error
}

func mapToResponse(payroll Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:             payroll.ID.String(),
		EmployeeID:     payroll.EmployeeID.String(),
		Month:          payroll.Month,
		Year:           payroll.Year,
		AttendanceDays: payroll.AttendanceDays,
		NetSalary:      payroll.NetSalary,
	}
	if payroll.Employee != nil {
		resp.EmployeeName = payroll.Employee.Name
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}
