package attendance

import (
	"context"
	"errors"

	attendanceerrors "go-payroll/internal/attendance/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minPresentDays = 0.0
	maxPresentDays = 31.0
)

// Resolver picks the attendance-days figure used by payroll generation.
type Resolver interface {
	ResolveDays(ctx context.Context, employeeID string, month, year int, override *float64) (float64, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Resolver
	Upsert(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// ResolveDays prefers the stored record: once attendance has been recorded
// for a period, a manual override passed at payroll time must not replace it.
func (s *service) ResolveDays(ctx context.Context, employeeID string, month, year int, override *float64) (float64, error) {
	row, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, month, year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	var days float64
	switch {
	case row != nil:
		days = row.PresentDays
	case override != nil:
		days = *override
	default:
		return 0, attendanceerrors.ErrMissingAttendance
	}

	if days < minPresentDays || days > maxPresentDays {
		return 0, attendanceerrors.ErrInvalidAttendance
	}

	return days, nil
}

func (s *service) Upsert(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	days := *req.PresentDays
	if days < minPresentDays || days > maxPresentDays {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendance
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return AttendanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	if row != nil {
		row.PresentDays = days
		if err := qtx.Update(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	} else {
		row = &Attendance{
			ID:          uuid.New(),
			EmployeeID:  uuid.MustParse(req.EmployeeID),
			Month:       req.Month,
			Year:        req.Year,
			PresentDays: days,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		Month:       a.Month,
		Year:        a.Year,
		PresentDays: a.PresentDays,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	return resp
}
