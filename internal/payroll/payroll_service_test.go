package payroll_test

import (
	"context"
	"encoding/json"
	"testing"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	withTxFn            func(tx *gorm.DB) payroll.Repository
	createFn            func(ctx context.Context, p *payroll.Payroll) error
	findAllFn           func(ctx context.Context) ([]payroll.Payroll, error)
	findByIDFn          func(ctx context.Context, id string) (*payroll.Payroll, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]payroll.Payroll, error)
	existsForPeriodFn   func(ctx context.Context, employeeID string, month, year int) (bool, error)
	deleteFn            func(ctx context.Context, id string) error
}

func (f *fakePayrollRepository) WithTx(tx *gorm.DB) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context) ([]payroll.Payroll, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &payroll.Payroll{}, nil
}

func (f *fakePayrollRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if f.existsForPeriodFn != nil {
		return f.existsForPeriodFn(ctx, employeeID, month, year)
	}
	return false, nil
}

func (f *fakePayrollRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{}, nil
}
func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) FindFirst(ctx context.Context) (*employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	return nil
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, employeeID string, month, year int, override *float64) (float64, error)
}

func (f *fakeResolver) ResolveDays(ctx context.Context, employeeID string, month, year int, override *float64) (float64, error) {
	return f.resolveFn(ctx, employeeID, month, year, override)
}

type fakeOutboxRepository struct {
	withTxFn func(tx *gorm.DB) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	sqlMock      sqlmock.Sqlmock
	service      payroll.Service
	repo         *fakePayrollRepository
	employeeRepo *fakeEmployeeRepository
	resolver     *fakeResolver
	outbox       *fakeOutboxRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	gormDB, sqlMock := testutil.OpenGormMock(t)

	repo := &fakePayrollRepository{}
	employeeRepo := &fakeEmployeeRepository{}
	resolver := &fakeResolver{}
	outbox := &fakeOutboxRepository{}
	svc := payroll.NewServiceWithOutbox(gormDB, repo, employeeRepo, resolver, outbox)

	return &payrollServiceDeps{
		sqlMock:      sqlMock,
		service:      svc,
		repo:         repo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
		outbox:       outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)

	expectTx(t, deps.sqlMock, true)

	deps.resolver.resolveFn = func(ctx context.Context, eid string, month, year int, override *float64) (float64, error) {
		assert.Equal(t, employeeID, eid)
		assert.Equal(t, 2, month)
		assert.Equal(t, 2026, year)
		return 26, nil
	}
	deps.employeeRepo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{
			ID:          uuid.MustParse(employeeID),
			Name:        "Raj Kumar",
			BasicSalary: 18000,
		}, nil
	}

	// The row insert and the outbox insert must both run on the transaction
	// handle, not the root connection.
	var repoTxUsed, outboxTxUsed bool
	deps.repo.withTxFn = func(tx *gorm.DB) payroll.Repository {
		assert.NotNil(t, tx)
		repoTxUsed = true
		return deps.repo
	}
	var outboxEvent kafka.OutboxEvent
	deps.outbox.withTxFn = func(tx *gorm.DB) kafka.OutboxRepository {
		assert.NotNil(t, tx)
		outboxTxUsed = true
		return deps.outbox
	}
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxEvent = event
		return nil
	}

	resp, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID: employeeID,
		Month:      2,
		Year:       2026,
	})

	assert.NoError(t, err)
	assert.Equal(t, 26.0, resp.AttendanceDays)
	assert.InDelta(t, 13611.00, resp.NetSalary, 0.01)
	assert.InDelta(t, 15600.00, resp.EarnedBasic, 0.01)
	assert.InDelta(t, 1872.00, resp.PFDeduction, 0.01)
	assert.InDelta(t, 117.00, resp.ESIDeduction, 0.01)
	assert.Equal(t, "Raj Kumar", resp.EmployeeName)

	assert.True(t, repoTxUsed)
	assert.True(t, outboxTxUsed)

	assert.Equal(t, events.PayrollGeneratedTopic, outboxEvent.Topic)
	var event events.PayrollGeneratedEvent
	assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &event))
	assert.Equal(t, employeeID, event.EmployeeID)
	assert.Equal(t, 2, event.Month)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_Duplicate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)

	expectTx(t, deps.sqlMock, false)

	deps.resolver.resolveFn = func(ctx context.Context, eid string, month, year int, override *float64) (float64, error) {
		return 26, nil
	}
	deps.repo.existsForPeriodFn = func(ctx context.Context, eid string, month, year int) (bool, error) {
		return true, nil
	}
	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		t.Fatal("create must not run when a payroll already exists for the period")
		return nil
	}

	_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID: employeeID,
		Month:      2,
		Year:       2026,
	})

	assert.ErrorIs(t, err, payrollerrors.ErrDuplicatePayroll)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_MissingAttendance(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)

	deps.resolver.resolveFn = func(ctx context.Context, eid string, month, year int, override *float64) (float64, error) {
		return 0, attendanceerrors.ErrMissingAttendance
	}

	_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID: uuid.New().String(),
		Month:      2,
		Year:       2026,
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrMissingAttendance)
}

func TestPayrollService_Generate_InvalidEmployeeID(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)

	_, err := deps.service.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID: "not-a-uuid",
		Month:      2,
		Year:       2026,
	})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{ID: payrollID}, nil
		}

		err := deps.service.Delete(ctx, payrollID.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		err := deps.service.Delete(ctx, "nope")

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayrollID)
	})
}
