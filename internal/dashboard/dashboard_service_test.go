package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type fakeDashboardRepository struct {
	countEmployeesFn         func(ctx context.Context) (int64, error)
	payrollTotalFn           func(ctx context.Context, month, year int) (float64, error)
	complianceFn             func(ctx context.Context) (int64, error)
	attendanceTotalsFn       func(ctx context.Context, month, year int) ([]MonthAttendance, error)
	departmentDistributionFn func(ctx context.Context) ([]DepartmentCount, error)
}

func (f *fakeDashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) PayrollTotalForPeriod(ctx context.Context, month, year int) (float64, error) {
	if f.payrollTotalFn != nil {
		return f.payrollTotalFn(ctx, month, year)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountComplianceIssues(ctx context.Context) (int64, error) {
	if f.complianceFn != nil {
		return f.complianceFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) AttendanceTotalsSince(ctx context.Context, month, year int) ([]MonthAttendance, error) {
	if f.attendanceTotalsFn != nil {
		return f.attendanceTotalsFn(ctx, month, year)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) DepartmentDistribution(ctx context.Context) ([]DepartmentCount, error) {
	if f.departmentDistributionFn != nil {
		return f.departmentDistributionFn(ctx)
	}
	return nil, nil
}

func newTestService(repo Repository, now time.Time) Service {
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: zap.NewNop(),
		now:    func() time.Time { return now },
	}
}

func TestDashboardService_Summary(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeDashboardRepository{
		countEmployeesFn: func(ctx context.Context) (int64, error) { return 12, nil },
		payrollTotalFn: func(ctx context.Context, month, year int) (float64, error) {
			assert.Equal(t, 6, month)
			assert.Equal(t, 2025, year)
			return 163332.50, nil
		},
		complianceFn: func(ctx context.Context) (int64, error) { return 3, nil },
		attendanceTotalsFn: func(ctx context.Context, month, year int) ([]MonthAttendance, error) {
			// Trend window opens five months back.
			assert.Equal(t, 1, month)
			assert.Equal(t, 2025, year)
			return []MonthAttendance{
				{Month: 5, Year: 2025, TotalDays: 280},
				{Month: 6, Year: 2025, TotalDays: 130},
			}, nil
		},
		departmentDistributionFn: func(ctx context.Context) ([]DepartmentCount, error) {
			return []DepartmentCount{
				{Department: "Production", Count: 8},
				{Department: "Accounts", Count: 4},
			}, nil
		},
	}

	svc := newTestService(repo, now)
	resp, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.Headcount)
	assert.InDelta(t, 163332.50, resp.MonthlyPayrollTotal, 0.01)
	assert.Equal(t, int64(3), resp.ComplianceIssues)
	assert.Len(t, resp.DepartmentDistribution, 2)

	// Exactly six periods ending with the current month, zero-filled where
	// no attendance exists.
	assert.Len(t, resp.AttendanceTrend, 6)
	assert.Equal(t, MonthAttendance{Month: 1, Year: 2025}, resp.AttendanceTrend[0])
	assert.Equal(t, MonthAttendance{Month: 5, Year: 2025, TotalDays: 280}, resp.AttendanceTrend[4])
	assert.Equal(t, MonthAttendance{Month: 6, Year: 2025, TotalDays: 130}, resp.AttendanceTrend[5])
}

func TestDashboardService_Summary_TrendCrossesYearBoundary(t *testing.T) {
	now := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeDashboardRepository{
		attendanceTotalsFn: func(ctx context.Context, month, year int) ([]MonthAttendance, error) {
			assert.Equal(t, 9, month)
			assert.Equal(t, 2024, year)
			return []MonthAttendance{
				{Month: 12, Year: 2024, TotalDays: 300},
			}, nil
		},
	}

	svc := newTestService(repo, now)
	resp, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.AttendanceTrend, 6)
	assert.Equal(t, MonthAttendance{Month: 9, Year: 2024}, resp.AttendanceTrend[0])
	assert.Equal(t, MonthAttendance{Month: 12, Year: 2024, TotalDays: 300}, resp.AttendanceTrend[3])
	assert.Equal(t, MonthAttendance{Month: 2, Year: 2025}, resp.AttendanceTrend[5])
}

func TestDashboardService_Summary_RepoError(t *testing.T) {
	repo := &fakeDashboardRepository{
		countEmployeesFn: func(ctx context.Context) (int64, error) {
			return 0, assert.AnError
		},
	}

	svc := newTestService(repo, time.Now())
	_, err := svc.Summary(context.Background())

	assert.Error(t, err)
}
