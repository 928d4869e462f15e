package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = time.Minute
	trendMonths     = 6
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) (DashboardResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("dashboard.service"),
		now:    time.Now,
	}
}

func (s *service) Summary(ctx context.Context) (DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, summaryCacheKey).Result(); err == nil {
			var resp DashboardResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// singleflight collapses concurrent cache misses into one query
	v, err, _ := s.sf.Do(summaryCacheKey, func() (any, error) {
		resp, err := s.buildSummary(ctx)
		if err != nil {
			return DashboardResponse{}, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				_ = s.rdb.Set(ctx, summaryCacheKey, payload, summaryCacheTTL).Err()
			}
		}

		return resp, nil
	})
	if err != nil {
		return DashboardResponse{}, err
	}

	return v.(DashboardResponse), nil
}

func (s *service) buildSummary(ctx context.Context) (DashboardResponse, error) {
	now := s.now()

	headcount, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	payrollTotal, err := s.repo.PayrollTotalForPeriod(ctx, int(now.Month()), now.Year())
	if err != nil {
		return DashboardResponse{}, err
	}

	issues, err := s.repo.CountComplianceIssues(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	trend, err := s.attendanceTrend(ctx, now)
	if err != nil {
		return DashboardResponse{}, err
	}

	departments, err := s.repo.DepartmentDistribution(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Headcount:              headcount,
		MonthlyPayrollTotal:    payrollTotal,
		ComplianceIssues:       issues,
		AttendanceTrend:        trend,
		DepartmentDistribution: departments,
	}, nil
}

// attendanceTrend always returns exactly six periods ending with the current
// month; periods with no records carry a zero total.
func (s *service) attendanceTrend(ctx context.Context, now time.Time) ([]MonthAttendance, error) {
	start := now.AddDate(0, -(trendMonths - 1), 0)

	rows, err := s.repo.AttendanceTotalsSince(ctx, int(start.Month()), start.Year())
	if err != nil {
		return nil, err
	}

	totals := make(map[[2]int]float64, len(rows))
	for _, row := range rows {
		totals[[2]int{row.Year, row.Month}] = row.TotalDays
	}

	trend := make([]MonthAttendance, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		period := now.AddDate(0, -i, 0)
		trend = append(trend, MonthAttendance{
			Month:     int(period.Month()),
			Year:      period.Year(),
			TotalDays: totals[[2]int{period.Year(), int(period.Month())}],
		})
	}
	return trend, nil
}
