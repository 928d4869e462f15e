package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const employeeListCacheKey = "employees:list"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if req.BasicSalary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeBasicSalary
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Minting inside the transaction keeps the EMP sequence gap-free when
	// the insert rolls back.
	nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, "employee_number")
	if err != nil {
		s.logger.Error("create employee generate number failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: fmt.Sprintf("EMP-%06d", nextVal),
		Name:           req.Name,
		Email:          req.Email,
		Designation:    req.Designation,
		Department:     req.Department,
		BasicSalary:    req.BasicSalary,
		JoiningDate:    joiningDate,
		PAN:            req.PAN,
		UAN:            req.UAN,
		PFNumber:       req.PFNumber,
		ESINumber:      req.ESINumber,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeListCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// singleflight collapses concurrent cache misses into one query
	v, err, _ := s.sf.Do(employeeListCacheKey, func() (any, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]EmployeeResponse, len(empls))
		for i, e := range empls {
			resp[i] = mapToResponse(e)
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				_ = s.rdb.Set(ctx, employeeListCacheKey, payload, time.Minute).Err()
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	if req.BasicSalary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeBasicSalary
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Email = req.Email
	empl.Designation = req.Designation
	empl.Department = req.Department
	empl.BasicSalary = req.BasicSalary
	empl.JoiningDate = joiningDate
	empl.PAN = req.PAN
	empl.UAN = req.UAN
	empl.PFNumber = req.PFNumber
	empl.ESINumber = req.ESINumber

	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)

	return mapToResponse(*empl), nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", employeeListCacheKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		Designation:    e.Designation,
		Department:     e.Department,
		BasicSalary:    e.BasicSalary,
		JoiningDate:    e.JoiningDate.Format("2006-01-02"),
		PAN:            e.PAN,
		UAN:            e.UAN,
		PFNumber:       e.PFNumber,
		ESINumber:      e.ESINumber,
	}
}
