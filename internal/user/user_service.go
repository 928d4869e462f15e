package user

import (
	"context"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/rbac"
	usererrors "go-payroll/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository) Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		logger:       zap.L().Named("user.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	var employeeID *uuid.UUID

	// Employee-role accounts must point at a real employee record so
	// self-scoped payrolls and reports have something to key off.
	if req.Role == rbac.RoleEmployee && req.EmployeeID == nil {
		return UserResponse{}, usererrors.ErrEmployeeLinkRequired
	}

	if req.EmployeeID != nil {
		parsed, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return UserResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		if _, err := s.employeeRepo.FindByID(ctx, parsed.String()); err != nil {
			return UserResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		employeeID = &parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       req.Role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("user create failed", zap.String("email", req.Email), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return mapToResponse(*user), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func mapToResponse(user User) UserResponse {
	resp := UserResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
	if user.EmployeeID != nil {
		resp.EmployeeID = user.EmployeeID.String()
	}
	return resp
}
