package company

import (
	"context"
	"errors"

	companyerrors "go-payroll/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (CompanyResponse, error)
	Upsert(ctx context.Context, req UpsertCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("company.service"),
	}
}

func (s *service) Get(ctx context.Context) (CompanyResponse, error) {
	company, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotConfigured
		}
		return CompanyResponse{}, err
	}

	return mapToResponse(*company), nil
}

func (s *service) Upsert(ctx context.Context, req UpsertCompanyRequest) (CompanyResponse, error) {
	company := &Company{
		ID:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		GSTNumber: req.GSTNumber,
		PANNumber: req.PANNumber,
		TANNumber: req.TANNumber,
		PFCode:    req.PFCode,
		ESICode:   req.ESICode,
		PTCircle:  req.PTCircle,
	}

	if err := s.repo.Upsert(ctx, company); err != nil {
		s.logger.Error("company upsert failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	// Re-read so the response reflects the stored row, including the ID of
	// the original row when the upsert updated in place.
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return CompanyResponse{}, err
	}

	s.logger.Info("company details saved", zap.String("company_id", stored.ID.String()))
	return mapToResponse(*stored), nil
}

func mapToResponse(company Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID.String(),
		Name:      company.Name,
		Address:   company.Address,
		GSTNumber: company.GSTNumber,
		PANNumber: company.PANNumber,
		TANNumber: company.TANNumber,
		PFCode:    company.PFCode,
		ESICode:   company.ESICode,
		PTCircle:  company.PTCircle,
	}
}
