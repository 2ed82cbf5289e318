package company

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
)

var ErrNameTaken = errors.New("company name already in use")

type Service interface {
	Create(ctx context.Context, input domain.CreateCompanyInput) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
}

type service struct {
	companyRepo repository.CompanyRepository
}

func NewService(companyRepo repository.CompanyRepository) Service {
	return &service{companyRepo: companyRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreateCompanyInput) (*domain.Company, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.Validationf("company name is required")
	}

	existing, err := s.companyRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	company := &domain.Company{
		ID:       uuid.New(),
		Name:     name,
		Industry: input.Industry,
		Status:   "ACTIVE",
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (s *service) List(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}
