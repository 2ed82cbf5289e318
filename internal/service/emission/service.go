package emission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/category"
	"esg-platform/internal/service/workflow"
)

type Service interface {
	Submit(ctx context.Context, submitter *domain.User, input domain.CreateEmissionInput) (*domain.GHGEmission, error)
	Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (*domain.GHGEmission, error)
	GetByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.GHGEmission, error)
	ListPending(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.GHGEmission, error)
	ListByCompany(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.GHGEmission, error)
	ListByScope(ctx context.Context, user *domain.User, companyID uuid.UUID, scope domain.EmissionScope) ([]domain.GHGEmission, error)
	ListByDateRange(ctx context.Context, user *domain.User, companyID uuid.UUID, start, end time.Time) ([]domain.GHGEmission, error)
	ListHistory(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.GHGEmission, error)
}

type service struct {
	repo   repository.EmissionRepository
	engine *workflow.Engine[*domain.GHGEmission]
}

func NewService(repo repository.EmissionRepository, engine *workflow.Engine[*domain.GHGEmission]) Service {
	return &service{
		repo:   repo,
		engine: engine,
	}
}

func (s *service) Submit(ctx context.Context, submitter *domain.User, input domain.CreateEmissionInput) (*domain.GHGEmission, error) {
	if !input.Scope.IsValid() {
		return nil, domain.Validationf("unknown emission scope %q", input.Scope)
	}
	if input.StartDate == nil || input.EndDate == nil {
		return nil, domain.Validationf("start_date and end_date are required")
	}
	if input.EndDate.Before(*input.StartDate) {
		return nil, domain.Validationf("end_date must not precede start_date")
	}
	if input.Quantity < 0 {
		return nil, domain.Validationf("quantity must not be negative")
	}
	if input.Unit == "" {
		return nil, domain.Validationf("unit is required")
	}

	timeFrame := input.TimeFrame
	if timeFrame == "" {
		timeFrame = domain.TimeFrameCustom
	}

	now := time.Now()
	emission := &domain.GHGEmission{
		Scope:              input.Scope,
		Category:           category.Normalize(input.Scope, input.Category),
		TimeFrame:          timeFrame,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		Quantity:           input.Quantity,
		Unit:               input.Unit,
		Source:             input.Source,
		Activity:           input.Activity,
		CalculationMethod:  input.CalculationMethod,
		EmissionFactor:     input.EmissionFactor,
		EmissionFactorUnit: input.EmissionFactorUnit,
		SubmissionDate:     &now,
		Notes:              input.Notes,
	}

	if err := s.engine.Submit(ctx, submitter, emission); err != nil {
		return nil, err
	}

	return emission, nil
}

func (s *service) Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (*domain.GHGEmission, error) {
	return s.engine.Review(ctx, reviewer, id, input)
}

func (s *service) GetByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.GHGEmission, error) {
	emission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeCompanyAccess(user, emission.CompanyID); err != nil {
		return nil, err
	}
	return emission, nil
}

func (s *service) ListPending(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.GHGEmission, error) {
	if err := authorizeReviewQueue(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndStatus(ctx, companyID, domain.StatusPending)
}

func (s *service) ListByCompany(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.GHGEmission, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *service) ListByScope(ctx context.Context, user *domain.User, companyID uuid.UUID, scope domain.EmissionScope) ([]domain.GHGEmission, error) {
	if !scope.IsValid() {
		return nil, domain.Validationf("unknown emission scope %q", scope)
	}
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndScope(ctx, companyID, scope)
}

func (s *service) ListByDateRange(ctx context.Context, user *domain.User, companyID uuid.UUID, start, end time.Time) ([]domain.GHGEmission, error) {
	if end.Before(start) {
		return nil, domain.Validationf("end date must not precede start date")
	}
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndDateRange(ctx, companyID, start, end)
}

func (s *service) ListHistory(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.GHGEmission, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndStatus(ctx, companyID, domain.StatusApproved, domain.StatusDenied)
}

// authorizeCompanyAccess lets admins see everything and everyone else only
// their own company's data.
func authorizeCompanyAccess(user *domain.User, companyID uuid.UUID) error {
	if user.Role == domain.RoleAdmin {
		return nil
	}
	if user.CompanyID == nil || *user.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}

// authorizeReviewQueue mirrors the review authorization itself: the pending
// queue belongs to managers of the owning company, nobody else.
func authorizeReviewQueue(user *domain.User, companyID uuid.UUID) error {
	if user.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	if user.CompanyID == nil || *user.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}
