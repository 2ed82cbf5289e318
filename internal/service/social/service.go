package social

import (
	"context"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/workflow"
)

type Service interface {
	Submit(ctx context.Context, submitter *domain.User, input domain.CreateSocialMetricInput) (*domain.SocialMetric, error)
	Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (*domain.SocialMetric, error)
	GetByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.SocialMetric, error)
	ListPending(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.SocialMetric, error)
	ListByCompany(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.SocialMetric, error)
	ListBySubtype(ctx context.Context, user *domain.User, companyID uuid.UUID, subtype domain.SocialSubtype) ([]domain.SocialMetric, error)
	ListHistory(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.SocialMetric, error)
}

type service struct {
	repo   repository.SocialMetricRepository
	engine *workflow.Engine[*domain.SocialMetric]
}

func NewService(repo repository.SocialMetricRepository, engine *workflow.Engine[*domain.SocialMetric]) Service {
	return &service{
		repo:   repo,
		engine: engine,
	}
}

func (s *service) Submit(ctx context.Context, submitter *domain.User, input domain.CreateSocialMetricInput) (*domain.SocialMetric, error) {
	if !input.Subtype.IsValid() {
		return nil, domain.Validationf("unknown social subtype %q", input.Subtype)
	}
	if input.Metric == "" {
		return nil, domain.Validationf("metric is required")
	}
	if input.Unit == "" {
		return nil, domain.Validationf("unit is required")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domain.Validationf("end_date must not precede start_date")
	}

	metric := &domain.SocialMetric{
		Subtype:          input.Subtype,
		Category:         input.Category,
		Metric:           input.Metric,
		Value:            input.Value,
		Unit:             input.Unit,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Description:      input.Description,
		PolicyExists:     input.PolicyExists,
		PolicyURL:        input.PolicyURL,
		ReviewFrequency:  input.ReviewFrequency,
		ResponsibleParty: input.ResponsibleParty,
		DocumentationURL: input.DocumentationURL,
	}

	if err := s.engine.Submit(ctx, submitter, metric); err != nil {
		return nil, err
	}

	return metric, nil
}

func (s *service) Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (*domain.SocialMetric, error) {
	return s.engine.Review(ctx, reviewer, id, input)
}

func (s *service) GetByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.SocialMetric, error) {
	metric, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeCompanyAccess(user, metric.CompanyID); err != nil {
		return nil, err
	}
	return metric, nil
}

func (s *service) ListPending(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.SocialMetric, error) {
	if err := authorizeReviewQueue(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndStatus(ctx, companyID, domain.StatusPending)
}

func (s *service) ListByCompany(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.SocialMetric, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *service) ListBySubtype(ctx context.Context, user *domain.User, companyID uuid.UUID, subtype domain.SocialSubtype) ([]domain.SocialMetric, error) {
	if !subtype.IsValid() {
		return nil, domain.Validationf("unknown social subtype %q", subtype)
	}
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndSubtype(ctx, companyID, subtype)
}

func (s *service) ListHistory(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.SocialMetric, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndStatus(ctx, companyID, domain.StatusApproved, domain.StatusDenied)
}

func authorizeCompanyAccess(user *domain.User, companyID uuid.UUID) error {
	if user.Role == domain.RoleAdmin {
		return nil
	}
	if user.CompanyID == nil || *user.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}

// authorizeReviewQueue keeps the pending queue to managers of the company.
func authorizeReviewQueue(user *domain.User, companyID uuid.UUID) error {
	if user.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	if user.CompanyID == nil || *user.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}
