package esg

import (
	"context"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/workflow"
)

type Service interface {
	Submit(ctx context.Context, submitter *domain.User, input domain.CreateESGSubmissionInput) (*domain.ESGSubmission, error)
	Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (*domain.ESGSubmission, error)
	GetByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.ESGSubmission, error)
	ListPending(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.ESGSubmission, error)
	ListByCompany(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.ESGSubmission, error)
	ListHistory(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.ESGSubmission, error)
	ChartData(ctx context.Context, user *domain.User, companyID uuid.UUID) (*domain.ChartData, error)
}

type service struct {
	repo   repository.ESGSubmissionRepository
	engine *workflow.Engine[*domain.ESGSubmission]
}

func NewService(repo repository.ESGSubmissionRepository, engine *workflow.Engine[*domain.ESGSubmission]) Service {
	return &service{
		repo:   repo,
		engine: engine,
	}
}

func (s *service) Submit(ctx context.Context, submitter *domain.User, input domain.CreateESGSubmissionInput) (*domain.ESGSubmission, error) {
	for _, score := range []*float64{input.EnvironmentalScore, input.SocialScore, input.GovernanceScore} {
		if score != nil && (*score < 0 || *score > 100) {
			return nil, domain.Validationf("scores must be between 0 and 100")
		}
	}

	submission := &domain.ESGSubmission{
		SubmissionType:       input.SubmissionType,
		EnvironmentalScore:   input.EnvironmentalScore,
		SocialScore:          input.SocialScore,
		GovernanceScore:      input.GovernanceScore,
		EnvironmentalMetrics: input.EnvironmentalMetrics,
		SocialMetrics:        input.SocialMetrics,
		GovernanceMetrics:    input.GovernanceMetrics,
	}

	if err := s.engine.Submit(ctx, submitter, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

func (s *service) Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (*domain.ESGSubmission, error) {
	return s.engine.Review(ctx, reviewer, id, input)
}

func (s *service) GetByID(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.ESGSubmission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeCompanyAccess(user, submission.CompanyID); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *service) ListPending(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	if err := authorizeReviewQueue(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndStatus(ctx, companyID, domain.StatusPending)
}

func (s *service) ListHistory(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompanyAndStatus(ctx, companyID, domain.StatusApproved, domain.StatusDenied)
}

func (s *service) ListByCompany(ctx context.Context, user *domain.User, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompany(ctx, companyID)
}

// ChartData flattens the approved submissions into parallel score series,
// oldest first, labelled by submission month.
func (s *service) ChartData(ctx context.Context, user *domain.User, companyID uuid.UUID) (*domain.ChartData, error) {
	if err := authorizeCompanyAccess(user, companyID); err != nil {
		return nil, err
	}

	approved, err := s.repo.ListApprovedByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	chart := &domain.ChartData{
		Labels:              make([]string, 0, len(approved)),
		EnvironmentalScores: make([]*float64, 0, len(approved)),
		SocialScores:        make([]*float64, 0, len(approved)),
		GovernanceScores:    make([]*float64, 0, len(approved)),
	}

	for i := range approved {
		sub := &approved[i]
		chart.Labels = append(chart.Labels, sub.CreatedAt.Format("Jan 2006"))
		chart.EnvironmentalScores = append(chart.EnvironmentalScores, sub.EnvironmentalScore)
		chart.SocialScores = append(chart.SocialScores, sub.SocialScore)
		chart.GovernanceScores = append(chart.GovernanceScores, sub.GovernanceScore)
	}

	return chart, nil
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
