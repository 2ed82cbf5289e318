package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
)

type Stats struct {
	PendingEmissions   int64 `json:"pending_emissions"`
	ApprovedEmissions  int64 `json:"approved_emissions"`
	DeniedEmissions    int64 `json:"denied_emissions"`
	PendingSocial      int64 `json:"pending_social"`
	PendingGovernance  int64 `json:"pending_governance"`
	PendingESG         int64 `json:"pending_esg"`
	TotalPendingReview int64 `json:"total_pending_review"`
}

type Service interface {
	GetStats(ctx context.Context, user *domain.User, companyID uuid.UUID) (*Stats, error)
}

type service struct {
	emissionRepo   repository.EmissionRepository
	socialRepo     repository.SocialMetricRepository
	governanceRepo repository.GovernanceMetricRepository
	esgRepo        repository.ESGSubmissionRepository
	redis          *redis.Client
}

func NewService(
	emissionRepo repository.EmissionRepository,
	socialRepo repository.SocialMetricRepository,
	governanceRepo repository.GovernanceMetricRepository,
	esgRepo repository.ESGSubmissionRepository,
	redisClient *redis.Client,
) Service {
	return &service{
		emissionRepo:   emissionRepo,
		socialRepo:     socialRepo,
		governanceRepo: governanceRepo,
		esgRepo:        esgRepo,
		redis:          redisClient,
	}
}

func (s *service) GetStats(ctx context.Context, user *domain.User, companyID uuid.UUID) (*Stats, error) {
	if user.Role != domain.RoleAdmin {
		if user.CompanyID == nil || *user.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	cacheKey := "dashboard:stats:" + companyID.String()

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	pendingEmissions, err := s.emissionRepo.CountByCompanyAndStatus(ctx, companyID, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	approvedEmissions, err := s.emissionRepo.CountByCompanyAndStatus(ctx, companyID, domain.StatusApproved)
	if err != nil {
		return nil, err
	}

	deniedEmissions, err := s.emissionRepo.CountByCompanyAndStatus(ctx, companyID, domain.StatusDenied)
	if err != nil {
		return nil, err
	}

	pendingSocial, err := s.socialRepo.CountByCompanyAndStatus(ctx, companyID, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	pendingGovernance, err := s.governanceRepo.CountByCompanyAndStatus(ctx, companyID, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	pendingESG, err := s.esgRepo.CountByCompanyAndStatus(ctx, companyID, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		PendingEmissions:   pendingEmissions,
		ApprovedEmissions:  approvedEmissions,
		DeniedEmissions:    deniedEmissions,
		PendingSocial:      pendingSocial,
		PendingGovernance:  pendingGovernance,
		PendingESG:         pendingESG,
		TotalPendingReview: pendingEmissions + pendingSocial + pendingGovernance + pendingESG,
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}
