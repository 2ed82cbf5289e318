package category

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
)

type Service interface {
	ListByType(ctx context.Context, metricType domain.MetricType) ([]domain.MetricCategory, error)
	List(ctx context.Context) ([]domain.MetricCategory, error)
	GetByCodeAndType(ctx context.Context, code string, metricType domain.MetricType) (*domain.MetricCategory, error)
	Seed(ctx context.Context) error
}

type service struct {
	categoryRepo repository.MetricCategoryRepository
	redis        *redis.Client
}

func NewService(categoryRepo repository.MetricCategoryRepository, redisClient *redis.Client) Service {
	return &service{
		categoryRepo: categoryRepo,
		redis:        redisClient,
	}
}

func (s *service) ListByType(ctx context.Context, metricType domain.MetricType) ([]domain.MetricCategory, error) {
	if !metricType.IsValid() {
		return nil, domain.Validationf("unknown metric type %q", metricType)
	}

	cacheKey := "categories:" + string(metricType)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var categories []domain.MetricCategory
			if json.Unmarshal([]byte(cached), &categories) == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.categoryRepo.ListByType(ctx, metricType)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, 5*time.Minute).Err()
		}
	}

	return categories, nil
}

func (s *service) List(ctx context.Context) ([]domain.MetricCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *service) GetByCodeAndType(ctx context.Context, code string, metricType domain.MetricType) (*domain.MetricCategory, error) {
	return s.categoryRepo.GetByCodeAndType(ctx, code, metricType)
}

type seedEntry struct {
	metricType  domain.MetricType
	code        string
	name        string
	description string
}

var defaultCategories = []seedEntry{
	{domain.MetricEnvironment, "GHG_EMISSIONS", "GHG Emissions", "Greenhouse gas emissions across scopes 1, 2 and 3"},
	{domain.MetricEnvironment, "ENERGY_MANAGEMENT", "Energy Management", "Energy consumption and renewable energy share"},
	{domain.MetricEnvironment, "WATER_MANAGEMENT", "Water Management", "Water withdrawal, consumption and discharge"},
	{domain.MetricEnvironment, "WASTE_MANAGEMENT", "Waste Management", "Waste generation, recycling and disposal"},
	{domain.MetricSocial, "EMPLOYEE_WELLBEING", "Employee Wellbeing", "Health, safety and working conditions"},
	{domain.MetricSocial, "COMMUNITY_ENGAGEMENT", "Community Engagement", "Community investment and local impact"},
	{domain.MetricSocial, "SUPPLY_CHAIN_RESPONSIBILITY", "Supply Chain Responsibility", "Supplier standards and labor practices"},
	{domain.MetricSocial, "DIVERSITY_INCLUSION", "Diversity and Inclusion", "Workforce diversity and equal opportunity"},
	{domain.MetricGovernance, "CORPORATE_GOVERNANCE", "Corporate Governance", "Board composition and shareholder rights"},
	{domain.MetricGovernance, "BUSINESS_ETHICS", "Business Ethics", "Anti-corruption, compliance and conduct"},
	{domain.MetricGovernance, "RISK_MANAGEMENT", "Risk Management", "Risk identification and internal controls"},
}

// Seed inserts the default taxonomy. The repository insert is a no-op on
// conflict, so running this on every startup is safe.
func (s *service) Seed(ctx context.Context) error {
	for i, entry := range defaultCategories {
		category := &domain.MetricCategory{
			ID:           uuid.New(),
			MetricType:   entry.metricType,
			CategoryCode: entry.code,
			Name:         entry.name,
			Description:  entry.description,
			DisplayOrder: i + 1,
		}

		if err := s.categoryRepo.Create(ctx, category); err != nil {
			log.Printf("Failed to seed category %s/%s: %v", entry.metricType, entry.code, err)
			return err
		}
	}
	return nil
}
