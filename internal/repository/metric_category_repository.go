package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type MetricCategoryRepository interface {
	Create(ctx context.Context, category *domain.MetricCategory) error
	GetByCodeAndType(ctx context.Context, code string, metricType domain.MetricType) (*domain.MetricCategory, error)
	ListByType(ctx context.Context, metricType domain.MetricType) ([]domain.MetricCategory, error)
	List(ctx context.Context) ([]domain.MetricCategory, error)
}

type metricCategoryRepository struct {
	db *sqlx.DB
}

func NewMetricCategoryRepository(db *sqlx.DB) MetricCategoryRepository {
	return &metricCategoryRepository{db: db}
}

// Create is idempotent on (metric_type, category_code) so seeding can run on
// every startup.
func (r *metricCategoryRepository) Create(ctx context.Context, category *domain.MetricCategory) error {
	query := `
		INSERT INTO metric_categories (category_id, metric_type, category_code, name, description, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (metric_type, category_code) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.MetricType, category.CategoryCode,
		category.Name, category.Description, category.DisplayOrder)
	return err
}

func (r *metricCategoryRepository) GetByCodeAndType(ctx context.Context, code string, metricType domain.MetricType) (*domain.MetricCategory, error) {
	var category domain.MetricCategory
	query := `SELECT * FROM metric_categories WHERE category_code = $1 AND metric_type = $2`

	err := r.db.GetContext(ctx, &category, query, code, metricType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *metricCategoryRepository) ListByType(ctx context.Context, metricType domain.MetricType) ([]domain.MetricCategory, error) {
	var categories []domain.MetricCategory
	query := `SELECT * FROM metric_categories WHERE metric_type = $1 ORDER BY display_order ASC`

	err := r.db.SelectContext(ctx, &categories, query, metricType)
	return categories, err
}

func (r *metricCategoryRepository) List(ctx context.Context) ([]domain.MetricCategory, error) {
	var categories []domain.MetricCategory
	query := `SELECT * FROM metric_categories ORDER BY metric_type ASC, display_order ASC`

	err := r.db.SelectContext(ctx, &categories, query)
	return categories, err
}
