package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type SocialMetricRepository interface {
	Create(ctx context.Context, metric *domain.SocialMetric) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SocialMetric, error)
	UpdateReview(ctx context.Context, metric *domain.SocialMetric) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.SocialMetric, error)
	ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.SocialMetric, error)
	ListByCompanyAndSubtype(ctx context.Context, companyID uuid.UUID, subtype domain.SocialSubtype) ([]domain.SocialMetric, error)
	CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error)
}

type socialMetricRepository struct {
	db *sqlx.DB
}

func NewSocialMetricRepository(db *sqlx.DB) SocialMetricRepository {
	return &socialMetricRepository{db: db}
}

func (r *socialMetricRepository) Create(ctx context.Context, metric *domain.SocialMetric) error {
	query := `
		INSERT INTO social_metrics (
			id, company_id, submitted_by, status,
			subtype, category, metric, value, unit, start_date, end_date,
			description, policy_exists, policy_url, review_frequency,
			responsible_party, documentation_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		metric.ID, metric.CompanyID, metric.SubmittedBy, metric.Status,
		metric.Subtype, metric.Category, metric.Metric, metric.Value, metric.Unit,
		metric.StartDate, metric.EndDate, metric.Description, metric.PolicyExists,
		metric.PolicyURL, metric.ReviewFrequency, metric.ResponsibleParty, metric.DocumentationURL,
	).Scan(&metric.CreatedAt, &metric.UpdatedAt)
}

func (r *socialMetricRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SocialMetric, error) {
	var metric domain.SocialMetric
	query := `SELECT * FROM social_metrics WHERE id = $1`

	err := r.db.GetContext(ctx, &metric, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

func (r *socialMetricRepository) UpdateReview(ctx context.Context, metric *domain.SocialMetric) error {
	return updateReview(ctx, r.db, "social_metrics", &metric.SubmissionBase)
}

func (r *socialMetricRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.SocialMetric, error) {
	var metrics []domain.SocialMetric
	query := `SELECT * FROM social_metrics WHERE company_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &metrics, query, companyID)
	return metrics, err
}

func (r *socialMetricRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.SocialMetric, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM social_metrics WHERE company_id = ? AND status IN (?) ORDER BY created_at DESC`,
		companyID, statuses)
	if err != nil {
		return nil, err
	}

	var metrics []domain.SocialMetric
	err = r.db.SelectContext(ctx, &metrics, r.db.Rebind(query), args...)
	return metrics, err
}

func (r *socialMetricRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM social_metrics WHERE company_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, companyID, status)
	return count, err
}

func (r *socialMetricRepository) ListByCompanyAndSubtype(ctx context.Context, companyID uuid.UUID, subtype domain.SocialSubtype) ([]domain.SocialMetric, error) {
	var metrics []domain.SocialMetric
	query := `SELECT * FROM social_metrics WHERE company_id = $1 AND subtype = $2 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &metrics, query, companyID, subtype)
	return metrics, err
}
