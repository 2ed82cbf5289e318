package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type GovernanceMetricRepository interface {
	Create(ctx context.Context, metric *domain.GovernanceMetric) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GovernanceMetric, error)
	UpdateReview(ctx context.Context, metric *domain.GovernanceMetric) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.GovernanceMetric, error)
	ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.GovernanceMetric, error)
	ListByCompanyAndSubtype(ctx context.Context, companyID uuid.UUID, subtype domain.GovernanceSubtype) ([]domain.GovernanceMetric, error)
	CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error)
}

type governanceMetricRepository struct {
	db *sqlx.DB
}

func NewGovernanceMetricRepository(db *sqlx.DB) GovernanceMetricRepository {
	return &governanceMetricRepository{db: db}
}

func (r *governanceMetricRepository) Create(ctx context.Context, metric *domain.GovernanceMetric) error {
	query := `
		INSERT INTO governance_metrics (
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

func (r *governanceMetricRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GovernanceMetric, error) {
	var metric domain.GovernanceMetric
	query := `SELECT * FROM governance_metrics WHERE id = $1`

	err := r.db.GetContext(ctx, &metric, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

func (r *governanceMetricRepository) UpdateReview(ctx context.Context, metric *domain.GovernanceMetric) error {
	return updateReview(ctx, r.db, "governance_metrics", &metric.SubmissionBase)
}

func (r *governanceMetricRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.GovernanceMetric, error) {
	var metrics []domain.GovernanceMetric
	query := `SELECT * FROM governance_metrics WHERE company_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &metrics, query, companyID)
	return metrics, err
}

func (r *governanceMetricRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.GovernanceMetric, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM governance_metrics WHERE company_id = ? AND status IN (?) ORDER BY created_at DESC`,
		companyID, statuses)
	if err != nil {
		return nil, err
	}

	var metrics []domain.GovernanceMetric
	err = r.db.SelectContext(ctx, &metrics, r.db.Rebind(query), args...)
	return metrics, err
}

func (r *governanceMetricRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM governance_metrics WHERE company_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, companyID, status)
	return count, err
}

func (r *governanceMetricRepository) ListByCompanyAndSubtype(ctx context.Context, companyID uuid.UUID, subtype domain.GovernanceSubtype) ([]domain.GovernanceMetric, error) {
	var metrics []domain.GovernanceMetric
	query := `SELECT * FROM governance_metrics WHERE company_id = $1 AND subtype = $2 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &metrics, query, companyID, subtype)
	return metrics, err
}
