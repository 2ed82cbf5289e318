package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type ESGSubmissionRepository interface {
	Create(ctx context.Context, submission *domain.ESGSubmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ESGSubmission, error)
	UpdateReview(ctx context.Context, submission *domain.ESGSubmission) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ESGSubmission, error)
	ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.ESGSubmission, error)
	ListApprovedByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ESGSubmission, error)
	CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error)
}

type esgSubmissionRepository struct {
	db *sqlx.DB
}

func NewESGSubmissionRepository(db *sqlx.DB) ESGSubmissionRepository {
	return &esgSubmissionRepository{db: db}
}

func (r *esgSubmissionRepository) Create(ctx context.Context, submission *domain.ESGSubmission) error {
	query := `
		INSERT INTO esg_submissions (
			id, company_id, submitted_by, status,
			submission_type, environmental_score, social_score, governance_score,
			environmental_metrics, social_metrics, governance_metrics
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		submission.ID, submission.CompanyID, submission.SubmittedBy, submission.Status,
		submission.SubmissionType, submission.EnvironmentalScore, submission.SocialScore,
		submission.GovernanceScore, submission.EnvironmentalMetrics, submission.SocialMetrics,
		submission.GovernanceMetrics,
	).Scan(&submission.CreatedAt, &submission.UpdatedAt)
}

func (r *esgSubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ESGSubmission, error) {
	var submission domain.ESGSubmission
	query := `SELECT * FROM esg_submissions WHERE id = $1`

	err := r.db.GetContext(ctx, &submission, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *esgSubmissionRepository) UpdateReview(ctx context.Context, submission *domain.ESGSubmission) error {
	return updateReview(ctx, r.db, "esg_submissions", &submission.SubmissionBase)
}

func (r *esgSubmissionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	var submissions []domain.ESGSubmission
	query := `SELECT * FROM esg_submissions WHERE company_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &submissions, query, companyID)
	return submissions, err
}

func (r *esgSubmissionRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.ESGSubmission, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM esg_submissions WHERE company_id = ? AND status IN (?) ORDER BY created_at DESC`,
		companyID, statuses)
	if err != nil {
		return nil, err
	}

	var submissions []domain.ESGSubmission
	err = r.db.SelectContext(ctx, &submissions, r.db.Rebind(query), args...)
	return submissions, err
}

func (r *esgSubmissionRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM esg_submissions WHERE company_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, companyID, status)
	return count, err
}

// ListApprovedByCompany returns approved submissions oldest first, the order
// the score chart consumes them in.
func (r *esgSubmissionRepository) ListApprovedByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	var submissions []domain.ESGSubmission
	query := `
		SELECT * FROM esg_submissions
		WHERE company_id = $1 AND status = 'APPROVED'
		ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &submissions, query, companyID)
	return submissions, err
}
