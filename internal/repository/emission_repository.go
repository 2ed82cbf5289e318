package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type EmissionRepository interface {
	Create(ctx context.Context, emission *domain.GHGEmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GHGEmission, error)
	UpdateReview(ctx context.Context, emission *domain.GHGEmission) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.GHGEmission, error)
	ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.GHGEmission, error)
	ListByCompanyAndScope(ctx context.Context, companyID uuid.UUID, scope domain.EmissionScope) ([]domain.GHGEmission, error)
	ListByCompanyAndDateRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]domain.GHGEmission, error)
	BulkInsert(ctx context.Context, emissions []domain.GHGEmission) error
	CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error)
}

type emissionRepository struct {
	db *sqlx.DB
}

func NewEmissionRepository(db *sqlx.DB) EmissionRepository {
	return &emissionRepository{db: db}
}

const emissionInsert = `
	INSERT INTO ghg_emissions (
		id, company_id, submitted_by, status,
		scope, category, time_frame, start_date, end_date,
		quantity, unit, source, activity, calculation_method,
		emission_factor, emission_factor_unit, submission_date, notes
	) VALUES (
		:id, :company_id, :submitted_by, :status,
		:scope, :category, :time_frame, :start_date, :end_date,
		:quantity, :unit, :source, :activity, :calculation_method,
		:emission_factor, :emission_factor_unit, :submission_date, :notes
	)`

func (r *emissionRepository) Create(ctx context.Context, emission *domain.GHGEmission) error {
	query := `
		INSERT INTO ghg_emissions (
			id, company_id, submitted_by, status,
			scope, category, time_frame, start_date, end_date,
			quantity, unit, source, activity, calculation_method,
			emission_factor, emission_factor_unit, submission_date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		emission.ID, emission.CompanyID, emission.SubmittedBy, emission.Status,
		emission.Scope, emission.Category, emission.TimeFrame, emission.StartDate, emission.EndDate,
		emission.Quantity, emission.Unit, emission.Source, emission.Activity, emission.CalculationMethod,
		emission.EmissionFactor, emission.EmissionFactorUnit, emission.SubmissionDate, emission.Notes,
	).Scan(&emission.CreatedAt, &emission.UpdatedAt)
}

func (r *emissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GHGEmission, error) {
	var emission domain.GHGEmission
	query := `SELECT * FROM ghg_emissions WHERE id = $1`

	err := r.db.GetContext(ctx, &emission, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emission, nil
}

func (r *emissionRepository) UpdateReview(ctx context.Context, emission *domain.GHGEmission) error {
	return updateReview(ctx, r.db, "ghg_emissions", &emission.SubmissionBase)
}

func (r *emissionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.GHGEmission, error) {
	var emissions []domain.GHGEmission
	query := `SELECT * FROM ghg_emissions WHERE company_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &emissions, query, companyID)
	return emissions, err
}

func (r *emissionRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.GHGEmission, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM ghg_emissions WHERE company_id = ? AND status IN (?) ORDER BY created_at DESC`,
		companyID, statuses)
	if err != nil {
		return nil, err
	}

	var emissions []domain.GHGEmission
	err = r.db.SelectContext(ctx, &emissions, r.db.Rebind(query), args...)
	return emissions, err
}

func (r *emissionRepository) ListByCompanyAndScope(ctx context.Context, companyID uuid.UUID, scope domain.EmissionScope) ([]domain.GHGEmission, error) {
	var emissions []domain.GHGEmission
	query := `SELECT * FROM ghg_emissions WHERE company_id = $1 AND scope = $2 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &emissions, query, companyID, scope)
	return emissions, err
}

func (r *emissionRepository) ListByCompanyAndDateRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]domain.GHGEmission, error) {
	var emissions []domain.GHGEmission
	query := `
		SELECT * FROM ghg_emissions
		WHERE company_id = $1 AND start_date >= $2 AND end_date <= $3
		ORDER BY start_date ASC`

	err := r.db.SelectContext(ctx, &emissions, query, companyID, start, end)
	return emissions, err
}

func (r *emissionRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM ghg_emissions WHERE company_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, companyID, status)
	return count, err
}

// BulkInsert writes all rows from one CSV import in a single statement so a
// partial import never reaches the database.
func (r *emissionRepository) BulkInsert(ctx context.Context, emissions []domain.GHGEmission) error {
	if len(emissions) == 0 {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx, emissionInsert, emissions)
	return err
}
