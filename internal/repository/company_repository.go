package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
}

type companyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (company_id, name, industry, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		company.ID, company.Name, company.Industry, company.Status,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	query := `SELECT * FROM companies WHERE company_id = $1`

	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	var company domain.Company
	query := `SELECT * FROM companies WHERE name = $1`

	err := r.db.GetContext(ctx, &company, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	query := `SELECT * FROM companies ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &companies, query)
	return companies, err
}
