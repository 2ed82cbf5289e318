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

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role domain.UserRole, companyID *uuid.UUID) error
	ListByCompanyAndRole(ctx context.Context, companyID uuid.UUID, role domain.UserRole) ([]domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, email, password_hash, name, role, company_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.CompanyID, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE user_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

func (r *userRepository) AssignRole(ctx context.Context, userID uuid.UUID, role domain.UserRole, companyID *uuid.UUID) error {
	query := `
		UPDATE users
		SET role = $2, company_id = $3, updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	var updatedAt time.Time
	err := r.db.QueryRowxContext(ctx, query, userID, role, companyID).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *userRepository) ListByCompanyAndRole(ctx context.Context, companyID uuid.UUID, role domain.UserRole) ([]domain.User, error) {
	var users []domain.User
	query := `
		SELECT * FROM users
		WHERE company_id = $1 AND role = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &users, query, companyID, role)
	return users, err
}

func (r *userRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	query := `SELECT * FROM users WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &users, query, companyID)
	return users, err
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	query := `SELECT * FROM users WHERE deleted_at IS NULL ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &users, query)
	return users, err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET deleted_at = NOW() WHERE user_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
