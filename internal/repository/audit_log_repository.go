package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"esg-platform/internal/domain"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.AuditLog, int, error)
	ListByEntity(ctx context.Context, entityType string, params domain.PaginationParams) ([]domain.AuditLog, int, error)
}

type auditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (audit_id, user_id, action, entity_type, entity_id, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		log.ID, log.UserID, log.Action, log.EntityType, log.EntityID, log.OldValue, log.NewValue,
	).Scan(&log.CreatedAt)
}

func (r *auditLogRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.AuditLog, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM audit_logs`); err != nil {
		return nil, 0, err
	}

	var logs []domain.AuditLog
	query := `
		SELECT * FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &logs, query, params.PageSize, params.Offset())
	return logs, total, err
}

func (r *auditLogRepository) ListByEntity(ctx context.Context, entityType string, params domain.PaginationParams) ([]domain.AuditLog, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM audit_logs WHERE entity_type = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, entityType); err != nil {
		return nil, 0, err
	}

	var logs []domain.AuditLog
	query := `
		SELECT * FROM audit_logs
		WHERE entity_type = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &logs, query, entityType, params.PageSize, params.Offset())
	return logs, total, err
}
