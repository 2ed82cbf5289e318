package audit

import (
	"context"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
)

type Service interface {
	GetRecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error)
	ListByEntity(ctx context.Context, entityType string, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{
		auditRepo: auditRepo,
	}
}

func (s *service) GetRecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	params := domain.PaginationParams{
		Page:     1,
		PageSize: limit,
	}
	params.Validate()

	logs, _, err := s.auditRepo.List(ctx, params)
	return logs, err
}

func (s *service) ListByEntity(ctx context.Context, entityType string, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.ListByEntity(ctx, entityType, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}

	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, int64(total)), nil
}
