package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.AuditLog, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AuditLog), args.Int(1), args.Error(2)
}

func (m *AuditLogRepository) ListByEntity(ctx context.Context, entityType string, params domain.PaginationParams) ([]domain.AuditLog, int, error) {
	args := m.Called(ctx, entityType, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AuditLog), args.Int(1), args.Error(2)
}
