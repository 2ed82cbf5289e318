package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type MetricCategoryRepository struct {
	mock.Mock
}

func (m *MetricCategoryRepository) Create(ctx context.Context, category *domain.MetricCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MetricCategoryRepository) GetByCodeAndType(ctx context.Context, code string, metricType domain.MetricType) (*domain.MetricCategory, error) {
	args := m.Called(ctx, code, metricType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetricCategory), args.Error(1)
}

func (m *MetricCategoryRepository) ListByType(ctx context.Context, metricType domain.MetricType) ([]domain.MetricCategory, error) {
	args := m.Called(ctx, metricType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetricCategory), args.Error(1)
}

func (m *MetricCategoryRepository) List(ctx context.Context) ([]domain.MetricCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetricCategory), args.Error(1)
}
