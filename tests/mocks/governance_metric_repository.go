package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type GovernanceMetricRepository struct {
	mock.Mock
}

func (m *GovernanceMetricRepository) Create(ctx context.Context, metric *domain.GovernanceMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *GovernanceMetricRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GovernanceMetric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GovernanceMetric), args.Error(1)
}

func (m *GovernanceMetricRepository) UpdateReview(ctx context.Context, metric *domain.GovernanceMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *GovernanceMetricRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.GovernanceMetric, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GovernanceMetric), args.Error(1)
}

func (m *GovernanceMetricRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.GovernanceMetric, error) {
	callArgs := make([]interface{}, 0, len(statuses)+2)
	callArgs = append(callArgs, ctx, companyID)
	for _, status := range statuses {
		callArgs = append(callArgs, status)
	}

	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GovernanceMetric), args.Error(1)
}

func (m *GovernanceMetricRepository) ListByCompanyAndSubtype(ctx context.Context, companyID uuid.UUID, subtype domain.GovernanceSubtype) ([]domain.GovernanceMetric, error) {
	args := m.Called(ctx, companyID, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GovernanceMetric), args.Error(1)
}

func (m *GovernanceMetricRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}
