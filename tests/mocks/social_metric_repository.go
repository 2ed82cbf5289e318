package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type SocialMetricRepository struct {
	mock.Mock
}

func (m *SocialMetricRepository) Create(ctx context.Context, metric *domain.SocialMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *SocialMetricRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SocialMetric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialMetric), args.Error(1)
}

func (m *SocialMetricRepository) UpdateReview(ctx context.Context, metric *domain.SocialMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *SocialMetricRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.SocialMetric, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialMetric), args.Error(1)
}

func (m *SocialMetricRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.SocialMetric, error) {
	callArgs := make([]interface{}, 0, len(statuses)+2)
	callArgs = append(callArgs, ctx, companyID)
	for _, status := range statuses {
		callArgs = append(callArgs, status)
	}

	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialMetric), args.Error(1)
}

func (m *SocialMetricRepository) ListByCompanyAndSubtype(ctx context.Context, companyID uuid.UUID, subtype domain.SocialSubtype) ([]domain.SocialMetric, error) {
	args := m.Called(ctx, companyID, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialMetric), args.Error(1)
}

func (m *SocialMetricRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}
