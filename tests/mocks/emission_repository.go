package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type EmissionRepository struct {
	mock.Mock
}

func (m *EmissionRepository) Create(ctx context.Context, emission *domain.GHGEmission) error {
	args := m.Called(ctx, emission)
	return args.Error(0)
}

func (m *EmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GHGEmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GHGEmission), args.Error(1)
}

func (m *EmissionRepository) UpdateReview(ctx context.Context, emission *domain.GHGEmission) error {
	args := m.Called(ctx, emission)
	return args.Error(0)
}

func (m *EmissionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.GHGEmission, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GHGEmission), args.Error(1)
}

func (m *EmissionRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.GHGEmission, error) {
	callArgs := make([]interface{}, 0, len(statuses)+2)
	callArgs = append(callArgs, ctx, companyID)
	for _, status := range statuses {
		callArgs = append(callArgs, status)
	}

	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GHGEmission), args.Error(1)
}

func (m *EmissionRepository) ListByCompanyAndScope(ctx context.Context, companyID uuid.UUID, scope domain.EmissionScope) ([]domain.GHGEmission, error) {
	args := m.Called(ctx, companyID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GHGEmission), args.Error(1)
}

func (m *EmissionRepository) ListByCompanyAndDateRange(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]domain.GHGEmission, error) {
	args := m.Called(ctx, companyID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GHGEmission), args.Error(1)
}

func (m *EmissionRepository) BulkInsert(ctx context.Context, emissions []domain.GHGEmission) error {
	args := m.Called(ctx, emissions)
	return args.Error(0)
}

func (m *EmissionRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}
