package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type ESGSubmissionRepository struct {
	mock.Mock
}

func (m *ESGSubmissionRepository) Create(ctx context.Context, submission *domain.ESGSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *ESGSubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ESGSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ESGSubmission), args.Error(1)
}

func (m *ESGSubmissionRepository) UpdateReview(ctx context.Context, submission *domain.ESGSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *ESGSubmissionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ESGSubmission), args.Error(1)
}

func (m *ESGSubmissionRepository) ListByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, statuses ...domain.SubmissionStatus) ([]domain.ESGSubmission, error) {
	callArgs := make([]interface{}, 0, len(statuses)+2)
	callArgs = append(callArgs, ctx, companyID)
	for _, status := range statuses {
		callArgs = append(callArgs, status)
	}

	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ESGSubmission), args.Error(1)
}

func (m *ESGSubmissionRepository) ListApprovedByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ESGSubmission, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ESGSubmission), args.Error(1)
}

func (m *ESGSubmissionRepository) CountByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.SubmissionStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}
