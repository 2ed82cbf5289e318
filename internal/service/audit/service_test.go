package audit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"esg-platform/internal/domain"
	"esg-platform/internal/service/audit"
	"esg-platform/tests/mocks"
)

func TestGetRecentActivities(t *testing.T) {
	ctx := context.Background()

	auditRepo := new(mocks.AuditLogRepository)
	service := audit.NewService(auditRepo)

	logs := []domain.AuditLog{
		{ID: uuid.New(), Action: "REVIEW_GHG_EMISSION"},
		{ID: uuid.New(), Action: "SUBMIT_GHG_EMISSION"},
	}
	auditRepo.On("List", ctx, domain.PaginationParams{Page: 1, PageSize: 10}).Return(logs, 42, nil).Once()

	result, err := service.GetRecentActivities(ctx, 10)

	assert.NoError(t, err)
	assert.Equal(t, logs, result)
	auditRepo.AssertExpectations(t)
}

func TestAuditListByEntity(t *testing.T) {
	ctx := context.Background()

	auditRepo := new(mocks.AuditLogRepository)
	service := audit.NewService(auditRepo)

	params := domain.PaginationParams{Page: 2, PageSize: 20}
	logs := []domain.AuditLog{{ID: uuid.New(), EntityType: "GHG_EMISSION"}}
	auditRepo.On("ListByEntity", ctx, "GHG_EMISSION", params).Return(logs, 25, nil).Once()

	result, err := service.ListByEntity(ctx, "GHG_EMISSION", params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(25), result.TotalItems)
	assert.True(t, result.HasPrev)
	assert.False(t, result.HasNext)
	auditRepo.AssertExpectations(t)
}
