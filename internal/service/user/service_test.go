package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
	"esg-platform/internal/service/user"
	"esg-platform/tests/mocks"
)

func TestAssignRole(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Success - Promote To Manager", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		companyRepo := new(mocks.CompanyRepository)
		sessionRepo := new(mocks.SessionRepository)
		service := user.NewService(userRepo, companyRepo, sessionRepo)

		target := &domain.User{
			ID:        uuid.New(),
			Role:      domain.RoleRepresentative,
			CompanyID: &companyID,
		}

		userRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		companyRepo.On("GetByID", ctx, companyID).Return(&domain.Company{ID: companyID}, nil).Once()
		userRepo.On("AssignRole", ctx, target.ID, domain.RoleManager, &companyID).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, target.ID).Return(nil).Once()

		updated, err := service.AssignRole(ctx, domain.AssignRoleInput{
			UserID: target.ID,
			Role:   "manager",
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleManager, updated.Role)
		assert.Equal(t, &companyID, updated.CompanyID)
		userRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), new(mocks.SessionRepository))

		_, err := service.AssignRole(ctx, domain.AssignRoleInput{UserID: uuid.New(), Role: "wizard"}, nil)

		assert.ErrorIs(t, err, user.ErrInvalidRole)
		userRepo.AssertNotCalled(t, "AssignRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Target Not Found", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), new(mocks.SessionRepository))

		id := uuid.New()
		userRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		_, err := service.AssignRole(ctx, domain.AssignRoleInput{UserID: id, Role: "manager"}, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Manager Without Company", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), new(mocks.SessionRepository))

		target := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
		userRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		_, err := service.AssignRole(ctx, domain.AssignRoleInput{UserID: target.ID, Role: "manager"}, nil)

		assert.ErrorIs(t, err, user.ErrCompanyRequired)
	})

	t.Run("Admin Keeps No Company", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), sessionRepo)

		target := &domain.User{ID: uuid.New(), Role: domain.RoleManager, CompanyID: &companyID}
		userRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		userRepo.On("AssignRole", ctx, target.ID, domain.RoleAdmin, &companyID).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, target.ID).Return(nil).Once()

		updated, err := service.AssignRole(ctx, domain.AssignRoleInput{UserID: target.ID, Role: "admin"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, updated.Role)
	})
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Revokes Sessions", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), sessionRepo)

		target := &domain.User{ID: uuid.New(), Role: domain.RoleRepresentative}
		userRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		userRepo.On("Delete", ctx, target.ID).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, target.ID).Return(nil).Once()

		err := service.Delete(ctx, target.ID)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), new(mocks.SessionRepository))

		id := uuid.New()
		userRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		err := service.Delete(ctx, id)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserGetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Hydrates Company", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		companyRepo := new(mocks.CompanyRepository)
		service := user.NewService(userRepo, companyRepo, new(mocks.SessionRepository))

		target := &domain.User{ID: uuid.New(), CompanyID: &companyID}
		company := &domain.Company{ID: companyID, Name: "Acme Industries"}

		userRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		companyRepo.On("GetByID", ctx, companyID).Return(company, nil).Once()

		result, err := service.GetByID(ctx, target.ID)

		assert.NoError(t, err)
		assert.Equal(t, company, result.Company)
	})

	t.Run("Not Found", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		service := user.NewService(userRepo, new(mocks.CompanyRepository), new(mocks.SessionRepository))

		id := uuid.New()
		userRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		_, err := service.GetByID(ctx, id)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
