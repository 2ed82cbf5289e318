package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
)

var (
	ErrInvalidRole     = errors.New("unknown role")
	ErrCompanyRequired = errors.New("role requires a company")
	ErrCompanyNotFound = errors.New("company not found")
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	AssignRole(ctx context.Context, input domain.AssignRoleInput, companyID *uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	sessionRepo repository.SessionRepository
}

func NewService(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, sessionRepo repository.SessionRepository) Service {
	return &service{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if user.CompanyID != nil {
		if company, err := s.companyRepo.GetByID(ctx, *user.CompanyID); err == nil {
			user.Company = company
		}
	}

	return user, nil
}

func (s *service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	return s.userRepo.ListByCompany(ctx, companyID)
}

// AssignRole changes a user's role and company binding. Changing roles
// invalidates the user's refresh sessions, since issued access tokens carry
// the old role until they expire.
func (s *service) AssignRole(ctx context.Context, input domain.AssignRoleInput, companyID *uuid.UUID) (*domain.User, error) {
	role := domain.NormalizeRole(input.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	target, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}

	if companyID == nil {
		companyID = target.CompanyID
	}

	if role.RequiresCompany() {
		if companyID == nil {
			return nil, ErrCompanyRequired
		}
		company, err := s.companyRepo.GetByID(ctx, *companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrCompanyNotFound
		}
	}

	if err := s.userRepo.AssignRole(ctx, input.UserID, role, companyID); err != nil {
		return nil, err
	}

	_ = s.sessionRepo.RevokeAllForUser(ctx, input.UserID)

	target.Role = role
	target.CompanyID = companyID
	return target, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.sessionRepo.RevokeAllForUser(ctx, id)
}
