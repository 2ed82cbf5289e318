package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"esg-platform/internal/domain"
)

func TestSubmissionLifecycle(t *testing.T) {
	companyID := uuid.New()
	submitterID := uuid.New()

	t.Run("BeginSubmission Resets Review State", func(t *testing.T) {
		reviewer := uuid.New()
		reviewedAt := time.Now()
		comments := "old"

		base := domain.SubmissionBase{
			Status:         domain.StatusApproved,
			ReviewedBy:     &reviewer,
			ReviewedAt:     &reviewedAt,
			ReviewComments: &comments,
		}

		base.BeginSubmission(companyID, submitterID)

		assert.NotEqual(t, uuid.Nil, base.ID)
		assert.Equal(t, companyID, base.CompanyID)
		assert.Equal(t, submitterID, *base.SubmittedBy)
		assert.Equal(t, domain.StatusPending, base.Status)
		assert.Nil(t, base.ReviewedBy)
		assert.Nil(t, base.ReviewedAt)
		assert.Nil(t, base.ReviewComments)
	})

	t.Run("BeginSubmission Keeps An Existing ID", func(t *testing.T) {
		id := uuid.New()
		base := domain.SubmissionBase{ID: id}

		base.BeginSubmission(companyID, submitterID)

		assert.Equal(t, id, base.ID)
	})

	t.Run("ApplyReview", func(t *testing.T) {
		base := domain.SubmissionBase{Status: domain.StatusPending}
		reviewerID := uuid.New()
		at := time.Now()
		comments := "checked against invoices"

		base.ApplyReview(domain.StatusDenied, reviewerID, at, &comments)

		assert.Equal(t, domain.StatusDenied, base.Status)
		assert.Equal(t, reviewerID, *base.ReviewedBy)
		assert.Equal(t, at, *base.ReviewedAt)
		assert.Equal(t, &comments, base.ReviewComments)
	})
}

func TestSubmissionStatus(t *testing.T) {
	assert.False(t, domain.StatusPending.IsDecision())
	assert.True(t, domain.StatusApproved.IsDecision())
	assert.True(t, domain.StatusDenied.IsDecision())

	assert.False(t, domain.StatusPending.Terminal())
	assert.True(t, domain.StatusApproved.Terminal())
	assert.True(t, domain.StatusDenied.Terminal())
}

func TestUserRole(t *testing.T) {
	t.Run("NormalizeRole", func(t *testing.T) {
		assert.Equal(t, domain.RoleManager, domain.NormalizeRole(" Manager "))
		assert.Equal(t, domain.RoleAdmin, domain.NormalizeRole("ADMIN"))
		assert.False(t, domain.NormalizeRole("wizard").IsValid())
	})

	t.Run("RequiresCompany", func(t *testing.T) {
		assert.False(t, domain.RoleAdmin.RequiresCompany())
		assert.True(t, domain.RoleManager.RequiresCompany())
		assert.True(t, domain.RoleRepresentative.RequiresCompany())
	})

	t.Run("HasRole Hierarchy", func(t *testing.T) {
		admin := &domain.User{Role: domain.RoleAdmin}
		manager := &domain.User{Role: domain.RoleManager}
		rep := &domain.User{Role: domain.RoleRepresentative}

		assert.True(t, admin.HasRole(domain.RoleManager))
		assert.True(t, manager.HasRole(domain.RoleRepresentative))
		assert.False(t, rep.HasRole(domain.RoleManager))
		assert.False(t, manager.HasRole(domain.RoleAdmin))
	})
}

func TestEmissionScopeDisplay(t *testing.T) {
	assert.Equal(t, "Scope 1", domain.ScopeOne.Display())
	assert.Equal(t, "Scope 3", domain.ScopeThree.Display())
	assert.Equal(t, "Solvent", domain.ScopeSolvent.Display())
	assert.Equal(t, "Sink", domain.ScopeSink.Display())
}
