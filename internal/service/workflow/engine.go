package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
)

var (
	ErrNotPending      = domain.ErrAlreadyReviewed
	ErrInvalidDecision = errors.New("review status must be APPROVED or DENIED")
)

// Store is the persistence surface the engine needs from a submission kind.
// The per-kind repositories satisfy it directly.
type Store[T domain.Reviewable] interface {
	Create(ctx context.Context, rec T) error
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	UpdateReview(ctx context.Context, rec T) error
}

// Notifier receives workflow events after they are committed. Implementations
// must tolerate being called from a detached goroutine.
type Notifier interface {
	NotifySubmissionCreated(ctx context.Context, rec domain.Reviewable) error
	NotifySubmissionReviewed(ctx context.Context, rec domain.Reviewable, reviewer *domain.User) error
}

// Engine runs the shared submit/review lifecycle for one submission kind. The
// kind services own validation of their payload fields; the engine owns
// status transitions, authorization and event fan-out.
type Engine[T domain.Reviewable] struct {
	store     Store[T]
	notifier  Notifier
	auditRepo repository.AuditLogRepository
}

func NewEngine[T domain.Reviewable](store Store[T], notifier Notifier, auditRepo repository.AuditLogRepository) *Engine[T] {
	return &Engine[T]{
		store:     store,
		notifier:  notifier,
		auditRepo: auditRepo,
	}
}

// Submit persists rec as a new PENDING submission for the submitter's company
// and notifies that company's managers.
func (e *Engine[T]) Submit(ctx context.Context, submitter *domain.User, rec T) error {
	if submitter.CompanyID == nil {
		return domain.Validationf("submitter has no company")
	}

	rec.BeginSubmission(*submitter.CompanyID, submitter.ID)

	if err := e.store.Create(ctx, rec); err != nil {
		return err
	}

	e.logAudit(ctx, submitter.ID, "SUBMIT_"+string(rec.Kind()), rec, nil)

	if e.notifier != nil {
		go func() {
			_ = e.notifier.NotifySubmissionCreated(context.Background(), rec)
		}()
	}

	return nil
}

// Review applies an APPROVED or DENIED decision to a pending submission.
// Only a manager of the owning company may decide, and a record that has
// already left PENDING stays as it is.
func (e *Engine[T]) Review(ctx context.Context, reviewer *domain.User, id uuid.UUID, input domain.ReviewInput) (T, error) {
	var zero T

	if !input.Status.IsDecision() {
		return zero, ErrInvalidDecision
	}

	rec, err := e.store.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := e.authorizeReview(reviewer, rec); err != nil {
		return zero, err
	}

	if rec.GetStatus().Terminal() {
		return zero, ErrNotPending
	}

	rec.ApplyReview(input.Status, reviewer.ID, time.Now(), input.Comments)

	// The repository re-checks PENDING inside the UPDATE, so a concurrent
	// decision loses here rather than overwriting.
	if err := e.store.UpdateReview(ctx, rec); err != nil {
		return zero, err
	}

	e.logAudit(ctx, reviewer.ID, "REVIEW_"+string(rec.Kind()), rec, &input.Status)

	if e.notifier != nil {
		go func() {
			_ = e.notifier.NotifySubmissionReviewed(context.Background(), rec, reviewer)
		}()
	}

	return rec, nil
}

func (e *Engine[T]) authorizeReview(reviewer *domain.User, rec domain.Reviewable) error {
	if reviewer.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	if reviewer.CompanyID == nil || *reviewer.CompanyID != rec.GetCompanyID() {
		return domain.ErrForbidden
	}
	return nil
}

func (e *Engine[T]) logAudit(ctx context.Context, actorID uuid.UUID, action string, rec domain.Reviewable, decision *domain.SubmissionStatus) {
	if e.auditRepo == nil {
		return
	}

	var oldValue json.RawMessage
	newValue := json.RawMessage(`{"status":"` + string(domain.StatusPending) + `"}`)
	if decision != nil {
		oldValue = json.RawMessage(`{"status":"` + string(domain.StatusPending) + `"}`)
		newValue = json.RawMessage(`{"status":"` + string(*decision) + `"}`)
	}

	audit := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     actorID,
		Action:     action,
		EntityType: string(rec.Kind()),
		EntityID:   rec.GetID(),
		OldValue:   oldValue,
		NewValue:   newValue,
		CreatedAt:  time.Now(),
	}

	_ = e.auditRepo.Create(ctx, audit)
}
