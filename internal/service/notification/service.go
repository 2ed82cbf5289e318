package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/email"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	NotifySubmissionCreated(ctx context.Context, rec domain.Reviewable) error
	NotifySubmissionReviewed(ctx context.Context, rec domain.Reviewable, reviewer *domain.User) error
	NotifyImportCompleted(ctx context.Context, submitter *domain.User, count int) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, int64(total)), nil
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id, userID)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.Delete(ctx, id, userID)
}

// NotifySubmissionCreated fans a new-submission notification out to every
// manager of the owning company except the submitter. A company with no
// managers simply gets no notifications.
func (s *service) NotifySubmissionCreated(ctx context.Context, rec domain.Reviewable) error {
	submitterName := "A representative"
	var submitterID uuid.UUID
	if submittedBy := rec.GetSubmittedBy(); submittedBy != nil {
		submitterID = *submittedBy
		if submitter, err := s.userRepo.GetByID(ctx, submitterID); err == nil && submitter != nil {
			submitterName = submitter.Name
		}
	}

	managers, err := s.userRepo.ListByCompanyAndRole(ctx, rec.GetCompanyID(), domain.RoleManager)
	if err != nil {
		return fmt.Errorf("failed to list managers: %w", err)
	}

	submissionID := rec.GetID()
	message := fmt.Sprintf("%s submitted %s for review", submitterName, rec.Summary())

	for _, manager := range managers {
		if manager.ID == submitterID {
			continue
		}

		notif := &domain.Notification{
			ID:           uuid.New(),
			UserID:       manager.ID,
			Type:         domain.SubmissionNotifType(rec.Kind(), false),
			Title:        "New Submission",
			Message:      message,
			SubmissionID: &submissionID,
		}

		if err := s.notifRepo.Create(ctx, notif); err != nil {
			log.Printf("Failed to create notification for user %s: %v", manager.ID, err)
			continue
		}

		if s.emailSvc != nil && manager.Email != "" {
			go func(toEmail, recipientName string) {
				ctx := context.Background()
				_ = s.emailSvc.SendSubmissionReceivedEmail(ctx, toEmail, recipientName, submitterName, rec.Summary())
			}(manager.Email, manager.Name)
		}
	}

	return nil
}

// NotifySubmissionReviewed tells the submitter the outcome of the review.
// Nothing happens when the submitter is unknown or reviewed their own record.
func (s *service) NotifySubmissionReviewed(ctx context.Context, rec domain.Reviewable, reviewer *domain.User) error {
	submittedBy := rec.GetSubmittedBy()
	if submittedBy == nil || *submittedBy == reviewer.ID {
		return nil
	}

	submitter, err := s.userRepo.GetByID(ctx, *submittedBy)
	if err != nil {
		return fmt.Errorf("failed to get submitter: %w", err)
	}
	if submitter == nil {
		return nil
	}

	status := rec.GetStatus()
	verb := "approved"
	if status == domain.StatusDenied {
		verb = "denied"
	}

	reviewedAt := time.Now()
	if at := rec.GetReviewedAt(); at != nil {
		reviewedAt = *at
	}

	message := fmt.Sprintf("%s %s your %s on %s", reviewer.Name, verb, rec.Summary(), reviewedAt.Format("Jan 2, 2006 15:04"))
	if comments := rec.GetReviewComments(); comments != nil && *comments != "" {
		message += fmt.Sprintf(": %q", *comments)
	}

	submissionID := rec.GetID()
	notif := &domain.Notification{
		ID:           uuid.New(),
		UserID:       submitter.ID,
		Type:         domain.SubmissionNotifType(rec.Kind(), true),
		Title:        fmt.Sprintf("Submission %s", status),
		Message:      message,
		SubmissionID: &submissionID,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if s.emailSvc != nil && submitter.Email != "" {
		go func(toEmail, recipientName, reviewerName string) {
			ctx := context.Background()
			_ = s.emailSvc.SendSubmissionReviewedEmail(ctx, toEmail, recipientName, rec.Summary(), string(status), reviewerName)
		}(submitter.Email, submitter.Name, reviewer.Name)
	}

	return nil
}

// NotifyImportCompleted tells the company's managers that a CSV import
// finished and how many rows made it in.
func (s *service) NotifyImportCompleted(ctx context.Context, submitter *domain.User, count int) error {
	if submitter.CompanyID == nil {
		return nil
	}

	managers, err := s.userRepo.ListByCompanyAndRole(ctx, *submitter.CompanyID, domain.RoleManager)
	if err != nil {
		return fmt.Errorf("failed to list managers: %w", err)
	}

	message := fmt.Sprintf("%s imported %d emission records for review", submitter.Name, count)

	for _, manager := range managers {
		if manager.ID == submitter.ID {
			continue
		}

		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  manager.ID,
			Type:    domain.NotifGHGSubmission,
			Title:   "Emission Data Imported",
			Message: message,
		}

		if err := s.notifRepo.Create(ctx, notif); err != nil {
			log.Printf("Failed to create notification for user %s: %v", manager.ID, err)
		}
	}

	return nil
}
