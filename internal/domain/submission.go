package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "PENDING"
	StatusApproved SubmissionStatus = "APPROVED"
	StatusDenied   SubmissionStatus = "DENIED"
)

func (s SubmissionStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusDenied
}

// Terminal reports whether the status permits no further transition.
func (s SubmissionStatus) Terminal() bool {
	return s.IsDecision()
}

type SubmissionKind string

const (
	KindGHGEmission      SubmissionKind = "GHG_EMISSION"
	KindSocialMetric     SubmissionKind = "SOCIAL_METRIC"
	KindGovernanceMetric SubmissionKind = "GOVERNANCE_METRIC"
	KindESGSubmission    SubmissionKind = "ESG_SUBMISSION"
)

// Reviewable is the capability set the workflow engine needs from a submission
// record. The four concrete kinds satisfy it by embedding SubmissionBase and
// adding Kind and Summary.
type Reviewable interface {
	GetID() uuid.UUID
	GetCompanyID() uuid.UUID
	GetSubmittedBy() *uuid.UUID
	GetStatus() SubmissionStatus
	GetReviewedAt() *time.Time
	GetReviewComments() *string
	BeginSubmission(companyID, submitterID uuid.UUID)
	ApplyReview(status SubmissionStatus, reviewerID uuid.UUID, at time.Time, comments *string)
	Kind() SubmissionKind
	Summary() string
}

// SubmissionBase carries the review-workflow state shared by every submission
// kind. Column names line up across the four tables so repositories can share
// query fragments.
type SubmissionBase struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	CompanyID      uuid.UUID        `json:"company_id" db:"company_id"`
	SubmittedBy    *uuid.UUID       `json:"submitted_by,omitempty" db:"submitted_by"`
	Status         SubmissionStatus `json:"status" db:"status"`
	ReviewedBy     *uuid.UUID       `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ReviewComments *string          `json:"review_comments,omitempty" db:"review_comments"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

func (b *SubmissionBase) GetID() uuid.UUID            { return b.ID }
func (b *SubmissionBase) GetCompanyID() uuid.UUID     { return b.CompanyID }
func (b *SubmissionBase) GetSubmittedBy() *uuid.UUID  { return b.SubmittedBy }
func (b *SubmissionBase) GetStatus() SubmissionStatus { return b.Status }
func (b *SubmissionBase) GetReviewedAt() *time.Time   { return b.ReviewedAt }
func (b *SubmissionBase) GetReviewComments() *string  { return b.ReviewComments }

func (b *SubmissionBase) BeginSubmission(companyID, submitterID uuid.UUID) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CompanyID = companyID
	submitter := submitterID
	b.SubmittedBy = &submitter
	b.Status = StatusPending
	b.ReviewedBy = nil
	b.ReviewedAt = nil
	b.ReviewComments = nil
}

func (b *SubmissionBase) ApplyReview(status SubmissionStatus, reviewerID uuid.UUID, at time.Time, comments *string) {
	b.Status = status
	reviewer := reviewerID
	b.ReviewedBy = &reviewer
	reviewedAt := at
	b.ReviewedAt = &reviewedAt
	b.ReviewComments = comments
}

type ReviewInput struct {
	Status   SubmissionStatus `json:"status" validate:"required,oneof=APPROVED DENIED"`
	Comments *string          `json:"comments,omitempty" validate:"omitempty,max=1000"`
}
