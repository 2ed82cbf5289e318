package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID        `json:"id" db:"notification_id"`
	UserID       uuid.UUID        `json:"user_id" db:"user_id"`
	Type         NotificationType `json:"type" db:"type"`
	Title        string           `json:"title" db:"title"`
	Message      string           `json:"message" db:"message"`
	SubmissionID *uuid.UUID       `json:"submission_id,omitempty" db:"submission_id"`
	IsRead       bool             `json:"is_read" db:"is_read"`
	ReadAt       *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifGHGSubmission          NotificationType = "GHG_SUBMISSION"
	NotifGHGStatusUpdate        NotificationType = "GHG_STATUS_UPDATE"
	NotifSocialSubmission       NotificationType = "SOCIAL_SUBMISSION"
	NotifSocialStatusUpdate     NotificationType = "SOCIAL_STATUS_UPDATE"
	NotifGovernanceSubmission   NotificationType = "GOVERNANCE_SUBMISSION"
	NotifGovernanceStatusUpdate NotificationType = "GOVERNANCE_STATUS_UPDATE"
	NotifESGSubmission          NotificationType = "ESG_SUBMISSION"
	NotifESGStatusUpdate        NotificationType = "ESG_STATUS_UPDATE"
)

// SubmissionNotifType maps a submission kind to the pair of notification type
// tags used for its created/reviewed events.
func SubmissionNotifType(kind SubmissionKind, reviewed bool) NotificationType {
	switch kind {
	case KindGHGEmission:
		if reviewed {
			return NotifGHGStatusUpdate
		}
		return NotifGHGSubmission
	case KindSocialMetric:
		if reviewed {
			return NotifSocialStatusUpdate
		}
		return NotifSocialSubmission
	case KindGovernanceMetric:
		if reviewed {
			return NotifGovernanceStatusUpdate
		}
		return NotifGovernanceSubmission
	default:
		if reviewed {
			return NotifESGStatusUpdate
		}
		return NotifESGSubmission
	}
}
