package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User             UserRepository
	Company          CompanyRepository
	Emission         EmissionRepository
	SocialMetric     SocialMetricRepository
	GovernanceMetric GovernanceMetricRepository
	ESGSubmission    ESGSubmissionRepository
	Notification     NotificationRepository
	MetricCategory   MetricCategoryRepository
	AuditLog         AuditLogRepository
	Session          SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:             NewUserRepository(db),
		Company:          NewCompanyRepository(db),
		Emission:         NewEmissionRepository(db),
		SocialMetric:     NewSocialMetricRepository(db),
		GovernanceMetric: NewGovernanceMetricRepository(db),
		ESGSubmission:    NewESGSubmissionRepository(db),
		Notification:     NewNotificationRepository(db),
		MetricCategory:   NewMetricCategoryRepository(db),
		AuditLog:         NewAuditLogRepository(db),
		Session:          NewSessionRepository(db),
	}
}
