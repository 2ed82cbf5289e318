package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"esg-platform/internal/config"
	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/audit"
	"esg-platform/internal/service/auth"
	"esg-platform/internal/service/category"
	"esg-platform/internal/service/company"
	"esg-platform/internal/service/dashboard"
	"esg-platform/internal/service/email"
	"esg-platform/internal/service/emission"
	"esg-platform/internal/service/esg"
	"esg-platform/internal/service/governance"
	"esg-platform/internal/service/ingest"
	"esg-platform/internal/service/notification"
	"esg-platform/internal/service/social"
	"esg-platform/internal/service/user"
	"esg-platform/internal/service/workflow"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Company      company.Service
	Category     category.Service
	Emission     emission.Service
	Social       social.Service
	Governance   governance.Service
	ESG          esg.Service
	Ingest       ingest.Service
	Notification notification.Service
	Email        email.Service
	Dashboard    dashboard.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, cfg *config.Config, redisClient *redis.Client, minioClient *minio.Client) *Services {
	emailSvc := email.NewService(cfg)
	notifSvc := notification.NewService(repos.Notification, repos.User, emailSvc)

	emissionEngine := workflow.NewEngine[*domain.GHGEmission](repos.Emission, notifSvc, repos.AuditLog)
	socialEngine := workflow.NewEngine[*domain.SocialMetric](repos.SocialMetric, notifSvc, repos.AuditLog)
	governanceEngine := workflow.NewEngine[*domain.GovernanceMetric](repos.GovernanceMetric, notifSvc, repos.AuditLog)
	esgEngine := workflow.NewEngine[*domain.ESGSubmission](repos.ESGSubmission, notifSvc, repos.AuditLog)

	return &Services{
		Auth:         auth.NewService(repos.User, repos.Session, repos.Company, emailSvc, cfg),
		User:         user.NewService(repos.User, repos.Company, repos.Session),
		Company:      company.NewService(repos.Company),
		Category:     category.NewService(repos.MetricCategory, redisClient),
		Emission:     emission.NewService(repos.Emission, emissionEngine),
		Social:       social.NewService(repos.SocialMetric, socialEngine),
		Governance:   governance.NewService(repos.GovernanceMetric, governanceEngine),
		ESG:          esg.NewService(repos.ESGSubmission, esgEngine),
		Ingest:       ingest.NewService(repos.Emission, notifSvc, minioClient, cfg.MinIOBucket),
		Notification: notifSvc,
		Email:        emailSvc,
		Dashboard:    dashboard.NewService(repos.Emission, repos.SocialMetric, repos.GovernanceMetric, repos.ESGSubmission, redisClient),
		Audit:        audit.NewService(repos.AuditLog),
	}
}
