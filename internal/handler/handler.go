package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Company      *CompanyHandler
	Category     *CategoryHandler
	Emission     *EmissionHandler
	Social       *SocialHandler
	Governance   *GovernanceHandler
	ESG          *ESGHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Company:      NewCompanyHandler(services.Company, services.User),
		Category:     NewCategoryHandler(services.Category),
		Emission:     NewEmissionHandler(services.Emission, services.Ingest),
		Social:       NewSocialHandler(services.Social),
		Governance:   NewGovernanceHandler(services.Governance),
		ESG:          NewESGHandler(services.ESG),
		Notification: NewNotificationHandler(services.Notification),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Audit:        NewAuditHandler(services.Audit),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}

// companyIDFor resolves the company a request targets: the companyId route
// param when present, otherwise the caller's own company.
func companyIDFor(c *fiber.Ctx, user *domain.User) (uuid.UUID, error) {
	if raw := c.Params("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, middleware.BadRequest("Invalid companyId")
		}
		return id, nil
	}
	if user.CompanyID == nil {
		return uuid.Nil, middleware.BadRequest("No company in scope")
	}
	return *user.CompanyID, nil
}

func paginationFromQuery(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err == nil {
		params.Validate()
	}
	return params
}
