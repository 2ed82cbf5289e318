package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"esg-platform/internal/config"
	"esg-platform/internal/domain"
	"esg-platform/internal/handler"
	"esg-platform/internal/middleware"
	"esg-platform/internal/repository"
	"esg-platform/internal/service"
	"esg-platform/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (CSV import archiving will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg, redis, minioClient)
	handlers := handler.NewHandlers(services)

	if err := services.Category.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed metric categories: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/logout", h.Auth.Logout)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/me", h.Auth.Me)

	users := protected.Group("/users")
	users.Get("/", middleware.RequireRole(domain.RoleAdmin), h.User.GetAll)
	users.Get("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.GetByID)
	users.Post("/assign-role", middleware.RequireRole(domain.RoleAdmin), h.User.AssignRole)
	users.Delete("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	companies := protected.Group("/companies")
	companies.Post("/", middleware.RequireRole(domain.RoleAdmin), h.Company.Create)
	companies.Get("/", h.Company.List)
	companies.Get("/:id", h.Company.GetByID)
	companies.Get("/:id/users", h.Company.ListUsers)

	categories := protected.Group("/categories")
	categories.Get("/", h.Category.List)
	categories.Get("/:code", h.Category.GetByCode)

	emissions := protected.Group("/emissions")
	emissions.Post("/", h.Emission.Submit)
	emissions.Post("/upload", h.Emission.UploadCSV)
	emissions.Get("/company/:companyId", h.Emission.ListByCompany)
	emissions.Get("/company/:companyId/pending", middleware.RequireExactRole(domain.RoleManager), h.Emission.ListPending)
	emissions.Get("/company/:companyId/history", h.Emission.ListHistory)
	emissions.Get("/company/:companyId/scope/:scope", h.Emission.ListByScope)
	emissions.Get("/company/:companyId/range", h.Emission.ListByDateRange)
	emissions.Get("/:id", h.Emission.GetByID)
	emissions.Put("/:id/review", middleware.RequireExactRole(domain.RoleManager), h.Emission.Review)

	socials := protected.Group("/social-metrics")
	socials.Post("/", h.Social.Submit)
	socials.Get("/company/:companyId", h.Social.ListByCompany)
	socials.Get("/company/:companyId/pending", middleware.RequireExactRole(domain.RoleManager), h.Social.ListPending)
	socials.Get("/company/:companyId/history", h.Social.ListHistory)
	socials.Get("/company/:companyId/subtype/:subtype", h.Social.ListBySubtype)
	socials.Get("/:id", h.Social.GetByID)
	socials.Put("/:id/review", middleware.RequireExactRole(domain.RoleManager), h.Social.Review)

	governances := protected.Group("/governance-metrics")
	governances.Post("/", h.Governance.Submit)
	governances.Get("/company/:companyId", h.Governance.ListByCompany)
	governances.Get("/company/:companyId/pending", middleware.RequireExactRole(domain.RoleManager), h.Governance.ListPending)
	governances.Get("/company/:companyId/history", h.Governance.ListHistory)
	governances.Get("/company/:companyId/subtype/:subtype", h.Governance.ListBySubtype)
	governances.Get("/:id", h.Governance.GetByID)
	governances.Put("/:id/review", middleware.RequireExactRole(domain.RoleManager), h.Governance.Review)

	esgGroup := protected.Group("/esg-submissions")
	esgGroup.Post("/", h.ESG.Submit)
	esgGroup.Get("/company/:companyId", h.ESG.ListByCompany)
	esgGroup.Get("/company/:companyId/pending", middleware.RequireExactRole(domain.RoleManager), h.ESG.ListPending)
	esgGroup.Get("/company/:companyId/history", h.ESG.ListHistory)
	esgGroup.Get("/company/:companyId/chart", h.ESG.ChartData)
	esgGroup.Get("/:id", h.ESG.GetByID)
	esgGroup.Put("/:id/review", middleware.RequireExactRole(domain.RoleManager), h.ESG.Review)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Delete("/:id", h.Notification.Delete)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/company/:companyId", h.Dashboard.GetStats)

	auditLogs := protected.Group("/audit-logs", middleware.RequireRole(domain.RoleAdmin))
	auditLogs.Get("/", h.Audit.Recent)
	auditLogs.Get("/entity/:entityType", h.Audit.ListByEntity)
}
