package handler

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/emission"
	"esg-platform/internal/service/ingest"
)

type EmissionHandler struct {
	emissionService emission.Service
	ingestService   ingest.Service
}

func NewEmissionHandler(emissionService emission.Service, ingestService ingest.Service) *EmissionHandler {
	return &EmissionHandler{
		emissionService: emissionService,
		ingestService:   ingestService,
	}
}

func (h *EmissionHandler) Submit(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateEmissionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.emissionService.Submit(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *EmissionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.emissionService.GetByID(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EmissionHandler) Review(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.emissionService.Review(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EmissionHandler) ListByCompany(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.emissionService.ListByCompany(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *EmissionHandler) ListPending(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.emissionService.ListPending(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *EmissionHandler) ListHistory(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.emissionService.ListHistory(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *EmissionHandler) ListByScope(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	scope := domain.EmissionScope(strings.ToUpper(c.Params("scope")))

	results, err := h.emissionService.ListByScope(c.Context(), user, companyID, scope)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *EmissionHandler) ListByDateRange(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return middleware.BadRequest("Invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return middleware.BadRequest("Invalid end date, expected YYYY-MM-DD")
	}

	results, err := h.emissionService.ListByDateRange(c.Context(), user, companyID, start, end)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// UploadCSV accepts a multipart CSV upload and imports its rows as pending
// emission submissions for the caller's company.
func (h *EmissionHandler) UploadCSV(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	scope := domain.EmissionScope(strings.ToUpper(c.FormValue("scope")))
	if !scope.IsValid() {
		return middleware.BadRequest("Invalid or missing scope")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return middleware.BadRequest("File must be a CSV")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return middleware.BadRequest("Failed to read uploaded file")
	}

	count, err := h.ingestService.ImportCSV(c.Context(), user, scope, fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"imported": count,
	})
}
