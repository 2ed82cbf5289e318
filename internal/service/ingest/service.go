package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/category"
	"esg-platform/internal/service/notification"
)

// Required CSV headers, matched case-insensitively.
var requiredHeaders = []string{"start date", "end date", "category", "quantity", "unit"}

// Date layouts tried in order for the Start Date and End Date cells.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"02-01-2006",
}

type Service interface {
	ImportCSV(ctx context.Context, submitter *domain.User, scope domain.EmissionScope, filename string, data []byte) (int, error)
}

type service struct {
	emissionRepo repository.EmissionRepository
	notifSvc     notification.Service
	storage      *minio.Client
	bucket       string
}

func NewService(emissionRepo repository.EmissionRepository, notifSvc notification.Service, storage *minio.Client, bucket string) Service {
	return &service{
		emissionRepo: emissionRepo,
		notifSvc:     notifSvc,
		storage:      storage,
		bucket:       bucket,
	}
}

// ImportCSV archives the raw file, parses it row by row and bulk-inserts the
// rows that parse as PENDING emission submissions. A bad row is skipped, not
// fatal; the returned count is the number of rows that made it in.
func (s *service) ImportCSV(ctx context.Context, submitter *domain.User, scope domain.EmissionScope, filename string, data []byte) (int, error) {
	if !scope.IsValid() {
		return 0, domain.Validationf("unknown emission scope %q", scope)
	}
	if submitter.CompanyID == nil {
		return 0, domain.Validationf("submitter has no company")
	}
	if len(data) == 0 {
		return 0, domain.Validationf("file is empty")
	}

	s.archive(ctx, *submitter.CompanyID, filename, data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	// A ragged row must only lose itself, never the rows after it.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, domain.Validationf("failed to read CSV header: %v", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return 0, err
	}

	var emissions []domain.GHGEmission
	now := time.Now()
	rowNum := 1

	for {
		rowNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping CSV row %d: %v", rowNum, err)
			continue
		}

		emission, err := s.parseRow(columns, row, scope, now)
		if err != nil {
			log.Printf("Skipping CSV row %d: %v", rowNum, err)
			continue
		}

		emission.BeginSubmission(*submitter.CompanyID, submitter.ID)
		emissions = append(emissions, *emission)
	}

	if len(emissions) == 0 {
		return 0, nil
	}

	if err := s.emissionRepo.BulkInsert(ctx, emissions); err != nil {
		return 0, err
	}

	if s.notifSvc != nil {
		count := len(emissions)
		go func() {
			_ = s.notifSvc.NotifyImportCompleted(context.Background(), submitter, count)
		}()
	}

	return len(emissions), nil
}

// archive stores the raw upload before parsing so a bad import can always be
// replayed. Archive failures are logged, not fatal.
func (s *service) archive(ctx context.Context, companyID uuid.UUID, filename string, data []byte) {
	if s.storage == nil {
		return
	}

	objectName := fmt.Sprintf("imports/%s/%s.csv", companyID, uuid.New())
	_, err := s.storage.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/csv",
		UserMetadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		log.Printf("Failed to archive import %s: %v", filename, err)
	}
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range requiredHeaders {
		if _, ok := columns[required]; !ok {
			return nil, domain.Validationf("missing required column %q", required)
		}
	}
	return columns, nil
}

func (s *service) parseRow(columns map[string]int, row []string, scope domain.EmissionScope, now time.Time) (*domain.GHGEmission, error) {
	startDate, err := parseDate(cell(columns, row, "start date"))
	if err != nil {
		return nil, fmt.Errorf("bad start date: %w", err)
	}

	endDate, err := parseDate(cell(columns, row, "end date"))
	if err != nil {
		return nil, fmt.Errorf("bad end date: %w", err)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date precedes start date")
	}

	quantity := parseNumeric(cell(columns, row, "quantity"))

	unit := cell(columns, row, "unit")
	if unit == "" {
		unit = "unknown"
	}

	emission := &domain.GHGEmission{
		Scope:          scope,
		Category:       category.Normalize(scope, cell(columns, row, "category")),
		TimeFrame:      domain.TimeFrameCustom,
		StartDate:      &startDate,
		EndDate:        &endDate,
		Quantity:       quantity,
		Unit:           unit,
		SubmissionDate: &now,
	}

	if v := cell(columns, row, "source"); v != "" {
		emission.Source = &v
	}
	if v := cell(columns, row, "activity"); v != "" {
		emission.Activity = &v
	}
	if v := cell(columns, row, "calculation method"); v != "" {
		emission.CalculationMethod = &v
	}
	if _, ok := columns["emission factor"]; ok {
		factor := parseNumeric(cell(columns, row, "emission factor"))
		emission.EmissionFactor = &factor
	}
	if v := cell(columns, row, "emission factor unit"); v != "" {
		emission.EmissionFactorUnit = &v
	} else if emission.EmissionFactor != nil {
		unit := "kg CO2e"
		emission.EmissionFactorUnit = &unit
	}
	if v := cell(columns, row, "notes"); v != "" {
		emission.Notes = &v
	}

	return emission, nil
}

func cell(columns map[string]int, row []string, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// parseNumeric strips everything but digits, dots and minus signs before
// parsing, so "1,234.5 kg" reads as 1234.5. A cell that still does not parse
// reads as zero rather than losing the row.
func parseNumeric(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	parsed, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0.0
	}
	return parsed
}
