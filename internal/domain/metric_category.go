package domain

import (
	"time"

	"github.com/google/uuid"
)

type MetricType string

const (
	MetricEnvironment MetricType = "ENVIRONMENT"
	MetricSocial      MetricType = "SOCIAL"
	MetricGovernance  MetricType = "GOVERNANCE"
)

func (t MetricType) IsValid() bool {
	switch t {
	case MetricEnvironment, MetricSocial, MetricGovernance:
		return true
	default:
		return false
	}
}

// MetricCategory is read-mostly taxonomy reference data, seeded at startup.
type MetricCategory struct {
	ID           uuid.UUID  `json:"id" db:"category_id"`
	MetricType   MetricType `json:"metric_type" db:"metric_type"`
	CategoryCode string     `json:"category_code" db:"category_code"`
	Name         string     `json:"name" db:"name"`
	Description  string     `json:"description" db:"description"`
	DisplayOrder int        `json:"display_order" db:"display_order"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
