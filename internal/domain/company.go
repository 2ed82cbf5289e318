package domain

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `json:"id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	Industry  string    `json:"industry" db:"industry"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateCompanyInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Industry string `json:"industry" validate:"required"`
	Status   string `json:"status" validate:"omitempty"`
}
