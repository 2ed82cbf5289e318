package domain

import "time"

type GovernanceSubtype string

const (
	GovernanceCorporate GovernanceSubtype = "CORPORATE"
	GovernanceEthics    GovernanceSubtype = "ETHICS"
	GovernanceRisk      GovernanceSubtype = "RISK"
)

func (s GovernanceSubtype) IsValid() bool {
	switch s {
	case GovernanceCorporate, GovernanceEthics, GovernanceRisk:
		return true
	default:
		return false
	}
}

type GovernanceMetric struct {
	SubmissionBase

	Subtype          GovernanceSubtype `json:"subtype" db:"subtype"`
	Category         string            `json:"category" db:"category"`
	Metric           string            `json:"metric" db:"metric"`
	Value            float64           `json:"value" db:"value"`
	Unit             string            `json:"unit" db:"unit"`
	StartDate        *time.Time        `json:"start_date" db:"start_date"`
	EndDate          *time.Time        `json:"end_date" db:"end_date"`
	Description      *string           `json:"description,omitempty" db:"description"`
	PolicyExists     *bool             `json:"policy_exists,omitempty" db:"policy_exists"`
	PolicyURL        *string           `json:"policy_url,omitempty" db:"policy_url"`
	ReviewFrequency  *string           `json:"review_frequency,omitempty" db:"review_frequency"`
	ResponsibleParty *string           `json:"responsible_party,omitempty" db:"responsible_party"`
	DocumentationURL *string           `json:"documentation_url,omitempty" db:"documentation_url"`
}

type CreateGovernanceMetricInput struct {
	Subtype          GovernanceSubtype `json:"subtype" validate:"required"`
	Category         string            `json:"category" validate:"required"`
	Metric           string            `json:"metric" validate:"required"`
	Value            float64           `json:"value"`
	Unit             string            `json:"unit" validate:"required"`
	StartDate        *time.Time        `json:"start_date"`
	EndDate          *time.Time        `json:"end_date"`
	Description      *string           `json:"description,omitempty"`
	PolicyExists     *bool             `json:"policy_exists,omitempty"`
	PolicyURL        *string           `json:"policy_url,omitempty"`
	ReviewFrequency  *string           `json:"review_frequency,omitempty"`
	ResponsibleParty *string           `json:"responsible_party,omitempty"`
	DocumentationURL *string           `json:"documentation_url,omitempty"`
}

func (m *GovernanceMetric) Kind() SubmissionKind { return KindGovernanceMetric }

func (m *GovernanceMetric) Summary() string {
	return "Governance Metric (" + m.Metric + ")"
}
