package domain

import "time"

type SocialSubtype string

const (
	SocialEmployee    SocialSubtype = "EMPLOYEE"
	SocialCommunity   SocialSubtype = "COMMUNITY"
	SocialSupplyChain SocialSubtype = "SUPPLY_CHAIN"
)

func (s SocialSubtype) IsValid() bool {
	switch s {
	case SocialEmployee, SocialCommunity, SocialSupplyChain:
		return true
	default:
		return false
	}
}

type SocialMetric struct {
	SubmissionBase

	Subtype          SocialSubtype `json:"subtype" db:"subtype"`
	Category         string        `json:"category" db:"category"`
	Metric           string        `json:"metric" db:"metric"`
	Value            float64       `json:"value" db:"value"`
	Unit             string        `json:"unit" db:"unit"`
	StartDate        *time.Time    `json:"start_date" db:"start_date"`
	EndDate          *time.Time    `json:"end_date" db:"end_date"`
	Description      *string       `json:"description,omitempty" db:"description"`
	PolicyExists     *bool         `json:"policy_exists,omitempty" db:"policy_exists"`
	PolicyURL        *string       `json:"policy_url,omitempty" db:"policy_url"`
	ReviewFrequency  *string       `json:"review_frequency,omitempty" db:"review_frequency"`
	ResponsibleParty *string       `json:"responsible_party,omitempty" db:"responsible_party"`
	DocumentationURL *string       `json:"documentation_url,omitempty" db:"documentation_url"`
}

type CreateSocialMetricInput struct {
	Subtype          SocialSubtype `json:"subtype" validate:"required"`
	Category         string        `json:"category" validate:"required"`
	Metric           string        `json:"metric" validate:"required"`
	Value            float64       `json:"value"`
	Unit             string        `json:"unit" validate:"required"`
	StartDate        *time.Time    `json:"start_date"`
	EndDate          *time.Time    `json:"end_date"`
	Description      *string       `json:"description,omitempty"`
	PolicyExists     *bool         `json:"policy_exists,omitempty"`
	PolicyURL        *string       `json:"policy_url,omitempty"`
	ReviewFrequency  *string       `json:"review_frequency,omitempty"`
	ResponsibleParty *string       `json:"responsible_party,omitempty"`
	DocumentationURL *string       `json:"documentation_url,omitempty"`
}

func (m *SocialMetric) Kind() SubmissionKind { return KindSocialMetric }

func (m *SocialMetric) Summary() string {
	return "Social Metric (" + m.Metric + ")"
}
