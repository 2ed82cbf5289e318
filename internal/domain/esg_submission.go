package domain

import "encoding/json"

type ESGSubmission struct {
	SubmissionBase

	SubmissionType     *string         `json:"submission_type,omitempty" db:"submission_type"`
	EnvironmentalScore *float64        `json:"environmental_score,omitempty" db:"environmental_score"`
	SocialScore        *float64        `json:"social_score,omitempty" db:"social_score"`
	GovernanceScore    *float64        `json:"governance_score,omitempty" db:"governance_score"`
	EnvironmentalMetrics json.RawMessage `json:"environmental_metrics,omitempty" db:"environmental_metrics"`
	SocialMetrics        json.RawMessage `json:"social_metrics,omitempty" db:"social_metrics"`
	GovernanceMetrics    json.RawMessage `json:"governance_metrics,omitempty" db:"governance_metrics"`
}

type CreateESGSubmissionInput struct {
	SubmissionType       *string         `json:"submission_type,omitempty"`
	EnvironmentalScore   *float64        `json:"environmental_score,omitempty"`
	SocialScore          *float64        `json:"social_score,omitempty"`
	GovernanceScore      *float64        `json:"governance_score,omitempty"`
	EnvironmentalMetrics json.RawMessage `json:"environmental_metrics,omitempty"`
	SocialMetrics        json.RawMessage `json:"social_metrics,omitempty"`
	GovernanceMetrics    json.RawMessage `json:"governance_metrics,omitempty"`
}

func (s *ESGSubmission) Kind() SubmissionKind { return KindESGSubmission }

func (s *ESGSubmission) Summary() string { return "ESG submission" }

// ChartData is the time series of approved ESG scores used by the frontend
// dashboard chart.
type ChartData struct {
	Labels              []string  `json:"labels"`
	EnvironmentalScores []*float64 `json:"environmental_scores"`
	SocialScores        []*float64 `json:"social_scores"`
	GovernanceScores    []*float64 `json:"governance_scores"`
}
