package questionnaire

import (
	"time"

	"fedventura-backend/internal/advisor"
)

// Saved is a user's latest submission and the recommendations shown for it.
type Saved struct {
	Answers         advisor.Answers                  `json:"answers"`
	Recommendations []advisor.BusinessRecommendation `json:"recommendations"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
}

// Result is what a submission returns to the caller.
type Result struct {
	Recommendations []advisor.BusinessRecommendation `json:"recommendations"`
	State           advisor.State                    `json:"state"`
	Notices         []string                         `json:"notices,omitempty"`
	Saved           bool                             `json:"saved"`
}
