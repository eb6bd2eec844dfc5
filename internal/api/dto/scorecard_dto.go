package dto

import "github.com/shipgate/site-api/internal/scoring"

// ScorecardRequest payload for a completed quiz.
type ScorecardRequest struct {
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName"`
	Answers     []int  `json:"answers"`
	CreatedAt   string `json:"createdAt"`
	PageURL     string `json:"pageUrl"`
}

// ScorecardResponse carries the server-authoritative score.
type ScorecardResponse struct {
	OK         bool               `json:"ok"`
	TotalScore int                `json:"totalScore"`
	Tier       string             `json:"tier"`
	Result     scoring.TierResult `json:"result"`
}
