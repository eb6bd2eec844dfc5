package domain

// ScorecardInquiry is a completed quiz result with mandatory contact
// details. Created exactly once per quiz completion; immutable after.
type ScorecardInquiry struct {
	ID          string `json:"id,omitempty"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	ScoreTotal  int    `json:"score_total"`
	Tier        string `json:"tier"`
	Answers     []int  `json:"answers"`
	PageURL     string `json:"page_url,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	Created     string `json:"created,omitempty"`
}

// ScorecardSubmission is the legacy quiz result shape without mandatory
// contact details. New submissions mirror into this collection
// best-effort so the historical dataset keeps filling.
type ScorecardSubmission struct {
	ID         string `json:"id,omitempty"`
	Email      string `json:"email"`
	ScoreTotal int    `json:"score_total"`
	Tier       string `json:"tier"`
	Answers    []int  `json:"answers"`
	IPHash     string `json:"ip_hash,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
	Source     string `json:"source,omitempty"`
	PageURL    string `json:"page_url,omitempty"`
	Created    string `json:"created,omitempty"`
}
