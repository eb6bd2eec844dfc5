package dto

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	Website     string `json:"website"`
	Service     string `json:"service"`
	PageURL     string `json:"pageUrl"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}
