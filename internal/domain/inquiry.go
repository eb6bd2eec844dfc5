package domain

// InquiryStatus enumerates triage states for contact inquiries.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusTriaged   InquiryStatus = "triaged"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry is a contact-form submission persisted in the external store.
// Records are created with status "new" and never deleted by this system.
type Inquiry struct {
	ID          string        `json:"id,omitempty"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Company     string        `json:"company,omitempty"`
	Role        string        `json:"role,omitempty"`
	Message     string        `json:"message"`
	Website     string        `json:"website,omitempty"`
	Source      string        `json:"source,omitempty"`
	PageURL     string        `json:"page_url,omitempty"`
	UTMSource   string        `json:"utm_source,omitempty"`
	UTMMedium   string        `json:"utm_medium,omitempty"`
	UTMCampaign string        `json:"utm_campaign,omitempty"`
	Status      InquiryStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	Created     string        `json:"created,omitempty"`
}
