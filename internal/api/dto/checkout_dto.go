package dto

import "github.com/shipgate/site-api/internal/catalog"

// QuoteRequest lists offering ids in cart order.
type QuoteRequest struct {
	Items []string `json:"items"`
}

// QuoteResponse is a priced cart plus the payment-processor client id
// the browser needs to render the hosted checkout.
type QuoteResponse struct {
	OK             bool               `json:"ok"`
	Items          []catalog.Offering `json:"items"`
	Total          int                `json:"total"`
	PayPalClientID string             `json:"paypalClientId,omitempty"`
}
