package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/shipgate/site-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInquiryCreated     EventType = "inquiry_created"
	EventScorecardSubmitted EventType = "scorecard_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps a payload with id and time.
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// InquiryCreatedPayload payload.
type InquiryCreatedPayload struct {
	Inquiry domain.Inquiry `json:"inquiry"`
	Service string         `json:"service,omitempty"`
}

// ScorecardSubmittedPayload payload.
type ScorecardSubmittedPayload struct {
	Record     domain.ScorecardInquiry `json:"record"`
	TierLabel  string                  `json:"tier_label"`
	ScoreTotal int                     `json:"score_total"`
}
