package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/events"
	"github.com/shipgate/site-api/internal/mailer"
)

// NotificationService emails the operators about new submissions. All
// sends are best-effort: a failure is logged and swallowed by the
// dispatcher.
type NotificationService struct {
	dispatcher events.Dispatcher
	mail       *mailer.Mailer
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mail *mailer.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, mail: mail, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquiryCreated, n.handleInquiryCreated)
	n.dispatcher.Subscribe(events.EventScorecardSubmitted, n.handleScorecardSubmitted)
}

func (n *NotificationService) handleInquiryCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryCreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	inquiry := payload.Inquiry

	subject := fmt.Sprintf("Contact inquiry from %s", inquiry.Name)
	if payload.Service != "" {
		subject += fmt.Sprintf(" (%s)", payload.Service)
	}

	lines := []string{
		fmt.Sprintf("From: %s <%s>", inquiry.Name, inquiry.Email),
	}
	if payload.Service != "" {
		lines = append(lines, "Service / interest: "+payload.Service)
	}
	if inquiry.Website != "" {
		lines = append(lines, "Website: "+inquiry.Website)
	}
	lines = append(lines, "", inquiry.Message)

	return n.mail.Send(subject, strings.Join(lines, "\n"), inquiry.Email)
}

func (n *NotificationService) handleScorecardSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ScorecardSubmittedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	record := payload.Record

	answers := make([]string, len(record.Answers))
	for i, a := range record.Answers {
		answers[i] = fmt.Sprintf("  Q%d: %d", i+1, a)
	}

	pageURL := record.PageURL
	if pageURL == "" {
		pageURL = "(unknown)"
	}

	subject := fmt.Sprintf("Discovery Scorecard: %s (%d/50) %s",
		payload.TierLabel, payload.ScoreTotal, record.Email)
	body := strings.Join(append([]string{
		"Discovery Scorecard submission",
		"",
		"Name: " + record.FullName,
		"Company: " + record.CompanyName,
		"Email: " + record.Email,
		fmt.Sprintf("Score: %d", payload.ScoreTotal),
		"Tier: " + payload.TierLabel,
		"Page: " + pageURL,
		"",
		"Answers (1-5):",
	}, answers...), "\n")

	if err := n.mail.Send(subject, body, record.Email); err != nil {
		n.logger.Error("scorecard email send failed (submission still saved)", zap.Error(err))
		return err
	}
	return nil
}
