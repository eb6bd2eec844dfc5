package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/domain"
	"github.com/shipgate/site-api/internal/events"
	"github.com/shipgate/site-api/internal/pocketbase"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

// IntakeService validates and persists contact-form submissions.
type IntakeService struct {
	store      pocketbase.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.ContactConfig
}

// NewIntakeService creates the service.
func NewIntakeService(store pocketbase.Store, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.ContactConfig) *IntakeService {
	return &IntakeService{store: store, dispatcher: dispatcher, logger: logger, cfg: cfg}
}

// IntakeInput is a contact submission before validation.
type IntakeInput struct {
	Name        string
	Email       string
	Message     string
	Website     string
	Service     string
	PageURL     string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// SubmitInquiry validates the submission in order (first failure wins),
// persists the inquiry, and emits a best-effort notification event.
func (s *IntakeService) SubmitInquiry(ctx context.Context, input IntakeInput) (*domain.Inquiry, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" {
		return nil, apperrors.NewMissingField("name", "Name is required.")
	}
	if !isValidEmail(email) {
		return nil, apperrors.NewInvalidEmail("A valid email is required.")
	}
	if s.cfg.RequireCompanyEmail && !isCompanyEmail(email) {
		return nil, apperrors.NewPersonalEmailRejected(
			"Please use your company email address. Personal email addresses (e.g. Gmail, Yahoo, Outlook) are not accepted.")
	}
	if message == "" {
		return nil, apperrors.NewMissingField("message", "Message is required.")
	}

	inquiry := &domain.Inquiry{
		Email:       normalizeEmail(email),
		Name:        name,
		Message:     message,
		Website:     strings.TrimSpace(input.Website),
		Source:      strings.TrimSpace(input.Service),
		PageURL:     strings.TrimSpace(input.PageURL),
		UTMSource:   input.UTMSource,
		UTMMedium:   input.UTMMedium,
		UTMCampaign: input.UTMCampaign,
		Status:      domain.InquiryStatusNew,
	}

	created, err := s.store.CreateInquiry(ctx, inquiry)
	if err != nil {
		s.logger.Error("create inquiry failed", zap.Error(err))
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("inquiry created",
		zap.String("id", created.ID),
		zap.String("email", created.Email))

	// Notification is best-effort: the record is already persisted, so
	// a notifier failure must not fail the request.
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventInquiryCreated, events.InquiryCreatedPayload{
		Inquiry: *created,
		Service: inquiry.Source,
	}))

	return created, nil
}
