package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/events"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

func newIntakeService(store *fakeStore, dispatcher *recordingDispatcher, requireCompany bool) *IntakeService {
	return NewIntakeService(store, dispatcher, zap.NewNop(), config.ContactConfig{RequireCompanyEmail: requireCompany})
}

func validIntake() IntakeInput {
	return IntakeInput{
		Name:    "Jane Doe",
		Email:   "jane@acme.com",
		Message: "We need help with our onboarding flow.",
	}
}

func TestSubmitInquiryPersistsAndNotifies(t *testing.T) {
	store := &fakeStore{}
	dispatcher := &recordingDispatcher{}
	svc := newIntakeService(store, dispatcher, true)

	input := validIntake()
	input.Email = "  Jane@ACME.com "
	input.Service = "discovery"

	created, err := svc.SubmitInquiry(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", created.Email)
	assert.Equal(t, "new", string(created.Status))

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventInquiryCreated, dispatcher.published[0].Type)
	payload := dispatcher.published[0].Payload.(events.InquiryCreatedPayload)
	assert.Equal(t, "discovery", payload.Service)
}

func TestSubmitInquiryValidationOrder(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*IntakeInput)
		wantCode string
	}{
		{"missing name", func(in *IntakeInput) { in.Name = "  " }, "MISSING_FIELD"},
		{"bad email", func(in *IntakeInput) { in.Email = "not-an-email" }, "INVALID_EMAIL"},
		{"email without tld", func(in *IntakeInput) { in.Email = "jane@acme" }, "INVALID_EMAIL"},
		{"consumer email", func(in *IntakeInput) { in.Email = "jane@gmail.com" }, "PERSONAL_EMAIL_REJECTED"},
		{"consumer email mixed case", func(in *IntakeInput) { in.Email = "jane@GMail.com" }, "PERSONAL_EMAIL_REJECTED"},
		{"missing message", func(in *IntakeInput) { in.Message = "" }, "MISSING_FIELD"},
		// Name is checked before email, even when both are bad.
		{"name wins over email", func(in *IntakeInput) { in.Name = ""; in.Email = "bad" }, "MISSING_FIELD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			dispatcher := &recordingDispatcher{}
			svc := newIntakeService(store, dispatcher, true)

			input := validIntake()
			tc.mutate(&input)

			_, err := svc.SubmitInquiry(context.Background(), input)
			require.Error(t, err)

			var domainErr *apperrors.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tc.wantCode, domainErr.Code)
			assert.Empty(t, store.inquiries)
			assert.Empty(t, dispatcher.published)
		})
	}
}

func TestSubmitInquiryConsumerEmailAllowedWhenPolicyOff(t *testing.T) {
	store := &fakeStore{}
	svc := newIntakeService(store, &recordingDispatcher{}, false)

	input := validIntake()
	input.Email = "jane@gmail.com"

	created, err := svc.SubmitInquiry(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "jane@gmail.com", created.Email)
}

func TestSubmitInquiryStoreFailure(t *testing.T) {
	store := &fakeStore{createInquiryErr: apperrors.NewDownstreamUnavailable("store down", nil)}
	dispatcher := &recordingDispatcher{}
	svc := newIntakeService(store, dispatcher, true)

	_, err := svc.SubmitInquiry(context.Background(), validIntake())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "DOWNSTREAM_UNAVAILABLE", domainErr.Code)
	assert.Empty(t, dispatcher.published)
}
