package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/domain"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

func TestListInquiriesPageBounds(t *testing.T) {
	store := &fakeStore{}
	svc := NewAdminService(store, nil, zap.NewNop())

	_, _, err := svc.ListInquiries(context.Background(), 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, store.lastOpts.Page)
	assert.Equal(t, 20, store.lastOpts.PerPage)
	assert.Equal(t, "-created", store.lastOpts.Sort)

	_, _, err = svc.ListInquiries(context.Background(), 3, 9999, "")
	require.NoError(t, err)
	assert.Equal(t, 3, store.lastOpts.Page)
	assert.Equal(t, 100, store.lastOpts.PerPage)
}

func TestListScorecardInquiriesPageBounds(t *testing.T) {
	store := &fakeStore{}
	svc := NewAdminService(store, nil, zap.NewNop())

	_, _, err := svc.ListScorecardInquiries(context.Background(), 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 50, store.lastOpts.PerPage)

	_, _, err = svc.ListScorecardInquiries(context.Background(), 1, 9999, "")
	require.NoError(t, err)
	assert.Equal(t, 200, store.lastOpts.PerPage)
}

func TestListInquiriesEmailFilter(t *testing.T) {
	store := &fakeStore{}
	svc := NewAdminService(store, nil, zap.NewNop())

	_, _, err := svc.ListInquiries(context.Background(), 1, 20, " jane@acme.com ")
	require.NoError(t, err)
	assert.Equal(t, `email ~ "jane@acme.com"`, store.lastOpts.Filter.String())

	_, _, err = svc.ListInquiries(context.Background(), 1, 20, "   ")
	require.NoError(t, err)
	assert.True(t, store.lastOpts.Filter.IsZero())
}

func TestSearchScorecardInquiries(t *testing.T) {
	store := &fakeStore{}
	svc := NewAdminService(store, nil, zap.NewNop())

	_, _, err := svc.SearchScorecardInquiries(context.Background(), 1, 50, "acme")
	require.NoError(t, err)
	assert.Equal(t,
		`email ~ "acme" || full_name ~ "acme" || company_name ~ "acme"`,
		store.lastOpts.Filter.String())
}

func TestGetInquiryNotFound(t *testing.T) {
	store := &fakeStore{}
	svc := NewAdminService(store, nil, zap.NewNop())

	_, err := svc.GetInquiry(context.Background(), "nope")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "nope", domainErr.Details["id"])
}

func TestStatsCountsByTier(t *testing.T) {
	store := &fakeStore{
		inquiries: []domain.Inquiry{{ID: "a"}, {ID: "b"}},
		submissions: []domain.ScorecardSubmission{
			{Tier: "guessing"},
			{Tier: "defensible_bet"},
			{Tier: "defensible_bet"},
			{Tier: "unknown_slug"},
		},
	}
	svc := NewAdminService(store, nil, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.InquiriesTotal)
	assert.Equal(t, 4, stats.ScorecardTotal)
	assert.Equal(t, 2, stats.ByTier["defensible_bet"])
	assert.Equal(t, 1, stats.ByTier["guessing"])
	assert.Equal(t, 0, stats.ByTier["partial_clarity"])
}
