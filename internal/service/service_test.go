package service

import (
	"context"

	"github.com/shipgate/site-api/internal/domain"
	"github.com/shipgate/site-api/internal/events"
	"github.com/shipgate/site-api/internal/pocketbase"
)

// fakeStore is an in-memory pocketbase.Store for service tests.
type fakeStore struct {
	inquiries          []domain.Inquiry
	scorecardInquiries []domain.ScorecardInquiry
	submissions        []domain.ScorecardSubmission

	createInquiryErr   error
	createScorecardErr error
	submissionErr      error

	lastOpts pocketbase.ListOptions
}

func (f *fakeStore) CreateInquiry(_ context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	if f.createInquiryErr != nil {
		return nil, f.createInquiryErr
	}
	created := *inquiry
	created.ID = "inq1"
	f.inquiries = append(f.inquiries, created)
	return &created, nil
}

func (f *fakeStore) CreateScorecardInquiry(_ context.Context, record *domain.ScorecardInquiry) (*domain.ScorecardInquiry, error) {
	if f.createScorecardErr != nil {
		return nil, f.createScorecardErr
	}
	created := *record
	created.ID = "sc1"
	f.scorecardInquiries = append(f.scorecardInquiries, created)
	return &created, nil
}

func (f *fakeStore) CreateScorecardSubmission(_ context.Context, record *domain.ScorecardSubmission) error {
	if f.submissionErr != nil {
		return f.submissionErr
	}
	f.submissions = append(f.submissions, *record)
	return nil
}

func (f *fakeStore) ListInquiries(_ context.Context, opts pocketbase.ListOptions) ([]domain.Inquiry, int, error) {
	f.lastOpts = opts
	return f.inquiries, len(f.inquiries), nil
}

func (f *fakeStore) ListScorecardInquiries(_ context.Context, opts pocketbase.ListOptions) ([]domain.ScorecardInquiry, int, error) {
	f.lastOpts = opts
	return f.scorecardInquiries, len(f.scorecardInquiries), nil
}

func (f *fakeStore) ListScorecardSubmissions(_ context.Context, opts pocketbase.ListOptions) ([]domain.ScorecardSubmission, int, error) {
	f.lastOpts = opts
	return f.submissions, len(f.submissions), nil
}

func (f *fakeStore) GetInquiry(_ context.Context, id string) (*domain.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			return &f.inquiries[i], nil
		}
	}
	return nil, pocketbase.ErrNotFound
}

func (f *fakeStore) GetScorecardInquiry(_ context.Context, id string) (*domain.ScorecardInquiry, error) {
	for i := range f.scorecardInquiries {
		if f.scorecardInquiries[i].ID == id {
			return &f.scorecardInquiries[i], nil
		}
	}
	return nil, pocketbase.ErrNotFound
}

func (f *fakeStore) GetScorecardSubmission(_ context.Context, id string) (*domain.ScorecardSubmission, error) {
	for i := range f.submissions {
		if f.submissions[i].ID == id {
			return &f.submissions[i], nil
		}
	}
	return nil, pocketbase.ErrNotFound
}

func (f *fakeStore) AllScorecardInquiries(_ context.Context, _ int) ([]domain.ScorecardInquiry, error) {
	return f.scorecardInquiries, nil
}

func (f *fakeStore) Stats(_ context.Context) (*pocketbase.Stats, error) {
	byTier := map[string]int{"guessing": 0, "partial_clarity": 0, "defensible_bet": 0}
	for _, record := range f.submissions {
		if _, ok := byTier[record.Tier]; ok {
			byTier[record.Tier]++
		}
	}
	return &pocketbase.Stats{
		InquiriesTotal: len(f.inquiries),
		ScorecardTotal: len(f.submissions),
		ByTier:         byTier,
	}, nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}
