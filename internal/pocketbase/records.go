package pocketbase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shipgate/site-api/internal/domain"
)

// Store is the persistence surface consumed by the service layer.
type Store interface {
	CreateInquiry(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error)
	CreateScorecardInquiry(ctx context.Context, record *domain.ScorecardInquiry) (*domain.ScorecardInquiry, error)
	CreateScorecardSubmission(ctx context.Context, record *domain.ScorecardSubmission) error
	ListInquiries(ctx context.Context, opts ListOptions) ([]domain.Inquiry, int, error)
	ListScorecardInquiries(ctx context.Context, opts ListOptions) ([]domain.ScorecardInquiry, int, error)
	ListScorecardSubmissions(ctx context.Context, opts ListOptions) ([]domain.ScorecardSubmission, int, error)
	GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error)
	GetScorecardInquiry(ctx context.Context, id string) (*domain.ScorecardInquiry, error)
	GetScorecardSubmission(ctx context.Context, id string) (*domain.ScorecardSubmission, error)
	AllScorecardInquiries(ctx context.Context, perPage int) ([]domain.ScorecardInquiry, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Stats aggregates dashboard counts, recomputed per request.
type Stats struct {
	InquiriesTotal int            `json:"inquiriesTotal"`
	ScorecardTotal int            `json:"scorecardTotal"`
	ByTier         map[string]int `json:"byTier"`
}

// CreateInquiry persists a contact inquiry with status "new".
func (c *Client) CreateInquiry(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	inquiry.Email = normalizeEmail(inquiry.Email)
	if inquiry.Status == "" {
		inquiry.Status = domain.InquiryStatusNew
	}
	var created domain.Inquiry
	if err := c.Create(ctx, CollectionInquiries, inquiry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateScorecardInquiry persists a quiz result with contact details.
func (c *Client) CreateScorecardInquiry(ctx context.Context, record *domain.ScorecardInquiry) (*domain.ScorecardInquiry, error) {
	record.Email = normalizeEmail(record.Email)
	record.FullName = strings.TrimSpace(record.FullName)
	record.CompanyName = strings.TrimSpace(record.CompanyName)
	var created domain.ScorecardInquiry
	if err := c.Create(ctx, CollectionScorecardInquiries, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateScorecardSubmission writes the legacy mirror record.
func (c *Client) CreateScorecardSubmission(ctx context.Context, record *domain.ScorecardSubmission) error {
	record.Email = normalizeEmail(record.Email)
	return c.Create(ctx, CollectionScorecardSubmissions, record, nil)
}

// ListInquiries returns one page of inquiries plus the total count.
func (c *Client) ListInquiries(ctx context.Context, opts ListOptions) ([]domain.Inquiry, int, error) {
	resp, err := c.List(ctx, CollectionInquiries, opts)
	if err != nil {
		return nil, 0, err
	}
	var items []domain.Inquiry
	if err := json.Unmarshal(resp.Items, &items); err != nil {
		return nil, 0, err
	}
	return items, resp.TotalItems, nil
}

// ListScorecardInquiries returns one page of scorecard inquiries.
func (c *Client) ListScorecardInquiries(ctx context.Context, opts ListOptions) ([]domain.ScorecardInquiry, int, error) {
	resp, err := c.List(ctx, CollectionScorecardInquiries, opts)
	if err != nil {
		return nil, 0, err
	}
	var items []domain.ScorecardInquiry
	if err := json.Unmarshal(resp.Items, &items); err != nil {
		return nil, 0, err
	}
	return items, resp.TotalItems, nil
}

// ListScorecardSubmissions returns one page of legacy submissions.
func (c *Client) ListScorecardSubmissions(ctx context.Context, opts ListOptions) ([]domain.ScorecardSubmission, int, error) {
	resp, err := c.List(ctx, CollectionScorecardSubmissions, opts)
	if err != nil {
		return nil, 0, err
	}
	var items []domain.ScorecardSubmission
	if err := json.Unmarshal(resp.Items, &items); err != nil {
		return nil, 0, err
	}
	return items, resp.TotalItems, nil
}

// GetInquiry fetches one inquiry by id.
func (c *Client) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	var record domain.Inquiry
	if err := c.Get(ctx, CollectionInquiries, id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetScorecardInquiry fetches one scorecard inquiry by id.
func (c *Client) GetScorecardInquiry(ctx context.Context, id string) (*domain.ScorecardInquiry, error) {
	var record domain.ScorecardInquiry
	if err := c.Get(ctx, CollectionScorecardInquiries, id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetScorecardSubmission fetches one legacy submission by id.
func (c *Client) GetScorecardSubmission(ctx context.Context, id string) (*domain.ScorecardSubmission, error) {
	var record domain.ScorecardSubmission
	if err := c.Get(ctx, CollectionScorecardSubmissions, id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// AllScorecardInquiries pages through the collection newest-first until
// a short page signals end of data.
func (c *Client) AllScorecardInquiries(ctx context.Context, perPage int) ([]domain.ScorecardInquiry, error) {
	if perPage <= 0 {
		perPage = 200
	}
	var all []domain.ScorecardInquiry
	for page := 1; ; page++ {
		items, _, err := c.ListScorecardInquiries(ctx, ListOptions{Page: page, PerPage: perPage})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < perPage {
			return all, nil
		}
	}
}

// Stats recomputes dashboard totals with count queries plus a bounded
// scan of submissions for the per-tier breakdown.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByTier: map[string]int{"guessing": 0, "partial_clarity": 0, "defensible_bet": 0},
	}

	inquiries, err := c.List(ctx, CollectionInquiries, ListOptions{PerPage: 1})
	if err != nil {
		return nil, err
	}
	stats.InquiriesTotal = inquiries.TotalItems

	submissions, err := c.List(ctx, CollectionScorecardSubmissions, ListOptions{PerPage: 1})
	if err != nil {
		return nil, err
	}
	stats.ScorecardTotal = submissions.TotalItems

	if stats.ScorecardTotal > 0 {
		items, _, err := c.ListScorecardSubmissions(ctx, ListOptions{PerPage: 500})
		if err != nil {
			return nil, err
		}
		for _, record := range items {
			if _, ok := stats.ByTier[record.Tier]; ok {
				stats.ByTier[record.Tier]++
			}
		}
	}
	return stats, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
