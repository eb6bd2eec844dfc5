package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/domain"
	"github.com/shipgate/site-api/internal/export"
	"github.com/shipgate/site-api/internal/pocketbase"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

// Per-route page size caps for the read-only dashboards.
const (
	maxInquiryPageSize   = 100
	maxScorecardPageSize = 200
)

// AdminService backs the read-only internal dashboards.
type AdminService struct {
	store    pocketbase.Store
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewAdminService creates the service.
func NewAdminService(store pocketbase.Store, exporter *export.Exporter, logger *zap.Logger) *AdminService {
	return &AdminService{store: store, exporter: exporter, logger: logger}
}

// ListInquiries returns one page of inquiries, newest first, optionally
// filtered by email substring.
func (s *AdminService) ListInquiries(ctx context.Context, page, perPage int, email string) ([]domain.Inquiry, int, error) {
	opts := listOptions(page, perPage, 20, maxInquiryPageSize)
	if email = strings.TrimSpace(email); email != "" {
		opts.Filter = pocketbase.FieldContains("email", email)
	}
	items, total, err := s.store.ListInquiries(ctx, opts)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// GetInquiry fetches a single inquiry by id.
func (s *AdminService) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	record, err := s.store.GetInquiry(ctx, id)
	if err != nil {
		if errors.Is(err, pocketbase.ErrNotFound) {
			return nil, apperrors.NewNotFound("inquiry", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// ListScorecardInquiries returns one page, optionally filtered by email.
func (s *AdminService) ListScorecardInquiries(ctx context.Context, page, perPage int, email string) ([]domain.ScorecardInquiry, int, error) {
	opts := listOptions(page, perPage, 50, maxScorecardPageSize)
	if email = strings.TrimSpace(email); email != "" {
		opts.Filter = pocketbase.FieldContains("email", email)
	}
	items, total, err := s.store.ListScorecardInquiries(ctx, opts)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// SearchScorecardInquiries matches a free-text term across email, name
// and company.
func (s *AdminService) SearchScorecardInquiries(ctx context.Context, page, perPage int, search string) ([]domain.ScorecardInquiry, int, error) {
	opts := listOptions(page, perPage, 50, maxScorecardPageSize)
	if search = strings.TrimSpace(search); search != "" {
		opts.Filter = pocketbase.AnyFieldContains(search, "email", "full_name", "company_name")
	}
	items, total, err := s.store.ListScorecardInquiries(ctx, opts)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// ListScorecardSubmissions returns one page of the legacy collection.
func (s *AdminService) ListScorecardSubmissions(ctx context.Context, page, perPage int, email string) ([]domain.ScorecardSubmission, int, error) {
	opts := listOptions(page, perPage, 20, maxInquiryPageSize)
	if email = strings.TrimSpace(email); email != "" {
		opts.Filter = pocketbase.FieldContains("email", email)
	}
	items, total, err := s.store.ListScorecardSubmissions(ctx, opts)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// GetScorecardSubmission fetches a single legacy submission by id.
func (s *AdminService) GetScorecardSubmission(ctx context.Context, id string) (*domain.ScorecardSubmission, error) {
	record, err := s.store.GetScorecardSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, pocketbase.ErrNotFound) {
			return nil, apperrors.NewNotFound("scorecard submission", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// Stats recomputes dashboard totals per request.
func (s *AdminService) Stats(ctx context.Context) (*pocketbase.Stats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}

// ExportScorecardInquiries writes the full text dump and returns the
// record count and output path.
func (s *AdminService) ExportScorecardInquiries(ctx context.Context) (int, string, error) {
	total, path, err := s.exporter.Run(ctx)
	if err != nil {
		return 0, "", apperrors.MapError(err)
	}
	return total, path, nil
}

func listOptions(page, perPage, defaultPerPage, cap int) pocketbase.ListOptions {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > cap {
		perPage = cap
	}
	return pocketbase.ListOptions{Page: page, PerPage: perPage, Sort: "-created"}
}
