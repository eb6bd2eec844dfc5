// Package export writes the scorecard-inquiries text dump consumed by
// the operators' daily review.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/domain"
	"github.com/shipgate/site-api/internal/scoring"
)

// Source is the slice of the store the exporter needs.
type Source interface {
	AllScorecardInquiries(ctx context.Context, perPage int) ([]domain.ScorecardInquiry, error)
}

// Exporter fetches every scorecard inquiry and writes one fixed-width
// text file.
type Exporter struct {
	source     Source
	logger     *zap.Logger
	outputPath string
	perPage    int
	interval   time.Duration
}

// New builds an exporter from config.
func New(source Source, logger *zap.Logger, cfg config.ExportConfig) *Exporter {
	return &Exporter{
		source:     source,
		logger:     logger,
		outputPath: cfg.OutputPath,
		perPage:    cfg.PerPage,
		interval:   cfg.Interval(),
	}
}

// Run performs one export and returns the record count and output path.
func (e *Exporter) Run(ctx context.Context) (int, string, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	items, err := e.source.AllScorecardInquiries(ctx, e.perPage)
	if err != nil {
		return 0, "", err
	}

	content := Render(items, now)

	path, err := filepath.Abs(e.outputPath)
	if err != nil {
		return 0, "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, "", fmt.Errorf("write export file: %w", err)
	}

	e.logger.Info("exported scorecard inquiries",
		zap.Int("total", len(items)),
		zap.String("path", path))
	return len(items), path, nil
}

// Listen runs one export immediately, then re-exports on a fixed timer
// until the context is cancelled. Failures are logged, never retried;
// drift across restarts is acceptable.
func (e *Exporter) Listen(ctx context.Context) {
	if _, _, err := e.Run(ctx); err != nil {
		e.logger.Error("export failed", zap.Error(err))
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, _, err := e.Run(ctx); err != nil {
				e.logger.Error("export failed", zap.Error(err))
			}
		}
	}
}

// Render formats the full export document.
func Render(items []domain.ScorecardInquiry, generatedAt string) string {
	rule := strings.Repeat("=", 60)
	header := strings.Join([]string{
		rule,
		"  SCORECARD INQUIRIES EXPORT",
		"  Generated: " + generatedAt,
		fmt.Sprintf("  Total records: %d", len(items)),
		rule,
		"",
	}, "\n")

	body := "(No scorecard inquiries found)"
	if len(items) > 0 {
		blocks := make([]string, len(items))
		for i, record := range items {
			blocks[i] = FormatRecord(record, i)
		}
		body = strings.Join(blocks, "\n\n")
	}

	return header + body + "\n"
}

// FormatRecord renders one record as a fixed-width block.
func FormatRecord(r domain.ScorecardInquiry, idx int) string {
	answers := "(none)"
	if len(r.Answers) > 0 {
		parts := make([]string, len(r.Answers))
		for i, a := range r.Answers {
			parts[i] = fmt.Sprintf("Q%d:%d", i+1, a)
		}
		answers = strings.Join(parts, ", ")
	}

	pageURL := r.PageURL
	if pageURL == "" {
		pageURL = "(none)"
	}
	created := r.Created
	if created == "" {
		created = "(unknown)"
	}

	return strings.Join([]string{
		fmt.Sprintf("--- Record #%d (%s) ---", idx+1, r.ID),
		"  Full Name    : " + r.FullName,
		"  Company      : " + r.CompanyName,
		"  Email        : " + r.Email,
		fmt.Sprintf("  Score        : %d/50", r.ScoreTotal),
		"  Tier         : " + scoring.TierFromSlug(r.Tier),
		"  Answers      : " + answers,
		"  Page URL     : " + pageURL,
		"  Submitted    : " + created,
	}, "\n")
}
