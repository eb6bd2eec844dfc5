package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/domain"
)

type fakeSource struct {
	items []domain.ScorecardInquiry
	err   error
}

func (f *fakeSource) AllScorecardInquiries(_ context.Context, _ int) ([]domain.ScorecardInquiry, error) {
	return f.items, f.err
}

func sampleRecord() domain.ScorecardInquiry {
	return domain.ScorecardInquiry{
		ID:          "rec1",
		Email:       "jane@acme.com",
		FullName:    "Jane Doe",
		CompanyName: "Acme",
		ScoreTotal:  42,
		Tier:        "defensible_bet",
		Answers:     []int{5, 4, 4, 4, 4, 4, 4, 4, 4, 5},
		PageURL:     "https://example.com/scorecard",
		Created:     "2026-08-29 10:00:00",
	}
}

func TestFormatRecord(t *testing.T) {
	block := FormatRecord(sampleRecord(), 0)

	lines := strings.Split(block, "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "--- Record #1 (rec1) ---", lines[0])
	assert.Equal(t, "  Full Name    : Jane Doe", lines[1])
	assert.Equal(t, "  Score        : 42/50", lines[4])
	assert.Equal(t, "  Tier         : Defensible Bet", lines[5])
	assert.Equal(t, "  Answers      : Q1:5, Q2:4, Q3:4, Q4:4, Q5:4, Q6:4, Q7:4, Q8:4, Q9:4, Q10:5", lines[6])
}

func TestFormatRecordEmptyFields(t *testing.T) {
	block := FormatRecord(domain.ScorecardInquiry{ID: "rec2", Tier: "guessing"}, 4)

	assert.Contains(t, block, "--- Record #5 (rec2) ---")
	assert.Contains(t, block, "  Answers      : (none)")
	assert.Contains(t, block, "  Page URL     : (none)")
	assert.Contains(t, block, "  Submitted    : (unknown)")
	assert.Contains(t, block, "  Tier         : Guessing")
}

func TestRenderEmpty(t *testing.T) {
	doc := Render(nil, "2026-08-30T00:00:00Z")

	assert.Contains(t, doc, strings.Repeat("=", 60))
	assert.Contains(t, doc, "  Generated: 2026-08-30T00:00:00Z")
	assert.Contains(t, doc, "  Total records: 0")
	assert.Contains(t, doc, "(No scorecard inquiries found)")
	assert.True(t, strings.HasSuffix(doc, "\n"))
}

func TestRenderSeparatesRecords(t *testing.T) {
	first := sampleRecord()
	second := sampleRecord()
	second.ID = "rec2"
	second.FullName = "John Roe"

	doc := Render([]domain.ScorecardInquiry{first, second}, "2026-08-30T00:00:00Z")

	assert.Contains(t, doc, "  Total records: 2")
	assert.Contains(t, doc, "--- Record #1 (rec1) ---")
	assert.Contains(t, doc, "--- Record #2 (rec2) ---")
	assert.NotContains(t, doc, "(No scorecard inquiries found)")
}

func TestRunWritesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "inquiries.txt")
	exporter := New(&fakeSource{items: []domain.ScorecardInquiry{sampleRecord()}}, zap.NewNop(), config.ExportConfig{
		OutputPath: outPath,
	})

	total, path, err := exporter.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, outPath, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "SCORECARD INQUIRIES EXPORT")
	assert.Contains(t, string(content), "Jane Doe")
}

func TestRunPropagatesSourceError(t *testing.T) {
	exporter := New(&fakeSource{err: errors.New("store down")}, zap.NewNop(), config.ExportConfig{
		OutputPath: filepath.Join(t.TempDir(), "inquiries.txt"),
	})

	_, _, err := exporter.Run(context.Background())
	require.Error(t, err)
}
