package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/pkg/store"
)

func seedReport(t *testing.T, repo *fakeReportRepo, finalScore *int) uuid.UUID {
	t.Helper()
	report := &entity.InterviewReport{
		Id:             uuid.New(),
		UserId:         "sess-1",
		DomainId:       "engineering",
		Summary:        "Solid technical depth.",
		FinalScore:     finalScore,
		HeuristicScore: 10,
		QAHistory: []store.QARecord{
			{Question: "Q one?", Answer: "A one."},
			{Question: "Q two?", Answer: "A two."},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), report))
	return report.Id
}

func TestReportRender(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)
	score := 82
	id := seedReport(t, repo, &score)

	text, err := svc.Render(context.Background(), id)
	require.NoError(t, err)

	assert.Contains(t, text, "Mock Interview Report")
	assert.Contains(t, text, "Score: 82 / 100")
	assert.Contains(t, text, "Solid technical depth.")
	assert.Contains(t, text, "Q1: Q one?")
	assert.Contains(t, text, "A1: A one.")
	assert.Contains(t, text, "Q2: Q two?")
}

func TestReportRenderUnknownScore(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)
	id := seedReport(t, repo, nil)

	text, err := svc.Render(context.Background(), id)
	require.NoError(t, err)

	// An unparsed score renders as unknown, never as zero.
	assert.Contains(t, text, "Score: ? / 100")
	assert.NotContains(t, text, "Score: 0 / 100")
}

func TestReportShowNotFound(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Show(context.Background(), uuid.New())
	var notFound *serverutils.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
