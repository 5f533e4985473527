package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-interview-be/internal/catalog"
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/repository/memory"
	"mock-interview-be/pkg/interview/session"
	"mock-interview-be/pkg/interview/state"
	"mock-interview-be/pkg/llm"
	"mock-interview-be/pkg/store"
)

// fakeLLMProvider returns canned text and counts invocations.
type fakeLLMProvider struct {
	response string
	failWith error
	calls    int
}

func (f *fakeLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	if f.failWith != nil {
		return "", f.failWith
	}
	return f.response, nil
}

func (f *fakeLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

// fakePublisher captures published payloads.
type fakePublisher struct {
	published [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.published = append(f.published, payload)
	return nil
}

type fixture struct {
	svc       IInterviewService
	llm       *fakeLLMProvider
	publisher *fakePublisher
	embedder  *fakeEmbeddingProvider
	repo      *fakeEmbeddingRepo
}

func newFixture() *fixture {
	nop := logger.NewNopLogger()
	llmProvider := &fakeLLMProvider{response: "Could you walk me through a system you designed?"}
	publisher := &fakePublisher{}
	embedder := &fakeEmbeddingProvider{}
	repo := newFakeEmbeddingRepo()

	svc := NewInterviewService(
		session.NewManager(memory.NewSessionRepository()),
		state.NewManager(nop),
		NewIngestionService(repo, embedder, nop),
		llmProvider,
		publisher,
		nop,
	)
	return &fixture{svc: svc, llm: llmProvider, publisher: publisher, embedder: embedder, repo: repo}
}

func (f *fixture) createReadySession(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	created, err := f.svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.UpdateProfile(ctx, created.Id, &dto.UpdateProfileRequest{
		Fields: map[string]string{
			store.ProfileFieldName:       "Ada",
			store.ProfileFieldBackground: "Backend engineer",
			store.ProfileFieldGoals:      "Staff role",
		},
	})
	require.NoError(t, err)
	return created.Id
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created.Id)

	stateRes, err := f.svc.GetSession(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, store.PhaseDomainSelection, stateRes.Phase)
	assert.Equal(t, 1, stateRes.QuestionIndex)
	assert.Equal(t, catalog.TotalQuestions, stateRes.TotalQuestions)

	_, err = f.svc.GetSession(ctx, "missing-session")
	var notFound *serverutils.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestStartInterviewGuards(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("profile incomplete is a no-op", func(t *testing.T) {
		created, err := f.svc.CreateSession(ctx)
		require.NoError(t, err)

		resume := &FilePayload{Data: []byte("resume body"), MimeType: "text/plain"}
		_, err = f.svc.StartInterview(ctx, created.Id, catalog.DomainEngineering, resume, nil)
		var ve *serverutils.ValidationError
		require.ErrorAs(t, err, &ve)

		stateRes, err := f.svc.GetSession(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, store.PhaseDomainSelection, stateRes.Phase)
		assert.Empty(t, stateRes.DomainId)

		// A rejected start is a full no-op: no embedding call was made and
		// nothing reached the vector store.
		assert.Empty(t, f.embedder.batchCalls)
		count, _ := f.repo.Count(ctx, created.Id)
		assert.Zero(t, count)
	})

	t.Run("unknown domain rejected", func(t *testing.T) {
		id := f.createReadySession(t)
		_, err := f.svc.StartInterview(ctx, id, "astrology", nil, nil)
		var notFound *serverutils.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestStartInterviewIngestsDocuments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	resume := &FilePayload{Data: []byte("my resume"), MimeType: "text/plain"}
	stateRes, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, resume, nil)
	require.NoError(t, err)
	assert.Equal(t, store.PhaseInterviewing, stateRes.Phase)
	assert.Equal(t, "Software Engineering", stateRes.DomainName)

	// resume + profile text upserted under the session's own id
	count, _ := f.repo.Count(ctx, id)
	assert.EqualValues(t, 2, count)
}

func TestGetQuestionGeneratesOnceAndCaches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)

	first, err := f.svc.GetQuestion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, f.llm.response, first.Question)
	assert.Equal(t, 1, first.QuestionIndex)
	assert.Equal(t, 1, f.llm.calls)

	// Re-fetching the same question must reuse the cached text.
	second, err := f.svc.GetQuestion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first.Question, second.Question)
	assert.Equal(t, 1, f.llm.calls)
}

func TestGetQuestionGenerationFailureIsFatal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)

	f.llm.failWith = errors.New("quota exhausted")
	_, err = f.svc.GetQuestion(ctx, id)
	var external *serverutils.ExternalServiceError
	require.ErrorAs(t, err, &external)
	assert.Equal(t, "generation", external.Service)

	// The failed action left no cached question; a retry calls again.
	f.llm.failWith = nil
	res, err := f.svc.GetQuestion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, f.llm.response, res.Question)
}

func TestSubmitAnswerRecordsTemplateQuestion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)
	_, err = f.svc.GetQuestion(ctx, id)
	require.NoError(t, err)

	stateRes, err := f.svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{Answer: "I built a queueing system."})
	require.NoError(t, err)

	engineering, err := catalog.Get(catalog.DomainEngineering)
	require.NoError(t, err)
	require.Len(t, stateRes.QAHistory, 1)
	// The stored question is the template text, not the LLM's rephrasing.
	assert.Equal(t, engineering.Questions[0], stateRes.QAHistory[0].Question)
	assert.Equal(t, 2, stateRes.QuestionIndex)
	assert.Equal(t, 1, stateRes.Score)
}

func TestSubmitBlankAnswerRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{Answer: "   "})
	var ve *serverutils.ValidationError
	require.ErrorAs(t, err, &ve)

	stateRes, err := f.svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, stateRes.QuestionIndex)
	assert.Empty(t, stateRes.QAHistory)
}

func completeInterview(t *testing.T, f *fixture, id string) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= catalog.TotalQuestions; i++ {
		_, err := f.svc.GetQuestion(ctx, id)
		require.NoError(t, err)
		_, err = f.svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{
			Answer: fmt.Sprintf("Answer number %d.", i),
		})
		require.NoError(t, err)
	}
}

func TestFullInterviewAndSummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)

	// Summary is rejected until the interview is finished.
	_, err = f.svc.GetSummary(ctx, id)
	var ve *serverutils.ValidationError
	require.ErrorAs(t, err, &ve)

	completeInterview(t, f, id)

	stateRes, err := f.svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.PhaseSummary, stateRes.Phase)
	require.Len(t, stateRes.QAHistory, catalog.TotalQuestions)

	f.llm.response = "Strong candidate overall.\nRecommendation: Hire.\nScore: 82/100"
	summary, err := f.svc.GetSummary(ctx, id)
	require.NoError(t, err)
	assert.True(t, summary.ScoreFound)
	require.NotNil(t, summary.Score)
	assert.Equal(t, 82, *summary.Score)
	assert.Equal(t, catalog.TotalQuestions, summary.HeuristicScore)

	// Completion was handed to the report archiver.
	require.Len(t, f.publisher.published, 1)

	// Refreshing the summary regenerates the text but archives nothing new.
	again, err := f.svc.GetSummary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, summary.Summary, again.Summary)
	require.Len(t, f.publisher.published, 1)
}

func TestRestartAllowsArchivingANewRun(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)
	completeInterview(t, f, id)

	f.llm.response = "Good run. Score: 70/100"
	_, err = f.svc.GetSummary(ctx, id)
	require.NoError(t, err)
	require.Len(t, f.publisher.published, 1)

	// A restarted interview is a new run and gets its own archived report.
	_, err = f.svc.Restart(ctx, id)
	require.NoError(t, err)
	completeInterview(t, f, id)

	f.llm.response = "Better run. Score: 85/100"
	_, err = f.svc.GetSummary(ctx, id)
	require.NoError(t, err)
	require.Len(t, f.publisher.published, 2)
}

func TestSummaryWithoutScoreIsUnknownNotZero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)
	completeInterview(t, f, id)

	f.llm.response = "A thoughtful interview with detailed answers."
	summary, err := f.svc.GetSummary(ctx, id)
	require.NoError(t, err)
	assert.False(t, summary.ScoreFound)
	assert.Nil(t, summary.Score)
}

func TestRestartAndGoHome(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.createReadySession(t)

	_, err := f.svc.StartInterview(ctx, id, catalog.DomainEngineering, nil, nil)
	require.NoError(t, err)
	completeInterview(t, f, id)

	restarted, err := f.svc.Restart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.PhaseInterviewing, restarted.Phase)
	assert.Equal(t, 1, restarted.QuestionIndex)
	assert.Empty(t, restarted.QAHistory)
	assert.Equal(t, catalog.DomainEngineering, restarted.DomainId)

	home, err := f.svc.GoHome(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.PhaseDomainSelection, home.Phase)
	assert.Empty(t, home.DomainId)
	assert.Equal(t, "Ada", home.Profile[store.ProfileFieldName])
}
