package service

import (
	"context"
	"encoding/json"

	"mock-interview-be/internal/catalog"
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/pkg/interview/prompt"
	"mock-interview-be/pkg/interview/score"
	"mock-interview-be/pkg/interview/session"
	"mock-interview-be/pkg/interview/state"
	"mock-interview-be/pkg/llm"
	"mock-interview-be/pkg/store"
)

// IInterviewService drives the interview flow: domain selection, adaptive
// question generation, answer bookkeeping, and the final scored summary.
type IInterviewService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	UpdateProfile(ctx context.Context, sessionID string, req *dto.UpdateProfileRequest) (*dto.SessionStateResponse, error)
	StartInterview(ctx context.Context, sessionID, domainID string, resume, jobDesc *FilePayload) (*dto.SessionStateResponse, error)
	GetQuestion(ctx context.Context, sessionID string) (*dto.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SessionStateResponse, error)
	GetSummary(ctx context.Context, sessionID string) (*dto.SummaryResponse, error)
	Restart(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	GoHome(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
}

type interviewService struct {
	sessionManager   *session.Manager
	stateManager     *state.Manager
	ingestionService IIngestionService
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewInterviewService(
	sessionManager *session.Manager,
	stateManager *state.Manager,
	ingestionService IIngestionService,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IInterviewService {
	return &interviewService{
		sessionManager:   sessionManager,
		stateManager:     stateManager,
		ingestionService: ingestionService,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (s *interviewService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sess := s.sessionManager.Create()
	s.logger.Info("interview", "session created", map[string]interface{}{
		"session_id": sess.ID,
	})
	return &dto.CreateSessionResponse{Id: sess.ID}, nil
}

func (s *interviewService) GetSession(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	return sessionState(sess), nil
}

func (s *interviewService) UpdateProfile(ctx context.Context, sessionID string, req *dto.UpdateProfileRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Profile.Merge(req.Fields)
	s.sessionManager.Save(sess)
	return sessionState(sess), nil
}

func (s *interviewService) StartInterview(ctx context.Context, sessionID, domainID string, resume, jobDesc *FilePayload) (*dto.SessionStateResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	// All preconditions run ahead of ingestion: a rejected start must leave
	// no trace in the vector store.
	if err := s.stateManager.EnsureCanStart(sess); err != nil {
		return nil, err
	}
	if _, err := catalog.Get(domainID); err != nil {
		return nil, err
	}

	// Ingestion runs before the transition: a failing embed or store call
	// fails the whole action and the session stays in domain selection.
	ingested, err := s.ingestionService.Ingest(ctx, sess.ID, resume, jobDesc, sess.Profile)
	if err != nil {
		return nil, err
	}

	if err := s.stateManager.StartInterview(sess, domainID); err != nil {
		return nil, err
	}
	sess.ResumeText = ingested.ResumeText
	sess.JobDescText = ingested.JobDescText
	s.sessionManager.Save(sess)

	return sessionState(sess), nil
}

func (s *interviewService) GetQuestion(ctx context.Context, sessionID string) (*dto.QuestionResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != store.PhaseInterviewing {
		return nil, serverutils.NewValidationError("no interview in progress")
	}
	domain, err := s.sessionDomain(sess)
	if err != nil {
		return nil, err
	}

	if sess.PendingQuestion != nil {
		return questionResponse(sess, *sess.PendingQuestion), nil
	}

	questionPrompt := prompt.NewQuestionBuilder(
		domain,
		sess.Profile,
		sess.ResumeText,
		sess.JobDescText,
		sess.Transcript,
		sess.QuestionIndex,
	).Build()

	generated, err := s.llmProvider.Generate(ctx, questionPrompt, llm.WithTemperature(0.7))
	if err != nil {
		return nil, serverutils.NewExternalServiceError("generation", err)
	}

	s.stateManager.CachePendingQuestion(sess, generated)
	s.sessionManager.Save(sess)

	return questionResponse(sess, generated), nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SessionStateResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	domain, err := s.sessionDomain(sess)
	if err != nil {
		return nil, err
	}

	// The record always stores the template question, not the possibly
	// rephrased wording shown to the user.
	templateQuestion := ""
	if sess.QuestionIndex >= 1 && sess.QuestionIndex <= len(domain.Questions) {
		templateQuestion = domain.Questions[sess.QuestionIndex-1]
	}

	if err := s.stateManager.SubmitAnswer(sess, templateQuestion, req.Answer, catalog.TotalQuestions); err != nil {
		return nil, err
	}
	s.sessionManager.Save(sess)

	return sessionState(sess), nil
}

func (s *interviewService) GetSummary(ctx context.Context, sessionID string) (*dto.SummaryResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != store.PhaseSummary {
		return nil, serverutils.NewValidationError("the interview is not finished yet")
	}
	domain, err := s.sessionDomain(sess)
	if err != nil {
		return nil, err
	}

	summaryPrompt := prompt.NewSummaryBuilder(domain, sess.QAHistory, sess.Profile, sess.Score).Build()
	summary, err := s.llmProvider.Generate(ctx, summaryPrompt)
	if err != nil {
		return nil, serverutils.NewExternalServiceError("generation", err)
	}

	parsed := score.Extract(summary)
	var finalScore *int
	if parsed.Found {
		v := parsed.Value
		finalScore = &v
	}

	// Regenerating the summary on a refresh is fine; archiving it twice is
	// not. Only the first successful hand-off marks the session archived.
	if !sess.ReportArchived {
		if err := s.publishCompleted(ctx, sess, summary, finalScore); err == nil {
			sess.ReportArchived = true
			s.sessionManager.Save(sess)
		}
	}

	return &dto.SummaryResponse{
		Summary:        summary,
		ScoreFound:     parsed.Found,
		Score:          finalScore,
		HeuristicScore: sess.Score,
	}, nil
}

func (s *interviewService) Restart(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	s.stateManager.Restart(sess)
	s.sessionManager.Save(sess)
	return sessionState(sess), nil
}

func (s *interviewService) GoHome(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	sess, err := s.sessionManager.Find(sessionID)
	if err != nil {
		return nil, err
	}
	s.stateManager.GoHome(sess)
	s.sessionManager.Save(sess)
	return sessionState(sess), nil
}

// sessionDomain resolves the session's domain. A session pointing at an
// unregistered domain cannot be reached through normal transitions, but if
// it happens the user gets a go-home hint instead of a crash.
func (s *interviewService) sessionDomain(sess *store.Session) (*catalog.DomainTemplate, error) {
	domain, err := catalog.Get(sess.DomainID)
	if err != nil {
		return nil, serverutils.NewValidationError("interview domain is not set; return home and select a domain")
	}
	return domain, nil
}

// publishCompleted hands the finished interview to the report archiver. The
// summary was already produced, so a publish failure is logged instead of
// failing the user's action; the caller retries the hand-off on the next
// summary request.
func (s *interviewService) publishCompleted(ctx context.Context, sess *store.Session, summary string, finalScore *int) error {
	payload := dto.PublishInterviewCompletedMessage{
		UserId:         sess.ID,
		DomainId:       sess.DomainID,
		Summary:        summary,
		FinalScore:     finalScore,
		HeuristicScore: sess.Score,
		QAHistory:      dto.ToQARecordDTOs(sess.QAHistory),
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("interview", "failed to marshal interview-completed payload", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		s.logger.Warn("interview", "failed to publish interview-completed event", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sess.ID,
		})
		return err
	}
	return nil
}

func sessionState(sess *store.Session) *dto.SessionStateResponse {
	domainName := ""
	if sess.DomainID != "" {
		if domain, err := catalog.Get(sess.DomainID); err == nil {
			domainName = domain.DisplayName
		}
	}
	return &dto.SessionStateResponse{
		Id:             sess.ID,
		Phase:          sess.Phase,
		DomainId:       sess.DomainID,
		DomainName:     domainName,
		QuestionIndex:  sess.QuestionIndex,
		TotalQuestions: catalog.TotalQuestions,
		Score:          sess.Score,
		Profile:        sess.Profile,
		QAHistory:      dto.ToQARecordDTOs(sess.QAHistory),
	}
}

func questionResponse(sess *store.Session, question string) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		Question:       question,
		QuestionIndex:  sess.QuestionIndex,
		TotalQuestions: catalog.TotalQuestions,
	}
}
