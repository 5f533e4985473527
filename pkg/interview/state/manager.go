package state

import (
	"strings"

	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/pkg/interview/score"
	"mock-interview-be/pkg/store"
)

// Manager applies session state transitions. Every transition either mutates
// the session into a consistent next state or returns a ValidationError and
// leaves the session untouched.
type Manager struct {
	logger logger.ILogger
}

func NewManager(l logger.ILogger) *Manager {
	return &Manager{logger: l}
}

// EnsureCanStart checks the preconditions for leaving domain selection: the
// session must still be there, and the profile needs a non-blank name and
// background. Callers with side effects (ingestion) run this before them so
// a rejected start stays a true no-op.
func (m *Manager) EnsureCanStart(session *store.Session) error {
	if session.Phase != store.PhaseDomainSelection {
		return serverutils.NewValidationError("an interview is already in progress; go home first")
	}
	if strings.TrimSpace(session.Profile.Name()) == "" || strings.TrimSpace(session.Profile.Background()) == "" {
		return serverutils.NewValidationError("name and background are required before starting an interview")
	}
	return nil
}

// StartInterview moves DOMAIN_SELECTION -> INTERVIEWING. With the
// preconditions unmet the action is rejected and the session stays where it
// was.
func (m *Manager) StartInterview(session *store.Session, domainID string) error {
	if err := m.EnsureCanStart(session); err != nil {
		return err
	}

	session.DomainID = domainID
	session.Phase = store.PhaseInterviewing
	session.QuestionIndex = 1
	session.QAHistory = nil
	session.Transcript = ""
	session.PendingQuestion = nil
	session.Score = 0
	session.ReportArchived = false

	m.logger.Info("state", "interview started", map[string]interface{}{
		"session_id": session.ID,
		"domain_id":  domainID,
	})
	return nil
}

// CachePendingQuestion stores the generated question for the current index.
func (m *Manager) CachePendingQuestion(session *store.Session, question string) {
	session.PendingQuestion = &question
}

// SubmitAnswer records the template question with the candidate's verbatim
// answer, accumulates the heuristic score, and advances the index. Answering
// the last question moves the session to SUMMARY. Blank answers are rejected
// with no state change.
func (m *Manager) SubmitAnswer(session *store.Session, templateQuestion, answer string, totalQuestions int) error {
	if session.Phase != store.PhaseInterviewing {
		return serverutils.NewValidationError("no interview in progress")
	}
	if strings.TrimSpace(answer) == "" {
		return serverutils.NewValidationError("please provide an answer")
	}

	session.QAHistory = append(session.QAHistory, store.QARecord{
		Question: templateQuestion,
		Answer:   answer,
	})
	session.Transcript += "\nQ: " + templateQuestion + "\nA: " + answer
	session.Score += score.Heuristic(answer)
	session.PendingQuestion = nil

	if session.QuestionIndex >= totalQuestions {
		session.Phase = store.PhaseSummary
		m.logger.Info("state", "interview completed", map[string]interface{}{
			"session_id": session.ID,
			"answers":    len(session.QAHistory),
		})
		return nil
	}

	session.QuestionIndex++
	return nil
}

// Restart puts the session back at question 1 of the current domain.
func (m *Manager) Restart(session *store.Session) {
	session.Phase = store.PhaseInterviewing
	session.QuestionIndex = 1
	session.QAHistory = nil
	session.Transcript = ""
	session.PendingQuestion = nil
	session.Score = 0
	session.ReportArchived = false
	m.logger.Info("state", "interview restarted", map[string]interface{}{
		"session_id": session.ID,
	})
}

// GoHome resets everything Restart does and additionally clears the chosen
// domain, returning to DOMAIN_SELECTION. Profile and extracted document
// texts survive so the user does not re-enter them.
func (m *Manager) GoHome(session *store.Session) {
	m.Restart(session)
	session.DomainID = ""
	session.Phase = store.PhaseDomainSelection
}
