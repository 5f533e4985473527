package store

// Profile holds the user's self-description. The three named fields drive
// prompt assembly; any extra key/value pairs supplied by the client are kept
// as-is (last write wins per field).
type Profile map[string]string

const (
	ProfileFieldName       = "name"
	ProfileFieldBackground = "background"
	ProfileFieldGoals      = "goals"
)

func (p Profile) Name() string       { return p[ProfileFieldName] }
func (p Profile) Background() string { return p[ProfileFieldBackground] }
func (p Profile) Goals() string      { return p[ProfileFieldGoals] }

// Merge applies new field values over the existing ones.
func (p Profile) Merge(fields map[string]string) {
	for k, v := range fields {
		p[k] = v
	}
}

// IsEmpty reports whether every field is blank.
func (p Profile) IsEmpty() bool {
	for _, v := range p {
		if v != "" {
			return false
		}
	}
	return true
}

// QARecord pairs a template question with the candidate's verbatim answer.
// Records are append-only once stored on a session.
type QARecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Session represents the active interview session state in memory.
type Session struct {
	ID    string `json:"id"`
	Phase string `json:"phase"` // "DOMAIN_SELECTION" | "INTERVIEWING" | "SUMMARY"

	// DomainID is empty until the user picks a domain.
	DomainID string `json:"domain_id"`

	// QuestionIndex is 1-based and stays within [1, totalQuestions+1].
	QuestionIndex int `json:"question_index"`

	// QAHistory grows by one per answered question while interviewing.
	QAHistory []QARecord `json:"qa_history"`

	// Transcript is the running "\nQ: ...\nA: ..." concatenation fed back to
	// the generation service as conversational context. Redundant with
	// QAHistory but consumed verbatim by the prompt builder.
	Transcript string `json:"transcript"`

	// PendingQuestion caches the generated question currently shown to the
	// user. Non-nil only while interviewing with an unanswered question.
	PendingQuestion *string `json:"pending_question"`

	// Score is the accumulated per-turn heuristic (placeholder, not a
	// quality judgment).
	Score int `json:"score"`

	// ReportArchived is set after the completed interview was handed to the
	// report archiver; regenerating the summary must not archive twice.
	ReportArchived bool `json:"report_archived"`

	Profile Profile `json:"profile"`

	// Extracted document texts kept for prompt assembly after ingestion.
	ResumeText  string `json:"resume_text"`
	JobDescText string `json:"jobdesc_text"`
}

const (
	PhaseDomainSelection = "DOMAIN_SELECTION"
	PhaseInterviewing    = "INTERVIEWING"
	PhaseSummary         = "SUMMARY"
)

// NewSession returns a session in its initial state.
func NewSession(id string) *Session {
	return &Session{
		ID:            id,
		Phase:         PhaseDomainSelection,
		QuestionIndex: 1,
		Profile:       Profile{},
	}
}
