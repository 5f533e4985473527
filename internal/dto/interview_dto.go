package dto

import (
	"mock-interview-be/pkg/store"
)

type CreateSessionResponse struct {
	Id string `json:"id"`
}

type QARecordDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SessionStateResponse struct {
	Id             string            `json:"id"`
	Phase          string            `json:"phase"`
	DomainId       string            `json:"domain_id,omitempty"`
	DomainName     string            `json:"domain_name,omitempty"`
	QuestionIndex  int               `json:"question_index"`
	TotalQuestions int               `json:"total_questions"`
	Score          int               `json:"score"`
	Profile        map[string]string `json:"profile"`
	QAHistory      []QARecordDTO     `json:"qa_history"`
}

type UpdateProfileRequest struct {
	Fields map[string]string `json:"fields" validate:"required"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type QuestionResponse struct {
	Question       string `json:"question"`
	QuestionIndex  int    `json:"question_index"`
	TotalQuestions int    `json:"total_questions"`
}

type SummaryResponse struct {
	Summary        string `json:"summary"`
	ScoreFound     bool   `json:"score_found"`
	Score          *int   `json:"score"` // nil when no score statement was found
	HeuristicScore int    `json:"heuristic_score"`
}

// PublishInterviewCompletedMessage is the payload of the interview-completed
// topic consumed by the report archiver.
type PublishInterviewCompletedMessage struct {
	UserId         string        `json:"user_id"`
	DomainId       string        `json:"domain_id"`
	Summary        string        `json:"summary"`
	FinalScore     *int          `json:"final_score"`
	HeuristicScore int           `json:"heuristic_score"`
	QAHistory      []QARecordDTO `json:"qa_history"`
}

func ToQARecordDTOs(records []store.QARecord) []QARecordDTO {
	out := make([]QARecordDTO, len(records))
	for i, qa := range records {
		out[i] = QARecordDTO{Question: qa.Question, Answer: qa.Answer}
	}
	return out
}
