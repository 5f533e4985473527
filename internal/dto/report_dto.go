package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReportListItemResponse struct {
	Id         uuid.UUID `json:"id"`
	DomainId   string    `json:"domain_id"`
	FinalScore *int      `json:"final_score"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReportResponse struct {
	Id             uuid.UUID     `json:"id"`
	UserId         string        `json:"user_id"`
	DomainId       string        `json:"domain_id"`
	Summary        string        `json:"summary"`
	FinalScore     *int          `json:"final_score"`
	HeuristicScore int           `json:"heuristic_score"`
	QAHistory      []QARecordDTO `json:"qa_history"`
	CreatedAt      time.Time     `json:"created_at"`
}
