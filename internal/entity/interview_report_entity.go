package entity

import (
	"time"

	"github.com/google/uuid"

	"mock-interview-be/pkg/store"
)

// InterviewReport is the archived outcome of one completed interview.
// FinalScore is nil when the summary text carried no parsable score.
type InterviewReport struct {
	Id             uuid.UUID
	UserId         string
	DomainId       string
	Summary        string
	FinalScore     *int
	HeuristicScore int
	QAHistory      []store.QARecord
	CreatedAt      time.Time
}
