package entity

import (
	"time"
)

// Document kinds stored in the vector collection.
const (
	DocumentKindResume  = "resume"
	DocumentKindJobDesc = "jobdesc"
	DocumentKindProfile = "profile"
)

// DocumentEmbedding is one ingested document for one user. Identity is
// (UserId, Kind); re-ingesting the same kind overwrites the prior entry.
type DocumentEmbedding struct {
	UserId         string
	Kind           string
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
