package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InterviewReport struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         string         `gorm:"type:varchar(64);not null;index"`
	DomainId       string         `gorm:"type:varchar(32);not null"`
	Summary        string         `gorm:"type:text"`
	FinalScore     *int           // nil when no score statement was found
	HeuristicScore int            `gorm:"default:0"`
	QAHistory      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (InterviewReport) TableName() string {
	return "interview_reports"
}
