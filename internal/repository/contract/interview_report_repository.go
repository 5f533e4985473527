package contract

import (
	"context"

	"github.com/google/uuid"

	"mock-interview-be/internal/entity"
)

type InterviewReportRepository interface {
	Create(ctx context.Context, report *entity.InterviewReport) error
	FindOne(ctx context.Context, id uuid.UUID) (*entity.InterviewReport, error)
	FindAllByUser(ctx context.Context, userId string) ([]*entity.InterviewReport, error)
}
