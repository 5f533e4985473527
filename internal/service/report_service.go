package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/repository/contract"
)

// IReportService exposes archived interview reports, including the
// plain-text rendering used for downloads.
type IReportService interface {
	GetAllByUser(ctx context.Context, userId string) ([]*dto.ReportListItemResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error)
	Render(ctx context.Context, id uuid.UUID) (string, error)
}

type reportService struct {
	reportRepo contract.InterviewReportRepository
}

func NewReportService(reportRepo contract.InterviewReportRepository) IReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) GetAllByUser(ctx context.Context, userId string) ([]*dto.ReportListItemResponse, error) {
	reports, err := s.reportRepo.FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReportListItemResponse, len(reports))
	for i, r := range reports {
		out[i] = &dto.ReportListItemResponse{
			Id:         r.Id,
			DomainId:   r.DomainId,
			FinalScore: r.FinalScore,
			CreatedAt:  r.CreatedAt,
		}
	}
	return out, nil
}

func (s *reportService) Show(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error) {
	report, err := s.reportRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, serverutils.NewNotFoundError("report not found")
	}

	qaHistory := make([]dto.QARecordDTO, len(report.QAHistory))
	for i, qa := range report.QAHistory {
		qaHistory[i] = dto.QARecordDTO{Question: qa.Question, Answer: qa.Answer}
	}

	return &dto.ReportResponse{
		Id:             report.Id,
		UserId:         report.UserId,
		DomainId:       report.DomainId,
		Summary:        report.Summary,
		FinalScore:     report.FinalScore,
		HeuristicScore: report.HeuristicScore,
		QAHistory:      qaHistory,
		CreatedAt:      report.CreatedAt,
	}, nil
}

// Render produces the downloadable text report: score line, narrative
// summary, then the numbered Q/A recap. A missing score renders as "?",
// never as zero.
func (s *reportService) Render(ctx context.Context, id uuid.UUID) (string, error) {
	report, err := s.reportRepo.FindOne(ctx, id)
	if err != nil {
		return "", err
	}
	if report == nil {
		return "", serverutils.NewNotFoundError("report not found")
	}

	scoreText := "?"
	if report.FinalScore != nil {
		scoreText = fmt.Sprintf("%d", *report.FinalScore)
	}

	var b strings.Builder
	b.WriteString("Mock Interview Report\n\n")
	b.WriteString(fmt.Sprintf("Score: %s / 100\n\n", scoreText))
	b.WriteString(report.Summary)
	b.WriteString("\n\n")
	for i, qa := range report.QAHistory {
		b.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, qa.Question))
		b.WriteString(fmt.Sprintf("A%d: %s\n\n", i+1, qa.Answer))
	}
	return b.String(), nil
}
