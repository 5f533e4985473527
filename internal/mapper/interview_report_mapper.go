package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/model"
	"mock-interview-be/pkg/store"
)

type InterviewReportMapper struct{}

func NewInterviewReportMapper() *InterviewReportMapper {
	return &InterviewReportMapper{}
}

func (m *InterviewReportMapper) ToEntity(r *model.InterviewReport) *entity.InterviewReport {
	if r == nil {
		return nil
	}

	var qaHistory []store.QARecord
	if len(r.QAHistory) > 0 {
		// A row written by this service always unmarshals; tolerate hand
		// edits by leaving the recap empty.
		_ = json.Unmarshal(r.QAHistory, &qaHistory)
	}

	return &entity.InterviewReport{
		Id:             r.Id,
		UserId:         r.UserId,
		DomainId:       r.DomainId,
		Summary:        r.Summary,
		FinalScore:     r.FinalScore,
		HeuristicScore: r.HeuristicScore,
		QAHistory:      qaHistory,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *InterviewReportMapper) ToModel(r *entity.InterviewReport) (*model.InterviewReport, error) {
	if r == nil {
		return nil, nil
	}

	qaJson, err := json.Marshal(r.QAHistory)
	if err != nil {
		return nil, err
	}

	return &model.InterviewReport{
		Id:             r.Id,
		UserId:         r.UserId,
		DomainId:       r.DomainId,
		Summary:        r.Summary,
		FinalScore:     r.FinalScore,
		HeuristicScore: r.HeuristicScore,
		QAHistory:      datatypes.JSON(qaJson),
		CreatedAt:      r.CreatedAt,
	}, nil
}

func (m *InterviewReportMapper) ToEntities(reports []*model.InterviewReport) []*entity.InterviewReport {
	entities := make([]*entity.InterviewReport, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
