package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/mapper"
	"mock-interview-be/internal/model"
	"mock-interview-be/internal/repository/contract"
)

type InterviewReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewReportMapper
}

func NewInterviewReportRepository(db *gorm.DB) contract.InterviewReportRepository {
	return &InterviewReportRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewReportMapper(),
	}
}

func (r *InterviewReportRepositoryImpl) Create(ctx context.Context, report *entity.InterviewReport) error {
	m, err := r.mapper.ToModel(report)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*report = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterviewReportRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.InterviewReport, error) {
	var m model.InterviewReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterviewReportRepositoryImpl) FindAllByUser(ctx context.Context, userId string) ([]*entity.InterviewReport, error) {
	var models []*model.InterviewReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
