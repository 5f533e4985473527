package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/pkg/logger"
)

type fakeReportRepo struct {
	mu      sync.Mutex
	reports []*entity.InterviewReport
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.InterviewReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *report
	r.reports = append(r.reports, &copied)
	return nil
}

func (r *fakeReportRepo) FindOne(ctx context.Context, id uuid.UUID) (*entity.InterviewReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if report.Id == id {
			return report, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) FindAllByUser(ctx context.Context, userId string) ([]*entity.InterviewReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.InterviewReport
	for _, report := range r.reports {
		if report.UserId == userId {
			out = append(out, report)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

func TestConsumerArchivesCompletedInterview(t *testing.T) {
	const topic = "INTERVIEW_COMPLETED_TEST"

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	repo := &fakeReportRepo{}
	consumer := NewConsumerService(pubSub, topic, repo, logger.NewNopLogger())
	publisher := NewPublisherService(topic, pubSub)

	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	finalScore := 82
	payload := dto.PublishInterviewCompletedMessage{
		UserId:         "sess-1",
		DomainId:       "engineering",
		Summary:        "Strong candidate. Score: 82/100",
		FinalScore:     &finalScore,
		HeuristicScore: 10,
		QAHistory: []dto.QARecordDTO{
			{Question: "Q one?", Answer: "A one."},
		},
	}
	payloadJson, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payloadJson))

	require.Eventually(t, func() bool {
		return repo.count() == 1
	}, 2*time.Second, 10*time.Millisecond, "report was never archived")

	reports, err := repo.FindAllByUser(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "engineering", report.DomainId)
	require.NotNil(t, report.FinalScore)
	assert.Equal(t, 82, *report.FinalScore)
	assert.Equal(t, 10, report.HeuristicScore)
	require.Len(t, report.QAHistory, 1)
	assert.Equal(t, "Q one?", report.QAHistory[0].Question)
}

func TestConsumerAcksMalformedMessage(t *testing.T) {
	const topic = "INTERVIEW_COMPLETED_MALFORMED"

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	repo := &fakeReportRepo{}
	consumer := NewConsumerService(pubSub, topic, repo, logger.NewNopLogger())
	publisher := NewPublisherService(topic, pubSub)

	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, publisher.Publish(ctx, []byte("not json")))

	// Malformed payloads are dropped, not retried forever.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, repo.count())
}
