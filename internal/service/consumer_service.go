package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/repository/contract"
	"mock-interview-be/pkg/store"
)

// IConsumerService archives completed interviews: it consumes the
// interview-completed topic and persists one report row per message.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	reportRepo contract.InterviewReportRepository
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	reportRepo contract.InterviewReportRepository,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		reportRepo: reportRepo,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishInterviewCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal interview-completed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	qaHistory := make([]store.QARecord, len(payload.QAHistory))
	for i, qa := range payload.QAHistory {
		qaHistory[i] = store.QARecord{Question: qa.Question, Answer: qa.Answer}
	}

	report := entity.InterviewReport{
		Id:             uuid.New(),
		UserId:         payload.UserId,
		DomainId:       payload.DomainId,
		Summary:        payload.Summary,
		FinalScore:     payload.FinalScore,
		HeuristicScore: payload.HeuristicScore,
		QAHistory:      qaHistory,
		CreatedAt:      time.Now(),
	}

	if err := cs.reportRepo.Create(ctx, &report); err != nil {
		cs.logger.Error("consumer", "failed to archive interview report", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserId,
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	cs.logger.Info("consumer", "interview report archived", map[string]interface{}{
		"report_id": report.Id,
		"user_id":   payload.UserId,
		"domain_id": payload.DomainId,
	})
	msg.Ack()
}
