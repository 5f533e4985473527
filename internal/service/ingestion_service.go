package service

import (
	"context"
	"fmt"
	"strings"

	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/repository/contract"
	"mock-interview-be/pkg/embedding"
	"mock-interview-be/pkg/extract"
	"mock-interview-be/pkg/store"
)

// FilePayload is an uploaded document plus its declared mime type.
type FilePayload struct {
	Data     []byte
	MimeType string
}

// IngestResult carries the extracted texts back to the session for prompt
// assembly.
type IngestResult struct {
	ResumeText  string
	JobDescText string
	ProfileText string
}

// IIngestionService extracts, embeds, and stores a user's documents. It is
// the only writer of the vector store.
type IIngestionService interface {
	Ingest(ctx context.Context, userId string, resume, jobDesc *FilePayload, profile store.Profile) (*IngestResult, error)
}

type ingestionService struct {
	embeddingRepo     contract.DocumentEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewIngestionService(
	embeddingRepo contract.DocumentEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
	sysLogger logger.ILogger,
) IIngestionService {
	return &ingestionService{
		embeddingRepo:     embeddingRepo,
		embeddingProvider: embeddingProvider,
		logger:            sysLogger,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, userId string, resume, jobDesc *FilePayload, profile store.Profile) (*IngestResult, error) {
	result := &IngestResult{
		ResumeText:  extractPayload(resume),
		JobDescText: extractPayload(jobDesc),
		ProfileText: fmt.Sprintf("Name: %s\nBackground: %s\nGoals: %s", profile.Name(), profile.Background(), profile.Goals()),
	}

	// All non-blank texts of one ingestion are encoded together in a single
	// batched call.
	var documents []string
	var kinds []string
	appendDoc := func(kind, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		documents = append(documents, text)
		kinds = append(kinds, kind)
	}
	appendDoc(entity.DocumentKindResume, result.ResumeText)
	appendDoc(entity.DocumentKindJobDesc, result.JobDescText)
	appendDoc(entity.DocumentKindProfile, result.ProfileText)

	if len(documents) == 0 {
		return result, nil
	}

	vectors, err := s.embeddingProvider.GenerateBatch(documents, embedding.TaskTypeDocument)
	if err != nil {
		return nil, serverutils.NewExternalServiceError("embedding", err)
	}

	for i, doc := range documents {
		docEmbedding := entity.DocumentEmbedding{
			UserId:         userId,
			Kind:           kinds[i],
			Document:       doc,
			EmbeddingValue: vectors[i],
		}
		if err := s.embeddingRepo.Upsert(ctx, &docEmbedding); err != nil {
			return nil, serverutils.NewExternalServiceError("vector store", err)
		}
	}

	s.logger.Info("ingestion", "documents ingested", map[string]interface{}{
		"user_id": userId,
		"kinds":   kinds,
	})
	return result, nil
}

func extractPayload(payload *FilePayload) string {
	if payload == nil {
		return ""
	}
	return extract.Text(payload.Data, payload.MimeType)
}
