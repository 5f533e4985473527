package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"mock-interview-be/internal/config"
	"mock-interview-be/internal/controller"
	"mock-interview-be/internal/pkg/logger"
	"mock-interview-be/internal/repository/implementation"
	"mock-interview-be/internal/repository/memory"
	"mock-interview-be/internal/service"
	"mock-interview-be/pkg/embedding"
	"mock-interview-be/pkg/embedding/jina"
	"mock-interview-be/pkg/interview/session"
	"mock-interview-be/pkg/interview/state"
	llmFactory "mock-interview-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	DomainController    controller.IDomainController
	InterviewController controller.IInterviewController
	ReportController    controller.IReportController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	case "jina":
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := llmFactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Repositories
	embeddingRepo := implementation.NewDocumentEmbeddingRepository(db)
	reportRepo := implementation.NewInterviewReportRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.CompletionTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.CompletionTopic,
		reportRepo,
		sysLogger,
	)

	ingestionService := service.NewIngestionService(
		embeddingRepo,
		embeddingProvider,
		sysLogger,
	)

	interviewService := service.NewInterviewService(
		session.NewManager(sessionRepo),
		state.NewManager(sysLogger),
		ingestionService,
		llmProvider,
		publisherService,
		sysLogger,
	)

	reportService := service.NewReportService(reportRepo)

	// 6. Controllers
	return &Container{
		DomainController:    controller.NewDomainController(),
		InterviewController: controller.NewInterviewController(interviewService),
		ReportController:    controller.NewReportController(reportService),

		ConsumerService: consumerService,
	}
}
