package bootstrap

import (
	"log"

	"ai-medtutor-be/internal/config"
	"ai-medtutor-be/internal/controller"
	"ai-medtutor-be/internal/pkg/logger"
	"ai-medtutor-be/internal/repository/memory"
	"ai-medtutor-be/internal/repository/unitofwork"
	"ai-medtutor-be/internal/service"
	"ai-medtutor-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TutorController     controller.ITutorController
	FlashcardController controller.IFlashcardController
	CaseController      controller.ICaseController
	ProgressController  controller.IProgressController
	AdminController     controller.IAdminController

	// Background services (exposed for main.go to run)
	RecorderService service.IRecorderService

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. In-memory session storage
	caseSessions := memory.NewCaseSessionRepository()
	reviewGate := memory.NewReviewGateRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.RecordsTopicName, pubSub)
	recorderService := service.NewRecorderService(pubSub, cfg.App.RecordsTopicName, uowFactory, sysLogger)

	voiceService := service.NewVoiceService(uowFactory, llmProvider, publisherService, sysLogger, cfg.Ai.TutorPersona)
	flashcardService := service.NewFlashcardService(uowFactory, reviewGate, publisherService, sysLogger)
	caseService := service.NewCaseService(uowFactory, caseSessions, publisherService, sysLogger)
	contentService := service.NewContentService(uowFactory)
	promptService := service.NewPromptService(uowFactory)
	progressService := service.NewProgressService(uowFactory)

	// 6. Controllers
	return &Container{
		TutorController:     controller.NewTutorController(voiceService),
		FlashcardController: controller.NewFlashcardController(flashcardService),
		CaseController:      controller.NewCaseController(caseService),
		ProgressController:  controller.NewProgressController(progressService),
		AdminController:     controller.NewAdminController(contentService, promptService, cfg.App.AdminEmails),
		RecorderService:     recorderService,
		Logger:              sysLogger,
	}
}
