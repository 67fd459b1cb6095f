package bootstrap

import (
	"log"
	"time"

	"ai-litepaper-be/internal/config"
	"ai-litepaper-be/internal/controller"
	"ai-litepaper-be/internal/pkg/logger"
	"ai-litepaper-be/internal/repository/contract"
	"ai-litepaper-be/internal/repository/implementation"
	"ai-litepaper-be/internal/repository/memory"
	"ai-litepaper-be/internal/service"
	"ai-litepaper-be/pkg/document"
	"ai-litepaper-be/pkg/intake"
	"ai-litepaper-be/pkg/llm/factory"
	"ai-litepaper-be/pkg/objectstore"
	"ai-litepaper-be/pkg/pdfengine"
	"ai-litepaper-be/pkg/synthesis"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LitepaperController controller.ILitepaperController
	ChatbotController   controller.IChatbotController
	ObjectController    controller.IObjectController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires every dependency. db may be nil when the memory driver
// is configured.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OpenAIBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	pdfEngine := pdfengine.NewChromeEngine(
		cfg.Pdf.ChromePath,
		time.Duration(cfg.Pdf.TimeoutSeconds)*time.Second,
	)

	// 4. Repositories
	var litepaperRepo contract.LitepaperRepository
	if cfg.Database.Driver == "postgres" && db != nil {
		litepaperRepo = implementation.NewLitepaperRepository(db)
		log.Printf("[INFO] Using Litepaper Repository: POSTGRES")
	} else {
		litepaperRepo = memory.NewLitepaperRepository()
		log.Printf("[INFO] Using Litepaper Repository: MEMORY")
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.GeneratedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.GeneratedTopic, eventLogger)

	litepaperService := service.NewLitepaperService(
		litepaperRepo,
		synthesis.NewGenerator(llmProvider),
		document.NewRenderer(pdfEngine),
		publisherService,
		sysLogger,
	)

	chatbotService := service.NewChatbotService(
		intake.NewKeywordPolicy(),
		intake.NewExtractor(llmProvider),
		litepaperService,
		sysLogger,
	)

	objectService := service.NewObjectService(
		objectstore.NewLocalObjectStorage(cfg.App.BaseURL, cfg.Storage.UploadDir),
	)

	// 6. Controllers
	return &Container{
		LitepaperController: controller.NewLitepaperController(litepaperService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
		ObjectController:    controller.NewObjectController(objectService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
