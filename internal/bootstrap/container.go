package bootstrap

import (
	"context"
	"log"

	"gorlea-notes-be/internal/config"
	"gorlea-notes-be/internal/controller"
	"gorlea-notes-be/internal/pkg/logger"
	"gorlea-notes-be/internal/repository/contract"
	"gorlea-notes-be/internal/repository/memory"
	"gorlea-notes-be/internal/repository/redisstore"
	"gorlea-notes-be/internal/repository/unitofwork"
	"gorlea-notes-be/internal/service"
	"gorlea-notes-be/pkg/rewrite/factory"

	pktNats "gorlea-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	DocumentController  controller.IDocumentController
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS (best-effort; documents still save when the bus is down)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("bootstrap", "failed to connect to NATS publisher", map[string]interface{}{"error": err.Error()})
	}

	// Conversation state store
	var conversationRepo contract.ConversationRepository
	if cfg.App.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("bootstrap", "failed to parse Redis URL, using it as a direct address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			sysLogger.Warn("bootstrap", "failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
		conversationRepo = redisstore.NewConversationRepository(rdb)
		sysLogger.Info("bootstrap", "using conversation store", map[string]interface{}{"store": "redis"})
	} else {
		conversationRepo = memory.NewConversationRepository()
		sysLogger.Info("bootstrap", "using conversation store", map[string]interface{}{"store": "memory"})
	}

	// Rewrite provider
	rewriteProvider, err := factory.NewRewriteProvider(
		cfg.Ai.RewriteProvider,
		cfg.Ai.GeminiAPIKey,
		rewriteModelFor(cfg),
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Rewrite Provider: %v", err)
	}
	sysLogger.Info("bootstrap", "using rewrite provider", map[string]interface{}{"provider": cfg.Ai.RewriteProvider})

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.PreviewTopic, pubSub)
	consumerService := service.NewPreviewConsumerService(
		pubSub,
		cfg.App.PreviewTopic,
		uowFactory,
		sysLogger,
	)

	documentService := service.NewDocumentService(uowFactory, publisherService, natsPub, sysLogger)
	assistantService := service.NewAssistantService(rewriteProvider, documentService, conversationRepo, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService),
		DocumentController:  controller.NewDocumentController(documentService),
		AssistantController: controller.NewAssistantController(assistantService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}

func rewriteModelFor(cfg *config.Config) string {
	if cfg.Ai.RewriteProvider == "ollama" {
		return cfg.Ai.OllamaModel
	}
	return cfg.Ai.GeminiModel
}
