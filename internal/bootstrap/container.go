// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"

	"ai-videosummary-be/internal/config"
	"ai-videosummary-be/internal/controller"
	"ai-videosummary-be/internal/handler"
	"ai-videosummary-be/internal/pkg/logger"
	"ai-videosummary-be/internal/pkg/mailer"
	"ai-videosummary-be/internal/repository/contract"
	"ai-videosummary-be/internal/repository/implementation"
	"ai-videosummary-be/internal/repository/unitofwork"
	"ai-videosummary-be/internal/service"
	"ai-videosummary-be/internal/websocket"
	"ai-videosummary-be/pkg/summarizer"
	"ai-videosummary-be/pkg/videometa"

	pktNats "ai-videosummary-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	SummaryController controller.ISummaryController
	PaymentController controller.IPaymentController
	AdminController   controller.IAdminController

	// WebSocket upgrade endpoint
	PushHandler *handler.PushHandler

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Session manager, exposed so main can restore the slot before serving.
	SessionService service.ISessionService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// Session slot
	var sessionStore contract.SessionStore
	if cfg.Session.Backend == "redis" && rdb != nil {
		sessionStore = implementation.NewRedisSessionStore(rdb)
		log.Printf("[INFO] Session slot: REDIS")
	} else {
		sessionStore = implementation.NewFileSessionStore(cfg.Session.FilePath)
		log.Printf("[INFO] Session slot: FILE (%s)", cfg.Session.FilePath)
	}

	// External collaborators
	var resolver videometa.Resolver
	if cfg.Ai.Resolver == "mock" {
		resolver = &videometa.MockResolver{}
		log.Printf("[INFO] Video resolver: MOCK")
	} else {
		resolver = videometa.NewOEmbedResolver()
		log.Printf("[INFO] Video resolver: OEMBED")
	}

	var generator summarizer.Generator
	if cfg.Ai.Generator == "mock" {
		generator = &summarizer.MockGenerator{}
		log.Printf("[INFO] Summary generator: MOCK")
	} else {
		generator = summarizer.NewOllamaGenerator(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Summary generator: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// WebSocket hub
	wsLogger := logger.NewZapLogger("logs/push.log", cfg.App.Environment == "production")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	sessionService := service.NewSessionService(uowFactory, sessionStore, emailService, natsPub)
	recorder := service.NewUsageRecorder(sessionService)

	publisherService := service.NewPublisherService(cfg.App.PushTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.PushTopic, wsHub)

	summarizerService := service.NewSummarizerService(
		sessionService,
		uowFactory,
		resolver,
		generator,
		recorder,
		publisherService,
		natsPub,
	)
	userService := service.NewUserService(sessionService)
	paymentService := service.NewPaymentService(sessionService, uowFactory, emailService, natsPub)
	adminService := service.NewAdminService(uowFactory)

	notifService := service.NewNotificationService(natsSub, wsHub, sysLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(sessionService),
		UserController:    controller.NewUserController(userService),
		SummaryController: controller.NewSummaryController(summarizerService, wsHub),
		PaymentController: controller.NewPaymentController(paymentService),
		AdminController:   controller.NewAdminController(adminService),

		PushHandler: handler.NewPushHandler(wsHub, wsLogger),

		ConsumerService: consumerService,
		SessionService:  sessionService,
		WebSocketHub:    wsHub,
	}
}
