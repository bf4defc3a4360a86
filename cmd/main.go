package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/config"
	authHandler "booking-portal/internal/module/auth/handler"
	authRepositories "booking-portal/internal/module/auth/repositories"
	authUsecases "booking-portal/internal/module/auth/usecases"
	bookingHandler "booking-portal/internal/module/booking/handler"
	bookingRepositories "booking-portal/internal/module/booking/repositories"
	bookingUsecases "booking-portal/internal/module/booking/usecases"
	catalogHandler "booking-portal/internal/module/catalog/handler"
	catalogRepositories "booking-portal/internal/module/catalog/repositories"
	catalogUsecases "booking-portal/internal/module/catalog/usecases"
	ticketHandler "booking-portal/internal/module/ticket/handler"
	ticketRepositories "booking-portal/internal/module/ticket/repositories"
	ticketUsecases "booking-portal/internal/module/ticket/usecases"
	"booking-portal/internal/pkg/database"
	"booking-portal/internal/pkg/guard"
	"booking-portal/internal/pkg/http"
	"booking-portal/internal/pkg/httpclient"
	log_internal "booking-portal/internal/pkg/log"
	"booking-portal/internal/pkg/messagestream"
	"booking-portal/internal/pkg/middleware"
	"booking-portal/internal/pkg/redis"
	"booking-portal/internal/pkg/scheduler"
	"booking-portal/internal/pkg/session"
	router "booking-portal/internal/route"
)

type service struct {
	app            *fiber.App
	messageRouters []*message.Router
	bookingHandler *bookingHandler.BookingHandler
	scheduler      *scheduler.Scheduler
	// closers run in order on shutdown
	closers []func() error
}

func main() {
	cfg := config.InitConfig()
	logger := log_internal.Setup()
	ctx := context.Background()

	svc := initService(cfg, logger)

	for _, r := range svc.messageRouters {
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				logger.Ctx(ctx).Error(fmt.Sprintf("error run message router: %v", err))
			}
		}(r)
	}

	go svc.scheduler.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypePrefetchTicketPDF},
		[]func(ctx context.Context, t *asynq.Task) error{svc.bookingHandler.PrefetchTicketPDF},
	)
	go svc.scheduler.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)

	// start http server
	go http.StartHttpServer(svc.app, cfg.HttpServer.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Ctx(ctx).Info("shutting down")
	for _, c := range svc.closers {
		if err := c(); err != nil {
			logger.Ctx(ctx).Error(fmt.Sprintf("error shutdown: %v", err))
		}
	}
}

func initService(cfg *config.Config, logger *otelzap.Logger) *service {
	ctx := context.Background()

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)

	// init message stream
	amqp := messagestream.NewAmqp(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal(fmt.Sprintf("Failed to create subscriber: %v", err))
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal(fmt.Sprintf("Failed to create publisher: %v", err))
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)

	// init http clients: credential calls go out bare, everything else
	// carries the caller's session
	sessions := session.NewRedisStore(redisClient, cfg.Auth.SessionTTL)
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	authClient := httpclient.New(httpclient.InitHttpClient(&cfg.HttpClient, cb, nil), cfg.Backend.BaseURL)

	authRepo := authRepositories.New(logger, authClient)
	authUsecase := authUsecases.New(authRepo, sessions, logger, cfg.Auth, nil)

	manager := session.NewManager(sessions, authUsecase.Refresh)
	apiClient := httpclient.New(
		httpclient.InitHttpClient(&cfg.HttpClient, cb, session.NewTransport(nil, manager)),
		cfg.Backend.BaseURL,
	)

	validate := validator.New()

	bookingRepo := bookingRepositories.New(db, logger, apiClient, redisClient, cfg.Cache.PDFTTL)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher, asynqClient,
		guard.NewRedsync(redisClient, "guard", cfg.Checkout.GuardTTL),
		bookingUsecases.Options{
			Currency:         cfg.Backend.Currency,
			Location:         cfg.Venue.Location(),
			AttemptRetention: cfg.Checkout.AttemptRetention,
		},
	)

	ticketRepo := ticketRepositories.New(logger, apiClient)
	ticketUsecase := ticketUsecases.New(ticketRepo, logger, publisher, ticketUsecases.Options{
		DefaultGate: cfg.Scanner.DefaultGate,
		RearmDelay:  cfg.Scanner.RearmDelay,
	})

	catalogRepo := catalogRepositories.New(logger, apiClient, redisClient, cfg.Cache.CatalogTTL)
	catalogUsecase := catalogUsecases.New(catalogRepo, logger)

	handlers := router.Handlers{
		Auth: &authHandler.AuthHandler{
			Log:          logger,
			Usecase:      authUsecase,
			SessionTTL:   cfg.Auth.SessionTTL,
			CookieSecure: cfg.Auth.CookieSecure,
		},
		Booking: &bookingHandler.BookingHandler{
			Log:       logger,
			Validator: validate,
			Usecase:   bookingUsecase,
			Publish:   publisher,
		},
		Catalog: &catalogHandler.CatalogHandler{
			Log:       logger,
			Validator: validate,
			Usecase:   catalogUsecase,
		},
		Ticket: &ticketHandler.TicketHandler{
			Log:       logger,
			Validator: validate,
			Usecase:   ticketUsecase,
		},
	}

	m := &middleware.Middleware{
		Log:      logger,
		Sessions: sessions,
	}

	var messageRouters []*message.Router

	incidentRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "settlement_incident_handler",
		messagestream.TopicSettlementIncident, subscriber, handlers.Booking.ConsumeSettlementIncident)
	if err != nil {
		logger.Ctx(ctx).Error(fmt.Sprintf("Failed to create settlement_incident router: %v", err))
	} else {
		messageRouters = append(messageRouters, incidentRouter)
	}

	serverHttp := http.SetupHttpEngine()
	app := router.Initialize(serverHttp, handlers, m)

	closers := []func() error{
		func() error { return app.ShutdownWithTimeout(10 * time.Second) },
		func() error { bookingUsecase.Shutdown(); return nil },
	}
	for _, r := range messageRouters {
		closers = append(closers, r.Close)
	}
	closers = append(closers,
		asynqClient.Close,
		publisher.Close,
		subscriber.Close,
		db.Close,
		redisClient.Close,
	)

	return &service{
		app:            app,
		messageRouters: messageRouters,
		bookingHandler: handlers.Booking,
		scheduler:      sched,
		closers:        closers,
	}
}
