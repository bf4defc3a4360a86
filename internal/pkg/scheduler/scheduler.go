package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/config"
)

const (
	TypePrefetchTicketPDF = "prefetch_ticket_pdf"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		s.Log.Ctx(context.Background()).Error(fmt.Sprintf("error start monitoring scheduler: %v", err))
	}
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Ctx(context.Background()).Error(fmt.Sprintf("error start handler scheduler: %v", err))
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
