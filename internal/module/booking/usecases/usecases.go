package usecases

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/models/response"
	"booking-portal/internal/module/booking/repositories"
	"booking-portal/internal/pkg/guard"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Options struct {
	Currency         string
	Location         *time.Location
	AttemptRetention time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type usecase struct {
	repo        repositories.Repositories
	log         *otelzap.Logger
	publish     message.Publisher
	scheduler   Enqueuer
	guard       guard.Guard
	validate    *validator.Validate
	coordinator *Coordinator
	attempts    *attempts
	opts        Options
}

type Usecase interface {
	// http
	StartCheckout(ctx context.Context, req *request.Checkout) (response.Attempt, error)
	GetAttempt(ctx context.Context, attemptID string) (response.Attempt, error)
	CompleteCheckout(ctx context.Context, attemptID string, payment *entity.SignedPaymentResult) error
	DismissCheckout(ctx context.Context, attemptID string) error
	FindBooking(ctx context.Context, bookingID string) (entity.BookingResult, error)
	RescheduleBooking(ctx context.Context, bookingID string, req *request.Reschedule) (entity.BookingResult, error)
	DownloadTickets(ctx context.Context, bookingID string) ([]byte, error)
	DownloadCheckoutTickets(ctx context.Context, attemptID string) (string, []byte, error)
	// scheduler
	PrefetchTicketPDF(ctx context.Context, req *request.PrefetchTickets) error
	// message stream
	RecordIncident(ctx context.Context, req *request.SettlementIncident) error
	// Shutdown resolves every open checkout so their attempts can finish.
	Shutdown()
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, scheduler Enqueuer, g guard.Guard, opts Options) Usecase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Currency == "" {
		opts.Currency = "INR"
	}

	return &usecase{
		repo:        repo,
		log:         log,
		publish:     publish,
		scheduler:   scheduler,
		guard:       g,
		validate:    validator.New(),
		coordinator: NewCoordinator(),
		attempts:    newAttempts(opts.AttemptRetention),
		opts:        opts,
	}
}

func (u *usecase) Shutdown() {
	u.coordinator.Close()
}
