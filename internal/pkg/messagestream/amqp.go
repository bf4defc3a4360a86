package messagestream

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"booking-portal/config"
)

const (
	TopicBookingConfirmed    = "booking_confirmed"
	TopicSettlementIncident  = "settlement_incident"
	TopicTicketEntryRecorded = "ticket_entry_recorded"
	TopicPoisoned            = "poisoned_queue"
)

type Amqp struct {
	config amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmqp(cfg *config.MessageStreamConfig) *Amqp {
	return &Amqp{
		config: amqp.NewDurableQueueConfig(cfg.URL),
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.config, a.logger)
}

func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.config, a.logger)
}

// NewRouter consumes topic with handlerFunc. Messages that still fail after
// retries are moved to poisonTopic instead of blocking the queue.
func NewRouter(publisher message.Publisher, poisonTopic, handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
