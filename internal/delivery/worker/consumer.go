package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/worker/processor"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"
	"crm/internal/infra/pubsub"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerTag   = "crm-reviewworker"
	prefetchCount = 8
)

// amqpConsumer reads events from the RabbitMQ queue and hands them to the processor.
type amqpConsumer struct {
	enabled   bool
	url       string
	queue     string
	processor *processor.Processor
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	conn *amqp.Connection
}

// ConsumerParams holds dependencies for the AMQP consumer, injected by Fx
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Processor *processor.Processor
	Logger    *slog.Logger
}

// NewConsumer creates the AMQP consumer delivery. It only connects when the
// event provider is rabbitmq.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	cfg := params.Cfg.PubSub
	ctx, cancel := context.WithCancel(context.Background())

	c := &amqpConsumer{
		enabled:   cfg != nil && cfg.Provider == constants.PubSubProviderRabbitMQ && cfg.AMQPURL != "",
		queue:     pubsub.QueueName(cfg),
		processor: params.Processor,
		logger:    params.Logger,
		ctx:       ctx,
		cancel:    cancel,
	}
	if cfg != nil {
		c.url = cfg.AMQPURL
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

// Serve consumes until the consumer is stopped or the broker connection drops.
func (s *amqpConsumer) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("AMQP consumer disabled, provider is not rabbitmq")

		return nil
	}

	deliveries, closed, err := s.connect()
	if err != nil {
		return err
	}

	s.logger.Info("Starting AMQP consumer", slog.String("queue", s.queue))

	for {
		select {
		case <-s.ctx.Done():
			return nil

		case amqpErr := <-closed:
			if s.ctx.Err() != nil {
				return nil
			}

			return errors.Errorf("rabbitmq connection closed: %v", amqpErr)

		case d, ok := <-deliveries:
			if !ok {
				if s.ctx.Err() != nil {
					return nil
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			s.handle(s.ctx, d)
		}
	}
}

func (s *amqpConsumer) connect() (<-chan amqp.Delivery, <-chan *amqp.Error, error) {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if err := pubsub.DeclareQueue(ch, s.queue); err != nil {
		_ = conn.Close()

		return nil, nil, err
	}

	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "set rabbitmq qos")
	}

	deliveries, err := ch.Consume(s.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrapf(err, "consume %s", s.queue)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	return deliveries, conn.NotifyClose(make(chan *amqp.Error, 1)), nil
}

// handle acks processed and permanently failed events and requeues retryable ones.
func (s *amqpConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var event service.Event
	if err := json.Unmarshal(d.Body, &event); err != nil {
		s.logger.Error("[Worker] Failed to parse AMQP message", slog.String("message_id", d.MessageId), slog.Any("error", err))
		_ = d.Nack(false, false)

		return
	}

	headerRequestID, _ := d.Headers["request_id"].(string)
	ctx, reqLogger := s.processor.Scope(ctx, headerRequestID, event.RequestID)

	if err := s.processor.Process(ctx, &event); err != nil {
		retryable := processor.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			_ = d.Nack(false, true)

			return
		}
	}

	_ = d.Ack(false)
}

func (s *amqpConsumer) stop(_ context.Context) error {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}
	s.logger.Info("Closing AMQP consumer")

	return errors.WithStack(s.conn.Close())
}
