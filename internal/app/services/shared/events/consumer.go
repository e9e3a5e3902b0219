package events

import (
	"context"

	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EventHandler processes one delivery. A non-nil error causes the message to
// be rejected without requeue.
type EventHandler interface {
	HandleEvent(ctx context.Context, routingKey string, body []byte) error
}

type Consumer struct {
	conn    *amqp.Connection
	log     *zap.Logger
	handler EventHandler
	ch      *amqp.Channel
	done    chan struct{}
}

func NewConsumer(conn *amqp.Connection, log *zap.Logger, handler EventHandler) *Consumer {
	return &Consumer{
		conn:    conn,
		log:     log,
		handler: handler,
		done:    make(chan struct{}),
	}
}

// Start declares the exchanges, the durable notification queue and its
// bindings, then consumes deliveries one at a time until Stop is called.
func (c *Consumer) Start(ctx context.Context) error {
	if c.conn == nil {
		c.log.Warn("event consumer not started, no broker connection")
		return nil
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, constvars.QueueNotifications)
	}
	c.ch = ch

	for _, exchange := range []string{constvars.ExchangeAppointmentEvents, constvars.ExchangeUserEvents} {
		err = ch.ExchangeDeclare(exchange, constvars.ExchangeTypeTopic, true, false, false, false, nil)
		if err != nil {
			return exceptions.ErrRabbitMQConsume(err, constvars.QueueNotifications)
		}
	}

	_, err = ch.QueueDeclare(constvars.QueueNotifications, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, constvars.QueueNotifications)
	}

	bindings := map[string]string{
		constvars.BindingAppointmentEvents: constvars.ExchangeAppointmentEvents,
		constvars.BindingUserEvents:        constvars.ExchangeUserEvents,
	}
	for bindingKey, exchange := range bindings {
		err = ch.QueueBind(constvars.QueueNotifications, bindingKey, exchange, false, nil)
		if err != nil {
			return exceptions.ErrRabbitMQConsume(err, constvars.QueueNotifications)
		}
	}

	// One unacked delivery at a time keeps handlers serial.
	if err := ch.Qos(1, 0, false); err != nil {
		return exceptions.ErrRabbitMQConsume(err, constvars.QueueNotifications)
	}

	deliveries, err := ch.Consume(constvars.QueueNotifications, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, constvars.QueueNotifications)
	}

	go c.loop(ctx, deliveries)
	c.log.Info("event consumer started", zap.String("queue", constvars.QueueNotifications))
	return nil
}

func (c *Consumer) loop(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-c.done:
			return
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	err := c.handler.HandleEvent(ctx, delivery.RoutingKey, delivery.Body)
	if err != nil {
		c.log.Error("event handling failed",
			zap.String(constvars.LoggingRoutingKeyKey, delivery.RoutingKey),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}
	delivery.Ack(false)
}

func (c *Consumer) Stop() {
	close(c.done)
	if c.ch != nil {
		c.ch.Close()
	}
}
