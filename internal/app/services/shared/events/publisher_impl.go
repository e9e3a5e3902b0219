package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	maxChannelReopenAttempts = 3
	channelReopenDelay       = 5 * time.Second
)

type publisher struct {
	conn     *amqp.Connection
	log      *zap.Logger
	mu       sync.Mutex
	ch       *amqp.Channel
	disabled bool
}

// NewPublisher declares both topic exchanges on a fresh channel. A nil
// connection yields a permanently disabled publisher so callers can publish
// unconditionally.
func NewPublisher(conn *amqp.Connection, log *zap.Logger) Publisher {
	p := &publisher{
		conn: conn,
		log:  log,
	}

	if conn == nil {
		p.disabled = true
		log.Warn("event publisher disabled, no broker connection")
		return p
	}

	if err := p.openChannel(); err != nil {
		p.disabled = true
		log.Error("event publisher disabled, channel setup failed", zap.Error(err))
	}
	return p
}

func (p *publisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}

	for _, exchange := range []string{constvars.ExchangeAppointmentEvents, constvars.ExchangeUserEvents} {
		err = ch.ExchangeDeclare(
			exchange,
			constvars.ExchangeTypeTopic,
			true,  // durable
			false, // autoDelete
			false, // internal
			false, // noWait
			nil,
		)
		if err != nil {
			ch.Close()
			return err
		}
	}

	p.ch = ch
	return nil
}

func (p *publisher) PublishAppointmentEvent(ctx context.Context, routingKey string, event *AppointmentEvent) error {
	return p.publish(ctx, constvars.ExchangeAppointmentEvents, routingKey, event)
}

func (p *publisher) PublishUserEvent(ctx context.Context, routingKey string, event *UserRegisteredEvent) error {
	return p.publish(ctx, constvars.ExchangeUserEvents, routingKey, event)
}

func (p *publisher) publish(ctx context.Context, exchange, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disabled {
		p.log.Warn("event dropped, publisher disabled",
			zap.String(constvars.LoggingExchangeKey, exchange),
			zap.String(constvars.LoggingRoutingKeyKey, routingKey),
		)
		return nil
	}

	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	for attempt := 1; attempt <= maxChannelReopenAttempts; attempt++ {
		if p.ch != nil {
			err = p.ch.PublishWithContext(ctx, exchange, routingKey, false, false, message)
			if err == nil {
				p.log.Info("event published",
					zap.String(constvars.LoggingExchangeKey, exchange),
					zap.String(constvars.LoggingRoutingKeyKey, routingKey),
				)
				return nil
			}
		} else {
			err = errors.New("channel not open")
		}

		p.log.Warn("publish failed, reopening channel",
			zap.String(constvars.LoggingExchangeKey, exchange),
			zap.String(constvars.LoggingRoutingKeyKey, routingKey),
			zap.Error(err),
		)
		p.ch = nil
		if attempt < maxChannelReopenAttempts {
			time.Sleep(channelReopenDelay)
			if openErr := p.openChannel(); openErr != nil {
				err = openErr
			}
		}
	}

	p.disabled = true
	p.log.Error("event publisher disabled after repeated failures", zap.Error(err))
	return exceptions.ErrRabbitMQPublishMessage(err, exchange)
}

func (p *publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		p.ch.Close()
		p.ch = nil
	}
	p.disabled = true
}
