package events

import "context"

type Publisher interface {
	PublishAppointmentEvent(ctx context.Context, routingKey string, event *AppointmentEvent) error
	PublishUserEvent(ctx context.Context, routingKey string, event *UserRegisteredEvent) error
	Close()
}
