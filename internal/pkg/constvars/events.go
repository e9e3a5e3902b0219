package constvars

// Exchange, queue and binding names shared by the producer services and the
// notification consumer. All exchanges are topic and durable; messages are
// persistent JSON.
const (
	ExchangeAppointmentEvents = "appointment_events"
	ExchangeUserEvents        = "user_events"
	ExchangeTypeTopic         = "topic"

	QueueNotifications = "notification_queue"

	BindingAppointmentEvents = "appointment.*"
	BindingUserEvents        = "user.*"
)

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentApproved  = "appointment.approved"
	EventAppointmentRejected  = "appointment.rejected"
	EventAppointmentCompleted = "appointment.completed"
	EventAppointmentCancelled = "appointment.cancelled"
	EventUserRegistered       = "user.registered"
)
