package notifications

import (
	"context"
	"fmt"
	"time"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/app/services/shared/events"
	"careconnect-service/internal/app/services/shared/mailer"
	"careconnect-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// NotificationEventHandler materializes broker events into notification
// documents and outbound emails.
type NotificationEventHandler struct {
	Log                    *zap.Logger
	NotificationRepository NotificationRepository
	MailerService          mailer.MailerService
}

func NewNotificationEventHandler(
	logger *zap.Logger,
	notificationMongoRepository NotificationRepository,
	mailerService mailer.MailerService,
) *NotificationEventHandler {
	return &NotificationEventHandler{
		Log:                    logger,
		NotificationRepository: notificationMongoRepository,
		MailerService:          mailerService,
	}
}

func (h *NotificationEventHandler) HandleEvent(ctx context.Context, routingKey string, body []byte) error {
	h.Log.Info("processing event", zap.String(constvars.LoggingRoutingKeyKey, routingKey))

	if routingKey == constvars.EventUserRegistered {
		event := new(events.UserRegisteredEvent)
		if err := json.Unmarshal(body, event); err != nil {
			return err
		}
		return h.handleUserRegistered(ctx, event, rawPayload(body))
	}

	event := new(events.AppointmentEvent)
	if err := json.Unmarshal(body, event); err != nil {
		return err
	}
	payload := rawPayload(body)

	switch routingKey {
	case constvars.EventAppointmentCreated:
		return h.handleAppointmentCreated(ctx, event, payload)
	case constvars.EventAppointmentApproved:
		return h.handleAppointmentApproved(ctx, event, payload)
	case constvars.EventAppointmentRejected:
		return h.handleAppointmentRejected(ctx, event, payload)
	case constvars.EventAppointmentCompleted:
		return h.handleAppointmentCompleted(ctx, event, payload)
	case constvars.EventAppointmentCancelled:
		return h.handleAppointmentCancelled(ctx, event, payload)
	default:
		// Unknown keys are acked, redelivery would never succeed.
		h.Log.Warn("unknown event type", zap.String(constvars.LoggingRoutingKeyKey, routingKey))
		return nil
	}
}

func (h *NotificationEventHandler) handleAppointmentCreated(ctx context.Context, event *events.AppointmentEvent, payload map[string]interface{}) error {
	date := formatEventDate(event.AppointmentDate)

	err := h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.DoctorID,
			UserEmail: event.DoctorEmail,
			Type:      constvars.NotificationTypeAppointmentCreated,
			Title:     "New Appointment Request",
			Message:   fmt.Sprintf("You have a new appointment request from %s for %s at %s. Reason: %s", event.PatientName, date, event.TimeSlot, event.Reason),
			Data:      payload,
		},
		constvars.EmailSubjectAppointmentCreatedDoctor,
		fmt.Sprintf(`<h2>New Appointment Request</h2>
<p>You have received a new appointment request:</p>
<ul>
<li><strong>Patient:</strong> %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s</li>
<li><strong>Reason:</strong> %s</li>
</ul>
<p>Please log in to your dashboard to approve or reject this request.</p>`, event.PatientName, date, event.TimeSlot, event.Reason),
	)
	if err != nil {
		return err
	}

	return h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.PatientID,
			UserEmail: event.PatientEmail,
			Type:      constvars.NotificationTypeAppointmentCreated,
			Title:     "Appointment Booked",
			Message:   fmt.Sprintf("Your appointment with Dr. %s on %s at %s has been booked. Waiting for doctor's confirmation.", event.DoctorName, date, event.TimeSlot),
			Data:      payload,
		},
		constvars.EmailSubjectAppointmentBooked,
		fmt.Sprintf(`<h2>Appointment Booked Successfully</h2>
<p>Your appointment has been booked:</p>
<ul>
<li><strong>Doctor:</strong> Dr. %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s</li>
<li><strong>Status:</strong> Pending Approval</li>
</ul>
<p>You will be notified once the doctor confirms your appointment.</p>`, event.DoctorName, date, event.TimeSlot),
	)
}

func (h *NotificationEventHandler) handleAppointmentApproved(ctx context.Context, event *events.AppointmentEvent, payload map[string]interface{}) error {
	date := formatEventDate(event.AppointmentDate)

	return h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.PatientID,
			UserEmail: event.PatientEmail,
			Type:      constvars.NotificationTypeAppointmentApproved,
			Title:     "Appointment Approved",
			Message:   fmt.Sprintf("Great news! Your appointment with Dr. %s on %s at %s has been approved.", event.DoctorName, date, event.TimeSlot),
			Data:      payload,
		},
		constvars.EmailSubjectAppointmentApproved,
		fmt.Sprintf(`<h2>Appointment Approved!</h2>
<p>Great news! Your appointment has been approved:</p>
<ul>
<li><strong>Doctor:</strong> Dr. %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s</li>
</ul>
<p>Please arrive 10 minutes before your scheduled time.</p>`, event.DoctorName, date, event.TimeSlot),
	)
}

func (h *NotificationEventHandler) handleAppointmentRejected(ctx context.Context, event *events.AppointmentEvent, payload map[string]interface{}) error {
	date := formatEventDate(event.AppointmentDate)

	return h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.PatientID,
			UserEmail: event.PatientEmail,
			Type:      constvars.NotificationTypeAppointmentRejected,
			Title:     "Appointment Rejected",
			Message:   fmt.Sprintf("Unfortunately, your appointment with Dr. %s on %s at %s has been rejected. Reason: %s", event.DoctorName, date, event.TimeSlot, event.RejectionReason),
			Data:      payload,
		},
		constvars.EmailSubjectAppointmentRejected,
		fmt.Sprintf(`<h2>Appointment Not Approved</h2>
<p>Unfortunately, your appointment request could not be approved:</p>
<ul>
<li><strong>Doctor:</strong> Dr. %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s</li>
<li><strong>Reason:</strong> %s</li>
</ul>
<p>Please try booking a different time slot or another doctor.</p>`, event.DoctorName, date, event.TimeSlot, event.RejectionReason),
	)
}

func (h *NotificationEventHandler) handleAppointmentCompleted(ctx context.Context, event *events.AppointmentEvent, payload map[string]interface{}) error {
	date := formatEventDate(event.AppointmentDate)

	message := fmt.Sprintf("Your appointment with Dr. %s has been completed.", event.DoctorName)
	if event.Prescription != "" {
		message += " Prescription has been added."
	}

	prescriptionBlock := ""
	if event.Prescription != "" {
		prescriptionBlock = fmt.Sprintf("<h3>Prescription:</h3><p>%s</p>", event.Prescription)
	}

	return h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.PatientID,
			UserEmail: event.PatientEmail,
			Type:      constvars.NotificationTypeAppointmentCompleted,
			Title:     "Appointment Completed",
			Message:   message,
			Data:      payload,
		},
		constvars.EmailSubjectAppointmentCompleted,
		fmt.Sprintf(`<h2>Appointment Completed</h2>
<p>Your appointment has been marked as completed:</p>
<ul>
<li><strong>Doctor:</strong> Dr. %s</li>
<li><strong>Date:</strong> %s</li>
</ul>
%s
<p>Thank you for using our Healthcare System. We wish you good health!</p>`, event.DoctorName, date, prescriptionBlock),
	)
}

func (h *NotificationEventHandler) handleAppointmentCancelled(ctx context.Context, event *events.AppointmentEvent, payload map[string]interface{}) error {
	date := formatEventDate(event.AppointmentDate)

	err := h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.DoctorID,
			UserEmail: event.DoctorEmail,
			Type:      constvars.NotificationTypeAppointmentCancelled,
			Title:     "Appointment Cancelled",
			Message:   fmt.Sprintf("Appointment with %s on %s at %s has been cancelled by the patient.", event.PatientName, date, event.TimeSlot),
			Data:      payload,
		},
		constvars.EmailSubjectAppointmentCancelled,
		fmt.Sprintf(`<h2>Appointment Cancelled</h2>
<p>An appointment has been cancelled:</p>
<ul>
<li><strong>Patient:</strong> %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s</li>
</ul>
<p>The time slot is now available for other patients.</p>`, event.PatientName, date, event.TimeSlot),
	)
	if err != nil {
		return err
	}

	// Cancellation confirmation for the patient, no email needed.
	notification := &models.Notification{
		UserID:    event.PatientID,
		UserEmail: event.PatientEmail,
		Type:      constvars.NotificationTypeAppointmentCancelled,
		Title:     "Cancellation Confirmed",
		Message:   fmt.Sprintf("Your appointment with Dr. %s on %s at %s has been cancelled successfully.", event.DoctorName, date, event.TimeSlot),
		Data:      payload,
	}
	notification.SetCreatedAtUpdatedAt()
	_, err = h.NotificationRepository.CreateNotification(ctx, notification)
	return err
}

func (h *NotificationEventHandler) handleUserRegistered(ctx context.Context, event *events.UserRegisteredEvent, payload map[string]interface{}) error {
	roleLine := "You can now book appointments with our doctors."
	roleParagraph := "<p>As a patient, you can now browse our doctors, book appointments, and manage your health records through your dashboard.</p>"
	if event.Role == constvars.RoleTypeDoctor {
		roleLine = "You can now manage appointments from your dashboard."
		roleParagraph = "<p>As a doctor, you can now manage your appointments, set your availability, and connect with patients through your dashboard.</p>"
	}

	return h.createAndEmail(ctx,
		&models.Notification{
			UserID:    event.UserID,
			UserEmail: event.Email,
			Type:      constvars.NotificationTypeUserRegistered,
			Title:     "Welcome to Healthcare System",
			Message:   fmt.Sprintf("Welcome %s! Your account has been created successfully. %s", event.Name, roleLine),
			Data:      payload,
		},
		constvars.EmailSubjectWelcome,
		fmt.Sprintf(`<h2>Welcome to Healthcare System!</h2>
<p>Hello %s,</p>
<p>Your account has been created successfully.</p>
%s
<p>Thank you for joining us!</p>`, event.Name, roleParagraph),
	)
}

// createAndEmail stores the notification first so a mailer outage never
// loses it, then flips emailSent only when delivery succeeded.
func (h *NotificationEventHandler) createAndEmail(ctx context.Context, notification *models.Notification, subject, htmlBody string) error {
	notification.SetCreatedAtUpdatedAt()
	notificationID, err := h.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		return err
	}

	if notification.UserEmail == "" {
		return nil
	}

	if err := h.MailerService.SendHTMLEmail(notification.UserEmail, subject, htmlBody); err != nil {
		h.Log.Error("failed to send notification email",
			zap.String("notification_id", notificationID),
			zap.Error(err),
		)
		return nil
	}

	return h.NotificationRepository.MarkEmailSent(ctx, notificationID)
}

// formatEventDate renders a YYYY-MM-DD event date as a friendly long date.
// Unparseable input is passed through untouched.
func formatEventDate(value string) string {
	parsed, err := time.Parse(constvars.AppointmentDateFormat, value)
	if err != nil {
		return value
	}
	return parsed.Format("Monday, January 2, 2006")
}

func rawPayload(body []byte) map[string]interface{} {
	payload := map[string]interface{}{}
	json.Unmarshal(body, &payload)
	return payload
}
