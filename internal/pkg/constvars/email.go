package constvars

const (
	EmailSendHTMLSubjectFormat = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"

	EmailSubjectAppointmentCreatedDoctor = "New Appointment Request - Healthcare System"
	EmailSubjectAppointmentBooked        = "Appointment Booked - Healthcare System"
	EmailSubjectAppointmentApproved      = "Appointment Approved - Healthcare System"
	EmailSubjectAppointmentRejected      = "Appointment Update - Healthcare System"
	EmailSubjectAppointmentCompleted     = "Appointment Completed - Healthcare System"
	EmailSubjectAppointmentCancelled     = "Appointment Cancelled - Healthcare System"
	EmailSubjectWelcome                  = "Welcome to Healthcare System"
)
