package events

// AppointmentEvent is the denormalized snapshot published on every
// appointment lifecycle transition. Consumers never have to call back into
// the auth or appointment services to render a notification.
type AppointmentEvent struct {
	AppointmentID   string `json:"appointmentId"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName"`
	PatientEmail    string `json:"patientEmail"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	DoctorEmail     string `json:"doctorEmail"`
	AppointmentDate string `json:"appointmentDate"`
	TimeSlot        string `json:"timeSlot"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	Prescription    string `json:"prescription,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type UserRegisteredEvent struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
