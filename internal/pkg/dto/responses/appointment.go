package responses

type Appointment struct {
	ID              string  `json:"id"`
	PatientID       string  `json:"patientId"`
	PatientName     string  `json:"patientName"`
	PatientEmail    string  `json:"patientEmail"`
	DoctorID        string  `json:"doctorId"`
	DoctorName      string  `json:"doctorName"`
	DoctorEmail     string  `json:"doctorEmail"`
	Specialization  string  `json:"specialization,omitempty"`
	AppointmentDate string  `json:"appointmentDate"`
	TimeSlot        string  `json:"timeSlot"`
	Status          string  `json:"status"`
	Reason          string  `json:"reason"`
	Symptoms        string  `json:"symptoms,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Prescription    string  `json:"prescription,omitempty"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

type BookedSlots struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"bookedSlots"`
}
