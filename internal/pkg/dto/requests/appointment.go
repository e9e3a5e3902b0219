package requests

type CreateAppointment struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"timeSlot" validate:"time_slot"`
	Reason          string `json:"reason" validate:"required,max=500"`
	Symptoms        string `json:"symptoms" validate:"omitempty,max=1000"`
}

type ApproveAppointment struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type RejectAppointment struct {
	RejectionReason string `json:"rejectionReason" validate:"omitempty,max=500"`
}

type CompleteAppointment struct {
	Prescription string `json:"prescription" validate:"omitempty,max=2000"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}
