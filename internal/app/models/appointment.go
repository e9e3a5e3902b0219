package models

import (
	"time"

	"careconnect-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	PatientID       primitive.ObjectID `bson:"patientId"`
	PatientName     string             `bson:"patientName"`
	PatientEmail    string             `bson:"patientEmail"`
	DoctorID        primitive.ObjectID `bson:"doctorId"`
	DoctorName      string             `bson:"doctorName"`
	DoctorEmail     string             `bson:"doctorEmail"`
	Specialization  string             `bson:"specialization,omitempty"`
	AppointmentDate time.Time          `bson:"appointmentDate"`
	TimeSlot        string             `bson:"timeSlot"`
	Status          string             `bson:"status"`
	Reason          string             `bson:"reason"`
	Symptoms        string             `bson:"symptoms,omitempty"`
	Notes           string             `bson:"notes,omitempty"`
	Prescription    string             `bson:"prescription,omitempty"`
	RejectionReason string             `bson:"rejectionReason,omitempty"`
	ConsultationFee float64            `bson:"consultationFee,omitempty"`

	TimeModel `bson:",inline"`
}

func (a *Appointment) CanBeApproved() bool {
	return a.Status == constvars.AppointmentStatusPending
}

func (a *Appointment) CanBeRejected() bool {
	return a.Status == constvars.AppointmentStatusPending
}

func (a *Appointment) CanBeCompleted() bool {
	return a.Status == constvars.AppointmentStatusApproved
}

func (a *Appointment) CanBeCancelled() bool {
	return a.Status == constvars.AppointmentStatusPending || a.Status == constvars.AppointmentStatusApproved
}

func (a *Appointment) IsParticipant(userID string) bool {
	return a.PatientID.Hex() == userID || a.DoctorID.Hex() == userID
}
