package appointments

import (
	"context"
	"time"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	ListForPatient(ctx context.Context, session *models.Session, status string) ([]responses.Appointment, error)
	ListForDoctor(ctx context.Context, session *models.Session, status, date string) ([]responses.Appointment, error)
	Approve(ctx context.Context, session *models.Session, appointmentID string, request *requests.ApproveAppointment) (*responses.Appointment, error)
	Reject(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error)
	Complete(ctx context.Context, session *models.Session, appointmentID string, request *requests.CompleteAppointment) (*responses.Appointment, error)
	Cancel(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	GetBookedSlots(ctx context.Context, doctorID, date string) (*responses.BookedSlots, error)
}

type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID, status string, date *time.Time) ([]models.Appointment, error)
	FindBookedSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error)
	HasActiveSlot(ctx context.Context, doctorID string, date time.Time, timeSlot string) (bool, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}
