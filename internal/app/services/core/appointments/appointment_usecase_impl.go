package appointments

import (
	"context"
	"time"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/app/services/core/users"
	"careconnect-service/internal/app/services/shared/events"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
	"careconnect-service/internal/pkg/exceptions"
	"careconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	Log                   *zap.Logger
	AppointmentRepository AppointmentRepository
	UserRepository        users.UserRepository
	Publisher             events.Publisher
}

func NewAppointmentUsecase(
	logger *zap.Logger,
	appointmentMongoRepository AppointmentRepository,
	userMongoRepository users.UserRepository,
	publisher events.Publisher,
) AppointmentUsecase {
	return &appointmentUsecase{
		Log:                   logger,
		AppointmentRepository: appointmentMongoRepository,
		UserRepository:        userMongoRepository,
		Publisher:             publisher,
	}
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	if session.Role != constvars.RoleTypePatient {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointmentDate, err := utils.ParseAppointmentDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, err := uc.UserRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() || !doctor.IsActive {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	patient, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	// Friendly pre-check; the partial unique index still decides races.
	taken, err := uc.AppointmentRepository.HasActiveSlot(ctx, request.DoctorID, appointmentDate, request.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	appointment := &models.Appointment{
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		PatientEmail:    patient.Email,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorEmail:     doctor.Email,
		Specialization:  doctor.Specialization,
		AppointmentDate: appointmentDate,
		TimeSlot:        request.TimeSlot,
		Status:          constvars.AppointmentStatusPending,
		Reason:          request.Reason,
		Symptoms:        request.Symptoms,
		ConsultationFee: doctor.ConsultationFee,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	created, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	uc.publishEvent(ctx, constvars.EventAppointmentCreated, created)
	return buildAppointmentResponse(created), nil
}

func (uc *appointmentUsecase) GetByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appointment.IsParticipant(session.UserID) {
		return nil, exceptions.ErrNotAppointmentParty(nil)
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, session *models.Session, status string) ([]responses.Appointment, error) {
	if session.Role != constvars.RoleTypePatient {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, session.UserID, status)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, session *models.Session, status, date string) ([]responses.Appointment, error) {
	if session.Role != constvars.RoleTypeDoctor {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	var day *time.Time
	if date != "" {
		parsed, err := utils.ParseAppointmentDate(date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		day = &parsed
	}

	appointments, err := uc.AppointmentRepository.FindByDoctor(ctx, session.UserID, status, day)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) Approve(ctx context.Context, session *models.Session, appointmentID string, request *requests.ApproveAppointment) (*responses.Appointment, error) {
	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.DoctorID.Hex() != session.UserID {
		return nil, exceptions.ErrNotAppointmentDoctor(nil)
	}
	if !appointment.CanBeApproved() {
		return nil, exceptions.ErrIllegalStatusChange(nil, constvars.ErrClientOnlyPendingApprovable)
	}

	appointment.Status = constvars.AppointmentStatusApproved
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}

	return uc.saveAndPublish(ctx, appointment, constvars.EventAppointmentApproved)
}

func (uc *appointmentUsecase) Reject(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error) {
	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.DoctorID.Hex() != session.UserID {
		return nil, exceptions.ErrNotAppointmentDoctor(nil)
	}
	if !appointment.CanBeRejected() {
		return nil, exceptions.ErrIllegalStatusChange(nil, constvars.ErrClientOnlyPendingRejectable)
	}

	appointment.Status = constvars.AppointmentStatusRejected
	appointment.RejectionReason = request.RejectionReason
	if appointment.RejectionReason == "" {
		appointment.RejectionReason = constvars.DefaultRejectionReason
	}

	return uc.saveAndPublish(ctx, appointment, constvars.EventAppointmentRejected)
}

func (uc *appointmentUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string, request *requests.CompleteAppointment) (*responses.Appointment, error) {
	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.DoctorID.Hex() != session.UserID {
		return nil, exceptions.ErrNotAppointmentDoctor(nil)
	}
	if !appointment.CanBeCompleted() {
		return nil, exceptions.ErrIllegalStatusChange(nil, constvars.ErrClientOnlyApprovedComplete)
	}

	appointment.Status = constvars.AppointmentStatusCompleted
	if request.Prescription != "" {
		appointment.Prescription = request.Prescription
	}
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}

	return uc.saveAndPublish(ctx, appointment, constvars.EventAppointmentCompleted)
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.PatientID.Hex() != session.UserID {
		return nil, exceptions.ErrNotAppointmentPatient(nil)
	}
	if !appointment.CanBeCancelled() {
		return nil, exceptions.ErrIllegalStatusChange(nil, constvars.ErrClientNotCancellable)
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	return uc.saveAndPublish(ctx, appointment, constvars.EventAppointmentCancelled)
}

func (uc *appointmentUsecase) GetBookedSlots(ctx context.Context, doctorID, date string) (*responses.BookedSlots, error) {
	if date == "" {
		return nil, exceptions.ErrDateRequired(nil)
	}

	day, err := utils.ParseAppointmentDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	slots, err := uc.AppointmentRepository.FindBookedSlots(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	return &responses.BookedSlots{
		DoctorID: doctorID,
		Date:     date,
		Slots:    slots,
	}, nil
}

func (uc *appointmentUsecase) findExisting(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) saveAndPublish(ctx context.Context, appointment *models.Appointment, routingKey string) (*responses.Appointment, error) {
	appointment.SetUpdatedAt()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, routingKey, appointment)
	return buildAppointmentResponse(appointment), nil
}

// publishEvent is best effort. The transition is already persisted, a broker
// outage must not undo it.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, routingKey string, appointment *models.Appointment) {
	err := uc.Publisher.PublishAppointmentEvent(ctx, routingKey, &events.AppointmentEvent{
		AppointmentID:   appointment.ID.Hex(),
		PatientID:       appointment.PatientID.Hex(),
		PatientName:     appointment.PatientName,
		PatientEmail:    appointment.PatientEmail,
		DoctorID:        appointment.DoctorID.Hex(),
		DoctorName:      appointment.DoctorName,
		DoctorEmail:     appointment.DoctorEmail,
		AppointmentDate: appointment.AppointmentDate.UTC().Format(constvars.AppointmentDateFormat),
		TimeSlot:        appointment.TimeSlot,
		Status:          appointment.Status,
		Reason:          appointment.Reason,
		RejectionReason: appointment.RejectionReason,
		Prescription:    appointment.Prescription,
		Notes:           appointment.Notes,
	})
	if err != nil {
		uc.Log.Error("failed to publish appointment event",
			zap.String(constvars.LoggingRoutingKeyKey, routingKey),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID.Hex(),
		PatientID:       appointment.PatientID.Hex(),
		PatientName:     appointment.PatientName,
		PatientEmail:    appointment.PatientEmail,
		DoctorID:        appointment.DoctorID.Hex(),
		DoctorName:      appointment.DoctorName,
		DoctorEmail:     appointment.DoctorEmail,
		Specialization:  appointment.Specialization,
		AppointmentDate: appointment.AppointmentDate.UTC().Format(constvars.AppointmentDateFormat),
		TimeSlot:        appointment.TimeSlot,
		Status:          appointment.Status,
		Reason:          appointment.Reason,
		Symptoms:        appointment.Symptoms,
		Notes:           appointment.Notes,
		Prescription:    appointment.Prescription,
		RejectionReason: appointment.RejectionReason,
		ConsultationFee: appointment.ConsultationFee,
		CreatedAt:       appointment.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       appointment.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func buildAppointmentResponses(appointments []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *buildAppointmentResponse(&appointments[i]))
	}
	return result
}
