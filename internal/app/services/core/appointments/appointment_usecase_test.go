package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/app/services/shared/events"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	activeSlot   bool
	createErr    error
	updateErr    error
	bookedSlots  []string
	updated      *models.Appointment
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	appointment.ID = primitive.NewObjectID()
	f.appointments[appointment.ID.Hex()] = appointment
	return appointment.ID.Hex(), nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepository) FindByPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.PatientID.Hex() == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindByDoctor(ctx context.Context, doctorID, status string, date *time.Time) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.DoctorID.Hex() == doctorID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindBookedSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	return f.bookedSlots, nil
}

func (f *fakeAppointmentRepository) HasActiveSlot(ctx context.Context, doctorID string, date time.Time, timeSlot string) (bool, error) {
	return f.activeSlot, nil
}

func (f *fakeAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = appointment
	f.appointments[appointment.ID.Hex()] = appointment
	return nil
}

type fakeUserRepository struct {
	users map[string]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (f *fakeUserRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	if userModel.ID.IsZero() {
		userModel.ID = primitive.NewObjectID()
	}
	f.users[userModel.ID.Hex()] = userModel
	return userModel.ID.Hex(), nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	f.users[userModel.ID.Hex()] = userModel
	return nil
}

func (f *fakeUserRepository) FindDoctors(ctx context.Context, specialization string) ([]models.User, error) {
	return nil, nil
}

type fakePublisher struct {
	published  []string
	publishErr error
}

func (f *fakePublisher) PublishAppointmentEvent(ctx context.Context, routingKey string, event *events.AppointmentEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, routingKey)
	return nil
}

func (f *fakePublisher) PublishUserEvent(ctx context.Context, routingKey string, event *events.UserRegisteredEvent) error {
	return nil
}

func (f *fakePublisher) Close() {}

func seedDoctor(repo *fakeUserRepository) *models.User {
	doctor := &models.User{
		ID:              primitive.NewObjectID(),
		Name:            "Dr. Sarah Chen",
		Email:           "sarah.chen@example.com",
		Role:            constvars.RoleTypeDoctor,
		Specialization:  "cardiology",
		ConsultationFee: 150,
		IsActive:        true,
	}
	repo.users[doctor.ID.Hex()] = doctor
	return doctor
}

func seedPatient(repo *fakeUserRepository) *models.User {
	patient := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "John Miller",
		Email:    "john.miller@example.com",
		Role:     constvars.RoleTypePatient,
		IsActive: true,
	}
	repo.users[patient.ID.Hex()] = patient
	return patient
}

func patientSession(patient *models.User) *models.Session {
	return &models.Session{
		SessionID: "session-1",
		UserID:    patient.ID.Hex(),
		Email:     patient.Email,
		Name:      patient.Name,
		Role:      constvars.RoleTypePatient,
	}
}

func doctorSession(doctor *models.User) *models.Session {
	return &models.Session{
		SessionID: "session-2",
		UserID:    doctor.ID.Hex(),
		Email:     doctor.Email,
		Name:      doctor.Name,
		Role:      constvars.RoleTypeDoctor,
	}
}

func seedAppointment(repo *fakeAppointmentRepository, patient, doctor *models.User, status string) *models.Appointment {
	appointment := &models.Appointment{
		ID:              primitive.NewObjectID(),
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		PatientEmail:    patient.Email,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorEmail:     doctor.Email,
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "10:00 AM",
		Status:          status,
		Reason:          "chest pain",
	}
	repo.appointments[appointment.ID.Hex()] = appointment
	return appointment
}

func assertCustomError(t *testing.T, err error, expectedStatus int, expectedMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, expectedStatus, customErr.StatusCode)
	assert.Equal(t, expectedMessage, customErr.ClientMessage)
}

func TestAppointmentUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Books a pending appointment and publishes the created event", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		publisher := &fakePublisher{}
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, publisher)
		result, err := uc.Create(ctx, patientSession(patient), &requests.CreateAppointment{
			DoctorID:        doctor.ID.Hex(),
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "chest pain",
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
		assert.Equal(t, doctor.Name, result.DoctorName)
		assert.Equal(t, patient.Name, result.PatientName)
		assert.Equal(t, "2026-09-15", result.AppointmentDate)
		assert.Equal(t, doctor.ConsultationFee, result.ConsultationFee)
		assert.Equal(t, []string{constvars.EventAppointmentCreated}, publisher.published)
	})

	t.Run("Rejects booking by a doctor session", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Create(ctx, doctorSession(doctor), &requests.CreateAppointment{
			DoctorID:        doctor.ID.Hex(),
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "checkup",
		})

		assertCustomError(t, err, 403, constvars.ErrClientNotAuthorized)
	})

	t.Run("Rejects booking with an unknown doctor", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		patient := seedPatient(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Create(ctx, patientSession(patient), &requests.CreateAppointment{
			DoctorID:        primitive.NewObjectID().Hex(),
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "checkup",
		})

		assertCustomError(t, err, 404, constvars.ErrClientDoctorNotFound)
	})

	t.Run("Rejects booking when the slot is already taken", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		appointmentRepo.activeSlot = true
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Create(ctx, patientSession(patient), &requests.CreateAppointment{
			DoctorID:        doctor.ID.Hex(),
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "checkup",
		})

		assertCustomError(t, err, 409, constvars.ErrClientSlotAlreadyBooked)
	})

	t.Run("Surfaces the conflict when the unique index loses the race", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		appointmentRepo.createErr = exceptions.ErrSlotAlreadyBooked(errors.New("E11000 duplicate key error"))
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Create(ctx, patientSession(patient), &requests.CreateAppointment{
			DoctorID:        doctor.ID.Hex(),
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "checkup",
		})

		assertCustomError(t, err, 409, constvars.ErrClientSlotAlreadyBooked)
	})

	t.Run("Succeeds even when publishing the event fails", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		publisher := &fakePublisher{publishErr: errors.New("broker unavailable")}
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, publisher)
		result, err := uc.Create(ctx, patientSession(patient), &requests.CreateAppointment{
			DoctorID:        doctor.ID.Hex(),
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "checkup",
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
	})
}

func TestAppointmentUsecase_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Doctor approves a pending appointment", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		publisher := &fakePublisher{}
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, publisher)
		result, err := uc.Approve(ctx, doctorSession(doctor), appointment.ID.Hex(), &requests.ApproveAppointment{Notes: "bring previous reports"})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusApproved, result.Status)
		assert.Equal(t, "bring previous reports", result.Notes)
		assert.Equal(t, []string{constvars.EventAppointmentApproved}, publisher.published)
	})

	t.Run("Another doctor cannot approve the appointment", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		otherDoctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Approve(ctx, doctorSession(otherDoctor), appointment.ID.Hex(), &requests.ApproveAppointment{})

		assertCustomError(t, err, 403, constvars.ErrClientNotAppointmentDoctor)
	})

	t.Run("Approved appointment cannot be approved again", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusApproved)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Approve(ctx, doctorSession(doctor), appointment.ID.Hex(), &requests.ApproveAppointment{})

		assertCustomError(t, err, 400, constvars.ErrClientOnlyPendingApprovable)
	})

	t.Run("Rejection without a reason stores the default", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		result, err := uc.Reject(ctx, doctorSession(doctor), appointment.ID.Hex(), &requests.RejectAppointment{})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusRejected, result.Status)
		assert.Equal(t, constvars.DefaultRejectionReason, result.RejectionReason)
	})

	t.Run("Only approved appointments can be completed", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Complete(ctx, doctorSession(doctor), appointment.ID.Hex(), &requests.CompleteAppointment{})

		assertCustomError(t, err, 400, constvars.ErrClientOnlyApprovedComplete)
	})

	t.Run("Doctor completes an approved appointment with a prescription", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		publisher := &fakePublisher{}
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusApproved)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, publisher)
		result, err := uc.Complete(ctx, doctorSession(doctor), appointment.ID.Hex(), &requests.CompleteAppointment{
			Prescription: "aspirin 75mg daily",
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, result.Status)
		assert.Equal(t, "aspirin 75mg daily", result.Prescription)
		assert.Equal(t, []string{constvars.EventAppointmentCompleted}, publisher.published)
	})

	t.Run("Patient cancels an approved appointment", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		publisher := &fakePublisher{}
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusApproved)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, publisher)
		result, err := uc.Cancel(ctx, patientSession(patient), appointment.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, result.Status)
		assert.Equal(t, []string{constvars.EventAppointmentCancelled}, publisher.published)
	})

	t.Run("Doctor cannot cancel the appointment", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Cancel(ctx, doctorSession(doctor), appointment.ID.Hex())

		assertCustomError(t, err, 403, constvars.ErrClientNotAppointmentPatient)
	})

	t.Run("Completed appointment cannot be cancelled", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusCompleted)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Cancel(ctx, patientSession(patient), appointment.ID.Hex())

		assertCustomError(t, err, 400, constvars.ErrClientNotCancellable)
	})

	t.Run("Unknown appointment returns not found", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.Approve(ctx, doctorSession(doctor), primitive.NewObjectID().Hex(), &requests.ApproveAppointment{})

		assertCustomError(t, err, 404, constvars.ErrClientAppointmentNotFound)
	})
}

func TestAppointmentUsecase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Participant can view the appointment", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})

		result, err := uc.GetByID(ctx, patientSession(patient), appointment.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, appointment.ID.Hex(), result.ID)

		result, err = uc.GetByID(ctx, doctorSession(doctor), appointment.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, appointment.ID.Hex(), result.ID)
	})

	t.Run("Outsider cannot view the appointment", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		userRepo := newFakeUserRepository()
		doctor := seedDoctor(userRepo)
		patient := seedPatient(userRepo)
		outsider := seedPatient(userRepo)
		appointment := seedAppointment(appointmentRepo, patient, doctor, constvars.AppointmentStatusPending)

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		_, err := uc.GetByID(ctx, patientSession(outsider), appointment.ID.Hex())

		assertCustomError(t, err, 403, constvars.ErrClientNotAppointmentParty)
	})
}

func TestAppointmentUsecase_GetBookedSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the booked slots for the day", func(t *testing.T) {
		appointmentRepo := newFakeAppointmentRepository()
		appointmentRepo.bookedSlots = []string{"09:00 AM", "10:00 AM"}
		userRepo := newFakeUserRepository()
		doctorID := primitive.NewObjectID().Hex()

		uc := NewAppointmentUsecase(zap.NewNop(), appointmentRepo, userRepo, &fakePublisher{})
		result, err := uc.GetBookedSlots(ctx, doctorID, "2026-09-15")

		require.NoError(t, err)
		assert.Equal(t, doctorID, result.DoctorID)
		assert.Equal(t, "2026-09-15", result.Date)
		assert.Equal(t, []string{"09:00 AM", "10:00 AM"}, result.Slots)
	})

	t.Run("Date query parameter is required", func(t *testing.T) {
		uc := NewAppointmentUsecase(zap.NewNop(), newFakeAppointmentRepository(), newFakeUserRepository(), &fakePublisher{})
		_, err := uc.GetBookedSlots(ctx, primitive.NewObjectID().Hex(), "")

		assertCustomError(t, err, 400, constvars.ErrClientDateRequired)
	})
}
