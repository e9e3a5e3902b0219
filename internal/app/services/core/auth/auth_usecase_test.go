package auth

import (
	"context"
	"testing"

	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/models"
	"careconnect-service/internal/app/services/shared/events"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/exceptions"
	"careconnect-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

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

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakePublisher struct {
	published  []string
	publishErr error
}

func (f *fakePublisher) PublishAppointmentEvent(ctx context.Context, routingKey string, event *events.AppointmentEvent) error {
	return nil
}

func (f *fakePublisher) PublishUserEvent(ctx context.Context, routingKey string, event *events.UserRegisteredEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, routingKey)
	return nil
}

func (f *fakePublisher) Close() {}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
	}
}

func assertCustomError(t *testing.T, err error, expectedStatus int, expectedMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, expectedStatus, customErr.StatusCode)
	assert.Equal(t, expectedMessage, customErr.ClientMessage)
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers a patient, creates a session and publishes the event", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		sessionService := newFakeSessionService()
		publisher := &fakePublisher{}

		uc := NewAuthUsecase(zap.NewNop(), userRepo, sessionService, publisher, testInternalConfig())
		result, err := uc.Register(ctx, &requests.RegisterUser{
			Name:     "John Miller",
			Email:    "john.miller@example.com",
			Password: "Secret123!",
			Role:     constvars.RoleTypePatient,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "John Miller", result.User.Name)
		assert.Equal(t, constvars.RoleTypePatient, result.User.Role)
		assert.Equal(t, []string{constvars.EventUserRegistered}, publisher.published)
		assert.Len(t, sessionService.sessions, 1)

		stored, err := userRepo.FindByEmail(ctx, "john.miller@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.IsActive)
		assert.NotEqual(t, "Secret123!", stored.Password, "password must be stored hashed")
		assert.True(t, utils.CheckPasswordHash("Secret123!", stored.Password))
	})

	t.Run("Registers a doctor with professional fields", func(t *testing.T) {
		userRepo := newFakeUserRepository()

		uc := NewAuthUsecase(zap.NewNop(), userRepo, newFakeSessionService(), &fakePublisher{}, testInternalConfig())
		result, err := uc.Register(ctx, &requests.RegisterUser{
			Name:            "Dr. Sarah Chen",
			Email:           "sarah.chen@example.com",
			Password:        "Secret123!",
			Role:            constvars.RoleTypeDoctor,
			Specialization:  "cardiology",
			Qualification:   "MD",
			Experience:      12,
			ConsultationFee: 150,
		})

		require.NoError(t, err)
		assert.Equal(t, "cardiology", result.User.Specialization)
		assert.Equal(t, float64(150), result.User.ConsultationFee)
	})

	t.Run("Rejects a duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewAuthUsecase(zap.NewNop(), userRepo, newFakeSessionService(), &fakePublisher{}, testInternalConfig())

		_, err := uc.Register(ctx, &requests.RegisterUser{
			Name:     "John Miller",
			Email:    "john.miller@example.com",
			Password: "Secret123!",
			Role:     constvars.RoleTypePatient,
		})
		require.NoError(t, err)

		_, err = uc.Register(ctx, &requests.RegisterUser{
			Name:     "Jane Miller",
			Email:    "john.miller@example.com",
			Password: "Another123!",
			Role:     constvars.RoleTypePatient,
		})
		assertCustomError(t, err, 400, constvars.ErrClientEmailAlreadyExists)
	})

	t.Run("Registration survives a broker outage", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		publisher := &fakePublisher{publishErr: context.DeadlineExceeded}

		uc := NewAuthUsecase(zap.NewNop(), userRepo, newFakeSessionService(), publisher, testInternalConfig())
		result, err := uc.Register(ctx, &requests.RegisterUser{
			Name:     "John Miller",
			Email:    "john.miller@example.com",
			Password: "Secret123!",
			Role:     constvars.RoleTypePatient,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	registerUser := func(t *testing.T, uc AuthUsecase, active bool, userRepo *fakeUserRepository) {
		t.Helper()
		_, err := uc.Register(ctx, &requests.RegisterUser{
			Name:     "John Miller",
			Email:    "john.miller@example.com",
			Password: "Secret123!",
			Role:     constvars.RoleTypePatient,
		})
		require.NoError(t, err)
		if !active {
			user, err := userRepo.FindByEmail(ctx, "john.miller@example.com")
			require.NoError(t, err)
			user.IsActive = false
		}
	}

	t.Run("Logs in with valid credentials", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		sessionService := newFakeSessionService()
		uc := NewAuthUsecase(zap.NewNop(), userRepo, sessionService, &fakePublisher{}, testInternalConfig())
		registerUser(t, uc, true, userRepo)

		result, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "john.miller@example.com",
			Password: "Secret123!",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "john.miller@example.com", result.User.Email)
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewAuthUsecase(zap.NewNop(), userRepo, newFakeSessionService(), &fakePublisher{}, testInternalConfig())
		registerUser(t, uc, true, userRepo)

		_, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "john.miller@example.com",
			Password: "WrongPassword1!",
		})
		assertCustomError(t, err, 401, constvars.ErrClientInvalidCredentials)
	})

	t.Run("Rejects an unknown email with the same message", func(t *testing.T) {
		uc := NewAuthUsecase(zap.NewNop(), newFakeUserRepository(), newFakeSessionService(), &fakePublisher{}, testInternalConfig())

		_, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "nobody@example.com",
			Password: "Secret123!",
		})
		assertCustomError(t, err, 401, constvars.ErrClientInvalidCredentials)
	})

	t.Run("Rejects a deactivated account", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewAuthUsecase(zap.NewNop(), userRepo, newFakeSessionService(), &fakePublisher{}, testInternalConfig())
		registerUser(t, uc, false, userRepo)

		_, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "john.miller@example.com",
			Password: "Secret123!",
		})
		assertCustomError(t, err, 401, constvars.ErrClientAccountDeactivated)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the session", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		sessionService := newFakeSessionService()
		uc := NewAuthUsecase(zap.NewNop(), userRepo, sessionService, &fakePublisher{}, testInternalConfig())

		_, err := uc.Register(ctx, &requests.RegisterUser{
			Name:     "John Miller",
			Email:    "john.miller@example.com",
			Password: "Secret123!",
			Role:     constvars.RoleTypePatient,
		})
		require.NoError(t, err)
		require.Len(t, sessionService.sessions, 1)

		var session *models.Session
		for _, s := range sessionService.sessions {
			session = s
		}

		require.NoError(t, uc.Logout(ctx, session))
		assert.Empty(t, sessionService.sessions)
	})
}
