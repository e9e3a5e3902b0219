package auth

import (
	"context"
	"time"

	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/models"
	"careconnect-service/internal/app/services/core/session"
	"careconnect-service/internal/app/services/core/users"
	"careconnect-service/internal/app/services/shared/events"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
	"careconnect-service/internal/pkg/exceptions"
	"careconnect-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	Log            *zap.Logger
	UserRepository users.UserRepository
	SessionService session.SessionService
	Publisher      events.Publisher
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	logger *zap.Logger,
	userMongoRepository users.UserRepository,
	sessionService session.SessionService,
	publisher events.Publisher,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		Log:            logger,
		UserRepository: userMongoRepository,
		SessionService: sessionService,
		Publisher:      publisher,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     request.Role,
		Phone:    request.Phone,
		IsActive: true,
	}
	switch request.Role {
	case constvars.RoleTypeDoctor:
		user.Specialization = request.Specialization
		user.Qualification = request.Qualification
		user.Experience = request.Experience
		user.ConsultationFee = request.ConsultationFee
	case constvars.RoleTypePatient:
		user.DateOfBirth = request.DateOfBirth
		user.Gender = request.Gender
		user.Address = request.Address
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// Best effort, registration never fails on a broker hiccup.
	publishErr := uc.Publisher.PublishUserEvent(ctx, constvars.EventUserRegistered, &events.UserRegisteredEvent{
		UserID: userID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if publishErr != nil {
		uc.Log.Error("failed to publish user registered event", zap.Error(publishErr))
	}

	createdUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if createdUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	token, err := uc.createSession(ctx, createdUser)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token: token,
		User:  users.BuildUserResponse(createdUser),
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	if !user.IsActive {
		return nil, exceptions.ErrAccountDeactivated(nil)
	}

	token, err := uc.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token: token,
		User:  users.BuildUserResponse(user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return users.BuildUserResponse(user), nil
}

func (uc *authUsecase) createSession(ctx context.Context, user *models.User) (string, error) {
	sessionID := uuid.New().String()
	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	err := uc.SessionService.CreateSession(ctx, &models.Session{
		SessionID: sessionID,
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(expTime),
	})
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}
