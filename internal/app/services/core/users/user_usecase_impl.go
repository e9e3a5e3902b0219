package users

import (
	"context"
	"errors"
	"time"

	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/models"
	"careconnect-service/internal/app/services/shared/storage"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
	"careconnect-service/internal/pkg/exceptions"
	"careconnect-service/internal/pkg/utils"
)

const presignedAvatarExpiry = 24 * time.Hour

type userUsecase struct {
	UserRepository UserRepository
	Storage        storage.Storage
	DriverConfig   *config.DriverConfig
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	minioStorage storage.Storage,
	driverConfig *config.DriverConfig,
) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		Storage:        minioStorage,
		DriverConfig:   driverConfig,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return uc.buildUserResponse(ctx, user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}

	switch user.Role {
	case constvars.RoleTypeDoctor:
		if request.Specialization != "" {
			user.Specialization = request.Specialization
		}
		if request.Qualification != "" {
			user.Qualification = request.Qualification
		}
		if request.Experience != nil {
			user.Experience = *request.Experience
		}
		if request.ConsultationFee != nil {
			user.ConsultationFee = *request.ConsultationFee
		}
		if len(request.AvailableSlots) > 0 {
			user.AvailableSlots = request.AvailableSlots
		}
	case constvars.RoleTypePatient:
		if request.DateOfBirth != "" {
			user.DateOfBirth = request.DateOfBirth
		}
		if request.Gender != "" {
			user.Gender = request.Gender
		}
		if request.Address != "" {
			user.Address = request.Address
		}
		if request.MedicalHistory != "" {
			user.MedicalHistory = request.MedicalHistory
		}
	}

	if len(request.ProfilePictureData) > 0 {
		fileName := utils.GenerateFileName("avatar", user.ID.Hex(), request.ProfilePictureExtension)
		objectName, err := uc.Storage.UploadBase64Image(
			ctx,
			request.ProfilePictureData,
			uc.DriverConfig.Minio.BucketName,
			fileName,
			request.ProfilePictureExtension,
		)
		if err != nil {
			return nil, err
		}
		user.Avatar = objectName
	}

	user.SetUpdatedAt()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return uc.buildUserResponse(ctx, user), nil
}

func (uc *userUsecase) GetDoctors(ctx context.Context, specialization string) ([]responses.User, error) {
	doctors, err := uc.UserRepository.FindDoctors(ctx, specialization)
	if err != nil {
		return nil, err
	}

	result := make([]responses.User, 0, len(doctors))
	for i := range doctors {
		result = append(result, *uc.buildUserResponse(ctx, &doctors[i]))
	}
	return result, nil
}

func (uc *userUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsDoctor() || !user.IsActive {
		return nil, exceptions.ErrDoctorNotExist(errors.New("doctor missing or inactive"))
	}
	return uc.buildUserResponse(ctx, user), nil
}

func (uc *userUsecase) buildUserResponse(ctx context.Context, user *models.User) *responses.User {
	response := BuildUserResponse(user)
	if user.Avatar != "" && uc.Storage != nil {
		if url, err := uc.Storage.GetPresignedURL(ctx, uc.DriverConfig.Minio.BucketName, user.Avatar, presignedAvatarExpiry); err == nil {
			response.AvatarURL = url
		}
	}
	return response
}

// BuildUserResponse maps a user document to its public view. The password
// hash never leaves this package.
func BuildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:              user.ID.Hex(),
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		Phone:           user.Phone,
		IsActive:        user.IsActive,
		Specialization:  user.Specialization,
		Qualification:   user.Qualification,
		Experience:      user.Experience,
		ConsultationFee: user.ConsultationFee,
		AvailableSlots:  user.AvailableSlots,
		DateOfBirth:     user.DateOfBirth,
		Gender:          user.Gender,
		Address:         user.Address,
		MedicalHistory:  user.MedicalHistory,
		CreatedAt:       user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
