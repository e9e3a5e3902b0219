package users

import (
	"context"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error)
	GetDoctors(ctx context.Context, specialization string) ([]responses.User, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.User, error)
}

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	FindDoctors(ctx context.Context, specialization string) ([]models.User, error)
}
