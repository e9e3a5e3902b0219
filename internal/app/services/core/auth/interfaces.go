package auth

import (
	"context"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error)
	Logout(ctx context.Context, session *models.Session) error
	Me(ctx context.Context, session *models.Session) (*responses.User, error)
}
