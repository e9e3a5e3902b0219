package notifications

import (
	"context"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	List(ctx context.Context, request *requests.ListNotifications) (*responses.NotificationList, int, error)
	MarkRead(ctx context.Context, notificationID string) (*responses.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, notificationID string) error
}

type NotificationRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByUser(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]models.Notification, error)
	CountByUser(ctx context.Context, userID string, unreadOnly bool) (int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	MarkEmailSent(ctx context.Context, notificationID string) error
	DeleteByID(ctx context.Context, notificationID string) error
}
