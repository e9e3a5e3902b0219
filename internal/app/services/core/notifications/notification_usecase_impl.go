package notifications

import (
	"context"
	"time"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/dto/responses"
	"careconnect-service/internal/pkg/exceptions"
)

type notificationUsecase struct {
	NotificationRepository NotificationRepository
}

func NewNotificationUsecase(notificationMongoRepository NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationMongoRepository,
	}
}

func (uc *notificationUsecase) List(ctx context.Context, request *requests.ListNotifications) (*responses.NotificationList, int, error) {
	if request.UserID == "" {
		return nil, 0, exceptions.ErrUserIDRequired(nil)
	}

	notifications, err := uc.NotificationRepository.FindByUser(ctx, request.UserID, request.UnreadOnly, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.NotificationRepository.CountByUser(ctx, request.UserID, request.UnreadOnly)
	if err != nil {
		return nil, 0, err
	}

	unreadCount, err := uc.NotificationRepository.CountUnread(ctx, request.UserID)
	if err != nil {
		return nil, 0, err
	}

	list := &responses.NotificationList{
		Notifications: buildNotificationResponses(notifications),
		UnreadCount:   unreadCount,
	}
	return list, total, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, notificationID string) (*responses.Notification, error) {
	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}

	if err := uc.NotificationRepository.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	notification.IsRead = true

	return buildNotificationResponse(notification), nil
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return exceptions.ErrUserIDRequired(nil)
	}
	return uc.NotificationRepository.MarkAllRead(ctx, userID)
}

func (uc *notificationUsecase) Delete(ctx context.Context, notificationID string) error {
	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return exceptions.ErrNotificationNotExist(nil)
	}

	return uc.NotificationRepository.DeleteByID(ctx, notificationID)
}

func buildNotificationResponse(notification *models.Notification) *responses.Notification {
	return &responses.Notification{
		ID:        notification.ID.Hex(),
		UserID:    notification.UserID,
		UserEmail: notification.UserEmail,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Data:      notification.Data,
		IsRead:    notification.IsRead,
		EmailSent: notification.EmailSent,
		CreatedAt: notification.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: notification.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func buildNotificationResponses(notifications []models.Notification) []responses.Notification {
	result := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, *buildNotificationResponse(&notifications[i]))
	}
	return result
}
