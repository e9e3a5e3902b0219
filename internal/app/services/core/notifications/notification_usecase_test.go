package notifications

import (
	"context"
	"testing"

	"careconnect-service/internal/app/models"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/dto/requests"
	"careconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedNotification(repo *fakeNotificationRepository, userID string, read bool) *models.Notification {
	notification := &models.Notification{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		Type:    constvars.NotificationTypeGeneral,
		Title:   "General Notice",
		Message: "scheduled maintenance tonight",
		IsRead:  read,
	}
	repo.notifications[notification.ID.Hex()] = notification
	return notification
}

func assertNotificationError(t *testing.T, err error, expectedStatus int, expectedMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, expectedStatus, customErr.StatusCode)
	assert.Equal(t, expectedMessage, customErr.ClientMessage)
}

func TestNotificationUsecase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns notifications with the unread count", func(t *testing.T) {
		repo := newFakeNotificationRepository()
		userID := primitive.NewObjectID().Hex()
		seedNotification(repo, userID, false)
		seedNotification(repo, userID, true)
		seedNotification(repo, primitive.NewObjectID().Hex(), false)

		uc := NewNotificationUsecase(repo)
		result, total, err := uc.List(ctx, &requests.ListNotifications{
			UserID:   userID,
			Page:     1,
			PageSize: 20,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, result.Notifications, 2)
		assert.Equal(t, 1, result.UnreadCount)
	})

	t.Run("Filters to unread only", func(t *testing.T) {
		repo := newFakeNotificationRepository()
		userID := primitive.NewObjectID().Hex()
		unread := seedNotification(repo, userID, false)
		seedNotification(repo, userID, true)

		uc := NewNotificationUsecase(repo)
		result, total, err := uc.List(ctx, &requests.ListNotifications{
			UserID:     userID,
			Page:       1,
			PageSize:   20,
			UnreadOnly: true,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, result.Notifications, 1)
		assert.Equal(t, unread.ID.Hex(), result.Notifications[0].ID)
	})

	t.Run("User ID is required", func(t *testing.T) {
		uc := NewNotificationUsecase(newFakeNotificationRepository())
		_, _, err := uc.List(ctx, &requests.ListNotifications{Page: 1, PageSize: 20})

		assertNotificationError(t, err, 400, constvars.ErrClientUserIDRequired)
	})
}

func TestNotificationUsecase_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks the notification read and returns it", func(t *testing.T) {
		repo := newFakeNotificationRepository()
		notification := seedNotification(repo, primitive.NewObjectID().Hex(), false)

		uc := NewNotificationUsecase(repo)
		result, err := uc.MarkRead(ctx, notification.ID.Hex())

		require.NoError(t, err)
		assert.True(t, result.IsRead)
		assert.True(t, repo.notifications[notification.ID.Hex()].IsRead)
	})

	t.Run("Unknown notification returns not found", func(t *testing.T) {
		uc := NewNotificationUsecase(newFakeNotificationRepository())
		_, err := uc.MarkRead(ctx, primitive.NewObjectID().Hex())

		assertNotificationError(t, err, 404, constvars.ErrClientNotificationMissing)
	})
}

func TestNotificationUsecase_MarkAllRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks every notification of the user", func(t *testing.T) {
		repo := newFakeNotificationRepository()
		userID := primitive.NewObjectID().Hex()
		seedNotification(repo, userID, false)
		seedNotification(repo, userID, false)
		other := seedNotification(repo, primitive.NewObjectID().Hex(), false)

		uc := NewNotificationUsecase(repo)
		require.NoError(t, uc.MarkAllRead(ctx, userID))

		for _, notification := range repo.byUser(userID) {
			assert.True(t, notification.IsRead)
		}
		assert.False(t, repo.notifications[other.ID.Hex()].IsRead)
	})

	t.Run("User ID is required", func(t *testing.T) {
		uc := NewNotificationUsecase(newFakeNotificationRepository())
		assertNotificationError(t, uc.MarkAllRead(ctx, ""), 400, constvars.ErrClientUserIDRequired)
	})
}

func TestNotificationUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes an existing notification", func(t *testing.T) {
		repo := newFakeNotificationRepository()
		notification := seedNotification(repo, primitive.NewObjectID().Hex(), false)

		uc := NewNotificationUsecase(repo)
		require.NoError(t, uc.Delete(ctx, notification.ID.Hex()))
		assert.Empty(t, repo.notifications)
	})

	t.Run("Unknown notification returns not found", func(t *testing.T) {
		uc := NewNotificationUsecase(newFakeNotificationRepository())
		err := uc.Delete(ctx, primitive.NewObjectID().Hex())

		assertNotificationError(t, err, 404, constvars.ErrClientNotificationMissing)
	})
}
