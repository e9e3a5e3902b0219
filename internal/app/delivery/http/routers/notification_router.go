package routers

import (
	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/delivery/http/middlewares"
	"careconnect-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func SetupNotificationRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	notificationController *notifications.NotificationController,
) {
	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/notifications", func(r chi.Router) {
			attachNotificationRoutes(r, middlewares, notificationController)
		})
	})
}

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", notificationController.List)
	router.Put("/read-all", notificationController.MarkAllRead)
	router.Put("/{notificationID}/read", notificationController.MarkRead)
	router.Delete("/{notificationID}", notificationController.Delete)
}
