package routers

import (
	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/delivery/http/middlewares"
	"careconnect-service/internal/app/services/core/auth"
	"careconnect-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func SetupAuthRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
) {
	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})
		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})
		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, userController)
		})
	})
}

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
}

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate).Get("/profile", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", userController.UpdateProfile)
}

func attachDoctorRoutes(router chi.Router, userController *users.UserController) {
	router.Get("/", userController.GetDoctors)
	router.Get("/{doctorID}", userController.GetDoctorByID)
}
