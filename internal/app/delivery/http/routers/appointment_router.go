package routers

import (
	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/delivery/http/middlewares"
	"careconnect-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func SetupAppointmentRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
) {
	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})
	})
}

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", appointmentController.Create)
	router.Get("/patient", appointmentController.ListForPatient)
	router.Get("/doctor", appointmentController.ListForDoctor)
	router.Get("/slots/{doctorID}", appointmentController.GetBookedSlots)
	router.Get("/{appointmentID}", appointmentController.GetByID)
	router.Put("/{appointmentID}/approve", appointmentController.Approve)
	router.Put("/{appointmentID}/reject", appointmentController.Reject)
	router.Put("/{appointmentID}/complete", appointmentController.Complete)
	router.Put("/{appointmentID}/cancel", appointmentController.Cancel)
}
