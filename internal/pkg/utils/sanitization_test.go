package utils

import (
	"testing"

	"careconnect-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:  "Jane Doe",
			Email: "  JANE@EXAMPLE.COM  ",
			Role:  "patient",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Role Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Role:  "  Doctor  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "doctor", request.Role, "role should be lowercase and trimmed")
	})

	t.Run("Whitespace Fields", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:           "  Jane Doe  ",
			Email:          "jane@example.com",
			Role:           "doctor",
			Specialization: "  Cardiology  ",
			Address:        "  12 Main St  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Jane Doe", request.Name)
		assert.Equal(t, "Cardiology", request.Specialization)
		assert.Equal(t, "12 Main St", request.Address)
	})
}

func TestSanitizeUpdateProfileRequest(t *testing.T) {
	t.Run("Available Slots Sanitization", func(t *testing.T) {
		request := &requests.UpdateProfile{
			AvailableSlots: []string{"  10:00 AM  ", " 02:30 PM "},
		}

		SanitizeUpdateProfileRequest(request)

		expected := []string{"10:00 AM", "02:30 PM"}
		assert.Equal(t, expected, request.AvailableSlots, "slots should be trimmed")
	})

	t.Run("Empty Slots Array", func(t *testing.T) {
		request := &requests.UpdateProfile{
			AvailableSlots: []string{},
		}

		SanitizeUpdateProfileRequest(request)

		assert.Equal(t, []string{}, request.AvailableSlots)
	})

	t.Run("Gender Lowercased", func(t *testing.T) {
		request := &requests.UpdateProfile{
			Gender: "  Female  ",
		}

		SanitizeUpdateProfileRequest(request)

		assert.Equal(t, "female", request.Gender)
	})
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	t.Run("All Fields Trimmed", func(t *testing.T) {
		request := &requests.CreateAppointment{
			DoctorID:        "  665f1c4e8a9b2d0012345678  ",
			AppointmentDate: " 2026-09-01 ",
			TimeSlot:        "  10:00 AM  ",
			Reason:          "  checkup  ",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "665f1c4e8a9b2d0012345678", request.DoctorID)
		assert.Equal(t, "2026-09-01", request.AppointmentDate)
		assert.Equal(t, "10:00 AM", request.TimeSlot)
		assert.Equal(t, "checkup", request.Reason)
	})
}
