package utils

import (
	"testing"

	"careconnect-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_RegisterUser(t *testing.T) {
	valid := func() *requests.RegisterUser {
		return &requests.RegisterUser{
			Name:     "John Miller",
			Email:    "john.miller@example.com",
			Password: "Secret123!",
			Role:     "patient",
		}
	}

	t.Run("Accepts a valid patient registration", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("Rejects a weak password", func(t *testing.T) {
		for _, password := range []string{"short1!", "nouppercase1!", "NoSpecialChar1"} {
			request := valid()
			request.Password = password
			assert.Error(t, ValidateStruct(request), "password %q should be rejected", password)
		}
	})

	t.Run("Rejects an unknown role", func(t *testing.T) {
		request := valid()
		request.Role = "admin"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Rejects a malformed email", func(t *testing.T) {
		request := valid()
		request.Email = "not-an-email"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateStruct_CreateAppointment(t *testing.T) {
	valid := func() *requests.CreateAppointment {
		return &requests.CreateAppointment{
			DoctorID:        "64f000000000000000000001",
			AppointmentDate: "2026-09-15",
			TimeSlot:        "10:00 AM",
			Reason:          "chest pain",
		}
	}

	t.Run("Accepts a valid booking", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("Rejects a 24 hour time slot", func(t *testing.T) {
		request := valid()
		request.TimeSlot = "22:00"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Rejects a malformed date", func(t *testing.T) {
		request := valid()
		request.AppointmentDate = "15-09-2026"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Rejects a missing reason", func(t *testing.T) {
		request := valid()
		request.Reason = ""
		assert.Error(t, ValidateStruct(request))
	})
}
