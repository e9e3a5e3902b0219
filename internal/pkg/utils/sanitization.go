package utils

import (
	"strings"

	"careconnect-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.Address = strings.TrimSpace(input.Address)
	input.MedicalHistory = strings.TrimSpace(input.MedicalHistory)

	input.AvailableSlots = cleanWhiteSpaceFromEachStringOfAnArray(input.AvailableSlots)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}
