package models

import (
	"careconnect-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Role     string             `bson:"role"`
	Phone    string             `bson:"phone,omitempty"`
	IsActive bool               `bson:"isActive"`
	Avatar   string             `bson:"avatar,omitempty"`

	// Doctor fields
	Specialization  string   `bson:"specialization,omitempty"`
	Qualification   string   `bson:"qualification,omitempty"`
	Experience      int      `bson:"experience,omitempty"`
	ConsultationFee float64  `bson:"consultationFee,omitempty"`
	AvailableSlots  []string `bson:"availableSlots,omitempty"`

	// Patient fields
	DateOfBirth    string `bson:"dateOfBirth,omitempty"`
	Gender         string `bson:"gender,omitempty"`
	Address        string `bson:"address,omitempty"`
	MedicalHistory string `bson:"medicalHistory,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) IsDoctor() bool {
	return u.Role == constvars.RoleTypeDoctor
}

func (u *User) IsPatient() bool {
	return u.Role == constvars.RoleTypePatient
}
