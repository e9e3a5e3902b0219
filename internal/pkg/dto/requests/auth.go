package requests

type RegisterUser struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"password"`
	Role     string `json:"role" validate:"user_role"`
	Phone    string `json:"phone" validate:"omitempty,min=6,max=20"`

	// Doctor fields
	Specialization  string  `json:"specialization" validate:"omitempty,max=100"`
	Qualification   string  `json:"qualification" validate:"omitempty,max=200"`
	Experience      int     `json:"experience" validate:"omitempty,min=0"`
	ConsultationFee float64 `json:"consultationFee" validate:"omitempty,min=0"`

	// Patient fields
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     string `json:"address" validate:"omitempty,max=300"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateProfile struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,min=6,max=20"`

	// Doctor fields
	Specialization  string   `json:"specialization" validate:"omitempty,max=100"`
	Qualification   string   `json:"qualification" validate:"omitempty,max=200"`
	Experience      *int     `json:"experience" validate:"omitempty,min=0"`
	ConsultationFee *float64 `json:"consultationFee" validate:"omitempty,min=0"`
	AvailableSlots  []string `json:"availableSlots" validate:"omitempty,dive,time_slot"`

	// Patient fields
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address        string `json:"address" validate:"omitempty,max=300"`
	MedicalHistory string `json:"medicalHistory" validate:"omitempty,max=2000"`

	// Base64 encoded image, optional
	ProfilePicture string `json:"profilePicture"`

	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}
