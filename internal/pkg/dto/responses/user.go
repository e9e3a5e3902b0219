package responses

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"isActive"`
	AvatarURL string `json:"avatarUrl,omitempty"`

	// Doctor fields
	Specialization  string   `json:"specialization,omitempty"`
	Qualification   string   `json:"qualification,omitempty"`
	Experience      int      `json:"experience,omitempty"`
	ConsultationFee float64  `json:"consultationFee,omitempty"`
	AvailableSlots  []string `json:"availableSlots,omitempty"`

	// Patient fields
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Address        string `json:"address,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
