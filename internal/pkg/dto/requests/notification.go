package requests

type ListNotifications struct {
	UserID     string
	Page       int
	PageSize   int
	UnreadOnly bool
}

type ReadAllNotifications struct {
	UserID string `json:"userId" validate:"required"`
}
