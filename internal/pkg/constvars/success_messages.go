package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess      = "user registered successfully"
	LoginSuccess         = "successfully login"
	LogoutSuccess        = "logged out successfully"
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"
	DoctorsGetSuccess    = "get doctors successfully"

	// Appointment messages
	AppointmentCreatedSuccess   = "appointment booked successfully"
	AppointmentGetSuccess       = "get appointment successfully"
	AppointmentListSuccess      = "get appointments successfully"
	AppointmentApprovedSuccess  = "appointment approved"
	AppointmentRejectedSuccess  = "appointment rejected"
	AppointmentCompletedSuccess = "appointment completed"
	AppointmentCancelledSuccess = "appointment cancelled"
	BookedSlotsGetSuccess       = "get booked slots successfully"

	// Notification messages
	NotificationListSuccess    = "get notifications successfully"
	NotificationReadSuccess    = "notification marked as read"
	NotificationReadAllSuccess = "all notifications marked as read"
	NotificationDeleteSuccess  = "notification deleted"
)
