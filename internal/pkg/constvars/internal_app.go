package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	RoleTypePatient = "patient"
	RoleTypeDoctor  = "doctor"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	NotificationTypeAppointmentCreated   = "appointment_created"
	NotificationTypeAppointmentApproved  = "appointment_approved"
	NotificationTypeAppointmentRejected  = "appointment_rejected"
	NotificationTypeAppointmentCompleted = "appointment_completed"
	NotificationTypeAppointmentCancelled = "appointment_cancelled"
	NotificationTypeUserRegistered       = "user_registered"
	NotificationTypeGeneral              = "general"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppointmentDateFormat  = "2006-01-02"
)

const (
	DefaultRejectionReason = "No reason provided"
)

const (
	REQUEST_ID_PREFIX = "CRCN_SVC_"
)
