package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"numeric":   "must be a number",
	"datetime":  "must be a valid date in %s format",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_role": "must be either 'doctor' or 'patient'",
	"time_slot": "must be a clock label such as '10:00 AM'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"

	ErrClientEmailAlreadyExists  = "user already exists with this email"
	ErrClientInvalidCredentials  = "invalid credentials"
	ErrClientAccountDeactivated  = "account is deactivated"
	ErrClientUserNotFound        = "user not found"
	ErrClientDoctorNotFound      = "doctor not found"
	ErrClientInvalidImageFormat  = "the image you uploaded does not meet the specified standards"
	ErrClientUserIDRequired      = "user ID is required"
	ErrClientDateRequired        = "date is required"
	ErrClientNotificationMissing = "notification not found"

	ErrClientSlotAlreadyBooked     = "this time slot is already booked"
	ErrClientAppointmentNotFound   = "appointment not found"
	ErrClientNotAppointmentParty   = "not authorized to view this appointment"
	ErrClientNotAppointmentDoctor  = "not authorized to act on this appointment"
	ErrClientNotAppointmentPatient = "not authorized to cancel this appointment"
	ErrClientOnlyPendingApprovable = "only pending appointments can be approved"
	ErrClientOnlyPendingRejectable = "only pending appointments can be rejected"
	ErrClientOnlyApprovedComplete  = "only approved appointments can be completed"
	ErrClientNotCancellable        = "this appointment cannot be cancelled"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevValidationFailed      = "request validation failed"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate       = "cannot parse the requested date"
	ErrDevImageValidationFailed = "image validation failed"
	ErrDevServerProcess         = "server encountered an error while processing"
	ErrDevServerDeadline        = "operation exceeded its deadline"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevAccountDeactivated   = "account flagged inactive"
	ErrDevEmailAlreadyExists   = "email already registered"
	ErrDevUserNotExists        = "user does not exist"
	ErrDevDoctorNotExists      = "doctor does not exist or is inactive"
	ErrDevRoleTypeDoesntMatch  = "request done by user with different role"

	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"

	ErrDevAppointmentNotExists   = "appointment does not exist"
	ErrDevSlotTaken              = "pending or approved appointment already holds this slot"
	ErrDevIllegalStatusChange    = "appointment status does not allow this transition"
	ErrDevActorNotParticipant    = "acting user is not a participant of the appointment"
	ErrDevNotificationNotExists  = "notification does not exist"
	ErrDevNotificationMissingUID = "notification query without user id"

	ErrDevDBFailedToFindDocument     = "failed to find document on mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on mongo database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongo database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on mongo database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to exchange %s"
	ErrDevRabbitMQConsume = "failed to start consuming from queue %s"
	ErrDevSMTPSendEmail   = "failed to send email via SMTP host %s"

	ErrDevMinioFailedToCreateObject = "failed to create object on minio bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object URL on minio bucket %s"
)
