package mailer

type MailerService interface {
	SendHTMLEmail(to, subject, htmlBody string) error
	ValidateEmail(email string) bool
}
