package mailer

import (
	"fmt"
	"net/smtp"
	"regexp"

	"careconnect-service/internal/app/drivers/mailer"
	"careconnect-service/internal/pkg/constvars"
	"careconnect-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type mailerService struct {
	Client *mailer.SMTPClient
	Logger *zap.Logger
	AppEnv string
}

func NewMailerService(client *mailer.SMTPClient, logger *zap.Logger, appEnv string) MailerService {
	return &mailerService{
		Client: client,
		Logger: logger,
		AppEnv: appEnv,
	}
}

func (svc *mailerService) SendHTMLEmail(to, subject, htmlBody string) error {
	// Outside production the message is logged instead of delivered.
	if svc.AppEnv != "production" {
		svc.Logger.Info("email (not sent)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	from := svc.Client.Sender
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func (svc *mailerService) ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
