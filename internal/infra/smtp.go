package infra

import (
	"fmt"
	"net/smtp"

	"axonet/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for outbound transactional email.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendCredentials delivers a freshly provisioned account's temporary
// credentials to the applicant.
func (m *Mailer) SendCredentials(to, name, username, tempPassword, loginURL string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = "Your AXO Networks account is ready"
	e.Text = []byte(fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your network access request has been approved.\n\n"+
			"Username: %s\n"+
			"Temporary password: %s\n\n"+
			"Sign in at %s and change your password on first login.\n",
		name, username, tempPassword, loginURL))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
