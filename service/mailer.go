package service

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/leadflowbr/leadflow_end/utils"
)

// Mailer SMTP sender for plan notifications. A Mailer with no host is a
// no-op, so mail stays best-effort in every flow.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewMailer wires the SMTP settings.
func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *Mailer) send(to, subject, body string) error {
	if m == nil || m.host == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

// SendQuotaReachedEmail nudges a free user toward the upgrade flow.
// Failures are logged, never surfaced to the caller.
func (m *Mailer) SendQuotaReachedEmail(to, name string) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You have reached your monthly lead limit. Upgrade to keep prospecting without limits.</p>",
		name,
	)
	if err := m.send(to, "You reached your monthly lead limit", body); err != nil {
		utils.Logger.Error().Err(err).Str("to", to).Msg("quota mail failed")
	}
}

// SendTrialEndedEmail tells a user their trial expired.
func (m *Mailer) SendTrialEndedEmail(to, name string) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your 14-day trial has ended. Your account is now on the free plan. Upgrade any time to get unlimited leads back.</p>",
		name,
	)
	if err := m.send(to, "Your trial has ended", body); err != nil {
		utils.Logger.Error().Err(err).Str("to", to).Msg("trial mail failed")
	}
}
