package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/wneessen/go-mail"

	"github.com/codepedia/lomba-api/internal/config"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	client   *mail.Client
	from     string
	fromName string
}

func New(conf *config.SMTPConfig) (*Mailer, error) {
	client, err := mail.NewClient(conf.Host,
		mail.WithPort(conf.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(conf.Username),
		mail.WithPassword(conf.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("mail.NewClient -> %w", err)
	}

	return &Mailer{
		client:   client,
		from:     conf.From,
		fromName: conf.FromName,
	}, nil
}

const otpBodyTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Kode Verifikasi Akun</h2>
  <p>Halo %s,</p>
  <p>Kode verifikasi kamu adalah:</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
  <p>Kode ini hanya berlaku selama beberapa menit. Jangan bagikan kode ini kepada siapa pun.</p>
</div>`

// SendOTP mails the one-time password used to verify a signup or reset a
// password.
func (m *Mailer) SendOTP(ctx context.Context, to, name, code string) error {
	msg, err := m.buildOTPMessage(to, name, code)
	if err != nil {
		return fmt.Errorf("m.buildOTPMessage -> %w", err)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("client.DialAndSendWithContext -> %w", err)
	}

	return nil
}

func (m *Mailer) buildOTPMessage(to, name, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return nil, fmt.Errorf("msg.FromFormat -> %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("msg.To -> %w", err)
	}

	msg.Subject("Kode Verifikasi Akun")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(otpBodyTemplate, html.EscapeString(name), code))

	return msg, nil
}
