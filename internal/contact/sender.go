package contact

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Sender delivers a validated message and returns its id.
type Sender interface {
	Send(ctx context.Context, m Message) (string, error)
}

// DefaultMockDelay is how long the mock sender pretends the network takes.
const DefaultMockDelay = time.Second

// MockSender simulates delivery: it waits Delay plus up to Jitter, logs the
// message and returns a synthetic id. Nothing leaves the process.
type MockSender struct {
	Delay  time.Duration
	Jitter time.Duration
	Logger *log.Logger
}

func (s *MockSender) Send(ctx context.Context, m Message) (string, error) {
	wait := s.Delay
	if s.Jitter > 0 {
		wait += rand.N(s.Jitter)
	}
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("simulated send: %w", ctx.Err())
		case <-timer.C:
		}
	}

	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	id := "mock-" + uuid.NewString()
	logger.Info("contact message received", "id", id, "name", m.Name, "email", m.Email, "subject", m.Subject)
	logger.Debug("contact message content", "id", id, "content", ComposeText(m))
	return id, nil
}

// SMTPConfig holds the mail transport settings. Credentials only ever come
// from the environment.
type SMTPConfig struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// LoadSMTPConfig reads SMTPConfig from the environment.
func LoadSMTPConfig() (SMTPConfig, error) {
	var cfg SMTPConfig
	if err := env.Parse(&cfg); err != nil {
		return SMTPConfig{}, fmt.Errorf("parse smtp env: %w", err)
	}
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return cfg, nil
}

// ErrSMTPNotConfigured is returned when the SMTP credentials are missing.
var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

// Configured reports whether the transport has credentials.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers messages through an SMTP relay.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
	now      func() time.Time
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail, now: time.Now}
}

func (s *SMTPSender) Send(ctx context.Context, m Message) (string, error) {
	if !s.cfg.Configured() {
		return "", ErrSMTPNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	html, err := ComposeHTML(m)
	if err != nil {
		return "", err
	}
	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.Host)
	boundary := uuid.NewString()

	from := mail.Address{Name: headerLine(m.Name), Address: s.cfg.User}
	subject := mime.QEncoding.Encode("utf-8", headerLine(m.Subject)+" - Contact Form Submission")

	msg := []byte("To: " + s.cfg.To + "\r\n" +
		"From: " + from.String() + "\r\n" +
		"Reply-To: " + headerLine(m.Email) + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Message-ID: " + id + "\r\n" +
		"Date: " + s.now().Format(time.RFC1123Z) + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=" + boundary + "\r\n" +
		"\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n\r\n" +
		ComposeText(m) + "\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n\r\n" +
		html + "\r\n" +
		"--" + boundary + "--\r\n")

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, msg); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}
	return id, nil
}

// headerLine folds a visitor supplied value onto one line so it cannot
// start a new header.
func headerLine(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
