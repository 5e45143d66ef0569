// Package contact handles contact form submissions: validation, a simulated
// (or SMTP) delivery, and the result shown back to the visitor.
package contact

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MsgMissingFields = "Please fill out all fields."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgFailed        = "Failed to process form. Please try again."
	MsgSent          = "Thank you for your message! I'll get back to you soon."
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Message is a single contact form submission. It lives only for the
// duration of one attempt and is never stored.
type Message struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// Result is returned to the visitor after a submission attempt.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func messageValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks that every field is present and the email is well formed.
// Missing fields are reported before a bad email. The returned error wraps
// ErrMissingField or ErrInvalidEmail.
func Validate(m Message) error {
	err := messageValidator().Struct(m.Normalize())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var missing []string
	badEmail := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, strings.ToLower(fe.Field()))
		case "email":
			badEmail = true
		}
	}
	if len(missing) > 0 {
		return &FieldError{Fields: missing, err: ErrMissingField}
	}
	if badEmail {
		return &FieldError{Fields: []string{"email"}, err: ErrInvalidEmail}
	}
	return err
}

// FieldError names the fields that failed validation.
type FieldError struct {
	Fields []string
	err    error
}

func (e *FieldError) Error() string {
	return e.err.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *FieldError) Unwrap() error { return e.err }

// UserMessage maps an error to the notification shown to the visitor.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return MsgMissingFields
	case errors.Is(err, ErrInvalidEmail):
		return MsgInvalidEmail
	default:
		return MsgFailed
	}
}
