package contact

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeInvalid Outcome = "invalid"
	OutcomeFailed  Outcome = "failed"
)

// Recorder keeps a tally of submission outcomes. It never sees the message.
type Recorder interface {
	RecordContactAttempt(ctx context.Context, outcome Outcome) error
}

// Service turns form submissions into Results.
type Service struct {
	sender   Sender
	recorder Recorder
	logger   *log.Logger
}

type Option func(*Service)

// WithRecorder records each attempt's outcome.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger overrides the package logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService builds a Service around sender. A nil sender falls back to a
// MockSender with the default delay.
func NewService(sender Sender, opts ...Option) *Service {
	s := &Service{sender: sender, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.sender == nil {
		s.sender = &MockSender{Delay: DefaultMockDelay, Logger: s.logger}
	}
	return s
}

// Submit validates m and hands it to the sender. Every failure, including a
// panic in the sender, comes back as an unsuccessful Result.
func (s *Service) Submit(ctx context.Context, m Message) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("contact submission panicked", "panic", r)
			res = Result{Error: MsgFailed}
			s.record(ctx, OutcomeFailed)
		}
	}()

	m = m.Normalize()
	if err := Validate(m); err != nil {
		s.logger.Warn("contact submission rejected", "err", err)
		s.record(ctx, OutcomeInvalid)
		return Result{Error: UserMessage(err)}
	}

	id, err := s.sender.Send(ctx, m)
	if err != nil {
		s.logger.Error("contact submission failed", "err", err)
		s.record(ctx, OutcomeFailed)
		return Result{Error: MsgFailed}
	}
	if id == "" {
		id = uuid.NewString()
	}

	s.record(ctx, OutcomeSent)
	return Result{Success: true, MessageID: id}
}

func (s *Service) record(ctx context.Context, o Outcome) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordContactAttempt(context.WithoutCancel(ctx), o); err != nil {
		s.logger.Warn("record contact attempt", "outcome", o, "err", err)
	}
}
