package chat

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/softsell/site/backend/internal/analysis/reply"
	"github.com/softsell/site/backend/internal/model/chat"
	"github.com/softsell/site/backend/internal/model/faq"
)

const instrumentationName = "github.com/softsell/site/backend/internal/service/chat"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message text is required")
)

// Matcher chooses the bot reply for a user message.
type Matcher interface {
	Resolve(input string) reply.Result
}

// Option customizes a Service.
type Option func(*Service)

// WithReplyDelay sets the pacing window used by Reply. A zero window replies
// immediately.
func WithReplyDelay(minDelay, maxDelay time.Duration) Option {
	return func(s *Service) {
		if maxDelay < minDelay {
			maxDelay = minDelay
		}
		s.minDelay, s.maxDelay = minDelay, maxDelay
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service holds widget conversations in memory.
type Service struct {
	mu          sync.RWMutex
	sessions    map[string]chat.Session
	transcripts map[string]chat.Transcript

	matcher  Matcher
	minDelay time.Duration
	maxDelay time.Duration
	now      func() time.Time
	logger   *zap.Logger

	tracer  trace.Tracer
	replies metric.Int64Counter
}

// NewService bootstraps the in-memory chat service.
func NewService(matcher Matcher, opts ...Option) *Service {
	s := &Service{
		sessions:    make(map[string]chat.Session),
		transcripts: make(map[string]chat.Transcript),
		matcher:     matcher,
		now:         time.Now,
		logger:      zap.NewNop(),
		tracer:      otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(s)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"softsell.chat.replies",
		metric.WithDescription("Bot replies by matcher branch"),
	)
	if err != nil {
		s.logger.Warn("create reply counter", zap.Error(err))
	}
	s.replies = counter

	return s
}

// CreateSession opens a conversation whose transcript starts with the greeting.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
	}
	greeting := s.newMessage(session.ID, chat.SenderBot, faq.Greeting)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.transcripts[session.ID] = chat.NewTranscript(greeting)
	s.mu.Unlock()

	s.logger.Debug("session created", zap.String("session", session.ID))
	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Transcript returns the session's messages in creation order.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transcript, ok := s.transcripts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return transcript.Messages(), nil
}

// Ask records the user's message and the matched reply in one step.
func (s *Service) Ask(ctx context.Context, sessionID, text string) (user, bot chat.Message, err error) {
	_, span := s.tracer.Start(ctx, "chat.Ask", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return chat.Message{}, chat.Message{}, ErrEmptyMessage
	}

	result := s.matcher.Resolve(text)
	user = s.newMessage(sessionID, chat.SenderUser, text)
	bot = s.newMessage(sessionID, chat.SenderBot, result.Reply)

	s.mu.Lock()
	transcript, ok := s.transcripts[sessionID]
	if !ok {
		s.mu.Unlock()
		return chat.Message{}, chat.Message{}, ErrSessionNotFound
	}
	s.transcripts[sessionID] = transcript.Append(user).Append(bot)
	s.mu.Unlock()

	s.recordReply(ctx, sessionID, result)
	return user, bot, nil
}

// Post records a user message without answering it. Pair with Reply.
func (s *Service) Post(_ context.Context, sessionID, text string) (chat.Message, error) {
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	msg := s.newMessage(sessionID, chat.SenderUser, text)
	if err := s.append(sessionID, msg); err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}

// Reply waits one pacing delay, then records and returns the bot's answer to
// text. If ctx ends during the wait the reply is dropped and ctx.Err() is
// returned.
func (s *Service) Reply(ctx context.Context, sessionID, text string) (chat.Message, error) {
	ctx, span := s.tracer.Start(ctx, "chat.Reply", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()

	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return chat.Message{}, err
	}

	result := s.matcher.Resolve(text)

	if delay := s.Delay(); delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Debug("reply discarded", zap.String("session", sessionID), zap.Error(ctx.Err()))
			return chat.Message{}, ctx.Err()
		case <-timer.C:
		}
	}

	msg := s.newMessage(sessionID, chat.SenderBot, result.Reply)
	if err := s.append(sessionID, msg); err != nil {
		return chat.Message{}, err
	}

	s.recordReply(ctx, sessionID, result)
	return msg, nil
}

// Delay returns the next pacing duration, uniform in the configured window.
func (s *Service) Delay() time.Duration {
	if s.maxDelay <= s.minDelay {
		return s.minDelay
	}
	return s.minDelay + time.Duration(rand.Int63n(int64(s.maxDelay-s.minDelay)))
}

func (s *Service) append(sessionID string, msg chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript, ok := s.transcripts[sessionID]
	if !ok {
		return fmt.Errorf("append to %s: %w", sessionID, ErrSessionNotFound)
	}
	s.transcripts[sessionID] = transcript.Append(msg)
	return nil
}

func (s *Service) newMessage(sessionID string, sender chat.Sender, text string) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		Sender:    sender,
		Timestamp: s.now().UTC(),
	}
}

func (s *Service) recordReply(ctx context.Context, sessionID string, result reply.Result) {
	if s.replies != nil {
		s.replies.Add(ctx, 1, metric.WithAttributes(attribute.String("category", string(result.Category))))
	}
	s.logger.Info("reply sent",
		zap.String("session", sessionID),
		zap.String("category", string(result.Category)),
		zap.String("pattern", result.Pattern))
}
