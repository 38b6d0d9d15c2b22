package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	chatService "github.com/softsell/site/backend/internal/service/chat"
	"github.com/softsell/site/backend/pkg/utils"
)

// Event names written to the stream.
const (
	EventMessage = "message"
	EventTyping  = "typing"
	EventDone    = "done"
	EventError   = "error"
)

// ErrStreamingUnsupported is returned when the ResponseWriter cannot flush.
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// Handler delivers paced bot replies via Server-Sent Events.
type Handler struct {
	chatSvc *chatService.Service
	logger  *zap.Logger
}

// New creates a stream handler.
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, logger: logger}
}

// TypingEvent tells the widget to show or hide its typing indicator.
type TypingEvent struct {
	SessionID string `json:"sessionId"`
	Typing    bool   `json:"typing"`
}

// HandleStreamRequest records userMessage, then streams the user echo, a
// typing indicator and, after the pacing delay, the bot reply. Errors
// returned before the first byte is written leave the response untouched.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return ErrStreamingUnsupported
	}

	userMsg, err := h.chatSvc.Post(ctx, sessionID, userMessage)
	if err != nil {
		return err
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	if err := utils.SendSSEEvent(w, flusher, EventMessage, userMsg); err != nil {
		return nil
	}
	if err := utils.SendSSEEvent(w, flusher, EventTyping, TypingEvent{SessionID: sessionID, Typing: true}); err != nil {
		return nil
	}

	botMsg, err := h.chatSvc.Reply(ctx, sessionID, userMessage)
	if err != nil {
		if ctx.Err() != nil {
			h.logger.Debug("stream closed before reply", zap.String("session", sessionID))
			return nil
		}
		h.logger.Warn("reply failed", zap.String("session", sessionID), zap.Error(err))
		_ = utils.SendSSEEvent(w, flusher, EventError, map[string]string{"error": fmt.Sprintf("reply failed: %v", err)})
		return nil
	}

	_ = utils.SendSSEEvent(w, flusher, EventTyping, TypingEvent{SessionID: sessionID, Typing: false})
	_ = utils.SendSSEEvent(w, flusher, EventMessage, botMsg)
	_ = utils.SendSSEEvent(w, flusher, EventDone, map[string]string{"sessionId": sessionID})

	h.logger.Debug("stream completed", zap.String("session", sessionID), zap.String("reply", botMsg.ID))
	return nil
}
