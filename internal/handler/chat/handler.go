package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/softsell/site/backend/internal/model/chat"
	"github.com/softsell/site/backend/internal/model/faq"
	chatService "github.com/softsell/site/backend/internal/service/chat"
	"github.com/softsell/site/backend/pkg/utils"
)

// Handler exposes the chat widget over plain request/response.
type Handler struct {
	chatSvc *chatService.Service
	logger  *zap.Logger
}

// New creates a chat handler.
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, logger: logger}
}

// RegisterRoutes registers chat routes. writeMW wraps routes that append to
// a transcript.
func (h *Handler) RegisterRoutes(r chi.Router, writeMW ...func(http.Handler) http.Handler) {
	r.Get("/chat/suggestions", h.handleSuggestions)
	r.Post("/chat/session", h.handleCreateSession)
	r.Get("/chat/session/{sessionID}/messages", h.handleTranscript)
	r.With(writeMW...).Post("/chat/messages", h.handleSendMessage)
}

type sessionResponse struct {
	Session  chat.Session   `json:"session"`
	Messages []chat.Message `json:"messages"`
}

type exchangeResponse struct {
	User chat.Message `json:"user"`
	Bot  chat.Message `json:"bot"`
}

func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string][]string{"suggestions": faq.Suggestions()})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		h.logger.Error("create session", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	messages, err := h.chatSvc.Transcript(r.Context(), session.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, sessionResponse{Session: session, Messages: messages})
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatSvc.Transcript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]chat.Message{"messages": messages})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Text      string `json:"text"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	user, bot, err := h.chatSvc.Ask(r.Context(), payload.SessionID, payload.Text)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, exchangeResponse{User: user, Bot: bot})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("chat request failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
