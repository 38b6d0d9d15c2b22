package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/softsell/site/backend/internal/config"
	"github.com/softsell/site/backend/internal/handler/chat"
	"github.com/softsell/site/backend/internal/handler/contact"
	"github.com/softsell/site/backend/internal/handler/site"
	"github.com/softsell/site/backend/internal/handler/stream"
	"github.com/softsell/site/backend/internal/handler/ws"
	middlewarePkg "github.com/softsell/site/backend/internal/middleware"
	siteModel "github.com/softsell/site/backend/internal/model/site"
	chatService "github.com/softsell/site/backend/internal/service/chat"
	contactService "github.com/softsell/site/backend/internal/service/contact"
	"github.com/softsell/site/backend/pkg/utils"
)

// Dependencies groups what the router hands to its handlers.
type Dependencies struct {
	Server     config.ServerConfig
	Content    siteModel.Content
	ChatSvc    *chatService.Service
	ContactSvc *contactService.Service
	// Limiter throttles write endpoints. Nil leaves them unthrottled.
	Limiter *middlewarePkg.RateLimiter
	Logger  *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.Server.AllowedOrigins))

	var writeMW []func(http.Handler) http.Handler
	if deps.Limiter != nil {
		writeMW = append(writeMW, deps.Limiter.Middleware)
	}

	siteHandler := site.New(deps.Content)
	chatHandler := chat.New(deps.ChatSvc, logger)
	streamHandler := stream.New(deps.ChatSvc, logger)
	wsHandler := ws.New(deps.ChatSvc, deps.Server.AllowedOrigins, logger)
	contactHandler := contact.New(deps.ContactSvc, logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		siteHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api, writeMW...)
		contactHandler.RegisterRoutes(api, writeMW...)
		wsHandler.RegisterRoutes(api)

		// Paced replies over SSE
		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage)
			switch {
			case err == nil:
			case errors.Is(err, chatService.ErrSessionNotFound):
				utils.RespondError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, chatService.ErrEmptyMessage):
				utils.RespondError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Error("stream request failed", zap.String("session", sessionID), zap.Error(err))
				utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
			}
		})
	})

	return r
}
