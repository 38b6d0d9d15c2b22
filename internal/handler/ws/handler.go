package ws

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	chatService "github.com/softsell/site/backend/internal/service/chat"
)

// Frame types.
const (
	TypeHistory = "history"
	TypeMessage = "message"
	TypeTyping  = "typing"
	TypeError   = "error"
)

const (
	writeTimeout   = 10 * time.Second
	maxInboundSize = 4 << 10
)

var errClientGone = errors.New("client closed connection")

// Handler carries the chat widget over a WebSocket.
type Handler struct {
	chatSvc  *chatService.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a WebSocket chat handler accepting the given browser origins.
func New(chatSvc *chatService.Service, allowedOrigins []string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	return &Handler{
		chatSvc: chatSvc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the WebSocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	history, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxInboundSize)

	h.logger.Debug("websocket opened", zap.String("session", sessionID))

	// The request context is detached from hijacked connections.
	err = h.serve(context.Background(), conn, sessionID, history)
	if err != nil && !errors.Is(err, errClientGone) {
		h.logger.Warn("websocket closed with error", zap.String("session", sessionID), zap.Error(err))
		return
	}
	h.logger.Debug("websocket closed", zap.String("session", sessionID))
}

// serve runs one connection: a single writer drains out, the reader posts user
// messages and spawns one paced reply per message. Pending replies are
// dropped when the connection ends.
func (h *Handler) serve(ctx context.Context, conn *websocket.Conn, sessionID string, history interface{}) error {
	g, ctx := errgroup.WithContext(ctx)
	out := make(chan outgoingMessage, 16)

	send := func(frameType string, data interface{}) bool {
		msg := outgoingMessage{Type: frameType, SessionID: sessionID, Data: data, Timestamp: time.Now().UnixMilli()}
		select {
		case out <- msg:
			return true
		case <-ctx.Done():
			return false
		}
	}

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case msg := <-out:
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteJSON(msg); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		// Unblocks the reader.
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		return conn.Close()
	})

	g.Go(func() error {
		send(TypeHistory, history)
		for {
			var in inboundMessage
			if err := conn.ReadJSON(&in); err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
					return errClientGone
				}
				return err
			}
			h.dispatch(ctx, g, sessionID, in, send)
		}
	})

	return g.Wait()
}

func (h *Handler) dispatch(ctx context.Context, g *errgroup.Group, sessionID string, in inboundMessage, send func(string, interface{}) bool) {
	if in.Type != TypeMessage {
		send(TypeError, map[string]string{"error": "unsupported frame type " + in.Type})
		return
	}
	if strings.TrimSpace(in.Text) == "" {
		// The widget ignores blank submissions.
		return
	}

	userMsg, err := h.chatSvc.Post(ctx, sessionID, in.Text)
	if err != nil {
		send(TypeError, map[string]string{"error": err.Error()})
		return
	}
	send(TypeMessage, userMsg)
	send(TypeTyping, map[string]bool{"typing": true})

	text := in.Text
	g.Go(func() error {
		botMsg, err := h.chatSvc.Reply(ctx, sessionID, text)
		if err != nil {
			if ctx.Err() == nil {
				send(TypeError, map[string]string{"error": err.Error()})
			}
			return nil
		}
		send(TypeTyping, map[string]bool{"typing": false})
		send(TypeMessage, botMsg)
		return nil
	})
}
