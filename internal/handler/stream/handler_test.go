package stream

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/softsell/site/backend/internal/analysis/reply"
	"github.com/softsell/site/backend/internal/model/faq"
	chatservice "github.com/softsell/site/backend/internal/service/chat"
)

func newHandler(minDelay, maxDelay time.Duration) (*Handler, *chatservice.Service) {
	chatSvc := chatservice.NewService(reply.NewDefaultMatcher(), chatservice.WithReplyDelay(minDelay, maxDelay))
	return New(chatSvc, nil), chatSvc
}

func TestHandleStreamRequestSendsPacedReply(t *testing.T) {
	handler, chatSvc := newHandler(0, 0)
	ctx := context.Background()
	session, err := chatSvc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	rec := httptest.NewRecorder()
	if err := handler.HandleStreamRequest(ctx, rec, session.ID, "What types of software do you buy?"); err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}

	body := rec.Body.String()
	order := []string{"event: message", "event: typing", "event: message", "event: done"}
	pos := 0
	for _, marker := range order {
		idx := strings.Index(body[pos:], marker)
		if idx < 0 {
			t.Fatalf("missing %q after offset %d in:\n%s", marker, pos, body)
		}
		pos += idx + len(marker)
	}
	if !strings.Contains(body, "Microsoft, Adobe, Oracle") {
		t.Fatalf("bot reply missing from stream:\n%s", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}

	messages, err := chatSvc.Transcript(ctx, session.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(messages) != 3 || messages[2].Text != faq.DefaultRules()[1].Reply {
		t.Fatalf("unexpected transcript: %+v", messages)
	}
}

func TestHandleStreamRequestUnknownSession(t *testing.T) {
	handler, _ := newHandler(0, 0)
	rec := httptest.NewRecorder()

	err := handler.HandleStreamRequest(context.Background(), rec, "missing", "hello")
	if !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("nothing should be written for unknown sessions, got %q", rec.Body.String())
	}
}

func TestHandleStreamRequestClientGoneDropsReply(t *testing.T) {
	handler, chatSvc := newHandler(time.Hour, time.Hour)
	session, err := chatSvc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	rec := httptest.NewRecorder()
	if err := handler.HandleStreamRequest(ctx, rec, session.ID, "price?"); err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}
	if strings.Contains(rec.Body.String(), "event: done") {
		t.Fatal("stream should stop when the client leaves")
	}

	messages, _ := chatSvc.Transcript(context.Background(), session.ID)
	if len(messages) != 2 {
		t.Fatalf("expected greeting + user message only, got %d", len(messages))
	}
}
