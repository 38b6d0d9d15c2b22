package chat

import (
	"testing"
	"time"
)

func TestTranscriptAppendLeavesOriginalUntouched(t *testing.T) {
	greeting := Message{ID: "1", Text: "hi", Sender: SenderBot, Timestamp: time.Now()}
	base := NewTranscript(greeting)

	next := base.Append(Message{ID: "2", Text: "price?", Sender: SenderUser})
	if base.Len() != 1 {
		t.Fatalf("original transcript mutated: len=%d", base.Len())
	}
	if next.Len() != 2 {
		t.Fatalf("expected 2 messages, got %d", next.Len())
	}

	// Branching from the same base must not share backing storage.
	other := base.Append(Message{ID: "3", Text: "thanks", Sender: SenderUser})
	if last, _ := next.Last(); last.ID != "2" {
		t.Fatalf("sibling append clobbered history: %+v", last)
	}
	if last, _ := other.Last(); last.ID != "3" {
		t.Fatalf("unexpected last message: %+v", last)
	}
}

func TestTranscriptMessagesReturnsCopy(t *testing.T) {
	tr := NewTranscript(Message{ID: "1", Text: "hi"})
	msgs := tr.Messages()
	msgs[0].Text = "changed"

	if got := tr.Messages()[0].Text; got != "hi" {
		t.Fatalf("transcript exposed internal slice: %q", got)
	}
}

func TestTranscriptLastEmpty(t *testing.T) {
	if _, ok := (Transcript{}).Last(); ok {
		t.Fatal("expected no last message in empty transcript")
	}
}
