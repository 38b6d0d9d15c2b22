package chat

// Transcript is the append-only message history of a session. It is a value:
// Append returns a new Transcript and leaves the receiver untouched.
type Transcript struct {
	messages []Message
}

// NewTranscript starts a history with the given opening messages.
func NewTranscript(opening ...Message) Transcript {
	return Transcript{messages: append([]Message(nil), opening...)}
}

// Append returns a transcript with msg added at the end.
func (t Transcript) Append(msg Message) Transcript {
	next := make([]Message, len(t.messages), len(t.messages)+1)
	copy(next, t.messages)
	return Transcript{messages: append(next, msg)}
}

// Len reports the number of messages.
func (t Transcript) Len() int {
	return len(t.messages)
}

// Last returns the newest message.
func (t Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Messages returns a copy in creation order.
func (t Transcript) Messages() []Message {
	return append([]Message(nil), t.messages...)
}
