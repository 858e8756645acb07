package vote

import "sync"

// Message is one inbound group message. When a group member clicks a vote
// button, the platform delivers a message whose Text equals the button's
// selector token; everything else is ordinary chatter the tally ignores.
type Message struct {
	GroupID string
	Sender  string
	Text    string
}

// Log is an append-only, ordered record of inbound group messages.
// Messages are never mutated or removed during a session.
type Log struct {
	mu       sync.Mutex
	messages []Message
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(msg Message) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
}

// Snapshot returns an ordered copy of all logged messages.
func (l *Log) Snapshot() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
