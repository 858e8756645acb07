// Package history keeps the per-process conversation transcript handed to
// the agent on every turn.
package history

import (
	"sync"

	"groupbook.app/concierge/common/llm"
)

// Log is an append-only conversation transcript. It is seeded with the
// system prompt and grows one entry per user, assistant, and tool message.
type Log struct {
	mu       sync.Mutex
	messages []llm.Message
}

// New returns a transcript seeded with systemPrompt.
func New(systemPrompt string) *Log {
	return &Log{
		messages: []llm.Message{{Role: "system", Content: systemPrompt}},
	}
}

func (l *Log) Append(msg llm.Message) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
}

func (l *Log) AppendAll(msgs ...llm.Message) {
	l.mu.Lock()
	l.messages = append(l.messages, msgs...)
	l.mu.Unlock()
}

// Snapshot returns an ordered copy of the transcript, system prompt first.
func (l *Log) Snapshot() []llm.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]llm.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
