package agent

import (
	"context"
	"fmt"

	"groupbook.app/concierge/common/llm"
)

const defaultMaxTokens = 4096

// Runtime produces the agent's messages for one turn: the conversation so
// far goes in, an ordered list of messages (optionally carrying tool calls)
// comes out. The dispatcher, not the runtime, executes tools.
type Runtime interface {
	Invoke(ctx context.Context, messages []llm.Message, tools []llm.Tool) ([]llm.Message, error)
}

type llmRuntime struct {
	client llm.AgentClient
}

// NewRuntime wraps an LLM client as the dispatcher's Runtime.
func NewRuntime(client llm.AgentClient) Runtime {
	return &llmRuntime{client: client}
}

func (r *llmRuntime) Invoke(ctx context.Context, messages []llm.Message, tools []llm.Tool) ([]llm.Message, error) {
	resp, err := r.client.ChatWithTools(ctx, llm.AgentRequest{
		Messages:  messages,
		Tools:     tools,
		MaxTokens: defaultMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("agent invoke: %w", err)
	}

	return []llm.Message{{
		Role:      "assistant",
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	}}, nil
}
