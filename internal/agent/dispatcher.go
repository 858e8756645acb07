// Package agent implements the per-turn dispatch loop: submit the
// conversation to the model, collect tool-call arguments, gate on required
// parameters, execute the chosen tool, and format the reply.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"groupbook.app/concierge/common/id"
	"groupbook.app/concierge/common/llm"
	"groupbook.app/concierge/common/logger"
	"groupbook.app/concierge/internal/history"
	"groupbook.app/concierge/internal/tools"
)

// UserSender delivers the assistant's reply back to the user. Delivery is
// best-effort; the reply is also returned to the HTTP caller.
type UserSender interface {
	SendToUser(ctx context.Context, userID, text string) error
}

// Dispatcher owns one conversation: every user turn flows through HandleTurn.
type Dispatcher struct {
	runtime Runtime
	tools   *tools.Registry
	history *history.Log
	users   UserSender
}

func NewDispatcher(runtime Runtime, registry *tools.Registry, hist *history.Log, users UserSender) *Dispatcher {
	return &Dispatcher{
		runtime: runtime,
		tools:   registry,
		history: hist,
		users:   users,
	}
}

// HandleTurn processes one user prompt and returns the assistant response.
// The response is appended to the history and delivered to the user before
// returning.
func (d *Dispatcher) HandleTurn(ctx context.Context, userID, prompt string) (string, error) {
	turnID := id.New()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(userID),
		TurnID:    logger.Ptr(turnID),
		Component: "concierge.agent",
	})
	slog.InfoContext(ctx, "user turn received", "prompt", logger.Truncate(prompt, 200))

	d.history.Append(llm.Message{Role: "user", Content: prompt})

	msgs, err := d.runtime.Invoke(ctx, d.history.Snapshot(), d.tools.Definitions())
	if err != nil {
		return "", fmt.Errorf("handle turn: %w", err)
	}

	toolName, args := collectToolCalls(msgs)
	response := d.synthesize(ctx, toolName, args, lastAssistantText(msgs))

	d.history.Append(llm.Message{Role: "assistant", Content: response})

	if err := d.users.SendToUser(ctx, userID, response); err != nil {
		slog.WarnContext(ctx, "user reply delivery failed", "error", err)
	}

	return response, nil
}

// collectToolCalls merges tool-call arguments across every message of the
// turn. Later calls overwrite earlier values key by key, and the last tool
// name seen becomes the active tool.
func collectToolCalls(msgs []llm.Message) (string, tools.Args) {
	var toolName string
	args := tools.Args{}

	for _, msg := range msgs {
		for _, call := range msg.ToolCalls {
			toolName = call.Name

			var parsed map[string]any
			if err := json.Unmarshal([]byte(call.Arguments), &parsed); err != nil {
				continue
			}
			for k, v := range parsed {
				args[k] = v
			}
		}
	}
	return toolName, args
}

func lastAssistantText(msgs []llm.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "assistant" && msgs[i].Content != "" {
			return msgs[i].Content
		}
	}
	return ""
}

// synthesize turns the collected tool call into the user-facing response.
// Turns without a tool call, unknown tools, and excluded tools pass the
// assistant's own text through unmodified.
func (d *Dispatcher) synthesize(ctx context.Context, toolName string, args tools.Args, passthrough string) string {
	if toolName == "" {
		return passthrough
	}
	spec, ok := d.tools.Lookup(toolName)
	if !ok || spec.Excluded {
		return passthrough
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{Tool: logger.Ptr(toolName)})

	if missing := args.Missing(spec.Required); len(missing) > 0 {
		slog.InfoContext(ctx, "turn gated on missing parameters", "missing", missing)
		return fmt.Sprintf("Got partial info for `%s`. Please provide: %s",
			toolName, strings.Join(missing, ", "))
	}

	result, err := spec.Run(ctx, args)
	if err != nil {
		slog.ErrorContext(ctx, "tool execution failed", "error", err)
		return fmt.Sprintf("❌ Error executing %s: %s", toolName, err)
	}

	slog.InfoContext(ctx, "tool executed")
	return spec.Format(args, result)
}
