package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment so business context
// (group_id, tool, etc.) shows up in every log statement without plumbing.
type LogFields struct {
	GroupID   *string // Chat group the current operation concerns
	UserID    *string // User whose turn is being processed
	Tool      *string // Active tool name for the turn
	TurnID     *int64  // Snowflake turn ID
	DeliveryID *int64  // Snowflake ID of an outbound delivery
	MessageID  *string // Redis stream entry ID being processed
	Component  string  // Component name (e.g., "concierge.agent.dispatcher")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.GroupID != nil {
		result.GroupID = next.GroupID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.Tool != nil {
		result.Tool = next.Tool
	}
	if next.TurnID != nil {
		result.TurnID = next.TurnID
	}
	if next.DeliveryID != nil {
		result.DeliveryID = next.DeliveryID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{GroupID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like prompts or error messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
