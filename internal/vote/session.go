package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"groupbook.app/concierge/common/logger"
)

// ErrGroupRequired is returned when a vote is requested without a group.
var ErrGroupRequired = errors.New("group id is required")

// Session result statuses.
const (
	StatusVotesCreated  = "votes_created"
	StatusNoVotesNeeded = "no_votes_needed"
)

// Category is a named group of mutually exclusive vote options. Its options
// are stored as "<Label>: <choice>" so the tally can partition counts by the
// text prefix.
type Category struct {
	Name    string // tally key, e.g. "location"
	Label   string // option prefix, e.g. "Location"
	Prompt  string // short line describing what is being decided
	Choices [4]string
}

// Categories enumerates the restaurant-booking vote categories in canonical
// order. The order determines the order votes are posted and reported in.
var Categories = []Category{
	{
		Name:    "location",
		Label:   "Location",
		Prompt:  "Where should we eat?",
		Choices: [4]string{"London", "Beijing", "New York", "Other"},
	},
	{
		Name:    "date",
		Label:   "Date",
		Prompt:  "Which day works best?",
		Choices: [4]string{"Today", "Tomorrow", "This Weekend", "Next Week"},
	},
	{
		Name:    "time",
		Label:   "Time",
		Prompt:  "What time should we book?",
		Choices: [4]string{"18:00 (6 PM)", "19:00 (7 PM)", "20:00 (8 PM)", "21:00 (9 PM)"},
	},
	{
		Name:    "guests",
		Label:   "Guests",
		Prompt:  "How many of us are coming?",
		Choices: [4]string{"2 people", "4 people", "6 people", "8+ people"},
	},
	{
		Name:    "cuisine",
		Label:   "Cuisine",
		Prompt:  "What kind of food?",
		Choices: [4]string{"International", "Chinese", "French", "Indian"},
	},
}

// Params carries the restaurant-booking parameters already supplied by the
// user. An empty field means the group still has to vote on it.
type Params struct {
	Location string
	Date     string
	Time     string
	Guests   string
	Cuisine  string
}

func (p Params) value(category string) string {
	switch category {
	case "location":
		return p.Location
	case "date":
		return p.Date
	case "time":
		return p.Time
	case "guests":
		return p.Guests
	case "cuisine":
		return p.Cuisine
	default:
		return ""
	}
}

// Button is one clickable vote option in an outbound group payload.
// The wire field names follow the chat platform's button contract.
type Button struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	Type     string `json:"type"`
	IsHidden string `json:"isHidden"`
}

// Payload is the outbound group message carrying a vote prompt.
type Payload struct {
	Text   string   `json:"text"`
	Button []Button `json:"button"`
}

// GroupSender delivers a payload to a chat group. Delivery is best-effort:
// the session builder logs failures and moves on.
type GroupSender interface {
	SendToGroup(ctx context.Context, groupID string, payload Payload) error
}

// SessionResult reports what a Build call did.
type SessionResult struct {
	Status       string
	GroupID      string
	CreatedVotes []string // category names, canonical order
}

// SessionBuilder creates category votes for whatever booking parameters are
// still missing, registering every option in the selector registry before
// the payload leaves the process.
type SessionBuilder struct {
	registry *Registry
	sender   GroupSender
}

func NewSessionBuilder(registry *Registry, sender GroupSender) *SessionBuilder {
	return &SessionBuilder{registry: registry, sender: sender}
}

// Build posts one vote per missing category to the group.
// Returns StatusNoVotesNeeded without touching the registry when every
// parameter is already supplied.
func (b *SessionBuilder) Build(ctx context.Context, groupID string, known Params) (SessionResult, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return SessionResult{}, ErrGroupRequired
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		GroupID:   logger.Ptr(groupID),
		Component: "concierge.vote.session",
	})

	var created []string
	for _, cat := range Categories {
		if known.value(cat.Name) != "" {
			continue
		}

		payload := b.buildPayload(cat)
		if err := b.sender.SendToGroup(ctx, groupID, payload); err != nil {
			// Fire-and-forget: the vote is still live, the registry entries
			// exist, and a late click can still be tallied.
			slog.WarnContext(ctx, "vote prompt delivery failed",
				"category", cat.Name,
				"error", err)
		}
		created = append(created, cat.Name)
	}

	if len(created) == 0 {
		return SessionResult{Status: StatusNoVotesNeeded, GroupID: groupID}, nil
	}

	slog.InfoContext(ctx, "vote session created", "categories", created)

	return SessionResult{
		Status:       StatusVotesCreated,
		GroupID:      groupID,
		CreatedVotes: created,
	}, nil
}

func (b *SessionBuilder) buildPayload(cat Category) Payload {
	text := fmt.Sprintf("🍽️ **Restaurant Booking Vote**\n\n%s\n\nPlease vote for your preference:", cat.Prompt)

	buttons := make([]Button, 0, len(cat.Choices))
	for _, choice := range cat.Choices {
		option := cat.Label + ": " + choice
		buttons = append(buttons, Button{
			Name:     option,
			Selector: b.registry.Register(option),
			Type:     "default",
			IsHidden: "1",
		})
	}

	return Payload{Text: text, Button: buttons}
}

// Initiate posts a single free-form vote with caller-supplied options.
// Unlike Build, the options carry no category prefix; they tally as one pool.
func (b *SessionBuilder) Initiate(ctx context.Context, groupID, title string, options []string) error {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return ErrGroupRequired
	}
	if len(options) == 0 {
		return errors.New("at least one option is required")
	}

	buttons := make([]Button, 0, len(options))
	for _, option := range options {
		buttons = append(buttons, Button{
			Name:     option,
			Selector: b.registry.Register(option),
			Type:     "default",
			IsHidden: "1",
		})
	}

	payload := Payload{
		Text:   fmt.Sprintf("🗳️ **%s**\n\nPlease vote:", title),
		Button: buttons,
	}

	if err := b.sender.SendToGroup(ctx, groupID, payload); err != nil {
		slog.WarnContext(ctx, "vote prompt delivery failed", "group_id", groupID, "error", err)
	}
	return nil
}
