package vote

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type captureSender struct {
	groupIDs []string
	payloads []Payload
	err      error
}

func (c *captureSender) SendToGroup(_ context.Context, groupID string, payload Payload) error {
	c.groupIDs = append(c.groupIDs, groupID)
	c.payloads = append(c.payloads, payload)
	return c.err
}

func TestSessionBuildMissingCategories(t *testing.T) {
	tests := []struct {
		name        string
		known       Params
		wantCreated []string
	}{
		{
			name:        "nothing supplied",
			known:       Params{},
			wantCreated: []string{"location", "date", "time", "guests", "cuisine"},
		},
		{
			name:        "date and guests supplied",
			known:       Params{Date: "Tomorrow", Guests: "4 people"},
			wantCreated: []string{"location", "time", "cuisine"},
		},
		{
			name:        "only cuisine missing",
			known:       Params{Location: "London", Date: "Today", Time: "19:00 (7 PM)", Guests: "2 people"},
			wantCreated: []string{"cuisine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &captureSender{}
			b := NewSessionBuilder(NewRegistry(), sender)

			res, err := b.Build(context.Background(), "grp-1", tt.known)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if res.Status != StatusVotesCreated {
				t.Errorf("Status = %q, want %q", res.Status, StatusVotesCreated)
			}
			if !reflect.DeepEqual(res.CreatedVotes, tt.wantCreated) {
				t.Errorf("CreatedVotes = %v, want %v", res.CreatedVotes, tt.wantCreated)
			}
			if len(sender.payloads) != len(tt.wantCreated) {
				t.Errorf("sent %d payloads, want %d", len(sender.payloads), len(tt.wantCreated))
			}
		})
	}
}

func TestSessionBuildAllSupplied(t *testing.T) {
	sender := &captureSender{}
	reg := NewRegistry()
	b := NewSessionBuilder(reg, sender)

	known := Params{
		Location: "Beijing",
		Date:     "Next Week",
		Time:     "20:00 (8 PM)",
		Guests:   "6 people",
		Cuisine:  "Chinese",
	}
	res, err := b.Build(context.Background(), "grp-1", known)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Status != StatusNoVotesNeeded {
		t.Errorf("Status = %q, want %q", res.Status, StatusNoVotesNeeded)
	}
	if len(res.CreatedVotes) != 0 {
		t.Errorf("CreatedVotes = %v, want empty", res.CreatedVotes)
	}
	if len(sender.payloads) != 0 {
		t.Errorf("sent %d payloads, want 0", len(sender.payloads))
	}
	if reg.Len() != 0 {
		t.Errorf("registry has %d entries, want 0", reg.Len())
	}
}

func TestSessionBuildNoGroup(t *testing.T) {
	b := NewSessionBuilder(NewRegistry(), &captureSender{})

	for _, groupID := range []string{"", "   "} {
		if _, err := b.Build(context.Background(), groupID, Params{}); !errors.Is(err, ErrGroupRequired) {
			t.Errorf("Build(%q) err = %v, want ErrGroupRequired", groupID, err)
		}
	}
}

func TestSessionBuildPayloadShape(t *testing.T) {
	sender := &captureSender{}
	reg := NewRegistry()
	b := NewSessionBuilder(reg, sender)

	known := Params{Date: "Today", Time: "18:00 (6 PM)", Guests: "2 people", Cuisine: "French"}
	if _, err := b.Build(context.Background(), "grp-1", known); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sender.payloads) != 1 {
		t.Fatalf("sent %d payloads, want 1", len(sender.payloads))
	}

	p := sender.payloads[0]
	if len(p.Button) != 4 {
		t.Fatalf("payload has %d buttons, want 4", len(p.Button))
	}

	wantNames := []string{
		"Location: London",
		"Location: Beijing",
		"Location: New York",
		"Location: Other",
	}
	for i, btn := range p.Button {
		if btn.Name != wantNames[i] {
			t.Errorf("button[%d].Name = %q, want %q", i, btn.Name, wantNames[i])
		}
		if btn.Type != "default" || btn.IsHidden != "1" {
			t.Errorf("button[%d] type/isHidden = %q/%q", i, btn.Type, btn.IsHidden)
		}
		got, ok := reg.Resolve(btn.Selector)
		if !ok || got != btn.Name {
			t.Errorf("Resolve(button[%d].Selector) = %q, %v, want %q", i, got, ok, btn.Name)
		}
	}
}

func TestSessionBuildSendFailureStillCreates(t *testing.T) {
	sender := &captureSender{err: errors.New("network down")}
	reg := NewRegistry()
	b := NewSessionBuilder(reg, sender)

	known := Params{Date: "Today", Time: "19:00 (7 PM)", Guests: "4 people"}
	res, err := b.Build(context.Background(), "grp-1", known)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Status != StatusVotesCreated {
		t.Errorf("Status = %q, want %q", res.Status, StatusVotesCreated)
	}
	if !reflect.DeepEqual(res.CreatedVotes, []string{"location", "cuisine"}) {
		t.Errorf("CreatedVotes = %v", res.CreatedVotes)
	}
	// Options must survive a failed send so late clicks still resolve.
	if reg.Len() != 8 {
		t.Errorf("registry has %d entries, want 8", reg.Len())
	}
}

func TestInitiateFreeFormVote(t *testing.T) {
	sender := &captureSender{}
	reg := NewRegistry()
	b := NewSessionBuilder(reg, sender)

	err := b.Initiate(context.Background(), "grp-9", "Team outing", []string{"Bowling", "Karaoke"})
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if len(sender.payloads) != 1 {
		t.Fatalf("sent %d payloads, want 1", len(sender.payloads))
	}
	p := sender.payloads[0]
	if len(p.Button) != 2 {
		t.Fatalf("payload has %d buttons, want 2", len(p.Button))
	}
	for i, want := range []string{"Bowling", "Karaoke"} {
		if p.Button[i].Name != want {
			t.Errorf("button[%d].Name = %q, want %q", i, p.Button[i].Name, want)
		}
	}

	if err := b.Initiate(context.Background(), "", "x", []string{"a"}); !errors.Is(err, ErrGroupRequired) {
		t.Errorf("empty group err = %v, want ErrGroupRequired", err)
	}
	if err := b.Initiate(context.Background(), "grp-9", "x", nil); err == nil {
		t.Error("expected error for empty options")
	}
}
