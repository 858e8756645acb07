package vote

import (
	"testing"
)

func TestTallyEmptyLog(t *testing.T) {
	tally := NewTally(NewRegistry(), NewLog())

	res := tally.Count("grp-1")
	if res.Status != StatusNoVotesFound {
		t.Errorf("Status = %q, want %q", res.Status, StatusNoVotesFound)
	}
	if len(res.Results) != 0 || len(res.WinningOptions) != 0 {
		t.Errorf("Results/WinningOptions not empty: %v / %v", res.Results, res.WinningOptions)
	}
}

func TestTallyCountsAndWinners(t *testing.T) {
	reg := NewRegistry()
	log := NewLog()

	london := reg.Register("Location: London")
	beijing := reg.Register("Location: Beijing")
	tonight := reg.Register("Time: 19:00 (7 PM)")

	votes := []struct {
		sender   string
		selector string
	}{
		{"alice", london},
		{"bob", london},
		{"carol", beijing},
		{"dave", london},
		{"erin", london},
		{"frank", beijing},
		{"grace", london},
		{"alice", tonight},
	}
	for _, v := range votes {
		log.Append(Message{GroupID: "grp-1", Sender: v.sender, Text: v.selector})
	}
	// Ordinary chatter must not affect the tally.
	log.Append(Message{GroupID: "grp-1", Sender: "bob", Text: "london sounds great"})

	res := NewTally(reg, log).Count("grp-1")
	if res.Status != StatusVoteResults {
		t.Fatalf("Status = %q, want %q", res.Status, StatusVoteResults)
	}
	if got := res.Results["Location: London"]; got != 5 {
		t.Errorf("London count = %d, want 5", got)
	}
	if got := res.Results["Location: Beijing"]; got != 2 {
		t.Errorf("Beijing count = %d, want 2", got)
	}
	if got := res.Results["Time: 19:00 (7 PM)"]; got != 1 {
		t.Errorf("time count = %d, want 1", got)
	}
	if got := res.WinningOptions["location"]; got != "London" {
		t.Errorf("WinningOptions[location] = %q, want %q", got, "London")
	}
	if got := res.WinningOptions["time"]; got != "19:00 (7 PM)" {
		t.Errorf("WinningOptions[time] = %q, want %q", got, "19:00 (7 PM)")
	}
}

func TestTallyTieGoesToFirstSeen(t *testing.T) {
	reg := NewRegistry()
	log := NewLog()

	chinese := reg.Register("Cuisine: Chinese")
	indian := reg.Register("Cuisine: Indian")

	// Indian appears first in the log, then both reach two votes.
	log.Append(Message{GroupID: "grp-1", Sender: "a", Text: indian})
	log.Append(Message{GroupID: "grp-1", Sender: "b", Text: chinese})
	log.Append(Message{GroupID: "grp-1", Sender: "c", Text: chinese})
	log.Append(Message{GroupID: "grp-1", Sender: "d", Text: indian})

	res := NewTally(reg, log).Count("grp-1")
	if got := res.WinningOptions["cuisine"]; got != "Indian" {
		t.Errorf("WinningOptions[cuisine] = %q, want first-seen %q", got, "Indian")
	}
}

func TestTallyScopedToGroup(t *testing.T) {
	reg := NewRegistry()
	log := NewLog()

	london := reg.Register("Location: London")
	newYork := reg.Register("Location: New York")

	log.Append(Message{GroupID: "grp-1", Sender: "a", Text: london})
	log.Append(Message{GroupID: "grp-2", Sender: "b", Text: newYork})
	log.Append(Message{GroupID: "grp-2", Sender: "c", Text: newYork})

	res := NewTally(reg, log).Count("grp-1")
	if got := res.Results["Location: London"]; got != 1 {
		t.Errorf("grp-1 London count = %d, want 1", got)
	}
	if _, ok := res.Results["Location: New York"]; ok {
		t.Error("grp-1 tally leaked grp-2 votes")
	}
	if got := res.WinningOptions["location"]; got != "London" {
		t.Errorf("grp-1 WinningOptions[location] = %q, want %q", got, "London")
	}

	res2 := NewTally(reg, log).Count("grp-2")
	if got := res2.Results["Location: New York"]; got != 2 {
		t.Errorf("grp-2 New York count = %d, want 2", got)
	}
}

func TestTallyUnknownSelectorsSkipped(t *testing.T) {
	reg := NewRegistry()
	log := NewLog()

	log.Append(Message{GroupID: "grp-1", Sender: "a", Text: "vote:never-registered"})
	log.Append(Message{GroupID: "grp-1", Sender: "b", Text: "anyone around?"})

	res := NewTally(reg, log).Count("grp-1")
	if res.Status != StatusNoVotesFound {
		t.Errorf("Status = %q, want %q", res.Status, StatusNoVotesFound)
	}
}

func TestTallyRepeatVotesAllCount(t *testing.T) {
	reg := NewRegistry()
	log := NewLog()

	weekend := reg.Register("Date: This Weekend")
	for i := 0; i < 3; i++ {
		log.Append(Message{GroupID: "grp-1", Sender: "same-user", Text: weekend})
	}

	res := NewTally(reg, log).Count("grp-1")
	if got := res.Results["Date: This Weekend"]; got != 3 {
		t.Errorf("count = %d, want 3 (every click counts)", got)
	}
}
