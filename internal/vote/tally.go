package vote

import (
	"strings"
)

// Tally result statuses.
const (
	StatusNoVotesFound = "no_votes_found"
	StatusVoteResults  = "vote_results"
)

// TallyResult holds per-option counts and the winning option per category.
// WinningOptions is keyed by lower-cased category name; values have the
// category prefix stripped ("Location: London" -> "London").
type TallyResult struct {
	Status         string
	GroupID        string
	Results        map[string]int
	WinningOptions map[string]string
}

// Tally resolves logged group messages against the selector registry and
// counts votes per option.
type Tally struct {
	registry *Registry
	log      *Log
}

func NewTally(registry *Registry, log *Log) *Tally {
	return &Tally{registry: registry, log: log}
}

// Count scans the message log for groupID, resolves each message text as a
// selector, and computes the winner of every category that received votes.
// Messages from other groups and messages that are not vote clicks are
// skipped. Ties go to the option seen first in the log scan, which matches
// registration order when the log is replayed in arrival order.
func (t *Tally) Count(groupID string) TallyResult {
	counts := make(map[string]int)
	var order []string // options in first-seen order, for deterministic ties

	for _, msg := range t.log.Snapshot() {
		if msg.GroupID != groupID {
			continue
		}
		option, ok := t.registry.Resolve(msg.Text)
		if !ok {
			continue
		}
		if _, seen := counts[option]; !seen {
			order = append(order, option)
		}
		counts[option]++
	}

	if len(counts) == 0 {
		return TallyResult{
			Status:         StatusNoVotesFound,
			GroupID:        groupID,
			Results:        map[string]int{},
			WinningOptions: map[string]string{},
		}
	}

	winners := make(map[string]string)
	best := make(map[string]int)
	for _, option := range order {
		category, value, ok := splitOption(option)
		if !ok {
			continue
		}
		if counts[option] > best[category] {
			best[category] = counts[option]
			winners[category] = value
		}
	}

	return TallyResult{
		Status:         StatusVoteResults,
		GroupID:        groupID,
		Results:        counts,
		WinningOptions: winners,
	}
}

// splitOption splits "Location: London" into ("location", "London").
func splitOption(option string) (category, value string, ok bool) {
	idx := strings.Index(option, ": ")
	if idx <= 0 {
		return "", "", false
	}
	return strings.ToLower(option[:idx]), option[idx+2:], true
}
