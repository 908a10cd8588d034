package model

import (
	"encoding/json"
	"fmt"
)

// Outcome is the terminal classification of a segment.
type Outcome int

const (
	// Known segments matched an entry of the known-word list.
	Known Outcome = iota
	// New segments were compared against the whole list without a match.
	New
	// Banned segments were left out before classification.
	Banned
)

func (o Outcome) String() string {
	switch o {
	case Known:
		return "known"
	case New:
		return "new"
	case Banned:
		return "banned"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalJSON writes the outcome by name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Tally is the running summary of a classification run.
type Tally struct {
	Matches  int      `json:"matches"`
	Total    int      `json:"total"`
	NewWords []string `json:"new_words"`
	Banned   []string `json:"banned,omitempty"`
}

// Percent is the share of known segments, floored, 0 when Total is 0.
func (t Tally) Percent() int {
	if t.Total <= 0 {
		return 0
	}
	return t.Matches * 100 / t.Total
}

// Summary renders the live progress line.
func (t Tally) Summary() string {
	return fmt.Sprintf("unique words (known/total): %d / %d (%d%% known), %d new",
		t.Matches, t.Total, t.Percent(), len(t.NewWords))
}

// Result records how one segment was classified.
type Result struct {
	Segment string  `json:"segment"`
	Outcome Outcome `json:"outcome"`
	// Row and Entry identify the known-word entry that matched; Row is -1
	// for segments that are not Known.
	Row    int    `json:"row"`
	Entry  string `json:"entry,omitempty"`
	Score  int    `json:"score,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Report is the full output of a run, in segment order.
type Report struct {
	Tally   Tally    `json:"tally"`
	Results []Result `json:"results"`
}
