// Package classify decides, for every candidate segment, whether the user
// already knows it.
//
// A Classifier owns all state of one run: the counters, the new-word list
// and the purify cache. Each segment is compared against the known-word
// list starting from its first entry, so the entry that wins a match
// depends only on list order, never on earlier segments.
package classify

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"knownwords/dictionary"
	"knownwords/fuzzy"
	"knownwords/model"
	"knownwords/script"
	"knownwords/stopwords"
)

// DefaultInterval is the progress cadence.
const DefaultInterval = 250 * time.Millisecond

// Thresholds for Accept.
const (
	ShortSegment   = 1
	ShortThreshold = 100
	Threshold      = 60
)

// Options configure a Classifier. Zero values select the defaults.
type Options struct {
	// Progress receives a snapshot of the tally at most once per Interval
	// while the run is going, then once more when it ends.
	Progress func(model.Tally)
	Interval time.Duration
	Now      func() time.Time
	Score    func(a, b string) int
	Log      zerolog.Logger
}

// Classifier classifies segments against one known-word list.
type Classifier struct {
	list     *dictionary.List
	purifier *dictionary.Purifier
	opts     Options

	tally      model.Tally
	results    []model.Result
	lastReport time.Time
}

// New validates list and returns a Classifier for it. A list whose column
// does not resolve yields dictionary.ErrColumnUnresolved.
func New(list *dictionary.List, opts Options) (*Classifier, error) {
	if err := list.Validate(); err != nil {
		return nil, err
	}
	p, err := dictionary.NewPurifier(list.Len())
	if err != nil {
		return nil, err
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Score == nil {
		opts.Score = fuzzy.Score
	}
	return &Classifier{list: list, purifier: p, opts: opts}, nil
}

// Accept applies the length-dependent threshold: a single rune needs a
// perfect score, anything longer needs Threshold.
func Accept(seg string, score int) bool {
	if script.Len(seg) <= ShortSegment {
		return score >= ShortThreshold
	}
	return score >= Threshold
}

// Run classifies segs in order. Total starts at len(segs) and loses one for
// every banned segment. ctx is checked between segments; on cancellation
// the partial report is returned with ctx's error.
func (c *Classifier) Run(ctx context.Context, segs []string) (model.Report, error) {
	c.reset(len(segs))
	for _, seg := range segs {
		if err := ctx.Err(); err != nil {
			return c.report(), fmt.Errorf("classify: %w", err)
		}
		if now := c.opts.Now(); now.Sub(c.lastReport) > c.opts.Interval {
			c.emit()
			c.lastReport = now
		}
		c.results = append(c.results, c.classify(seg))
	}
	c.emit()
	c.opts.Log.Debug().
		Int("matches", c.tally.Matches).
		Int("total", c.tally.Total).
		Int("new", len(c.tally.NewWords)).
		Int("banned", len(c.tally.Banned)).
		Int("cached", c.purifier.Len()).
		Msg("classification done")
	return c.report(), nil
}

func (c *Classifier) reset(n int) {
	c.purifier.Reset()
	c.tally = model.Tally{Total: n, NewWords: []string{}}
	c.results = make([]model.Result, 0, n)
	c.lastReport = time.Time{}
}

func (c *Classifier) classify(seg string) model.Result {
	if banned, reason := stopwords.Banned(seg); banned {
		c.tally.Total--
		c.tally.Banned = append(c.tally.Banned, seg)
		c.opts.Log.Debug().Str("segment", seg).Str("reason", string(reason)).Msg("banned")
		return model.Result{Segment: seg, Outcome: model.Banned, Row: -1, Reason: string(reason)}
	}

	for _, e := range c.list.Entries {
		if !e.OK {
			continue
		}
		word := c.purifier.Purify(e.Text)
		score := c.opts.Score(seg, word)
		if Accept(seg, score) {
			c.tally.Matches++
			c.opts.Log.Debug().Str("segment", seg).Str("entry", word).Int("row", e.Row).Int("score", score).Msg("known")
			return model.Result{Segment: seg, Outcome: model.Known, Row: e.Row, Entry: word, Score: score}
		}
	}

	c.tally.NewWords = append(c.tally.NewWords, seg)
	c.opts.Log.Debug().Str("segment", seg).Msg("new")
	return model.Result{Segment: seg, Outcome: model.New, Row: -1}
}

func (c *Classifier) snapshot() model.Tally {
	t := c.tally
	t.NewWords = slices.Clone(t.NewWords)
	t.Banned = slices.Clone(t.Banned)
	return t
}

func (c *Classifier) emit() {
	if c.opts.Progress != nil {
		c.opts.Progress(c.snapshot())
	}
}

func (c *Classifier) report() model.Report {
	return model.Report{Tally: c.snapshot(), Results: slices.Clone(c.results)}
}
