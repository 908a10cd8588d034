package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"knownwords/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 1)
)

// display shows the live summary line while classification runs and a
// summary box once it is done.
type display struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (d *display) start(total int) {
	if total <= 0 {
		return
	}
	d.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(d.w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription(model.Tally{}.Summary()),
	)
}

func (d *display) update(t model.Tally) {
	if d.bar == nil {
		return
	}
	d.bar.Describe(t.Summary())
	_ = d.bar.Set(processed(t))
}

func (d *display) finish(t model.Tally) {
	if d.bar != nil {
		_ = d.bar.Finish()
		d.bar = nil
	}
	fmt.Fprintln(d.w, renderSummary(t))
}

func processed(t model.Tally) int {
	return t.Matches + len(t.NewWords) + len(t.Banned)
}

func renderSummary(t model.Tally) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Known words") + "\n")
	b.WriteString(t.Summary() + "\n")
	fmt.Fprintf(&b, "%d segments left out as grammar or noise", len(t.Banned))
	return boxStyle.Render(b.String())
}
