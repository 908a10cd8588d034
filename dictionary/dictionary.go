// Package dictionary loads the known-word list and purifies its entries
// for comparison.
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrColumnUnresolved reports a delimiter/column pair that does not
	// select anything on the list's validation row.
	ErrColumnUnresolved = errors.New("delimiter and/or column do not resolve on the known-word list")
	// ErrInvalidOptions reports an empty delimiter or a negative column.
	ErrInvalidOptions = errors.New("invalid known-word options")
)

// Options select the column of each row holding the word.
type Options struct {
	Delimiter string
	Column    int
}

// DefaultOptions picks the first tab-separated column.
func DefaultOptions() Options {
	return Options{Delimiter: "\t", Column: 0}
}

// Entry is one row of the known-word list. OK is false when the selected
// column is missing or empty; such rows are never compared.
type Entry struct {
	Row  int    `json:"row"`
	Text string `json:"text"`
	OK   bool   `json:"ok"`
}

// List is the known-word list in file order.
type List struct {
	Entries []Entry
}

// Len returns the number of rows, malformed ones included.
func (l *List) Len() int { return len(l.Entries) }

// Load reads newline-separated rows from r and selects the configured column
// of each one. A final newline does not produce an extra row.
func Load(r io.Reader, opts Options) (*List, error) {
	if opts.Delimiter == "" || opts.Column < 0 {
		return nil, fmt.Errorf("%w: delimiter %q column %d", ErrInvalidOptions, opts.Delimiter, opts.Column)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read known words: %w", err)
	}
	return Parse(string(data), opts), nil
}

// Parse splits text into entries. Options are assumed valid.
func Parse(text string, opts Options) *List {
	if text == "" {
		return &List{}
	}
	rows := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	l := &List{Entries: make([]Entry, len(rows))}
	for i, row := range rows {
		e := Entry{Row: i}
		if fields := strings.Split(row, opts.Delimiter); opts.Column < len(fields) {
			e.Text = fields[opts.Column]
			e.OK = e.Text != ""
		}
		l.Entries[i] = e
	}
	return l
}

// Validate checks that the column resolves on the second row, which is the
// first one that cannot be a header. A single-row list is checked on its
// only row; an empty list never resolves.
func (l *List) Validate() error {
	if len(l.Entries) == 0 {
		return fmt.Errorf("%w: list is empty", ErrColumnUnresolved)
	}
	row := 1
	if len(l.Entries) == 1 {
		row = 0
	}
	if !l.Entries[row].OK {
		return fmt.Errorf("%w: row %d", ErrColumnUnresolved, row+1)
	}
	return nil
}
