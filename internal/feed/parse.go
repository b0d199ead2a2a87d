// Package feed turns lines of text into toasts.
//
// A line is "[variant:][position:]title[ | description]", for example
//
//	destructive:top-center:Disk full | /var is at 98%
//
// Prefixes are recognised only when they name a known variant or position,
// so "http://example.com" is taken as plain text.
package feed

import (
	"errors"
	"strings"

	"github.com/llehouerou/toaster/internal/toast"
)

var (
	// ErrEmptyLine is returned for lines with no message.
	ErrEmptyLine = errors.New("empty line")
	// ErrLineTooLong is reported for lines cut to MaxLineBytes.
	ErrLineTooLong = errors.New("line too long")
)

// MaxLineBytes is the longest line Feed keeps. Longer lines are truncated.
const MaxLineBytes = 4 << 10

// ParseLine parses one feed line into a toast.
func ParseLine(line string) (toast.Toast, error) {
	var t toast.Toast
	rest := strings.TrimSpace(line)

	for {
		prefix, after, ok := strings.Cut(rest, ":")
		if !ok {
			break
		}
		prefix = strings.TrimSpace(prefix)
		if v := toast.Variant(prefix); t.Variant == "" && v.Valid() {
			t.Variant = v
		} else if p := toast.Position(prefix); t.Position == "" && p.Valid() {
			t.Position = p
		} else {
			break
		}
		rest = strings.TrimSpace(after)
	}

	title, desc, _ := strings.Cut(rest, "|")
	t.Title = strings.TrimSpace(title)
	t.Description = strings.TrimSpace(desc)
	if t.Title == "" && t.Description == "" {
		return toast.Toast{}, ErrEmptyLine
	}
	return t, nil
}
