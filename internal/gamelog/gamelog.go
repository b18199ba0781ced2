// Package gamelog holds the user-visible message log of a game.
package gamelog

import "fmt"

// Log is an append-only, ordered sequence of messages.
type Log struct {
	entries []string
}

// New returns a log seeded with the given lines.
func New(lines ...string) *Log {
	return &Log{entries: append([]string(nil), lines...)}
}

// Add appends one line.
func (l *Log) Add(line string) {
	l.entries = append(l.entries, line)
}

// Addf appends one formatted line.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of lines logged so far.
func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of every line, oldest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Recent returns up to n of the newest lines, oldest first.
func (l *Log) Recent(n int) []string {
	start := max(len(l.entries)-n, 0)
	return append([]string(nil), l.entries[start:]...)
}

// Contains reports whether any line equals s exactly.
func (l *Log) Contains(s string) bool {
	for _, e := range l.entries {
		if e == s {
			return true
		}
	}
	return false
}
