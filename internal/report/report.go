package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/Borislavv/char-counter/internal/count"
)

// Entry is one character with its number of occurrences.
type Entry struct {
	Char  rune
	Count int
}

// Top returns the max(k, 1) most frequent characters, highest count first.
// Equal counts are ordered by ascending character value.
func Top(counts count.Counts, k int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for r, n := range counts {
		entries = append(entries, Entry{Char: r, Count: n})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Char, b.Char)
	})
	return entries[:min(max(k, 1), len(entries))]
}

// Print writes the Top(counts, k) report to w.
func Print(w io.Writer, counts count.Counts, k int) error {
	if _, err := fmt.Fprintln(w, "Most frequent characters:"); err != nil {
		return err
	}
	for _, e := range Top(counts, k) {
		if _, err := fmt.Fprintf(w, " - '%c': %d occurrences\n", e.Char, e.Count); err != nil {
			return err
		}
	}
	return nil
}
