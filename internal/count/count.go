package count

import "sync"

// Counts maps a character to the number of times it occurs.
type Counts map[rune]int

// Merge adds every count of src into c.
func (c Counts) Merge(src Counts) {
	for r, n := range src {
		c[r] += n
	}
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	var t int
	for _, n := range c {
		t += n
	}
	return t
}

// Chars counts characters (runes, not bytes) across all lines.
func Chars(lines []string) Counts {
	c := make(Counts, 128)
	for _, s := range lines {
		for _, r := range s {
			c[r]++
		}
	}
	return c
}

// Chunks splits lines into at most n contiguous chunks of ceil(len/n) lines.
// Only the last chunk may be shorter. Empty input has no chunks.
func Chunks(lines []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	if len(lines) == 0 {
		return nil
	}
	size := (len(lines) + n - 1) / n
	out := make([][]string, 0, n)
	for lo := 0; lo < len(lines); lo += size {
		hi := min(lo+size, len(lines))
		out = append(out, lines[lo:hi:hi])
	}
	return out
}

// Parallel counts characters with one goroutine per chunk and merges the
// partial counts. The result equals Chars(lines) for every n.
func Parallel(lines []string, n int) Counts {
	chunks := Chunks(lines, n)

	// each worker sends exactly once, so the buffer never blocks a sender
	parts := make(chan Counts, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, chunk := range chunks {
		go func(chunk []string) {
			defer wg.Done()
			parts <- Chars(chunk)
		}(chunk)
	}
	wg.Wait()
	close(parts)

	total := make(Counts, 128)
	received := 0
	for part := range parts {
		total.Merge(part)
		received++
	}
	if received != len(chunks) {
		panic("count: worker exited without delivering its partial count")
	}
	return total
}
