// Package stats holds the derived-state computations the views render:
// status tallies, revenue sums, and search/status filtering. Everything is a
// pure function over an in-memory slice, recomputed on demand with no
// caching. Sums are plain float64 arithmetic, matching the wire format;
// formatting for display is a separate, locale-aware step.
package stats

import "strings"

// Tally counts entities per named status bucket. Unknown or missing statuses
// are excluded from every named bucket but still counted in Total.
type Tally struct {
	Counts map[string]int
	Total  int
}

// Count returns the tally for one bucket.
func (t Tally) Count(bucket string) int { return t.Counts[bucket] }

// TallyByStatus counts items into the given buckets.
func TallyByStatus[T any](items []T, statusOf func(T) string, buckets ...string) Tally {
	t := Tally{Counts: make(map[string]int, len(buckets)), Total: len(items)}
	for _, b := range buckets {
		t.Counts[b] = 0
	}
	for _, item := range items {
		s := statusOf(item)
		if _, ok := t.Counts[s]; ok {
			t.Counts[s]++
		}
	}
	return t
}

// SumWhere sums amountOf over the items matching the predicate. Returns 0
// for an empty or fully non-matching list.
func SumWhere[T any](items []T, amountOf func(T) float64, match func(T) bool) float64 {
	var sum float64
	for _, item := range items {
		if match(item) {
			sum += amountOf(item)
		}
	}
	return sum
}

// StatusAll is the status filter value that matches unconditionally.
const StatusAll = "all"

// Filter returns the items matching both the search query and the status
// filter, preserving input order. The query matches case-insensitively as a
// substring of ANY configured field; an empty query matches everything.
// A status of StatusAll matches every status.
func Filter[T any](items []T, query, status string, fieldsOf func(T) []string, statusOf func(T) string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if status != StatusAll && statusOf(item) != status {
			continue
		}
		if q != "" && !anyContains(fieldsOf(item), q) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func anyContains(fields []string, loweredQuery string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), loweredQuery) {
			return true
		}
	}
	return false
}
