// Package listing holds the search, status filter and status bucket logic
// shared by the feedback and PDI list pages.
package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// MatchesQuery reports whether name contains query, ignoring case.
// An empty query matches every name.
func MatchesQuery(name, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(name), fold.String(query))
}

// Filter keeps the items whose name contains query verbatim, ignoring case,
// and, when status is set, whose status equals it exactly. Surrounding spaces
// in query take part in the match. The input slice is never modified.
func Filter[T any, S comparable](items []T, query string, status *S, nameOf func(T) string, statusOf func(T) S) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !MatchesQuery(nameOf(item), query) {
			continue
		}
		if status != nil && statusOf(item) != *status {
			continue
		}
		out = append(out, item)
	}
	return out
}

// BucketSpec declares one fixed tab of a list page.
type BucketSpec[S comparable] struct {
	Key          string
	Label        string
	Status       S
	EmptyMessage string
}

// Bucket is one rendered tab. A bucket with no items shows EmptyMessage and
// the create call-to-action.
type Bucket[T any] struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Items        []T    `json:"items"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
	CreateLabel  string `json:"createLabel,omitempty"`
	CreateHref   string `json:"createHref,omitempty"`
}

func (b Bucket[T]) Empty() bool {
	return len(b.Items) == 0
}

func (b Bucket[T]) Count() int {
	return len(b.Items)
}

// Partition splits items into one bucket per spec, in spec order. Items whose
// status matches no spec are dropped.
func Partition[T any, S comparable](items []T, specs []BucketSpec[S], statusOf func(T) S, createLabel, createHref string) []Bucket[T] {
	buckets := make([]Bucket[T], len(specs))
	index := make(map[S]int, len(specs))
	for i, spec := range specs {
		buckets[i] = Bucket[T]{
			Key:   spec.Key,
			Label: spec.Label,
			Items: []T{},
		}
		index[spec.Status] = i
	}
	for _, item := range items {
		if i, ok := index[statusOf(item)]; ok {
			buckets[i].Items = append(buckets[i].Items, item)
		}
	}
	for i, spec := range specs {
		if buckets[i].Empty() {
			buckets[i].EmptyMessage = spec.EmptyMessage
			buckets[i].CreateLabel = createLabel
			buckets[i].CreateHref = createHref
		}
	}
	return buckets
}

// Style is the display descriptor for one status value.
type Style struct {
	Badge string `json:"badge"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}
