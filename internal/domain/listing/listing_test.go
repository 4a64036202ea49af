package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	name   string
	status string
}

func nameOf(r record) string   { return r.name }
func statusOf(r record) string { return r.status }

var records = []record{
	{name: "Michael Chen", status: "open"},
	{name: "Sarah Williams", status: "open"},
	{name: "David Kim", status: "done"},
	{name: "Jessica Rodriguez", status: "open"},
}

func TestMatchesQuery(t *testing.T) {
	assert.True(t, MatchesQuery("Michael Chen", ""))
	assert.True(t, MatchesQuery("Michael Chen", "chen"))
	assert.True(t, MatchesQuery("Michael Chen", "MICHAEL"))
	assert.True(t, MatchesQuery("Jessica Rodríguez", "RODRÍ"))
	assert.False(t, MatchesQuery("Michael Chen", "kim"))
}

func TestFilterQueryMatchesExactlyTheContainingNames(t *testing.T) {
	queries := []string{"", "i", "CH", "son", "kim", "zzz", "a", "Chen ", " Kim", "l c", " ", "  ", "michael chen", "Michael Chen "}
	for _, query := range queries {
		got := Filter[record, string](records, query, nil, nameOf, statusOf)
		var want []record
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.name), strings.ToLower(query)) {
				want = append(want, r)
			}
		}
		assert.ElementsMatch(t, want, got, "query %q", query)
	}
	assert.Len(t, Filter[record, string](records, "", nil, nameOf, statusOf), len(records))
}

func TestFilterKeepsSurroundingSpaces(t *testing.T) {
	assert.Empty(t, Filter[record, string](records, "Chen ", nil, nameOf, statusOf))
	assert.Empty(t, Filter[record, string](records, "   ", nil, nameOf, statusOf))

	got := Filter[record, string](records, " ", nil, nameOf, statusOf)
	assert.Len(t, got, len(records), "every name has an inner space")

	got = Filter[record, string](records, "l C", nil, nameOf, statusOf)
	require.Len(t, got, 1)
	assert.Equal(t, "Michael Chen", got[0].name)
}

func TestFilterByStatus(t *testing.T) {
	done := "done"
	got := Filter(records, "", &done, nameOf, statusOf)
	require.Len(t, got, 1)
	assert.Equal(t, "David Kim", got[0].name)

	open := "open"
	got = Filter(records, "chen", &open, nameOf, statusOf)
	require.Len(t, got, 1)
	assert.Equal(t, "Michael Chen", got[0].name)
}

func TestPartition(t *testing.T) {
	specs := []BucketSpec[string]{
		{Key: "open", Label: "Open", Status: "open", EmptyMessage: "Nothing open"},
		{Key: "done", Label: "Done", Status: "done", EmptyMessage: "Nothing done"},
		{Key: "void", Label: "Void", Status: "void", EmptyMessage: "Nothing void"},
	}
	buckets := Partition(records, specs, statusOf, "Create", "/things/new")
	require.Len(t, buckets, 3)

	assert.Equal(t, 3, buckets[0].Count())
	assert.Empty(t, buckets[0].EmptyMessage)
	assert.Empty(t, buckets[0].CreateHref)

	assert.Equal(t, 1, buckets[1].Count())

	assert.True(t, buckets[2].Empty())
	assert.NotNil(t, buckets[2].Items)
	assert.Equal(t, "Nothing void", buckets[2].EmptyMessage)
	assert.Equal(t, "/things/new", buckets[2].CreateHref)
}
