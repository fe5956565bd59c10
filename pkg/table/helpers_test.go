package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyRowTags(t *testing.T) {
	assert.Equal(t, []string{TagBody, TagFirstRow, TagOddRow}, bodyRowTags(0, 3, false))
	assert.Equal(t, []string{TagBody, TagEvenRow}, bodyRowTags(1, 3, false))
	assert.Equal(t, []string{TagGroup, TagBody, TagLastRow, TagOddRow}, bodyRowTags(2, 3, true))
	assert.Equal(t, []string{TagBody, TagFirstRow, TagLastRow, TagOddRow}, bodyRowTags(0, 1, false))
}

func TestColumnTagsFor(t *testing.T) {
	assert.Equal(t, []string{TagFirstColumn, TagOddColumn}, columnTagsFor(0, 2))
	assert.Equal(t, []string{TagLastColumn, TagEvenColumn}, columnTagsFor(1, 2))
	assert.Equal(t, []string{TagFirstColumn, TagLastColumn, TagOddColumn}, columnTagsFor(0, 1))
}

func TestHasAllTags(t *testing.T) {
	have := []string{TagBody, TagOddRow, TagFirstColumn}

	count, ok := hasAllTags(nil, have)
	assert.True(t, ok)
	assert.Equal(t, 0, count)

	count, ok = hasAllTags([]string{TagBody, TagFirstColumn}, have)
	assert.True(t, ok)
	assert.Equal(t, 2, count)

	_, ok = hasAllTags([]string{TagBody, TagHeader}, have)
	assert.False(t, ok)
}

func TestGroupByKeepsFirstSeenOrder(t *testing.T) {
	buckets := groupBy([]int{3, 1, 4, 1, 5, 9, 2, 6}, func(n int) any { return n % 3 })
	require.Len(t, buckets, 3)
	assert.Equal(t, 0, buckets[0].key)
	assert.Equal(t, []int{3, 9, 6}, buckets[0].items)
	assert.Equal(t, 1, buckets[1].key)
	assert.Equal(t, []int{1, 4, 1}, buckets[1].items)
	assert.Equal(t, []int{5, 2}, buckets[2].items)
}

func TestGroupByNonComparableKeys(t *testing.T) {
	buckets := groupBy([]string{"a", "b", "a"}, func(s string) any { return []string{s} })
	require.Len(t, buckets, 2)
	assert.Len(t, buckets[0].items, 2)
	assert.True(t, sameKey([]string{"a"}, buckets[0].key))
}

func TestGroupByKeysHoldingSlices(t *testing.T) {
	type wrapped struct{ V any }
	by := func(s string) any { return wrapped{[]string{s}} }

	var buckets []bucket[string]
	require.NotPanics(t, func() {
		buckets = groupBy([]string{"a", "b", "a"}, by)
	})
	require.Len(t, buckets, 2)
	assert.Equal(t, []string{"a", "a"}, buckets[0].items)
	assert.Equal(t, []string{"b"}, buckets[1].items)
	assert.True(t, sameKey(wrapped{[]string{"b"}}, buckets[1].key))

	def := Definition[person]{
		Padding: 1,
		Columns: personColumns(),
		Groups:  []Group[person]{{By: func(p person) any { return wrapped{[]string{p.Name}} }}},
	}
	var out string
	require.NotPanics(t, func() { out = render(t, def, people[:2]) })
	assert.Contains(t, out, "│ {[Alice]}")
}

type orderedRecord struct {
	names  []string
	values map[string]any
}

func (r orderedRecord) Fields() []string { return r.names }

func (r orderedRecord) Field(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

type stamp int

func (s stamp) String() string { return fmt.Sprintf("#%d", int(s)) }

func TestInferColumnsFromStruct(t *testing.T) {
	type row struct {
		Name    string
		Tags    []string
		private int
		Count   *int
	}
	n := 3
	cols := inferColumns([]row{{Name: "x", Count: &n}})
	require.Len(t, cols, 2)
	assert.Equal(t, "Name", cols[0].Key)
	assert.Equal(t, "Count", cols[1].Header)
}

func TestInferColumnsFromMaps(t *testing.T) {
	items := []map[string]any{
		{"b": 1, "a": "x"},
		{"c": true, "nested": map[string]any{}},
	}
	cols := inferColumns(items)
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestInferColumnsFromFieldSource(t *testing.T) {
	rec := orderedRecord{
		names:  []string{"z", "when", "a"},
		values: map[string]any{"z": 1, "when": stamp(4), "a": nil},
	}
	cols := inferColumns([]orderedRecord{rec})
	require.Len(t, cols, 2)
	assert.Equal(t, "z", cols[0].Key)
	assert.Equal(t, "when", cols[1].Key)
}

func TestInferColumnsFallback(t *testing.T) {
	cols := inferColumns([]int{1, 2})
	require.Len(t, cols, 1)
	assert.Empty(t, cols[0].Header)
	assert.Equal(t, "2", formatValue(cols[0].Value(2)))
}

func TestFormatValue(t *testing.T) {
	n := 7
	var nilPtr *int
	var nilMap map[string]int
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "", formatValue(nilPtr))
	assert.Equal(t, "", formatValue(nilMap))
	assert.Equal(t, "7", formatValue(&n))
	assert.Equal(t, "#4", formatValue(stamp(4)))
	assert.Equal(t, "hi", formatValue("hi"))
	assert.Equal(t, "true", formatValue(true))
}
