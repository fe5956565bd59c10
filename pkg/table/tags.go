package table

import (
	"slices"

	"github.com/arthur-debert/boxgrid/pkg/errors"
)

// Row class tags.
const (
	TagHeader   = "header"
	TagFooter   = "footer"
	TagGroup    = "group"
	TagBody     = "body"
	TagFirstRow = "first-row"
	TagLastRow  = "last-row"
	TagOddRow   = "odd-row"
	TagEvenRow  = "even-row"
)

// Column class tags.
const (
	TagFirstColumn = "first-column"
	TagLastColumn  = "last-column"
	TagOddColumn   = "odd-column"
	TagEvenColumn  = "even-column"
)

var rowTags = map[string]bool{
	TagHeader:   true,
	TagFooter:   true,
	TagGroup:    true,
	TagBody:     true,
	TagFirstRow: true,
	TagLastRow:  true,
	TagOddRow:   true,
	TagEvenRow:  true,
}

var columnTags = map[string]bool{
	TagFirstColumn: true,
	TagLastColumn:  true,
	TagOddColumn:   true,
	TagEvenColumn:  true,
}

func isCellTag(tag string) bool {
	return rowTags[tag] || columnTags[tag]
}

func checkTags(kind string, index int, tags []string, valid func(string) bool) error {
	for _, tag := range tags {
		if !valid(tag) {
			return errors.Newf(errors.ErrInvalidClassTag, "%s rule %d uses unknown class tag %q", kind, index, tag).
				WithDetail("rule", kind).
				WithDetail("index", index).
				WithDetail("tag", tag)
		}
	}
	return nil
}

func validateRules[T any](def Definition[T]) error {
	for i, r := range def.ColumnRules {
		if err := checkTags("column", i, r.Tags, func(s string) bool { return columnTags[s] }); err != nil {
			return err
		}
	}
	for i, r := range def.RowRules {
		if err := checkTags("row", i, r.Tags, func(s string) bool { return rowTags[s] }); err != nil {
			return err
		}
	}
	for i, r := range def.CellRules {
		if err := checkTags("cell", i, r.Tags, isCellTag); err != nil {
			return err
		}
	}
	return nil
}

// parity returns the odd or even tag for a zero based index; the first
// element is odd.
func parity(i int, odd, even string) string {
	if i%2 == 0 {
		return odd
	}
	return even
}

func columnTagsFor(index, count int) []string {
	var tags []string
	if index == 0 {
		tags = append(tags, TagFirstColumn)
	}
	if index == count-1 {
		tags = append(tags, TagLastColumn)
	}
	return append(tags, parity(index, TagOddColumn, TagEvenColumn))
}

func bodyRowTags(index, count int, grouped bool) []string {
	var tags []string
	if grouped {
		tags = append(tags, TagGroup)
	}
	tags = append(tags, TagBody)
	if index == 0 {
		tags = append(tags, TagFirstRow)
	}
	if index == count-1 {
		tags = append(tags, TagLastRow)
	}
	return append(tags, parity(index, TagOddRow, TagEvenRow))
}

func hasAllTags(want, have []string) (int, bool) {
	count := 0
	for _, w := range want {
		if !slices.Contains(have, w) {
			return 0, false
		}
		count++
	}
	return count, true
}
