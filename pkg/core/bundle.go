package core

import (
	"sort"
	"strings"
)

// Item is an opaque item identifier, e.g. a single character or a string token.
type Item string

// Bundle is a set of whole items assigned to one agent. A nil Bundle denotes
// an unset slot in an Allocation.
type Bundle map[Item]struct{}

// NewBundle builds a Bundle from the given items. Duplicates collapse.
func NewBundle(items ...Item) Bundle {
	b := make(Bundle, len(items))
	for _, it := range items {
		b[it] = struct{}{}
	}
	return b
}

// BundleFromString builds a Bundle from a string, one item per rune.
// Convenient for compact test fixtures, e.g. BundleFromString("xy").
func BundleFromString(s string) Bundle {
	b := make(Bundle, len(s))
	for _, r := range s {
		b[Item(r)] = struct{}{}
	}
	return b
}

// Has reports whether the bundle contains the item.
func (b Bundle) Has(item Item) bool {
	_, ok := b[item]
	return ok
}

// Items returns the bundle's items in ascending lexicographic order.
func (b Bundle) Items() []Item {
	items := make([]Item, 0, len(b))
	for it := range b {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// String renders the bundle as "{i1,i2,...}" with items in ascending
// lexicographic order, independent of insertion order. An empty or nil
// bundle renders as "{}".
func (b Bundle) String() string {
	items := b.Items()
	var sb strings.Builder
	sb.WriteByte('{')
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(it))
	}
	sb.WriteByte('}')
	return sb.String()
}
