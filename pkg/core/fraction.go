package core

import "sort"

// FractionMap records how much of each item one agent holds, as a share
// in [0,1] per item.
type FractionMap map[Item]float64

// Items returns the map's items in ascending lexicographic order.
func (m FractionMap) Items() []Item {
	items := make([]Item, 0, len(m))
	for it := range m {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// PositiveItems returns the set of items with a strictly positive share,
// i.e. the items the holding agent actually received some part of.
func (m FractionMap) PositiveItems() Bundle {
	b := make(Bundle)
	for it, share := range m {
		if share > 0 {
			b[it] = struct{}{}
		}
	}
	return b
}
