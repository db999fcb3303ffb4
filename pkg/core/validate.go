package core

import "fmt"

// DiagnosticKind classifies why a fractional allocation was rejected.
type DiagnosticKind string

const (
	// AgentCountMismatch indicates the number of agents differs from the
	// number of fraction maps supplied at construction.
	AgentCountMismatch DiagnosticKind = "AgentCountMismatch"
	// ItemSetMismatch indicates an agent's fraction map declares a different
	// item set than the first agent's map. All maps must cover the same items.
	ItemSetMismatch DiagnosticKind = "ItemSetMismatch"
	// OutOfRangeShare indicates a single share value outside [0,1].
	OutOfRangeShare DiagnosticKind = "OutOfRangeShare"
	// OverAllocatedItem indicates an item whose shares across all agents sum
	// to more than 1.
	OverAllocatedItem DiagnosticKind = "OverAllocatedItem"
	// UnclaimedItem indicates an item whose shares across all agents sum to
	// exactly 0, i.e. nobody received any part of it.
	UnclaimedItem DiagnosticKind = "UnclaimedItem"
)

// Diagnostic is a structured rejection reason. It implements error so callers
// can propagate it, but construction never fails hard: the rejected container
// is returned alongside in its sentinel invalid state.
type Diagnostic struct {
	// Kind is the rejection class.
	Kind DiagnosticKind
	// Item is the offending item, when the rejection concerns one.
	Item Item
	// AgentIndex is the position of the offending agent, when the rejection
	// concerns one; -1 otherwise.
	AgentIndex int
	// Message is a human-readable description suitable for logs or console.
	Message string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func newDiagnostic(kind DiagnosticKind, item Item, agentIndex int, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:       kind,
		Item:       item,
		AgentIndex: agentIndex,
		Message:    fmt.Sprintf(format, args...),
	}
}

// ValidateFractionMaps checks structural well-formedness of one fraction map
// per agent. It returns nil on success, or the first Diagnostic found.
//
// All maps must declare the same item set; items are visited in ascending
// lexicographic order so the first violation is deterministic. Checks run in
// this order:
//
//  1. Every map covers the same items as the first map (ItemSetMismatch).
//  2. Every share lies in [0,1]; checked per agent, per item, while the
//     per-item sums accumulate. The first out-of-range share aborts all
//     further checking (OutOfRangeShare).
//  3. Per item, in ascending order: the summed share must not exceed 1
//     (OverAllocatedItem) and must not be exactly 0 (UnclaimedItem).
//
// Zero maps or empty item sets have nothing to check and validate trivially.
func ValidateFractionMaps(maps []FractionMap) *Diagnostic {
	if len(maps) == 0 {
		return nil
	}

	items := maps[0].Items()
	for i, m := range maps[1:] {
		if diag := sameItemSet(items, m, i+1); diag != nil {
			return diag
		}
	}

	sums := make([]float64, len(items))
	for agentIdx, m := range maps {
		for itemIdx, it := range items {
			share := m[it]
			sums[itemIdx] += share
			if share > 1 || share < 0 {
				return newDiagnostic(OutOfRangeShare, it, agentIdx,
					"share of item %q for agent %d is %v, not between 0 and 1", it, agentIdx, share)
			}
		}
	}

	for itemIdx, it := range items {
		if sums[itemIdx] > 1 {
			return newDiagnostic(OverAllocatedItem, it, -1,
				"shares of item %q sum to %v, greater than 1", it, sums[itemIdx])
		}
		if sums[itemIdx] == 0 {
			return newDiagnostic(UnclaimedItem, it, -1,
				"item %q has not been assigned to any agent", it)
		}
	}
	return nil
}

// sameItemSet checks that map m covers exactly the reference items.
func sameItemSet(items []Item, m FractionMap, agentIdx int) *Diagnostic {
	if len(m) != len(items) {
		return newDiagnostic(ItemSetMismatch, "", agentIdx,
			"fraction map of agent %d declares %d items, expected %d", agentIdx, len(m), len(items))
	}
	for _, it := range items {
		if _, ok := m[it]; !ok {
			return newDiagnostic(ItemSetMismatch, it, agentIdx,
				"fraction map of agent %d is missing item %q", agentIdx, it)
		}
	}
	return nil
}
