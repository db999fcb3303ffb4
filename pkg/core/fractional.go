package core

import (
	"fmt"
	"strings"
)

// FractionalAllocation pairs agents positionally with fraction maps, in an
// allocation where several agents may hold parts of the same item.
//
// Construction validates the fraction maps. On rejection the constructor
// returns a Diagnostic and the instance enters a sentinel invalid state:
// its fields are cleared, it renders as an empty string, and SocialValue
// returns 0. Callers that want hard failure check the Diagnostic; callers
// that ignore it get a visibly empty allocation rather than a fault.
//
// A valid FractionalAllocation is immutable and safe for concurrent reads.
type FractionalAllocation struct {
	agents []FractionalAgent
	shares []FractionMap
	valid  bool
}

// NewFractionalAllocation constructs a fractional allocation from one
// fraction map per agent. The maps must cover a common item set, every share
// must lie in [0,1], every item's shares must sum to at most 1, and every
// item must be claimed by someone.
func NewFractionalAllocation(agents []FractionalAgent, shares []FractionMap) (*FractionalAllocation, *Diagnostic) {
	if len(agents) != len(shares) {
		return &FractionalAllocation{}, newDiagnostic(AgentCountMismatch, "", -1,
			"%d agents but %d fraction maps", len(agents), len(shares))
	}
	if diag := ValidateFractionMaps(shares); diag != nil {
		return &FractionalAllocation{}, diag
	}
	return &FractionalAllocation{agents: agents, shares: shares, valid: true}, nil
}

// Valid reports whether the allocation passed construction-time validation.
func (f *FractionalAllocation) Valid() bool {
	return f.valid
}

// Agents returns the agents in allocation order, or nil for an invalid
// allocation.
func (f *FractionalAllocation) Agents() []FractionalAgent {
	return f.agents
}

// Shares returns the fraction map of the agent at the given index.
func (f *FractionalAllocation) Shares(agentIndex int) FractionMap {
	return f.shares[agentIndex]
}

// AgentValue returns the value the agent at the given index derives from its
// fractional holdings.
func (f *FractionalAllocation) AgentValue(agentIndex int) float64 {
	return ValueOfShares(f.agents[agentIndex].ItemValues(), f.shares[agentIndex])
}

// SocialValue returns the sum of all agents' derived values. It is computed
// on demand; recomputation is linear in the item count and always consistent
// since the allocation never mutates. Returns 0 for an invalid allocation.
func (f *FractionalAllocation) SocialValue() float64 {
	if !f.Valid() {
		return 0
	}
	total := 0.0
	for i := range f.agents {
		total += f.AgentValue(i)
	}
	return total
}

// String renders one line per agent, with a trailing newline:
//
//	<name>'s bundle: {items with positive share},  value: <v>
//
// An invalid allocation renders as an empty string.
func (f *FractionalAllocation) String() string {
	if !f.Valid() {
		return ""
	}
	var sb strings.Builder
	for i, agent := range f.agents {
		fmt.Fprintf(&sb, "%s's bundle: %s,  value: %s\n",
			agent.Name(), f.shares[i].PositiveItems(), formatValue(f.AgentValue(i)))
	}
	return sb.String()
}
