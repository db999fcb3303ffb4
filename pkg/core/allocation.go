package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBundleUnset is returned when valuation or rendering touches an agent
// slot whose bundle has not been assigned yet.
var ErrBundleUnset = errors.New("bundle not set for agent")

// Allocation pairs agents positionally with whole-item bundles. It performs
// no validation: bundles may be unset (nil) transiently and replaced after
// construction, and the caller is responsible for only valuing or rendering
// fully assigned allocations.
//
// Allocation is mutable and not safe for concurrent use.
type Allocation struct {
	agents  []Agent
	bundles []Bundle
}

// NewAllocation creates an allocation for the given agents. Bundles may be
// passed immediately or left nil and assigned later via SetBundle/SetBundles;
// when passed, there must be one per agent.
func NewAllocation(agents []Agent, bundles []Bundle) *Allocation {
	if bundles == nil {
		bundles = make([]Bundle, len(agents))
	}
	return &Allocation{agents: agents, bundles: bundles}
}

// Agents returns the agents in allocation order.
func (a *Allocation) Agents() []Agent {
	return a.agents
}

// Bundle returns the bundle of the agent at the given index. A nil bundle
// means the slot is still unset.
func (a *Allocation) Bundle(agentIndex int) Bundle {
	return a.bundles[agentIndex]
}

// Bundles returns the whole bundle list.
func (a *Allocation) Bundles() []Bundle {
	return a.bundles
}

// SetBundle assigns the bundle of the agent at the given index.
func (a *Allocation) SetBundle(agentIndex int, bundle Bundle) {
	a.bundles[agentIndex] = bundle
}

// SetBundles replaces the whole bundle list.
func (a *Allocation) SetBundles(bundles []Bundle) {
	a.bundles = bundles
}

// AgentValue returns the value the agent at the given index assigns to its
// own bundle. Returns ErrBundleUnset if the slot has no bundle yet.
func (a *Allocation) AgentValue(agentIndex int) (float64, error) {
	if a.bundles[agentIndex] == nil {
		return 0, fmt.Errorf("agent %d: %w", agentIndex, ErrBundleUnset)
	}
	return a.agents[agentIndex].Value(a.bundles[agentIndex]), nil
}

// Render produces the canonical multi-line display of the allocation, one
// line per agent with a trailing newline:
//
//	<name>'s bundle: <bundle>,  value: <v>,  all values: [v1, v2, ...]
//
// where the all-values row lists the agent's valuation of every agent's
// bundle, in allocation order. Returns ErrBundleUnset if any slot is unset.
func (a *Allocation) Render() (string, error) {
	var sb strings.Builder
	for i, agent := range a.agents {
		bundle := a.bundles[i]
		if bundle == nil {
			return "", fmt.Errorf("agent %d: %w", i, ErrBundleUnset)
		}
		allValues := make([]string, len(a.bundles))
		for j, other := range a.bundles {
			if other == nil {
				return "", fmt.Errorf("agent %d: %w", j, ErrBundleUnset)
			}
			allValues[j] = formatValue(agent.Value(other))
		}
		fmt.Fprintf(&sb, "%s's bundle: %s,  value: %s,  all values: [%s]\n",
			agent.Name(), bundle, formatValue(agent.Value(bundle)), strings.Join(allValues, ", "))
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. An allocation with unset bundles renders
// as an empty string; use Render to distinguish that case explicitly.
func (a *Allocation) String() string {
	s, err := a.Render()
	if err != nil {
		return ""
	}
	return s
}
