package core

// Agent is a participant in an allocation. Implementations must be
// deterministic and immutable for the lifetime of any allocation that
// references them.
type Agent interface {
	// Name returns the agent's display name.
	Name() string

	// Value returns the agent's value for a bundle of whole items.
	Value(bundle Bundle) float64
}

// FractionalAgent is an Agent that additionally exposes its raw per-item
// value dataset, required by the fractional valuation path.
type FractionalAgent interface {
	Agent

	// ItemValues returns the agent's value for each individual item.
	ItemValues() map[Item]float64
}

// AdditiveAgent is an agent whose value for a bundle is the sum of its
// per-item values. Items absent from the value map are worth 0.
type AdditiveAgent struct {
	name   string
	values map[Item]float64
}

// NewAdditiveAgent creates an agent with the given name and per-item values.
// The value map is copied; later mutation of the argument does not affect
// the agent.
func NewAdditiveAgent(name string, values map[Item]float64) *AdditiveAgent {
	copied := make(map[Item]float64, len(values))
	for it, v := range values {
		copied[it] = v
	}
	return &AdditiveAgent{name: name, values: copied}
}

// Name returns the agent's display name.
func (a *AdditiveAgent) Name() string {
	return a.name
}

// Value returns the sum of the agent's values for the items in the bundle.
// Negative per-item values participate as ordinary arithmetic; no clamping.
func (a *AdditiveAgent) Value(bundle Bundle) float64 {
	total := 0.0
	for it := range bundle {
		total += a.values[it]
	}
	return total
}

// ItemValues returns the agent's per-item value dataset. The returned map
// is a copy; callers may not mutate the agent through it.
func (a *AdditiveAgent) ItemValues() map[Item]float64 {
	copied := make(map[Item]float64, len(a.values))
	for it, v := range a.values {
		copied[it] = v
	}
	return copied
}
