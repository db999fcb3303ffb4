// Package core provides the fundamental data structures and business logic
// for representing the outcome of a fair-division allocation procedure.
//
// This package contains the domain models for item allocation among agents:
//
//   - Agent: a participant with a valuation function over bundles of items
//   - AdditiveAgent: an agent whose bundle value is the sum of per-item values
//   - Bundle: a set of whole items assigned to one agent
//   - FractionMap: an agent's per-item share in a divisible allocation
//   - Allocation: agents paired with whole-item bundles
//   - FractionalAllocation: agents paired with validated fraction maps
//
// An allocation is typically produced by an allocation algorithm elsewhere;
// this package only represents, validates, values, and displays one.
//
// Example usage:
//
//	alice := core.NewAdditiveAgent("Alice", map[core.Item]float64{"x": 1, "y": 2, "z": 3})
//	george := core.NewAdditiveAgent("George", map[core.Item]float64{"x": 3, "y": 2, "z": 1})
//
//	a, diag := core.NewFractionalAllocation(
//	    []core.FractionalAgent{alice, george},
//	    []core.FractionMap{
//	        {"x": 0.5, "y": 0.5, "z": 0.5},
//	        {"x": 0.5, "y": 0.5, "z": 0.5},
//	    },
//	)
//	if diag != nil {
//	    log.Error(diag, "allocation rejected")
//	    return
//	}
//	fmt.Print(a)                 // one line per agent
//	fmt.Println(a.SocialValue()) // 6
//
// The core package is designed to be:
//   - Immutable where possible (FractionalAllocation never mutates after construction)
//   - Independent of the outer CLI and configuration layers (pure domain logic)
//   - Deterministic: items always iterate in ascending lexicographic order
package core
