// Package config provides declarative allocation problem data.
//
// This package handles parsing, validation, and conversion of problem
// definitions — the agents, their per-item values, and the bundles or
// fraction maps an allocation procedure assigned to them — from YAML
// documents into core domain types.
//
// Problem format:
//
//	agents:
//	  - name: Alice
//	    values: {x: 1, y: 2, z: 3}
//	  - name: George
//	    values: {x: 3, y: 2, z: 1}
//	fractional:
//	  shares:
//	    - {x: 0.5, y: 0.5, z: 0.5}
//	    - {x: 0.5, y: 0.5, z: 0.5}
//
// A problem may declare `integral` bundles, `fractional` shares, or both.
// ParseProblem validates structural constraints (agent names, list lengths)
// at load time; the share invariants themselves (ranges, per-item sums) are
// enforced by core at allocation construction.
//
// Example usage:
//
//	problem, err := config.ParseProblem(data)
//	if err != nil {
//	    log.Error(err, "failed to load problem")
//	    return err
//	}
//	alloc, diag := problem.BuildFractionalAllocation()
//	if diag != nil {
//	    log.Error(diag, "allocation rejected", "kind", diag.Kind)
//	}
package config
