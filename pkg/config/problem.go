/*
Copyright 2026 The fairdiv Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fairdiv/allocation-engine/pkg/core"
)

// AgentSpec declares one agent and its value for each individual item.
type AgentSpec struct {
	// Name is the agent's display name. Required, unique within a problem.
	Name string `yaml:"name" json:"name"`

	// Values maps item identifiers to the agent's value for the whole item.
	Values map[string]float64 `yaml:"values" json:"values"`
}

// IntegralData declares whole-item bundles, one per agent by position.
// A null entry leaves that agent's slot unset.
type IntegralData struct {
	Bundles [][]string `yaml:"bundles" json:"bundles"`
}

// FractionalData declares fraction maps, one per agent by position.
type FractionalData struct {
	Shares []map[string]float64 `yaml:"shares" json:"shares"`
}

// ProblemData is a declarative allocation problem: the agents and the
// outcome an allocation procedure assigned to them, in integral and/or
// fractional form.
type ProblemData struct {
	Agents     []AgentSpec     `yaml:"agents" json:"agents"`
	Integral   *IntegralData   `yaml:"integral,omitempty" json:"integral,omitempty"`
	Fractional *FractionalData `yaml:"fractional,omitempty" json:"fractional,omitempty"`
}

// ParseProblem parses and validates a YAML problem document.
func ParseProblem(data []byte) (*ProblemData, error) {
	var p ProblemData
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing problem data: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks for invalid problem structure. Share invariants (ranges
// and per-item sums) are deliberately not checked here: they are enforced by
// core at construction, including the agent-count check for the fractional
// share list, so that rejections carry the structured diagnostic kinds.
func (p *ProblemData) Validate() error {
	if len(p.Agents) == 0 {
		return fmt.Errorf("problem declares no agents")
	}
	seen := make(map[string]struct{}, len(p.Agents))
	for i, a := range p.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent %d has no name", i)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("duplicate agent name %q", a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	if p.Integral == nil && p.Fractional == nil {
		return fmt.Errorf("problem declares neither integral bundles nor fractional shares")
	}
	if p.Integral != nil && len(p.Integral.Bundles) != len(p.Agents) {
		return fmt.Errorf("%d bundles declared for %d agents",
			len(p.Integral.Bundles), len(p.Agents))
	}
	return nil
}

// BuildAgents converts the agent specs into additive agents, in declaration
// order.
func (p *ProblemData) BuildAgents() []*core.AdditiveAgent {
	agents := make([]*core.AdditiveAgent, len(p.Agents))
	for i, spec := range p.Agents {
		values := make(map[core.Item]float64, len(spec.Values))
		for item, v := range spec.Values {
			values[core.Item(item)] = v
		}
		agents[i] = core.NewAdditiveAgent(spec.Name, values)
	}
	return agents
}

// BuildAllocation constructs the integral allocation declared by the
// problem, or nil if it declares none. Null bundle entries stay unset.
func (p *ProblemData) BuildAllocation() *core.Allocation {
	if p.Integral == nil {
		return nil
	}
	additive := p.BuildAgents()
	agents := make([]core.Agent, len(additive))
	for i, a := range additive {
		agents[i] = a
	}
	bundles := make([]core.Bundle, len(p.Integral.Bundles))
	for i, items := range p.Integral.Bundles {
		if items == nil {
			continue
		}
		b := make(core.Bundle, len(items))
		for _, item := range items {
			b[core.Item(item)] = struct{}{}
		}
		bundles[i] = b
	}
	return core.NewAllocation(agents, bundles)
}

// BuildFractionalAllocation constructs the fractional allocation declared by
// the problem, running construction-time validation. Returns (nil, nil) if
// the problem declares no fractional part.
func (p *ProblemData) BuildFractionalAllocation() (*core.FractionalAllocation, *core.Diagnostic) {
	if p.Fractional == nil {
		return nil, nil
	}
	additive := p.BuildAgents()
	agents := make([]core.FractionalAgent, len(additive))
	for i, a := range additive {
		agents[i] = a
	}
	shares := make([]core.FractionMap, len(p.Fractional.Shares))
	for i, m := range p.Fractional.Shares {
		fm := make(core.FractionMap, len(m))
		for item, share := range m {
			fm[core.Item(item)] = share
		}
		shares[i] = fm
	}
	return core.NewFractionalAllocation(agents, shares)
}
