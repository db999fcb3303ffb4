package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fairdiv/allocation-engine/pkg/core"
)

const fractionalProblem = `
agents:
  - name: agent1
    values: {x: 1, y: 2, z: 3}
  - name: agent2
    values: {x: 3, y: 2, z: 1}
fractional:
  shares:
    - {x: 0.4, y: 0, z: 0.5}
    - {x: 0.6, y: 1, z: 0.5}
`

const integralProblem = `
agents:
  - name: Alice
    values: {x: 1, y: 2, z: 3}
  - name: George
    values: {x: 3, y: 2, z: 1}
integral:
  bundles:
    - [x, y]
    - [z]
`

var _ = Describe("ParseProblem", func() {
	Context("with a fractional problem", func() {
		It("should build a valid fractional allocation", func() {
			problem, err := ParseProblem([]byte(fractionalProblem))
			Expect(err).NotTo(HaveOccurred())

			alloc, diag := problem.BuildFractionalAllocation()
			Expect(diag).To(BeNil())
			Expect(alloc.Valid()).To(BeTrue())
			Expect(alloc.SocialValue()).To(BeNumerically("~", 6.2, 1e-9))
		})

		It("should build no integral allocation", func() {
			problem, err := ParseProblem([]byte(fractionalProblem))
			Expect(err).NotTo(HaveOccurred())
			Expect(problem.BuildAllocation()).To(BeNil())
		})
	})

	Context("with an integral problem", func() {
		It("should build an allocation with the declared bundles", func() {
			problem, err := ParseProblem([]byte(integralProblem))
			Expect(err).NotTo(HaveOccurred())

			alloc := problem.BuildAllocation()
			Expect(alloc).NotTo(BeNil())

			out, renderErr := alloc.Render()
			Expect(renderErr).NotTo(HaveOccurred())
			Expect(out).To(Equal(
				"Alice's bundle: {x,y},  value: 3,  all values: [3, 3]\n" +
					"George's bundle: {z},  value: 1,  all values: [5, 1]\n"))
		})

		It("should leave null bundle entries unset", func() {
			problem, err := ParseProblem([]byte(`
agents:
  - name: Alice
    values: {x: 1}
  - name: George
    values: {x: 3}
integral:
  bundles:
    - [x]
    - null
`))
			Expect(err).NotTo(HaveOccurred())

			alloc := problem.BuildAllocation()
			Expect(alloc.Bundle(0)).NotTo(BeNil())
			Expect(alloc.Bundle(1)).To(BeNil())

			_, renderErr := alloc.Render()
			Expect(renderErr).To(MatchError(core.ErrBundleUnset))
		})
	})

	Context("with malformed problems", func() {
		It("should reject non-YAML input", func() {
			_, err := ParseProblem([]byte("{{nope"))
			Expect(err).To(HaveOccurred())
		})

		It("should reject an empty agent list", func() {
			_, err := ParseProblem([]byte("agents: []\nintegral: {bundles: []}\n"))
			Expect(err).To(MatchError(ContainSubstring("no agents")))
		})

		It("should reject an agent without a name", func() {
			_, err := ParseProblem([]byte(`
agents:
  - values: {x: 1}
integral:
  bundles:
    - [x]
`))
			Expect(err).To(MatchError(ContainSubstring("has no name")))
		})

		It("should reject duplicate agent names", func() {
			_, err := ParseProblem([]byte(`
agents:
  - name: Alice
    values: {x: 1}
  - name: Alice
    values: {x: 2}
integral:
  bundles:
    - [x]
    - []
`))
			Expect(err).To(MatchError(ContainSubstring("duplicate agent name")))
		})

		It("should reject a problem with no allocation data", func() {
			_, err := ParseProblem([]byte(`
agents:
  - name: Alice
    values: {x: 1}
`))
			Expect(err).To(MatchError(ContainSubstring("neither integral bundles nor fractional shares")))
		})

		It("should reject a bundle count that differs from the agent count", func() {
			_, err := ParseProblem([]byte(`
agents:
  - name: Alice
    values: {x: 1}
  - name: George
    values: {x: 3}
integral:
  bundles:
    - [x]
`))
			Expect(err).To(MatchError(ContainSubstring("1 bundles declared for 2 agents")))
		})
	})

	Context("with a fractional share count mismatch", func() {
		It("should defer the agent-count check to construction", func() {
			problem, err := ParseProblem([]byte(`
agents:
  - name: agent1
    values: {x: 1}
  - name: agent2
    values: {x: 3}
fractional:
  shares:
    - {x: 1}
`))
			Expect(err).NotTo(HaveOccurred())

			alloc, diag := problem.BuildFractionalAllocation()
			Expect(diag).NotTo(BeNil())
			Expect(diag.Kind).To(Equal(core.AgentCountMismatch))
			Expect(alloc.Valid()).To(BeFalse())
			Expect(alloc.String()).To(BeEmpty())
		})
	})
})

var _ = Describe("BuildAgents", func() {
	It("should preserve declaration order and values", func() {
		problem, err := ParseProblem([]byte(fractionalProblem))
		Expect(err).NotTo(HaveOccurred())

		agents := problem.BuildAgents()
		Expect(agents).To(HaveLen(2))
		Expect(agents[0].Name()).To(Equal("agent1"))
		Expect(agents[1].Name()).To(Equal("agent2"))
		Expect(agents[0].Value(core.BundleFromString("xyz"))).To(Equal(6.0))
		Expect(agents[1].Value(core.BundleFromString("xyz"))).To(Equal(6.0))
	})
})
