package thermo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermolab/internal/thermo"
)

var _ = Describe("InternalEnergyChange", func() {
	It("subtracts work done from heat added", func() {
		Expect(thermo.InternalEnergyChange(500, 300)).To(Equal(200.0))
	})

	DescribeTable("holds dU = Q - W for signed inputs",
		func(q, w float64) {
			Expect(thermo.InternalEnergyChange(q, w)).To(Equal(q - w))
		},
		Entry("work on the system", 100.0, -50.0),
		Entry("heat rejected", -250.0, 40.0),
		Entry("both negative", -10.5, -20.25),
		Entry("zero", 0.0, 0.0),
	)
})
