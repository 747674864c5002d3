package thermo_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermolab/internal/thermo"
)

var _ = Describe("OttoEfficiency", func() {
	It("matches the textbook value for r = 9.5", func() {
		eff, err := thermo.OttoEfficiency(9.5, thermo.DefaultGamma)
		Expect(err).NotTo(HaveOccurred())
		Expect(eff).To(BeNumerically("~", 0.594, 0.01))
	})

	It("is zero without compression", func() {
		for _, gamma := range []float64{1.1, 1.3, 1.4, 1.67} {
			eff, err := thermo.OttoEfficiency(1, gamma)
			Expect(err).NotTo(HaveOccurred())
			Expect(eff).To(BeZero())
		}
	})

	It("increases strictly with compression ratio", func() {
		prev := -1.0
		for r := 1.05; r <= 30; r += 0.25 {
			eff, err := thermo.OttoEfficiency(r, thermo.DefaultGamma)
			Expect(err).NotTo(HaveOccurred())
			Expect(eff).To(BeNumerically(">", prev))
			Expect(eff).To(BeNumerically("<", 1))
			prev = eff
		}
	})

	DescribeTable("rejects invalid inputs",
		func(r, gamma float64) {
			_, err := thermo.OttoEfficiency(r, gamma)
			Expect(err).To(MatchError(thermo.ErrDomain))
		},
		Entry("zero ratio", 0.0, 1.4),
		Entry("negative ratio", -9.5, 1.4),
		Entry("NaN gamma", 9.5, math.NaN()),
	)
})

var _ = Describe("DieselEfficiency", func() {
	It("is below Otto efficiency for the same compression ratio", func() {
		otto, err := thermo.OttoEfficiency(18, thermo.DefaultGamma)
		Expect(err).NotTo(HaveOccurred())
		diesel, err := thermo.DieselEfficiency(18, 2, thermo.DefaultGamma)
		Expect(err).NotTo(HaveOccurred())
		Expect(diesel).To(BeNumerically("<", otto))
		Expect(diesel).To(BeNumerically("~", 0.6316, 0.001))
	})

	It("approaches Otto efficiency as the cutoff ratio approaches 1", func() {
		otto, err := thermo.OttoEfficiency(9.5, thermo.DefaultGamma)
		Expect(err).NotTo(HaveOccurred())

		prevGap := math.Inf(1)
		for _, cutoff := range []float64{1.5, 1.1, 1.01, 1.001, 1.000001} {
			diesel, err := thermo.DieselEfficiency(9.5, cutoff, thermo.DefaultGamma)
			Expect(err).NotTo(HaveOccurred())
			gap := math.Abs(otto - diesel)
			Expect(gap).To(BeNumerically("<", prevGap))
			prevGap = gap
		}
		Expect(prevGap).To(BeNumerically("<", 1e-5))
	})

	It("approaches from below for cutoffs under 1 too", func() {
		otto, err := thermo.OttoEfficiency(12, thermo.DefaultGamma)
		Expect(err).NotTo(HaveOccurred())
		diesel, err := thermo.DieselEfficiency(12, 0.9999, thermo.DefaultGamma)
		Expect(err).NotTo(HaveOccurred())
		Expect(diesel).To(BeNumerically("~", otto, 1e-3))
	})

	DescribeTable("rejects invalid inputs",
		func(r, cutoff, gamma float64, param string) {
			_, err := thermo.DieselEfficiency(r, cutoff, gamma)
			Expect(err).To(MatchError(thermo.ErrDomain))

			var de *thermo.DomainError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Param).To(Equal(param))
		},
		Entry("cutoff of exactly 1", 9.5, 1.0, 1.4, "cutoff_ratio"),
		Entry("zero compression ratio", 0.0, 2.0, 1.4, "compression_ratio"),
		Entry("negative cutoff", 9.5, -2.0, 1.4, "cutoff_ratio"),
		Entry("zero gamma", 9.5, 2.0, 0.0, "gamma"),
	)
})
