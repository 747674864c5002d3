package thermo_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermolab/internal/thermo"
)

var _ = Describe("IdealGasPressure", func() {
	It("evaluates nRT/V", func() {
		p, err := thermo.IdealGasPressure(2, 2, 300, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(BeNumerically("~", 2494.2, 0.1))
	})

	It("round trips through P*V = nRT", func() {
		for _, v := range []float64{0.001, 0.5, 2, 5, 120} {
			p, err := thermo.IdealGasPressure(v, 3, 350, thermo.GasConstant)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(BeNumerically(">", 0))
			Expect(p * v).To(BeNumerically("~", 3*thermo.GasConstant*350, 1e-9))
		}
	})

	It("halves when the volume doubles", func() {
		p1, err := thermo.IdealGasPressure(2, 2, 300, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		p2, err := thermo.IdealGasPressure(4, 2, 300, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(p2).To(BeNumerically("~", p1/2, 1e-9))
	})

	It("honours an overridden gas constant", func() {
		p, err := thermo.IdealGasPressure(1, 1, 1, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(2.0))
	})

	DescribeTable("rejects inputs outside the physical domain",
		func(v, n, t, r float64, param string) {
			_, err := thermo.IdealGasPressure(v, n, t, r)
			Expect(err).To(MatchError(thermo.ErrDomain))

			var de *thermo.DomainError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Param).To(Equal(param))
			Expect(de.Op).To(Equal("IdealGasPressure"))
		},
		Entry("zero volume", 0.0, 2.0, 300.0, thermo.GasConstant, "volume"),
		Entry("negative volume", -1.0, 2.0, 300.0, thermo.GasConstant, "volume"),
		Entry("zero moles", 2.0, 0.0, 300.0, thermo.GasConstant, "moles"),
		Entry("negative temperature", 2.0, 2.0, -5.0, thermo.GasConstant, "temperature"),
		Entry("zero gas constant", 2.0, 2.0, 300.0, 0.0, "r"),
		Entry("NaN volume", math.NaN(), 2.0, 300.0, thermo.GasConstant, "volume"),
		Entry("infinite temperature", 2.0, 2.0, math.Inf(1), thermo.GasConstant, "temperature"),
	)

	It("rejects results that overflow", func() {
		_, err := thermo.IdealGasPressure(1e-300, 1e300, 1e300, thermo.GasConstant)
		Expect(err).To(MatchError(thermo.ErrDomain))
	})
})

var _ = Describe("GasPressure", func() {
	It("matches IdealGasPressure at z = 1", func() {
		ideal, err := thermo.IdealGasPressure(5, 2, 300, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		corrected, err := thermo.GasPressure(5, 2, 300, 1, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(corrected).To(Equal(ideal))
	})

	It("scales linearly with compressibility", func() {
		p, err := thermo.GasPressure(5, 2, 300, 0.9, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(BeNumerically("~", 0.9*2*thermo.GasConstant*300/5, 1e-9))
	})

	It("rejects a non-positive compressibility factor", func() {
		_, err := thermo.GasPressure(5, 2, 300, 0, thermo.GasConstant)
		Expect(err).To(MatchError(thermo.ErrDomain))
	})
})

var _ = Describe("IsothermalWork", func() {
	It("is positive for expansion and negative for compression", func() {
		w, err := thermo.IsothermalWork(1, 300, 1, 2, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(BeNumerically("~", thermo.GasConstant*300*math.Ln2, 1e-9))

		w, err = thermo.IsothermalWork(1, 300, 2, 1, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(BeNumerically("~", -thermo.GasConstant*300*math.Ln2, 1e-9))
	})

	It("is zero when the volume does not change", func() {
		w, err := thermo.IsothermalWork(2, 300, 3, 3, thermo.GasConstant)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(BeZero())
	})

	It("rejects a zero volume", func() {
		_, err := thermo.IsothermalWork(1, 300, 0, 2, thermo.GasConstant)
		Expect(err).To(MatchError(thermo.ErrDomain))
	})
})
