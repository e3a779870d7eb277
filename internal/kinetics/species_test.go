package kinetics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polysim/internal/kinetics"
)

var _ = Describe("Catalog", func() {
	It("lists the five species in declaration order", func() {
		names := []string{}
		for _, s := range kinetics.Catalog() {
			names = append(names, s.Name)
		}
		Expect(names).To(Equal([]string{
			"Polyethylene",
			"Polystyrene",
			"Polyvinyl Chloride",
			"Nylon",
			"Polymethyl Methacrylate",
		}))
	})

	It("returns a copy that callers cannot use to mutate the catalog", func() {
		c := kinetics.Catalog()
		c[0].ActivationEnergy = 1
		Expect(kinetics.Catalog()[0].ActivationEnergy).To(Equal(25000.0))
	})

	It("looks up species by name", func() {
		s, ok := kinetics.Lookup("Nylon")
		Expect(ok).To(BeTrue())
		Expect(s.ActivationEnergy).To(Equal(40000.0))
		Expect(s.PreExponential).To(Equal(2.5e5))

		_, ok = kinetics.Lookup("Kevlar")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("RateConstant", func() {
	It("matches the worked example", func() {
		k := kinetics.RateConstant(1e5, 25000, 300)
		Expect(k).To(BeNumerically("~", 1e5*math.Exp(-25000/(8.314*300)), 1e-12))
		Expect(k).To(BeNumerically("~", 4.43, 0.01))
	})

	It("increases with temperature for every species", func() {
		for _, s := range kinetics.Catalog() {
			prev := 0.0
			for T := 250.0; T <= 500; T += 10 {
				k := s.RateConstant(T)
				Expect(k).To(BeNumerically(">", prev), "%s at %.0f K", s.Name, T)
				prev = k
			}
		}
	})

	It("decreases with activation energy", func() {
		Expect(kinetics.RateConstant(1e5, 30000, 300)).To(BeNumerically("<", kinetics.RateConstant(1e5, 25000, 300)))
	})
})
