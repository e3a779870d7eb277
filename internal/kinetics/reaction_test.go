package kinetics_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polysim/internal/dynamo"
	"github.com/san-kum/polysim/internal/integrators"
	"github.com/san-kum/polysim/internal/kinetics"
)

var _ = Describe("Reaction", func() {
	It("clamps the sub-gel multiplier at zero", func() {
		r := kinetics.NewReaction(4.43, 0.5, 2.0)
		Expect(r.DiffusionLimit(0.4)).To(Equal(0.0))
		Expect(r.DiffusionLimit(0.3)).To(Equal(0.0))
		Expect(r.DiffusionLimit(0.1)).To(BeNumerically("~", 0.6, 1e-12))
	})

	It("decays linearly below the gel point", func() {
		r := kinetics.NewReaction(1, 0.5, 0.8)
		Expect(r.DiffusionLimit(0)).To(Equal(1.0))
		Expect(r.DiffusionLimit(0.25)).To(BeNumerically("~", 0.6, 1e-12))
	})

	It("uses exactly the residual rate at and beyond the gel point", func() {
		r := kinetics.NewReaction(1, 0.5, 0.8)
		Expect(r.DiffusionLimit(0.5)).To(Equal(0.1))
		Expect(r.DiffusionLimit(0.9)).To(Equal(0.1))
		Expect(r.DiffusionLimit(12)).To(Equal(kinetics.ResidualRate))
	})

	It("never produces a positive derivative", func() {
		r := kinetics.NewReaction(4.43, 0.5, 0.8)
		for c := 0.0; c <= 1.5; c += 0.01 {
			Expect(r.Derive(dynamo.State{c}, 0)[0]).To(BeNumerically("<=", 0))
		}
	})
})

var _ = Describe("DegreeOfPolymerization", func() {
	It("is infinite without conversion", func() {
		Expect(math.IsInf(kinetics.DegreeOfPolymerization(1, 1), 1)).To(BeTrue())
	})

	It("follows Ci/(Ci-Cf)", func() {
		Expect(kinetics.DegreeOfPolymerization(1.0, 0.5)).To(Equal(2.0))
		Expect(kinetics.DegreeOfPolymerization(2.0, 0.5)).To(BeNumerically("~", 4.0/3.0, 1e-12))
	})
})

var _ = Describe("Simulate", func() {
	var k float64

	BeforeEach(func() {
		k = kinetics.RateConstant(1e5, 25000, 300)
	})

	It("reports 100 samples with exact endpoints", func() {
		times, conc, err := kinetics.Simulate(1.0, k, 50, 0.5, 0.8)
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(HaveLen(kinetics.SampleCount))
		Expect(conc).To(HaveLen(kinetics.SampleCount))
		Expect(times[0]).To(Equal(0.0))
		Expect(times[99]).To(Equal(50.0))
		Expect(conc[0]).To(Equal(1.0))
		for i := 1; i < len(times); i++ {
			Expect(times[i] - times[i-1]).To(BeNumerically("~", 50.0/99.0, 1e-9))
		}
	})

	It("follows the residual-rate decay until the gel point, then crosses it", func() {
		times, conc, err := kinetics.Simulate(1.0, k, 50, 0.5, 0.8)
		Expect(err).NotTo(HaveOccurred())

		crossed := -1
		for i := 0; i < len(conc)-1; i++ {
			if conc[i] >= 0.5 && conc[i+1] < 0.5 {
				crossed = i
				break
			}
		}
		Expect(crossed).To(BeNumerically(">", 0))

		for i := 0; i <= crossed; i++ {
			want := math.Exp(-kinetics.ResidualRate * k * times[i])
			Expect(conc[i]).To(BeNumerically("~", want, 1e-6))
		}

		Expect(conc[99]).To(BeNumerically("<", 1e-3))
		reachedLow := false
		for i, c := range conc {
			if c < 0.01 && times[i] < 25 {
				reachedLow = true
				break
			}
		}
		Expect(reachedLow).To(BeTrue())
	})

	It("is non-increasing across the slider ranges", func() {
		for _, T := range []float64{250, 300, 400, 500} {
			for _, gel := range []float64{0.1, 0.5, 1.0} {
				for _, df := range []float64{0.1, 0.8, 1.0} {
					for _, s := range kinetics.Catalog() {
						_, conc, err := kinetics.Simulate(1.0, s.RateConstant(T), 50, gel, df)
						Expect(err).NotTo(HaveOccurred())
						for i := 0; i+1 < len(conc); i++ {
							Expect(conc[i+1]).To(BeNumerically("<=", conc[i]+1e-8),
								"%s T=%.0f gel=%.1f df=%.1f at sample %d", s.Name, T, gel, df, i)
						}
					}
				}
			}
		}
	})

	It("only changes the sub-gel part of the trajectory when the diffusion factor changes", func() {
		times, a, err := kinetics.Simulate(1.0, k, 50, 0.5, 0.8)
		Expect(err).NotTo(HaveOccurred())
		_, b, err := kinetics.Simulate(1.0, k, 50, 0.5, 0.3)
		Expect(err).NotTo(HaveOccurred())

		differs := false
		for i := range times {
			if a[i] >= 0.5 && b[i] >= 0.5 {
				Expect(a[i]).To(BeNumerically("~", b[i], 1e-6))
			} else if math.Abs(a[i]-b[i]) > 1e-4 {
				differs = true
			}
		}
		Expect(differs).To(BeTrue())
	})

	It("stays flat when the clamp stops the reaction", func() {
		_, conc, err := kinetics.Simulate(0.4, k, 50, 0.5, 2.0)
		Expect(err).NotTo(HaveOccurred())
		for _, c := range conc {
			Expect(c).To(Equal(0.4))
		}
	})

	It("rejects non-positive time and gel point", func() {
		_, _, err := kinetics.Simulate(1.0, k, 0, 0.5, 0.8)
		Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
		_, _, err = kinetics.Simulate(1.0, k, 50, 0, 0.8)
		Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
	})
})

var _ = Describe("Simulator.Run", func() {
	It("produces one run per species in catalog order", func() {
		runs, err := kinetics.NewSimulator().Run(context.Background(), kinetics.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(5))
		for i, s := range kinetics.Catalog() {
			Expect(runs[i].Species.Name).To(Equal(s.Name))
			Expect(runs[i].RateConstant).To(Equal(s.RateConstant(300)))
			Expect(runs[i].Times).To(HaveLen(kinetics.SampleCount))
			Expect(runs[i].Initial()).To(Equal(1.0))
			Expect(runs[i].DegreeOfPolymerization).To(Equal(kinetics.DegreeOfPolymerization(runs[i].Initial(), runs[i].Final())))
		}
	})

	It("is reproducible across calls", func() {
		sim := kinetics.NewSimulator()
		a, err := sim.Run(context.Background(), kinetics.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.Run(context.Background(), kinetics.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		for i := range a {
			Expect(a[i].Concentrations).To(Equal(b[i].Concentrations))
		}
	})

	It("reports infinite DP when nothing reacts", func() {
		p := kinetics.DefaultParams()
		p.InitialConcentration = 0.4
		p.DiffusionFactor = 2.0
		runs, err := kinetics.NewSimulator().Run(context.Background(), p)
		Expect(err).NotTo(HaveOccurred())
		for _, r := range runs {
			Expect(math.IsInf(r.DegreeOfPolymerization, 1)).To(BeTrue())
		}
	})

	It("honours a restricted species list", func() {
		nylon, _ := kinetics.Lookup("Nylon")
		runs, err := kinetics.NewSimulator(nylon).Run(context.Background(), kinetics.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(1))
		Expect(runs[0].Species.Name).To(Equal("Nylon"))
	})

	It("agrees with a fine fixed-step RK4 solver", func() {
		ref, err := kinetics.NewSimulator().Run(context.Background(), kinetics.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		fixed, err := kinetics.NewSimulatorWith(integrators.NewFixedStep(integrators.NewRK4(), 0.001)).Run(context.Background(), kinetics.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		for i := range ref {
			for j := range ref[i].Concentrations {
				Expect(fixed[i].Concentrations[j]).To(BeNumerically("~", ref[i].Concentrations[j], 1e-3))
			}
		}
	})

	DescribeTable("rejects invalid conditions",
		func(mutate func(*kinetics.Params)) {
			p := kinetics.DefaultParams()
			mutate(&p)
			_, err := kinetics.NewSimulator().Run(context.Background(), p)
			Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
		},
		Entry("zero temperature", func(p *kinetics.Params) { p.Temperature = 0 }),
		Entry("negative temperature", func(p *kinetics.Params) { p.Temperature = -10 }),
		Entry("zero total time", func(p *kinetics.Params) { p.TotalTime = 0 }),
		Entry("zero gel point", func(p *kinetics.Params) { p.GelPoint = 0 }),
		Entry("NaN temperature", func(p *kinetics.Params) { p.Temperature = math.NaN() }),
		Entry("negative concentration", func(p *kinetics.Params) { p.InitialConcentration = -1 }),
	)
})

var _ = Describe("Params", func() {
	It("sets and reads parameters by name", func() {
		p := kinetics.DefaultParams()
		Expect(p.SetParam("gel_point", 0.7)).To(Succeed())
		Expect(p.GetParams()["gel_point"]).To(Equal(0.7))
		Expect(p.GetParams()).To(HaveLen(len(kinetics.ParamNames)))
		Expect(errors.Is(p.SetParam("pressure", 1), dynamo.ErrUnknownParam)).To(BeTrue())
	})
})
