package heat_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/climlab/internal/heat"
)

var _ = Describe("Solve", func() {
	Context("with zero-flux edges", func() {
		var res *heat.Result

		BeforeEach(func() {
			var err error
			res, err = heat.Solve(heat.Params{XStop: 1, TStop: 1, Dx: 0.05, Dt: 0.001, C2: 1})
			Expect(err).NotTo(HaveOccurred())
		})

		It("never creates heat in the interior", func() {
			_, n := res.Shape()
			prev := res.InteriorSum(0)
			for j := 1; j < n; j++ {
				cur := res.InteriorSum(j)
				Expect(cur).To(BeNumerically("<=", prev+1e-9), "time index %d", j)
				prev = cur
			}
		})

		It("flattens the profile toward its mean", func() {
			_, n := res.Shape()
			last := res.Column(n - 1)
			lo, hi := last[0], last[0]
			for _, v := range last {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
			Expect(hi - lo).To(BeNumerically("<", 0.05))
		})
	})

	Context("with a symmetric problem", func() {
		It("keeps the field symmetric about the midpoint", func() {
			res, err := heat.Solve(heat.Params{
				XStop: 1, TStop: 0.2, Dx: 0.1, Dt: 0.004, C2: 1,
				Lower: heat.Dirichlet(0), Upper: heat.Dirichlet(0),
			})
			Expect(err).NotTo(HaveOccurred())

			m, n := res.Shape()
			for j := 0; j < n; j++ {
				for i := 0; i < m/2; i++ {
					Expect(res.Field[i][j]).To(BeNumerically("~", res.Field[m-1-i][j], 1e-12))
				}
			}
		})
	})

	Context("with a stable timestep", func() {
		DescribeTable("obeys the maximum principle",
			func(dt float64) {
				res, err := heat.Solve(heat.Params{
					XStop: 1, TStop: 0.5, Dx: 0.1, Dt: dt, C2: 1,
					Lower: heat.Dirichlet(0), Upper: heat.Dirichlet(0),
				})
				Expect(err).NotTo(HaveOccurred())

				lo, hi := res.Extrema()
				Expect(lo).To(BeNumerically(">=", -1e-12))
				Expect(hi).To(BeNumerically("<=", 1+1e-12))
			},
			Entry("r = 0.1", 0.001),
			Entry("r = 0.25", 0.0025),
			Entry("r = 0.5", 0.005),
		)
	})

	Context("with an oversized timestep", func() {
		It("fails before computing anything", func() {
			res, err := heat.Solve(heat.Params{XStop: 1, TStop: 0.2, Dx: 0.2, Dt: 0.03, C2: 1})
			Expect(res).To(BeNil())
			Expect(err).To(MatchError(heat.ErrUnstable))

			var se *heat.StabilityError
			Expect(err).To(BeAssignableToTypeOf(se))
			Expect(err.Error()).To(ContainSubstring("dt=0.03"))
		})
	})
})
