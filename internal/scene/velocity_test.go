package scene_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fluidscene/internal/scene"
)

var _ = Describe("Velocity", func() {
	Describe("ModeFromID", func() {
		It("accepts ids 1 through 5", func() {
			for id := 1; id <= 5; id++ {
				m, err := scene.ModeFromID(id)
				Expect(err).NotTo(HaveOccurred())
				Expect(int(m)).To(Equal(id))
			}
		})

		It("rejects ids outside the enumeration", func() {
			for _, id := range []int{0, 6, -1} {
				_, err := scene.ModeFromID(id)
				Expect(err).To(MatchError(scene.ErrInvalidAnimation))
			}
		})
	})

	Context("normal mode", func() {
		It("keeps the direction equal to the strength", func() {
			v := scene.NewVelocity(0, 0, 3, 4, scene.Normal, 0)
			for i := 0; i < 50; i++ {
				dy, dx := v.Direction()
				Expect(dy).To(Equal(4.0))
				Expect(dx).To(Equal(3.0))
				v.Step()
			}
			Expect(v.PosX).To(Equal(0))
			Expect(v.PosY).To(Equal(0))
		})

		It("drops the animation parameter", func() {
			v := scene.NewVelocity(1, 2, 3, 4, scene.Normal, 9)
			Expect(v.Param()).To(Equal(0))
		})

		It("coerces unknown modes", func() {
			v := scene.NewVelocity(1, 2, 3, 4, scene.Mode(42), 9)
			Expect(v.Mode()).To(Equal(scene.Normal))
			Expect(v.Param()).To(Equal(0))
			Expect(v.Motion()).To(Equal(scene.Static{}))
		})
	})

	Context("rotation", func() {
		It("adds the angle for clockwise and subtracts it for counter-clockwise", func() {
			cw := scene.NewVelocity(0, 0, 5, 3, scene.RotateCW, 30)
			ccw := scene.NewVelocity(0, 0, 5, 3, scene.RotateCCW, 30)
			cw.Step()
			ccw.Step()

			dy, dx := cw.Direction()
			Expect(dx).To(BeNumerically("~", 5*math.Cos(math.Pi/6), 1e-9))
			Expect(dy).To(BeNumerically("~", 1.5, 1e-9))

			dy, dx = ccw.Direction()
			Expect(dx).To(BeNumerically("~", 5*math.Cos(math.Pi/6), 1e-9))
			Expect(dy).To(BeNumerically("~", -1.5, 1e-9))
		})

		It("stays within the strength bounds and closes after a full turn", func() {
			v := scene.NewVelocity(4, 4, 5, 3, scene.RotateCW, 30)
			for i := 0; i < 12; i++ {
				v.Step()
				dy, dx := v.Direction()
				Expect(math.Abs(dx)).To(BeNumerically("<=", 5+1e-9))
				Expect(math.Abs(dy)).To(BeNumerically("<=", 3+1e-9))
			}
			Expect(v.Phase()).To(BeNumerically("~", 2*math.Pi, 1e-9))
			dy, dx := v.Direction()
			Expect(dx).To(BeNumerically("~", 5, 1e-9))
			Expect(dy).To(BeNumerically("~", 0, 1e-9))
			Expect(v.PosX).To(Equal(4))
		})

		It("traces a circle for equal strengths", func() {
			v := scene.NewVelocity(0, 0, 2, 2, scene.RotateCCW, 45)
			for i := 0; i < 8; i++ {
				v.Step()
				dy, dx := v.Direction()
				Expect(math.Hypot(dx, dy)).To(BeNumerically("~", 2, 1e-9))
			}
		})
	})

	Context("oscillation", func() {
		It("moves along x as a triangle wave around the origin", func() {
			v := scene.NewVelocity(10, 7, 2, 0, scene.ReturnX, 3)
			var xs []int
			for i := 0; i < 13; i++ {
				v.Step()
				xs = append(xs, v.PosX)
			}
			Expect(xs).To(Equal([]int{11, 12, 13, 12, 11, 10, 9, 8, 7, 8, 9, 10, 11}))
			Expect(v.PosY).To(Equal(7))
		})

		It("never exceeds the amplitude", func() {
			v := scene.NewVelocity(0, 0, 1, 1, scene.ReturnY, 4)
			prev := 0.0
			for i := 0; i < 64; i++ {
				v.Step()
				Expect(math.Abs(v.Phase())).To(BeNumerically("<=", 4))
				Expect(math.Abs(v.Phase() - prev)).To(Equal(1.0))
				Expect(v.PosY).To(Equal(int(v.Phase())))
				prev = v.Phase()
			}
			Expect(v.PosX).To(Equal(0))
		})

		It("does not change the injected direction", func() {
			v := scene.NewVelocity(5, 5, 2, -1, scene.ReturnX, 2)
			for i := 0; i < 5; i++ {
				v.Step()
			}
			dy, dx := v.Direction()
			Expect(dy).To(Equal(-1.0))
			Expect(dx).To(Equal(2.0))
		})
	})

	It("resets position and phase", func() {
		v := scene.NewVelocity(10, 3, 2, 0, scene.ReturnX, 3)
		for i := 0; i < 4; i++ {
			v.Step()
		}
		Expect(v.PosX).NotTo(Equal(10))
		v.Reset()
		Expect(v.PosX).To(Equal(10))
		Expect(v.Phase()).To(Equal(0.0))
		v.Step()
		Expect(v.PosX).To(Equal(11))
	})

	It("serializes from its origin", func() {
		v := scene.NewVelocity(10, 3, 2, 0, scene.ReturnX, 3)
		v.Step()
		Expect(v.String()).To(Equal("10, 3, 2, 0, 4, 3"))
		Expect(scene.NewVelocity(5, 30, 2, 0, scene.Normal, 0).String()).To(Equal("5, 30, 2, 0, 1"))
	})
})
