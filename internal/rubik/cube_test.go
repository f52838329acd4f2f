package rubik

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sortedPositions(c *Cube) [][3]int {
	out := make([][3]int, len(c.Positions))
	copy(out, c.Positions[:])
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return out
}

func matNear(a, b mgl32.Mat4) bool {
	for i := range a {
		if d := a[i] - b[i]; d > 1e-5 || d < -1e-5 {
			return false
		}
	}
	return true
}

var _ = Describe("Cube", func() {
	var cube *Cube

	BeforeEach(func() {
		cube = NewCube(DefaultSpacing)
	})

	Describe("layout", func() {
		It("generates cubies in x, y, z loop order", func() {
			Expect(cube.Positions[0]).To(Equal([3]int{-1, -1, -1}))
			Expect(cube.Positions[1]).To(Equal([3]int{-1, -1, 0}))
			Expect(cube.Positions[3]).To(Equal([3]int{-1, 0, -1}))
			Expect(cube.Positions[9]).To(Equal([3]int{0, -1, -1}))
			Expect(cube.Positions[26]).To(Equal([3]int{1, 1, 1}))
		})

		It("translates each cubie by its position times the spacing", func() {
			tr := cube.Transforms[26].Col(3)
			Expect(tr.X()).To(BeNumerically("~", 1.1, 1e-6))
			Expect(tr.Y()).To(BeNumerically("~", 1.1, 1e-6))
			Expect(tr.Z()).To(BeNumerically("~", 1.1, 1e-6))
		})

		It("starts solved and at home", func() {
			Expect(cube.IsSolved()).To(BeTrue())
			Expect(cube.AtHome()).To(BeTrue())
			Expect(cube.Stickers()).To(HaveLen(54))
		})
	})

	Describe("FaceColors", func() {
		It("colours only the outer faces", func() {
			Expect(FaceColors([3]int{1, 1, 1})).To(Equal([6]Color{Red, Green, Black, Black, Black, White}))
			Expect(FaceColors([3]int{-1, -1, -1})).To(Equal([6]Color{Black, Black, Blue, Yellow, Orange, Black}))
			Expect(FaceColors([3]int{0, 0, 0})).To(Equal([6]Color{}))
		})
	})

	Describe("Apply", func() {
		It("preserves the multiset of logical positions", func() {
			before := sortedPositions(cube)
			for _, s := range Slices {
				Expect(cube.Apply(Move{Slice: s, Direction: Forward})).To(Succeed())
				Expect(sortedPositions(cube)).To(Equal(before))
			}
		})

		It("keeps every position inside the 3x3x3 grid", func() {
			Expect(cube.ApplyAll([]Move{{Front, Forward}, {RightVertical, Backward}, {Middle, Forward}})).To(Succeed())
			for _, p := range cube.Positions {
				for _, v := range p {
					Expect(v).To(BeNumerically(">=", -1))
					Expect(v).To(BeNumerically("<=", 1))
				}
			}
		})

		It("moves only the cubies of the turning slice", func() {
			Expect(cube.Apply(Move{Slice: TopHorizontal, Direction: Forward})).To(Succeed())
			for i, p := range cube.Positions {
				if cube.Home[i][1] != 1 {
					Expect(p).To(Equal(cube.Home[i]))
				}
			}
		})

		DescribeTable("returns home after four quarter turns",
			func(s Slice, d Direction) {
				for i := 0; i < 4; i++ {
					Expect(cube.Apply(Move{Slice: s, Direction: d})).To(Succeed())
				}
				Expect(cube.AtHome()).To(BeTrue())
			},
			Entry("right", RightVertical, Forward),
			Entry("middle vertical", MiddleVertical, Backward),
			Entry("top", TopHorizontal, Forward),
			Entry("bottom", BottomHorizontal, Backward),
			Entry("front", Front, Forward),
			Entry("back", Back, Backward),
		)

		It("is undone by the inverse move", func() {
			seq := []Move{{RightVertical, Forward}, {TopHorizontal, Backward}, {Front, Forward}, {Middle, Backward}}
			Expect(cube.ApplyAll(seq)).To(Succeed())
			Expect(cube.IsSolved()).To(BeFalse())
			for i := len(seq) - 1; i >= 0; i-- {
				Expect(cube.Apply(seq[i].Inverse())).To(Succeed())
			}
			Expect(cube.AtHome()).To(BeTrue())
		})

		It("rejects unknown slices", func() {
			Expect(cube.Apply(Move{Slice: "DIAGONAL"})).NotTo(Succeed())
		})
	})

	Describe("IsSolved", func() {
		It("accepts a whole-cube rotation", func() {
			for _, s := range []Slice{RightVertical, MiddleVertical, LeftVertical} {
				Expect(cube.Apply(Move{Slice: s, Direction: Forward})).To(Succeed())
			}
			Expect(cube.AtHome()).To(BeFalse())
			Expect(cube.IsSolved()).To(BeTrue())
		})

		It("rejects a single face turn", func() {
			Expect(cube.Apply(Move{Slice: Back, Direction: Forward})).To(Succeed())
			Expect(cube.IsSolved()).To(BeFalse())
		})
	})

	Describe("Rotate", func() {
		It("matches the snapped transform after partial steps", func() {
			steps := 10
			angle := float32(DefaultTargetAngle) / float32(steps)
			for i := 0; i < steps-1; i++ {
				Expect(cube.Rotate(Front, Forward, angle, false)).To(Succeed())
			}
			before := cube.Transforms[26]
			Expect(cube.Rotate(Front, Forward, angle, true)).To(Succeed())

			full := mgl32.HomogRotate3DZ(float32(DefaultTargetAngle)).Mul4(NewCube(DefaultSpacing).Transforms[26])
			Expect(matNear(cube.Transforms[26], full)).To(BeTrue())
			Expect(matNear(before, full)).To(BeFalse())
		})

		It("moves the front top-right corner to the top-left under FRONT forward", func() {
			Expect(cube.Rotate(Front, Forward, float32(DefaultTargetAngle), true)).To(Succeed())
			Expect(cube.Positions[26]).To(Equal([3]int{-1, 1, 1}))
		})
	})
})
