package rubik

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gfxlab/internal/lab"
)

func runUntilIdle(a *Animator, c *Cube, dt float32, maxFrames int) int {
	frames := 0
	for a.Busy() && frames < maxFrames {
		Expect(a.Advance(c, dt)).To(Succeed())
		frames++
	}
	return frames
}

var _ = Describe("Animator", func() {
	var (
		cube *Cube
		anim *Animator
	)

	BeforeEach(func() {
		cube = NewCube(DefaultSpacing)
		anim = NewAnimator(rand.New(rand.NewSource(7)))
	})

	It("does nothing while idle", func() {
		before := cube.Transforms
		Expect(anim.Advance(cube, 0.5)).To(Succeed())
		Expect(cube.Transforms).To(Equal(before))
	})

	It("makes no progress on a zero or negative step", func() {
		Expect(anim.Start(Move{Slice: Front, Direction: Forward})).To(Succeed())
		Expect(anim.Advance(cube, 0)).To(Succeed())
		Expect(anim.Advance(cube, -1)).To(Succeed())
		Expect(anim.Angle()).To(BeZero())
		Expect(anim.Animating()).To(BeTrue())
	})

	It("accumulates the angle until the target", func() {
		Expect(anim.Start(Move{Slice: RightVertical, Direction: Forward})).To(Succeed())
		Expect(anim.Advance(cube, 0.25)).To(Succeed())
		Expect(anim.Angle()).To(BeNumerically("~", DefaultRotationSpeed*0.25, 1e-6))
		Expect(cube.Positions[26]).To(Equal([3]int{1, 1, 1}))
	})

	It("clamps a large step to exactly one quarter turn", func() {
		var turns []Move
		anim.OnTurn = func(m Move) { turns = append(turns, m) }

		Expect(anim.Start(Move{Slice: RightVertical, Direction: Forward})).To(Succeed())
		Expect(anim.Advance(cube, 100)).To(Succeed())

		Expect(anim.Animating()).To(BeFalse())
		Expect(anim.Angle()).To(BeZero())
		Expect(turns).To(Equal([]Move{{RightVertical, Forward}}))

		expected := NewCube(DefaultSpacing)
		Expect(expected.Apply(Move{Slice: RightVertical, Direction: Forward})).To(Succeed())
		Expect(cube.Positions).To(Equal(expected.Positions))
	})

	It("rejects a second move while turning", func() {
		Expect(anim.Start(Move{Slice: Front, Direction: Forward})).To(Succeed())
		Expect(anim.Start(Move{Slice: Back, Direction: Forward})).To(MatchError(lab.ErrBusy))
		Expect(anim.Scramble(0)).To(MatchError(lab.ErrBusy))
	})

	It("rejects unknown slices", func() {
		Expect(anim.Start(Move{Slice: "SIDEWAYS"})).To(MatchError(lab.ErrUnknownSlice))
	})

	Describe("Scramble", func() {
		It("runs the requested number of moves at the random speed", func() {
			count := 0
			anim.OnTurn = func(Move) { count++ }
			anim.PulseFrames = 0

			Expect(anim.Scramble(30)).To(Succeed())
			Expect(anim.Randomizing()).To(BeTrue())

			Expect(anim.Advance(cube, 0.1)).To(Succeed())
			Expect(anim.Angle()).To(BeNumerically("~", DefaultRandomRotationSpeed*0.1, 1e-5))

			runUntilIdle(anim, cube, 1.0/60, 100000)
			Expect(count).To(Equal(30))
			Expect(anim.Randomizing()).To(BeFalse())
			Expect(anim.Scrambled()).To(Equal(30))
		})

		It("is reproducible for a fixed seed", func() {
			record := func(seed int64) []Move {
				a := NewAnimator(rand.New(rand.NewSource(seed)))
				a.PulseFrames = 0
				var moves []Move
				a.OnTurn = func(m Move) { moves = append(moves, m) }
				c := NewCube(DefaultSpacing)
				Expect(a.Scramble(12)).To(Succeed())
				runUntilIdle(a, c, 1, 1000)
				return moves
			}
			Expect(record(42)).To(Equal(record(42)))
		})
	})

	Describe("pulse", func() {
		It("starts when a turn leaves the cube solved and restores transforms after", func() {
			solved := false
			anim.OnSolved = func() { solved = true }
			anim.PulseFrames = 5

			Expect(cube.Apply(Move{Slice: Front, Direction: Forward})).To(Succeed())
			Expect(anim.Start(Move{Slice: Front, Direction: Backward})).To(Succeed())
			Expect(anim.Advance(cube, 10)).To(Succeed())

			Expect(solved).To(BeTrue())
			Expect(anim.Pulsing()).To(BeTrue())
			settled := cube.Transforms

			for i := 0; i < 5; i++ {
				Expect(anim.Advance(cube, 0.1)).To(Succeed())
			}
			Expect(anim.PulseScale()).NotTo(Equal(float32(1)))
			Expect(cube.Transforms).NotTo(Equal(settled))

			Expect(anim.Advance(cube, 0.1)).To(Succeed())
			Expect(anim.Pulsing()).To(BeFalse())
			Expect(cube.Transforms).To(Equal(settled))
		})

		It("SkipPulse restores the settled transforms and frees the animator", func() {
			Expect(cube.Apply(Move{Slice: Front, Direction: Forward})).To(Succeed())
			Expect(anim.Start(Move{Slice: Front, Direction: Backward})).To(Succeed())
			Expect(anim.Advance(cube, 10)).To(Succeed())
			settled := cube.Transforms
			Expect(anim.Advance(cube, 0.1)).To(Succeed())

			anim.SkipPulse(cube)
			Expect(anim.Pulsing()).To(BeFalse())
			Expect(anim.Busy()).To(BeFalse())
			Expect(anim.PulseScale()).To(Equal(float32(1)))
			Expect(cube.Transforms).To(Equal(settled))
		})

		It("SkipPulse keeps a scramble that passed through solved going", func() {
			for seed := int64(1); seed <= 300; seed++ {
				c := NewCube(DefaultSpacing)
				a := NewAnimator(rand.New(rand.NewSource(seed)))
				turns := 0
				a.OnTurn = func(Move) { turns++ }

				Expect(a.Scramble(12)).To(Succeed())
				for frames := 0; a.Busy() && frames < 10000; frames++ {
					Expect(a.Advance(c, 1.0/60)).To(Succeed())
					a.SkipPulse(c)
				}
				Expect(turns).To(Equal(12), "seed %d", seed)
			}
		})

		It("blocks new moves while pulsing", func() {
			Expect(cube.Apply(Move{Slice: Back, Direction: Backward})).To(Succeed())
			Expect(anim.Start(Move{Slice: Back, Direction: Forward})).To(Succeed())
			Expect(anim.Advance(cube, 10)).To(Succeed())
			Expect(anim.Start(Move{Slice: Front, Direction: Forward})).To(MatchError(lab.ErrBusy))
		})
	})

	It("Stop discards a partial turn", func() {
		Expect(anim.Start(Move{Slice: Middle, Direction: Forward})).To(Succeed())
		Expect(anim.Advance(cube, 0.3)).To(Succeed())
		anim.Stop(cube)
		Expect(anim.Busy()).To(BeFalse())
		Expect(cube.Transforms).To(Equal(NewCube(DefaultSpacing).Transforms))
	})
})
