package animation

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/wonders"
)

type probe struct {
	steps  int
	clocks []wonders.Clock
	sizes  [][2]int
}

func (p *probe) ID() string { return "probe" }

func (p *probe) Step(c wonders.Clock) {
	p.steps++
	p.clocks = append(p.clocks, c)
}

func (p *probe) Draw(s canvas.Surface) {
	w, h := s.Size()
	p.sizes = append(p.sizes, [2]int{w, h})
}

var _ = Describe("Driver", func() {
	var (
		p   *probe
		rec *canvas.Recorder
		d   *Driver
	)

	BeforeEach(func() {
		p = &probe{}
		rec = canvas.NewRecorder(320, 200)
		d = New(p, rec)
	})

	It("starts idle and ignores ticks", func() {
		Expect(d.State()).To(Equal(Idle))
		Expect(d.Tick(16 * time.Millisecond)).To(BeFalse())
		Expect(p.steps).To(BeZero())
	})

	It("steps then draws every tick while running", func() {
		Expect(d.Start()).To(Succeed())
		Expect(d.State()).To(Equal(Running))
		for i := 0; i < 3; i++ {
			Expect(d.Tick(10 * time.Millisecond)).To(BeTrue())
		}
		Expect(p.steps).To(Equal(3))
		Expect(p.sizes).To(HaveLen(3))
		Expect(p.clocks[2].Elapsed).To(Equal(30 * time.Millisecond))
		Expect(p.clocks[2].Delta).To(Equal(10 * time.Millisecond))
		Expect(p.clocks[2].Frame).To(Equal(3))
	})

	It("treats a second Start as a no-op", func() {
		Expect(d.Start()).To(Succeed())
		d.Tick(time.Millisecond)
		Expect(d.Start()).To(Succeed())
		Expect(d.Clock().Frame).To(Equal(1))
	})

	It("runs nothing after Cancel and refuses to restart", func() {
		Expect(d.Start()).To(Succeed())
		d.Tick(time.Millisecond)
		d.Cancel()
		Expect(d.State()).To(Equal(Cancelled))
		Expect(d.Tick(time.Millisecond)).To(BeFalse())
		Expect(p.steps).To(Equal(1))
		Expect(d.Start()).To(MatchError(ErrCancelled))
	})

	It("stays idle without a surface", func() {
		bare := New(p, nil)
		Expect(bare.Start()).To(MatchError(ErrNoSurface))
		Expect(bare.State()).To(Equal(Idle))
		Expect(func() { bare.Tick(time.Millisecond) }).NotTo(Panic())
		Expect(p.steps).To(BeZero())
	})

	Context("resizing", func() {
		BeforeEach(func() {
			Expect(d.Start()).To(Succeed())
			d.Tick(time.Millisecond)
		})

		It("applies the last size before the next frame reads it", func() {
			d.Resize(800, 600)
			d.Resize(1024, 768)
			Expect(rec.W).To(Equal(320))
			d.Tick(time.Millisecond)
			Expect(p.sizes[len(p.sizes)-1]).To(Equal([2]int{1024, 768}))
		})

		It("keeps the wonder's state", func() {
			lz := wonders.NewLorenz()
			drv := New(lz, canvas.NewRecorder(100, 100))
			Expect(drv.Start()).To(Succeed())
			for i := 0; i < 10; i++ {
				drv.Tick(16 * time.Millisecond)
			}
			before := len(lz.Trail())
			drv.Resize(400, 300)
			drv.Tick(16 * time.Millisecond)
			Expect(lz.Trail()).To(HaveLen(before + 5))
		})
	})

	Context("frame accounting", func() {
		It("counts frames over budget", func() {
			fake := time.Unix(0, 0)
			costs := []time.Duration{5 * time.Millisecond, 20 * time.Millisecond, 17 * time.Millisecond}
			call := 0
			d.now = func() time.Time {
				// start and end alternate; each end adds the next cost
				if call%2 == 1 {
					fake = fake.Add(costs[call/2])
				}
				call++
				return fake
			}
			Expect(d.Start()).To(Succeed())
			for range costs {
				d.Tick(16 * time.Millisecond)
			}
			st := d.Stats()
			Expect(st.Frames).To(Equal(3))
			Expect(st.OverBudget).To(Equal(2))
			Expect(st.Max).To(Equal(20 * time.Millisecond))
			Expect(st.Last).To(Equal(17 * time.Millisecond))
			Expect(st.Mean).To(Equal(14 * time.Millisecond))
			Expect(st.Millis()).To(Equal([]float64{5, 20, 17}))
		})

		It("keeps only the most recent history", func() {
			Expect(d.Start()).To(Succeed())
			for i := 0; i < historySize+30; i++ {
				d.Tick(time.Millisecond)
			}
			Expect(d.Stats().Costs).To(HaveLen(historySize))
		})
	})
})
