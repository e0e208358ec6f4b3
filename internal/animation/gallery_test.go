package animation

import (
	"errors"
	"io"
	"log"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/dynamo"
	"github.com/san-kum/wonders/internal/wonders"
)

var _ = Describe("Gallery", func() {
	var (
		rec    *canvas.Recorder
		g      *Gallery
		params map[string]map[string]float64
	)

	BeforeEach(func() {
		rec = canvas.NewRecorder(320, 200)
		params = map[string]map[string]float64{}
		g = NewGallery(rec, func(id string) wonders.Options {
			return wonders.Options{Seed: 7, Params: params[id]}
		})
		g.Log = log.New(io.Discard, "", 0)
	})

	It("does nothing before a wonder is mounted", func() {
		Expect(g.Tick(16 * time.Millisecond)).To(BeFalse())
		Expect(g.Visualizer()).To(BeNil())
		g.Resize(100, 50)
		w, h := rec.Size()
		Expect([]int{w, h}).To(Equal([]int{100, 50}))
	})

	It("mounts a running wonder", func() {
		Expect(g.Mount("koch")).To(Succeed())
		Expect(g.ID()).To(Equal("koch"))
		Expect(g.Driver().State()).To(Equal(Running))
		Expect(g.Tick(16 * time.Millisecond)).To(BeTrue())
		Expect(rec.Clears).To(Equal(1))
	})

	It("cancels the previous driver when switching", func() {
		Expect(g.Mount("lorenz")).To(Succeed())
		first := g.Driver()
		Expect(g.Cycle(1)).To(Succeed())
		Expect(g.ID()).To(Equal("poincare"))
		Expect(first.State()).To(Equal(Cancelled))
		Expect(g.Cycle(-2)).To(Succeed())
		Expect(g.ID()).To(Equal("koch"))
	})

	It("remounts fresh state on reset", func() {
		Expect(g.Mount("hilbert")).To(Succeed())
		for i := 0; i < 10; i++ {
			g.Tick(16 * time.Millisecond)
		}
		Expect(g.Visualizer().(*wonders.Hilbert).Progress()).To(BeNumerically(">", 0))
		Expect(g.Reset()).To(Succeed())
		Expect(g.Visualizer().(*wonders.Hilbert).Progress()).To(BeZero())
		Expect(g.Driver().Clock().Frame).To(BeZero())
	})

	It("applies per-wonder parameters on mount", func() {
		params["hilbert"] = map[string]float64{"order": 3}
		Expect(g.Mount("hilbert")).To(Succeed())
		Expect(g.Visualizer().(*wonders.Hilbert).Total()).To(Equal(64))
	})

	It("keeps the current wonder when a mount fails", func() {
		Expect(g.Mount("koch")).To(Succeed())
		err := g.Mount("nope")
		Expect(errors.Is(err, wonders.ErrUnknownWonder)).To(BeTrue())
		Expect(g.ID()).To(Equal("koch"))
		Expect(g.Driver().State()).To(Equal(Running))

		params["lorenz"] = map[string]float64{"rho": -1}
		Expect(errors.Is(g.Mount("lorenz"), dynamo.ErrParameterBounds)).To(BeTrue())
		Expect(g.ID()).To(Equal("koch"))
	})

	It("applies resizes through the driver", func() {
		Expect(g.Mount("koch")).To(Succeed())
		g.Resize(640, 480)
		w, _ := rec.Size()
		Expect(w).To(Equal(320))
		g.Tick(16 * time.Millisecond)
		w, h := rec.Size()
		Expect([]int{w, h}).To(Equal([]int{640, 480}))
	})

	It("cancels on close", func() {
		Expect(g.Mount("koch")).To(Succeed())
		g.Close()
		Expect(g.Driver().State()).To(Equal(Cancelled))
		Expect(g.Tick(16 * time.Millisecond)).To(BeFalse())
	})
})
