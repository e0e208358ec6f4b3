package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wonders/internal/animation"
	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/config"
	"github.com/san-kum/wonders/internal/export"
	"github.com/san-kum/wonders/internal/wonders"
	"github.com/spf13/cobra"
)

// runFrames drives the configured wonder offscreen for n frames at a fixed
// step and hands every drawn frame to each.
func runFrames(cfg *config.Config, n int, each func(frame int, img *image.RGBA)) (*animation.Driver, error) {
	frame := canvas.NewRaster(cfg.Width, cfg.Height)
	g := animation.NewGallery(frame, func(id string) wonders.Options {
		return wonders.Options{Seed: cfg.Seed, Params: cfg.ParamsFor(id)}
	})
	g.Log = log.New(os.Stderr, log.Prefix(), 0)
	if err := g.Mount(cfg.Wonder); err != nil {
		return nil, err
	}
	defer g.Close()

	dt := time.Second / time.Duration(cfg.FPS)
	for i := 0; i < n; i++ {
		if g.Tick(dt) && each != nil {
			each(i, frame.Image())
		}
	}
	return g.Driver(), nil
}

func output(cfg *config.Config, ext string) string {
	if outPath != "" {
		return outPath
	}
	return cfg.Wonder + ext
}

func renderPNG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	n := max(1, cfg.Frames)
	var last *image.RGBA
	if _, err := runFrames(cfg, n, func(_ int, img *image.RGBA) { last = img }); err != nil {
		return err
	}
	path := output(cfg, ".png")
	if err := export.SavePNG(path, last); err != nil {
		return err
	}
	log.Printf("render: wrote frame %d of %s to %s", n, cfg.Wonder, path)
	return nil
}

func recordGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	anim := export.NewAnimation(maxWidth, cfg.FPS)
	if _, err := runFrames(cfg, cfg.Frames, func(_ int, img *image.RGBA) { anim.Add(img) }); err != nil {
		return err
	}
	path := output(cfg, ".gif")
	if err := anim.Save(path); err != nil {
		return err
	}
	log.Printf("record: wrote %d frames to %s", anim.Len(), path)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	v, err := wonders.New(cfg.Wonder, wonders.Options{Seed: cfg.Seed, Params: cfg.ParamsFor(cfg.Wonder)})
	if err != nil {
		return err
	}
	tr, ok := v.(wonders.Tracer)
	if !ok {
		return fmt.Errorf("%s is not a curve; try hilbert, peano or koch", cfg.Wonder)
	}
	m, _ := wonders.Lookup(cfg.Wonder)
	pts := tr.Trace()
	path := output(cfg, ".svg")
	if err := os.WriteFile(path, []byte(export.PolylineSVG(pts, cfg.Width, cfg.Height, m.Color)), 0644); err != nil {
		return err
	}
	log.Printf("svg: wrote %d points to %s", len(pts), path)
	return nil
}

func benchWonder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	start := time.Now()
	d, err := runFrames(cfg, cfg.Frames, nil)
	if err != nil {
		return err
	}
	wall := time.Since(start)
	st := d.Stats()

	fmt.Printf("%s: %d frames at %dx%d in %v\n", cfg.Wonder, st.Frames, cfg.Width, cfg.Height, wall.Round(time.Millisecond))
	fmt.Printf("  mean %v  max %v  over budget %d/%d (%v)\n",
		st.Mean.Round(time.Microsecond), st.Max.Round(time.Microsecond), st.OverBudget, st.Frames, animation.FrameBudget)
	if ms := st.Millis(); len(ms) > 1 {
		fmt.Println(asciigraph.Plot(ms,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("frame cost (ms), last "+fmt.Sprint(len(ms))+" frames"),
		))
	}
	return nil
}

func formatParams(p map[string]float64) string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, p[name])
	}
	return strings.Join(parts, " ")
}
