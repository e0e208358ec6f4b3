package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/wonders/internal/config"
	"github.com/san-kum/wonders/internal/dynamo"
	"github.com/san-kum/wonders/internal/gui"
	"github.com/san-kum/wonders/internal/tui"
	"github.com/san-kum/wonders/internal/wonders"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	fps        int
	frames     int
	seed       int64
	outPath    string
	maxWidth   int
	params     []string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wonders: ")

	rootCmd := &cobra.Command{
		Use:          "wonders [wonder]",
		Short:        "a gallery of mathematical wonders",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runGUI,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "named parameter preset")
	pf.IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.StringArrayVar(&params, "param", nil, "parameter override name=value (repeatable)")

	guiCmd := &cobra.Command{
		Use:   "gui [wonder]",
		Short: "open the gallery in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [wonder]",
		Short: "open the gallery in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list wonders",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tTITLE")
			for _, m := range wonders.Catalog() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Category, m.Title)
			}
			w.Flush()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [wonder]",
		Short: "describe a wonder and its parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	renderCmd := &cobra.Command{
		Use:   "render [wonder]",
		Short: "render one frame to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderPNG,
	}
	renderCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to advance before the snapshot")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default <wonder>.png)")

	recordCmd := &cobra.Command{
		Use:   "record [wonder]",
		Short: "record an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordGIF,
	}
	recordCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to record")
	recordCmd.Flags().IntVar(&maxWidth, "max-width", 640, "downscale frames wider than this")
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default <wonder>.gif)")

	svgCmd := &cobra.Command{
		Use:   "svg [curve]",
		Short: "export the full hilbert, peano or koch curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default <curve>.svg)")

	benchCmd := &cobra.Command{
		Use:   "bench [wonder]",
		Short: "measure frame cost",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchWonder,
	}
	benchCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to run")

	presetsCmd := &cobra.Command{
		Use:   "presets [wonder]",
		Short: "list available presets for a wonder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := wonders.Lookup(args[0]); err != nil {
				return err
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for wonder: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %-10s %s\n", p, formatParams(config.Presets[args[0]][p]))
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			log.Printf("wrote %s", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, listCmd, infoCmd, renderCmd, recordCmd, svgCmd, benchCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

// loadConfig layers the config file, the positional wonder, changed flags,
// the preset and --param overrides, in that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Wonder = args[0]
	}
	if _, err := wonders.Lookup(cfg.Wonder); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("frames") != nil && flags.Changed("frames") {
		cfg.Frames = frames
	}

	if preset != "" {
		if err := cfg.ApplyPreset(cfg.Wonder, preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets(cfg.Wonder))
		}
	}
	for _, p := range params {
		name, v, err := config.ParseParam(p)
		if err != nil {
			return nil, err
		}
		cfg.SetParam(cfg.Wonder, name, v)
	}
	return cfg, cfg.Validate()
}

func showInfo(cmd *cobra.Command, args []string) error {
	m, err := wonders.Lookup(args[0])
	if err != nil {
		return err
	}
	v, err := wonders.New(m.ID, wonders.Options{Seed: 1})
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n\n%s\n\n  %s\n\n%s\n", m.Title, m.Category, m.Description, m.Formula, m.Philosophy)

	if c, ok := v.(dynamo.Configurable); ok {
		fmt.Println("\nparameters:")
		fmt.Printf("  %s\n", strings.ReplaceAll(formatParams(c.GetParams()), " ", "\n  "))
	}
	if presets := config.ListPresets(m.ID); len(presets) > 0 {
		fmt.Printf("\npresets: %s\n", strings.Join(presets, ", "))
	}
	return nil
}
