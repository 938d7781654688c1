package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Coreymillia/psyscreen/internal/config"
	"github.com/Coreymillia/psyscreen/internal/display"
	"github.com/Coreymillia/psyscreen/internal/effects"
	"github.com/Coreymillia/psyscreen/internal/engine"
	"github.com/Coreymillia/psyscreen/internal/render"
	"github.com/Coreymillia/psyscreen/internal/stats"
	"github.com/Coreymillia/psyscreen/internal/viz"
)

var (
	configFile  string
	preset      string
	width       int
	height      int
	scale       int
	frameRate   int
	effectSecs  float64
	paletteMax  int
	scratch     int
	seed        int64
	effectNames []string
	// Headless run / record duration in seconds, 0 meaning forever.
	runSecs float64
	// Output path for record and the live view's G key.
	outPath string
	// Frames per effect for bench.
	benchFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "psyscreen",
		Short: "procedural effect rotation for small indexed displays",
		RunE:  runLive,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the rotation in the terminal",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the rotation headless and report step cost",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&runSecs, "time", 0, "seconds to run, 0 for forever")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "capture the rotation to an animated GIF",
		RunE:  runRecord,
	}
	recordCmd.Flags().Float64Var(&runSecs, "time", 30, "seconds to capture")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list effects with their palette and scratch footprint",
		RunE:  listEffects,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time every effect in isolation",
		RunE:  benchEffects,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 300, "frames per effect")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRESOLUTION\tFPS\tPALETTE\tSCRATCH")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d @%dx\t%d\t%d\t%d B\n",
					name, p.Width, p.Height, p.Scale, p.FrameRate, p.PaletteMax, p.ScratchBytes)
			}
			return w.Flush()
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, liveCmd, runCmd, recordCmd, benchCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "buffer width in pixels")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "buffer height in pixels")
		cmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "output scale factor")
		cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
		cmd.Flags().Float64Var(&effectSecs, "effect-time", config.DefaultEffectSeconds, "seconds per effect")
		cmd.Flags().IntVar(&paletteMax, "palette", config.DefaultPaletteMax, "palette entry cap")
		cmd.Flags().IntVar(&scratch, "scratch", config.DefaultScratchBytes, "scratch budget in bytes")
		cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
		cmd.Flags().StringSliceVar(&effectNames, "effects", nil, "effect roster, default all")
	}
	for _, cmd := range []*cobra.Command{rootCmd, liveCmd, recordCmd} {
		cmd.Flags().StringVar(&outPath, "out", "psyscreen.gif", "gif output path")
	}

	rootCmd.AddCommand(liveCmd, runCmd, recordCmd, listCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file and flags in that order, flags
// winning only when explicitly set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if cmd.Flags().Changed("effect-time") {
		cfg.EffectSeconds = effectSecs
	}
	if cmd.Flags().Changed("palette") {
		cfg.PaletteMax = paletteMax
	}
	if cmd.Flags().Changed("scratch") {
		cfg.ScratchBytes = scratch
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("effects") {
		cfg.Effects = effectNames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cyc, err := engine.FromConfig(cfg, display.Null{})
	if err != nil {
		return err
	}

	m := viz.NewModel(cyc, cfg.FrameInterval(), cfg.Scale, outPath)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cyc, err := engine.FromConfig(cfg, display.Null{})
	if err != nil {
		return err
	}
	frameTime := stats.NewFrameTime()
	load := stats.NewEffectLoad()
	cyc.AddMetric(frameTime)
	cyc.AddMetric(load)

	ctx := context.Background()
	if runSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(runSecs*float64(time.Second)))
		defer cancel()
	}

	if err := cyc.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	fmt.Printf("rotations: %d\n", cyc.Rotations())
	fmt.Printf("step mean: %.3f ms, max %.3f ms\n\n", frameTime.Value(), frameTime.Max())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EFFECT\tMEAN STEP")
	for _, name := range load.Effects() {
		fmt.Fprintf(w, "%s\t%.3f ms\n", name, load.Mean(name))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if hist := frameTime.History(); len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("step time (ms)")))
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// GIF delay is in hundredths of a second.
	delay := int(cfg.FrameInterval() / (10 * time.Millisecond))
	rec := display.NewGIF(cfg.Scale, delay)

	cyc, err := engine.FromConfig(cfg, rec)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(runSecs*float64(time.Second)))
	defer cancel()

	if err := cyc.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if err := rec.Save(outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", rec.Frames(), outPath)
	return nil
}

func listEffects(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EFFECT\tPALETTE\tSCRATCH")
	for _, d := range effects.DefaultDescriptors() {
		fmt.Fprintf(w, "%s\t%d\t%d B\n", d.Name, d.PaletteSize, d.ScratchBytes)
	}
	return w.Flush()
}

func benchEffects(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	descs, err := effects.Roster(cfg.Effects, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d effects, %d frames each\n\n", len(descs), benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EFFECT\tFRAMES\tTOTAL\tMEAN STEP\tFPS")

	means := make([]float64, 0, len(descs))
	for _, d := range descs {
		fb := render.NewFrameBuffer(cfg.Width, cfg.Height)
		pal := render.NewPalette()
		arena := render.NewArena(cfg.ScratchBytes)

		eff := d.New()
		if err := eff.Init(fb, pal, arena, cfg.Seed); err != nil {
			return fmt.Errorf("%s init: %w", d.Name, err)
		}
		fb.Limit(d.PaletteSize)
		pal.Seal()

		start := time.Now()
		for frame := 0; frame < benchFrames; frame++ {
			eff.Step(fb, pal, frame)
		}
		elapsed := time.Since(start)
		eff.Teardown()
		pal.Unseal()

		meanMs := float64(elapsed) / float64(benchFrames) / float64(time.Millisecond)
		means = append(means, meanMs)
		fmt.Fprintf(w, "%s\t%d\t%v\t%.3f ms\t%.0f\n",
			d.Name, benchFrames, elapsed.Round(time.Microsecond), meanMs,
			float64(benchFrames)/elapsed.Seconds())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(means) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(means, asciigraph.Height(6), asciigraph.Width(50), asciigraph.Caption("mean step (ms) per effect, roster order")))
	}
	return nil
}
