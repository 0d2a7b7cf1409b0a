package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/lmoreno/physlab/internal/config"
	"github.com/lmoreno/physlab/internal/export"
	"github.com/lmoreno/physlab/internal/metrics"
	"github.com/lmoreno/physlab/internal/physics"
	"github.com/lmoreno/physlab/internal/sim"
	"github.com/lmoreno/physlab/internal/store"
	"github.com/lmoreno/physlab/internal/viz"
)

var (
	dataDir    string
	fps        int
	duration   float64
	seed       int64
	numBodies  int
	configFile string
	preset     string

	// demo parameter flags; only flags the user actually set are
	// forwarded, so demo defaults survive
	length      float64
	angle       float64
	gravity     float64
	mass        float64
	friction    float64
	track       float64
	speed       float64
	height      float64
	velocity    float64
	accel       float64
	totalTime   float64
	amplitude   float64
	wavelength  float64
	frequency   float64
	coulomb     float64
	restitution float64
)

var paramFlags = []string{
	"length", "angle", "gravity", "mass", "friction", "track", "speed",
	"height", "velocity", "accel", "time", "amplitude", "wavelength",
	"frequency", "coulomb", "restitution",
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&length, "length", 1.0, "pendulum length / incline track length")
	cmd.Flags().Float64Var(&angle, "angle", 30.0, "angle, degrees")
	cmd.Flags().Float64Var(&gravity, "gravity", 9.81, "gravity (particles: coupling 0-1)")
	cmd.Flags().Float64Var(&mass, "mass", 5.0, "block mass, kg")
	cmd.Flags().Float64Var(&friction, "friction", 0.2, "kinetic friction coefficient")
	cmd.Flags().Float64Var(&track, "track", 20.0, "incline track length, m")
	cmd.Flags().Float64Var(&speed, "speed", 50.0, "launch speed, m/s")
	cmd.Flags().Float64Var(&height, "height", 0.0, "launch height, m")
	cmd.Flags().Float64Var(&velocity, "velocity", 10.0, "initial velocity, m/s")
	cmd.Flags().Float64Var(&accel, "accel", 2.0, "acceleration, m/s^2")
	cmd.Flags().Float64Var(&totalTime, "time", 10.0, "demo total time, s")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "wave amplitude, m")
	cmd.Flags().Float64Var(&wavelength, "wavelength", 2.0, "wavelength, m")
	cmd.Flags().Float64Var(&frequency, "frequency", 0.5, "frequency, Hz")
	cmd.Flags().Float64Var(&coulomb, "coulomb", 1.0, "electrostatic coupling (0-5)")
	cmd.Flags().Float64Var(&restitution, "restitution", 0.9, "wall bounce restitution")
	cmd.Flags().Int64Var(&seed, "seed", 0, "particles random seed")
	cmd.Flags().IntVar(&numBodies, "bodies", physics.DefaultBodies, "particles population")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset name")
}

func flagValue(name string) float64 {
	switch name {
	case "length":
		return length
	case "angle":
		return angle
	case "gravity":
		return gravity
	case "mass":
		return mass
	case "friction":
		return friction
	case "track":
		return track
	case "speed":
		return speed
	case "height":
		return height
	case "velocity":
		return velocity
	case "accel":
		return accel
	case "time":
		return totalTime
	case "amplitude":
		return amplitude
	case "wavelength":
		return wavelength
	case "frequency":
		return frequency
	case "coulomb":
		return coulomb
	case "restitution":
		return restitution
	}
	return 0
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "interactive physics demonstrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(fps)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "data directory")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "run a demo headless and record it",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	runCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "wall duration, s")
	addParamFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [demo]",
		Short: "run a demo with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addParamFlags(liveCmd)

	demosCmd := &cobra.Command{
		Use:   "demos",
		Short: "list demos",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range physics.Names() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list presets for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for demo: %s\n", args[0])
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun(store.ExportCSV),
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun(store.ExportJSON),
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a run's samples as an SVG chart on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}

	rootCmd.AddCommand(runCmd, liveCmd, demosCmd, presetsCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildSystem constructs and configures a demo from preset, config
// file and flags, in increasing precedence.
func buildSystem(cmd *cobra.Command, demo string) (sim.System, error) {
	sys, err := physics.New(demo)
	if err != nil {
		return nil, err
	}

	apply := func(params map[string]float64) {
		c, ok := sys.(sim.Configurable)
		if !ok {
			return
		}
		for name, v := range params {
			// unknown names are simply not this demo's business
			_ = c.SetParam(name, config.Clamp(demo, name, v))
		}
	}

	if preset != "" {
		cfg := config.GetPreset(demo, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(demo))
		}
		apply(cfg.ParamMap())
		if !cmd.Flags().Changed("duration") && cfg.Duration > 0 {
			duration = cfg.Duration
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		apply(cfg.ParamMap())
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
		if cfg.FPS != 0 && !cmd.Flags().Changed("fps") {
			fps = cfg.FPS
		}
	}

	flagged := make(map[string]float64)
	for _, name := range paramFlags {
		if cmd.Flags().Changed(name) {
			target := name
			if name == "track" {
				target = "length" // incline track length param
			}
			flagged[target] = flagValue(name)
		}
	}
	apply(flagged)

	if p, ok := sys.(*physics.Particles); ok {
		if cmd.Flags().Changed("bodies") {
			p.NumBodies = numBodies
		}
		if cmd.Flags().Changed("seed") || seed != 0 {
			p.Seed = seed
		}
	}

	sys.Reset()
	return sys, nil
}

func attachMetrics(r *sim.Runner) []sim.Metric {
	var ms []sim.Metric
	switch sys := r.System().(type) {
	case *physics.Pendulum:
		ms = append(ms, metrics.NewPendulumEnergy(sys))
	case *physics.Particles:
		ms = append(ms, metrics.NewMomentum(sys))
	}
	for _, m := range ms {
		r.AddObserver(m)
	}
	return ms
}

func runDemo(cmd *cobra.Command, args []string) error {
	demo := args[0]

	sys, err := buildSystem(cmd, demo)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	r := sim.NewRunner(sys)
	rec := store.NewRecorder(sys.(sim.Sampler))
	r.AddObserver(rec)
	ms := attachMetrics(r)

	fmt.Printf("running %s for %.1fs at %d fps...\n", demo, duration, fps)
	start := time.Now()

	// synthetic frame driver: fixed-interval timestamps through the
	// same step path the live view uses
	frameMs := 1000.0 / float64(fps)
	pending := false
	r.RequestNext = func() { pending = true }

	r.Start()
	ts := 0.0
	for pending && ts <= duration*1000.0 {
		pending = false
		r.Step(ts)
		ts += frameMs
	}

	elapsed := time.Since(start)

	meta := store.RunMetadata{
		Demo:     demo,
		Seed:     seed,
		FPS:      fps,
		Duration: r.Elapsed(),
		Params:   r.Params(),
		Metrics:  make(map[string]float64),
	}
	for _, m := range ms {
		meta.Metrics[m.Name()] = m.Value()
	}

	runID, err := st.Save(meta, rec)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%s)\n", elapsed, r.Status())
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", rec.Len())
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sys, err := buildSystem(cmd, args[0])
	if err != nil {
		return err
	}
	return viz.RunLive(args[0], sys, fps)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEMO\tTIME\tDURATION\tFPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%d\n",
			run.ID,
			run.Demo,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.FPS,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	times, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("demo: %s\n", meta.Demo)
	fmt.Printf("samples: %d over %.2fs\n\n", len(rows), times[len(times)-1])

	for col := 0; col < len(rows[0]); col++ {
		data := make([]float64, len(rows))
		for i := range rows {
			data[i] = rows[i][col]
		}

		caption := fmt.Sprintf("var %d vs time", col)
		if col < len(meta.Labels) {
			caption = meta.Labels[col] + " vs time"
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(export func(w io.Writer, meta store.RunMetadata, times []float64, rows [][]float64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st := store.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		times, rows, err := st.LoadSamples(args[0])
		if err != nil {
			return err
		}
		return export(os.Stdout, meta, times, rows)
	}
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, rows, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	svg := export.SeriesSVG(times, rows, meta.Labels, 960, 540)
	if svg == "" {
		return fmt.Errorf("run %s has too few samples to render", args[0])
	}
	_, err = os.Stdout.WriteString(svg)
	return err
}
