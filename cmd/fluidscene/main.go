package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/fluidscene/internal/compositor"
	"github.com/san-kum/fluidscene/internal/config"
	"github.com/san-kum/fluidscene/internal/field"
	"github.com/san-kum/fluidscene/internal/metrics"
	"github.com/san-kum/fluidscene/internal/palette"
	"github.com/san-kum/fluidscene/internal/render"
	"github.com/san-kum/fluidscene/internal/scene"
	"github.com/san-kum/fluidscene/internal/sim"
	"github.com/san-kum/fluidscene/internal/storage"
)

var (
	configFile string
	sceneDir   string
	dataDir    string
	debug      bool
	strict     bool

	ticks    int
	dt       float64
	policy   string
	rows     int
	cols     int
	fps      int
	save     bool
	jsonOut  bool
	noPrompt bool
	force    bool
)

// main registers the commands and flags and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fluidscene",
		Short:        "replay authored scenes on a 2D flow field",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "run config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&sceneDir, "scenes", config.DefaultSceneDir, "scene directory")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "run data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug log to logs/")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "match section headers exactly")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene headless and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE:  runScene,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "store the run under the data directory")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run as JSON")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "replay a scene with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "use the first preset instead of asking for unknown palettes")

	showCmd := &cobra.Command{
		Use:   "show [scene]",
		Short: "list the assets of a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  showScene,
	}

	makeCmd := &cobra.Command{
		Use:   "make [preset] [name]",
		Short: "write a built-in scene to the scene directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  makeScene,
	}
	makeCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing scene")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("built-in scenes:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list colormap and quiver color names",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("colormaps (%d):\n  %s\n", len(palette.Colormaps), strings.Join(palette.Colormaps, " "))
			fmt.Printf("quiver colors:\n  %s\n", strings.Join(palette.QuiverColors, " "))
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	rootCmd.AddCommand(runCmd, liveCmd, showCmd, makeCmd, presetsCmd, palettesCmd, listCmd, plotCmd)

	cobra.OnInitialize(func() { setupLogging("logs", debug) })

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().StringVar(&policy, "policy", "additive", "density policy (additive|overwrite)")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "grid columns")
}

// loadConfig reads the config file if given and applies flags that were set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("scenes") || configFile == "" {
		cfg.SceneDir = sceneDir
	}
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("strict") {
		cfg.StrictHeaders = strict
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("policy") {
		cfg.Policy = policy
	}
	if flags.Changed("rows") {
		cfg.Grid.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = cols
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	if cfg.Debug && !debug {
		setupLogging("logs", true)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadScene reads a scene by name. A missing file ends the process.
func loadScene(cfg *config.Config, name string) (*scene.Scene, error) {
	var opts []scene.ParseOption
	if cfg.StrictHeaders {
		opts = append(opts, scene.WithStrictHeaders())
	}
	s, err := scene.Load(cfg.SceneDir, name, opts...)
	if errors.Is(err, scene.ErrSceneNotFound) {
		fmt.Fprintf(os.Stderr, "scene %q not found in %s\n", name, cfg.SceneDir)
		os.Exit(1)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	log.Printf("loaded scene %s: %d densities, %d velocities, %d solids",
		name, len(s.Densities), len(s.Velocities), len(s.Solids))
	return s, nil
}

func resolvePalette(s *scene.Scene, chooser palette.Chooser) (colormap, quiver string, err error) {
	colormap, err = palette.NewColormapResolver(chooser).Resolve(s.Colormap)
	if err != nil {
		return "", "", err
	}
	quiver, err = palette.NewQuiverResolver(chooser).Resolve(s.Quiver)
	if err != nil {
		return "", "", err
	}
	return colormap, quiver, nil
}

func newRunner(cfg *config.Config) (*sim.Runner, error) {
	p, err := cfg.CompositorPolicy()
	if err != nil {
		return nil, err
	}
	solver := field.NewSolver(cfg.Solver.Advection, cfg.Solver.Decay, cfg.Solver.Damping)
	return sim.New(compositor.New(p), solver), nil
}

func runScene(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadScene(cfg, name)
	if err != nil {
		return err
	}
	colormap, quiver, err := resolvePalette(s, palette.First{})
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}
	runner.AddMetric(metrics.NewMass())
	runner.AddMetric(metrics.NewPeakSpeed())
	runner.AddMetric(metrics.NewCoverage())
	runner.AddMetric(metrics.NewBounded(float64(maxAmount(s))))

	grid := field.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	result, err := runner.Run(context.Background(), s, grid, sim.Config{Ticks: cfg.Ticks, Dt: cfg.Dt})
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	log.Printf("run %s finished after %d ticks", name, result.Ticks)

	meta := storage.RunMetadata{
		Scene:    name,
		Dt:       cfg.Dt,
		Policy:   cfg.Policy,
		Rows:     cfg.Grid.Rows,
		Cols:     cfg.Grid.Cols,
		Colormap: colormap,
		Quiver:   quiver,
	}

	if jsonOut {
		return storage.ExportJSON(os.Stdout, meta, result)
	}

	fmt.Printf("scene: %s  ticks: %d  policy: %s  colormap: %s  quiver: %s\n\n",
		name, result.Ticks, cfg.Policy, colormap, quiver)
	if chart := render.Chart(result.TotalDensity, "total density", 10, 60); chart != "" {
		fmt.Println(chart)
		fmt.Println()
	}
	printMetrics(result.Metrics)

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(meta, result)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Printf("\nsaved: %s\n", runID)
	}
	return nil
}

func maxAmount(s *scene.Scene) int {
	peak := 0
	for _, d := range s.Densities {
		peak = max(peak, d.Amount)
	}
	return peak
}

func printMetrics(m map[string]float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range []string{"mass", "peak_speed", "coverage", "bounded"} {
		if v, ok := m[key]; ok {
			fmt.Fprintf(w, "%s\t%.4f\n", key, v)
		}
	}
	w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadScene(cfg, name)
	if err != nil {
		return err
	}

	var chooser palette.Chooser = palette.NewPrompt(os.Stdin, os.Stdout)
	if noPrompt {
		chooser = palette.First{}
	}
	colormap, quiver, err := resolvePalette(s, chooser)
	if err != nil {
		return err
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}
	grid := field.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	m := render.NewModel(name, s, grid, runner, render.NewColors(colormap, quiver), cfg.Dt, cfg.FPS, cfg.Policy)
	return render.Run(m)
}

func showScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadScene(cfg, args[0])
	if err != nil {
		return err
	}
	fmt.Print(render.Summary(args[0], s))
	return nil
}

func makeScene(cmd *cobra.Command, args []string) error {
	preset := args[0]
	s := config.GetPreset(preset)
	if s == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	name := preset
	if len(args) > 1 {
		name = args[1]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := os.Stat(scene.Path(cfg.SceneDir, name)); err == nil && !force {
		return fmt.Errorf("scene %s already exists (use --force)", name)
	}
	path, err := scene.Save(cfg.SceneDir, name, s)
	if err != nil {
		return err
	}
	fmt.Printf("The file has been saved as %s in %s\n", filepath.Base(path), cfg.SceneDir)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTICKS\tPOLICY\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.ID, r.Scene, r.Ticks, r.Policy, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	totals, speeds, err := st.LoadSeries(args[0])
	if err != nil {
		return fmt.Errorf("failed to load series: %w", err)
	}

	fmt.Printf("run: %s  scene: %s  ticks: %d\n\n", meta.ID, meta.Scene, meta.Ticks)
	if chart := render.Chart(totals, "total density", 10, 60); chart != "" {
		fmt.Println(chart)
		fmt.Println()
	}
	if chart := render.Chart(speeds, "max speed", 6, 60); chart != "" {
		fmt.Println(chart)
		fmt.Println()
	}
	printMetrics(meta.Metrics)
	return nil
}
