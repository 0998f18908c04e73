package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stellar/internal/analysis"
	"github.com/san-kum/stellar/internal/attractor"
	"github.com/san-kum/stellar/internal/audio"
	"github.com/san-kum/stellar/internal/automation"
	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/experiment"
	"github.com/san-kum/stellar/internal/export"
	"github.com/san-kum/stellar/internal/gui"
	"github.com/san-kum/stellar/internal/optim"
	"github.com/san-kum/stellar/internal/sim"
	"github.com/san-kum/stellar/internal/storage"
	"github.com/san-kum/stellar/internal/tui"
	"github.com/san-kum/stellar/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	pointsFile string
	themeName  string
	audioOn    bool
	gifPath    string

	ticks       int
	metricNames []string
	ensemble    int
	label       string
	live        bool
	frameRate   int

	seriesNames []string
	seriesName  string
	xSeries     string
	ySeries     string
	svgPath     string

	sweepParam     string
	sweepMin       float64
	sweepMax       float64
	sweepSteps     int
	sweepTransient int
	sweepRecord    int

	searchAxes   []string
	searchMetric string
	maximize     bool
	searchTicks  int

	snapshotTicks int
	snapshotPath  string
)

// main registers the commands and runs the live terminal view when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "stellar",
		Short:        "charged particle network with lightning",
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".stellar", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().StringVar(&pointsFile, "points", "", "attractor points file (yaml list of x, y, brightness)")

	rootCmd.Flags().StringVar(&themeName, "theme", viz.ThemePeriwinkle.Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.Flags().BoolVar(&audioOn, "audio", false, "play thunder through the default audio device")
	rootCmd.Flags().StringVar(&gifPath, "gif", "stellar.gif", "output path for recordings")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "pick a preset and tune it before starting",
		RunE:  runMenu,
	}
	menuCmd.Flags().BoolVar(&audioOn, "audio", false, "play thunder through the default audio device")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a resizable window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&audioOn, "audio", false, "play thunder through the default audio device")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and store the series",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks")
	runCmd.Flags().StringSliceVar(&metricNames, "metrics", nil, "metrics to record (default all)")
	runCmd.Flags().IntVar(&ensemble, "ensemble", 1, "number of runs over consecutive seeds")
	runCmd.Flags().StringVar(&label, "label", "", "run label (default preset name)")
	runCmd.Flags().BoolVar(&live, "live", false, "draw an ascii preview while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "preview frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&seriesNames, "series", nil, "series to plot (default all)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&seriesName, "series", "live", "series to analyze")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "plot one series against another",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&xSeries, "x", "live", "series for the x axis")
	phaseCmd.Flags().StringVar(&ySeries, "y", "kinetic_energy", "series for the y axis")
	phaseCmd.Flags().StringVar(&svgPath, "svg", "", "also write the portrait as svg")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write the final frame as svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotTicks, "ticks", 300, "ticks before the frame is taken")
	snapshotCmd.Flags().StringVar(&snapshotPath, "out", "stellar.svg", "output path")
	snapshotCmd.Flags().StringVar(&themeName, "theme", viz.ThemePeriwinkle.Name, "color theme")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of experiments and store each step",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "grid search params for the best metric value",
		RunE:  runSearch,
	}
	searchCmd.Flags().StringArrayVar(&searchAxes, "axis", nil, "grid axis as name=min:max:steps (repeatable)")
	searchCmd.Flags().StringVar(&searchMetric, "metric", "bolts", "metric to optimize")
	searchCmd.Flags().BoolVar(&maximize, "maximize", false, "maximize instead of minimize")
	searchCmd.Flags().IntVar(&searchTicks, "ticks", 300, "ticks per trial")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter and plot where a series settles",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "volatility", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.05, "lowest value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.0, "highest value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "number of values")
	sweepCmd.Flags().StringVar(&seriesName, "series", "live", "series to record")
	sweepCmd.Flags().IntVar(&sweepTransient, "transient", 200, "ticks discarded per run")
	sweepCmd.Flags().IntVar(&sweepRecord, "record", 100, "ticks recorded per run")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "list recordable metrics",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range experiment.NewRegistry().ListMetrics() {
				fmt.Printf("  %s\n", m)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved config to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	})

	rootCmd.AddCommand(menuCmd, guiCmd, runCmd, listCmd, plotCmd, analyzeCmd, phaseCmd, sweepCmd, snapshotCmd, scenarioCmd, searchCmd, exportJSONCmd, presetsCmd, metricsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the preset, then the config file. An
// explicit --seed always wins.
func resolveConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg := *config.DefaultConfig()
	title := "default"

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return cfg, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg, title = *p, preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if title == "default" {
			title = strings.TrimSuffix(configFile, ".yaml")
		}
	}

	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	return cfg, title, nil
}

// startAudio returns nil when audio is off or the device cannot be opened.
func startAudio() *audio.Processor {
	if !audioOn {
		return nil
	}
	proc := audio.NewProcessor(uint64(seed))
	if err := proc.Start(); err != nil {
		log.Printf("audio: %v", err)
		return nil
	}
	return proc
}

func stopAudio(proc *audio.Processor) {
	if proc == nil {
		return
	}
	if err := proc.Stop(); err != nil {
		log.Printf("audio: %v", err)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	proc := startAudio()
	defer stopAudio(proc)

	m := viz.NewModel(viz.Launch(cfg, pointsFile), title).WithTheme(themeName).WithGIFPath(gifPath)
	if proc != nil {
		m = m.WithThunder(proc)
	}
	return viz.Run(m)
}

func runMenu(cmd *cobra.Command, args []string) error {
	proc := startAudio()
	defer stopAudio(proc)

	var thunder viz.Thunder
	if proc != nil {
		thunder = proc
	}
	return viz.RunInteractive(seed, thunder)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	proc := startAudio()
	defer stopAudio(proc)

	gui.Run(viz.Launch(cfg, pointsFile), title, proc)
	return nil
}

func loadField(cfg config.Config) (*attractor.Field, error) {
	field := attractor.NewField(cfg.Width, cfg.Height)
	if pointsFile != "" {
		return field, field.LoadFile(pointsFile)
	}
	return field, field.Load(attractor.Portrait())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if label == "" {
		label = title
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if ensemble > 1 {
		return runEnsemble(ctx, st, cfg)
	}

	ms, err := experiment.NewRegistry().Metrics(metricNames)
	if err != nil {
		return err
	}
	field, err := loadField(cfg)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg, ticks)
	if err := exp.Setup(field, ms); err != nil {
		return err
	}
	if live {
		r := tui.NewLiveRenderer(os.Stdout, frameRate)
		r.Start()
		defer r.Stop()
		exp.Observe(r.OnFrame)
	}

	fmt.Printf("running %s for %d ticks (seed %d)...\n", label, ticks, cfg.Seed)
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	runID, err := st.Save(label, cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Duration)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)
	return nil
}

func runEnsemble(ctx context.Context, st *storage.Store, cfg config.Config) error {
	fmt.Printf("running %d x %s for %d ticks...\n", ensemble, label, ticks)
	results, err := experiment.NewEnsemble(cfg, ticks, ensemble, cfg.Seed, metricNames).Run(ctx)
	if err != nil {
		return err
	}

	for i, res := range results {
		runCfg := cfg
		runCfg.Seed = cfg.Seed + int64(i)
		runID, err := st.Save(fmt.Sprintf("%s-%d", label, i), runCfg, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nmean metrics:")
	printMetrics(experiment.Mean(results))
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tSEED\tTICKS\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%v\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Ticks,
			run.Elapsed.Round(time.Millisecond),
		)
	}

	return w.Flush()
}

func loadSeries(runID string) (*storage.RunMetadata, map[string][]float64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, series, nil
}

func pick(series map[string][]float64, name string) ([]float64, error) {
	data, ok := series[name]
	if !ok {
		return nil, fmt.Errorf("no series %q in run", name)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("series %q is empty", name)
	}
	return data, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	names := seriesNames
	if len(names) == 0 {
		names = experiment.SeriesNames
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("label: %s\n", meta.Label)
	fmt.Printf("ticks: %d\n\n", meta.Ticks)

	for _, name := range names {
		data, err := pick(series, name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}
	data, err := pick(series, seriesName)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("series: %s (%d samples)\n", seriesName, len(data))

	if period, ok := analysis.DominantPeriod(data); ok {
		fmt.Printf("dominant period: %.1f ticks\n\n", period)
	} else {
		fmt.Println("dominant period: none")
		fmt.Println()
	}

	spectrum := analysis.PowerSpectrum(data)
	if len(spectrum) > 1 {
		graph := asciigraph.Plot(spectrum[1:],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum"),
		)
		fmt.Println(graph)
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	_, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}
	x, err := pick(series, xSeries)
	if err != nil {
		return err
	}
	y, err := pick(series, ySeries)
	if err != nil {
		return err
	}

	fmt.Println(analysis.NewPhasePortrait(xSeries, x, ySeries, y).ASCII(80, 24))
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(x, y, 800, 600, "#ccccff")), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	field, err := loadField(cfg)
	if err != nil {
		return err
	}

	engine := sim.New(cfg, sim.WithField(field))
	for i := 0; i < snapshotTicks; i++ {
		engine.Tick()
	}

	f, err := os.Create(snapshotPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.SnapshotToSVG(f, engine.Snapshot(), viz.GetTheme(themeName)); err != nil {
		return err
	}
	fmt.Printf("wrote %s after %d ticks\n", snapshotPath, snapshotTicks)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario %s: %d steps\n", sc.Name, len(sc.Steps))
	results, runErr := automation.RunScenario(ctx, sc, cfg)
	for _, res := range results {
		runID, err := st.Save(res.Label, res.Config, res.Result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return runErr
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(searchAxes) == 0 {
		return fmt.Errorf("at least one --axis is required")
	}
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(searchAxes))
	ranges := make([][]float64, 0, len(searchAxes))
	for _, spec := range searchAxes {
		name, values, err := optim.ParseAxis(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	best, trials, err := optim.NewGridSearch(names, ranges, maximize).Search(ctx, cfg, searchTicks, searchMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(strings.Join(names, "\t")), strings.ToUpper(searchMetric))
	for _, t := range trials {
		for _, name := range names {
			fmt.Fprintf(w, "%.4g\t", t.Params[name])
		}
		fmt.Fprintf(w, "%.4f\n", t.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest %s = %.4f at", searchMetric, best.Score)
	for _, name := range names {
		fmt.Printf(" %s=%.4g", name, best.Params[name])
	}
	fmt.Println()
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %s over [%g, %g] in %d steps...\n", sweepParam, sweepMin, sweepMax, sweepSteps)
	points, err := analysis.Sweep(ctx, cfg, analysis.SweepSpec{
		Param:     sweepParam,
		Min:       sweepMin,
		Max:       sweepMax,
		Steps:     sweepSteps,
		Series:    seriesName,
		Transient: sweepTransient,
		Record:    sweepRecord,
	})
	if err != nil {
		return err
	}

	fmt.Println(analysis.SweepToASCII(points, 80, 24))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path := "stellar.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Save(path, &cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
