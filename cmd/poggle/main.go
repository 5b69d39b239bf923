package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/poggle/internal/audio"
	"github.com/san-kum/poggle/internal/board"
	"github.com/san-kum/poggle/internal/config"
	"github.com/san-kum/poggle/internal/export"
	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/gui"
	"github.com/san-kum/poggle/internal/layout"
	"github.com/san-kum/poggle/internal/metrics"
	"github.com/san-kum/poggle/internal/pinball"
	"github.com/san-kum/poggle/internal/viz"
)

var (
	configFile string
	layoutName string
	preset     string
	elasticity float32
	reflection string
	scan       string
	debug      bool
	withAudio  bool
	// Headless runs
	ticks       int
	shots       int
	every       int
	speed       float32
	angle       float64
	angleSpread float64
	seed        int64
	trailEvery  uint64
	// Bench
	benchTicks int

	logFile *os.File
)

func main() {
	err := newRootCmd().Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "poggle",
		Short: "pegs, gravity and a lot of bouncing",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			proc := startAudio()
			defer stopAudio(proc)
			return viz.RunMenu(cfg, func(b *board.Board) { observe(b, proc) })
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&layoutName, "layout", config.DefaultLayout, "peg layout")
	pf.StringVar(&preset, "preset", "", "named tuning for the layout")
	pf.Float32Var(&elasticity, "elasticity", pinball.DefaultElasticity, "fraction of speed kept per bounce")
	pf.StringVar(&reflection, "reflection", pinball.ReflectLegacy.String(), "bounce rule: legacy or mirror")
	pf.StringVar(&scan, "scan", pinball.ScanFirst.String(), "peg scan order: first or earliest")
	pf.BoolVar(&debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	pf.BoolVar(&withAudio, "audio", false, "play a tone on peg hits")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless volley and print statistics",
		RunE:  runHeadless,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [layout]",
		Short: "play a layout in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui [layout]",
		Short: "play a layout in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "list peg layouts and their presets",
		RunE:  listLayouts,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run a headless volley and write the trace as CSV",
		RunE:  exportCSV,
	}
	addRunFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "run a headless volley and write the trace as JSON",
		RunE:  exportJSON,
	}
	addRunFlags(exportJSONCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "run a headless volley and draw the ball paths as SVG",
		RunE:  exportSVG,
	}
	addRunFlags(exportSVGCmd)
	exportSVGCmd.Flags().Uint64Var(&trailEvery, "trail-every", 4, "ticks between trail points")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stepper on a layout",
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 2000, "ticks per case")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, layoutsCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, benchCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ticks, "ticks", 2400, "maximum ticks")
	cmd.Flags().IntVar(&shots, "shots", 10, "balls to launch")
	cmd.Flags().IntVar(&every, "every", 30, "ticks between launches")
	cmd.Flags().Float32Var(&speed, "speed", 300, "launch speed")
	cmd.Flags().Float64Var(&angle, "angle", 90, "launch angle in degrees, 90 is straight down")
	cmd.Flags().Float64Var(&angleSpread, "angle-spread", 60, "launch angle spread in degrees")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
}

// loadConfig layers defaults, the preset, the config file and finally any
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(layoutName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(layoutName))
		}
		cfg = p
		cfg.Layout = layoutName
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("layout") {
		cfg.Layout = layoutName
	}
	if cmd.Flags().Changed("elasticity") {
		cfg.Elasticity = elasticity
	}
	if cmd.Flags().Changed("reflection") {
		cfg.Reflection = reflection
	}
	if cmd.Flags().Changed("scan") {
		cfg.Scan = scan
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newBoard(cfg *config.Config) (*board.Board, error) {
	pegs, err := cfg.BuildPegs()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	b, err := board.New(pegs, params)
	if err != nil {
		return nil, err
	}
	log.Printf("[BOARD] layout=%s pegs=%d reflection=%s scan=%s elasticity=%g",
		cfg.Layout, len(pegs), params.Reflection, params.Scan, params.Elasticity)
	return b, nil
}

// startAudio returns nil when audio is off or the device cannot be opened.
func startAudio() *audio.Processor {
	if !withAudio {
		return nil
	}
	proc := audio.NewProcessor()
	if err := proc.Start(); err != nil {
		log.Printf("[AUDIO] disabled: %v", err)
		return nil
	}
	return proc
}

func stopAudio(proc *audio.Processor) {
	if proc != nil {
		proc.Stop()
	}
}

func observe(b *board.Board, proc *audio.Processor) {
	if proc != nil {
		b.AddObserver(proc)
	}
}

func hostConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if len(args) == 1 {
		if err := cmd.Flags().Set("layout", args[0]); err != nil {
			return nil, err
		}
	}
	return loadConfig(cmd)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := hostConfig(cmd, args)
	if err != nil {
		return err
	}
	b, err := newBoard(cfg)
	if err != nil {
		return err
	}
	proc := startAudio()
	defer stopAudio(proc)
	observe(b, proc)

	m, err := viz.NewModel(b, cfg, cfg.Layout)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := hostConfig(cmd, args)
	if err != nil {
		return err
	}
	b, err := newBoard(cfg)
	if err != nil {
		return err
	}
	proc := startAudio()
	defer stopAudio(proc)
	observe(b, proc)
	return gui.Run(b, cfg, cfg.Layout)
}

// headless builds the configured board and fires a seeded volley at it.
func headless(cmd *cobra.Command, observers ...pinball.Observer) (*config.Config, *board.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if shots < 0 || every < 0 {
		return nil, nil, fmt.Errorf("shots and every must not be negative, got %d and %d", shots, every)
	}
	b, err := newBoard(cfg)
	if err != nil {
		return nil, nil, err
	}
	for _, m := range metrics.Defaults() {
		b.AddMetric(m)
	}
	for _, o := range observers {
		b.AddObserver(o)
	}

	p := b.Params()
	origin := geom.Vec{X: p.Width / 2, Y: 2 * p.BallRadius}
	volley := board.Volley(origin, speed, float32(angle*math.Pi/180), float32(angleSpread*math.Pi/180), shots, every, seed)

	res, err := b.Run(cmd.Context(), board.RunConfig{
		Ticks:         ticks,
		Dt:            time.Second / time.Duration(cfg.UpdatesPerSecond),
		Shots:         volley,
		StopWhenEmpty: true,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[BOARD] headless run: %d ticks, %d launched, %d bounces", res.TicksTaken, res.Stats.Launched, res.Stats.Bounces)
	return cfg, res, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, res, err := headless(cmd)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("layout %s  reflection %s  scan %s  elasticity %.2f\n", cfg.Layout, cfg.Reflection, cfg.Scan, cfg.Elasticity)
	fmt.Printf("%d ticks (%.2fs simulated) in %v\n\n", res.TicksTaken, float64(res.TicksTaken)/float64(cfg.UpdatesPerSecond), elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAT\tVALUE")
	fmt.Fprintf(w, "launched\t%d\n", res.Stats.Launched)
	fmt.Fprintf(w, "drained\t%d\n", res.Stats.Drained)
	fmt.Fprintf(w, "bounces\t%d\n", res.Stats.Bounces)
	fmt.Fprintf(w, "wall_bounces\t%d\n", res.Stats.WallBounces)
	fmt.Fprintf(w, "rounds\t%d\n", res.Stats.Rounds)

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4g\n", name, res.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	if len(res.Samples) < 2 {
		return nil
	}
	energy := make([]float64, len(res.Samples))
	pool := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		energy[i] = s.Energy
		pool[i] = float64(s.Balls)
	}
	for _, chart := range []struct {
		data    []float64
		caption string
	}{
		{energy, "total ball energy"},
		{pool, "balls in play"},
	} {
		graph := asciigraph.Plot(chart.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(chart.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listLayouts(cmd *cobra.Command, args []string) error {
	spec := config.DefaultConfig().LayoutSpec()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LAYOUT\tPEGS\tPRESETS\tDESCRIPTION")
	for _, name := range layout.Names() {
		pegs, err := layout.Build(name, spec)
		if err != nil {
			return err
		}
		presets := strings.Join(config.ListPresets(name), ",")
		if presets == "" {
			presets = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, len(pegs), presets, layout.Describe(name))
	}
	fmt.Fprintf(w, "%s\t-\t-\tpegs listed in the config file\n", config.CustomLayout)
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, res, err := headless(cmd)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"tick", "time", "balls", "hits", "energy", "anomalies"}); err != nil {
		return err
	}
	for _, s := range res.Samples {
		row := []string{
			strconv.FormatUint(s.Tick, 10),
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.Itoa(s.Balls),
			strconv.Itoa(s.Hits),
			strconv.FormatFloat(s.Energy, 'f', 6, 64),
			strconv.Itoa(s.Anomalies),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type exportDoc struct {
	Layout     string        `json:"layout"`
	Reflection string        `json:"reflection"`
	Scan       string        `json:"scan"`
	Elasticity float32       `json:"elasticity"`
	Seed       int64         `json:"seed"`
	Result     *board.Result `json:"result"`
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, res, err := headless(cmd)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportDoc{
		Layout:     cfg.Layout,
		Reflection: cfg.Reflection,
		Scan:       cfg.Scan,
		Elasticity: cfg.Elasticity,
		Seed:       seed,
		Result:     res,
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	trail := &export.Trail{Every: trailEvery}
	if _, _, err := headless(cmd, trail); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, export.BoardToSVG(trail.Last, trail.Points))
	return err
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dt := time.Second / time.Duration(cfg.UpdatesPerSecond)

	fmt.Printf("benchmarking %s\n\n", cfg.Layout)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BALLS\tSCAN\tTICKS\tTIME\tTICKS/SEC")

	for _, balls := range []int{1, 10, 100} {
		for _, mode := range []string{"first", "earliest"} {
			c := *cfg
			c.Scan = mode
			b, err := newBoard(&c)
			if err != nil {
				return err
			}
			// Zero gravity keeps every ball in play for the whole case.
			p := b.Params()
			p.Gravity = geom.Vec{}
			if b, err = board.New(b.Snapshot().Pegs, p); err != nil {
				return err
			}
			volley := board.Volley(geom.Vec{X: p.Width / 2, Y: p.Height / 2}, 200, 0, 2*math.Pi, balls, 0, 42)
			for _, s := range volley {
				b.Shoot(s.Origin, s.Velocity)
			}

			start := time.Now()
			for i := 0; i < benchTicks; i++ {
				b.Step(dt)
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n",
				balls, mode, benchTicks, elapsed, float64(benchTicks)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

