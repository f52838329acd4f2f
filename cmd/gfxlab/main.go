package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/experiment"
	"github.com/san-kum/gfxlab/internal/export"
	"github.com/san-kum/gfxlab/internal/geometry"
	"github.com/san-kum/gfxlab/internal/gui"
	"github.com/san-kum/gfxlab/internal/keymap"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/logging"
	"github.com/san-kum/gfxlab/internal/objmesh"
	"github.com/san-kum/gfxlab/internal/rubik"
	"github.com/san-kum/gfxlab/internal/storage"
	"github.com/san-kum/gfxlab/internal/tui"
	"github.com/san-kum/gfxlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	logFile    string
	logLevel   string
	seed       int64
	preset     string
	theme      string
	// scramble
	scrambleMoves int
	noSave        bool
	letters       bool
	runs          int
	svgFile       string
	// export
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gfxlab",
		Short: "rubik cube, phong lighting and obj graphics labs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, "")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "session directory")
	pf.StringVar(&logFile, "log-file", config.DefaultLogFile, "log file path, empty for none")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	pf.Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", "", "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run [lab]",
		Short: "open a lab window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, args[0])
		},
	}

	labsCmd := &cobra.Command{
		Use:   "labs",
		Short: "list labs",
		RunE:  listLabs,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [lab]",
		Short: "list available presets for a lab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for lab: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "print key bindings",
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range keymap.Help() {
				fmt.Println(line)
			}
		},
	}

	scrambleCmd := &cobra.Command{
		Use:   "scramble",
		Short: "scramble a cube headless and print its net",
		RunE:  runScramble,
	}
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 0, "number of random moves (default from config)")
	scrambleCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the session")
	scrambleCmd.Flags().BoolVar(&letters, "letters", false, "print the net as letters")
	scrambleCmd.Flags().IntVar(&runs, "runs", 1, "scramble this many cubes on consecutive seeds")
	scrambleCmd.Flags().StringVar(&svgFile, "svg", "", "also write the net as svg")

	solveCmd := &cobra.Command{
		Use:   "solve-check [moves...]",
		Short: "apply moves to a solved cube and report whether it is solved",
		Args:  cobra.MinimumNArgs(1),
		RunE:  solveCheck,
	}
	solveCmd.Flags().BoolVar(&letters, "letters", false, "print the net as letters")
	solveCmd.Flags().StringVar(&svgFile, "svg", "", "also write the net as svg")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session]",
		Short: "plot the turn angle trace of a session (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSession,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session]",
		Short: "export a session as json (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSession,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	inspectCmd := &cobra.Command{
		Use:   "inspect [obj]",
		Short: "parse an obj file (the embedded car by default) and print its stats",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspectModel,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal cube net viewer",
		RunE:  runTUI,
	}

	rootCmd.AddCommand(runCmd, labsCmd, presetsCmd, keysCmd, scrambleCmd, solveCmd,
		historyCmd, plotCmd, exportCmd, inspectCmd, initCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and preset, then lets explicitly set
// flags win.
func loadConfig(cmd *cobra.Command, labName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if labName != "" {
		cfg.Lab = labName
	}

	if preset != "" {
		p := config.GetPreset(cfg.Lab, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for lab %s", preset, cfg.Lab)
		}
		p.DataDir, p.LogFile, p.LogLevel, p.Seed = cfg.DataDir, cfg.LogFile, cfg.LogLevel, cfg.Seed
		p.Window = cfg.Window
		cfg = p
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-file") || configFile == "" {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") || configFile == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func openLogger(cfg *config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.Open(cfg.LogFile, level)
}

func openStore(cfg *config.Config) (*storage.Store, error) {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func runGUI(cmd *cobra.Command, labName string) error {
	cfg, err := loadConfig(cmd, labName)
	if err != nil {
		return err
	}
	log, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	return gui.Run(gui.Options{Config: cfg, Logger: log.Logger, Tail: log.Tail, Store: st}, labName)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "rubik")
	if err != nil {
		return err
	}
	log, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	if theme != "" {
		viz.SetTheme(theme)
	}
	return tui.Run(tui.Options{Config: cfg, Store: st, Logger: log.Logger})
}

func listLabs(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tTITLE\tDESCRIPTION")
	for _, info := range lab.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, info.Title, info.Description)
	}
	return w.Flush()
}

func printNet(c *rubik.Cube) {
	net := viz.NetOf(c)
	if letters {
		fmt.Print(net.Letters())
		return
	}
	if theme != "" {
		viz.SetTheme(theme)
	}
	fmt.Println(net.Render(viz.CurrentTheme))
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "rubik")
	if err != nil {
		return err
	}
	log, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	n := scrambleMoves
	if n <= 0 {
		n = cfg.Rubik.ScrambleMoves
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := experiment.Config{Lab: "scramble", Seed: cfg.Seed, Scramble: n}
	if runs > 1 {
		return scrambleEnsemble(ctx, cfg, base, log)
	}

	res, err := experiment.New(base, cfg).Run(ctx)
	if err != nil {
		return err
	}
	log.Info("randomized", "moves", n, "seed", cfg.Seed, "frames", res.Frames)

	printNet(res.Cube)
	fmt.Println()
	for i, m := range res.Session.Moves {
		fmt.Printf("%3d  %s\n", i+1, m.Move)
	}
	if err := writeSVG(res.Cube); err != nil {
		return err
	}

	if noSave {
		return nil
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	id, err := st.Save(res.Session)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved session: %s\n", id)
	return nil
}

func scrambleEnsemble(ctx context.Context, cfg *config.Config, base experiment.Config, log *logging.Logger) error {
	results, err := experiment.NewEnsemble(base, cfg, runs, cfg.Seed).Run(ctx)
	if err != nil {
		return err
	}

	var st *storage.Store
	if !noSave {
		if st, err = openStore(cfg); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tMOVES\tFRAMES\tSOLVED\tSESSION")
	for _, res := range results {
		id := "-"
		if st != nil {
			if id, err = st.Save(res.Session); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%s\n", res.Session.Seed, len(res.Session.Moves), res.Frames, res.Cube.IsSolved(), id)
	}
	log.Info("randomized ensemble", "runs", len(results), "seed", cfg.Seed)
	return w.Flush()
}

func writeSVG(c *rubik.Cube) error {
	if svgFile == "" {
		return nil
	}
	if err := export.WriteNetSVG(svgFile, viz.NetOf(c), 24); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgFile)
	return nil
}

func solveCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "rubik")
	if err != nil {
		return err
	}
	cube, moves, err := applyMoves(cfg, args)
	if err != nil {
		return err
	}

	printNet(cube)
	fmt.Printf("\nmoves:  %d\n", len(moves))
	fmt.Printf("solved: %v\n", cube.IsSolved())
	fmt.Printf("home:   %v\n", cube.AtHome())
	return writeSVG(cube)
}

// applyMoves turns a fresh cube, laid out from cfg, through the move tokens.
func applyMoves(cfg *config.Config, tokens []string) (*rubik.Cube, []rubik.Move, error) {
	moves, err := rubik.ParseMoves(tokens)
	if err != nil {
		return nil, nil, err
	}
	cube := rubik.NewCube(cfg.Spacing())
	if err := cube.ApplyAll(moves); err != nil {
		return nil, nil, err
	}
	return cube, moves, nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	st, err := sessionStore(cmd)
	if err != nil {
		return err
	}
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLAB\tTIME\tSEED\tMOVES\tSCRAMBLE\tDURATION\tSOLVED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%.0f\t%.2fs\t%v\n",
			s.ID,
			s.Lab,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Seed,
			s.Metrics["moves"],
			s.Metrics["scramble_moves"],
			s.Metrics["duration"],
			s.Solved,
		)
	}
	return w.Flush()
}

func sessionStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

// sessionID is the argument, or the latest session when there is none.
func sessionID(st *storage.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return st.Latest()
}

func plotSession(cmd *cobra.Command, args []string) error {
	st, err := sessionStore(cmd)
	if err != nil {
		return err
	}
	id, err := sessionID(st, args)
	if err != nil {
		return err
	}
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(id)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("lab: %s\n", meta.Lab)
	fmt.Printf("samples: %d\n\n", len(trace))

	data := make([]float64, len(trace))
	for i, s := range trace {
		data[i] = s.Angle * 180 / math.Pi
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("slice angle (degrees) per frame"),
	)
	fmt.Println(graph)
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	st, err := sessionStore(cmd)
	if err != nil {
		return err
	}
	id, err := sessionID(st, args)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := st.ExportFile(id, outFile); err != nil {
			return err
		}
		fmt.Printf("exported %s to %s\n", id, outFile)
		return nil
	}
	return st.Export(id, os.Stdout)
}

func inspectModel(cmd *cobra.Command, args []string) error {
	var (
		mesh *geometry.Mesh
		err  error
		name = "embedded car"
	)
	color := config.DefaultConfig().ModelColor()
	if len(args) > 0 {
		name = args[0]
		f, ferr := os.Open(args[0])
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		mesh, err = objmesh.Read(f, color)
	} else {
		mesh, err = objmesh.ReadDefault(color)
	}
	if err != nil {
		return err
	}
	if err := mesh.Validate(); err != nil {
		return err
	}

	stats := objmesh.Measure(mesh)
	center := stats.Center()
	fmt.Printf("model: %s\n", name)
	fmt.Printf("%s\n", stats)
	fmt.Printf("center: %.2f %.2f %.2f\n", center[0], center[1], center[2])
	if stats.Vertices > 65535 {
		fmt.Println("note: more than 65535 vertices, the gpu upload will de-index it")
	}
	return nil
}
