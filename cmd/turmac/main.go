package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/marioveld/turmac/internal/config"
	"github.com/marioveld/turmac/internal/machine"
	"github.com/marioveld/turmac/internal/notation"
	"github.com/marioveld/turmac/internal/render"
	"github.com/marioveld/turmac/internal/store"
	"github.com/marioveld/turmac/internal/tui"
	"github.com/marioveld/turmac/internal/unary"
)

var (
	dataDir     string
	configFile  string
	tapePattern string
	maxSteps    int
	plain       bool
	noColor     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "turmac",
		Short: "single-tape turing machine lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".turmac", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [program]",
		Short: "run a machine to halting and store the trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMachine,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "machine definition file (yaml)")
	runCmd.Flags().StringVar(&tapePattern, "tape", "", "initial tape pattern, e.g. xxoxx")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step bound (0 uses the definition's bound)")

	traceCmd := &cobra.Command{
		Use:   "trace [program]",
		Short: "run a machine and print the full step table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceMachine,
	}
	traceCmd.Flags().StringVar(&configFile, "config", "", "machine definition file (yaml)")
	traceCmd.Flags().StringVar(&tapePattern, "tape", "", "initial tape pattern")
	traceCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step bound")
	traceCmd.Flags().BoolVar(&plain, "plain", false, "ascii output instead of box drawing")
	traceCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")

	stepCmd := &cobra.Command{
		Use:   "step [program]",
		Short: "step through a machine interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  stepMachine,
	}
	stepCmd.Flags().StringVar(&configFile, "config", "", "machine definition file (yaml)")
	stepCmd.Flags().StringVar(&tapePattern, "tape", "", "initial tape pattern")
	stepCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step bound")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot head position and tape growth of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id] [file]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			if err := st.ExportJSON(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("exported %s to %s\n", args[0], args[1])
			return nil
		},
	}

	programsCmd := &cobra.Command{
		Use:   "programs",
		Short: "list built-in programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTATES\tTAPE")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(cfg.Program), cfg.Tape)
			}
			return w.Flush()
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [pattern]",
		Short: "decode a tape pattern as unary numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols, err := notation.ParseTape(args[0])
			if err != nil {
				return err
			}
			values := unary.Decode(symbols)
			if len(values) == 0 {
				fmt.Println("(blank tape)")
				return nil
			}
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = fmt.Sprintf("%d", v)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, traceCmd, stepCmd, listCmd, plotCmd, exportCmd, programsCmd, decodeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDefinition resolves a machine definition from a preset name or a
// config file, then applies flag overrides.
func loadDefinition(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case len(args) == 1:
		preset := config.GetPreset(args[0])
		if preset == nil {
			return nil, fmt.Errorf("unknown program: %s (available: %v)", args[0], config.ListPresets())
		}
		// Copy so flag overrides don't leak into the preset table.
		clone := *preset
		cfg = &clone
	default:
		return nil, fmt.Errorf("need a program name or --config")
	}

	// Flags win over the definition.
	if cmd.Flags().Changed("tape") {
		cfg.Tape = tapePattern
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	return cfg, nil
}

func runMachine(cmd *cobra.Command, args []string) error {
	cfg, err := loadDefinition(cmd, args)
	if err != nil {
		return err
	}

	m, err := cfg.Build()
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = "machine"
	}

	fmt.Printf("running %s on %s...\n", name, cfg.Tape)
	start := time.Now()

	trace, runErr := m.Run(context.Background(), machine.Config{MaxSteps: cfg.MaxSteps})
	if trace == nil {
		return runErr
	}
	elapsed := time.Since(start)

	runID, err := st.Save(name, m.Program(), trace)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", trace.Steps())
	fmt.Printf("tape: %s -> %s\n", notation.FormatTape(trace.Input), notation.FormatTape(trace.Output))
	fmt.Printf("decoded: %v -> %v\n", unary.Decode(trace.Input), unary.Decode(trace.Output))
	if runErr != nil {
		fmt.Printf("outcome: %v\n", runErr)
	}
	return nil
}

func traceMachine(cmd *cobra.Command, args []string) error {
	cfg, err := loadDefinition(cmd, args)
	if err != nil {
		return err
	}

	m, err := cfg.Build()
	if err != nil {
		return err
	}

	trace, err := m.Run(context.Background(), machine.Config{MaxSteps: cfg.MaxSteps})
	if err != nil {
		return err
	}

	fmt.Println(render.Table(trace, render.Options{Plain: plain, Color: !noColor && !plain}))
	return nil
}

func stepMachine(cmd *cobra.Command, args []string) error {
	cfg, err := loadDefinition(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTEPS\tHALTED\tINPUT\tOUTPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\t%s\n",
			run.ID, run.Name, run.Steps, run.Halted, run.Input, run.Output)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	moves, err := st.LoadMoves(args[0])
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		fmt.Println("run has no moves")
		return nil
	}

	head := make([]float64, len(moves))
	cells := make([]float64, len(moves))
	for i, mv := range moves {
		head[i] = float64(mv.ToCell)
		cells[i] = float64(len(mv.Symbols))
	}

	fmt.Println(asciigraph.Plot(head,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("head position per step")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(cells,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("tape length per step")))
	return nil
}
