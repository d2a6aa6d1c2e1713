package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/geoid/internal/analysis"
	"github.com/san-kum/geoid/internal/config"
	"github.com/san-kum/geoid/internal/export"
	"github.com/san-kum/geoid/internal/geom"
	"github.com/san-kum/geoid/internal/metrics"
	"github.com/san-kum/geoid/internal/storage"
	"github.com/san-kum/geoid/internal/surface"
	"github.com/san-kum/geoid/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	omega      float64
	gravity    float64
	seaLevel   float64
	rows       int
	cols       int
	rMin       float64
	rMax       float64
	iterations int
	workers    int
	lat        float64
	lon        float64
	samples    int
	dirs       int
	svgSize    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geoid",
		Short: "equipotential surfaces of rotating point-mass bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".geoid", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&omega, "omega", config.DefaultOmega, "rotation rate about the vertical axis")
	rootCmd.PersistentFlags().Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
	rootCmd.PersistentFlags().Float64Var(&seaLevel, "sea-level", config.DefaultSeaLevel, "target potential of the surface")
	rootCmd.PersistentFlags().IntVar(&rows, "rows", surface.DefaultRows, "latitude samples")
	rootCmd.PersistentFlags().IntVar(&cols, "cols", surface.DefaultCols, "longitude samples")
	rootCmd.PersistentFlags().Float64Var(&rMin, "rmin", 3.0, "bracket lower bound")
	rootCmd.PersistentFlags().Float64Var(&rMax, "rmax", 8.0, "bracket upper bound")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "extract a surface and save it",
		RunE:  solveSurface,
	}
	solveCmd.Flags().IntVar(&iterations, "iterations", 15, "bisection iterations")
	solveCmd.Flags().IntVar(&workers, "workers", 0, "solver goroutines (0 = NumCPU)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved surfaces",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the equatorial radius profile of a saved surface",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "plot the radial potential profile along a direction",
		RunE:  plotPotential,
	}
	potentialCmd.Flags().Float64Var(&lat, "lat", 0, "direction latitude (degrees)")
	potentialCmd.Flags().Float64Var(&lon, "lon", 0, "direction longitude (degrees)")
	potentialCmd.Flags().IntVar(&samples, "samples", 80, "samples across the bracket")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "verify the bracket monotonicity the solver assumes",
		RunE:  checkMonotone,
	}
	checkCmd.Flags().IntVar(&dirs, "dirs", 24, "latitude steps in the direction sweep")
	checkCmd.Flags().IntVar(&samples, "samples", 64, "samples across the bracket")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export surface vertices to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export surface data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a wireframe rendering to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "output size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASSES\tOMEGA\tSEA LEVEL\tGRID")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.3f\t%.3f\t%dx%d\n",
					name, len(p.Masses), p.Omega, p.SeaLevel, p.Grid.Rows, p.Grid.Cols)
			}
			return w.Flush()
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive surface viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.AddCommand(solveCmd, listCmd, plotCmd, potentialCmd, checkCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: preset first, then
// config file, then explicit flags on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("omega") {
		cfg.Omega = omega
	}
	if flags.Changed("g") {
		cfg.G = gravity
	}
	if flags.Changed("sea-level") {
		cfg.SeaLevel = seaLevel
	}
	if flags.Changed("rows") {
		cfg.Grid.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = cols
	}
	if flags.Changed("rmin") {
		cfg.Bracket.Min = rMin
	}
	if flags.Changed("rmax") {
		cfg.Bracket.Max = rMax
	}

	return cfg, nil
}

func solveSurface(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	builder := surface.NewBuilder(cfg.SurfaceGrid(), cfg.SolverBracket())
	if iterations > 0 {
		builder.Iterations = iterations
	}
	if workers > 0 {
		builder.Workers = workers
	}
	for _, m := range metrics.Defaults() {
		builder.AddMetric(m)
	}

	fld := cfg.Field()

	fmt.Printf("solving %dx%d surface at sea level %.4f...\n", cfg.Grid.Rows, cfg.Grid.Cols, cfg.SeaLevel)
	start := time.Now()
	surf := builder.Build(fld, cfg.SeaLevel)
	elapsed := time.Since(start)

	stats := builder.Metrics()
	runID, err := st.Save(preset, fld, surf, stats)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("vertices: %d\n", surf.Grid.Size())
	fmt.Println("\nstats:")
	for name, val := range stats {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tOMEGA\tSEA LEVEL\tGRID\tMEAN R")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%dx%d\t%.3f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Omega,
			run.SeaLevel,
			run.Rows,
			run.Cols,
			run.Metrics["mean_radius"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	surf, meta, err := st.LoadSurface(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("omega: %.3f  sea level: %.3f\n\n", meta.Omega, meta.SeaLevel)

	graph := asciigraph.Plot(surf.EquatorRing(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("equatorial radius vs longitude"),
	)
	fmt.Println(graph)

	return nil
}

func plotPotential(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fld := cfg.Field()
	dir := geom.SphereDir(lat*math.Pi/180, lon*math.Pi/180)
	profile := analysis.RadialProfile(fld, dir, cfg.Bracket.Min, cfg.Bracket.Max, samples)

	fmt.Printf("potential along lat=%.1f lon=%.1f, r in [%.1f, %.1f]\n\n",
		lat, lon, cfg.Bracket.Min, cfg.Bracket.Max)

	graph := asciigraph.Plot(profile,
		asciigraph.Height(14),
		asciigraph.Width(80),
		asciigraph.Caption("potential vs radius"),
	)
	fmt.Println(graph)

	return nil
}

func checkMonotone(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	report := analysis.CheckMonotone(cfg.Field(), cfg.SolverBracket(), dirs, samples)
	if report.OK {
		fmt.Printf("bracket [%.2f, %.2f] is monotone for omega=%.3f\n",
			cfg.Bracket.Min, cfg.Bracket.Max, cfg.Omega)
		return nil
	}

	fmt.Printf("monotonicity violated at r=%.4f, direction (%.3f, %.3f, %.3f), drop %.2e\n",
		report.R, report.Dir.X, report.Dir.Y, report.Dir.Z, report.Drop)
	fmt.Println("radius solves in this configuration are unreliable")
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	surf, _, err := st.LoadSurface(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"row", "col", "radius", "x", "y", "z"}); err != nil {
		return err
	}

	for i := 0; i < surf.Grid.Rows; i++ {
		for j := 0; j < surf.Grid.Cols; j++ {
			k := surf.Grid.Index(i, j)
			p := surf.Vertex(k)
			rec := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(surf.Radii[k], 'f', 6, 64),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	surf, meta, err := st.LoadSurface(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, surf)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	surf, _, err := st.LoadSurface(args[0])
	if err != nil {
		return err
	}

	cam := viz.NewCamera()
	cam.RotX = 0.4
	cam.RotY = 0.6
	maxR := 0.0
	for _, r := range surf.Radii {
		if r > maxR {
			maxR = r
		}
	}
	if maxR > 0 {
		cam.Extent = maxR * 1.15
	}

	fmt.Println(export.SurfaceToSVG(surf, cam, svgSize, svgSize))
	return nil
}
