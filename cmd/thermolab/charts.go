package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/cycle"
	"github.com/san-kum/thermolab/internal/export"
	"github.com/san-kum/thermolab/internal/plot"
	"github.com/san-kum/thermolab/internal/viz"
)

const (
	formatChart = "chart"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func (c *cli) pvCmd() *cobra.Command {
	var (
		preset  string
		svgPath string
		width   int
		height  int
	)

	cmd := &cobra.Command{
		Use:   "pv",
		Short: "P-V diagram of an ideal Otto cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if preset != "" {
				if err := c.cfg.ApplyPreset(preset); err != nil {
					return err
				}
				if err := c.cfg.Validate(); err != nil {
					return err
				}
			}
			eng := c.cfg.Engine

			d, err := cycle.OttoDiagram(cycle.OttoParams{
				Displacement:     eng.Displacement,
				CompressionRatio: eng.CompressionRatio,
				HeatAdded:        eng.HeatAdded,
				Gamma:            c.cfg.Gamma,
				Points:           eng.Points,
			})
			if err != nil {
				return c.fail("pv diagram", err)
			}
			c.log.Debug("sampled otto diagram", "points", len(d.Points), "peak_pressure", d.PeakPressure)

			out := cmd.OutOrStdout()
			writeLines(out,
				viz.Title("P-V diagram of Otto cycle"),
				plot.Scatter(d.Points, width, height),
				"Legend: . = early, o = middle, ● = late (traversal order)",
				"",
				viz.Metric("displacement", fmt.Sprintf("%g m³", eng.Displacement)),
				viz.Metric("compression ratio", fmt.Sprintf("%g", eng.CompressionRatio)),
				viz.Metric("heat added", fmt.Sprintf("%g J", eng.HeatAdded)),
				viz.Metric("peak pressure", fmt.Sprintf("%.0f Pa", d.PeakPressure)),
				viz.Metric("thermal efficiency", fmt.Sprintf("%.1f%%", d.Efficiency*100)),
			)

			if svgPath != "" {
				return c.writeSVG(out, svgPath, plot.DiagramSVG(d, 800, 500))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "engine preset (see presets)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the diagram as SVG")
	cmd.Flags().IntVar(&width, "width", 70, "chart width")
	cmd.Flags().IntVar(&height, "height", 20, "chart height")
	return cmd
}

func (c *cli) compareCmd() *cobra.Command {
	var (
		minRatio float64
		maxRatio float64
		points   int
		cutoffs  []float64
		format   string
		svgPath  string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Otto vs Diesel efficiency over compression ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep := c.cfg.Sweep
			flags := cmd.Flags()
			if flags.Changed("min") {
				sweep.MinRatio = minRatio
			}
			if flags.Changed("max") {
				sweep.MaxRatio = maxRatio
			}
			if flags.Changed("points") {
				sweep.Points = points
			}
			if flags.Changed("cutoff") {
				sweep.Cutoffs = cutoffs
			}

			ratios, err := cycle.Linspace(sweep.MinRatio, sweep.MaxRatio, sweep.Points)
			if err != nil {
				return err
			}
			series, err := cycle.Comparison(ratios, sweep.Cutoffs, c.cfg.Gamma)
			if err != nil {
				return c.fail("compare", err)
			}
			c.log.Debug("sampled efficiency comparison", "series", len(series), "points", len(ratios))

			out := cmd.OutOrStdout()
			if err := c.render(out, format, series, fmt.Sprintf("thermal efficiency vs compression ratio (%g-%g)", sweep.MinRatio, sweep.MaxRatio)); err != nil {
				return err
			}
			if svgPath != "" {
				return c.writeSVG(out, svgPath, plot.SVG(series, 800, 500))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&minRatio, "min", config.DefaultMinRatio, "minimum compression ratio")
	cmd.Flags().Float64Var(&maxRatio, "max", config.DefaultMaxRatio, "maximum compression ratio")
	cmd.Flags().IntVar(&points, "points", config.DefaultSweepPoints, "number of samples")
	cmd.Flags().Float64SliceVar(&cutoffs, "cutoff", config.DefaultCutoffs, "diesel cutoff ratios")
	cmd.Flags().StringVar(&format, "format", formatChart, "output format: chart, csv, json")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the chart as SVG")
	return cmd
}

func (c *cli) isothermCmd() *cobra.Command {
	var (
		vMin   float64
		vMax   float64
		points int
		format string
	)

	cmd := &cobra.Command{
		Use:   "isotherm",
		Short: "ideal gas pressure over volume at fixed temperature",
		RunE: func(cmd *cobra.Command, args []string) error {
			volumes, err := cycle.Linspace(vMin, vMax, points)
			if err != nil {
				return err
			}
			gas := c.cfg.Gas
			s, err := cycle.Isotherm(volumes, gas.Moles, gas.Temperature, c.cfg.GasConstant)
			if err != nil {
				return c.fail("isotherm", err)
			}
			caption := fmt.Sprintf("pressure (Pa) vs volume %g-%g m³, n=%g mol", vMin, vMax, gas.Moles)
			return c.render(cmd.OutOrStdout(), format, []cycle.Series{s}, caption)
		},
	}
	cmd.Flags().Float64Var(&vMin, "vmin", 0.5, "minimum volume (m³)")
	cmd.Flags().Float64Var(&vMax, "vmax", 5, "maximum volume (m³)")
	cmd.Flags().IntVar(&points, "points", 40, "number of samples")
	cmd.Flags().StringVar(&format, "format", formatChart, "output format: chart, csv, json")
	return cmd
}

func (c *cli) render(w io.Writer, format string, series []cycle.Series, caption string) error {
	switch format {
	case formatChart:
		opts := plot.DefaultOptions()
		opts.Caption = caption
		fmt.Fprintln(w, plot.Lines(series, opts))
		return nil
	case formatCSV:
		return export.WriteCSV(w, series)
	case formatJSON:
		return export.WriteJSON(w, series)
	default:
		return fmt.Errorf("unknown format: %s (available: %s, %s, %s)", format, formatChart, formatCSV, formatJSON)
	}
}

func (c *cli) writeSVG(w io.Writer, path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	c.log.Info("svg written", "path", path, "bytes", len(svg))
	fmt.Fprintf(w, "svg: %s\n", path)
	return nil
}

func (c *cli) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list engine presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISPLACEMENT\tRATIO\tCUTOFF\tHEAT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g m³\t%g\t%g\t%g J\n", name, p.Displacement, p.CompressionRatio, p.CutoffRatio, p.HeatAdded)
			}
			return w.Flush()
		},
	}
}

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "inspect or write configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.Save(path, c.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written: %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(cmd.OutOrStdout(), c.cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
