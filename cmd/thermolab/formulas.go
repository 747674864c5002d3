package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/thermolab/internal/thermo"
	"github.com/san-kum/thermolab/internal/viz"
)

func parseFloats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			name := fmt.Sprintf("arg %d", i+1)
			if i < len(names) {
				name = names[i]
			}
			return nil, fmt.Errorf("invalid %s %q: %w", name, a, err)
		}
		out[i] = v
	}
	return out, nil
}

func (c *cli) energyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "energy [heat_added] [work_done]",
		Short: "internal energy change from the first law (J)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "heat_added", "work_done")
			if err != nil {
				return err
			}
			du := thermo.InternalEnergyChange(v[0], v[1])
			fmt.Fprintln(cmd.OutOrStdout(), viz.Metric("dU", fmt.Sprintf("%g J", du)))
			return nil
		},
	}
}

func (c *cli) pressureCmd() *cobra.Command {
	var z float64

	cmd := &cobra.Command{
		Use:   "pressure [volume] [moles] [temperature]",
		Short: "gas pressure from PV = ZnRT (Pa)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "volume", "moles", "temperature")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("z") {
				z = c.cfg.Gas.Compressibility
			}
			p, err := thermo.GasPressure(v[0], v[1], v[2], z, c.cfg.GasConstant)
			if err != nil {
				return c.fail("pressure", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), viz.Metric("pressure", fmt.Sprintf("%.4f Pa", p)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&z, "z", 1.0, "compressibility factor")
	return cmd
}

func (c *cli) workCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "work [moles] [temperature] [v1] [v2]",
		Short: "isothermal work nRT ln(V2/V1) (J)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "moles", "temperature", "v1", "v2")
			if err != nil {
				return err
			}
			w, err := thermo.IsothermalWork(v[0], v[1], v[2], v[3], c.cfg.GasConstant)
			if err != nil {
				return c.fail("work", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), viz.Metric("work", fmt.Sprintf("%.4f J", w)))
			return nil
		},
	}
}

func (c *cli) ottoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "otto [compression_ratio]",
		Short: "air-standard Otto cycle efficiency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := c.cfg.Engine.CompressionRatio
			if len(args) == 1 {
				v, err := parseFloats(args, "compression_ratio")
				if err != nil {
					return err
				}
				r = v[0]
			}
			eff, err := thermo.OttoEfficiency(r, c.cfg.Gamma)
			if err != nil {
				return c.fail("otto", err)
			}
			out := cmd.OutOrStdout()
			writeLines(out,
				viz.Metric("compression ratio", fmt.Sprintf("%g", r)),
				viz.Metric("gamma", fmt.Sprintf("%g", c.cfg.Gamma)),
				viz.Metric("efficiency", fmt.Sprintf("%.4f (%.1f%%)", eff, eff*100)),
			)
			return nil
		},
	}
}

func (c *cli) dieselCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diesel [compression_ratio] [cutoff_ratio]",
		Short: "air-standard Diesel cycle efficiency",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "compression_ratio", "cutoff_ratio")
			if err != nil {
				return err
			}
			r, rc := c.cfg.Engine.CompressionRatio, c.cfg.Engine.CutoffRatio
			if len(v) > 0 {
				r = v[0]
			}
			if len(v) > 1 {
				rc = v[1]
			}
			eff, err := thermo.DieselEfficiency(r, rc, c.cfg.Gamma)
			if err != nil {
				return c.fail("diesel", err)
			}
			writeLines(cmd.OutOrStdout(),
				viz.Metric("compression ratio", fmt.Sprintf("%g", r)),
				viz.Metric("cutoff ratio", fmt.Sprintf("%g", rc)),
				viz.Metric("gamma", fmt.Sprintf("%g", c.cfg.Gamma)),
				viz.Metric("efficiency", fmt.Sprintf("%.4f (%.1f%%)", eff, eff*100)),
			)
			return nil
		},
	}
}

func (c *cli) exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "interactive efficiency explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(c.cfg.Engine.CompressionRatio, c.cfg.Engine.CutoffRatio, c.cfg.Gamma)
		},
	}
}
