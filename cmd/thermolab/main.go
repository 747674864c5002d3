package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/logger"
	"github.com/san-kum/thermolab/internal/thermo"
)

// cli carries state resolved once per invocation and shared by subcommands.
type cli struct {
	configFile  string
	logLevel    string
	gamma       float64
	gasConstant float64

	cfg *config.Config
	log *slog.Logger
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, thermo.ErrDomain) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "thermolab",
		Short: "thermodynamics formulas and engine cycle plots",
		Long: "thermolab evaluates the first law, the ideal gas law and air-standard\n" +
			"Otto/Diesel cycle efficiency, and plots P-V diagrams and efficiency curves.\n" +
			"Run without a subcommand for a worked example.",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runExample,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file path (yaml, default ~/.thermolab.yaml)")
	pf.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.Float64Var(&c.gamma, "gamma", thermo.DefaultGamma, "ratio of specific heats")
	pf.Float64Var(&c.gasConstant, "gas-constant", thermo.GasConstant, "gas constant R in J/(mol·K)")

	rootCmd.AddCommand(
		c.energyCmd(),
		c.pressureCmd(),
		c.workCmd(),
		c.ottoCmd(),
		c.dieselCmd(),
		c.pvCmd(),
		c.compareCmd(),
		c.isothermCmd(),
		c.presetsCmd(),
		c.configCmd(),
		c.exploreCmd(),
	)

	return rootCmd
}

// setup loads config, then lets explicitly set flags override it.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if c.configFile != "" {
		cfg, err = config.Load(c.configFile)
		path = c.configFile
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("gamma") {
		cfg.Gamma = c.gamma
	}
	if flags.Changed("gas-constant") {
		cfg.GasConstant = c.gasConstant
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if path != "" {
		c.log.Debug("config loaded", "path", path)
	}
	c.log.Debug("constants", "gamma", cfg.Gamma, "gas_constant", cfg.GasConstant)
	return nil
}

// runExample prints the worked example: first-law energy balance and the
// pressure of two moles at 300 K in 5 m³ and 2 m³.
func (c *cli) runExample(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	du := thermo.InternalEnergyChange(500, 300)
	fmt.Fprintf(out, "internal energy change (Q=500 J, W=300 J): %g J\n", du)

	for _, v := range []float64{5, 2} {
		p, err := thermo.IdealGasPressure(v, c.cfg.Gas.Moles, c.cfg.Gas.Temperature, c.cfg.GasConstant)
		if err != nil {
			return c.fail("example pressure", err)
		}
		fmt.Fprintf(out, "pressure (V=%g m³, n=%g mol, T=%g K): %.2f Pa\n", v, c.cfg.Gas.Moles, c.cfg.Gas.Temperature, p)
	}
	return nil
}

// fail logs domain errors once before handing them back to cobra.
func (c *cli) fail(what string, err error) error {
	if errors.Is(err, thermo.ErrDomain) {
		c.log.Error("input outside formula domain", "op", what, "err", err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func writeLines(w io.Writer, lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
