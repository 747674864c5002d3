package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermolab/internal/logger"
)

const (
	EnvPrefix       = "THERMOLAB"
	DefaultFileName = ".thermolab.yaml"

	DefaultGamma            = 1.4
	DefaultGasConstant      = 8.314
	DefaultLogLevel         = "info"
	DefaultDisplacement     = 0.002
	DefaultCompressionRatio = 9.5
	DefaultCutoffRatio      = 2.0
	DefaultHeatAdded        = 1000.0
	DefaultPoints           = 100
	DefaultMinRatio         = 4.0
	DefaultMaxRatio         = 20.0
	DefaultSweepPoints      = 50
	DefaultVolume           = 2.0
	DefaultMoles            = 2.0
	DefaultTemperature      = 300.0
)

var DefaultCutoffs = []float64{1.5, 2.0, 2.5}

type Config struct {
	Gamma       float64      `yaml:"gamma" mapstructure:"gamma" validate:"gt=1"`
	GasConstant float64      `yaml:"gas_constant" mapstructure:"gas_constant" validate:"gt=0"`
	LogLevel    string       `yaml:"log_level" mapstructure:"log_level" validate:"loglevel"`
	Engine      EngineConfig `yaml:"engine" mapstructure:"engine"`
	Sweep       SweepConfig  `yaml:"sweep" mapstructure:"sweep"`
	Gas         GasConfig    `yaml:"gas" mapstructure:"gas"`
}

// EngineConfig parameterises the P-V diagram and single-point efficiencies.
type EngineConfig struct {
	Displacement     float64 `yaml:"displacement" mapstructure:"displacement" validate:"gt=0"`
	CompressionRatio float64 `yaml:"compression_ratio" mapstructure:"compression_ratio" validate:"gt=1"`
	CutoffRatio      float64 `yaml:"cutoff_ratio" mapstructure:"cutoff_ratio" validate:"gt=1"`
	HeatAdded        float64 `yaml:"heat_added" mapstructure:"heat_added" validate:"gte=0"`
	Points           int     `yaml:"points" mapstructure:"points" validate:"gte=2"`
}

// SweepConfig is the compression-ratio range for efficiency comparisons.
type SweepConfig struct {
	MinRatio float64   `yaml:"min_ratio" mapstructure:"min_ratio" validate:"gt=0"`
	MaxRatio float64   `yaml:"max_ratio" mapstructure:"max_ratio" validate:"gtfield=MinRatio"`
	Points   int       `yaml:"points" mapstructure:"points" validate:"gte=2"`
	Cutoffs  []float64 `yaml:"cutoffs" mapstructure:"cutoffs" validate:"dive,gt=0,ne=1"`
}

type GasConfig struct {
	Volume          float64 `yaml:"volume" mapstructure:"volume" validate:"gt=0"`
	Moles           float64 `yaml:"moles" mapstructure:"moles" validate:"gt=0"`
	Temperature     float64 `yaml:"temperature" mapstructure:"temperature" validate:"gt=0"`
	Compressibility float64 `yaml:"compressibility" mapstructure:"compressibility" validate:"gt=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Gamma:       DefaultGamma,
		GasConstant: DefaultGasConstant,
		LogLevel:    DefaultLogLevel,
		Engine: EngineConfig{
			Displacement:     DefaultDisplacement,
			CompressionRatio: DefaultCompressionRatio,
			CutoffRatio:      DefaultCutoffRatio,
			HeatAdded:        DefaultHeatAdded,
			Points:           DefaultPoints,
		},
		Sweep: SweepConfig{
			MinRatio: DefaultMinRatio,
			MaxRatio: DefaultMaxRatio,
			Points:   DefaultSweepPoints,
			Cutoffs:  append([]float64(nil), DefaultCutoffs...),
		},
		Gas: GasConfig{
			Volume:          DefaultVolume,
			Moles:           DefaultMoles,
			Temperature:     DefaultTemperature,
			Compressibility: 1.0,
		},
	}
}

// DefaultPath is the per-user config file, ~/.thermolab.yaml.
func DefaultPath() (string, error) {
	return homedir.Expand("~/" + DefaultFileName)
}

// Load reads a YAML config file on top of the defaults. THERMOLAB_* environment
// variables override file values, e.g. THERMOLAB_GAMMA or
// THERMOLAB_ENGINE_COMPRESSION_RATIO. An empty path loads defaults and
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads ~/.thermolab.yaml when it exists, otherwise defaults.
func LoadDefault() (*Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg, err := Load("")
		return cfg, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

var validate = newValidator()

// newValidator registers "loglevel", which accepts exactly the names
// logger.ParseLevel understands.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := logger.ParseLevel(fl.Field().String())
		return ok
	})
	return v
}

// Validate checks physical bounds on every field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyPreset replaces the engine section with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Engine = *p
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("gamma", d.Gamma)
	v.SetDefault("gas_constant", d.GasConstant)
	v.SetDefault("log_level", d.LogLevel)

	v.SetDefault("engine.displacement", d.Engine.Displacement)
	v.SetDefault("engine.compression_ratio", d.Engine.CompressionRatio)
	v.SetDefault("engine.cutoff_ratio", d.Engine.CutoffRatio)
	v.SetDefault("engine.heat_added", d.Engine.HeatAdded)
	v.SetDefault("engine.points", d.Engine.Points)

	v.SetDefault("sweep.min_ratio", d.Sweep.MinRatio)
	v.SetDefault("sweep.max_ratio", d.Sweep.MaxRatio)
	v.SetDefault("sweep.points", d.Sweep.Points)
	v.SetDefault("sweep.cutoffs", d.Sweep.Cutoffs)

	v.SetDefault("gas.volume", d.Gas.Volume)
	v.SetDefault("gas.moles", d.Gas.Moles)
	v.SetDefault("gas.temperature", d.Gas.Temperature)
	v.SetDefault("gas.compressibility", d.Gas.Compressibility)
}
