package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/winestat/winestat/internal/utils"
)

// Global configuration structure.
type Global struct {
	CSVPath         string `mapstructure:"csv_path" yaml:"csv_path"`
	Delimiter       string `mapstructure:"delimiter" yaml:"delimiter"`
	SaveFigs        bool   `mapstructure:"save_figs" yaml:"save_figs"`
	FigDir          string `mapstructure:"fig_dir" yaml:"fig_dir"`
	TopCorrelations int    `mapstructure:"top_correlations" yaml:"top_correlations"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.winestat/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".winestat")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WINESTAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("csv_path", "winequality-red.csv")
	v.SetDefault("delimiter", ";")
	v.SetDefault("save_figs", false)
	v.SetDefault("fig_dir", "figures")
	v.SetDefault("top_correlations", 8)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".winestat")
		_ = utils.EnsureDir(dir)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
