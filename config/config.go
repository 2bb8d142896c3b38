// Package config loads deckgen settings from deckgen.yaml, DECKGEN_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kasuya3/INT-YAMAE/export"
)

const (
	configFileName = "deckgen"
	configFileType = "yaml"
	envPrefix      = "DECKGEN"

	// Config keys.
	KeyOutputDir   = "output_dir"
	KeyAssetDir    = "asset_dir"
	KeyLogDir      = "log_dir"
	KeyTemplate    = "template"
	KeyPageWidth   = "page_width"
	KeyPageHeight  = "page_height"
	KeyRenderWidth = "render_width"
	KeyFontDirs    = "font_dirs"
	KeyCreator     = "creator"
	KeyVerbose     = "verbose"
)

// Config structure
type Config struct {
	OutputDir   string   `mapstructure:"output_dir" json:"outputDir"`     // where decks and workbooks are written
	AssetDir    string   `mapstructure:"asset_dir" json:"assetDir"`       // base of optional pictures
	LogDir      string   `mapstructure:"log_dir" json:"logDir"`           // run logs, empty disables
	Template    string   `mapstructure:"template" json:"template"`        // overrides the extended deck's output
	PageWidth   float64  `mapstructure:"page_width" json:"pageWidth"`     // inches
	PageHeight  float64  `mapstructure:"page_height" json:"pageHeight"`   // inches
	RenderWidth int      `mapstructure:"render_width" json:"renderWidth"` // preview pixels
	FontDirs    []string `mapstructure:"font_dirs" json:"fontDirs"`
	Creator     string   `mapstructure:"creator" json:"creator"`
	Verbose     bool     `mapstructure:"verbose" json:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir:   ".",
		AssetDir:    ".",
		LogDir:      "logs",
		PageWidth:   export.DefaultPageWidth,
		PageHeight:  export.DefaultPageHeight,
		RenderWidth: export.DefaultRenderWidth,
		Creator:     "deckgen",
	}
}

// Grid returns the output page mapping for these settings.
func (c Config) Grid() export.Grid {
	return export.Grid{PageWidth: c.PageWidth, PageHeight: c.PageHeight}
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	if c.RenderWidth < 0 {
		return fmt.Errorf("render_width must not be negative, got %d", c.RenderWidth)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}

// Load reads the configuration. An explicit file must exist; otherwise
// deckgen.yaml is searched in the working directory and
// $HOME/.config/deckgen, and a missing file is not an error. Flags that were
// set on the command line win over everything else.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyOutputDir, def.OutputDir)
	v.SetDefault(KeyAssetDir, def.AssetDir)
	v.SetDefault(KeyLogDir, def.LogDir)
	v.SetDefault(KeyTemplate, def.Template)
	v.SetDefault(KeyPageWidth, def.PageWidth)
	v.SetDefault(KeyPageHeight, def.PageHeight)
	v.SetDefault(KeyRenderWidth, def.RenderWidth)
	v.SetDefault(KeyCreator, def.Creator)
	v.SetDefault(KeyVerbose, def.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// bindFlags binds flags named like the keys with dashes, e.g. --output-dir.
// Only flags set on the command line override file and environment values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}
