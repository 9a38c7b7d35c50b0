// Package config loads the optional .fig-types.yaml file of the CLI.
// Flags given on the command line take precedence over its values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".fig-types.yaml"

// Config holds the settings shared by the CLI commands.
type Config struct {
	// AllowUnknownFields decodes leniently, reporting ignored keys instead
	// of failing on them.
	AllowUnknownFields bool     `yaml:"allowUnknownFields"`
	Exclude            []string `yaml:"exclude"`
	Concurrency        int      `yaml:"concurrency"`

	Output OutputConfig `yaml:"output"`
	TSGen  TSGenConfig  `yaml:"tsgen"`
	Assets AssetsConfig `yaml:"assets"`
	Report ReportConfig `yaml:"report"`
}

// OutputConfig controls how documents are re-encoded.
type OutputConfig struct {
	Indent string `yaml:"indent"`
	// Compress writes zstd output even when the file name lacks ".zst".
	Compress bool `yaml:"compress"`
}

// TSGenConfig controls the TypeScript declaration output.
type TSGenConfig struct {
	Out string `yaml:"out"`
}

// AssetsConfig overrides the export settings of exportable nodes.
type AssetsConfig struct {
	Format string    `yaml:"format"`
	Scales []float64 `yaml:"scales"`
	Dir    string    `yaml:"dir"`
}

// ReportConfig controls the Markdown report.
type ReportConfig struct {
	ComponentTree      bool `yaml:"componentTree"`
	InheritFileContext bool `yaml:"inheritFileContext"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Concurrency: 4,
		Output:      OutputConfig{Indent: "  "},
		TSGen:       TSGenConfig{Out: "types"},
		Assets:      AssetsConfig{Dir: "figma-assets"},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// returned path is empty in that case.
func Load(path string) (Config, string, error) {
	cfg := Default()
	if path == "" {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, "", nil
	}
	if err != nil {
		return cfg, "", fmt.Errorf("reading config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, path, nil
}

// Parse decodes YAML data into cfg and validates the result. Keys absent
// from data keep their current value in cfg.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate reports the first setting outside its allowed range.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	switch strings.ToLower(c.Assets.Format) {
	case "", "png", "jpg", "svg", "pdf":
	default:
		return fmt.Errorf("invalid asset format %q (must be png, svg, jpg, or pdf)", c.Assets.Format)
	}
	for _, p := range c.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	for _, s := range c.Assets.Scales {
		if s <= 0 {
			return fmt.Errorf("scale value must be positive, got %g", s)
		}
	}
	return nil
}
