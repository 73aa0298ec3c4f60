// Package config loads figma-tokens settings from defaults, a YAML or TOML
// file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kataras/figma-tokens/pkg/errdefs"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/render"
)

// EnvPrefix prefixes environment overrides, e.g. FIGMA_TOKENS_FILE.
const EnvPrefix = "FIGMA_TOKENS_"

// DefaultFiles are looked up in the working directory when no path is given.
var DefaultFiles = []string{"figma-tokens.yaml", "figma-tokens.yml", "figma-tokens.toml"}

// Config is the full build configuration.
type Config struct {
	// Token is the Figma personal access token. FIGMA_TOKEN is honored too.
	Token string `koanf:"token"`
	// File is a file key or a figma.com file URL.
	File string `koanf:"file"`
	// Input is a saved file API response; when set no request is made.
	Input string `koanf:"input"`
	// Timeout bounds the fetch.
	Timeout time.Duration `koanf:"timeout"`
	// Parallelism bounds concurrent renders.
	Parallelism int `koanf:"parallelism"`
	// Outputs lists the artifacts to produce.
	Outputs []render.Request `koanf:"outputs"`
}

func defaults() map[string]any {
	return map[string]any{
		"timeout":     "10m",
		"parallelism": 4,
	}
}

// Load reads the configuration at path. An empty path looks for one of
// DefaultFiles and falls back to defaults and environment alone.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findDefault()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("FIGMA_TOKEN", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          "koanf",
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("%w: %v", errdefs.ErrConfig, err)
	}

	return &cfg, nil
}

// envKey maps FIGMA_TOKEN to "token" and FIGMA_TOKENS_<KEY> to "<key>".
// Anything else sharing the prefix is ignored.
func envKey(s string) string {
	switch {
	case s == "FIGMA_TOKEN":
		return "token"
	case strings.HasPrefix(s, EnvPrefix):
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	default:
		return ""
	}
}

func findDefault() string {
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errdefs.Configf("unsupported config format %q", filepath.Ext(path))
	}
}

// Validate checks that a build can start: credentials or a local input, and
// complete output requests.
func (c *Config) Validate() error {
	if c.Input == "" {
		if c.Token == "" {
			return errdefs.Configf("access token has not been set")
		}
		if c.File == "" {
			return errdefs.Configf("figma file has not been set")
		}
		if _, err := c.FileKey(); err != nil {
			return err
		}
	}
	if c.Timeout < 0 {
		return errdefs.Configf("timeout must not be negative, got %s", c.Timeout)
	}

	var result *multierror.Error
	for _, out := range c.Outputs {
		if err := out.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// FileKey returns the file key of File.
func (c *Config) FileKey() (string, error) {
	key, err := figma.ExtractFileKey(c.File)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errdefs.ErrConfig, err)
	}
	return key, nil
}
