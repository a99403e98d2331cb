// Package config loads commitgraph.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/odvcencio/commitgraph/pkg/graph"
	"github.com/odvcencio/commitgraph/pkg/repo"
)

// FileName is the config file looked up when no path is given.
const FileName = "commitgraph.toml"

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	DefaultBranch string `toml:"default_branch"`
	LogLevel      string `toml:"log_level"`
	Layout        Layout `toml:"layout"`
	Server        Server `toml:"server"`
}

// Layout mirrors graph.LayoutConfig.
type Layout struct {
	NodeWidth     float64 `toml:"node_width"`
	NodeHeight    float64 `toml:"node_height"`
	HorizontalGap float64 `toml:"horizontal_gap"`
	VerticalGap   float64 `toml:"vertical_gap"`
}

type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	lc := graph.DefaultLayoutConfig()
	return &Config{
		DefaultBranch: repo.DefaultBranch,
		LogLevel:      "info",
		Layout: Layout{
			NodeWidth:     lc.NodeWidth,
			NodeHeight:    lc.NodeHeight,
			HorizontalGap: lc.HorizontalGap,
			VerticalGap:   lc.VerticalGap,
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads path over the defaults. A missing file yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects settings no component can honour.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DefaultBranch) == "" {
		return fmt.Errorf("default_branch is required")
	}
	dims := []struct {
		name string
		v    float64
	}{
		{"layout.node_width", c.Layout.NodeWidth},
		{"layout.node_height", c.Layout.NodeHeight},
		{"layout.horizontal_gap", c.Layout.HorizontalGap},
		{"layout.vertical_gap", c.Layout.VerticalGap},
	}
	for _, d := range dims {
		if d.v < 0 {
			return fmt.Errorf("%s must not be negative, got %g", d.name, d.v)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value means info.
func (c *Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// LayoutConfig converts the layout table.
func (c *Config) LayoutConfig() graph.LayoutConfig {
	return graph.LayoutConfig{
		NodeWidth:     c.Layout.NodeWidth,
		NodeHeight:    c.Layout.NodeHeight,
		HorizontalGap: c.Layout.HorizontalGap,
		VerticalGap:   c.Layout.VerticalGap,
	}
}

// LayoutOptions returns options applying the configured spacing.
func (c *Config) LayoutOptions() []graph.LayoutOption {
	return []graph.LayoutOption{graph.WithConfig(c.LayoutConfig())}
}

// RepoOptions returns the repository options implied by the config.
func (c *Config) RepoOptions() []repo.Option {
	return []repo.Option{repo.WithDefaultBranch(c.DefaultBranch)}
}
