package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/netplot/netplot/pkg/draw"
	"github.com/netplot/netplot/pkg/plot"
)

// config holds drawing defaults read from the user's config file.
// Command-line flags override these values.
type config struct {
	Layout    string  `toml:"layout"`
	Format    string  `toml:"format"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	NodeSize  float64 `toml:"node_size"`
	NodeColor string  `toml:"node_color"`
	EdgeColor string  `toml:"edge_color"`
	FontSize  float64 `toml:"font_size"`
	Labels    *bool   `toml:"labels"`
}

// defaultConfig returns the built-in defaults used when the config file
// is absent or silent on a key.
func defaultConfig() config {
	opts := draw.DefaultOptions()
	return config{
		Layout:    "spring",
		Format:    "png",
		Width:     plot.DefaultWidth,
		Height:    plot.DefaultHeight,
		NodeSize:  opts.NodeSize,
		NodeColor: opts.NodeColor,
		EdgeColor: opts.EdgeColor,
		FontSize:  opts.FontSize,
	}
}

// loadConfig reads the TOML config file, overlaying it onto the
// defaults. A missing file is not an error.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		printWarning("config: unknown key %q ignored", key.String())
	}
	return cfg, nil
}

// drawOptions converts config values into renderer options.
func (cfg config) drawOptions() draw.Options {
	opts := draw.DefaultOptions()
	opts.NodeSize = cfg.NodeSize
	opts.NodeColor = cfg.NodeColor
	opts.EdgeColor = cfg.EdgeColor
	opts.FontSize = cfg.FontSize
	if cfg.Labels != nil {
		opts.WithLabels = *cfg.Labels
	}
	return opts
}
