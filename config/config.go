// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the overlay's YAML configuration file and watches it
// for changes.
//
// Example file:
//
//	stroke_width: 6
//	stroke_color: "#ff8800"
//	socket: ~/.cache/ink.sock
//	log_level: debug
//	buffer_size: 16777216
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/command"
	"github.com/gogpu/ink/drawing"
	"github.com/gogpu/ink/render"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the contents of the configuration file.
type Config struct {
	StrokeWidth float64 `yaml:"stroke_width"`
	StrokeColor string  `yaml:"stroke_color"`
	Socket      string  `yaml:"socket,omitempty"`
	LogLevel    string  `yaml:"log_level,omitempty"`
	BufferSize  uint64  `yaml:"buffer_size"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		StrokeWidth: drawing.DefaultStrokeWidth,
		StrokeColor: "red",
		LogLevel:    "info",
		BufferSize:  render.DefaultBufferSize,
	}
}

// Path returns the default location of the configuration file:
// $XDG_CONFIG_HOME/ink/config.yaml, or ~/.config/ink/config.yaml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ink", "config.yaml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ink", "config.yaml"), nil
}

// Load reads the file at path over Defaults. A missing file is not an
// error. The result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()

	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func (c Config) Save(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every field.
func (c Config) Validate() error {
	if math.IsNaN(c.StrokeWidth) || math.IsInf(c.StrokeWidth, 0) || c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke_width %v must be positive", ErrInvalid, c.StrokeWidth)
	}
	if _, err := ink.ParseColor(c.StrokeColor); err != nil {
		return fmt.Errorf("%w: stroke_color: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.BufferSize == 0 {
		return fmt.Errorf("%w: buffer_size must be positive", ErrInvalid)
	}
	return nil
}

// Color returns the parsed stroke color. It returns ink.Red if the color
// does not parse.
func (c Config) Color() ink.RGBA {
	rgba, err := ink.ParseColor(c.StrokeColor)
	if err != nil {
		return ink.Red
	}
	return rgba
}

// Level returns the parsed log level. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return l, nil
}

// SocketPath returns the control socket path, expanding a leading "~".
// An empty socket setting means command.DefaultSocketPath.
func (c Config) SocketPath() (string, error) {
	if c.Socket == "" {
		return command.DefaultSocketPath(), nil
	}
	p, err := homedir.Expand(c.Socket)
	if err != nil {
		return "", fmt.Errorf("config: socket: %w", err)
	}
	return p, nil
}

// Commands returns the commands that turn a drawing configured by old into
// one configured by c.
func (c Config) Commands(old Config) []command.Command {
	var cmds []command.Command
	if c.StrokeWidth != old.StrokeWidth {
		cmds = append(cmds, command.SetStrokeWidth(float32(c.StrokeWidth)))
	}
	if c.Color() != old.Color() {
		cmds = append(cmds, command.SetStrokeColor(c.Color()))
	}
	return cmds
}
