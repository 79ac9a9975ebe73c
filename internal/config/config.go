package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/strum/internal/chord"
	"github.com/abhisek/strum/internal/diagram"
	"github.com/abhisek/strum/internal/logging"
	"github.com/abhisek/strum/internal/metronome"
	"github.com/abhisek/strum/internal/practice"
)

//go:embed config.schema.json
var schemaJSON []byte

const schemaURL = "strum://config.schema.json"

// Config holds all strum configuration.
type Config struct {
	Practice  PracticeConfig  `yaml:"practice"`
	Diagram   DiagramConfig   `yaml:"diagram"`
	Metronome MetronomeConfig `yaml:"metronome"`
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
}

// PracticeConfig sets the initial session.
type PracticeConfig struct {
	IntervalSeconds    float64  `yaml:"interval_seconds"`
	MinIntervalSeconds float64  `yaml:"min_interval_seconds"`
	IntervalStep       float64  `yaml:"interval_step"`
	Chords             []string `yaml:"chords"`
	ShowDiagram        bool     `yaml:"show_diagram"`
	Metronome          bool     `yaml:"metronome"`
}

// DiagramConfig sets the tuning and diagram geometry.
type DiagramConfig struct {
	Tuning  string `yaml:"tuning"` // C, D or G
	Base    int    `yaml:"base"`
	Spacing int    `yaml:"spacing"`
	Radius  int    `yaml:"radius"`
}

// MetronomeConfig selects the click source.
type MetronomeConfig struct {
	Mode    string   `yaml:"mode"` // bell, command or off
	Command []string `yaml:"command"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error or off
	File  string `yaml:"file"`
}

// StoreConfig locates the practice history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with the standard session settings.
func DefaultConfig() Config {
	return Config{
		Practice: PracticeConfig{
			IntervalSeconds:    2.0,
			MinIntervalSeconds: 0.5,
			IntervalStep:       0.25,
			Chords:             chord.Strings(chord.DefaultActive()),
		},
		Diagram: DiagramConfig{
			Tuning:  "C",
			Base:    50,
			Spacing: 40,
			Radius:  13,
		},
		Metronome: MetronomeConfig{
			Mode: metronome.ModeBell,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path, checks it against the config schema,
// applies STRUM_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return load(data)
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return load(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return load(data)
}

func load(data []byte) (*Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults. It does not read the
// environment or validate values.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}
	if err := validateSchema(data); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateSchema catches misspelled keys and wrongly typed values before
// they are silently dropped by the YAML decoder.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if doc == nil {
		return nil
	}

	// The validator expects JSON values, so round-trip through encoding/json.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert config to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("convert config to JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

// applyEnvOverrides reads STRUM_* variables:
//
//	STRUM_INTERVAL, STRUM_CHORDS (comma separated), STRUM_DIAGRAM,
//	STRUM_METRONOME, STRUM_TUNING, STRUM_METRONOME_MODE,
//	STRUM_METRONOME_COMMAND (space separated), STRUM_LOG_LEVEL,
//	STRUM_LOG_FILE, STRUM_DB
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("STRUM_INTERVAL"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("STRUM_INTERVAL: %w", err)
		}
		cfg.Practice.IntervalSeconds = f
	}
	if v := os.Getenv("STRUM_CHORDS"); v != "" {
		cfg.Practice.Chords = SplitList(v)
	}
	if v := os.Getenv("STRUM_DIAGRAM"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STRUM_DIAGRAM: %w", err)
		}
		cfg.Practice.ShowDiagram = b
	}
	if v := os.Getenv("STRUM_METRONOME"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STRUM_METRONOME: %w", err)
		}
		cfg.Practice.Metronome = b
	}
	if v := os.Getenv("STRUM_TUNING"); v != "" {
		cfg.Diagram.Tuning = v
	}
	if v := os.Getenv("STRUM_METRONOME_MODE"); v != "" {
		cfg.Metronome.Mode = v
	}
	if v := os.Getenv("STRUM_METRONOME_COMMAND"); v != "" {
		cfg.Metronome.Command = strings.Fields(v)
	}
	if v := os.Getenv("STRUM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STRUM_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("STRUM_DB"); v != "" {
		cfg.Store.Path = v
	}
	return nil
}

// SplitList splits a comma separated list and drops empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	p := c.Practice
	if p.IntervalStep <= 0 {
		return fmt.Errorf("practice.interval_step must be positive")
	}
	if p.MinIntervalSeconds <= 0 {
		return fmt.Errorf("practice.min_interval_seconds must be positive")
	}
	if p.IntervalSeconds < p.MinIntervalSeconds {
		return fmt.Errorf("practice.interval_seconds %.2f is below the %.2f floor", p.IntervalSeconds, p.MinIntervalSeconds)
	}
	if _, err := chord.ParseNames(p.Chords); err != nil {
		return fmt.Errorf("practice.chords: %w", err)
	}

	if _, err := chord.ParseTuning(c.Diagram.Tuning); err != nil {
		return fmt.Errorf("diagram.tuning: %w", err)
	}
	if c.Diagram.Spacing <= 0 || c.Diagram.Radius <= 0 || c.Diagram.Base < 0 {
		return fmt.Errorf("diagram geometry must be positive")
	}

	switch c.Metronome.Mode {
	case metronome.ModeBell, metronome.ModeOff:
	case metronome.ModeCommand:
		if len(c.Metronome.Command) == 0 {
			return fmt.Errorf("metronome.command is required for the command mode")
		}
	default:
		return fmt.Errorf("unknown metronome mode: %q", c.Metronome.Mode)
	}

	if lvl := c.Log.Level; lvl != "" && lvl != logging.LevelOff {
		if _, err := zapcore.ParseLevel(lvl); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}

// PracticeConfig converts the practice section. Call after Validate.
func (c *Config) PracticeConfig() practice.Config {
	chords, _ := chord.ParseNames(c.Practice.Chords)
	return practice.Config{
		IntervalSeconds:    c.Practice.IntervalSeconds,
		MinIntervalSeconds: c.Practice.MinIntervalSeconds,
		IntervalStep:       c.Practice.IntervalStep,
		Chords:             chords,
		CurrentChord:       "C",
		ShowDiagram:        c.Practice.ShowDiagram,
		Metronome:          c.Practice.Metronome,
	}
}

// DiagramConfig converts the diagram section. Call after Validate.
func (c *Config) DiagramConfig() diagram.Config {
	d := diagram.DefaultConfig()
	if t, err := chord.ParseTuning(c.Diagram.Tuning); err == nil {
		d.Tuning = t
	}
	d.Base = c.Diagram.Base
	d.Spacing = c.Diagram.Spacing
	d.Radius = c.Diagram.Radius
	return d
}

// MetronomeConfig converts the metronome section.
func (c *Config) MetronomeConfig() metronome.Config {
	return metronome.Config{Mode: c.Metronome.Mode, Command: c.Metronome.Command}
}

// LoggingConfig converts the log section, filling in the default file.
func (c *Config) LoggingConfig() (logging.Config, error) {
	file := c.Log.File
	if file == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return logging.Config{}, err
		}
		file = p
	}
	return logging.Config{Level: c.Log.Level, File: file}, nil
}

// DefaultPath resolves the config file path in priority order:
// 1. STRUM_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/strum/config.yaml
// 3. ~/.config/strum/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("STRUM_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "strum", "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/strum/strum.log, falling back to
// ~/.local/state/strum/strum.log.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "strum", "strum.log"), nil
}

func xdgDir(env, fallback string) (string, error) {
	if d := os.Getenv(env); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
