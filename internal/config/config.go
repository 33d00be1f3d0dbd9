// Package config loads client settings from defaults, an optional config
// file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/llehouerou/mpdwaves/internal/mpd"
	"github.com/llehouerou/mpdwaves/internal/template"
)

const appName = "mpdwaves"

type Config struct {
	Address          string           `koanf:"address"`
	Cycle            bool             `koanf:"cycle"`
	ClearQueryOnPlay bool             `koanf:"clear_query_on_play"`
	JumpLines        int              `koanf:"jump_lines"`
	SeekSecs         float64          `koanf:"seek_secs"`
	UPS              float64          `koanf:"ups"` // status refreshes per second
	SearchFields     mpd.SearchFields `koanf:"search_fields"`

	// Layout is decoded separately from the "layout" key.
	Layout template.Widget `koanf:"-"`

	// Path is the file the settings were read from, empty when none was.
	Path string `koanf:"-"`
}

// Error reports a config file that could not be read or understood.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "invalid config: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func defaults() map[string]any {
	return map[string]any{
		"address":              "127.0.0.1:6600",
		"cycle":                false,
		"clear_query_on_play":  false,
		"jump_lines":           24,
		"seek_secs":            5.0,
		"ups":                  1.0,
		"search_fields.file":   mpd.DefaultSearchFields.File,
		"search_fields.title":  mpd.DefaultSearchFields.Title,
		"search_fields.artist": mpd.DefaultSearchFields.Artist,
		"search_fields.album":  mpd.DefaultSearchFields.Album,
	}
}

// RegisterFlags adds the flags that override config keys.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("address", "", "address of the mpd server")
	fs.Int("jump-lines", 0, "number of lines to jump")
	fs.Float64("seek-secs", 0, "time to seek in seconds")
	fs.Float64("ups", 0, "status updates per second")
	fs.Bool("cycle", false, "cycle through the queue")
	fs.Bool("no-cycle", false, "don't cycle through the queue")
	fs.Bool("clear-query-on-play", false, "clear the search query on play")
	fs.Bool("no-clear-query-on-play", false, "don't clear the search query on play")
}

// flagKey maps a changed flag to its config key. Flags are visited in
// lexical order, so a "no-" flag overrides its positive form.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		switch f.Name {
		case "address", "jump-lines", "seek-secs", "ups", "cycle", "clear-query-on-play":
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
		case "no-cycle", "no-clear-query-on-play":
			return strings.ReplaceAll(strings.TrimPrefix(f.Name, "no-"), "-", "_"), false
		}
		return "", nil
	}
}

// Load reads the config file at path, or the first one found in the XDG
// config directories when path is empty, then applies changed flags. fs may
// be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	if path == "" {
		path = findConfig()
	} else {
		path = expandPath(path)
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, &Error{Path: path, Err: err}
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, &Error{Path: path, Err: err}
		}
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagKey(fs)), nil); err != nil {
			return nil, err
		}
	}

	cfg := &Config{Path: path}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	cfg.Layout = template.Default()
	if k.Exists("layout") {
		w, err := template.Decode("layout", k.Get("layout"))
		if err != nil {
			return nil, &Error{Path: path, Err: err}
		}
		cfg.Layout = w
	}

	if err := cfg.validate(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}
	if c.UPS <= 0 {
		return fmt.Errorf("ups must be positive, got %v", c.UPS)
	}
	if c.JumpLines < 0 {
		return fmt.Errorf("jump_lines must not be negative, got %d", c.JumpLines)
	}
	if c.SeekSecs < 0 {
		return fmt.Errorf("seek_secs must not be negative, got %v", c.SeekSecs)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
}

func findConfig() string {
	for _, name := range configNames() {
		if p, err := xdg.SearchConfigFile(name); err == nil {
			return p
		}
	}
	return ""
}

func configNames() []string {
	exts := []string{"toml", "yaml", "yml", "json"}
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = filepath.Join(appName, "config."+ext)
	}
	return names
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
