package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Lang        string    `toml:"lang"`
	Store       string    `toml:"store"`
	Socket      string    `toml:"socket"`
	DebounceMs  int       `toml:"debounce_ms"`  // opacity write coalescing window (default 400)
	DigitPx     int       `toml:"digit_px"`     // pixel width of one "0" in the bar font (default 8)
	DigitWidths []float64 `toml:"digit_widths"` // measured advances of "0".."5"; empty uses cell widths
	LogFile     string    `toml:"log_file"`
	Debug       bool      `toml:"debug"`
	Modules     Modules   `toml:"modules"`
	moduleOrder []string  // order of module tables as they appeared in TOML
	path        string
}

type Modules struct {
	Clock    ModuleToggle `toml:"clock"`
	Date     ModuleToggle `toml:"date"`
	Greeting ModuleToggle `toml:"greeting"`
}

type ModuleToggle struct {
	Enabled bool `toml:"enabled"`
}

func Defaults() *Config {
	return &Config{
		Lang:       "en",
		Store:      defaultStorePath(),
		Socket:     defaultSocketPath(),
		DebounceMs: 400,
		DigitPx:    8,
		Modules: Modules{
			Clock:    ModuleToggle{Enabled: true},
			Date:     ModuleToggle{Enabled: true},
			Greeting: ModuleToggle{Enabled: true},
		},
	}
}

// Load loads configuration from explicit path or discovered search path.
// Precedence: provided path (if exists) else first existing search path else defaults.
// Missing file yields defaults and an error; parse errors also return defaults + error.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	var chosen string
	if path != "" {
		chosen = path
	} else {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" { // no file found
		return defaults, errors.New("no config file found; using defaults")
	}
	defaults.path = chosen
	data, err := os.ReadFile(chosen)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), defaults) // decode overlays onto defaults
	if err != nil {
		return defaults, fmt.Errorf("parse config: %w", err)
	}
	// Capture module order from metadata keys: modules.<name>
	seen := map[string]struct{}{}
	for _, k := range md.Keys() {
		if len(k) == 2 && k[0] == "modules" {
			name := k[1]
			if _, ok := seen[name]; !ok {
				defaults.moduleOrder = append(defaults.moduleOrder, name)
				seen[name] = struct{}{}
			}
		}
	}
	defaults.normalize()
	return defaults, nil
}

func SearchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "swayclock", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "swayclock", "config.toml"))
	}
	return out
}

func defaultStorePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "swayclock", "settings.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "swayclock", "settings.db")
}

func defaultSocketPath() string {
	if rt := os.Getenv("XDG_RUNTIME_DIR"); rt != "" {
		return filepath.Join(rt, "swayclock.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("swayclock-%d.sock", os.Getuid()))
}

// Path returns the file the config was read from, or "" for defaults.
func (c *Config) Path() string { return c.path }

// ModuleOrder returns a copy of the module order slice (may be empty).
func (c *Config) ModuleOrder() []string {
	if len(c.moduleOrder) == 0 {
		return nil
	}
	out := make([]string, len(c.moduleOrder))
	copy(out, c.moduleOrder)
	return out
}

// normalize clamps and validates config values after decoding.
func (c *Config) normalize() {
	c.DebounceMs = clampInt(c.DebounceMs, 50, 5000, 400)
	c.DigitPx = clampInt(c.DigitPx, 4, 64, 8)
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.Store == "" {
		c.Store = defaultStorePath()
	}
	if c.Socket == "" {
		c.Socket = defaultSocketPath()
	}
	if len(c.DigitWidths) > 0 && len(c.DigitWidths) < 6 {
		c.DigitWidths = nil // a partial table cannot yield ratios for 1..5
	}
}

func clampInt(val, min, max, fallback int) int {
	if val == 0 && fallback != 0 { // allow zero to trigger fallback when min>0
		val = fallback
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
