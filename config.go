package glimpse

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables for a glimpse application, loadable from TOML.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Scroll ScrollConfig `toml:"scroll"`
	Frame  FrameConfig  `toml:"frame"`
	Window WindowConfig `toml:"window"`
}

// InputConfig tunes the pointer router.
type InputConfig struct {
	// Longest gap between presses that still counts as a multi-click
	MultiClickMS  int    `toml:"multi_click_ms"`
	DefaultCursor Cursor `toml:"default_cursor"`
}

// ScrollConfig tunes scrollbars and wheel scrolling.
type ScrollConfig struct {
	WheelStepPx float64 `toml:"wheel_step_px"`
	// Delay before a held track press starts repeating
	HoldDelayMS int `toml:"hold_delay_ms"`
	// Interval between repeats while the track press is held
	HoldRepeatMS int `toml:"hold_repeat_ms"`
	// Wheel scroll easing duration; 0 jumps immediately
	AnimateMS int `toml:"animate_ms"`
}

type FrameConfig struct {
	Debug bool `toml:"debug"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			MultiClickMS:  250,
			DefaultCursor: CursorDefault,
		},
		Scroll: ScrollConfig{
			WheelStepPx:  40,
			HoldDelayMS:  300,
			HoldRepeatMS: 50,
			AnimateMS:    120,
		},
		Window: WindowConfig{
			Title:     "glimpse",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
	}
}

// ParseConfig overlays a TOML document on the defaults. Keys the document
// omits keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("glimpse: failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("glimpse: failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("glimpse: failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("glimpse: failed to write %s: %w", path, err)
	}
	return nil
}

// RouterConfig converts the input section into router settings.
func (c InputConfig) RouterConfig() RouterConfig {
	return RouterConfig{
		MultiClickWindow: time.Duration(c.MultiClickMS) * time.Millisecond,
		DefaultCursor:    c.DefaultCursor,
	}
}

func (c ScrollConfig) HoldDelay() time.Duration {
	return time.Duration(c.HoldDelayMS) * time.Millisecond
}

func (c ScrollConfig) HoldRepeat() time.Duration {
	return time.Duration(c.HoldRepeatMS) * time.Millisecond
}

func (c ScrollConfig) AnimateDuration() time.Duration {
	return time.Duration(c.AnimateMS) * time.Millisecond
}
