package typewriter

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xyproto/env/v2"
)

// Config collects the settings of a device and its pipeline.
type Config struct {
	// Layout names an entry in Layouts.
	Layout string
	// FontPath is a PSF1 font. Empty means the built in face named by Face.
	FontPath string
	// Face names an entry in Faces.
	Face string
	// CursorMode is the cursor drawn at the insertion point.
	CursorMode CursorMode
	// SendTimeout bounds how long the scanner waits on a full event channel.
	SendTimeout time.Duration
	// Repeat is the held key policy.
	Repeat RepeatPolicy
	// VCOMHalfPeriod is the VCOM flip interval. Zero disables the heartbeat.
	VCOMHalfPeriod time.Duration
	// TTY is the terminal read by the TTY scanner.
	TTY string

	Logger  *log.Logger
	Verbose bool
}

// DefaultConfig returns the settings of the shipped device.
func DefaultConfig() Config {
	return Config{
		Layout:         "us",
		Face:           "basic",
		CursorMode:     CursorNormal,
		SendTimeout:    DefaultSendTimeout,
		Repeat:         RepeatOneShot,
		VCOMHalfPeriod: VCOMHalfPeriod,
		TTY:            "/dev/tty",
	}
}

// ConfigFromEnv returns DefaultConfig with TYPEWRITER_* environment variables applied.
// Durations are given in milliseconds.
func ConfigFromEnv() (Config, error) {
	env.Load()
	cfg := DefaultConfig()
	cfg.Layout = env.Str("TYPEWRITER_LAYOUT", cfg.Layout)
	cfg.FontPath = env.Str("TYPEWRITER_FONT", cfg.FontPath)
	cfg.Face = env.Str("TYPEWRITER_FACE", cfg.Face)
	cfg.TTY = env.Str("TYPEWRITER_TTY", cfg.TTY)
	cfg.Verbose = env.Bool("TYPEWRITER_VERBOSE")
	cfg.SendTimeout = millis("TYPEWRITER_SEND_TIMEOUT_MS", cfg.SendTimeout)
	cfg.VCOMHalfPeriod = millis("TYPEWRITER_VCOM_MS", cfg.VCOMHalfPeriod)
	cfg.Repeat = RepeatOnHold(
		millis("TYPEWRITER_REPEAT_DELAY_MS", cfg.Repeat.Delay),
		millis("TYPEWRITER_REPEAT_INTERVAL_MS", cfg.Repeat.Interval),
	)
	if env.Has("TYPEWRITER_CURSOR") {
		mode, err := ParseCursorMode(env.Str("TYPEWRITER_CURSOR"))
		if err != nil {
			return cfg, err
		}
		cfg.CursorMode = mode
	}
	return cfg, cfg.Validate()
}

func millis(name string, def time.Duration) time.Duration {
	return time.Duration(env.Int(name, int(def/time.Millisecond))) * time.Millisecond
}

// Validate checks that the named layout exists and the timings make sense.
func (cfg Config) Validate() error {
	if _, ok := Layouts[cfg.Layout]; !ok {
		return fmt.Errorf("unknown layout %q", cfg.Layout)
	}
	if _, ok := Faces[cfg.Face]; !ok && cfg.FontPath == "" {
		return fmt.Errorf("unknown font face %q", cfg.Face)
	}
	if cfg.SendTimeout < 0 || cfg.VCOMHalfPeriod < 0 {
		return fmt.Errorf("negative timeout in config")
	}
	if cfg.Repeat.Delay < 0 || cfg.Repeat.Interval < 0 {
		return fmt.Errorf("negative repeat timing %v", cfg.Repeat)
	}
	return nil
}

// LoadLayout returns the layout named by cfg.Layout.
func (cfg Config) LoadLayout() (*Layout, error) {
	newLayout, ok := Layouts[cfg.Layout]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", cfg.Layout)
	}
	return newLayout(), nil
}

// LoadFont reads cfg.FontPath, or returns the built in face named by cfg.Face.
func (cfg Config) LoadFont() (*Font, error) {
	if cfg.FontPath == "" {
		newFace, ok := Faces[cfg.Face]
		if !ok {
			return nil, fmt.Errorf("%w: unknown face %q", ErrBadFont, cfg.Face)
		}
		return newFace(), nil
	}
	f, err := os.Open(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFont, err)
	}
	defer f.Close()
	font, err := LoadPSF(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.FontPath, err)
	}
	return font, nil
}

func (cfg Config) logger() *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return log.New(os.Stderr, "typewriter: ", log.LstdFlags)
}
