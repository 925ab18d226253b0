package typewriter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TYPEWRITER_CURSOR", "insert")
	t.Setenv("TYPEWRITER_REPEAT_DELAY_MS", "400")
	t.Setenv("TYPEWRITER_REPEAT_INTERVAL_MS", "50")
	t.Setenv("TYPEWRITER_SEND_TIMEOUT_MS", "20")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CursorMode != CursorInsert {
		t.Fatalf("cursor mode %s", cfg.CursorMode)
	}
	if cfg.Repeat != RepeatOnHold(400*time.Millisecond, 50*time.Millisecond) {
		t.Fatalf("repeat %s", cfg.Repeat)
	}
	if cfg.SendTimeout != 20*time.Millisecond {
		t.Fatalf("send timeout %v", cfg.SendTimeout)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Repeat.Enabled() || cfg.SendTimeout != DefaultSendTimeout || cfg.VCOMHalfPeriod != VCOMHalfPeriod {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.logger() == nil {
		t.Fatalf("no default logger")
	}
}

func TestConfigBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = "klingon"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unknown layout accepted")
	}
	t.Setenv("TYPEWRITER_CURSOR", "blinking")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("bad cursor mode accepted")
	}
}

func TestConfigFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.psf")
	if err := os.WriteFile(path, psfBytes(0, GlyphCount), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.FontPath = path
	f, err := cfg.LoadFont()
	if err != nil {
		t.Fatal(err)
	}
	if f.Glyphs[1][0] != GlyphHeight {
		t.Fatalf("font file not used")
	}
	cfg.FontPath = filepath.Join(t.TempDir(), "missing.psf")
	if _, err := cfg.LoadFont(); err == nil {
		t.Fatalf("missing font accepted")
	}
}

func TestConfigFace(t *testing.T) {
	t.Setenv("TYPEWRITER_FACE", "burn")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	f, err := cfg.LoadFont()
	if err != nil {
		t.Fatal(err)
	}
	if f.Glyph('A') != BurnFont().Glyph('A') {
		t.Fatalf("burn face not used")
	}
	cfg.Face = "gothic"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unknown face accepted")
	}
	if _, err := cfg.LoadFont(); !errors.Is(err, ErrBadFont) {
		t.Fatalf("got %v, want ErrBadFont", err)
	}
}
