package config

import (
	"testing"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
device: /dev/ttyUSB1
baud: 230400
multiplier: 15
divider: 4
start_on_connect: true
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Device != "/dev/ttyUSB1" {
		t.Errorf("Device = %q", cfg.Device)
	}
	if cfg.Baud != 230400 {
		t.Errorf("Baud = %d", cfg.Baud)
	}
	if cfg.Multiplier != 15 || cfg.Divider != 4 {
		t.Errorf("clock settings = mul %d div %d", cfg.Multiplier, cfg.Divider)
	}
	if !cfg.StartOnConnect {
		t.Error("StartOnConnect not parsed")
	}
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Device != "/dev/ttyACM0" {
		t.Errorf("default Device = %q", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("default Baud = %d", cfg.Baud)
	}
	if cfg.ReadTimeout != 100 {
		t.Errorf("default ReadTimeout = %d", cfg.ReadTimeout)
	}
	if cfg.Multiplier != 9 || cfg.Divider != 2 {
		t.Errorf("default clock settings = mul %d div %d", cfg.Multiplier, cfg.Divider)
	}
	if cfg.StartOnConnect {
		t.Error("StartOnConnect defaulted to true")
	}
}

func TestParseConfigRejectsGarbage(t *testing.T) {
	if _, err := ParseConfig([]byte(":\n  - not yaml")); err == nil {
		t.Error("malformed YAML accepted")
	}
}
