// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"io"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AUDSOUND_VOLUME", "")
	t.Setenv("AUDSOUND_SAMPLE_RATE", "")
	t.Setenv("AUDSOUND_ORIGIN", "")

	cfg := LoadConfig()
	if cfg.Volume != 100 || cfg.SampleRate != 44100 || cfg.Origin != "" {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("AUDSOUND_VOLUME", "35")
	t.Setenv("AUDSOUND_SAMPLE_RATE", "48000")
	t.Setenv("AUDSOUND_ORIGIN", "https://cdn.example.com")

	cfg := LoadConfig()
	if cfg.Volume != 35 {
		t.Errorf("Volume = %v, want 35", cfg.Volume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %v, want 48000", cfg.SampleRate)
	}
	if cfg.Origin != "https://cdn.example.com" {
		t.Errorf("Origin = %q", cfg.Origin)
	}
}

func TestLoadConfig_IgnoresMalformed(t *testing.T) {
	t.Setenv("AUDSOUND_VOLUME", "loud")
	t.Setenv("AUDSOUND_SAMPLE_RATE", "-1")
	t.Setenv("AUDSOUND_ORIGIN", "")

	cfg := LoadConfig()
	if cfg.Volume != 100 || cfg.SampleRate != 44100 {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	cfg, err := parseArgs(DefaultConfig(), []string{"-volume", "20", "-pan", "-50", "-loop", "-out", "x.wav", "in.ogg"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if cfg.Volume != 20 || cfg.Pan != -50 || !cfg.Loop || cfg.Out != "x.wav" || cfg.Input != "in.ogg" {
		t.Errorf("parseArgs() = %+v", cfg)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want default 44100", cfg.SampleRate)
	}
}

func TestParseArgs_MissingInput(t *testing.T) {
	t.Parallel()

	if _, err := parseArgs(DefaultConfig(), nil, io.Discard); !errors.Is(err, errNoInput) {
		t.Errorf("parseArgs() error = %v, want errNoInput", err)
	}
	if _, err := parseArgs(DefaultConfig(), []string{"-bogus", "in.wav"}, io.Discard); err == nil {
		t.Error("parseArgs() accepted an unknown flag")
	}
}
