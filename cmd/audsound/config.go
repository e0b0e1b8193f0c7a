// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

var errNoInput = errors.New("missing input file or url")

// Config holds the player settings.
type Config struct {
	Volume     float64 // percent
	Pan        float64 // percent, -100 (left) to 100 (right)
	Pitch      float64 // cents
	Loop       bool
	X, Y, Z    float64
	SampleRate int
	Origin     string

	// Out renders to a WAV file instead of the speaker.
	Out     string
	OutRate int
	// Seconds limits playback or rendering; 0 means the sound's duration.
	Seconds float64
	Verbose bool

	Input string
}

func DefaultConfig() *Config {
	return &Config{
		Volume:     100,
		Pitch:      0,
		SampleRate: 44100,
		OutRate:    16000,
	}
}

// LoadConfig reads the defaults from AUDSOUND_* environment variables.
// Malformed values are ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if volume := os.Getenv("AUDSOUND_VOLUME"); volume != "" {
		if val, err := strconv.ParseFloat(volume, 64); err == nil && val >= 0 {
			cfg.Volume = val
		}
	}

	if rate := os.Getenv("AUDSOUND_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if origin := os.Getenv("AUDSOUND_ORIGIN"); origin != "" {
		cfg.Origin = origin
	}

	return cfg
}

// parseArgs applies command line flags on top of cfg.
func parseArgs(cfg *Config, args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("audsound", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: audsound [flags] <input.{wav|aiff|mp3|ogg} | url>")
		fs.PrintDefaults()
	}

	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "volume in percent")
	fs.Float64Var(&cfg.Pan, "pan", cfg.Pan, "stereo pan in percent (-100 left, 100 right)")
	fs.Float64Var(&cfg.Pitch, "pitch", cfg.Pitch, "detune in cents")
	fs.BoolVar(&cfg.Loop, "loop", cfg.Loop, "loop until interrupted")
	fs.Float64Var(&cfg.X, "x", cfg.X, "position x (right)")
	fs.Float64Var(&cfg.Y, "y", cfg.Y, "position y (up)")
	fs.Float64Var(&cfg.Z, "z", cfg.Z, "position z (behind)")
	fs.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "engine sample rate")
	fs.StringVar(&cfg.Origin, "origin", cfg.Origin, "base url for relative inputs")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "write a mono 16-bit WAV here instead of playing")
	fs.IntVar(&cfg.OutRate, "out-rate", cfg.OutRate, "sample rate of the -out file")
	fs.Float64Var(&cfg.Seconds, "seconds", cfg.Seconds, "seconds to play or render (0 = whole sound)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errNoInput
	}
	cfg.Input = fs.Arg(0)

	return cfg, nil
}
