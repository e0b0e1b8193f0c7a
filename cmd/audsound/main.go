// SPDX-License-Identifier: EPL-2.0

// Command audsound plays an audio file or URL through the speaker, or
// renders it to a mono WAV file with -out.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ik5/audsound"
	"github.com/ik5/audsound/sound"
)

const loadTimeout = 30 * time.Second

func main() {
	cfg, err := parseArgs(LoadConfig(), os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("audsound failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	s, err := sound.New(sound.FromURL(cfg.Input),
		sound.WithSampleRate(cfg.SampleRate),
		sound.WithOrigin(cfg.Origin),
		sound.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("creating sound: %w", err)
	}
	defer s.Close()

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	if err := s.Loaded(loadCtx); err != nil {
		return fmt.Errorf("loading %s: %w", cfg.Input, err)
	}

	s.SetVolume(cfg.Volume)
	s.SetPan(cfg.Pan)
	s.SetPitch(cfg.Pitch)
	s.SetLoop(cfg.Loop)
	s.SetPosition(sound.NewPosition(cfg.X, cfg.Y, cfg.Z))

	logger.Info("loaded",
		"input", cfg.Input,
		"duration", s.Duration(),
		"channels", s.NumberOfChannels(),
		"rate", s.SampleRate(),
	)

	seconds := cfg.Seconds
	if seconds <= 0 {
		seconds = s.Duration()
	}

	if cfg.Out != "" {
		return render(s, cfg.Out, seconds, cfg.OutRate)
	}
	return play(ctx, s, cfg, seconds)
}

func render(s *sound.Sound, path string, seconds float64, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := s.Play(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := audsound.Export(f, s.Context(), seconds, rate); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Println("Wrote:", path)
	return nil
}

func play(ctx context.Context, s *sound.Sound, cfg *Config, seconds float64) error {
	rate := beep.SampleRate(s.Context().SampleRate())
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	defer speaker.Close()

	done := make(chan struct{})
	var once sync.Once
	s.SetOnEnded(func(ev *sound.EndedEvent) {
		if ev != nil {
			once.Do(func() { close(done) })
		}
	})

	if err := s.Play(); err != nil {
		return fmt.Errorf("%w", err)
	}
	speaker.Play(s.Context())

	var limit <-chan time.Time
	if cfg.Seconds > 0 || !cfg.Loop {
		// leave a little room for the speaker buffer to drain
		timer := time.NewTimer(time.Duration(seconds*float64(time.Second)) + time.Second)
		defer timer.Stop()
		limit = timer.C
	}

	select {
	case <-done:
	case <-limit:
	case <-ctx.Done():
	}

	return s.Stop()
}
