package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"ringrace/internal/config"
	"ringrace/internal/game"
	"ringrace/internal/headless"
	"ringrace/internal/logging"
	"ringrace/internal/race"
	"ringrace/internal/term"
)

const (
	frontendDesktop  = "desktop"
	frontendTerminal = "terminal"
	frontendHeadless = "headless"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ringrace: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	frontend := flag.String("frontend", "", "desktop, terminal or headless (overrides config)")
	seed := flag.Uint64("seed", 0, "simulation seed, 0 uses the config or the clock")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		return err
	}
	if *frontend == "" {
		*frontend = config.GetString("frontend")
	}
	if *seed == 0 {
		*seed = config.GetSeed()
	}

	log, closeLog, err := setupLogging(*frontend)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics, err := race.NewMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}
	tuning := config.GetTuning()
	loop := race.NewLoop(tuning, *seed, log, metrics)
	log.Info().
		Str("frontend", *frontend).
		Uint64("seed", *seed).
		Float64("baseSpeed", tuning.BaseSpeed).
		Msg("starting")

	switch *frontend {
	case frontendDesktop:
		err = game.RunDesktop(ctx, loop, game.Options{
			Window: config.GetWindowConfig(),
			Audio:  config.GetAudioConfig(),
			Seed:   *seed,
		}, log)
	case frontendTerminal:
		err = runTerminal(ctx, loop, log)
	case frontendHeadless:
		err = runHeadless(ctx, loop, log)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontend)
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
	}
	return err
}

// setupLogging sends console output to stderr except for the terminal
// frontend, which owns the tty and always logs to a file instead.
func setupLogging(frontend string) (zerolog.Logger, func(), error) {
	lc := config.GetLoggingConfig()
	opts := logging.Options{Level: lc.Level}
	if frontend != frontendTerminal {
		opts.Console = os.Stderr
	}

	var file *os.File
	if lc.ToFile || frontend == frontendTerminal {
		f, err := logging.OpenLogFile(lc.LogsDir, "ringrace", time.Now())
		if err != nil {
			return zerolog.Nop(), func() {}, err
		}
		file = f
		opts.File = f
	}
	if lc.GraylogEnabled {
		opts.GraylogAddress = lc.GraylogAddress
	}

	log, closer, err := logging.Setup(opts)
	cleanup := func() {
		_ = closer()
		if file != nil {
			_ = file.Close()
		}
	}
	if err != nil {
		cleanup()
		return zerolog.Nop(), func() {}, err
	}
	return log, cleanup, nil
}

func runTerminal(ctx context.Context, loop *race.Loop, log zerolog.Logger) error {
	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	if ac := config.GetAudioConfig(); ac.Enabled {
		sounds := term.NewSounds(ac.Volume)
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			defer sounds.Close()
			sounds.Subscribe(loop.Bus)
		}
	}

	return term.New(screen, loop, log).Run(ctx)
}

func runHeadless(ctx context.Context, loop *race.Loop, log zerolog.Logger) error {
	hc := config.GetHeadlessConfig()
	rep, err := headless.Run(ctx, loop, headless.DefaultAutopilot(), headless.Options{
		Step:      hc.Step,
		MaxFrames: hc.MaxFrames,
		Resets:    hc.Resets,
	}, log)
	if errors.Is(err, headless.ErrFrameLimit) {
		log.Warn().Int("frames", rep.Frames).Msg("frame limit reached before game over")
		err = nil
	}

	for i, r := range rep.Results {
		log.Info().
			Int("run", i+1).
			Int("score", r.Score).
			Int("rank", r.Rank).
			Int("field", r.Field).
			Float64("elapsed", r.Elapsed).
			Msg("result")
	}
	log.Info().
		Int("frames", rep.Frames).
		Int("maxLive", rep.MaxLive).
		Int("boundViolations", rep.BoundViolations).
		Msg("headless run finished")
	if rep.BoundViolations > 0 {
		return fmt.Errorf("traffic exceeded its spawn bound on %d frames", rep.BoundViolations)
	}
	return err
}
