package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/score"
	"github.com/lixenwraith/vi-snake/terminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// options holds raw flag values; only flags the user set override the config
type options struct {
	configPath string
	tick       time.Duration
	seed       int64
	noSound    bool
	logFile    string
	verbose    bool
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vi-snake",
		Short: "Terminal snake game",
		Long: `vi-snake is a single-session snake game on a 20x60 board.

Steer with arrows, WASD or hjkl. Quit with Esc, q, Ctrl-C or Ctrl-Q.
The final score and the session's top scores are printed on exit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	f.DurationVar(&opts.tick, "tick", 0, "Tick interval (default 120ms)")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = time based)")
	f.BoolVar(&opts.noSound, "no-sound", false, "Disable audio")
	f.StringVar(&opts.logFile, "log", "", "Debug log file path (empty discards logs)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug log level")

	return cmd
}

// resolveConfig layers the changed flags over defaults, YAML and env
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("tick") {
		cfg.TickInterval = opts.tick
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("no-sound") {
		cfg.Sound = !opts.noSound
	}
	if f.Changed("log") {
		cfg.LogFile = opts.logFile
	}
	if f.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setupLogger writes JSON logs to path, or discards them when path is empty
func setupLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger, err := setupLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	session := uuid.NewString()
	logger = logger.With(zap.String("session", session))

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return fmt.Errorf("%w: keys: %v", config.ErrInvalid, err)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	if err := terminal.CheckTTY(os.Stdin, os.Stdout); err != nil {
		return err
	}

	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	state, err := game.NewState(cfg.Height, cfg.Width, rng)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	// Audio is optional: failures leave a nil player, which is silent
	var player *audio.Player
	audioCfg := audio.LoadAudioConfig()
	if !cfg.Sound {
		audioCfg.Enabled = false
	}
	p := audio.NewPlayer(audioCfg)
	if err := p.Start(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			logger.Warn("audio start failed, continuing without audio", zap.Error(err))
		}
	} else {
		player = p
		defer player.Stop()
	}

	screen := terminal.New(nil)
	if err := screen.Init(cfg.Height, cfg.Width); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	logger.Info("game started",
		zap.Int64("seed", seed),
		zap.Duration("tick", cfg.TickInterval),
		zap.Int("height", cfg.Height),
		zap.Int("width", cfg.Width),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.New(screen, state, engine.Options{
		Tick:   cfg.TickInterval,
		Keys:   keys,
		Sounds: player,
		Logger: logger,
		Rand:   rng,
	})
	final := playSession(ctx, loop, screen)

	board := score.NewBoard(0)
	rank := board.Add(score.Record{Score: final.Score, At: time.Now(), Session: session})
	logger.Info("session finished", zap.Int("score", final.Score), zap.Int("rank", rank))

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	return score.Report(cmd.OutOrStdout(), final.Score, board, styled)
}

// playSession runs the loop and releases the terminal before returning
func playSession(ctx context.Context, loop *engine.Loop, screen terminal.Screen) game.State {
	defer screen.Teardown()
	return loop.Run(ctx)
}
