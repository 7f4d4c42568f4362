package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/calebgh/turingdeck/internal/config"
	"github.com/calebgh/turingdeck/internal/gamesvc"
	"github.com/calebgh/turingdeck/internal/session"
	"github.com/calebgh/turingdeck/internal/store"
)

// runtime bundles what every command needs: config, the open store,
// the engine, and the service client.
type runtime struct {
	cfg    config.Config
	store  *store.Store
	engine *session.Engine
	client *gamesvc.Client
	log    zerolog.Logger
}

// newRuntime loads config, opens the session store, and builds the
// engine. Callers must Close.
func newRuntime(opts *RootOptions) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.DatabasePath = opts.DBPath
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:    cfg,
		store:  st,
		engine: session.NewEngine(st, log),
		client: gamesvc.New(cfg.ServiceURL, cfg.Timeout),
		log:    log,
	}, nil
}

// resume loads the stored session into the engine, translating the
// missing-game case into player guidance.
func (r *runtime) resume() error {
	if err := r.engine.Resume(); err != nil {
		if err == session.ErrNoGame {
			return fmt.Errorf("no game in progress: start one with 'turingdeck new'")
		}
		return err
	}
	return nil
}

// Close releases the store.
func (r *runtime) Close() {
	if r.store != nil {
		_ = r.store.Close()
	}
}
