// Package main is the entry point for the headless landscape driver.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/character"
	"github.com/Faultbox/landscape/internal/game/world"
	"github.com/Faultbox/landscape/internal/logger"
	"github.com/Faultbox/landscape/pkg/formats"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Landscape ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	cmds, err := world.ParseScript(cfg.Simulation.Script)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	start := time.Now()
	var frame world.Frame
	if cfg.Simulation.Realtime {
		rt := realtime{interval: cfg.Simulation.TickInterval()}
		if cfg.Simulation.Watch {
			lw, err := newLevelWatcher(cfg.Level.Path)
			if err != nil {
				return fmt.Errorf("watching level: %w", err)
			}
			defer lw.Close()
			rt.changes = lw.Changed()
			rt.rebuild = func() (*world.World, error) { return buildWorld(cfg) }
		}
		w, frame, err = rt.run(ctx, w, cmds)
		if err != nil {
			return err
		}
	} else {
		frame = w.Run(cmds)
	}
	logger.Info("simulation finished",
		zap.Uint64("ticks", frame.Tick),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Printf("tick %d: hero at (%.3f, %.3f, %.3f) facing %s, %s\n",
		frame.Tick, frame.Hero.X, frame.Hero.Y, frame.Hero.Z,
		character.CompassNames[character.Compass(frame.HeroYaw)], frame.Mode)

	if path := cfg.Export.OBJPath; path != "" {
		if err := writeFile(path, w.WriteOBJ); err != nil {
			return fmt.Errorf("exporting OBJ: %w", err)
		}
		logger.Info("geometry exported", zap.String("path", path))
	}
	if path := cfg.Export.PreviewPath; path != "" {
		err := writeFile(path, func(f io.Writer) error {
			return w.WritePreview(f, cfg.Export.PreviewSize)
		})
		if err != nil {
			return fmt.Errorf("exporting preview: %w", err)
		}
		logger.Info("preview exported", zap.String("path", path))
	}
	return nil
}

// buildWorld loads the configured level and assembles a world from it.
func buildWorld(cfg *config.Config) (*world.World, error) {
	level, err := formats.ParseLevelFile(cfg.Level.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("level loaded", zap.String("path", cfg.Level.Path))

	w, err := world.New(level, cfg)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	return w, nil
}

// realtime paces a script at a fixed tick interval.
type realtime struct {
	interval time.Duration

	// changes, when set, asks for the world to be rebuilt with rebuild.
	// Commands already applied are replayed on the new world.
	changes <-chan struct{}
	rebuild func() (*world.World, error)
}

// run applies one command per tick interval until the script ends or ctx is
// cancelled. It returns the world in use at the end, which differs from w
// after a rebuild.
func (rt realtime) run(ctx context.Context, w *world.World, cmds []world.Command) (*world.World, world.Frame, error) {
	frame := w.Frame()
	if len(cmds) == 0 {
		return w, frame, nil
	}

	ticker := time.NewTicker(rt.interval)
	defer ticker.Stop()

	for i := 0; i < len(cmds); {
		select {
		case <-ctx.Done():
			logger.Warn("simulation interrupted", zap.Uint64("tick", frame.Tick))
			return w, frame, ctx.Err()
		case <-rt.changes:
			nw, err := rt.rebuild()
			if err != nil {
				logger.Warn("level reload failed, keeping current world", zap.Error(err))
				continue
			}
			w, frame = nw, nw.Run(cmds[:i])
			logger.Info("level reloaded", zap.Uint64("tick", frame.Tick))
		case <-ticker.C:
			frame = w.Step(cmds[i])
			i++
		}
	}
	return w, frame, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
