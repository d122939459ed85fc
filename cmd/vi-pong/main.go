package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

var (
	configPath  = flag.String("config", config.DefaultPath, "Path to TOML settings file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	seedFlag    = flag.Uint64("seed", 0, "Serve direction seed, 0 picks one from the clock")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
	writeConfig = flag.String("write-config", "", "Write the effective settings to this path and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}

	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(*debugFlag || cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %s", *configPath)

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if err := run(cfg, seed, *muteFlag); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of one session
func run(cfg *config.Config, seed uint64, mute bool) error {
	keys, err := cfg.KeyTable()
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal even if the game crashes
	core.SetCrashHandler(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	events := make(chan tcell.Event, parameter.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			events <- ev
		}
	})

	reg := status.NewRegistry()
	state := game.NewState(vmath.NewFastRand(seed))
	clock := engine.NewMonotonicTimeProvider()

	var sinks []engine.EventSink
	if cfg.Audio.Enabled && !mute {
		sm := audio.Start(cfg.Audio.Volume)
		defer sm.Cleanup()
		sinks = append(sinks, sm)
	}

	runner := engine.NewRunner(engine.RunnerConfig{
		State:         state,
		Loop:          engine.NewLoop(clock, parameter.TickInterval),
		Clock:         clock,
		Input:         input.NewKeyboard(keys, cfg.Input.HoldTimeout, events),
		Renderer:      render.NewRenderer(screen, reg, cfg.Display.ShowStats),
		Sinks:         sinks,
		Status:        reg,
		FrameInterval: cfg.FrameInterval(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runner.Run(ctx)
	log.Printf("session over after %v simulated, final score %d:%d", state.Elapsed, state.Left.Score, state.Right.Score)
	if errors.Is(err, context.Canceled) {
		log.Printf("stopped by signal")
		return nil
	}
	return err
}
