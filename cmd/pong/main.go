package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/terminal"
)

var (
	configFlag = flag.String("config", "", "YAML tuning file")
	debugFlag  = flag.Bool("debug", false, "write logs to "+parameter.LogDir+"/"+parameter.LogFileName)
	muteFlag   = flag.Bool("mute", false, "disable audio")
	holdFlag   = flag.Duration("hold", 0, "held-key window, overrides input.hold from the config")
)

func main() {
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		return 1
	}
	if *holdFlag > 0 {
		cfg.Input.Hold = *holdFlag
	}

	if logFile := core.SetupLogging(parameter.LogDir, *debugFlag, cfg.Logging.Level); logFile != nil {
		defer logFile.Close()
	}

	gameCfg, err := cfg.Game()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		return 1
	}

	// Assets load before the screen takes over so failures print cleanly
	state, err := game.New(terminal.NewLoader(), parameter.WindowWidth, parameter.WindowHeight, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		return 1
	}
	logger := slog.With("match", uuid.New().String(), "frontend", "terminal")
	state.SetLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: create screen: %v\n", err)
		return 1
	}
	keys := terminal.NewHeldKeys(engine.NewMonotonicTimeProvider(), cfg.Input.Hold)
	term := terminal.New(screen, keys, terminal.DefaultKeyMap())
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: init terminal: %v\n", err)
		return 1
	}
	core.SetCrashCleanup(term.Fini)
	// Normal exit terminal cleanup
	defer term.Fini()

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled && !*muteFlag {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	}
	defer sound.Cleanup()

	renderer := terminal.NewRenderer(screen, state.Width(), state.Height())
	driver := engine.NewDriver(keys, renderer, parameter.FrameUpdateInterval)
	driver.OnUpdate(func() {
		sound.React(state.Events())
	})

	core.Go(func() {
		term.Poll(driver.RequestQuit)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("match started", "width", state.Width(), "height", state.Height(), "hold", cfg.Input.Hold)
	runErr := driver.Run(ctx, state)

	// Screen must be gone before anything is printed to stdout
	term.Fini()

	if runErr != nil {
		logger.Error("match failed", "error", runErr, "ticks", driver.Ticks())
		fmt.Fprintf(os.Stderr, "pong: %v\n", runErr)
		return 1
	}

	if result := state.Result(); result != "" {
		fmt.Println(result)
	} else {
		logger.Info("match quit without winner", "ticks", driver.Ticks())
	}
	return 0
}
