package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/gui"
	"github.com/lixenwraith/pong/parameter"
)

var (
	configFlag = flag.String("config", "", "YAML tuning file")
	debugFlag  = flag.Bool("debug", false, "write logs to "+parameter.LogDir+"/"+parameter.LogFileName)
	muteFlag   = flag.Bool("mute", false, "disable audio")
)

func main() {
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
		fmt.Fprintf(os.Stderr, "pong-gui: %v\n", err)
		return 1
	}

	if logFile := core.SetupLogging(parameter.LogDir, *debugFlag, cfg.Logging.Level); logFile != nil {
		defer logFile.Close()
	}
	// No terminal to restore in a window
	core.SetCrashCleanup(func() {})

	gameCfg, err := cfg.Game()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-gui: %v\n", err)
		return 1
	}

	state, err := game.New(gui.NewLoader(), parameter.WindowWidth, parameter.WindowHeight, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-gui: %v\n", err)
		return 1
	}
	logger := slog.With("match", uuid.New().String(), "frontend", "gui")
	state.SetLogger(logger)

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled && !*muteFlag {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	}
	defer sound.Cleanup()

	logger.Info("match started", "width", state.Width(), "height", state.Height())
	err = gui.Run(gui.Options{
		Title:  parameter.WindowTitle,
		Width:  parameter.WindowWidth,
		Height: parameter.WindowHeight,
		Game:   state,
		OnUpdate: func() {
			sound.React(state.Events())
		},
	})
	if err != nil && !errors.Is(err, gui.ErrStopped) {
		logger.Error("match failed", "error", err, "ticks", state.Ticks())
		fmt.Fprintf(os.Stderr, "pong-gui: %v\n", err)
		return 1
	}

	if result := state.Result(); result != "" {
		fmt.Println(result)
	} else {
		logger.Info("match quit without winner", "ticks", state.Ticks())
	}
	return 0
}
