package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ropesim/audio"
	"github.com/lixenwraith/ropesim/config"
	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/engine"
	"github.com/lixenwraith/ropesim/parameter"
)

var (
	configFlag     = flag.String("config", "", "Path to yaml config (default: search ROPESIM_CONFIG, ./ropesim.yaml, ~/.config/ropesim)")
	debugFlag      = flag.Bool("debug", false, "Write debug logs to logs/ropesim.log")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	tpsFlag        = flag.Int("tps", 0, "Simulation ticks per second (overrides config)")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective config as yaml and exit")
)

func main() {
	flag.Parse()

	cfg, path, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ropesim: %v\n", err)
		os.Exit(1)
	}

	if *dumpConfigFlag {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ropesim: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	logger, closeLog := setupLogging(*debugFlag)
	defer closeLog()
	logger.Info("starting", zap.String("config", path), zap.Int("tps", cfg.Simulation.TicksPerSecond))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	var cues cueSink
	if cfg.Sound {
		player := audio.NewCuePlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("audio initialization failed, continuing without sound", zap.Error(err))
		} else {
			defer player.Cleanup()
		}
		player.SetMuted(*muteFlag)
		cues = player
	}

	a := newApp(screen, cfg, engine.NewMonotonicTimeProvider(), cues, logger)

	events := make(chan tcell.Event, parameter.EventQueueSize)
	// Input polling goroutine; PollEvent blocks on the terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	a.run(events)
	logger.Info("exiting", zap.Uint64("ticks", a.session.Scheduler().Ticks()))
}

// loadConfig resolves the config file and applies flag overrides
func loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if *configFlag != "" {
		cfg, path, err = config.LoadFromPath(*configFlag)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, err
	}

	if *tpsFlag != 0 {
		cfg.Simulation.TicksPerSecond = *tpsFlag
		if err := cfg.Validate(); err != nil {
			return nil, path, err
		}
	}
	return cfg, path, nil
}
