package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/shapebox/audio"
	"github.com/lixenwraith/shapebox/config"
	"github.com/lixenwraith/shapebox/engine"
)

func main() {
	configPath := flag.String("config", "shapebox.toml", "path to TOML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	player, err := audio.NewPlayer(cfg.Audio.Enabled)
	if err != nil {
		// Non-fatal, the sandbox runs without sound
		logger.Warn("audio initialization failed", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	logger.Info("shapebox starting",
		zap.Int("fps", cfg.Display.FPS),
		zap.Float64("restitution", cfg.Sim.Restitution),
	)

	game := engine.New(screen, cfg, logger, player)
	if err := game.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "game loop: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the zap logger from config. The sink is a file:
// the terminal UI owns stdout
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}

	return zapCfg.Build()
}
