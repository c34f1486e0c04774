package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/pulse-heart/internal/audio"
	"github.com/iburimskiy/pulse-heart/internal/config"
	"github.com/iburimskiy/pulse-heart/internal/game"
	"github.com/iburimskiy/pulse-heart/internal/logger"
	"github.com/iburimskiy/pulse-heart/internal/scene"
)

var CLI struct {
	Audio     string `arg:"" optional:"" name:"audio" help:"Audio file to play and react to (wav, mp3, flac)." type:"existingfile"`
	Profile   string `help:"Visualization profile (${profiles})." enum:"${profiles}" default:"heart" short:"p"`
	Image     string `help:"PNG image to show instead of the heart." type:"existingfile"`
	Width     int    `help:"Initial window width." default:"${width}"`
	Height    int    `help:"Initial window height." default:"${height}"`
	LogLevel  string `help:"Log level (debug, info, warn, error). Defaults to $PULSEHEART_LOG_LEVEL or info."`
	LogFormat string `help:"Log format." enum:"text,json" default:"text"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("pulse-heart"),
		kong.Description("A heart that pulses with the music. Press E for keys."),
		kong.Vars{
			"profiles": strings.Join(config.ProfileNames(), ","),
			"width":    strconv.Itoa(config.WindowWidth),
			"height":   strconv.Itoa(config.WindowHeight),
		},
		kong.UsageOnError(),
	)

	cfg := logger.DefaultConfig()
	cfg.Format = CLI.LogFormat
	if CLI.LogLevel != "" {
		cfg.Level = logger.ParseLevel(CLI.LogLevel, cfg.Level)
	}
	log := logger.New(cfg)

	if err := run(log); err != nil {
		log.Error("pulse-heart stopped", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	profile, err := config.ProfileByName(CLI.Profile)
	if err != nil {
		return err
	}

	var input audio.Input = audio.Silence{}
	if CLI.Audio != "" {
		player, err := audio.OpenPlayer(CLI.Audio, profile.Smoothing, profile.MicGain, log)
		if err != nil {
			return fmt.Errorf("opening audio: %w", err)
		}
		defer player.Close()
		input = player
	} else {
		log.Info("no audio file given, the heart will rest")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := scene.New(profile, input, float64(CLI.Width), float64(CLI.Height), rng, log)

	if CLI.Image != "" {
		if err := s.Upload(game.LoadFile(CLI.Image)); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(CLI.Width, CLI.Height)
	ebiten.SetWindowTitle("pulse-heart")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	// The translucent background wash leaves trails only if frames persist.
	ebiten.SetScreenClearedEveryFrame(false)

	log.Info("starting", "profile", profile.Name, "width", CLI.Width, "height", CLI.Height)
	if err := ebiten.RunGame(game.New(s, CLI.Width, CLI.Height, log)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
