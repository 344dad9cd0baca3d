package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/shroomydoomy/audio"
	"github.com/milk9111/shroomydoomy/config"
	"github.com/milk9111/shroomydoomy/engine"
	"github.com/milk9111/shroomydoomy/logging"
	"github.com/milk9111/shroomydoomy/render/screen"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	levelName := flag.String("level", "", "start level (tutorial, level1, level2); skips the title screen")
	debug := flag.Bool("debug", false, "enable debug logging, the FPS counter and physics outlines")
	flag.Parse()

	cfg, found, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
		cfg.Debug.Physics = true
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	if !found {
		logger.Info("config file not found, using defaults", zap.String("path", *configPath))
	}

	startName := cfg.Levels.Start
	if *levelName != "" {
		startName = *levelName
	}
	start, err := engine.ParseLevel(startName)
	if err != nil {
		logger.Fatal("bad start level", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	var player audio.Player = audio.Nop{}
	if !cfg.Audio.Muted {
		actx := ebaudio.NewContext(cfg.Audio.SampleRate)
		player = audio.NewMixer(audio.NewLoader(actx), cfg.Audio.MusicVolume, cfg.Audio.SFXVolume, logger.Named("audio"))
	}

	renderer := screen.NewRenderer(screen.NewTextureCache(logger.Named("textures")), logger.Named("screen"))

	eng, err := engine.New(engine.Options{
		Config:   cfg,
		Log:      logger,
		Renderer: renderer,
		Audio:    player,
		Start:    start,
		SkipMenu: *levelName != "",
	})
	if err != nil {
		logger.Fatal("start engine", zap.Error(err))
	}

	if err := ebiten.RunGame(NewGame(eng, renderer, cfg)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
