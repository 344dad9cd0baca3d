package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shroomydoomy/audio"
	"github.com/milk9111/shroomydoomy/config"
	"github.com/milk9111/shroomydoomy/engine"
	"github.com/milk9111/shroomydoomy/levels"
	"github.com/milk9111/shroomydoomy/logging"
	"github.com/milk9111/shroomydoomy/prefabs"
	"github.com/milk9111/shroomydoomy/render/screen"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	levelName := flag.String("level", "", "level to edit (tutorial, level1, level2)")
	flag.Parse()

	cfg, _, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	name := cfg.Levels.Start
	if *levelName != "" {
		name = *levelName
	}
	start, err := engine.ParseLevel(name)
	if err != nil {
		logger.Fatal("bad level", zap.Error(err))
	}

	source := levels.NewSource(cfg.Editor.SaveDir)
	renderer := screen.NewRenderer(screen.NewTextureCache(logger.Named("textures")), logger.Named("screen"))
	eng, err := engine.New(engine.Options{
		Config:   cfg,
		Log:      logger,
		Renderer: renderer,
		Audio:    audio.Nop{},
		Data:     source,
		Start:    start,
		SkipMenu: true,
	})
	if err != nil {
		logger.Fatal("start engine", zap.Error(err))
	}

	var dirs []string
	for _, dir := range cfg.Editor.WatchDirs {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	var watcher *prefabs.Watcher
	if len(dirs) > 0 {
		watcher, err = prefabs.NewWatcher(dirs...)
		if err != nil {
			logger.Warn("file watching disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	clip, err := NewClipboard()
	if err != nil {
		logger.Warn("system clipboard unavailable, copies stay in the editor", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title + " - editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewEditorGame(eng, renderer, source, watcher, clip, cfg, logger.Named("editor"))
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("editor exited", zap.Error(err))
	}
}
