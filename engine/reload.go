package engine

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/shroomydoomy/layer"
	"github.com/milk9111/shroomydoomy/levels"
	"go.uber.org/zap"
)

// HotReload applies an edited data file to the running game. Level files
// other than the current level are ignored.
func (e *Engine) HotReload(path string) error {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	log := e.log.With(zap.String("path", path))

	switch ext {
	case ".tengo":
		e.ReloadScript(strings.TrimSuffix(name, filepath.Ext(name)))
		log.Info("script reloaded")
		return nil
	case ".json":
	default:
		log.Debug("ignoring change")
		return nil
	}

	switch name {
	case levels.AnimationsFile:
		return e.levels.ReloadAnimations()
	case levels.CommonFile:
		_, err := e.factory.ReloadGameObject(levels.CommonFile)
		log.Info("common objects reloaded")
		return err
	case e.levels.GetCurrLevel().DataFile():
		rep := e.levels.ReloadCurrLevel()
		e.restoreMode()
		return rep.Err
	}
	log.Debug("change is not for the current level")
	return nil
}

// ReloadScript drops the compiled behavior and restarts every script so the
// new source is picked up.
func (e *Engine) ReloadScript(behavior string) {
	e.scripts.End()
	e.scripts.Invalidate(behavior)
	e.scripts.InitializeBehaviorComponents()
	e.scripts.Init()
}

// restoreMode shows the overlays of the current mode again after a level
// reload hid them.
func (e *Engine) restoreMode() {
	switch e.mode {
	case ModeMenu:
		e.setVisible(layer.NameMainMenu, true)
	case ModeStory:
		e.setVisible(layer.NameStory, true)
	case ModePaused:
		for _, name := range pausedLayers {
			if l, ok := e.findLayer(name); ok {
				l.UpdateOriginalScale()
				l.HideObjects()
			}
		}
		e.setVisible(layer.NamePauseMenu, true)
	case ModeEnd:
		e.setVisible(layer.NameEndMenu, true)
	}
}
