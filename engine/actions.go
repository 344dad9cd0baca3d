package engine

import (
	"github.com/milk9111/shroomydoomy/layer"
	"go.uber.org/zap"
)

// Actions understood by Dispatch, besides the ones named in package layer.
const (
	ActionQuit      = "quit"
	ActionResume    = "resume"
	ActionMainMenu  = "main_menu"
	ActionNextLevel = "next_level"
	ActionFinish    = "finish"
	ActionOpenChest = "open_chest"
)

// Dispatch runs a named action coming from a button or a timed layer.
// Actions that make no sense in the current mode are ignored.
func (e *Engine) Dispatch(action string) {
	e.log.Debug("action", zap.String("action", action), zap.Stringer("mode", e.mode))
	switch action {
	case layer.ActionPlay:
		if e.mode != ModeMenu {
			return
		}
		e.setVisible(layer.NameMainMenu, false)
		e.setVisible(layer.NameStory, true)
		e.mode = ModeStory
	case layer.ActionStoryDone:
		if e.mode != ModeStory {
			return
		}
		e.mode = ModePlaying
		e.audio.TransitionMusic(e.levels.GetCurrLevel().Track(), e.cfg.Audio.FadeSeconds)
		if e.storyNext != e.levels.GetCurrLevel() {
			e.RequestTransition(e.storyNext)
		}
	case ActionQuit:
		e.quit = true
	case layer.ActionTogglePause:
		switch e.mode {
		case ModePlaying:
			e.pause()
		case ModePaused:
			e.resume()
		}
	case ActionResume:
		if e.mode == ModePaused {
			e.resume()
		}
	case ActionMainMenu:
		if e.mode == ModePaused {
			e.resume()
		}
		e.pending = &pendingTransition{to: e.levels.GetCurrLevel(), then: ModeMenu}
	case layer.ActionRestart:
		if e.mode != ModeEnd {
			return
		}
		e.setVisible(layer.NameEndMenu, false)
		e.RequestTransition(e.start)
	case ActionNextLevel:
		if e.mode != ModePlaying {
			return
		}
		if next, ok := e.levels.GetCurrLevel().Next(); ok {
			e.RequestTransition(next)
			return
		}
		e.finish()
	case ActionFinish:
		if e.mode == ModePlaying {
			e.finish()
		}
	case ActionOpenChest:
		if e.mode != ModePlaying {
			return
		}
		if l, ok := e.findLayer(layer.NameChestOverlay); ok {
			if chest, ok := l.(*layer.ChestOverlay); ok {
				chest.Open()
			}
		}
	default:
		e.log.Warn("unknown action", zap.String("action", action))
	}
}
