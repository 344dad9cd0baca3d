package engine

import "github.com/milk9111/shroomydoomy/layer"

// CanonicalOrder is the bottom to top order of the layer stack. Overlays
// start at MainMenu.
var CanonicalOrder = []string{
	layer.NameUtils,
	layer.NameBackground,
	layer.NameEnvironment,
	layer.NameGame,
	layer.NameUI,
	layer.NameFont,
	layer.NameMainMenu,
	layer.NameStory,
	layer.NameEndMenu,
	layer.NamePauseMenu,
	layer.NameFPS,
	layer.NameChestOverlay,
}

// LayerBuilder returns the function that fills an empty stack with the
// canonical layer set.
func LayerBuilder(ctx *layer.Context) func(*layer.Stack) {
	return func(s *layer.Stack) {
		s.PushLayer(layer.NewUtils(ctx))
		s.PushLayer(layer.NewBackground(ctx))
		s.PushLayer(layer.NewEnvironment(ctx))
		s.PushLayer(layer.NewGame(ctx))
		s.PushLayer(layer.NewUI(ctx))
		s.PushLayer(layer.NewFont(ctx))

		s.PushOverlay(layer.NewMainMenu(ctx))
		s.PushOverlay(layer.NewStory(ctx))
		s.PushOverlay(layer.NewEndMenu(ctx))
		s.PushOverlay(layer.NewPauseMenu(ctx))
		s.PushOverlay(layer.NewFPS(ctx))
		s.PushOverlay(layer.NewChestOverlay(ctx))
	}
}
