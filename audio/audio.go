// Package audio plays background music and sound effects.
package audio

// Player is the audio surface the engine and layers talk to.
type Player interface {
	// TransitionMusic fades the current track out over fadeSeconds and then
	// starts track. An empty track just fades out.
	TransitionMusic(track string, fadeSeconds float64)
	PlaySound(key string)
	StopSound(key string)
	PauseAll()
	ResumeAll()
	Update(dt float64)
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) TransitionMusic(string, float64) {}
func (Nop) PlaySound(string)                {}
func (Nop) StopSound(string)                {}
func (Nop) PauseAll()                       {}
func (Nop) ResumeAll()                      {}
func (Nop) Update(float64)                  {}
