package audio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Voice is a single playable stream. *audio.Player from ebiten satisfies it.
type Voice interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// Loader opens the voice for a track or sound key.
type Loader func(key string) (Voice, error)

type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut
	fadeIn
)

// Mixer implements Player on top of voices produced by a Loader. Music
// transitions run as a fade-out tween followed by a fade-in tween, advanced
// by Update.
type Mixer struct {
	load        Loader
	log         *zap.Logger
	musicVolume float64
	sfxVolume   float64

	voices map[string]Voice

	current string
	pending string
	phase   fadePhase
	tween   *gween.Tween
	fade    float32
	volume  float64

	paused bool
	resume []Voice
}

func NewMixer(load Loader, musicVolume, sfxVolume float64, log *zap.Logger) *Mixer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mixer{
		load:        load,
		log:         log,
		musicVolume: musicVolume,
		sfxVolume:   sfxVolume,
		voices:      map[string]Voice{},
	}
}

func (m *Mixer) CurrentTrack() string {
	return m.current
}

func (m *Mixer) voice(key string) Voice {
	if v, ok := m.voices[key]; ok {
		return v
	}
	if m.load == nil {
		return nil
	}
	v, err := m.load(key)
	if err != nil {
		m.log.Warn("load audio", zap.String("key", key), zap.Error(err))
		return nil
	}
	m.voices[key] = v
	return v
}

func (m *Mixer) TransitionMusic(track string, fadeSeconds float64) {
	if track == m.current && m.phase == fadeNone {
		if v := m.voice(track); v != nil && !v.IsPlaying() && !m.paused {
			v.Play()
		}
		return
	}

	m.pending = track
	if m.current == "" || fadeSeconds <= 0 {
		m.stopCurrent()
		m.startPending(fadeSeconds)
		return
	}

	m.fade = float32(fadeSeconds)
	m.phase = fadeOut
	m.tween = gween.New(float32(m.volume), 0, m.fade, ease.Linear)
}

func (m *Mixer) stopCurrent() {
	if m.current == "" {
		return
	}
	if v := m.voice(m.current); v != nil {
		v.SetVolume(0)
		v.Pause()
		_ = v.Rewind()
	}
	m.current = ""
	m.volume = 0
}

func (m *Mixer) startPending(fadeSeconds float64) {
	track := m.pending
	m.pending = ""
	m.phase = fadeNone
	m.tween = nil
	if track == "" {
		return
	}
	v := m.voice(track)
	if v == nil {
		return
	}
	m.current = track
	if fadeSeconds > 0 {
		m.volume = 0
		m.phase = fadeIn
		m.tween = gween.New(0, float32(m.musicVolume), float32(fadeSeconds), ease.Linear)
	} else {
		m.volume = m.musicVolume
	}
	v.SetVolume(m.volume)
	_ = v.Rewind()
	if !m.paused {
		v.Play()
	}
	m.log.Debug("music started", zap.String("track", track))
}

// Update advances music fades and loops the current track.
func (m *Mixer) Update(dt float64) {
	if m.paused {
		return
	}
	if m.tween != nil {
		val, finished := m.tween.Update(float32(dt))
		m.volume = float64(val)
		if v := m.voice(m.current); v != nil && m.current != "" {
			v.SetVolume(m.volume)
		}
		if finished {
			switch m.phase {
			case fadeOut:
				m.stopCurrent()
				m.startPending(float64(m.fade))
			case fadeIn:
				m.phase = fadeNone
				m.tween = nil
			}
		}
		return
	}
	if m.current == "" {
		return
	}
	if v := m.voice(m.current); v != nil && !v.IsPlaying() {
		_ = v.Rewind()
		v.Play()
	}
}

func (m *Mixer) PlaySound(key string) {
	v := m.voice(key)
	if v == nil {
		return
	}
	v.SetVolume(m.sfxVolume)
	_ = v.Rewind()
	v.Play()
}

func (m *Mixer) StopSound(key string) {
	v, ok := m.voices[key]
	if !ok {
		return
	}
	v.Pause()
	_ = v.Rewind()
}

// PauseAll pauses every playing voice and remembers them for ResumeAll.
func (m *Mixer) PauseAll() {
	if m.paused {
		return
	}
	m.paused = true
	m.resume = m.resume[:0]
	for _, v := range m.voices {
		if v.IsPlaying() {
			v.Pause()
			m.resume = append(m.resume, v)
		}
	}
}

func (m *Mixer) ResumeAll() {
	if !m.paused {
		return
	}
	m.paused = false
	for _, v := range m.resume {
		v.Play()
	}
	m.resume = m.resume[:0]
}
