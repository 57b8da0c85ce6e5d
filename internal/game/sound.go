package game

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/sliding-scale/internal/cue"
)

// sound plays the focus cue through a mixer that stays attached to the
// speaker for the life of the window.
type sound struct {
	buf    *beep.Buffer
	mixer  *beep.Mixer
	volume *effects.Volume
	ok     bool
}

// newSound never fails: without an audio device it returns a silent sound.
func newSound(path string, muted bool, log *slog.Logger) *sound {
	s := &sound{}

	buf := cue.Synth()
	if path != "" {
		b, err := cue.Load(path)
		if err != nil {
			log.Warn("cue file unusable, using built-in blip", "path", path, "error", err)
		} else {
			buf = b
		}
	}
	s.buf = buf

	bufferSize := cue.SampleRate.N(time.Second / 20)
	if err := speaker.Init(cue.SampleRate, bufferSize); err != nil {
		log.Warn("audio disabled", "error", err)
		return s
	}

	s.mixer = &beep.Mixer{}
	s.volume = &effects.Volume{Streamer: s.mixer, Base: 2, Volume: 0, Silent: muted}
	speaker.Play(s.volume)
	s.ok = true
	return s
}

func (s *sound) play() {
	if !s.ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(cue.Play(s.buf))
	speaker.Unlock()
}

func (s *sound) toggleMute() bool {
	if !s.ok {
		return true
	}
	speaker.Lock()
	s.volume.Silent = !s.volume.Silent
	muted := s.volume.Silent
	speaker.Unlock()
	return muted
}

func (s *sound) muted() bool {
	if !s.ok {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return s.volume.Silent
}

func (s *sound) close() {
	if !s.ok {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
