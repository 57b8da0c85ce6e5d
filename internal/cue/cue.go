// Package cue prepares the short sound played when the focused item changes.
package cue

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

const (
	SampleRate = beep.SampleRate(44100)

	blipFreq      = 880.0
	blipLength    = 90 * time.Millisecond
	blipDecay     = 40.0
	blipAmplitude = 0.35

	// resampling quality, as recommended by beep
	resampleQuality = 4
)

// Format is the format every cue buffer is stored in.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

var ErrUnsupported = errors.New("unsupported cue file")

// Blip returns a short decaying sine tone at sr.
func Blip(sr beep.SampleRate) beep.Streamer {
	total := sr.N(blipLength)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			v := blipAmplitude * math.Exp(-blipDecay*t) * math.Sin(2*math.Pi*blipFreq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// Synth renders Blip into a buffer.
func Synth() *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(Blip(SampleRate))
	return buf
}

// Load decodes a wav, mp3 or flac file into a buffer at SampleRate.
func Load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// Decode based on extension
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, ErrUnsupported
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	// closing the decoder closes f
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, s)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Play returns a fresh streamer over the whole buffer.
func Play(buf *beep.Buffer) beep.Streamer {
	return buf.Streamer(0, buf.Len())
}
