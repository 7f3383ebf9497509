// SPDX-License-Identifier: GPL-2.0-or-later

// package snd plays looping sound effects through beep. Clips are decoded
// once into memory and handed out as integer handles.
package snd

import (
	"log"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

const (
	desiredSampleRate = 44100
	desiredChannelNum = 2
)

type clip struct {
	name string
	buf  *beep.Buffer
}

type System struct {
	mixer   *beep.Mixer
	volume  *effects.Volume
	clips   []clip
	sources map[uuid.UUID]*LoopSource
}

// InitSoundSystem opens the speaker. It returns nil when sound is disabled
// or the device is unavailable, and a nil System is safe to use.
func InitSoundSystem(active bool) *System {
	if !active {
		return nil
	}
	sr := beep.SampleRate(desiredSampleRate)
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		log.Println(err)
		return nil
	}
	s := &System{
		mixer:   &beep.Mixer{},
		sources: make(map[uuid.UUID]*LoopSource),
	}
	s.volume = &effects.Volume{
		Streamer: s.mixer,
		Base:     2,
	}
	speaker.Play(s.volume)
	return s
}

// Precache loads and decodes one wav file and returns its clip handle.
func (s *System) Precache(path string) (int, error) {
	if s == nil {
		return -1, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return -1, errors.Wrapf(err, "open sound %q", path)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return -1, errors.Wrapf(err, "decode sound %q", path)
	}
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(desiredSampleRate),
		NumChannels: desiredChannelNum,
		Precision:   2,
	})
	if format.SampleRate != beep.SampleRate(desiredSampleRate) {
		buf.Append(beep.Resample(4, format.SampleRate, beep.SampleRate(desiredSampleRate), stream))
	} else {
		buf.Append(stream)
	}

	s.clips = append(s.clips, clip{name: path, buf: buf})
	return len(s.clips) - 1, nil
}

func (s *System) SetVolume(v float32) {
	if s == nil {
		return
	}
	speaker.Lock()
	if v <= 0 {
		s.volume.Silent = true
	} else {
		s.volume.Silent = false
		s.volume.Volume = float64(math32.Log2(v))
	}
	speaker.Unlock()
}

func (s *System) Shutdown() {
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
