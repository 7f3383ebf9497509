// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/google/uuid"
)

// LoopSource loops one clip and can be paused without losing its position.
// Assigning a clip restarts playback from its beginning.
type LoopSource struct {
	sys     *System
	id      uuid.UUID
	ctrl    *beep.Ctrl
	clip    int
	playing bool
}

func (s *System) NewLoopSource() *LoopSource {
	if s == nil {
		return nil
	}
	l := &LoopSource{
		sys:  s,
		id:   uuid.New(),
		ctrl: &beep.Ctrl{Paused: true},
		clip: -1,
	}
	speaker.Lock()
	s.mixer.Add(l.ctrl)
	speaker.Unlock()
	s.sources[l.id] = l
	return l
}

func (l *LoopSource) Playing() bool {
	return l != nil && l.playing
}

func (l *LoopSource) Play() {
	if l == nil || l.playing {
		return
	}
	speaker.Lock()
	l.ctrl.Paused = false
	speaker.Unlock()
	l.playing = true
}

// Pause keeps the stream position so a later Play resumes mid clip.
func (l *LoopSource) Pause() {
	if l == nil || !l.playing {
		return
	}
	speaker.Lock()
	l.ctrl.Paused = true
	speaker.Unlock()
	l.playing = false
}

func (l *LoopSource) Clip() int {
	if l == nil {
		return -1
	}
	return l.clip
}

func (l *LoopSource) SetClip(clip int) {
	if l == nil || l.sys == nil {
		return
	}
	if clip < 0 || clip >= len(l.sys.clips) {
		return
	}
	buf := l.sys.clips[clip].buf
	streamer := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	speaker.Lock()
	l.ctrl.Streamer = streamer
	speaker.Unlock()
	l.clip = clip
}

func (l *LoopSource) Close() {
	if l == nil || l.sys == nil {
		return
	}
	speaker.Lock()
	l.ctrl.Paused = true
	l.ctrl.Streamer = nil
	speaker.Unlock()
	delete(l.sys.sources, l.id)
}
