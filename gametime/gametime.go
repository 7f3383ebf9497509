// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"time"

	"gostride/cvars"
	"gostride/math"
)

var (
	startTime = time.Now()
)

type GameTime struct {
	time        float64
	oldTime     float64
	frameTime   float64
	frameCount  int
	accumulator float64
}

func (h *GameTime) Reset() {
	h.frameTime = 0.1
	h.accumulator = 0
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) OldTime() float64   { return h.oldTime }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) FrameIncrease()     { h.frameCount++ }

// UpdateTime advances the frame clock.
// Returns false if it would exceed max fps.
func (h *GameTime) UpdateTime() bool {
	h.time = time.Since(startTime).Seconds()
	maxFPS := math.Clamp(10.0, float64(cvars.HostMaxFps.Value()), 1000.0)
	if h.time-h.oldTime < 1/maxFPS {
		return false
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time

	if cvars.HostTimeScale.Value() > 0 {
		h.frameTime *= float64(cvars.HostTimeScale.Value())
	} else {
		h.frameTime = math.Clamp(0.001, h.frameTime, 0.1)
	}
	return true
}

// StepSize is the fixed simulation interval derived from host_tickrate.
func StepSize() float32 {
	rate := math.Clamp(float32(10), cvars.HostTickRate.Value(), float32(200))
	return 1 / rate
}

// FixedSteps drains the accumulated frame time and returns how many fixed
// steps to run this frame. Bounded so a long stall cannot stall us further.
func (h *GameTime) FixedSteps(stepSize float32) int {
	h.accumulator += h.frameTime
	step := float64(stepSize)
	n := 0
	for h.accumulator >= step && n < 25 {
		h.accumulator -= step
		n++
	}
	return n
}
