// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"testing"

	"gostride/cvars"
)

func TestStepSize(t *testing.T) {
	cvars.HostTickRate.SetValue(50)
	defer cvars.HostTickRate.Reset()
	if got := StepSize(); got != 0.02 {
		t.Errorf("step size: got %v, want 0.02", got)
	}
	cvars.HostTickRate.SetValue(1)
	if got := StepSize(); got != 0.1 {
		t.Errorf("tickrate clamps at 10: got %v, want 0.1", got)
	}
	cvars.HostTickRate.SetValue(100000)
	if got := StepSize(); got != 0.005 {
		t.Errorf("tickrate clamps at 200: got %v, want 0.005", got)
	}
}

func TestFixedSteps(t *testing.T) {
	var h GameTime
	h.frameTime = 0.05
	if n := h.FixedSteps(0.02); n != 2 {
		t.Errorf("steps: got %d, want 2", n)
	}
	// the 0.01 remainder carries over
	h.frameTime = 0.03
	if n := h.FixedSteps(0.02); n != 2 {
		t.Errorf("steps with carry: got %d, want 2", n)
	}
	h.frameTime = 0.001
	if n := h.FixedSteps(0.02); n != 0 {
		t.Errorf("short frame: got %d, want 0", n)
	}
}

func TestFixedStepsBounded(t *testing.T) {
	var h GameTime
	h.frameTime = 1000
	if n := h.FixedSteps(0.02); n != 25 {
		t.Errorf("stall bound: got %d, want 25", n)
	}
}

func TestReset(t *testing.T) {
	var h GameTime
	h.frameTime = 0.05
	h.FixedSteps(0.02)
	h.Reset()
	if h.FrameTime() != 0.1 {
		t.Errorf("frame time after reset: got %v, want 0.1", h.FrameTime())
	}
	if h.accumulator != 0 {
		t.Errorf("accumulator after reset: got %v, want 0", h.accumulator)
	}
}
