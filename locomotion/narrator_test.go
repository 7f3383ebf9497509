// SPDX-License-Identifier: GPL-2.0-or-later

package locomotion

import (
	"testing"

	"gostride/input"
	"gostride/phys"
)

const (
	testWalkClip = 1
	testRunClip  = 2
)

type fakeSource struct {
	playing  bool
	clip     int
	setCalls int
	pauses   int
}

func (f *fakeSource) Playing() bool { return f.playing }
func (f *fakeSource) Play()         { f.playing = true }
func (f *fakeSource) Pause()        { f.playing = false; f.pauses++ }
func (f *fakeSource) Clip() int     { return f.clip }
func (f *fakeSource) SetClip(c int) { f.clip = c; f.setCalls++ }

func narratorFixture(t *testing.T) (*Controller, *phys.Body, *fakeSource, *FootstepNarrator) {
	t.Helper()
	c, b, _, _ := testController(t)
	src := &fakeSource{}
	n := NewFootstepNarrator(src, testWalkClip, testRunClip)
	return c, b, src, n
}

func TestFootstepsPlayWhileWalking(t *testing.T) {
	c, _, src, n := narratorFixture(t)
	in := input.Intent{ForwardMove: 1}
	c.FixedStep(in, dt)

	n.Frame(c, in)
	if !src.playing {
		t.Fatalf("footsteps silent while walking on the ground")
	}
	if src.clip != testWalkClip {
		t.Errorf("clip = %v, want walk clip", src.clip)
	}
}

func TestFootstepsSelectRunClip(t *testing.T) {
	c, _, src, n := narratorFixture(t)
	in := input.Intent{ForwardMove: 1, Run: true}
	c.FixedStep(in, dt)

	n.Frame(c, in)
	if src.clip != testRunClip {
		t.Errorf("clip = %v, want run clip", src.clip)
	}

	// dropping the run intent switches back to the walk clip
	in.Run = false
	c.FixedStep(in, dt)
	n.Frame(c, in)
	if src.clip != testWalkClip {
		t.Errorf("clip = %v, want walk clip after run released", src.clip)
	}
}

func TestFootstepsDoNotRestartEveryFrame(t *testing.T) {
	c, _, src, n := narratorFixture(t)
	in := input.Intent{ForwardMove: 1}
	c.FixedStep(in, dt)

	for i := 0; i < 5; i++ {
		n.Frame(c, in)
	}
	if src.setCalls != 1 {
		t.Errorf("clip assigned %d times over stable frames, want 1", src.setCalls)
	}
	if !src.playing {
		t.Errorf("footsteps not playing")
	}
}

func TestFootstepsPauseWhenStopped(t *testing.T) {
	c, _, src, n := narratorFixture(t)
	moving := input.Intent{ForwardMove: 1}
	c.FixedStep(moving, dt)
	n.Frame(c, moving)

	idle := input.Intent{}
	c.FixedStep(idle, dt)
	n.Frame(c, idle)
	if src.playing {
		t.Errorf("footsteps still playing while standing still")
	}
	if src.pauses != 1 {
		t.Errorf("pauses = %d, want 1", src.pauses)
	}

	// staying idle must not pause again
	n.Frame(c, idle)
	if src.pauses != 1 {
		t.Errorf("redundant pause on an already paused source")
	}
}

func TestFootstepsSilentAirborne(t *testing.T) {
	c, b, src, n := narratorFixture(t)
	in := input.Intent{ForwardMove: 1}
	c.FixedStep(in, dt)
	n.Frame(c, in)

	b.Position.Y = 5
	c.FixedStep(in, dt)
	n.Frame(c, in)
	if src.playing {
		t.Errorf("footsteps audible while airborne")
	}
}

func TestFootstepsSilentCrouched(t *testing.T) {
	c, _, src, n := narratorFixture(t)
	in := input.Intent{ForwardMove: 1, Crouch: true}
	c.FixedStep(in, dt)
	n.Frame(c, in)
	if src.playing {
		t.Errorf("footsteps audible while crouching")
	}
}

func TestNilNarratorIsSafe(t *testing.T) {
	c, _, _, _ := testController(t)
	var n *FootstepNarrator
	n.Frame(c, input.Intent{})
}
