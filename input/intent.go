// SPDX-License-Identifier: GPL-2.0-or-later

package input

// Intent is the per-frame player movement request, not yet resolved
// into physics.
type Intent struct {
	// ForwardMove and SideMove are in [-1,1]. Positive side is to the
	// right of the facing.
	ForwardMove float32
	SideMove    float32
	Run         bool
	Crouch      bool
	Jump        bool
}

// Sample consumes the button impulses accumulated since the last call and
// returns the resulting intent. Call it once per frame.
func Sample() Intent {
	return Intent{
		ForwardMove: Forward.ConsumeImpulse() - Back.ConsumeImpulse(),
		SideMove:    MoveRight.ConsumeImpulse() - MoveLeft.ConsumeImpulse(),
		Run:         Speed.Down(),
		Crouch:      Crouch.Down(),
		Jump:        Jump.WentDown(),
	}
}
