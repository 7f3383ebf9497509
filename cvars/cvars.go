// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"gostride/cvar"
)

var (
	HostMaxFps    *cvar.Cvar
	HostTickRate  *cvar.Cvar
	HostTimeScale *cvar.Cvar

	StrideWalkSpeed    *cvar.Cvar
	StrideRunSpeed     *cvar.Cvar
	StrideCrouchSpeed  *cvar.Cvar
	StrideJumpHeight   *cvar.Cvar
	StrideGravity      *cvar.Cvar
	StrideStandHeight  *cvar.Cvar
	StrideCrouchHeight *cvar.Cvar
	StrideProbeShrink  *cvar.Cvar
	StrideStepCutoff   *cvar.Cvar

	ClientYawSpeed *cvar.Cvar

	NoSound *cvar.Cvar
	Volume  *cvar.Cvar
)

func init() {
	HostMaxFps = cvar.MustRegister("host_maxfps", "72", cvar.ARCHIVE)
	HostTickRate = cvar.MustRegister("host_tickrate", "50", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)

	StrideWalkSpeed = cvar.MustRegister("st_walkspeed", "4", cvar.NOTIFY|cvar.ARCHIVE)
	StrideRunSpeed = cvar.MustRegister("st_runspeed", "8", cvar.NOTIFY|cvar.ARCHIVE)
	StrideCrouchSpeed = cvar.MustRegister("st_crouchspeed", "2", cvar.NOTIFY|cvar.ARCHIVE)
	StrideJumpHeight = cvar.MustRegister("st_jumpheight", "1.2", cvar.NOTIFY|cvar.ARCHIVE)
	StrideGravity = cvar.MustRegister("st_gravity", "-9.81", cvar.NOTIFY|cvar.ARCHIVE)
	StrideStandHeight = cvar.MustRegister("st_standheight", "2", cvar.ARCHIVE)
	StrideCrouchHeight = cvar.MustRegister("st_crouchheight", "1", cvar.ARCHIVE)
	// how much smaller the ground probe sphere is than the collider
	StrideProbeShrink = cvar.MustRegister("st_probeshrink", "0.05", cvar.ARCHIVE)
	// squared horizontal speed below which footsteps stay silent
	StrideStepCutoff = cvar.MustRegister("st_stepcutoff", "0.1", cvar.ARCHIVE)

	ClientYawSpeed = cvar.MustRegister("cl_yawspeed", "140", cvar.ARCHIVE)

	NoSound = cvar.MustRegister("nosound", "0", cvar.NONE)
	Volume = cvar.MustRegister("volume", "0.7", cvar.ARCHIVE)
}
