// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"

	"gostride/cbuf"
	"gostride/cmd"
	cmdl "gostride/commandline"
	"gostride/conlog"
	"gostride/cvar"
	"gostride/cvars"
	"gostride/gametime"
	"gostride/input"
	"gostride/locomotion"
	"gostride/math/vec"
	"gostride/phys"
	"gostride/snd"
	"gostride/window"
)

var (
	quitChan = make(chan bool)
)

func requestQuit() {
	select {
	case <-quitChan:
	default:
		close(quitChan)
	}
}

func main() {
	flag.Parse()
	mainthread.Run(run)
}

func run() {
	if err := stride(); err != nil {
		log.Fatal(err)
	}
}

type host struct {
	time     gametime.GameTime
	world    *phys.World
	ctrl     *locomotion.Controller
	narrator *locomotion.FootstepNarrator
}

// groundLog consumes the controller's published ground flag and prints the
// takeoff and landing transitions to the console. The flag arrives once per
// fixed step, only changes are printed.
type groundLog struct {
	seen bool
	on   bool
}

func (g *groundLog) SetGround(on bool) {
	if g.seen && on == g.on {
		return
	}
	g.seen = true
	g.on = on
	if on {
		conlog.Printf("landed\n")
	} else {
		conlog.Printf("airborne\n")
	}
}

func stride() error {
	if cmdl.ConsoleDebug() {
		f, err := os.Create(filepath.Join(cmdl.BaseDirectory(), "console.log"))
		if err == nil {
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	mainthread.Call(func() {
		v := sdl.Version{}
		sdl.GetVersion(&v)
		log.Printf("Found SDL version %d.%d.%d\n", v.Major, v.Minor, v.Patch)
		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
			log.Fatalf("Couldn't init SDL: %v", err)
		}
		window.SetMode(int32(cmdl.Width()), int32(cmdl.Height()))
		if !cmdl.Windowed() {
			window.Get().SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
		}
	})
	defer mainthread.Call(func() {
		window.Shutdown()
		sdl.Quit()
	})

	cbuf.AddExecutor(func(a cmd.Arguments) (bool, error) {
		return cmd.Execute(a)
	})
	cbuf.AddExecutor(cvar.Execute)
	if err := input.Commands(); err != nil {
		return err
	}

	cbuf.InsertText("exec default.cfg\nexec stride.cfg\n")
	if err := cbuf.Execute(); err != nil {
		return err
	}

	sound := snd.InitSoundSystem(cmdl.Sound() && !cvars.NoSound.Bool())
	defer sound.Shutdown()
	sound.SetVolume(cvars.Volume.Value())
	cvars.Volume.SetCallback(func(cv *cvar.Cvar) {
		sound.SetVolume(cv.Value())
	})

	h := &host{world: phys.NewWorld()}
	h.time.Reset()
	h.narrator = footstepNarrator(sound)

	h.world.AddFloor(0, 64)
	// some scenery to probe against
	h.world.Add(phys.NewStatic(vec.Vec3{X: 4, Y: 0.5, Z: 3}, 0.5, 0.5, 0.5))
	h.world.Add(phys.NewStatic(vec.Vec3{X: -3, Y: 1, Z: 5}, 1, 1, 1))
	h.world.Add(phys.NewTrigger(vec.Vec3{Y: 1, Z: 8}, 2, 1, 2))

	body := &phys.Body{}
	collider := phys.NewCollider(body, 0.4, 0.4, cvars.StrideStandHeight.Value(), 0)
	h.world.Add(collider)
	h.ctrl = locomotion.NewController(h.world, body, collider, &groundLog{})

	conlog.Printf("======== Stride Initialized ========\n")

	for {
		select {
		case <-quitChan:
			writeConfig()
			return nil
		default:
			if !mainthread.CallVal(window.InputFocus) {
				time.Sleep(16 * time.Millisecond)
			}
			if err := h.frame(); err != nil {
				return err
			}
		}
	}
}

// footstepNarrator loads the step clips and builds the narrator. Returns nil
// when sound is off or a clip is missing, a nil narrator stays silent.
func footstepNarrator(sound *snd.System) *locomotion.FootstepNarrator {
	if sound == nil {
		return nil
	}
	walk, err := sound.Precache(filepath.Join(cmdl.BaseDirectory(), "sound", "step_walk.wav"))
	if err != nil {
		conlog.Printf("couldn't load footsteps: %v\n", err)
		return nil
	}
	run, err := sound.Precache(filepath.Join(cmdl.BaseDirectory(), "sound", "step_run.wav"))
	if err != nil {
		conlog.Printf("couldn't load footsteps: %v\n", err)
		return nil
	}
	return locomotion.NewFootstepNarrator(sound.NewLoopSource(), walk, run)
}

func pollEvents() {
	mainthread.Call(func() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch t := event.(type) {
			case *sdl.KeyboardEvent:
				input.HandleKeyboardEvent(t)
			case *sdl.QuitEvent:
				requestQuit()
			default:
			}
		}
	})
}

func (h *host) frame() error {
	pollEvents()
	if err := cbuf.Execute(); err != nil {
		return err
	}
	if !h.time.UpdateTime() {
		time.Sleep(time.Millisecond)
		return nil
	}
	h.time.FrameIncrease()

	frameTime := float32(h.time.FrameTime())
	turn := input.Left.ConsumeImpulse() - input.Right.ConsumeImpulse()
	h.ctrl.SetYaw(h.ctrl.Yaw() + turn*cvars.ClientYawSpeed.Value()*frameTime)

	in := input.Sample()
	step := gametime.StepSize()
	for i := h.time.FixedSteps(step); i > 0; i-- {
		h.ctrl.FixedStep(in, step)
		h.world.Step(step)
	}
	h.narrator.Frame(h.ctrl, in)
	return nil
}

func writeConfig() {
	path := filepath.Join(cmdl.BaseDirectory(), "stride.cfg")
	f, err := os.Create(path)
	if err != nil {
		conlog.Printf("couldn't write %v\n", path)
		return
	}
	defer f.Close()
	f.WriteString("unbindall\n")
	input.WriteBindings(f)
	cvar.WriteVariables(f)
}
