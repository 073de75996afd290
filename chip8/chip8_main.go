// chip8 runs a CHIP-8 ROM in an SDL window.
//
// Keys 1234/QWER/ASDF/ZXCV map onto the 4x4 keypad. Escape quits, [ and ] change
// the clock rate, F2 restarts the current ROM, F3 goes back to the boot ROM,
// F5 pauses and F6 single steps.
package main

import (
	"flag"
	"image"
	"io/ioutil"
	"log"
	"sync"
	"time"

	"github.com/jmchacon/chip8/cpu"
	"github.com/jmchacon/chip8/io"
	"github.com/jmchacon/chip8/machine"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

var (
	debug = flag.Bool("debug", false, "If true will emit a trace line for every cycle")
	rom   = flag.String("rom", "", "Path to ROM image to load. If empty the boot ROM runs")
	hz    = flag.Int("hz", machine.HZ_DEFAULT, "Starting clock rate in cycles per second")
	scale = flag.Int("scale", 10, "Window pixels per CHIP-8 pixel")
	wrapY = flag.Bool("wrap_y", false, "If true sprites wrap off the bottom of the screen instead of clipping")
)

// keymap maps host keys onto keypad values.
var keymap = map[sdl.Keycode]int{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xC,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xD,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xE,
	sdl.K_z: 0xA, sdl.K_x: 0x0, sdl.K_c: 0xB, sdl.K_v: 0xF,
}

var window *sdl.Window
var surface *sdl.Surface

func main() {
	flag.Parse()
	if *scale < 1 {
		log.Fatalf("Invalid scale %d", *scale)
	}

	var b []uint8
	if *rom != "" {
		var err error
		b, err = ioutil.ReadFile(*rom)
		if err != nil {
			log.Fatalf("Can't load rom: %v from path: %s", err, *rom)
		}
		if len(b) > cpu.MAX_PROGRAM_SIZE {
			log.Fatalf("ROM %s is %d bytes, max is %d", *rom, len(b), cpu.MAX_PROGRAM_SIZE)
		}
	}

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}

			var err error
			window, err = sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(cpu.SCREEN_WIDTH**scale), int32(cpu.SCREEN_HEIGHT**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("Can't get window surface: %v", err)
			}
			wg.Done()
		})
		wg.Wait()
		defer func() {
			sdl.Do(func() {
				window.Destroy()
				sdl.Quit()
			})
		}()

		var keys [cpu.KEY_COUNT]io.PortIn1
		buttons := make([]*io.Button, cpu.KEY_COUNT)
		for i := range keys {
			buttons[i] = &io.Button{}
			keys[i] = buttons[i]
		}

		var trace func(string)
		if *debug {
			trace = func(s string) {
				log.Print(s)
			}
		}

		m, err := machine.Init(&machine.Chip8Def{
			Keys: keys,
			FrameDone: func(i *image.NRGBA) {
				sdl.Do(func() {
					draw.NearestNeighbor.Scale(surface, surface.Bounds(), i, i.Bounds(), draw.Src, nil)
					window.UpdateSurface()
				})
			},
			Rom:   b,
			Hz:    *hz,
			WrapY: *wrapY,
			Trace: trace,
		}, time.Now())
		if err != nil {
			log.Fatalf("Can't init CHIP-8: %v", err)
		}

		frame := time.NewTicker(time.Second / machine.FPS_DEFAULT)
		defer frame.Stop()
		for now := range frame.C {
			sdl.Do(func() {
				for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
					switch e := ev.(type) {
					case *sdl.QuitEvent:
						m.Stop()
					case *sdl.KeyboardEvent:
						handleKey(m, buttons, e, now)
					}
				}
			})
			if m.RunState() == machine.RUN_STOPPED {
				return
			}
			if err := m.Tick(now); err != nil {
				log.Printf("Paused on fault: %v", err)
			}
			m.Frame()
		}
	})
}

func handleKey(m *machine.Chip8, buttons []*io.Button, e *sdl.KeyboardEvent, now time.Time) {
	down := e.Type == sdl.KEYDOWN
	if k, ok := keymap[e.Keysym.Sym]; ok {
		buttons[k].Down = down
		return
	}
	if !down || e.Repeat != 0 {
		return
	}
	switch e.Keysym.Sym {
	case sdl.K_ESCAPE:
		m.Stop()
	case sdl.K_LEFTBRACKET:
		m.DecHz()
		log.Printf("Clock %d Hz", m.Hz())
	case sdl.K_RIGHTBRACKET:
		m.IncHz()
		log.Printf("Clock %d Hz", m.Hz())
	case sdl.K_F2:
		m.Reload(now)
		log.Print("Reloaded")
	case sdl.K_F3:
		m.Restart(now)
		log.Print("Restarted")
	case sdl.K_F5:
		m.TogglePause()
		log.Print(m.RunState())
	case sdl.K_F6:
		m.Step()
	}
}
