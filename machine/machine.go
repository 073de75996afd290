// Package machine is the main logic for pulling together a CHIP-8 a host can run.
// The interpreter itself lives in cpu and rendering in display. Most of the logic
// here is pacing (how many cycles to run for the wall clock time that went by),
// the run state a host flips with its hot keys, and polling the keypad lines.
package machine

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/jmchacon/chip8/cpu"
	"github.com/jmchacon/chip8/display"
	"github.com/jmchacon/chip8/io"
)

const (
	HZ_MIN      = 1
	HZ_MAX      = 2000
	HZ_DEFAULT  = 500
	FPS_DEFAULT = 60
)

// RunState is the enumeration of host run states.
type RunState int

const (
	RUN_UNIMPLEMENTED RunState = iota // Start of valid run state enumerations.
	RUN_STOPPED                       // Host should exit.
	RUN_PAUSED                        // No cycles run.
	RUN_RUNNING                       // Cycles run at the current clock rate.
	RUN_ONE_STEP                      // Exactly one cycle runs on the next Tick and then it pauses.
	RUN_MAX                           // End of run state enumerations.
)

func (r RunState) String() string {
	switch r {
	case RUN_STOPPED:
		return "STOPPED"
	case RUN_PAUSED:
		return "PAUSED"
	case RUN_RUNNING:
		return "RUNNING"
	case RUN_ONE_STEP:
		return "ONE_STEP"
	}
	return fmt.Sprintf("RunState(%d)", int(r))
}

// Chip8 ties an interpreter to its display and keypad.
type Chip8 struct {
	cpu     *cpu.Chip
	display *display.Display
	keys    [cpu.KEY_COUNT]io.PortIn1
	rom     []uint8
	hz      int
	state   RunState
	last    time.Time // Wall clock time cycles have been accounted up to.
	trace   func(string)
}

// Chip8Def defines the pieces needed to setup a CHIP-8 machine.
type Chip8Def struct {
	// Keys are the 16 keypad lines indexed by key value (0-F). A nil entry is never pressed.
	Keys [cpu.KEY_COUNT]io.PortIn1
	// FrameDone is called on every Frame() call. See display documentation for more details.
	FrameDone func(*image.NRGBA)
	// Rom is the program to run. If nil the built in boot ROM is used.
	Rom []uint8
	// Hz is the starting clock rate. If 0 HZ_DEFAULT is used.
	Hz int
	// Rand is passed through to the interpreter for RND. Optional.
	Rand *rand.Rand
	// WrapY is passed through to the interpreter. See cpu.ChipDef.
	WrapY bool
	// Trace if non-nil is called with the interpreter debug line after every cycle.
	Trace func(string)
}

// Init returns an initialized CHIP-8 with its program loaded in the running state.
// Cycles are accounted starting from now.
func Init(def *Chip8Def, now time.Time) (*Chip8, error) {
	if def == nil {
		return nil, errors.New("def must be non-nil")
	}
	hz := def.Hz
	if hz == 0 {
		hz = HZ_DEFAULT
	}
	if hz < HZ_MIN || hz > HZ_MAX {
		return nil, fmt.Errorf("Hz %d must be between %d and %d", hz, HZ_MIN, HZ_MAX)
	}
	d, err := display.Init(&display.DisplayDef{
		FrameDone: def.FrameDone,
	})
	if err != nil {
		return nil, fmt.Errorf("can't initialize display: %v", err)
	}
	c, err := cpu.Init(&cpu.ChipDef{
		Rand:  def.Rand,
		WrapY: def.WrapY,
		Debug: def.Trace != nil,
	})
	if err != nil {
		return nil, fmt.Errorf("can't initialize cpu: %v", err)
	}
	m := &Chip8{
		cpu:     c,
		display: d,
		keys:    def.Keys,
		hz:      hz,
		trace:   def.Trace,
	}
	rom := def.Rom
	if rom == nil {
		rom = cpu.BootROM
	}
	if err := m.LoadRom(rom, now); err != nil {
		return nil, err
	}
	m.hz = hz
	return m, nil
}

// LoadRom hard resets the interpreter and loads b as the new program. Reload and
// Restart use it from then on. On error the previous program is kept.
func (m *Chip8) LoadRom(b []uint8, now time.Time) error {
	if len(b) > cpu.MAX_PROGRAM_SIZE {
		return cpu.ProgramLoad{Size: len(b), Max: cpu.MAX_PROGRAM_SIZE}
	}
	m.cpu.Reset(true)
	if _, err := m.cpu.Load(b); err != nil {
		return err
	}
	m.rom = b
	m.run(now)
	return nil
}

// Reload soft resets so the current program starts over. Memory (including anything
// the program wrote to itself) is kept.
func (m *Chip8) Reload(now time.Time) {
	m.cpu.Reset(false)
	m.run(now)
}

// Restart hard resets back to the boot ROM.
func (m *Chip8) Restart(now time.Time) {
	// BootROM always fits.
	m.LoadRom(cpu.BootROM, now)
}

func (m *Chip8) run(now time.Time) {
	m.state = RUN_RUNNING
	m.hz = HZ_DEFAULT
	m.last = now
}

// Hz returns the current clock rate.
func (m *Chip8) Hz() int {
	return m.hz
}

// RunState returns the current run state.
func (m *Chip8) RunState() RunState {
	return m.state
}

// Stop moves to RUN_STOPPED. Nothing else runs until a Reload, Restart or LoadRom.
func (m *Chip8) Stop() {
	m.state = RUN_STOPPED
}

// TogglePause flips between running and paused. Other states are left alone.
func (m *Chip8) TogglePause() {
	switch m.state {
	case RUN_RUNNING:
		m.state = RUN_PAUSED
	case RUN_PAUSED:
		m.state = RUN_RUNNING
	}
}

// Step requests a single cycle on the next Tick after which the machine pauses.
func (m *Chip8) Step() {
	if m.state != RUN_STOPPED {
		m.state = RUN_ONE_STEP
	}
}

// stepHz moves n one notch up or down. Small rates step by 1, up to 100 they
// snap to a multiple of 10 and step by 10 and past that by 100.
func stepHz(n int, up bool) int {
	step := 1
	switch {
	case n < 20:
	case n <= 100:
		n = (n / 10) * 10
		step = 10
	default:
		n = (n / 100) * 100
		step = 100
	}
	if !up {
		step = -step
	}
	n += step
	if n < HZ_MIN {
		n = HZ_MIN
	}
	if n > HZ_MAX {
		n = HZ_MAX
	}
	return n
}

// IncHz raises the clock rate one notch.
func (m *Chip8) IncHz() {
	m.hz = stepHz(m.hz, true)
}

// DecHz lowers the clock rate one notch.
func (m *Chip8) DecHz() {
	m.hz = stepHz(m.hz, false)
}

func (m *Chip8) period() time.Duration {
	return time.Second / time.Duration(m.hz)
}

// CyclesSince returns how many cycles are due at now given the run state and clock rate.
func (m *Chip8) CyclesSince(now time.Time) int {
	switch m.state {
	case RUN_ONE_STEP:
		return 1
	case RUN_RUNNING:
		elapsed := now.Sub(m.last)
		if elapsed <= 0 {
			return 0
		}
		return int(elapsed / m.period())
	}
	return 0
}

// applyKeys copies the keypad lines into the interpreter. Only done between cycles.
func (m *Chip8) applyKeys() error {
	for i, k := range m.keys {
		down := k != nil && k.Input()
		if down == m.cpu.Keys[i] {
			continue
		}
		var err error
		if down {
			err = m.cpu.PressKey(uint8(i))
		} else {
			err = m.cpu.ReleaseKey(uint8(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Tick runs however many cycles are due at now. If a cycle faults the machine pauses
// and the fault is returned. The host decides whether to resume or restart.
func (m *Chip8) Tick(now time.Time) error {
	n := m.CyclesSince(now)
	switch m.state {
	case RUN_RUNNING:
		// Keep the fractional remainder so slow frame rates don't lose cycles.
		m.last = m.last.Add(time.Duration(n) * m.period())
	case RUN_ONE_STEP:
		m.state = RUN_PAUSED
		m.last = now
	default:
		m.last = now
	}
	if n == 0 {
		return nil
	}
	if err := m.applyKeys(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		err := m.cpu.Tick()
		if m.trace != nil {
			m.trace(m.cpu.Debug())
		}
		if err != nil {
			if m.state == RUN_RUNNING {
				m.state = RUN_PAUSED
			}
			m.last = now
			return err
		}
	}
	return nil
}

// Frame renders the current video buffer and passes it to FrameDone.
func (m *Chip8) Frame() {
	s := m.cpu.State()
	m.display.Render(&s.Video)
}

// Beeping returns true while the sound timer is running.
func (m *Chip8) Beeping() bool {
	return m.cpu.ST > 0
}

// State returns a snapshot of the interpreter.
func (m *Chip8) State() cpu.State {
	return m.cpu.State()
}
