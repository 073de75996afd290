// Package cpu defines the CHIP-8 virtual machine and provides
// the methods needed to run it and interface with it
// for emulation.
package cpu

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jmchacon/chip8/disassemble"
	"github.com/jmchacon/chip8/memory"
	"github.com/jmchacon/chip8/opcode"
)

const (
	MEMORY_SIZE      = memory.SIZE
	PROGRAM_START    = 0x200
	MAX_PROGRAM_SIZE = MEMORY_SIZE - PROGRAM_START
	FONT_START       = 0x000
	GLYPH_SIZE       = 5

	STACK_SIZE  = 16
	N_REGISTERS = 16
	KEY_COUNT   = 16

	SCREEN_WIDTH  = 64
	SCREEN_HEIGHT = 32
	PITCH         = SCREEN_WIDTH / 8 // Bytes per video row.
	VIDEO_SIZE    = PITCH * SCREEN_HEIGHT

	VF = 0xF // Flag register for carry/borrow/collision.
)

// Status is an enumeration of the engine states visible to a host.
type Status int

const (
	CHIP_UNIMPLEMENTED Status = iota // Start of valid status enumerations.
	CHIP_IDLE                        // Constructed or hard reset with no program loaded.
	CHIP_READY                       // Program resident and steppable.
	CHIP_FAULTED                     // A fault has been recorded since the last reset.
	CHIP_MAX                         // End of status enumerations.
)

func (s Status) String() string {
	switch s {
	case CHIP_IDLE:
		return "IDLE"
	case CHIP_READY:
		return "READY"
	case CHIP_FAULTED:
		return "FAULTED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Chip is the complete CHIP-8 machine state. Registers are exported so
// tests and debuggers can poke at them directly like real hardware probes.
type Chip struct {
	V     [N_REGISTERS]uint8 // General registers V0-VF.
	I     uint16             // Index register.
	PC    uint16             // Program counter.
	SP    uint8              // Stack pointer. Between 0 and STACK_SIZE inclusive.
	Stack [STACK_SIZE]uint16 // Return addresses.
	DT    uint8              // Delay timer.
	ST    uint8              // Sound timer.
	Keys  [KEY_COUNT]bool    // Keypad state, true == down.
	Video [VIDEO_SIZE]uint8  // Packed 64x32 monochrome frame. Bit 7 is the leftmost pixel.
	Ram   memory.Bank
	// Fault is the most recent fault recorded by an instruction. It's only cleared by Reset.
	Fault error

	rand   *rand.Rand
	wrapY  bool               // If true DRW wraps rows at the bottom instead of skipping them.
	debug  bool               // If true Debug() emits output.
	loaded bool               // Whether a program has been loaded since the last hard reset.
	cycles int                // Total cycles run since power on.
	opPC   uint16             // Address the current instruction was fetched from.
	op     opcode.Instruction // Current decoded instruction.
}

// A few custom error types to distinguish why an instruction faulted.

// UnknownInstruction represents an instruction word which doesn't decode.
type UnknownInstruction struct {
	Opcode uint16
	PC     uint16
}

// Error implements the interface for error types.
func (e UnknownInstruction) Error() string {
	return fmt.Sprintf("0x%.4X at PC 0x%.4X is an unknown instruction", e.Opcode, e.PC)
}

// AddressOutOfRange represents an access outside of memory (or a call outside the program region).
type AddressOutOfRange struct {
	Addr int
}

// Error implements the interface for error types.
func (e AddressOutOfRange) Error() string {
	return fmt.Sprintf("memory address 0x%.4X out of range", e.Addr)
}

// ProgramLoad represents a ROM image which can't fit in program memory.
type ProgramLoad struct {
	Size int
	Max  int
}

// Error implements the interface for error types.
func (e ProgramLoad) Error() string {
	return fmt.Sprintf("error loading program rom: %d bytes is larger than max %d", e.Size, e.Max)
}

// StackOverflow represents a CALL with a full stack.
type StackOverflow struct {
	PC uint16
}

// Error implements the interface for error types.
func (e StackOverflow) Error() string {
	return fmt.Sprintf("stack overflow at PC 0x%.4X", e.PC)
}

// StackUnderflow represents a RET with an empty stack.
type StackUnderflow struct {
	PC uint16
}

// Error implements the interface for error types.
func (e StackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow at PC 0x%.4X", e.PC)
}

// InvalidKey represents a keypad index outside of 0-F.
type InvalidKey struct {
	Key uint8
}

// Error implements the interface for error types.
func (e InvalidKey) Error() string {
	return fmt.Sprintf("key 0x%.2X is not on the keypad", e.Key)
}

// ChipDef defines the pieces needed to setup a CHIP-8. Everything is optional.
type ChipDef struct {
	// Ram is the memory bank to use. If nil a flat memory.RAM is created.
	Ram memory.Bank
	// Rand is the source for RND. If nil one seeded from the current time is used.
	Rand *rand.Rand
	// WrapY if true wraps sprite rows past the bottom of the screen back to the top.
	// The default skips them.
	WrapY bool
	// Debug if true will emit output from Debug() calls.
	Debug bool
}

// Init will create a new CHIP-8 and return it in powered on state (hard reset, no program).
func Init(def *ChipDef) (*Chip, error) {
	if def == nil {
		return nil, errors.New("def must be non-nil")
	}
	p := &Chip{
		Ram:   def.Ram,
		rand:  def.Rand,
		wrapY: def.WrapY,
		debug: def.Debug,
	}
	if p.Ram == nil {
		p.Ram = memory.NewRAM()
	}
	if p.rand == nil {
		p.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p.PowerOn()
	return p, nil
}

// PowerOn performs a hard reset.
func (p *Chip) PowerOn() {
	p.cycles = 0
	p.Reset(true)
}

// Reset puts the chip back to its starting state. A soft reset clears registers, stack,
// timers, keys, video and any fault but keeps memory so the loaded program can rerun.
// A hard reset also wipes memory and reinstalls the font.
func (p *Chip) Reset(hard bool) {
	p.PC = PROGRAM_START
	p.I = PROGRAM_START
	p.SP = 0
	p.DT = 0
	p.ST = 0
	p.Fault = nil
	p.Stack = [STACK_SIZE]uint16{}
	p.Video = [VIDEO_SIZE]uint8{}
	p.Keys = [KEY_COUNT]bool{}
	p.V = [N_REGISTERS]uint8{}
	p.op = opcode.Instruction{}
	p.opPC = 0
	if hard {
		p.Ram.PowerOn()
		p.installFont()
		p.loaded = false
	}
}

func (p *Chip) installFont() {
	for i, b := range FONT {
		p.Ram.Write(FONT_START+uint16(i), b)
	}
}

// Load copies a ROM image into program memory. Memory is cleared (and the font
// reinstalled) first so nothing from a previous program survives. Registers aren't
// touched, callers pick the Reset they want. Returns the number of bytes loaded.
func (p *Chip) Load(b []uint8) (int, error) {
	if len(b) > MAX_PROGRAM_SIZE {
		return 0, ProgramLoad{Size: len(b), Max: MAX_PROGRAM_SIZE}
	}
	p.Ram.PowerOn()
	p.installFont()
	for i, v := range b {
		p.Ram.Write(PROGRAM_START+uint16(i), v)
	}
	p.loaded = true
	return len(b), nil
}

// PressKey marks key k (0-F) as down.
func (p *Chip) PressKey(k uint8) error {
	if int(k) >= KEY_COUNT {
		return InvalidKey{k}
	}
	p.Keys[k] = true
	return nil
}

// ReleaseKey marks key k (0-F) as up.
func (p *Chip) ReleaseKey(k uint8) error {
	if int(k) >= KEY_COUNT {
		return InvalidKey{k}
	}
	p.Keys[k] = false
	return nil
}

// Status returns the current engine state.
func (p *Chip) Status() Status {
	switch {
	case p.Fault != nil:
		return CHIP_FAULTED
	case p.loaded:
		return CHIP_READY
	}
	return CHIP_IDLE
}

// Cycles returns the number of cycles run since power on.
func (p *Chip) Cycles() int {
	return p.cycles
}

// Tick runs one CHIP-8 cycle: timers count down, the instruction at PC is fetched, PC
// advances and the instruction executes. Any fault is recorded in p.Fault and returned.
// The chip stays steppable after a fault, it's up to the caller whether to keep going.
func (p *Chip) Tick() error {
	p.cycles++
	if p.DT > 0 {
		p.DT--
	}
	if p.ST > 0 {
		p.ST--
	}

	p.opPC = p.PC
	if int(p.PC)+1 >= MEMORY_SIZE {
		p.op = opcode.Instruction{}
		return p.fault(AddressOutOfRange{Addr: int(p.PC) + 1})
	}
	p.op = opcode.Decode(opcode.Word(p.Ram.Read(p.PC), p.Ram.Read(p.PC+1)))
	p.PC += 2

	return p.fault(p.execute())
}

func (p *Chip) fault(err error) error {
	if err != nil {
		p.Fault = err
	}
	return err
}

// Debug returns a trace line for the most recent cycle if debugging was enabled in ChipDef.
func (p *Chip) Debug() string {
	if !p.debug {
		return ""
	}
	op, args := disassemble.Instruction(p.op.Word)
	return fmt.Sprintf("%.6d %.4X %.4X %-4s %-12s V: % X I: %.4X SP: %d DT: %.2X ST: %.2X\n", p.cycles, p.opPC, p.op.Word, op, args, p.V[:], p.I, p.SP, p.DT, p.ST)
}

// State is a point in time copy of everything in a Chip. It shares nothing
// with the chip so a renderer can hold onto it while the chip keeps running.
type State struct {
	Video  [VIDEO_SIZE]uint8
	Memory [MEMORY_SIZE]uint8
	V      [N_REGISTERS]uint8
	Stack  [STACK_SIZE]uint16
	Keys   [KEY_COUNT]bool
	PC     uint16
	SP     uint8
	I      uint16
	DT     uint8
	ST     uint8
	Fault  error
	Status Status
	Cycles int
}

// State returns a snapshot of the chip.
func (p *Chip) State() State {
	s := State{
		Video:  p.Video,
		V:      p.V,
		Stack:  p.Stack,
		Keys:   p.Keys,
		PC:     p.PC,
		SP:     p.SP,
		I:      p.I,
		DT:     p.DT,
		ST:     p.ST,
		Fault:  p.Fault,
		Status: p.Status(),
		Cycles: p.cycles,
	}
	for i := range s.Memory {
		s.Memory[i] = p.Ram.Read(uint16(i))
	}
	return s
}
