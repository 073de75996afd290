// Package opcode decodes 16 bit CHIP-8 instruction words into a tagged
// operation plus the operand fields extracted from the word. It's shared
// by the cpu (for execution) and disassemble (for listings) so both agree
// on what any given word means.
package opcode

// Op is the enumeration of decoded CHIP-8 operations.
type Op int

const (
	OP_UNKNOWN  Op = iota // No table entry matched.
	OP_CLS                // 00E0 - clear the display.
	OP_RET                // 00EE - return from subroutine.
	OP_JP                 // 1nnn - jump to nnn.
	OP_CALL               // 2nnn - call subroutine at nnn.
	OP_SE_BYTE            // 3xkk - skip if Vx == kk.
	OP_SNE_BYTE           // 4xkk - skip if Vx != kk.
	OP_SE_REG             // 5xy0 - skip if Vx == Vy.
	OP_LD_BYTE            // 6xkk - Vx = kk.
	OP_ADD_BYTE           // 7xkk - Vx += kk, no flag.
	OP_LD_REG             // 8xy0 - Vx = Vy.
	OP_OR                 // 8xy1 - Vx |= Vy.
	OP_AND                // 8xy2 - Vx &= Vy.
	OP_XOR                // 8xy3 - Vx ^= Vy.
	OP_ADD_REG            // 8xy4 - Vx += Vy, VF = carry.
	OP_SUB                // 8xy5 - Vx -= Vy, VF = not borrow.
	OP_SHR                // 8xy6 - Vx >>= 1, VF = dropped bit.
	OP_SUBN               // 8xy7 - Vx = Vy - Vx, VF = not borrow.
	OP_SHL                // 8xyE - Vx <<= 1, VF = dropped bit.
	OP_SNE_REG            // 9xy0 - skip if Vx != Vy.
	OP_LD_I               // Annn - I = nnn.
	OP_JP_V0              // Bnnn - jump to nnn + V0.
	OP_RND                // Cxkk - Vx = random & kk.
	OP_DRW                // Dxyn - draw n byte sprite at (Vx, Vy).
	OP_SKP                // Ex9E - skip if key Vx is down.
	OP_SKNP               // ExA1 - skip if key Vx is up.
	OP_LD_V_DT            // Fx07 - Vx = DT.
	OP_LD_KEY             // Fx0A - wait for a key and store it in Vx.
	OP_LD_DT_V            // Fx15 - DT = Vx.
	OP_LD_ST_V            // Fx18 - ST = Vx.
	OP_ADD_I              // Fx1E - I += Vx.
	OP_FONT               // Fx29 - I = glyph address for Vx.
	OP_BCD                // Fx33 - decimal digits of Vx at I, I+1, I+2.
	OP_SAVE               // Fx55 - store V0..Vx at I.
	OP_RESTORE            // Fx65 - load V0..Vx from I.
	OP_MAX                // End of op enumerations.
)

var names = [OP_MAX]string{
	OP_UNKNOWN:  "UNKNOWN",
	OP_CLS:      "CLS",
	OP_RET:      "RET",
	OP_JP:       "JP",
	OP_CALL:     "CALL",
	OP_SE_BYTE:  "SE_BYTE",
	OP_SNE_BYTE: "SNE_BYTE",
	OP_SE_REG:   "SE_REG",
	OP_LD_BYTE:  "LD_BYTE",
	OP_ADD_BYTE: "ADD_BYTE",
	OP_LD_REG:   "LD_REG",
	OP_OR:       "OR",
	OP_AND:      "AND",
	OP_XOR:      "XOR",
	OP_ADD_REG:  "ADD_REG",
	OP_SUB:      "SUB",
	OP_SHR:      "SHR",
	OP_SUBN:     "SUBN",
	OP_SHL:      "SHL",
	OP_SNE_REG:  "SNE_REG",
	OP_LD_I:     "LD_I",
	OP_JP_V0:    "JP_V0",
	OP_RND:      "RND",
	OP_DRW:      "DRW",
	OP_SKP:      "SKP",
	OP_SKNP:     "SKNP",
	OP_LD_V_DT:  "LD_V_DT",
	OP_LD_KEY:   "LD_KEY",
	OP_LD_DT_V:  "LD_DT_V",
	OP_LD_ST_V:  "LD_ST_V",
	OP_ADD_I:    "ADD_I",
	OP_FONT:     "FONT",
	OP_BCD:      "BCD",
	OP_SAVE:     "SAVE",
	OP_RESTORE:  "RESTORE",
}

// String implements fmt.Stringer.
func (o Op) String() string {
	if o < OP_UNKNOWN || o >= OP_MAX {
		return "INVALID"
	}
	return names[o]
}

// Instruction is a decoded instruction word. All fields are always filled in
// from the word regardless of whether the given Op uses them.
type Instruction struct {
	Op   Op
	Word uint16 // The raw instruction word.
	Addr uint16 // Low 12 bits (nnn).
	Byte uint8  // Low 8 bits (kk).
	N    uint8  // Low nibble (n).
	X    uint8  // Register index from bits 8-11.
	Y    uint8  // Register index from bits 4-7.
}

type entry struct {
	mask    uint16
	pattern uint16
	op      Op
}

// table is searched in order and the first match wins. Ordering goes from the
// most specific mask to the least: exact literals, then the 0xF00F register/ALU
// family, then high nibble only, then the 0xF0FF E/F families. 5xy0 and 9xy0 are
// in the 0xF00F group so e.g. 0x5555 doesn't decode as SE.
var table = []entry{
	{0xFFFF, 0x00E0, OP_CLS},
	{0xFFFF, 0x00EE, OP_RET},

	{0xF00F, 0x5000, OP_SE_REG},
	{0xF00F, 0x8000, OP_LD_REG},
	{0xF00F, 0x8001, OP_OR},
	{0xF00F, 0x8002, OP_AND},
	{0xF00F, 0x8003, OP_XOR},
	{0xF00F, 0x8004, OP_ADD_REG},
	{0xF00F, 0x8005, OP_SUB},
	{0xF00F, 0x8006, OP_SHR},
	{0xF00F, 0x8007, OP_SUBN},
	{0xF00F, 0x800E, OP_SHL},
	{0xF00F, 0x9000, OP_SNE_REG},

	{0xF000, 0x1000, OP_JP},
	{0xF000, 0x2000, OP_CALL},
	{0xF000, 0x3000, OP_SE_BYTE},
	{0xF000, 0x4000, OP_SNE_BYTE},
	{0xF000, 0x6000, OP_LD_BYTE},
	{0xF000, 0x7000, OP_ADD_BYTE},
	{0xF000, 0xA000, OP_LD_I},
	{0xF000, 0xB000, OP_JP_V0},
	{0xF000, 0xC000, OP_RND},
	{0xF000, 0xD000, OP_DRW},

	{0xF0FF, 0xE09E, OP_SKP},
	{0xF0FF, 0xE0A1, OP_SKNP},
	{0xF0FF, 0xF007, OP_LD_V_DT},
	{0xF0FF, 0xF00A, OP_LD_KEY},
	{0xF0FF, 0xF015, OP_LD_DT_V},
	{0xF0FF, 0xF018, OP_LD_ST_V},
	{0xF0FF, 0xF01E, OP_ADD_I},
	{0xF0FF, 0xF029, OP_FONT},
	{0xF0FF, 0xF033, OP_BCD},
	{0xF0FF, 0xF055, OP_SAVE},
	{0xF0FF, 0xF065, OP_RESTORE},
}

// Decode maps a big endian instruction word to an Instruction. Words which
// match nothing in the table come back as OP_UNKNOWN with the fields still filled in.
func Decode(w uint16) Instruction {
	in := Instruction{
		Op:   OP_UNKNOWN,
		Word: w,
		Addr: w & 0x0FFF,
		Byte: uint8(w & 0x00FF),
		N:    uint8(w & 0x000F),
		X:    uint8((w >> 8) & 0x0F),
		Y:    uint8((w >> 4) & 0x0F),
	}
	for _, e := range table {
		if w&e.mask == e.pattern {
			in.Op = e.op
			break
		}
	}
	return in
}

// Word assembles a big endian instruction word from two memory bytes.
func Word(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
