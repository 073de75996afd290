// Package disassemble implements a disassembler for CHIP-8 instruction words
package disassemble

import (
	"fmt"

	"github.com/jmchacon/chip8/memory"
	"github.com/jmchacon/chip8/opcode"
)

const (
	kMODE_IMPLIED   = iota // No operands.
	kMODE_ADDR             // nnn
	kMODE_V0_ADDR          // V0, nnn
	kMODE_VX               // Vx
	kMODE_VX_BYTE          // Vx, kk
	kMODE_VX_VY            // Vx, Vy
	kMODE_VX_VY_N          // Vx, Vy, n
	kMODE_I_ADDR           // I, nnn
	kMODE_I_VX             // I, Vx
	kMODE_VX_DT            // Vx, DT
	kMODE_DT_VX            // DT, Vx
	kMODE_ST_VX            // ST, Vx
	kMODE_VX_K             // Vx, K
	kMODE_F_VX             // F, Vx
	kMODE_B_VX             // B, Vx
	kMODE_MEM_VX           // [I], Vx
	kMODE_VX_MEM           // Vx, [I]
)

// Instruction returns the mnemonic and formatted operands for the given instruction
// word. Words which don't decode come back as "???" with no operands.
func Instruction(w uint16) (string, string) {
	in := opcode.Decode(w)

	var op string
	mode := kMODE_IMPLIED
	switch in.Op {
	case opcode.OP_CLS:
		op = "CLS"
	case opcode.OP_RET:
		op = "RET"
	case opcode.OP_JP:
		op = "JP"
		mode = kMODE_ADDR
	case opcode.OP_CALL:
		op = "CALL"
		mode = kMODE_ADDR
	case opcode.OP_SE_BYTE:
		op = "SE"
		mode = kMODE_VX_BYTE
	case opcode.OP_SNE_BYTE:
		op = "SNE"
		mode = kMODE_VX_BYTE
	case opcode.OP_SE_REG:
		op = "SE"
		mode = kMODE_VX_VY
	case opcode.OP_LD_BYTE:
		op = "LD"
		mode = kMODE_VX_BYTE
	case opcode.OP_ADD_BYTE:
		op = "ADD"
		mode = kMODE_VX_BYTE
	case opcode.OP_LD_REG:
		op = "LD"
		mode = kMODE_VX_VY
	case opcode.OP_OR:
		op = "OR"
		mode = kMODE_VX_VY
	case opcode.OP_AND:
		op = "AND"
		mode = kMODE_VX_VY
	case opcode.OP_XOR:
		op = "XOR"
		mode = kMODE_VX_VY
	case opcode.OP_ADD_REG:
		op = "ADD"
		mode = kMODE_VX_VY
	case opcode.OP_SUB:
		op = "SUB"
		mode = kMODE_VX_VY
	case opcode.OP_SHR:
		// Vy is encoded but ignored so only Vx is listed.
		op = "SHR"
		mode = kMODE_VX
	case opcode.OP_SUBN:
		op = "SUBN"
		mode = kMODE_VX_VY
	case opcode.OP_SHL:
		op = "SHL"
		mode = kMODE_VX
	case opcode.OP_SNE_REG:
		op = "SNE"
		mode = kMODE_VX_VY
	case opcode.OP_LD_I:
		op = "LD"
		mode = kMODE_I_ADDR
	case opcode.OP_JP_V0:
		op = "JP"
		mode = kMODE_V0_ADDR
	case opcode.OP_RND:
		op = "RND"
		mode = kMODE_VX_BYTE
	case opcode.OP_DRW:
		op = "DRW"
		mode = kMODE_VX_VY_N
	case opcode.OP_SKP:
		op = "SKP"
		mode = kMODE_VX
	case opcode.OP_SKNP:
		op = "SKNP"
		mode = kMODE_VX
	case opcode.OP_LD_V_DT:
		op = "LD"
		mode = kMODE_VX_DT
	case opcode.OP_LD_KEY:
		op = "LD"
		mode = kMODE_VX_K
	case opcode.OP_LD_DT_V:
		op = "LD"
		mode = kMODE_DT_VX
	case opcode.OP_LD_ST_V:
		op = "LD"
		mode = kMODE_ST_VX
	case opcode.OP_ADD_I:
		op = "ADD"
		mode = kMODE_I_VX
	case opcode.OP_FONT:
		op = "LD"
		mode = kMODE_F_VX
	case opcode.OP_BCD:
		op = "LD"
		mode = kMODE_B_VX
	case opcode.OP_SAVE:
		op = "LD"
		mode = kMODE_MEM_VX
	case opcode.OP_RESTORE:
		op = "LD"
		mode = kMODE_VX_MEM
	default:
		return "???", ""
	}

	var args string
	switch mode {
	case kMODE_IMPLIED:
	case kMODE_ADDR:
		args = fmt.Sprintf("#%.4X", in.Addr)
	case kMODE_V0_ADDR:
		args = fmt.Sprintf("V0, #%.4X", in.Addr)
	case kMODE_VX:
		args = fmt.Sprintf("V%X", in.X)
	case kMODE_VX_BYTE:
		args = fmt.Sprintf("V%X, #%.2X", in.X, in.Byte)
	case kMODE_VX_VY:
		args = fmt.Sprintf("V%X, V%X", in.X, in.Y)
	case kMODE_VX_VY_N:
		args = fmt.Sprintf("V%X, V%X, %d", in.X, in.Y, in.N)
	case kMODE_I_ADDR:
		args = fmt.Sprintf("I, #%.4X", in.Addr)
	case kMODE_I_VX:
		args = fmt.Sprintf("I, V%X", in.X)
	case kMODE_VX_DT:
		args = fmt.Sprintf("V%X, DT", in.X)
	case kMODE_DT_VX:
		args = fmt.Sprintf("DT, V%X", in.X)
	case kMODE_ST_VX:
		args = fmt.Sprintf("ST, V%X", in.X)
	case kMODE_VX_K:
		args = fmt.Sprintf("V%X, K", in.X)
	case kMODE_F_VX:
		args = fmt.Sprintf("F, V%X", in.X)
	case kMODE_B_VX:
		args = fmt.Sprintf("B, V%X", in.X)
	case kMODE_MEM_VX:
		args = fmt.Sprintf("[I], V%X", in.X)
	case kMODE_VX_MEM:
		args = fmt.Sprintf("V%X, [I]", in.X)
	default:
		panic(fmt.Sprintf("Invalid mode: %d", mode))
	}
	return op, args
}

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. Every CHIP-8 instruction is 2 bytes so that's always 2. This does
// not interpret the instructions so a JP is listed and not followed. Sprite data mixed in
// with code lists as whatever it happens to decode to (often ???).
func Step(pc uint16, r memory.Bank) (string, int) {
	w := opcode.Word(r.Read(pc), r.Read(pc+1))
	op, args := Instruction(w)
	out := fmt.Sprintf("%.4X %.4X  %-4s %s", pc, w, op, args)
	return out, 2
}
