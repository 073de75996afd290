package cpu

import (
	"github.com/jmchacon/chip8/opcode"
)

// execute dispatches the current decoded instruction. PC has already been moved past it.
func (p *Chip) execute() error {
	in := p.op
	x, y := in.X, in.Y

	switch in.Op {
	case opcode.OP_CLS:
		p.Video = [VIDEO_SIZE]uint8{}
	case opcode.OP_RET:
		return p.iRET()
	case opcode.OP_JP:
		p.PC = in.Addr
	case opcode.OP_CALL:
		return p.iCALL(in.Addr)
	case opcode.OP_SE_BYTE:
		p.skipIf(p.V[x] == in.Byte)
	case opcode.OP_SNE_BYTE:
		p.skipIf(p.V[x] != in.Byte)
	case opcode.OP_SE_REG:
		p.skipIf(p.V[x] == p.V[y])
	case opcode.OP_LD_BYTE:
		p.V[x] = in.Byte
	case opcode.OP_ADD_BYTE:
		// Wraps, VF untouched.
		p.V[x] += in.Byte
	case opcode.OP_LD_REG:
		p.V[x] = p.V[y]
	case opcode.OP_OR:
		p.V[x] |= p.V[y]
	case opcode.OP_AND:
		p.V[x] &= p.V[y]
	case opcode.OP_XOR:
		p.V[x] ^= p.V[y]
	case opcode.OP_ADD_REG:
		p.iADD(x, y)
	case opcode.OP_SUB:
		p.iSUB(x, y)
	case opcode.OP_SHR:
		p.iSHR(x)
	case opcode.OP_SUBN:
		p.iSUBN(x, y)
	case opcode.OP_SHL:
		p.iSHL(x)
	case opcode.OP_SNE_REG:
		p.skipIf(p.V[x] != p.V[y])
	case opcode.OP_LD_I:
		p.I = in.Addr
	case opcode.OP_JP_V0:
		p.PC = in.Addr + uint16(p.V[0])
	case opcode.OP_RND:
		p.V[x] = uint8(p.rand.Intn(256)) & in.Byte
	case opcode.OP_DRW:
		return p.iDRW(x, y, in.N)
	case opcode.OP_SKP:
		p.skipIf(p.Keys[p.V[x]&0x0F])
	case opcode.OP_SKNP:
		p.skipIf(!p.Keys[p.V[x]&0x0F])
	case opcode.OP_LD_V_DT:
		p.V[x] = p.DT
	case opcode.OP_LD_KEY:
		p.iLDKey(x)
	case opcode.OP_LD_DT_V:
		p.DT = p.V[x]
	case opcode.OP_LD_ST_V:
		p.ST = p.V[x]
	case opcode.OP_ADD_I:
		// No overflow check or VF update.
		p.I += uint16(p.V[x])
	case opcode.OP_FONT:
		p.I = FONT_START + uint16(p.V[x]&0x0F)*GLYPH_SIZE
	case opcode.OP_BCD:
		return p.iBCD(x)
	case opcode.OP_SAVE:
		return p.iSAVE(x)
	case opcode.OP_RESTORE:
		return p.iRESTORE(x)
	default:
		return UnknownInstruction{Opcode: in.Word, PC: p.opPC}
	}
	return nil
}

func (p *Chip) skipIf(cond bool) {
	if cond {
		p.PC += 2
	}
}

// checkRange returns an AddressOutOfRange if n bytes starting at addr don't all fit in memory.
func checkRange(addr uint16, n int) error {
	if end := int(addr) + n - 1; end >= MEMORY_SIZE {
		return AddressOutOfRange{Addr: end}
	}
	return nil
}

// iRET implements RET. An empty stack is a fault and nothing changes.
func (p *Chip) iRET() error {
	if p.SP == 0 {
		return StackUnderflow{PC: p.opPC}
	}
	p.SP--
	p.PC = p.Stack[p.SP]
	return nil
}

// iCALL implements CALL. The target has to hold a full instruction inside the program
// region. Depth is checked before the push so a full stack faults without writing
// anything past the end of it.
func (p *Chip) iCALL(addr uint16) error {
	if addr < PROGRAM_START || int(addr)+1 >= MEMORY_SIZE {
		return AddressOutOfRange{Addr: int(addr)}
	}
	if int(p.SP) >= STACK_SIZE {
		return StackOverflow{PC: p.opPC}
	}
	p.Stack[p.SP] = p.PC
	p.SP++
	p.PC = addr
	return nil
}

// iADD implements ADD Vx, Vy. VF is set from the 9th bit before the truncated sum
// lands in Vx so ADD VF, Vy leaves the sum (not the flag) in VF.
func (p *Chip) iADD(x, y uint8) {
	sum := uint16(p.V[x]) + uint16(p.V[y])
	p.V[VF] = 0
	if sum > 0xFF {
		p.V[VF] = 1
	}
	p.V[x] = uint8(sum)
}

// iSUB implements SUB Vx, Vy with VF = NOT borrow (Vx > Vy). The flag is written
// first and the subtraction reads the registers afterwards.
func (p *Chip) iSUB(x, y uint8) {
	p.V[VF] = 0
	if p.V[x] > p.V[y] {
		p.V[VF] = 1
	}
	p.V[x] = uint8(int(p.V[x]) - int(p.V[y]))
}

// iSUBN implements SUBN Vx, Vy which is Vx = Vy - Vx with VF = (Vy > Vx).
func (p *Chip) iSUBN(x, y uint8) {
	p.V[VF] = 0
	if p.V[y] > p.V[x] {
		p.V[VF] = 1
	}
	p.V[x] = p.V[y] - p.V[x]
}

// iSHR implements SHR Vx. Old bit 0 becomes VF. Vy is ignored.
func (p *Chip) iSHR(x uint8) {
	v := p.V[x]
	p.V[VF] = v & 0x01
	p.V[x] = v >> 1
}

// iSHL implements SHL Vx. Old bit 7 becomes VF. Vy is ignored.
func (p *Chip) iSHL(x uint8) {
	v := p.V[x]
	p.V[VF] = v >> 7
	p.V[x] = v << 1
}

// iLDKey implements LD Vx, K. With no key down PC backs up so this same
// instruction runs again next cycle, otherwise Vx gets the lowest key down.
func (p *Chip) iLDKey(x uint8) {
	for k, down := range p.Keys {
		if down {
			p.V[x] = uint8(k)
			return
		}
	}
	p.PC -= 2
}

// iBCD implements LD B, Vx storing hundreds, tens and ones at I, I+1 and I+2.
func (p *Chip) iBCD(x uint8) error {
	if err := checkRange(p.I, 3); err != nil {
		return err
	}
	v := p.V[x]
	p.Ram.Write(p.I, v/100)
	p.Ram.Write(p.I+1, (v%100)/10)
	p.Ram.Write(p.I+2, v%10)
	return nil
}

// iSAVE implements LD [I], Vx storing V0 through Vx inclusive. I doesn't move.
func (p *Chip) iSAVE(x uint8) error {
	if err := checkRange(p.I, int(x)+1); err != nil {
		return err
	}
	for i := uint8(0); i <= x; i++ {
		p.Ram.Write(p.I+uint16(i), p.V[i])
	}
	return nil
}

// iRESTORE implements LD Vx, [I] loading V0 through Vx inclusive. I doesn't move.
func (p *Chip) iRESTORE(x uint8) error {
	if err := checkRange(p.I, int(x)+1); err != nil {
		return err
	}
	for i := uint8(0); i <= x; i++ {
		p.V[i] = p.Ram.Read(p.I + uint16(i))
	}
	return nil
}
