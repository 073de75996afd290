package cpu

// iDRW implements DRW Vx, Vy, n. n sprite bytes are read from I on and XOR'd into video
// starting at pixel (Vx, Vy). A sprite byte that doesn't start on a byte boundary gets
// split across two adjacent video bytes. VF ends up 1 if any pixel went from on to off.
//
// There's no horizontal clipping: a sprite hanging off the right edge spills into the
// start of the next row. Rows whose video byte pair would go past the end of the buffer
// are skipped rather than wrapped unless the chip was setup with WrapY.
func (p *Chip) iDRW(x, y, n uint8) error {
	if n > 0 {
		if err := checkRange(p.I, int(n)); err != nil {
			return err
		}
	}
	vx, vy := p.V[x], p.V[y]
	xByte := int(vx >> 3)
	xBit := vx & 0x07

	var collision uint8
	for i := 0; i < int(n); i++ {
		row := int(vy) + i
		if p.wrapY {
			row %= SCREEN_HEIGHT
		}
		addr := row*PITCH + xByte
		// Both bytes of the pair have to be in the buffer.
		if addr+1 >= VIDEO_SIZE {
			continue
		}
		sprite := p.Ram.Read(p.I + uint16(i))
		b0, b1 := p.Video[addr], p.Video[addr+1]

		p.Video[addr] ^= sprite >> xBit
		if xBit > 0 {
			p.Video[addr+1] ^= sprite << (8 - xBit)
		}

		collision |= b0 &^ p.Video[addr]
		collision |= b1 &^ p.Video[addr+1]
	}

	p.V[VF] = 0
	if collision != 0 {
		p.V[VF] = 1
	}
	return nil
}
