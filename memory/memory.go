// Package memory defines the basic interfaces for working
// with a CHIP-8 memory map. The interpreter only ever sees a flat
// 4KB address space but it's defined as an interface so tests and
// tools can install their own implementations.
package memory

// SIZE is the full CHIP-8 address space in bytes.
const SIZE = 0x1000

type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. For RAM this zeros everything.
	PowerOn()
}

var _ = Bank(&RAM{})

// RAM is a flat 4KB bank. Addresses outside of SIZE read as 0x00 and writes
// to them are dropped. Callers which care (the cpu) range check before getting here.
type RAM struct {
	addr [SIZE]uint8
}

// NewRAM returns a powered on RAM bank.
func NewRAM() *RAM {
	r := &RAM{}
	r.PowerOn()
	return r
}

// Read implements the interface for memory.Bank.
func (r *RAM) Read(addr uint16) uint8 {
	if int(addr) >= SIZE {
		return 0x00
	}
	return r.addr[addr]
}

// Write implements the interface for memory.Bank.
func (r *RAM) Write(addr uint16, val uint8) {
	if int(addr) >= SIZE {
		return
	}
	r.addr[addr] = val
}

// PowerOn implements the interface for memory.Bank.
func (r *RAM) PowerOn() {
	for i := range r.addr {
		r.addr[i] = 0x00
	}
}

// Load copies b into RAM starting at offset. Anything which would go past the end is
// truncated and the number of bytes actually copied is returned.
func (r *RAM) Load(offset uint16, b []uint8) int {
	if int(offset) >= SIZE {
		return 0
	}
	return copy(r.addr[offset:], b)
}
