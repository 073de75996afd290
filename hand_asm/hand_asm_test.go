package main

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/jmchacon/chip8/cpu"
	"github.com/jmchacon/chip8/disassemble"
	"github.com/jmchacon/chip8/memory"
)

func TestAssemble(t *testing.T) {
	in := `0x06 bytes at pc: 0200
0200 A25B  LD   I, #025B
; hand edit
0202 00E0  CLS

0206 1200  JP   #0200
`
	got, err := assemble(strings.NewReader(in), 0x200)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := []uint8{0xA2, 0x5B, 0x00, 0xE0, 0x00, 0x00, 0x12, 0x00}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("assemble differs: %v", diff)
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"below start", "01FE 00E0  CLS\n"},
		{"past end", "0FFF 00E0  CLS\n"},
	}
	for _, test := range tests {
		if _, err := assemble(strings.NewReader(test.in), 0x200); err == nil {
			t.Errorf("%s: didn't get error", test.name)
		}
	}
}

// TestRoundTrip lists the boot ROM and assembles the listing back.
func TestRoundTrip(t *testing.T) {
	r := memory.NewRAM()
	r.Load(cpu.PROGRAM_START, cpu.BootROM)
	// The image is an odd length so the last listed word picks up a trailing zero.
	var sb strings.Builder
	for pc := 0; pc < len(cpu.BootROM); pc += 2 {
		line, _ := disassemble.Step(uint16(cpu.PROGRAM_START+pc), r)
		sb.WriteString(line + "\n")
	}
	got, err := assemble(strings.NewReader(sb.String()), cpu.PROGRAM_START)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := append(append([]uint8{}, cpu.BootROM...), 0x00)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("round trip differs: %v\nlisting:\n%s", diff, sb.String())
	}
}
