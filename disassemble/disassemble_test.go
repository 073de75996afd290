package disassemble

import (
	"testing"

	"github.com/jmchacon/chip8/memory"
)

func TestInstruction(t *testing.T) {
	tests := []struct {
		word uint16
		op   string
		args string
	}{
		{0x00E0, "CLS", ""},
		{0x00EE, "RET", ""},
		{0x1228, "JP", "#0228"},
		{0x2ABC, "CALL", "#0ABC"},
		{0x3A12, "SE", "VA, #12"},
		{0x4B34, "SNE", "VB, #34"},
		{0x5120, "SE", "V1, V2"},
		{0x631F, "LD", "V3, #1F"},
		{0x7D01, "ADD", "VD, #01"},
		{0x8120, "LD", "V1, V2"},
		{0x8121, "OR", "V1, V2"},
		{0x8122, "AND", "V1, V2"},
		{0x8123, "XOR", "V1, V2"},
		{0x8124, "ADD", "V1, V2"},
		{0x8125, "SUB", "V1, V2"},
		{0x8126, "SHR", "V1"},
		{0x8127, "SUBN", "V1, V2"},
		{0x812E, "SHL", "V1"},
		{0x9AB0, "SNE", "VA, VB"},
		{0xA2F0, "LD", "I, #02F0"},
		{0xB300, "JP", "V0, #0300"},
		{0xC0FF, "RND", "V0, #FF"},
		{0xD017, "DRW", "V0, V1, 7"},
		{0xD01F, "DRW", "V0, V1, 15"},
		{0xE39E, "SKP", "V3"},
		{0xE3A1, "SKNP", "V3"},
		{0xF407, "LD", "V4, DT"},
		{0xF40A, "LD", "V4, K"},
		{0xF415, "LD", "DT, V4"},
		{0xF418, "LD", "ST, V4"},
		{0xF21E, "ADD", "I, V2"},
		{0xF229, "LD", "F, V2"},
		{0xF233, "LD", "B, V2"},
		{0xF555, "LD", "[I], V5"},
		{0xF565, "LD", "V5, [I]"},
		{0x0123, "???", ""},
		{0x5555, "???", ""},
		{0x8128, "???", ""},
		{0xFFFF, "???", ""},
	}
	for _, test := range tests {
		op, args := Instruction(test.word)
		if got, want := op, test.op; got != want {
			t.Errorf("%.4X: got op %q want %q", test.word, got, want)
		}
		if got, want := args, test.args; got != want {
			t.Errorf("%.4X: got args %q want %q", test.word, got, want)
		}
	}
}

// TestAllWords makes sure nothing panics and every word gets some mnemonic.
func TestAllWords(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		if op, _ := Instruction(uint16(w)); op == "" {
			t.Fatalf("%.4X: empty mnemonic", w)
		}
	}
}

func TestStep(t *testing.T) {
	r := memory.NewRAM()
	r.Load(0x200, []uint8{0xA2, 0x5B, 0x00, 0xE0, 0x12, 0x00})

	tests := []struct {
		pc   uint16
		want string
	}{
		{0x200, "0200 A25B  LD   I, #025B"},
		{0x202, "0202 00E0  CLS  "},
		{0x204, "0204 1200  JP   #0200"},
		{0x206, "0206 0000  ???  "},
	}
	for _, test := range tests {
		got, cnt := Step(test.pc, r)
		if got != test.want {
			t.Errorf("Step(%.4X) got %q want %q", test.pc, got, test.want)
		}
		if cnt != 2 {
			t.Errorf("Step(%.4X) got count %d want 2", test.pc, cnt)
		}
	}
}
