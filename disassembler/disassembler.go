// disassembler takes a filename and loads it as a CHIP-8 ROM and then
// disassembles it to stdout starting at the first instruction.
// CHIP-8 ROMs have no header so the image is always placed at the
// normal program start (0x200) unless -offset says otherwise.
// Sprite data embedded in the ROM is listed as whatever it decodes to.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/jmchacon/chip8/cpu"
	"github.com/jmchacon/chip8/disassemble"
	"github.com/jmchacon/chip8/memory"
)

var (
	startPC = flag.Int("start_pc", cpu.PROGRAM_START, "PC value to start disassembling")
	offset  = flag.Int("offset", cpu.PROGRAM_START, "Offset into RAM to start loading data. All other RAM will be zero'd out.")
	boot    = flag.Bool("boot", false, "If true ignore any filename and disassemble the built in boot ROM")
)

func main() {
	flag.Parse()

	var b []uint8
	switch {
	case *boot:
		b = cpu.BootROM
	case len(flag.Args()) == 1:
		fn := flag.Args()[0]
		var err error
		b, err = ioutil.ReadFile(fn)
		if err != nil {
			log.Fatalf("Can't open %s - %v", fn, err)
		}
	default:
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset> -boot] <filename>", os.Args[0])
	}

	if *offset < 0 || *offset >= memory.SIZE {
		log.Fatalf("Offset 0x%.4X outside of memory", *offset)
	}
	r := memory.NewRAM()
	if n := r.Load(uint16(*offset), b); n != len(b) {
		log.Printf("Length %d at offset %.4X too long, truncating to %d", len(b), *offset, n)
		b = b[:n]
	}
	pc := uint16(*startPC)
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), pc)

	cnt := 0
	// Stop when the buffer runs out or PC would walk off the end of memory.
	for cnt < len(b) && int(pc)+1 < memory.SIZE {
		dis, off := disassemble.Step(pc, r)
		pc += uint16(off)
		cnt += off
		fmt.Printf("%s\n", dis)
	}
}
