// hand_asm takes a filename and produces a bin file
// from parsing the output as a hand assembled file
// of the form:
//
// XXXX WWWW MNEMONIC OPERANDS ...
//
// Where XXXX is the address field and WWWW is the instruction word.
// Everything after the word is ignored so disassembler output can be
// edited and fed straight back in. Lines not starting with an address
// (headers, comments, blank lines) are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/jmchacon/chip8/cpu"
)

var (
	offset = flag.Int("offset", cpu.PROGRAM_START, "Address the output image starts at. Listing addresses below this are an error.")
)

var lineRE = regexp.MustCompile(`^([0-9A-Fa-f]{4})\s+([0-9A-Fa-f]{4})\b`)

// assemble reads a listing from r and returns the image it describes starting at base.
// Gaps between listed addresses are zero filled.
func assemble(r io.Reader, base int) ([]uint8, error) {
	scanner := bufio.NewScanner(r)
	var output []uint8
	l := 0
	for scanner.Scan() {
		t := scanner.Text()
		l++
		m := lineRE.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		addr, err := strconv.ParseUint(m[1], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("can't process address on line %d %q - %v", l, t, err)
		}
		w, err := strconv.ParseUint(m[2], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("can't process word on line %d %q - %v", l, t, err)
		}
		off := int(addr) - base
		if off < 0 {
			return nil, fmt.Errorf("line %d %q: address %.4X is below start %.4X", l, t, addr, base)
		}
		if off+2 > cpu.MAX_PROGRAM_SIZE {
			return nil, fmt.Errorf("line %d %q: address %.4X is past the end of program memory", l, t, addr)
		}
		for len(output) < off+2 {
			output = append(output, 0x00)
		}
		output[off] = uint8(w >> 8)
		output[off+1] = uint8(w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return output, nil
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s [-offset <offset>] <input> <output>", os.Args[0])
	}
	fn := flag.Args()[0]
	out := flag.Args()[1]

	in, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	output, err := assemble(in, *offset)
	in.Close()
	if err != nil {
		log.Fatalf("Can't assemble %q - %v", fn, err)
	}

	of, err := os.Create(out)
	if err != nil {
		log.Fatalf("Can't open output %q - %v", out, err)
	}
	n, err := of.Write(output)
	if got, want := n, len(output); got != want {
		log.Fatalf("Short write to %q. Got %d and want %d", out, got, want)
	}
	if err != nil {
		log.Fatalf("Got error writing to %q - %v", out, err)
	}
	if err := of.Close(); err != nil {
		log.Fatalf("Error closing %q - %v", out, err)
	}
}
