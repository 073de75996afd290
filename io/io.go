// Package io defines the basic interfaces for working
// with input lines wired into the interpreter from a host.
// It's intended that implementors of I/O (such as a keypad)
// are polled between cycles so a cycle never sees an input
// change halfway through.
package io

// PortIn1 defines a 1 bit input line such as a single key.
type PortIn1 interface {
	// Input will return the current value being set on the given input port. true == pressed.
	Input() bool
}

// Button is a simple PortIn1 a host can flip on key events.
type Button struct {
	Down bool
}

// Input implements the interface for io.PortIn1
func (b *Button) Input() bool {
	return b.Down
}
