package io

import "testing"

func TestButton(t *testing.T) {
	b := &Button{}
	var p PortIn1 = b
	if p.Input() {
		t.Error("New button reads as pressed")
	}
	b.Down = true
	if !p.Input() {
		t.Error("Pressed button reads as released")
	}
}
