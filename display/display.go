// Package display turns the packed CHIP-8 video buffer into an image
// a host can scale and present.
package display

import (
	"errors"
	"image"
	"image/color"

	"github.com/jmchacon/chip8/cpu"
)

var (
	// OFF is the default color for an unlit pixel.
	OFF = color.NRGBA{0x8F, 0x91, 0x85, 0xFF}
	// ON is the default color for a lit pixel.
	ON = color.NRGBA{0x11, 0x13, 0x2B, 0xFF}
)

// DisplayDef defines the pieces needed to setup a Display.
type DisplayDef struct {
	// FrameDone is a non-optional function which will be called after every Render.
	// This will pass the rendered frame for output/analysis/etc. The image is reused
	// across frames so copy it if it needs to live past the callback.
	FrameDone func(*image.NRGBA)
	// On is the color for lit pixels. If the zero value ON is used.
	On color.NRGBA
	// Off is the color for unlit pixels. If the zero value OFF is used.
	Off color.NRGBA
}

// Display holds the current frame and the colors to render it with.
type Display struct {
	picture   *image.NRGBA
	frameDone func(*image.NRGBA)
	on        color.NRGBA
	off       color.NRGBA
	frames    int
}

// Init returns a Display with a blank (all off) frame.
func Init(def *DisplayDef) (*Display, error) {
	if def == nil {
		return nil, errors.New("def must be non-nil")
	}
	if def.FrameDone == nil {
		return nil, errors.New("FrameDone must be non-nil")
	}
	d := &Display{
		picture:   image.NewNRGBA(image.Rect(0, 0, cpu.SCREEN_WIDTH, cpu.SCREEN_HEIGHT)),
		frameDone: def.FrameDone,
		on:        def.On,
		off:       def.Off,
	}
	if d.on == (color.NRGBA{}) {
		d.on = ON
	}
	if d.off == (color.NRGBA{}) {
		d.off = OFF
	}
	for y := 0; y < cpu.SCREEN_HEIGHT; y++ {
		for x := 0; x < cpu.SCREEN_WIDTH; x++ {
			d.picture.SetNRGBA(x, y, d.off)
		}
	}
	return d, nil
}

// Lit returns whether pixel (x, y) is on in video. Coordinates outside the screen are off.
func Lit(video *[cpu.VIDEO_SIZE]uint8, x, y int) bool {
	if x < 0 || x >= cpu.SCREEN_WIDTH || y < 0 || y >= cpu.SCREEN_HEIGHT {
		return false
	}
	return video[y*cpu.PITCH+x/8]&(0x80>>uint(x%8)) != 0
}

// Render paints video into the frame and hands it to FrameDone.
func (d *Display) Render(video *[cpu.VIDEO_SIZE]uint8) {
	for y := 0; y < cpu.SCREEN_HEIGHT; y++ {
		for x := 0; x < cpu.SCREEN_WIDTH; x++ {
			c := d.off
			if Lit(video, x, y) {
				c = d.on
			}
			d.picture.SetNRGBA(x, y, c)
		}
	}
	d.frames++
	d.frameDone(d.picture)
}

// Frames returns the number of frames rendered since Init.
func (d *Display) Frames() int {
	return d.frames
}
