package display

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jmchacon/chip8/cpu"
	"golang.org/x/image/draw"
)

var (
	testImageDir    = flag.String("test_image_dir", "", "If set will generate images from tests to this directory")
	testImageScaler = flag.Float64("test_image_scaler", 8.0, "The amount to rescale the output PNGs")
)

// generateImage returns a FrameDone callback which keeps a copy of the last frame
// and optionally writes it out as a PNG.
func generateImage(t *testing.T, name string, last **image.NRGBA, cnt *int) func(i *image.NRGBA) {
	return func(i *image.NRGBA) {
		c := image.NewNRGBA(i.Bounds())
		copy(c.Pix, i.Pix)
		*last = c
		if *testImageDir != "" {
			d := image.NewNRGBA(image.Rect(0, 0, int(float64(i.Bounds().Max.X)**testImageScaler), int(float64(i.Bounds().Max.Y)**testImageScaler)))
			draw.NearestNeighbor.Scale(d, d.Bounds(), i, i.Bounds(), draw.Over, nil)
			o, err := os.Create(filepath.Join(*testImageDir, fmt.Sprintf("%s%.6d.png", name, *cnt)))
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			defer o.Close()
			if err := png.Encode(o, d); err != nil {
				t.Fatalf("%s: %v", name, err)
			}
		}
		*cnt++
	}
}

func TestInit(t *testing.T) {
	if _, err := Init(nil); err == nil {
		t.Error("Init(nil) didn't return an error")
	}
	if _, err := Init(&DisplayDef{}); err == nil {
		t.Error("Init without FrameDone didn't return an error")
	}
}

func TestLit(t *testing.T) {
	var v [cpu.VIDEO_SIZE]uint8
	v[0] = 0x80
	v[cpu.VIDEO_SIZE-1] = 0x01
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 0, false},
		{63, 31, true},
		{62, 31, false},
		{-1, 0, false},
		{64, 0, false},
		{0, 32, false},
	}
	for _, test := range tests {
		if got := Lit(&v, test.x, test.y); got != test.want {
			t.Errorf("Lit(%d, %d) got %t want %t", test.x, test.y, got, test.want)
		}
	}
}

func TestRender(t *testing.T) {
	var last *image.NRGBA
	cnt := 0
	d, err := Init(&DisplayDef{FrameDone: generateImage(t, "Render", &last, &cnt)})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cnt != 0 {
		t.Errorf("Init called FrameDone %d times", cnt)
	}

	var v [cpu.VIDEO_SIZE]uint8
	// A diagonal line plus the corners.
	want := image.NewNRGBA(image.Rect(0, 0, cpu.SCREEN_WIDTH, cpu.SCREEN_HEIGHT))
	for y := 0; y < cpu.SCREEN_HEIGHT; y++ {
		for x := 0; x < cpu.SCREEN_WIDTH; x++ {
			on := x == y || (x == 0 && y == cpu.SCREEN_HEIGHT-1) || (x == cpu.SCREEN_WIDTH-1 && y == 0)
			c := OFF
			if on {
				v[y*cpu.PITCH+x/8] |= 0x80 >> uint(x%8)
				c = ON
			}
			want.SetNRGBA(x, y, c)
		}
	}
	d.Render(&v)
	if got, want := d.Frames(), 1; got != want {
		t.Errorf("Frames got %d want %d", got, want)
	}
	if last == nil {
		t.Fatal("FrameDone never called")
	}
	if diff := deep.Equal(last.Pix, want.Pix); diff != nil {
		t.Errorf("Frame differs: %v\n%s", diff, spew.Sdump(v))
	}
}

func TestColors(t *testing.T) {
	on := color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	off := color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
	var last *image.NRGBA
	cnt := 0
	d, err := Init(&DisplayDef{FrameDone: generateImage(t, "Colors", &last, &cnt), On: on, Off: off})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	var v [cpu.VIDEO_SIZE]uint8
	v[0] = 0x80
	d.Render(&v)
	if got := last.NRGBAAt(0, 0); got != on {
		t.Errorf("Lit pixel got %v want %v", got, on)
	}
	if got := last.NRGBAAt(1, 0); got != off {
		t.Errorf("Unlit pixel got %v want %v", got, off)
	}
}

// TestBootBanner runs the boot ROM far enough to draw its banner and renders it.
func TestBootBanner(t *testing.T) {
	c, err := cpu.Init(&cpu.ChipDef{})
	if err != nil {
		t.Fatalf("cpu.Init: %v", err)
	}
	if _, err := c.Load(cpu.BootROM); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < 21; i++ {
		if err := c.Tick(); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
	var last *image.NRGBA
	cnt := 0
	d, err := Init(&DisplayDef{FrameDone: generateImage(t, "Boot", &last, &cnt)})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	s := c.State()
	d.Render(&s.Video)
	// Top left of the C.
	if got := last.NRGBAAt(12, 3); got != ON {
		t.Errorf("C pixel got %v want %v", got, ON)
	}
	if got := last.NRGBAAt(0, 0); got != OFF {
		t.Errorf("Corner pixel got %v want %v", got, OFF)
	}
}
