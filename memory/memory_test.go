package memory

import "testing"

func TestRAM(t *testing.T) {
	r := NewRAM()
	for i := uint16(0x0000); i < SIZE; i++ {
		r.Write(i, uint8(i))
		if got, want := r.Read(i), uint8(i); got != want {
			t.Fatalf("Bad Write/Read cycle: wrote %.2X to %.4X but got %.2X on read", want, i, got)
		}
	}
	// Out of range is ignored and reads back as zero.
	r.Write(SIZE, 0xAA)
	if got, want := r.Read(SIZE), uint8(0x00); got != want {
		t.Errorf("Read past end got %.2X want %.2X", got, want)
	}
	r.PowerOn()
	for i := uint16(0x0000); i < SIZE; i++ {
		if got := r.Read(i); got != 0x00 {
			t.Fatalf("PowerOn didn't clear %.4X - got %.2X", i, got)
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		offset uint16
		len    int
		want   int
	}{
		{
			name:   "Fits",
			offset: 0x0200,
			len:    0x10,
			want:   0x10,
		},
		{
			name:   "Truncated",
			offset: SIZE - 4,
			len:    0x10,
			want:   4,
		},
		{
			name:   "Past end",
			offset: SIZE,
			len:    0x10,
			want:   0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := NewRAM()
			b := make([]uint8, test.len)
			for i := range b {
				b[i] = uint8(i + 1)
			}
			if got, want := r.Load(test.offset, b), test.want; got != want {
				t.Fatalf("Load returned %d want %d", got, want)
			}
			for i := 0; i < test.want; i++ {
				if got, want := r.Read(test.offset+uint16(i)), b[i]; got != want {
					t.Errorf("Byte %d at %.4X got %.2X want %.2X", i, int(test.offset)+i, got, want)
				}
			}
		})
	}
}
