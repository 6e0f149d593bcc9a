package image

import (
	"errors"
	"testing"
)

func TestNewBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 50, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 100, ErrInvalidDimensions},
		{"zero height", 100, 0, ErrInvalidDimensions},
		{"negative width", -1, 100, ErrInvalidDimensions},
		{"negative height", 100, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuf(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuf() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", buf.Width(), tt.width)
			}
			if buf.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", buf.Height(), tt.height)
			}
			if buf.Stride() != tt.width*3 {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width*3)
			}
			if len(buf.Data()) != tt.width*tt.height*3 {
				t.Errorf("len(Data()) = %d, want %d", len(buf.Data()), tt.width*tt.height*3)
			}
			for i, v := range buf.Data() {
				if v != 0 {
					t.Fatalf("Data()[%d] = %d, want 0 (black)", i, v)
				}
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 2*2*3+5)
	data[0] = 7

	buf, err := FromRaw(data, 2, 2)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if len(buf.Data()) != 12 {
		t.Errorf("len(Data()) = %d, want 12", len(buf.Data()))
	}
	// FromRaw must not copy.
	data[1] = 9
	r, g, _, _ := buf.RGBAt(0, 0)
	if r != 7 || g != 9 {
		t.Errorf("RGBAt(0,0) = (%d,%d), want (7,9)", r, g)
	}

	if _, err := FromRaw(make([]byte, 11), 2, 2); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("FromRaw(short) error = %v, want ErrDataTooSmall", err)
	}
	if _, err := FromRaw(data, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FromRaw(0 width) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestBufSetGet(t *testing.T) {
	buf, _ := NewBuf(4, 3)

	if err := buf.SetRGB(3, 2, 10, 20, 30); err != nil {
		t.Fatalf("SetRGB() error = %v", err)
	}
	r, g, b, err := buf.RGBAt(3, 2)
	if err != nil {
		t.Fatalf("RGBAt() error = %v", err)
	}
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("RGBAt(3,2) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}

	off := buf.PixOffset(3, 2)
	if off != (2*4+3)*3 {
		t.Errorf("PixOffset(3,2) = %d, want %d", off, (2*4+3)*3)
	}
	row := buf.Row(2)
	if row[9] != 10 || row[10] != 20 || row[11] != 30 {
		t.Errorf("Row(2)[9:12] = %v, want [10 20 30]", row[9:12])
	}
}

func TestBufOutOfBounds(t *testing.T) {
	buf, _ := NewBuf(4, 3)
	original := append([]byte(nil), buf.Data()...)

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100},
	}
	for _, c := range coords {
		if err := buf.SetRGB(c.x, c.y, 1, 2, 3); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetRGB(%d,%d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
		if _, _, _, err := buf.RGBAt(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("RGBAt(%d,%d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
	}
	for i, v := range buf.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at %d", i)
		}
	}
}

func TestBufCloneIndependent(t *testing.T) {
	buf, _ := NewBuf(2, 2)
	buf.Fill(1, 2, 3)

	clone := buf.Clone()
	if !clone.SameSize(buf) {
		t.Fatal("Clone() changed dimensions")
	}
	_ = clone.SetRGB(0, 0, 200, 200, 200)

	r, _, _, _ := buf.RGBAt(0, 0)
	if r != 1 {
		t.Errorf("modifying clone changed original: R = %d, want 1", r)
	}
}

func TestBufFillClear(t *testing.T) {
	buf, _ := NewBuf(3, 2)
	buf.Fill(5, 6, 7)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, _ := buf.RGBAt(x, y)
			if r != 5 || g != 6 || b != 7 {
				t.Fatalf("Fill: pixel (%d,%d) = (%d,%d,%d)", x, y, r, g, b)
			}
		}
	}

	buf.Clear()
	for i, v := range buf.Data() {
		if v != 0 {
			t.Fatalf("Clear: Data()[%d] = %d, want 0", i, v)
		}
	}
}
