package controller

import "testing"

func TestShiftSequence(t *testing.T) {
	c := New()
	c.SetButtons([8]bool{true, false, true, false, false, false, false, true}) // A, Select, Right

	c.Write(1)
	c.Write(0)

	want := []byte{1, 0, 1, 0, 0, 0, 0, 1}
	for i, w := range want {
		got := c.Read()
		if got&1 != w {
			t.Errorf("read %d = %d, want %d", i, got&1, w)
		}
		if got&0x40 == 0 {
			t.Errorf("read %d missing open-bus bit: %02X", i, got)
		}
	}

	// Past the eighth bit a stock pad returns 1.
	if c.Read()&1 != 1 {
		t.Error("reads after bit 8 must return 1")
	}
}

func TestStrobeHighKeepsReloading(t *testing.T) {
	c := New()
	c.SetButtons([8]bool{true}) // A down

	c.Write(1)
	for i := 0; i < 4; i++ {
		if c.Read()&1 != 1 {
			t.Fatal("with strobe high every read reports A")
		}
	}

	c.SetButtons([8]bool{false, true}) // now only B
	if c.Read()&1 != 0 {
		t.Error("strobe-high reads must track the live A button")
	}
}

func TestSetByte(t *testing.T) {
	c := New()
	c.SetByte(1<<ButtonStart | 1<<ButtonLeft)

	c.Write(1)
	c.Write(0)
	bits := make([]byte, 8)
	for i := range bits {
		bits[i] = c.Read() & 1
	}
	if bits[ButtonStart] != 1 || bits[ButtonLeft] != 1 {
		t.Errorf("bits = %v", bits)
	}
	if bits[ButtonA] != 0 || bits[ButtonRight] != 0 {
		t.Errorf("bits = %v", bits)
	}
}
