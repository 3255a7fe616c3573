package scdump

import "testing"

func TestCursorIntegers(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	c := NewCursor(buf)

	if v, err := c.U8(); err != nil || v != 0x01 {
		t.Fatalf("U8 = %v, %v", v, err)
	}
	if v, err := c.U16LE(); err != nil || v != 0x0302 {
		t.Fatalf("U16LE = %#x, %v", v, err)
	}
	if v, err := c.U16BE(); err != nil || v != 0x0405 {
		t.Fatalf("U16BE = %#x, %v", v, err)
	}
	if c.Pos() != 5 {
		t.Fatalf("Pos = %d, want 5", c.Pos())
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
}

func TestCursorU32(t *testing.T) {
	buf := []byte{0x78, 0x56, 0x34, 0x12}
	if v, err := NewCursor(buf).U32LE(); err != nil || v != 0x12345678 {
		t.Fatalf("U32LE = %#x, %v", v, err)
	}
	if v, err := NewCursor(buf).U32BE(); err != nil || v != 0x78563412 {
		t.Fatalf("U32BE = %#x, %v", v, err)
	}
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	if _, err := c.U32LE(); err == nil {
		t.Fatal("expected error reading past end")
	}
}

func TestCursorLengthPrefixedString(t *testing.T) {
	buf := append([]byte{5}, []byte("hello")...)
	c := NewCursor(buf)
	s, err := c.LengthPrefixedString()
	if err != nil {
		t.Fatalf("LengthPrefixedString: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestCursorAlign(t *testing.T) {
	c := NewCursor(make([]byte, 16))
	if err := c.Skip(3); err != nil {
		t.Fatal(err)
	}
	if err := c.Align(4); err != nil {
		t.Fatal(err)
	}
	if c.Pos() != 4 {
		t.Fatalf("Pos = %d, want 4", c.Pos())
	}
	if err := c.Align(4); err != nil {
		t.Fatal(err)
	}
	if c.Pos() != 4 {
		t.Fatalf("Align on boundary advanced Pos to %d", c.Pos())
	}
}
