package scdump

import (
	"bytes"
	"testing"
)

func TestDecodePixelsRGBA8888(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	r, err := DecodePixels(SubTypeRGBA8888A, pixels, 2, 1)
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if r.Model != ColorRGBA {
		t.Fatalf("Model = %v, want ColorRGBA", r.Model)
	}
	if !bytes.Equal(r.Pixels, pixels) {
		t.Fatalf("Pixels = %v, want verbatim copy", r.Pixels)
	}
}

func TestDecodePixelsRGBA5551Alpha(t *testing.T) {
	// top bit set => alpha 255; 5/5/5 channels each scaled into a byte.
	pixels := []byte{0x1F, 0x80} // little-endian 0x801F: A=1, R=0, G=0, B=0x1F
	r, err := DecodePixels(SubTypeRGBA5551, pixels, 1, 1)
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if r.Pixels[3] != 255 {
		t.Fatalf("alpha = %d, want 255", r.Pixels[3])
	}
	if r.Pixels[2] != 0xF8 {
		t.Fatalf("blue = %#x, want 0xf8", r.Pixels[2])
	}
}

func TestDecodePixelsRGB565(t *testing.T) {
	pixels := []byte{0xFF, 0xFF} // all bits set
	r, err := DecodePixels(SubTypeRGB565, pixels, 1, 1)
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if r.Model != ColorRGB {
		t.Fatalf("Model = %v, want ColorRGB", r.Model)
	}
	if r.Pixels[0] != 0xF8 || r.Pixels[1] != 0xFC || r.Pixels[2] != 0xF8 {
		t.Fatalf("Pixels = %v, want max-value RGB565 expansion", r.Pixels)
	}
}

func TestDecodePixelsWrongSize(t *testing.T) {
	_, err := DecodePixels(SubTypeRGBA8888A, []byte{1, 2, 3}, 2, 1)
	if err == nil {
		t.Fatal("expected ErrPixelBufferSize")
	}
}

func TestDecodePixelsUnknownSubType(t *testing.T) {
	_, err := DecodePixels(PixelSubType(99), nil, 0, 0)
	if err == nil {
		t.Fatal("expected ErrUnknownPixelSubType")
	}
}

func TestDecodePixelsL8AndLA88(t *testing.T) {
	l, err := DecodePixels(SubTypeL8, []byte{10, 20, 30, 40}, 4, 1)
	if err != nil || l.Model != ColorL {
		t.Fatalf("L8: %v, %v", l, err)
	}
	la, err := DecodePixels(SubTypeLA88, []byte{10, 255, 20, 0}, 2, 1)
	if err != nil || la.Model != ColorLA {
		t.Fatalf("LA88: %v, %v", la, err)
	}
}
