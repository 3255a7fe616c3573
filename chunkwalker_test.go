package scdump

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func appendChunk(buf []byte, tag uint8, body []byte) []byte {
	buf = append(buf, tag)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(body))) //nolint:gosec // test fixture
	buf = append(buf, size[:]...)
	return append(buf, body...)
}

func rgba8888Body(subType uint8, width, height uint16, pixels []byte) []byte {
	body := []byte{subType}
	var wh [4]byte
	binary.LittleEndian.PutUint16(wh[0:2], width)
	binary.LittleEndian.PutUint16(wh[2:4], height)
	body = append(body, wh[:]...)
	return append(body, pixels...)
}

func TestWalkChunksS3OneRGBA8888Image(t *testing.T) {
	pixels := []byte{
		0xFF, 0x00, 0x00, 0xFF,
		0x00, 0xFF, 0x00, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	var inner []byte
	inner = appendChunk(inner, 1, rgba8888Body(0, 2, 2, pixels))

	outs, warnings, err := WalkChunks(inner, WalkOptions{BaseName: "base"})
	if err != nil {
		t.Fatalf("WalkChunks: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if len(outs) != 1 {
		t.Fatalf("len(outs) = %d, want 1", len(outs))
	}
	out := outs[0]
	if out.Name != "base_0.png" {
		t.Fatalf("Name = %q, want base_0.png", out.Name)
	}
	if out.Raster.Width != 2 || out.Raster.Height != 2 {
		t.Fatalf("raster size = %dx%d, want 2x2", out.Raster.Width, out.Raster.Height)
	}
	if !bytes.Equal(out.Raster.Pixels, pixels) {
		t.Fatalf("pixels = %v, want %v", out.Raster.Pixels, pixels)
	}
}

func TestWalkChunksS4Deswizzle(t *testing.T) {
	width, height := 64, 32
	bpp := 4
	blockA := make([]byte, 32*32*bpp)
	blockB := make([]byte, 32*32*bpp)
	for i := range blockA {
		blockA[i] = byte(i)
	}
	for i := range blockB {
		blockB[i] = byte(255 - i)
	}

	// Build the expected row-major raster: block A and B side by side.
	expected := make([]byte, width*height*bpp)
	for y := 0; y < 32; y++ {
		copy(expected[(y*width)*bpp:(y*width+32)*bpp], blockA[y*32*bpp:(y+1)*32*bpp])
		copy(expected[(y*width+32)*bpp:(y*width+64)*bpp], blockB[y*32*bpp:(y+1)*32*bpp])
	}
	swizzled := Reswizzle(expected, width, height, bpp)

	var inner []byte
	inner = appendChunk(inner, 28, rgba8888Body(0, uint16(width), uint16(height), swizzled)) //nolint:gosec // test fixture

	outs, warnings, err := WalkChunks(inner, WalkOptions{BaseName: "base"})
	if err != nil {
		t.Fatalf("WalkChunks: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if len(outs) != 1 {
		t.Fatalf("len(outs) = %d, want 1", len(outs))
	}
	if !bytes.Equal(outs[0].Raster.Pixels, expected) {
		t.Fatal("deswizzled raster does not match expected side-by-side layout")
	}
}

func TestWalkChunksS5UnknownTagNonFatal(t *testing.T) {
	var inner []byte
	inner = appendChunk(inner, 99, []byte("xyz"))
	pixels := []byte{
		0xFF, 0x00, 0x00, 0xFF,
		0x00, 0xFF, 0x00, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	inner = appendChunk(inner, 1, rgba8888Body(0, 2, 2, pixels))

	outs, warnings, err := WalkChunks(inner, WalkOptions{BaseName: "base"})
	if err != nil {
		t.Fatalf("WalkChunks: %v", err)
	}
	if len(outs) != 1 {
		t.Fatalf("len(outs) = %d, want 1", len(outs))
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}

func TestWalkChunksMatrixAndOpaqueAreSkipped(t *testing.T) {
	var inner []byte
	inner = appendChunk(inner, tagMatrix, make([]byte, 40))
	inner = appendChunk(inner, tagOpaque1, make([]byte, 4))

	outs, warnings, err := WalkChunks(inner, WalkOptions{BaseName: "base"})
	if err != nil {
		t.Fatalf("WalkChunks: %v", err)
	}
	if len(outs) != 0 || len(warnings) != 0 {
		t.Fatalf("outs=%v warnings=%v, want both empty", outs, warnings)
	}
}
