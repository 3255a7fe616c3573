package scdump

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// OutputKind distinguishes a decoded texture from a decompressed raw table.
type OutputKind int

// Recognized OutputKind values.
const (
	OutputPNG OutputKind = iota
	OutputRaw
)

// Output is one produced artifact of decoding a single input file: either a
// texture Raster (written as PNG) or a raw decompressed byte stream (written
// verbatim). Name is the complete destination filename (no directory), set by
// the producer (ChunkWalker, DecodeFile).
type Output struct {
	Kind   OutputKind
	Name   string
	Raster *Raster
	Raw    []byte
}

// WriteOutput writes one Output's Name under dir.
func WriteOutput(dir string, out Output) (string, error) {
	if out.Kind != OutputPNG && out.Kind != OutputRaw {
		return "", fmt.Errorf("scdump: unknown output kind %d", out.Kind)
	}

	path := filepath.Join(dir, out.Name)
	switch out.Kind {
	case OutputPNG:
		if err := writePNGFile(path, out.Raster); err != nil {
			return "", err
		}
	case OutputRaw:
		if err := writeRawFile(path, out.Raw); err != nil {
			return "", err
		}
	}
	return path, nil
}

// writePNGFile encodes a Raster as PNG to path using the standard library
// encoder, without mutating the Raster's pixel data.
func writePNGFile(path string, r *Raster) error {
	f, err := os.Create(path) //nolint:gosec // path is built from a caller-controlled output dir + basename
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, rasterImage(r)); err != nil {
		return err
	}
	return bw.Flush()
}

// writeRawFile writes a decompressed byte sequence verbatim to path.
func writeRawFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644) //nolint:gosec // table output, not a secret
}

// rasterImage wraps a Raster in the matching stdlib image.Image without
// copying pixel data.
func rasterImage(r *Raster) image.Image {
	rect := image.Rect(0, 0, r.Width, r.Height)
	switch r.Model {
	case ColorRGBA:
		return &image.NRGBA{Pix: r.Pixels, Stride: r.Width * 4, Rect: rect}
	case ColorRGB:
		return &rgbImage{pix: r.Pixels, stride: r.Width * 3, rect: rect}
	case ColorLA:
		return &image.NRGBA{Pix: expandLAtoNRGBA(r.Pixels), Stride: r.Width * 4, Rect: rect}
	case ColorL:
		return &image.Gray{Pix: r.Pixels, Stride: r.Width, Rect: rect}
	default:
		return &image.NRGBA{Pix: r.Pixels, Stride: r.Width * 4, Rect: rect}
	}
}

// expandLAtoNRGBA converts tightly-packed {L,A} pairs into NRGBA quads
// (R=G=B=L) so image/png can encode them.
func expandLAtoNRGBA(la []byte) []byte {
	out := make([]byte, len(la)*2)
	for i := 0; i < len(la)/2; i++ {
		l, a := la[i*2], la[i*2+1]
		o := i * 4
		out[o+0], out[o+1], out[o+2], out[o+3] = l, l, l, a
	}
	return out
}

// rgbImage is a minimal image.Image over tightly-packed RGB8 pixels (no
// stdlib color model stores 3 bytes/pixel without an alpha channel).
type rgbImage struct {
	pix    []byte
	stride int
	rect   image.Rectangle
}

func (m *rgbImage) ColorModel() color.Model { return color.RGBAModel }
func (m *rgbImage) Bounds() image.Rectangle { return m.rect }
func (m *rgbImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.rect)) {
		return color.RGBA{}
	}
	i := (y-m.rect.Min.Y)*m.stride + (x-m.rect.Min.X)*3
	return color.RGBA{R: m.pix[i], G: m.pix[i+1], B: m.pix[i+2], A: 255}
}
