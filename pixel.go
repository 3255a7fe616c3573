package scdump

import "encoding/binary"

// PixelSubType selects one of the uncompressed pixel encodings used by inline
// texture chunks.
type PixelSubType uint8

// Recognized PixelSubType values.
const (
	SubTypeRGBA8888A PixelSubType = 0
	SubTypeRGBA8888B PixelSubType = 1
	SubTypeRGBA4444  PixelSubType = 2
	SubTypeRGBA5551  PixelSubType = 3
	SubTypeRGB565    PixelSubType = 4
	SubTypeLA88      PixelSubType = 6
	SubTypeL8        PixelSubType = 10
)

// ColorModel names the channel layout of a decoded Raster.
type ColorModel int

// Recognized ColorModel values.
const (
	ColorRGBA ColorModel = iota
	ColorRGB
	ColorLA
	ColorL
)

// Raster is a decoded, row-major, top-down pixel buffer.
type Raster struct {
	Width  int
	Height int
	Model  ColorModel
	Pixels []byte
}

// bytesPerPixel returns the storage size of one pixel for the given sub_type,
// or ErrUnknownPixelSubType if it is not recognized.
func bytesPerPixel(t PixelSubType) (int, error) {
	switch t {
	case SubTypeRGBA8888A, SubTypeRGBA8888B:
		return 4, nil
	case SubTypeRGBA4444, SubTypeRGBA5551, SubTypeRGB565, SubTypeLA88:
		return 2, nil
	case SubTypeL8:
		return 1, nil
	default:
		return 0, ErrUnknownPixelSubType
	}
}

// DecodePixels converts a raw uncompressed pixel buffer with the declared
// (sub_type, width, height) into a Raster. pixels must have exactly
// width*height*bytesPerPixel(subType) bytes.
func DecodePixels(subType PixelSubType, pixels []byte, width, height int) (*Raster, error) {
	bpp, err := bytesPerPixel(subType)
	if err != nil {
		return nil, err
	}
	if len(pixels) != width*height*bpp {
		return nil, ErrPixelBufferSize
	}

	switch subType {
	case SubTypeRGBA8888A, SubTypeRGBA8888B:
		out := make([]byte, len(pixels))
		copy(out, pixels)
		return &Raster{Width: width, Height: height, Model: ColorRGBA, Pixels: out}, nil

	case SubTypeRGBA4444:
		out := make([]byte, width*height*4)
		for i := 0; i < width*height; i++ {
			p := binary.LittleEndian.Uint16(pixels[i*2:])
			o := i * 4
			out[o+0] = uint8((p>>12)&0xF) << 4
			out[o+1] = uint8((p>>8)&0xF) << 4
			out[o+2] = uint8((p>>4)&0xF) << 4
			out[o+3] = uint8(p&0xF) << 4
		}
		return &Raster{Width: width, Height: height, Model: ColorRGBA, Pixels: out}, nil

	case SubTypeRGBA5551:
		out := make([]byte, width*height*4)
		for i := 0; i < width*height; i++ {
			p := binary.LittleEndian.Uint16(pixels[i*2:])
			o := i * 4
			a := uint8(0)
			if p&0x8000 != 0 {
				a = 255
			}
			out[o+0] = uint8((p>>10)&0x1F) << 3
			out[o+1] = uint8((p>>5)&0x1F) << 3
			out[o+2] = uint8(p&0x1F) << 3
			out[o+3] = a
		}
		return &Raster{Width: width, Height: height, Model: ColorRGBA, Pixels: out}, nil

	case SubTypeRGB565:
		out := make([]byte, width*height*3)
		for i := 0; i < width*height; i++ {
			p := binary.LittleEndian.Uint16(pixels[i*2:])
			o := i * 3
			out[o+0] = uint8((p>>11)&0x1F) << 3
			out[o+1] = uint8((p>>5)&0x3F) << 2
			out[o+2] = uint8(p&0x1F) << 3
		}
		return &Raster{Width: width, Height: height, Model: ColorRGB, Pixels: out}, nil

	case SubTypeLA88:
		out := make([]byte, len(pixels))
		copy(out, pixels)
		return &Raster{Width: width, Height: height, Model: ColorLA, Pixels: out}, nil

	case SubTypeL8:
		out := make([]byte, len(pixels))
		copy(out, pixels)
		return &Raster{Width: width, Height: height, Model: ColorL, Pixels: out}, nil

	default:
		return nil, ErrUnknownPixelSubType
	}
}
