package scdump

import (
	"bytes"

	"github.com/clashtools/scdump/internal/texture/astc"
	"github.com/clashtools/scdump/internal/texture/etc1"
)

// sctxKind identifies the compressed texture flavor stored in an SCTX file.
type sctxKind uint32

const (
	sctxKindASTC8x8Compressed sctxKind = 5
	sctxKindASTC4x4Raw        sctxKind = 12
)

// SCTX header field sizes.
const (
	sctxHeaderSkip1 = 52
	sctxFixedSkip   = 16
	sctxHeaderSkip2 = 52
)

// DecodeSCTX parses a standalone (or tag-47/tag-45-targeted) SCTX texture
// payload and decodes it to a Raster.
func DecodeSCTX(data []byte) (*Raster, error) {
	c := NewCursor(data)
	if err := c.Skip(sctxHeaderSkip1); err != nil {
		return nil, err
	}
	width, err := c.U16LE()
	if err != nil {
		return nil, err
	}
	height, err := c.U16LE()
	if err != nil {
		return nil, err
	}
	kind, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if _, err := c.U32LE(); err != nil { // length, unused: block stream is self-describing by width/height
		return nil, err
	}
	if err := c.Skip(sctxFixedSkip); err != nil {
		return nil, err
	}
	innerLen, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(int(innerLen)); err != nil {
		return nil, err
	}
	if err := c.Skip(sctxHeaderSkip2); err != nil {
		return nil, err
	}

	rest, err := c.Read(c.Len())
	if err != nil {
		return nil, err
	}

	switch sctxKind(kind) {
	case sctxKindASTC4x4Raw:
		return decodeASTCRaster(rest, int(width), int(height), 4, 4)
	case sctxKindASTC8x8Compressed:
		blocks, err := DecompressPayload(rest)
		if err != nil {
			return nil, err
		}
		return decodeASTCRaster(blocks, int(width), int(height), 8, 8)
	default:
		return nil, ErrUnknownSCTXKind
	}
}

// ktx1Identifier and ktx2Identifier are the 12-byte identifiers distinguishing
// KTX1 from KTX2 containers.
var (
	ktx1Identifier = []byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}
	ktx2Identifier = []byte{0xAB, 'K', 'T', 'X', ' ', '2', '0', 0xBB, '\r', '\n', 0x1A, '\n'}
)

// VkFormat / GL internal format values mapped to a decoder.
const (
	fmtASTC4x4VK    = 157
	fmtASTC6x6VK    = 165
	fmtASTC8x8VK1   = 171
	fmtASTC8x8VK2   = 172
	fmtETC1RGB8OES  = 0x8D64
	fmtASTC4x4GL    = 0x93B0
	fmtASTC6x6GL    = 0x93B4
)

// DecodeKTX parses a standalone KTX1 or KTX2 texture payload (classified by
// its full 12-byte identifier) and decodes it to a Raster.
func DecodeKTX(data []byte) (*Raster, error) {
	if len(data) < 12 {
		return nil, ErrTruncatedInput
	}
	switch {
	case bytes.Equal(data[0:12], ktx1Identifier):
		return decodeKTX1(data[12:])
	case bytes.Equal(data[0:12], ktx2Identifier):
		return decodeKTX2(data[12:])
	default:
		return nil, ErrUnknownKTXIdentifier
	}
}

func decodeKTX1(data []byte) (*Raster, error) {
	c := NewCursor(data)
	if err := c.Skip(16); err != nil {
		return nil, err
	}
	format, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(4); err != nil {
		return nil, err
	}
	width, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	height, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(16); err != nil {
		return nil, err
	}
	kvLen, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(int(kvLen)); err != nil {
		return nil, err
	}
	if err := c.Skip(4); err != nil {
		return nil, err
	}

	payload, err := c.Read(c.Len())
	if err != nil {
		return nil, err
	}

	return decodeTextureByFormat(format, payload, int(width), int(height))
}

func decodeKTX2(data []byte) (*Raster, error) {
	c := NewCursor(data)
	format, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(4); err != nil {
		return nil, err
	}
	width, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	height, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(12); err != nil {
		return nil, err
	}
	levelCount, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(4); err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil { // DFD index
		return nil, err
	}
	kvdOffset, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	kvdLength, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(4); err != nil {
		return nil, err
	}
	sgdLength, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil {
		return nil, err
	}

	levels := int(levelCount)
	if levels < 1 {
		levels = 1
	}
	for i := 0; i < levels; i++ {
		if err := c.Skip(24); err != nil {
			return nil, err
		}
	}

	dfdLen, err := c.U32LE()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(int(dfdLen) - 4); err != nil {
		return nil, err
	}

	for uint32(c.Pos()) < kvdOffset+kvdLength {
		kvLen, err := c.U32LE()
		if err != nil {
			return nil, err
		}
		if err := c.Skip(int(kvLen)); err != nil {
			return nil, err
		}
		if err := c.Align(4); err != nil {
			return nil, err
		}
	}

	if err := c.Align(16); err != nil {
		return nil, err
	}
	if err := c.Skip(int(sgdLength)); err != nil {
		return nil, err
	}

	payload, err := c.Read(c.Len())
	if err != nil {
		return nil, err
	}

	return decodeTextureByFormat(format, payload, int(width), int(height))
}

func decodeTextureByFormat(format uint32, blocks []byte, width, height int) (*Raster, error) {
	switch format {
	case fmtASTC4x4VK, fmtASTC4x4GL:
		return decodeASTCRaster(blocks, width, height, 4, 4)
	case fmtASTC6x6VK, fmtASTC6x6GL:
		return decodeASTCRaster(blocks, width, height, 6, 6)
	case fmtASTC8x8VK1, fmtASTC8x8VK2:
		return decodeASTCRaster(blocks, width, height, 8, 8)
	case fmtETC1RGB8OES:
		rgb := etc1.Decode(blocks, width, height)
		return &Raster{Width: width, Height: height, Model: ColorRGB, Pixels: rgb}, nil
	default:
		return nil, ErrUnknownTextureFormat
	}
}

// decodeASTCRaster drives the ASTC block decoder, which already emits
// tightly-packed RGBA8.
func decodeASTCRaster(blocks []byte, width, height, blockX, blockY int) (*Raster, error) {
	rgba, err := astc.Decode(blocks, width, height, blockX, blockY)
	if err != nil {
		return nil, err
	}
	return &Raster{Width: width, Height: height, Model: ColorRGBA, Pixels: rgba}, nil
}
