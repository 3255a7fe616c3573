// Package astc decodes headerless ASTC block streams into RGBA8 pixels.
//
// SCTX and KTX payloads carry raw ASTC blocks with no ".astc" file wrapper —
// width, height and block footprint are already known from the container's
// own header fields. This package adapts the pure-Go decode-volume routines
// of github.com/am-sokolov/go-astc-encoder/astc by synthesizing the
// astc.Header that package's block-iteration logic expects, instead of
// parsing one from a file.
package astc

import (
	"fmt"

	ref "github.com/am-sokolov/go-astc-encoder/astc"
)

// Decode decodes a raw ASTC block stream (width x height, blockX x blockY
// footprint, single 2D image) into tightly-packed RGBA8 pixels, row-major,
// top-down.
func Decode(blocks []byte, width, height, blockX, blockY int) ([]byte, error) {
	h := ref.Header{
		SizeX:  uint32(width),    //nolint:gosec // dimensions come from a u16/u32 wire field
		SizeY:  uint32(height),   //nolint:gosec // dimensions come from a u16/u32 wire field
		SizeZ:  1,
		BlockX: uint32(blockX),   //nolint:gosec // block footprint is one of 4/6/8
		BlockY: uint32(blockY),   //nolint:gosec // block footprint is one of 4/6/8
		BlockZ: 1,
	}

	dst := make([]byte, width*height*4)
	if err := ref.DecodeRGBA8VolumeFromParsedWithProfileInto(ref.ProfileLDR, h, blocks, dst); err != nil {
		return nil, fmt.Errorf("astc: decode: %w", err)
	}
	return dst, nil
}
