// Package etc1 decodes ETC1_RGB8 blocks behind a cgo boundary to the
// reference rg_etc1/libetc1 decompressor. No ASTC-style pure-Go ETC1 decoder
// turned up anywhere in this module's reference corpus, so — the same as
// internal/lzham — this package's job is the marshaling at the boundary, not
// the block math itself.
package etc1

/*
#cgo LDFLAGS: -letc1
#include <stdlib.h>
#include <stdint.h>

// Mirrors rg_etc1's block decode entry point: one 8-byte ETC1 block in,
// 4x4 RGB8 texels out (48 bytes, row-major).
extern void rg_etc1_unpack_block(const uint8_t *etc1_block, uint8_t *out_rgb_4x4, int x_flip_first);
*/
import "C"

import "unsafe"

// BlockTexels is the fixed 4x4 texel footprint of an ETC1 block.
const BlockTexels = 4

// DecodeBlock decodes one 8-byte ETC1 block into 48 bytes of row-major RGB8
// (4x4 texels, 3 bytes each).
func DecodeBlock(block []byte) []byte {
	out := make([]byte, BlockTexels*BlockTexels*3)
	C.rg_etc1_unpack_block(
		(*C.uint8_t)(unsafe.Pointer(&block[0])),
		(*C.uint8_t)(unsafe.Pointer(&out[0])),
		0,
	)
	return out
}

// Decode decodes a full ETC1 block stream (width x height, 4x4 blocks,
// row-major block order) into tightly-packed RGB8 pixels, row-major,
// top-down, clipping partial edge blocks to the image bounds.
func Decode(blocks []byte, width, height int) []byte {
	const blockBytes = 8
	out := make([]byte, width*height*3)

	blocksX := (width + BlockTexels - 1) / BlockTexels
	blocksY := (height + BlockTexels - 1) / BlockTexels

	pos := 0
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			texels := DecodeBlock(blocks[pos : pos+blockBytes])
			pos += blockBytes

			x0 := bx * BlockTexels
			y0 := by * BlockTexels
			for ty := 0; ty < BlockTexels; ty++ {
				y := y0 + ty
				if y >= height {
					continue
				}
				for tx := 0; tx < BlockTexels; tx++ {
					x := x0 + tx
					if x >= width {
						continue
					}
					src := (ty*BlockTexels + tx) * 3
					dst := (y*width + x) * 3
					copy(out[dst:dst+3], texels[src:src+3])
				}
			}
		}
	}

	return out
}
