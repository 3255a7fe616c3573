// Package lzham binds the reference LZHAM decompressor (richgel999/lzham_codec)
// behind a small cgo boundary. No pure-Go LZHAM decoder exists anywhere in the
// ecosystem this module draws on, so LZHAM is treated as an external
// collaborator with a defined contract rather than something to re-derive:
// this package's job is the marshaling at the boundary, not the entropy
// coder itself.
package lzham

/*
#cgo LDFLAGS: -llzham
#include <stdlib.h>

// Mirrors lzham_decompress_memory from lzham_codec's public lzham.h: decompress
// a whole buffer in one call given the dictionary size (as a power-of-two log2)
// and the known uncompressed size.
typedef struct {
	unsigned int dict_size_log2;
} lzham_decompress_params;

extern int lzham_decompress_memory(
	const lzham_decompress_params *params,
	unsigned char *dst, size_t *dst_len,
	const unsigned char *src, size_t src_len,
	unsigned int *adler32
);
*/
import "C"

import (
	"errors"
	"unsafe"
)

// ErrDecompress is returned when the native decoder reports failure.
var ErrDecompress = errors.New("lzham: decompress failed")

// Decompress inflates an LZHAM stream of src given the declared dictionary
// size (as log2, big-endian in the wire format but passed here already
// decoded) and the known uncompressed size.
func Decompress(src []byte, dictSizeLog2 uint8, uncompressedSize uint32) ([]byte, error) {
	dst := make([]byte, uncompressedSize)
	if uncompressedSize == 0 {
		return dst, nil
	}

	params := C.lzham_decompress_params{dict_size_log2: C.uint(dictSizeLog2)}
	dstLen := C.size_t(len(dst))

	var srcPtr *C.uchar
	if len(src) > 0 {
		srcPtr = (*C.uchar)(unsafe.Pointer(&src[0]))
	}

	status := C.lzham_decompress_memory(
		&params,
		(*C.uchar)(unsafe.Pointer(&dst[0])),
		&dstLen,
		srcPtr,
		C.size_t(len(src)),
		nil,
	)
	if status != 0 {
		return nil, ErrDecompress
	}
	return dst[:dstLen], nil
}
