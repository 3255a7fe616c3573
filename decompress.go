package scdump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz/lzma"

	"github.com/clashtools/scdump/internal/lzham"
)

var (
	lzhamMagic = []byte("SCLZ")
	zstdMagic  = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// lzmaAlonePropsMax is the highest valid first byte of an LZMA "alone"
// properties block (lc + lp*9 + pb*45, maxed at lc=8,lp=4,pb=4 -> 224).
const lzmaAlonePropsMax = 224

// lzmaAloneHeaderSplice is the byte offset, within the received 9-byte
// properties+size header, after which four zero bytes are inserted to widen
// the 32-bit uncompressed-size field to the 64-bit field the "alone" decoder
// expects.
const lzmaAloneHeaderSplice = 9

// DecompressPayload selects LZMA, LZHAM, or Zstd based on the payload's
// leading magic bytes and returns the fully decompressed byte sequence.
func DecompressPayload(data []byte) ([]byte, error) {
	switch {
	case len(data) >= 4 && bytes.Equal(data[0:4], lzhamMagic):
		return decompressLZHAM(data)
	case len(data) >= 4 && bytes.Equal(data[0:4], zstdMagic):
		return decompressZstd(data)
	default:
		return decompressLZMAAlone(data)
	}
}

// decompressLZHAM parses the "SCLZ" header (dict_size_log2 byte, 4-byte LE
// uncompressed size) and calls the LZHAM decoder on the remaining stream.
func decompressLZHAM(data []byte) ([]byte, error) {
	c := NewCursor(data)
	if err := c.Skip(4); err != nil { // "SCLZ"
		return nil, fmt.Errorf("%w: %w", ErrLzhamDecode, err)
	}
	dictSizeLog2, err := c.U8()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLzhamDecode, err)
	}
	uncompressedSize, err := c.U32LE()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLzhamDecode, err)
	}
	stream, err := c.Read(c.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLzhamDecode, err)
	}

	out, err := lzham.Decompress(stream, dictSizeLog2, uncompressedSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLzhamDecode, err)
	}
	return out, nil
}

// decompressZstd decodes a standard Zstandard frame.
func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZstdDecode, err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZstdDecode, err)
	}
	return out, nil
}

// decompressLZMAAlone splices the 32-bit legacy uncompressed-size field to the
// canonical 64-bit field and decodes the result as a classic LZMA "alone"
// stream.
func decompressLZMAAlone(data []byte) ([]byte, error) {
	if len(data) < lzmaAloneHeaderSplice {
		return nil, fmt.Errorf("%w: %w", ErrLzmaDecode, ErrTruncatedInput)
	}
	if data[0] > lzmaAlonePropsMax {
		return nil, ErrLzmaProperties
	}

	spliced := make([]byte, 0, len(data)+4)
	spliced = append(spliced, data[:lzmaAloneHeaderSplice]...)
	spliced = append(spliced, 0, 0, 0, 0)
	spliced = append(spliced, data[lzmaAloneHeaderSplice:]...)

	r, err := lzma.NewReader(bytes.NewReader(spliced))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLzmaDecode, err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLzmaDecode, err)
	}
	return out, nil
}
