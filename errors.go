package scdump

import "errors"

// Decode errors. Use errors.Is to check kind.
var (
	// ErrUnknownContainer is returned when the leading bytes of a file match no
	// known container magic.
	ErrUnknownContainer = errors.New("scdump: unknown container")
	// ErrTruncatedInput is returned when a Cursor read runs past the end of its
	// buffer.
	ErrTruncatedInput = errors.New("scdump: truncated input")
	// ErrLzmaProperties is returned when the LZMA properties byte is out of the
	// valid range (> 224).
	ErrLzmaProperties = errors.New("scdump: invalid lzma properties byte")
	// ErrLzmaDecode is returned when the LZMA decoder fails.
	ErrLzmaDecode = errors.New("scdump: lzma decode failed")
	// ErrLzhamDecode is returned when the LZHAM decoder fails.
	ErrLzhamDecode = errors.New("scdump: lzham decode failed")
	// ErrZstdDecode is returned when the Zstd decoder fails.
	ErrZstdDecode = errors.New("scdump: zstd decode failed")
	// ErrHashMismatch names the kind of an OuterSC payload whose MD5 does not
	// match its declared hash. Non-fatal: ParseOuterSC logs the mismatch as a
	// warning and does not return this error.
	ErrHashMismatch = errors.New("scdump: hash mismatch")
	// ErrUnknownChunkTag is returned when ChunkWalker encounters a tag outside
	// the recognized set. Non-fatal: the walker skips the chunk and continues.
	ErrUnknownChunkTag = errors.New("scdump: unknown chunk tag")
	// ErrUnknownPixelSubType is returned when PixelDecoder is given a sub_type
	// outside the recognized set.
	ErrUnknownPixelSubType = errors.New("scdump: unknown pixel sub-type")
	// ErrPixelBufferSize is returned when a pixel payload's length does not
	// match width * height * bytes-per-pixel.
	ErrPixelBufferSize = errors.New("scdump: pixel buffer size mismatch")
	// ErrUnknownSCTXKind is returned when an SCTX texture_kind is not 5 or 12.
	ErrUnknownSCTXKind = errors.New("scdump: unknown SCTX texture kind")
	// ErrUnknownTextureFormat is returned when a KTX format value maps to no
	// known decoder.
	ErrUnknownTextureFormat = errors.New("scdump: unknown texture format")
	// ErrUnknownKTXIdentifier is returned when a KTX file's 12-byte identifier
	// matches neither KTX1 nor KTX2.
	ErrUnknownKTXIdentifier = errors.New("scdump: unknown KTX identifier")
)
