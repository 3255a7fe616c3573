package scdump

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Chunk tags recognized by ChunkWalker. Anything outside this set is skipped
// by policy (ErrUnknownChunkTag), never fatal.
const (
	tagMatrix        = 8
	tagOpaque1       = 12
	tagKTXPayload    = 45
	tagSCTXReference = 47
	tagOpaque2       = 49
)

var inlineTextureTags = map[uint8]bool{1: true, 24: true, 27: true, 28: true}
var swizzledInlineTags = map[uint8]bool{27: true, 28: true}

func recognizedTag(tag uint8) bool {
	switch tag {
	case 1, tagMatrix, tagOpaque1, 24, 27, 28, tagKTXPayload, tagSCTXReference, tagOpaque2:
		return true
	default:
		return false
	}
}

// oldDictionaryPrologueFixed is the fixed portion (bytes to skip before the
// string-count field) of the legacy OldDictionary string table.
const oldDictionaryPrologueFixed = 17

// SCTXResolver loads a sibling SCTX file referenced by tag 47, given its
// filename (as stored) resolved against the source file's directory.
type SCTXResolver func(filename string) ([]byte, error)

// WalkOptions configures ChunkWalker.
type WalkOptions struct {
	// OldDictionary selects the legacy string-table prologue before the first
	// chunk (CLI flag --old).
	OldDictionary bool
	// ResolveSCTX loads sibling SCTX files named by tag 47. If nil, tag 47
	// chunks are reported as warnings and skipped.
	ResolveSCTX SCTXResolver
	// BaseName prefixes every produced Output's filename ("{BaseName}_{n}.png").
	BaseName string
	// Log receives diagnostics; a nil Log uses logrus.StandardLogger().
	Log *logrus.Logger
}

func (o WalkOptions) logger() *logrus.Logger {
	if o.Log != nil {
		return o.Log
	}
	return logrus.StandardLogger()
}

// WalkChunks iterates the decompressed inner stream of an SC envelope,
// decoding every inline/referenced/embedded texture it finds into an Output.
// Errors scoped to a single chunk (unknown tag, unknown pixel sub-type,
// unknown texture kind/format) are logged and returned as warnings; the walk
// continues. A truncated stream aborts the whole walk.
func WalkChunks(data []byte, opts WalkOptions) (outputs []Output, warnings []error, err error) {
	log := opts.logger()
	c := NewCursor(data)

	if opts.OldDictionary {
		if err := skipOldDictionaryPrologue(c); err != nil {
			return nil, nil, fmt.Errorf("old dictionary prologue: %w", err)
		}
	}

	index := 0
	for c.Len() > 0 {
		tag, size, err := readChunkHeader(c)
		if err != nil {
			return outputs, warnings, err
		}
		if size == 0 {
			continue // sentinel
		}

		if !recognizedTag(tag) {
			log.WithFields(logrus.Fields{"tag": tag, "size": size}).Error("unknown chunk tag")
			warnings = append(warnings, fmt.Errorf("%w: tag %d", ErrUnknownChunkTag, tag))
			if err := c.Skip(int(size)); err != nil {
				return outputs, warnings, err
			}
			continue
		}

		out, warn, walkErr := decodeChunk(c, tag, size, index, opts.BaseName, opts, log)
		if walkErr != nil {
			return outputs, warnings, walkErr
		}
		if warn != nil {
			warnings = append(warnings, warn)
		}
		if out != nil {
			outputs = append(outputs, *out)
			index++
		}
	}

	return outputs, warnings, nil
}

func readChunkHeader(c *Cursor) (tag uint8, size uint32, err error) {
	tag, err = c.U8()
	if err != nil {
		return 0, 0, err
	}
	size, err = c.U32LE()
	if err != nil {
		return 0, 0, err
	}
	return tag, size, nil
}

// decodeChunk dispatches one recognized, non-sentinel chunk. It returns a
// produced Output (nil if the chunk carries no image), a non-fatal warning
// (nil if none), and a fatal error (only for a truncated stream).
func decodeChunk(c *Cursor, tag uint8, size uint32, index int, baseName string, opts WalkOptions, log *logrus.Logger) (*Output, error, error) {
	switch {
	case tag == tagMatrix:
		if err := c.Skip(int(size)); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil

	case tag == tagOpaque1 || tag == tagOpaque2:
		if err := c.Skip(int(size)); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil

	case tag == tagKTXPayload:
		return decodeTag45(c, int(size), index, baseName, log)

	case tag == tagSCTXReference:
		return decodeTag47(c, int(size), index, baseName, opts, log)

	case inlineTextureTags[tag]:
		return decodeInlineTexture(c, tag, size, index, baseName, log)

	default:
		// Unreachable: recognizedTag already filtered this.
		if err := c.Skip(int(size)); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	}
}

func decodeTag45(c *Cursor, size int, index int, baseName string, log *logrus.Logger) (*Output, error, error) {
	start := c.Pos()
	innerSize, err := c.U32LE()
	if err != nil {
		return nil, nil, err
	}
	body, err := c.Read(int(innerSize))
	if err != nil {
		return nil, nil, err
	}
	consumed := c.Pos() - start
	if remaining := size - consumed; remaining > 0 {
		if err := c.Skip(remaining); err != nil {
			return nil, nil, err
		}
	}

	raster, decErr := DecodeKTX(body)
	if decErr != nil {
		log.WithError(decErr).Warn("tag 45 KTX payload decode failed")
		return nil, decErr, nil
	}
	return &Output{Kind: OutputPNG, Name: fmt.Sprintf("%s_%d.png", baseName, index), Raster: raster}, nil, nil
}

func decodeTag47(c *Cursor, size int, index int, baseName string, opts WalkOptions, log *logrus.Logger) (*Output, error, error) {
	start := c.Pos()
	filename, err := c.LengthPrefixedString()
	if err != nil {
		return nil, nil, err
	}
	consumed := c.Pos() - start
	if remaining := size - consumed; remaining > 0 {
		if err := c.Skip(remaining); err != nil {
			return nil, nil, err
		}
	}

	if opts.ResolveSCTX == nil {
		log.WithField("filename", filename).Warn("tag 47 SCTX reference with no resolver configured")
		return nil, fmt.Errorf("scdump: no SCTX resolver for %q", filename), nil
	}

	body, err := opts.ResolveSCTX(filename)
	if err != nil {
		log.WithError(err).WithField("filename", filename).Warn("failed to load referenced SCTX file")
		return nil, err, nil
	}

	raster, decErr := DecodeSCTX(body)
	if decErr != nil {
		log.WithError(decErr).WithField("filename", filename).Warn("referenced SCTX decode failed")
		return nil, decErr, nil
	}
	return &Output{Kind: OutputPNG, Name: fmt.Sprintf("%s_%d.png", baseName, index), Raster: raster}, nil, nil
}

func decodeInlineTexture(c *Cursor, tag uint8, size uint32, index int, baseName string, log *logrus.Logger) (*Output, error, error) {
	subType, err := c.U8()
	if err != nil {
		return nil, nil, err
	}
	width, err := c.U16LE()
	if err != nil {
		return nil, nil, err
	}
	height, err := c.U16LE()
	if err != nil {
		return nil, nil, err
	}

	const headerLen = 5
	pixelLen := int(size) - headerLen
	if pixelLen < 0 {
		return nil, nil, ErrTruncatedInput
	}
	pixels, err := c.Read(pixelLen)
	if err != nil {
		return nil, nil, err
	}

	if swizzledInlineTags[tag] {
		bpp, bppErr := bytesPerPixel(PixelSubType(subType))
		if bppErr != nil {
			log.WithError(bppErr).WithField("sub_type", subType).Warn("unknown pixel sub-type")
			return nil, bppErr, nil
		}
		if len(pixels) != int(width)*int(height)*bpp {
			log.WithField("sub_type", subType).Warn("inline texture pixel buffer size mismatch")
			return nil, ErrPixelBufferSize, nil
		}
		pixels = Deswizzle(pixels, int(width), int(height), bpp)
	}

	raster, decErr := DecodePixels(PixelSubType(subType), pixels, int(width), int(height))
	if decErr != nil {
		log.WithError(decErr).WithField("sub_type", subType).Warn("inline texture decode failed")
		return nil, decErr, nil
	}

	return &Output{Kind: OutputPNG, Name: fmt.Sprintf("%s_%d.png", baseName, index), Raster: raster}, nil, nil
}

func skipOldDictionaryPrologue(c *Cursor) error {
	if err := c.Skip(oldDictionaryPrologueFixed); err != nil {
		return err
	}
	n, err := c.U16LE()
	if err != nil {
		return err
	}
	if err := c.Skip(int(n) * 2); err != nil {
		return err
	}
	for i := 0; i < int(n); i++ {
		if _, err := c.LengthPrefixedString(); err != nil {
			return err
		}
	}
	return nil
}
