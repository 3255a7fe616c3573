package scdump

import (
	"bytes"
	"crypto/md5" //nolint:gosec // wire-format checksum, not a security boundary
	"fmt"

	"github.com/sirupsen/logrus"
)

// OuterSCHeader is the envelope preceding an SC container's compressed
// payload.
type OuterSCHeader struct {
	VersionMajor uint32
	VersionMinor uint32
	Hash         []byte
}

// ParseOuterSC consumes the OuterSCHeader (big-endian fields) and the
// remaining CompressedPayload, decompresses it via DecompressPayload, and
// verifies the MD5 hash when the hash_length field is 16. A mismatch is logged as a
// warning, never returned as a fatal error.
func ParseOuterSC(data []byte, log *logrus.Logger) (header OuterSCHeader, inner []byte, err error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := NewCursor(data)
	if err := c.Skip(2); err != nil { // "SC" magic, already classified by Dispatch
		return header, nil, err
	}

	major, err := c.U32BE()
	if err != nil {
		return header, nil, err
	}
	minor, err := c.U32BE()
	if err != nil {
		return header, nil, err
	}
	hashLen, err := c.U32BE()
	if err != nil {
		return header, nil, err
	}
	hash, err := c.Read(int(hashLen))
	if err != nil {
		return header, nil, err
	}

	header = OuterSCHeader{VersionMajor: major, VersionMinor: minor, Hash: append([]byte(nil), hash...)}

	payload, err := c.Read(c.Len())
	if err != nil {
		return header, nil, err
	}

	inner, err = DecompressPayload(payload)
	if err != nil {
		return header, nil, err
	}

	if hashLen == 16 {
		sum := md5.Sum(inner) //nolint:gosec // wire-format checksum, not a security boundary
		if !bytes.Equal(sum[:], header.Hash) {
			log.WithFields(logrus.Fields{
				"expected": fmt.Sprintf("%x", header.Hash),
				"actual":   fmt.Sprintf("%x", sum[:]),
			}).Warn("hash mismatch")
		}
	}

	return header, inner, nil
}
