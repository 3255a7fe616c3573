package scdump

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeKTXUnknownIdentifier(t *testing.T) {
	_, err := DecodeKTX(make([]byte, 16))
	if !errors.Is(err, ErrUnknownKTXIdentifier) {
		t.Fatalf("err = %v, want ErrUnknownKTXIdentifier", err)
	}
}

func TestDecodeKTX1UnknownFormatReachesPayload(t *testing.T) {
	le32 := func(v uint32) []byte {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		return b[:]
	}

	var buf []byte
	buf = append(buf, ktx1Identifier...)
	buf = append(buf, make([]byte, 16)...)      // endianness, glType, glTypeSize, glFormat
	buf = append(buf, le32(0xDEADBEEF)...)      // glInternalFormat: unrecognized on purpose
	buf = append(buf, le32(0)...)                // glBaseInternalFormat
	buf = append(buf, le32(4)...)                // pixelWidth
	buf = append(buf, le32(4)...)                // pixelHeight
	buf = append(buf, make([]byte, 16)...)      // pixelDepth, array elements, faces, mip levels
	buf = append(buf, le32(0)...)                // bytesOfKeyValueData
	buf = append(buf, le32(0)...)                // trailing padding decodeKTX1 skips before the payload

	_, err := DecodeKTX(buf)
	if !errors.Is(err, ErrUnknownTextureFormat) {
		t.Fatalf("err = %v, want ErrUnknownTextureFormat", err)
	}
}

func TestDecodeSCTXUnknownKind(t *testing.T) {
	buf := make([]byte, sctxHeaderSkip1+2+2+4+4+sctxFixedSkip+4+sctxHeaderSkip2)
	offset := sctxHeaderSkip1
	binary.LittleEndian.PutUint16(buf[offset:], 4) // width
	offset += 2
	binary.LittleEndian.PutUint16(buf[offset:], 4) // height
	offset += 2
	binary.LittleEndian.PutUint32(buf[offset:], 999) // kind: unrecognized

	_, err := DecodeSCTX(buf)
	if !errors.Is(err, ErrUnknownSCTXKind) {
		t.Fatalf("err = %v, want ErrUnknownSCTXKind", err)
	}
}
