package tokenfmt

import (
	"bytes"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/ovum-lang/ovum/core/invariant"
	"github.com/ovum-lang/ovum/core/token"
)

const (
	// Magic is the file magic number "OVTK" (4 bytes)
	Magic = "OVTK"

	// Version is the format version (uint16, little-endian)
	// 0x0001 = version 1.0
	Version uint16 = 0x0001

	preambleLen = 16
)

// Flags is a bitmask describing the stream
type Flags uint16

const (
	// FlagComments indicates the stream retains COMMENT tokens
	FlagComments Flags = 1 << 0

	// Bits 1-15 reserved
)

// Write writes tokens to w and returns the BLAKE2b-256 digest of the body.
func Write(w io.Writer, tokens []token.Token) ([32]byte, error) {
	wr := &Writer{w: w}
	return wr.WriteTokens(tokens)
}

// Writer handles writing token streams to binary format.
type Writer struct {
	w io.Writer
}

// WriteTokens writes the stream to the underlying writer.
// Format: MAGIC(4) | VERSION(2) | FLAGS(2) | BODY_LEN(8) | BODY
//
// The digest covers the body only; the preamble is framing.
func (wr *Writer) WriteTokens(tokens []token.Token) ([32]byte, error) {
	body, err := MarshalBody(tokens)
	if err != nil {
		return [32]byte{}, err
	}

	invariant.Positive(len(body), "canonical body length")
	digest := blake2b.Sum256(body)

	var preambleBuf bytes.Buffer
	preambleBuf.Grow(preambleLen)
	if err := writePreamble(&preambleBuf, flagsFor(tokens), uint64(len(body))); err != nil {
		return [32]byte{}, err
	}
	if _, err := wr.w.Write(preambleBuf.Bytes()); err != nil {
		return [32]byte{}, err
	}
	if _, err := wr.w.Write(body); err != nil {
		return [32]byte{}, err
	}

	return digest, nil
}

// Digest returns the digest Write would return for tokens without
// writing anything.
func Digest(tokens []token.Token) ([32]byte, error) {
	body, err := MarshalBody(tokens)
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(body), nil
}

func flagsFor(tokens []token.Token) Flags {
	for _, tok := range tokens {
		if tok.Kind() == token.COMMENT {
			return FlagComments
		}
	}
	return 0
}

func writePreamble(buf *bytes.Buffer, flags Flags, bodyLen uint64) error {
	if _, err := buf.WriteString(Magic); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.LittleEndian, Version); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(flags)); err != nil {
		return err
	}
	return binary.Write(buf, binary.LittleEndian, bodyLen)
}
