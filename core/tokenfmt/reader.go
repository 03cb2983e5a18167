package tokenfmt

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/ovum-lang/ovum/core/token"
)

// Limits applied before allocating anything read from the stream
const (
	maxBodyLen = 64 * 1024 * 1024 // 64MB
	maxTokens  = 4 * 1024 * 1024
)

// Read reads a token stream from r and returns the tokens and the digest
// of the body.
func Read(r io.Reader) ([]token.Token, [32]byte, error) {
	rd := &Reader{r: r}
	return rd.ReadTokens()
}

// Reader handles reading token streams from binary format.
type Reader struct {
	r io.Reader
}

// ReadTokens reads the stream from the underlying reader.
func (rd *Reader) ReadTokens() ([]token.Token, [32]byte, error) {
	var preamble [preambleLen]byte
	if _, err := io.ReadFull(rd.r, preamble[:]); err != nil {
		return nil, [32]byte{}, fmt.Errorf("read preamble: %w", err)
	}

	magic := string(preamble[0:4])
	if magic != Magic {
		return nil, [32]byte{}, fmt.Errorf("invalid magic: got %q, expected %q", magic, Magic)
	}

	version := binary.LittleEndian.Uint16(preamble[4:6])
	if version != Version {
		return nil, [32]byte{}, fmt.Errorf("unsupported version: got 0x%04x, expected 0x%04x", version, Version)
	}

	// Reject unknown flags for this version
	flags := Flags(binary.LittleEndian.Uint16(preamble[6:8]))
	knownFlags := FlagComments
	if flags&^knownFlags != 0 {
		return nil, [32]byte{}, fmt.Errorf("unsupported flags: 0x%04x (unknown bits: 0x%04x)", flags, flags&^knownFlags)
	}

	bodyLen := binary.LittleEndian.Uint64(preamble[8:16])
	if bodyLen > maxBodyLen {
		return nil, [32]byte{}, fmt.Errorf("body length %d exceeds maximum %d", bodyLen, maxBodyLen)
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(rd.r, body); err != nil {
		return nil, [32]byte{}, fmt.Errorf("read body: %w", err)
	}

	tokens, err := UnmarshalBody(body)
	if err != nil {
		return nil, [32]byte{}, fmt.Errorf("parse body: %w", err)
	}

	if got := flagsFor(tokens); got != flags {
		return nil, [32]byte{}, fmt.Errorf("flags 0x%04x do not match body (0x%04x)", flags, got)
	}

	return tokens, blake2b.Sum256(body), nil
}
