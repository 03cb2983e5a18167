package tokenfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ovum-lang/ovum/core/token"
)

// EncodeYAML writes tokens as a YAML document with the same shape as
// EncodeJSON.
func EncodeYAML(w io.Writer, tokens []token.Token) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(tokens)); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return nil
}

// DecodeYAML reads a document written by EncodeYAML
func DecodeYAML(r io.Reader) ([]token.Token, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	return doc.Decode()
}
