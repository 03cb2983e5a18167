package tokenfmt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"

	"github.com/ovum-lang/ovum/core/invariant"
	"github.com/ovum-lang/ovum/core/token"
)

// FormatVersion is the document format written by EncodeJSON and
// EncodeYAML. Readers accept any document with the same major version.
const FormatVersion = "v1.0.0"

// Document is the JSON/YAML envelope of a token stream
type Document struct {
	Format string           `json:"format" yaml:"format"`
	Tokens []CanonicalToken `json:"tokens" yaml:"tokens"`
}

// NewDocument wraps tokens in a document of the current format version
func NewDocument(tokens []token.Token) Document {
	return Document{Format: FormatVersion, Tokens: FromTokens(tokens)}
}

// Decode checks the format version and rebuilds the tokens
func (d Document) Decode() ([]token.Token, error) {
	if err := checkFormatVersion(d.Format); err != nil {
		return nil, err
	}
	return ToTokens(d.Tokens)
}

func checkFormatVersion(format string) error {
	v := format
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid format version %q", format)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("unsupported format version %s (reader supports %s.x)", format, semver.Major(FormatVersion))
	}
	return nil
}

// EncodeJSON writes tokens as an indented JSON document
func EncodeJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(tokens)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// DecodeJSON validates a JSON document against the schema and rebuilds
// its tokens.
func DecodeJSON(r io.Reader) ([]token.Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return doc.Decode()
}

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://tokens.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
)

// ValidateJSON checks data against the token stream JSON Schema
func ValidateJSON(data []byte) error {
	schema := tokenSchema()

	// Numbers stay json.Number so 64-bit integers keep their precision
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid token document: %w", err)
	}
	return nil
}

// tokenSchema compiles the embedded schema once. It cannot fail unless
// schema.json itself is broken.
func tokenSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true

		// Extend (not replace) the standard format validators
		if compiler.Formats == nil {
			compiler.Formats = make(map[string]func(interface{}) bool)
		}
		compiler.Formats["semver"] = isSemver

		// The schema is self-contained; refuse to load anything else
		compiler.LoadURL = func(url string) (io.ReadCloser, error) {
			return nil, fmt.Errorf("external $ref not allowed: %s", url)
		}

		err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON))
		invariant.ExpectNoError(err, "add embedded token schema")

		compiledSchema, err = compiler.Compile(schemaURL)
		invariant.ExpectNoError(err, "compile embedded token schema")
	})
	return compiledSchema
}

func isSemver(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return true // Type validation happens separately
	}
	// semver.IsValid requires "v" prefix; accept both
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return semver.IsValid(s)
}
