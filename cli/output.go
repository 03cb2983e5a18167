package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ovum-lang/ovum/core/token"
	"github.com/ovum-lang/ovum/core/tokenfmt"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCBOR = "cbor"
)

var formats = []string{formatText, formatJSON, formatYAML, formatCBOR}

// output renders token streams in the selected format
type output struct {
	format   string
	kinds    map[token.Kind]bool // nil means every kind
	useColor bool
}

func newOutput(format string, kinds []string, useColor bool) (*output, error) {
	format = strings.ToLower(format)
	if !contains(formats, format) {
		return nil, unknownChoice("format", format, formats)
	}

	out := &output{format: format, useColor: useColor}
	if len(kinds) > 0 {
		filter, err := parseKinds(kinds)
		if err != nil {
			return nil, err
		}
		out.kinds = filter
	}
	return out, nil
}

// parseKinds resolves --kind values. EOF is always kept so encoded
// streams stay well formed.
func parseKinds(names []string) (map[token.Kind]bool, error) {
	filter := map[token.Kind]bool{token.EOF: true}
	for _, name := range names {
		k, ok := token.ParseKind(strings.TrimSpace(name))
		if !ok {
			return nil, unknownChoice("token kind", name, kindNames())
		}
		filter[k] = true
	}
	return filter, nil
}

func kindNames() []string {
	names := make([]string, len(token.Kinds))
	for i, k := range token.Kinds {
		names[i] = k.String()
	}
	return names
}

func (o *output) filter(tokens []token.Token) []token.Token {
	if o.kinds == nil {
		return tokens
	}
	kept := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if o.kinds[tok.Kind()] {
			kept = append(kept, tok)
		}
	}
	return kept
}

func (o *output) write(w io.Writer, tokens []token.Token) error {
	tokens = o.filter(tokens)

	switch o.format {
	case formatJSON:
		return tokenfmt.EncodeJSON(w, tokens)
	case formatYAML:
		return tokenfmt.EncodeYAML(w, tokens)
	case formatCBOR:
		_, err := tokenfmt.Write(w, tokens)
		return err
	default:
		return DisplayTokens(w, tokens, o.useColor)
	}
}

// unknownChoice builds a usage error with a "did you mean" hint
func unknownChoice(what, got string, choices []string) *CLIError {
	err := &CLIError{
		Type:    "usage",
		Message: fmt.Sprintf("unknown %s %q", what, got),
		Details: "Valid values: " + strings.Join(choices, ", "),
	}
	if match := findClosestMatch(got, choices); match != "" {
		err.Hint = fmt.Sprintf("Did you mean %q?", match)
	}
	return err
}

// findClosestMatch finds the closest string match using fuzzy matching,
// falling back to edit distance for typos that are not subsequences.
func findClosestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", 3
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(target), strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
