package lexer

import "sort"

// keywords is the reserved word set. true and false are reserved but lex as
// BOOL literals; the # spellings are directive words, recognised and never
// executed.
var keywords = map[string]struct{}{
	"fun": {}, "class": {}, "interface": {}, "var": {}, "override": {}, "pure": {},
	"if": {}, "else": {}, "for": {}, "while": {}, "return": {}, "unsafe": {},
	"val": {}, "static": {}, "public": {}, "private": {}, "implements": {},
	"as": {}, "is": {}, "null": {}, "true": {}, "false": {}, "typealias": {},
	"destructor": {}, "call": {},
	"#import": {}, "#define": {}, "#undef": {}, "#ifdef": {}, "#ifndef": {},
	"#else": {}, "#endif": {},
}

// multiOps holds every two-character operator. There are no longer ones.
var multiOps = map[string]struct{}{
	"==": {}, "!=": {}, "<=": {}, ">=": {}, "&&": {}, "||": {},
	"?:": {}, "?.": {}, "::": {}, ":=": {},
}

// xorWord is spelled like an identifier but lexes as an operator
const xorWord = "xor"

// IsKeyword reports whether s is a reserved word
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsMultiOp reports whether s is a two-character operator
func IsMultiOp(s string) bool {
	_, ok := multiOps[s]
	return ok
}

// isMultiOpPair avoids building a string for the common lookup
func isMultiOpPair(a, b byte) bool {
	pair := [2]byte{a, b}
	_, ok := multiOps[string(pair[:])]
	return ok
}

// Keywords returns the reserved words in sorted order
func Keywords() []string {
	return sortedKeys(keywords)
}

// MultiOps returns the two-character operators in sorted order
func MultiOps() []string {
	return sortedKeys(multiOps)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
