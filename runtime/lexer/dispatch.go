package lexer

import (
	"fmt"

	"github.com/ovum-lang/ovum/core/invariant"
	"github.com/ovum-lang/ovum/core/token"
)

// strategy identifies the scanning routine for one class of leading byte
type strategy uint8

const (
	stratDefault strategy = iota // no class: unexpected character
	stratWhitespace
	stratNewline
	stratIdent
	stratDirective
	stratNumber
	stratDot
	stratString
	stratChar
	stratSlash
	stratOperator
	stratPunct
	strategyCount
)

func (s strategy) String() string {
	switch s {
	case stratDefault:
		return "default"
	case stratWhitespace:
		return "whitespace"
	case stratNewline:
		return "newline"
	case stratIdent:
		return "identifier"
	case stratDirective:
		return "directive"
	case stratNumber:
		return "number"
	case stratDot:
		return "dot"
	case stratString:
		return "string"
	case stratChar:
		return "char"
	case stratSlash:
		return "slash"
	case stratOperator:
		return "operator"
	case stratPunct:
		return "punct"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// scanFunc scans one lexical unit. The triggering byte has already been
// consumed and is available through Current. ok is false when the unit
// produces no token (whitespace, suppressed comments).
type scanFunc func(l *Lexer) (tok token.Token, ok bool, err error)

var scanners = [strategyCount]scanFunc{
	stratDefault:    scanDefault,
	stratWhitespace: scanWhitespace,
	stratNewline:    scanNewline,
	stratIdent:      scanIdentifier,
	stratDirective:  scanDirective,
	stratNumber:     scanNumber,
	stratDot:        scanDot,
	stratString:     scanString,
	stratChar:       scanChar,
	stratSlash:      scanSlash,
	stratOperator:   scanOperator,
	stratPunct:      scanPunct,
}

// byteClass is one entry of the class table: every byte in chars is
// claimed by strat.
type byteClass struct {
	strat strategy
	chars string
}

func lettersAndUnderscore() string {
	b := make([]byte, 0, 53)
	for c := byte('a'); c <= 'z'; c++ {
		b = append(b, c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		b = append(b, c)
	}
	return string(append(b, '_'))
}

var byteClasses = []byteClass{
	{stratWhitespace, " \t\r"},
	{stratNewline, "\n"},
	{stratIdent, lettersAndUnderscore()},
	{stratDirective, "#"},
	{stratNumber, "0123456789"},
	{stratString, `"`},
	{stratChar, "'"},
	{stratSlash, "/"},
	{stratOperator, operatorChars},
	{stratPunct, punctChars},
}

// sharedOwners resolves bytes claimed by more than one class. The order of
// byteClasses never decides ownership; a byte claimed twice without an
// entry here is a construction bug.
var sharedOwners = map[byte]strategy{
	'/': stratSlash,    // comments before the division operator
	'.': stratDot,      // ".5" is a number, a lone "." an operator
	':': stratOperator, // "::" and ":=" need operator lookahead
}

// dispatch maps every byte to its strategy. Computed once; read-only.
var dispatch = buildDispatch(byteClasses, sharedOwners)

func buildDispatch(classes []byteClass, owners map[byte]strategy) [256]strategy {
	var table [256]strategy
	var claimed [256]bool

	for _, class := range classes {
		for i := 0; i < len(class.chars); i++ {
			ch := class.chars[i]
			if claimed[ch] && table[ch] != class.strat {
				_, resolved := owners[ch]
				invariant.Invariant(resolved, "byte %q claimed by %s and %s without an explicit owner",
					ch, table[ch], class.strat)
			}
			table[ch] = class.strat
			claimed[ch] = true
		}
	}

	for ch, strat := range owners {
		table[ch] = strat
	}

	// The dot strategy subsumes both number and operator meanings of '.'
	// and is not reachable through a class of its own.
	invariant.Postcondition(table['.'] == stratDot, "'.' must dispatch to the dot strategy")
	return table
}

// strategyFor returns the strategy that owns ch
func strategyFor(ch byte) strategy {
	return dispatch[ch]
}
