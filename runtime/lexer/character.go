package lexer

// ASCII character lookup tables for fast classification (zero-allocation)
//
// Use inline bounds-checked lookups:
//
//	if ch < 128 && isLetter[ch] { ... }
//
// Bytes >= 128 belong to no class; outside string and comment bodies they
// reach the default strategy and fail.
var (
	isWhitespace [128]bool // Space, tab, carriage return (newline is a token)
	isLetter     [128]bool // a-z, A-Z, _ (also the identifier start set)
	isDigit      [128]bool // 0-9
	isIdentPart  [128]bool // Letter, digit or _
)

const (
	operatorChars = "+-*/%<>=!&|^~?:."
	punctChars    = ",;:(){}[]"
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r'
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isDigit[i] = '0' <= ch && ch <= '9'

		// Identifiers: [a-zA-Z_][a-zA-Z0-9_]*
		isIdentPart[i] = isLetter[i] || isDigit[i]
	}
}

// Predicate forms for ConsumeWhile

func digitByte(ch byte) bool {
	return ch < 128 && isDigit[ch]
}

func identPartByte(ch byte) bool {
	return ch < 128 && isIdentPart[ch]
}

func whitespaceByte(ch byte) bool {
	return ch < 128 && isWhitespace[ch]
}
