package token

// Visitor receives one call per token, selected by the token's variant.
// Literal kinds (INT, FLOAT, STRING, CHAR, BOOL) all go to VisitLiteral.
type Visitor interface {
	VisitIdent(t Token)
	VisitKeyword(t Token)
	VisitLiteral(t Token)
	VisitOperator(t Token)
	VisitPunct(t Token)
	VisitNewline(t Token)
	VisitComment(t Token)
	VisitEOF(t Token)
}

// Accept dispatches t to the matching Visitor method
func (t Token) Accept(v Visitor) {
	switch t.kind {
	case IDENT:
		v.VisitIdent(t)
	case KEYWORD:
		v.VisitKeyword(t)
	case INT, FLOAT, STRING, CHAR, BOOL:
		v.VisitLiteral(t)
	case OPERATOR:
		v.VisitOperator(t)
	case PUNCT:
		v.VisitPunct(t)
	case NEWLINE:
		v.VisitNewline(t)
	case COMMENT:
		v.VisitComment(t)
	case EOF:
		v.VisitEOF(t)
	}
}

// Walk calls Accept for every token in order
func Walk(tokens []Token, v Visitor) {
	for _, t := range tokens {
		t.Accept(v)
	}
}

// BaseVisitor ignores every token. Embed it to implement only the methods
// you need.
type BaseVisitor struct{}

func (BaseVisitor) VisitIdent(Token)    {}
func (BaseVisitor) VisitKeyword(Token)  {}
func (BaseVisitor) VisitLiteral(Token)  {}
func (BaseVisitor) VisitOperator(Token) {}
func (BaseVisitor) VisitPunct(Token)    {}
func (BaseVisitor) VisitNewline(Token)  {}
func (BaseVisitor) VisitComment(Token)  {}
func (BaseVisitor) VisitEOF(Token)      {}
