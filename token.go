package vcl

// Kind identifies the lexical class of a token.
type Kind int

// Token kinds produced by the lexer.
const (
	// KindCode is a bare code or identifier.
	KindCode Kind = iota
	// KindString is a double-quoted literal with the quotes stripped.
	KindString
	KindComma
	KindSemicolon
	KindMinus
	KindCaret
	KindLeftParen
	KindRightParen
	KindPipe
	// KindEqual through KindStar are the filter operator lexemes.
	KindEqual  // =
	KindIsA    // <<
	KindIsNotA // ~<<
	KindSlash  // /
	KindStar   // *
	KindEOF
)

// String returns a human-readable name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindString:
		return "quoted string"
	case KindComma:
		return "','"
	case KindSemicolon:
		return "';'"
	case KindMinus:
		return "'-'"
	case KindCaret:
		return "'^'"
	case KindLeftParen:
		return "'('"
	case KindRightParen:
		return "')'"
	case KindPipe:
		return "'|'"
	case KindEqual:
		return "'='"
	case KindIsA:
		return "'<<'"
	case KindIsNotA:
		return "'~<<'"
	case KindSlash:
		return "'/'"
	case KindStar:
		return "'*'"
	case KindEOF:
		return "end of expression"
	default:
		return "unknown token"
	}
}

// Token is one lexical unit of a VCL expression. Pos and End are byte
// offsets into the source text; for quoted strings they span the delimiters
// while Text holds only the interior.
type Token struct {
	Kind Kind
	Text string
	Pos  int
	End  int
}
