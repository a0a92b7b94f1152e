package vcl

// tokenize converts a VCL expression into its token sequence in a single
// left-to-right pass. On success the sequence always ends with a KindEOF
// token. The only lexical errors are an unterminated quoted literal and a
// character that belongs to no lexeme; operator adjacency is the parser's
// concern.
func tokenize(src string) ([]Token, error) {
	toks := make([]Token, 0, 16)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '(':
			toks = append(toks, Token{Kind: KindLeftParen, Text: "(", Pos: i, End: i + 1})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: KindRightParen, Text: ")", Pos: i, End: i + 1})
			i++
		case c == ',':
			toks = append(toks, Token{Kind: KindComma, Text: ",", Pos: i, End: i + 1})
			i++
		case c == ';':
			toks = append(toks, Token{Kind: KindSemicolon, Text: ";", Pos: i, End: i + 1})
			i++
		case c == '^':
			toks = append(toks, Token{Kind: KindCaret, Text: "^", Pos: i, End: i + 1})
			i++
		case c == '|':
			toks = append(toks, Token{Kind: KindPipe, Text: "|", Pos: i, End: i + 1})
			i++
		case c == '=':
			toks = append(toks, Token{Kind: KindEqual, Text: "=", Pos: i, End: i + 1})
			i++
		case c == '/':
			toks = append(toks, Token{Kind: KindSlash, Text: "/", Pos: i, End: i + 1})
			i++
		case c == '*':
			toks = append(toks, Token{Kind: KindStar, Text: "*", Pos: i, End: i + 1})
			i++

		case c == '<':
			if i+1 < len(src) && src[i+1] == '<' {
				toks = append(toks, Token{Kind: KindIsA, Text: "<<", Pos: i, End: i + 2})
				i += 2
			} else {
				return nil, parseErrorf(i, "unexpected character '<'")
			}
		case c == '~':
			if i+2 < len(src) && src[i+1] == '<' && src[i+2] == '<' {
				toks = append(toks, Token{Kind: KindIsNotA, Text: "~<<", Pos: i, End: i + 3})
				i += 3
			} else {
				return nil, parseErrorf(i, "unexpected character '~'")
			}

		case c == '"':
			end := -1
			for j := i + 1; j < len(src); j++ {
				if src[j] == '"' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, parseErrorf(i, "unterminated quoted literal")
			}
			toks = append(toks, Token{Kind: KindString, Text: src[i+1 : end], Pos: i, End: end + 1})
			i = end + 1

		case c == '-':
			// A minus glued to a following code character belongs to the
			// code (ICD-10); otherwise it is the exclusion operator.
			if i+1 < len(src) && isCodeChar(src[i+1]) {
				j := scanCode(src, i)
				toks = append(toks, Token{Kind: KindCode, Text: src[i:j], Pos: i, End: j})
				i = j
			} else {
				toks = append(toks, Token{Kind: KindMinus, Text: "-", Pos: i, End: i + 1})
				i++
			}

		case isCodeChar(c):
			j := scanCode(src, i)
			toks = append(toks, Token{Kind: KindCode, Text: src[i:j], Pos: i, End: j})
			i = j

		default:
			return nil, parseErrorf(i, "unexpected character %q", rune(c))
		}
	}
	toks = append(toks, Token{Kind: KindEOF, Pos: len(src), End: len(src)})
	return toks, nil
}

// scanCode returns the end offset of the bare code starting at offset i.
// Interior minus signs are absorbed only when immediately followed by
// another code character, so `A-(B)` splits while `ICD-10` does not.
func scanCode(src string, i int) int {
	j := i
	for j < len(src) {
		c := src[j]
		if isCodeChar(c) {
			j++
			continue
		}
		if c == '-' && j+1 < len(src) && isCodeChar(src[j+1]) {
			j++
			continue
		}
		break
	}
	return j
}

// isCodeChar reports whether c may appear in a bare code. Colons are
// included so URN-style system URIs lex as a single code.
func isCodeChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == ':':
		return true
	default:
		return false
	}
}
