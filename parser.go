package vcl

import (
	"strings"

	"github.com/gofhir/vcl/compose"
)

// parser consumes the token sequence left to right, driving the bucket
// accumulator that assembles composition rules. It keeps the source text so
// system and value-set URIs can be reconstructed from raw byte offsets
// regardless of how their interior tokenized.
type parser struct {
	src  string
	toks []Token
	pos  int
}

// scope is the system qualifier currently in force.
type scope struct {
	system  string
	version string
}

// parseExpression compiles a VCL expression into a composition. All-or-
// nothing: any violation aborts with a *ParseError and no partial result.
func parseExpression(src string) (*compose.Compose, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &ParseError{Msg: "empty expression", Pos: -1}
	}
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}

	comp := &compose.Compose{}
	sc := scope{}
	if err := p.clause(comp, &sc, 0); err != nil {
		return nil, err
	}
	if p.at(KindMinus) {
		p.next()
		if err := p.exclusionGroup(comp, sc, 0); err != nil {
			return nil, err
		}
	}
	switch p.peek().Kind {
	case KindEOF:
	case KindRightParen:
		return nil, parseErrorf(p.peek().Pos, "unmatched ')'")
	default:
		return nil, parseErrorf(p.peek().Pos, "unexpected %s after expression", p.peek().Kind)
	}
	return comp, nil
}

// --- Token helpers ---

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Kind != KindEOF {
		p.pos++
	}
	return t
}

func (p *parser) at(k Kind) bool {
	return p.toks[p.pos].Kind == k
}

// --- Rule accumulation ---

// buckets gathers the conjuncts of one disjunct. Codes, filters and value
// set references are kept apart so a flush never emits a mixed rule.
type buckets struct {
	sys       scope
	concepts  []compose.Concept
	filters   []compose.Filter
	valueSets []string
}

func (b *buckets) empty() bool {
	return len(b.concepts) == 0 && len(b.filters) == 0 && len(b.valueSets) == 0
}

// flush emits one rule per populated bucket under the bucket scope and
// resets the accumulation. Emitted lists are never empty.
func (b *buckets) flush(comp *compose.Compose) {
	if len(b.concepts) > 0 {
		comp.Include = append(comp.Include, compose.Rule{
			System:  b.sys.system,
			Version: b.sys.version,
			Concept: b.concepts,
		})
		b.concepts = nil
	}
	if len(b.filters) > 0 {
		comp.Include = append(comp.Include, compose.Rule{
			System:  b.sys.system,
			Version: b.sys.version,
			Filter:  b.filters,
		})
		b.filters = nil
	}
	if len(b.valueSets) > 0 {
		comp.Include = append(comp.Include, compose.Rule{
			System:   b.sys.system,
			Version:  b.sys.version,
			ValueSet: b.valueSets,
		})
		b.valueSets = nil
	}
}

// align brings the bucket scope back to the scope in force, flushing first
// if a spliced group left the bucket under a different system.
func (b *buckets) align(comp *compose.Compose, sc scope) {
	if b.sys != sc {
		b.flush(comp)
		b.sys = sc
	}
}

// --- Grammar descent ---

// clause parses `disjunct (';' disjunct)*`. At the top level a new disjunct
// resets the system scope; inside a group the scope set by a qualifier
// persists until the group closes.
func (p *parser) clause(comp *compose.Compose, sc *scope, depth int) error {
	for {
		if err := p.disjunct(comp, sc, depth); err != nil {
			return err
		}
		if !p.at(KindSemicolon) {
			return nil
		}
		p.next()
		if depth == 0 {
			*sc = scope{}
		}
	}
}

// disjunct parses `conjunct (',' conjunct)*` and flushes the gathered
// buckets into the composition.
func (p *parser) disjunct(comp *compose.Compose, sc *scope, depth int) error {
	b := buckets{sys: *sc}
	for {
		if err := p.conjunct(comp, sc, &b, depth); err != nil {
			return err
		}
		if !p.at(KindComma) {
			break
		}
		p.next()
	}
	b.flush(comp)
	return nil
}

// conjunct parses `systemQualifier? (conceptAtom | filterAtom |
// valueSetAtom | wildcardAtom | group)` and adds the result to the buckets.
func (p *parser) conjunct(comp *compose.Compose, sc *scope, b *buckets, depth int) error {
	// A new qualifier closes out anything gathered under the previous one
	// so a rule never spans two systems.
	for p.at(KindLeftParen) && p.systemAhead() {
		system, version, err := p.systemQualifier()
		if err != nil {
			return err
		}
		b.flush(comp)
		sc.system, sc.version = system, version
		b.sys = *sc
	}

	tok := p.peek()
	switch tok.Kind {
	case KindLeftParen:
		if err := p.spliceGroup(comp, sc, b, depth); err != nil {
			return err
		}

	case KindCaret:
		uri, err := p.valueSetRef()
		if err != nil {
			return err
		}
		b.align(comp, *sc)
		b.valueSets = append(b.valueSets, uri)

	case KindStar:
		p.next()
		b.align(comp, *sc)
		b.filters = append(b.filters, compose.Filter{Property: "concept", Op: compose.OpExists, Value: "true"})

	case KindCode, KindString:
		p.next()
		next := p.peek()
		if op, ok := filterOperator(next.Kind); ok {
			p.next()
			if err := p.filterValue(comp, tok.Text, op, sc, b); err != nil {
				return err
			}
		} else if next.Kind == KindCaret || next.Kind == KindLeftParen {
			return parseErrorf(next.Pos, "nested filter: %q may not be followed by a group", tok.Text)
		} else {
			b.align(comp, *sc)
			b.concepts = append(b.concepts, compose.Concept{Code: tok.Text})
		}

	case KindEqual, KindIsA, KindIsNotA, KindSlash:
		return parseErrorf(tok.Pos, "filter operator %s has no property", tok.Kind)

	case KindEOF:
		return parseErrorf(tok.Pos, "unexpected end of expression")

	default:
		return parseErrorf(tok.Pos, "unexpected %s", tok.Kind)
	}

	// Two atoms with nothing between them is a missing operator, not a
	// silent concatenation.
	switch p.peek().Kind {
	case KindCode, KindString, KindStar, KindCaret, KindLeftParen:
		return parseErrorf(p.peek().Pos, "missing operator before %s", p.peek().Kind)
	}
	return nil
}

// filterValue parses the value position of a filter atom. Only a plain code
// or a quoted literal is valid there; any grouping construct is the nested
// filter error.
func (p *parser) filterValue(comp *compose.Compose, property string, op compose.Operator, sc *scope, b *buckets) error {
	tok := p.peek()
	switch tok.Kind {
	case KindCode, KindString:
		p.next()
		b.align(comp, *sc)
		b.filters = append(b.filters, compose.Filter{Property: property, Op: op, Value: tok.Text})
		return nil
	case KindLeftParen, KindCaret:
		return parseErrorf(tok.Pos, "nested filter: value of %q must be a plain code or quoted literal", property)
	default:
		return parseErrorf(tok.Pos, "missing value for filter %q", property)
	}
}

// spliceGroup parses a parenthesized precedence group as a full
// sub-expression and splices its rules into the enclosing disjunct.
func (p *parser) spliceGroup(comp *compose.Compose, sc *scope, b *buckets, depth int) error {
	lp := p.next()
	sub, err := p.subExpression(*sc, depth+1)
	if err != nil {
		return err
	}
	if !p.at(KindRightParen) {
		return parseErrorf(lp.Pos, "unmatched '('")
	}
	p.next()

	for _, rule := range sub.Include {
		ruleScope := scope{system: rule.System, version: rule.Version}
		if ruleScope != b.sys {
			if !b.empty() {
				b.flush(comp)
			}
			b.sys = ruleScope
		}
		b.concepts = append(b.concepts, rule.Concept...)
		b.filters = append(b.filters, rule.Filter...)
		b.valueSets = append(b.valueSets, rule.ValueSet...)
	}
	comp.Exclude = append(comp.Exclude, sub.Exclude...)
	return nil
}

// subExpression parses `clause ('-' group)?` with an inherited scope, as
// the interior of a parenthesized group.
func (p *parser) subExpression(sc scope, depth int) (*compose.Compose, error) {
	sub := &compose.Compose{}
	local := sc
	if err := p.clause(sub, &local, depth); err != nil {
		return nil, err
	}
	if p.at(KindMinus) {
		p.next()
		if err := p.exclusionGroup(sub, local, depth); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// exclusionGroup parses the parenthesized operand of a '-' and turns its
// include rules into exclude rules.
func (p *parser) exclusionGroup(comp *compose.Compose, sc scope, depth int) error {
	if !p.at(KindLeftParen) {
		return parseErrorf(p.peek().Pos, "expected '(' after '-', got %s", p.peek().Kind)
	}
	lp := p.next()
	sub, err := p.subExpression(sc, depth+1)
	if err != nil {
		return err
	}
	if !p.at(KindRightParen) {
		return parseErrorf(lp.Pos, "unmatched '('")
	}
	p.next()
	if len(sub.Exclude) > 0 {
		return parseErrorf(lp.Pos, "exclusion nested within an exclusion")
	}
	comp.Exclude = append(comp.Exclude, sub.Include...)
	return nil
}

// valueSetRef parses `'^' '(' absoluteUri ')'` and returns the URI.
func (p *parser) valueSetRef() (string, error) {
	p.next() // '^'
	if !p.at(KindLeftParen) {
		return "", parseErrorf(p.peek().Pos, "expected '(' after '^', got %s", p.peek().Kind)
	}
	lp := p.next()
	for !p.at(KindRightParen) {
		switch p.peek().Kind {
		case KindEOF:
			return "", parseErrorf(lp.Pos, "unmatched '('")
		case KindLeftParen, KindCaret:
			return "", parseErrorf(p.peek().Pos, "unexpected %s in value set reference", p.peek().Kind)
		}
		p.next()
	}
	rp := p.next()
	uri := strings.TrimSpace(p.src[lp.End:rp.Pos])
	if !isAbsoluteURI(uri) {
		return "", parseErrorf(lp.End, "value set reference must be an absolute URI")
	}
	return uri, nil
}

// systemAhead reports whether the '(' at the current position opens a
// system qualifier: a flat group whose raw interior is a single absolute
// URI, optionally followed by '|' and a version.
func (p *parser) systemAhead() bool {
	lp := p.toks[p.pos]
	i := p.pos + 1
	for {
		switch p.toks[i].Kind {
		case KindRightParen:
			raw := strings.TrimSpace(p.src[lp.End:p.toks[i].Pos])
			system := raw
			if idx := strings.IndexByte(raw, '|'); idx >= 0 {
				system = raw[:idx]
			}
			return isAbsoluteURI(system)
		case KindCode, KindSlash, KindPipe:
			i++
		default:
			return false
		}
	}
}

// systemQualifier consumes a qualifier already identified by systemAhead
// and returns its system and version parts.
func (p *parser) systemQualifier() (system, version string, err error) {
	lp := p.next() // '('
	for !p.at(KindRightParen) {
		p.next()
	}
	rp := p.next()
	raw := strings.TrimSpace(p.src[lp.End:rp.Pos])
	if idx := strings.IndexByte(raw, '|'); idx >= 0 {
		return raw[:idx], raw[idx+1:], nil
	}
	return raw, "", nil
}

// filterOperator maps an operator token to its composition operator.
func filterOperator(k Kind) (compose.Operator, bool) {
	switch k {
	case KindEqual:
		return compose.OpEqual, true
	case KindIsA:
		return compose.OpIsA, true
	case KindIsNotA:
		return compose.OpIsNotA, true
	case KindSlash:
		return compose.OpRegex, true
	default:
		return 0, false
	}
}

// isAbsoluteURI reports whether s has a URI scheme and no whitespace. The
// compiler validates shape only; it never resolves the URI.
func isAbsoluteURI(s string) bool {
	if strings.ContainsAny(s, " \t\n\r") {
		return false
	}
	idx := strings.IndexByte(s, ':')
	if idx <= 0 || idx == len(s)-1 {
		return false
	}
	for i := 0; i < idx; i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
