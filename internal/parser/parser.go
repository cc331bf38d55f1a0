// Package parser implements the surface-syntax parser named as an
// external collaborator by spec §6 and §1 ("returns a sort-checked term
// tree"): a plain-text formula language with implication, the `|`/`&`
// sugars, quantifiers, equality, and arithmetic.
//
// Precedence, lowest to highest: implication `->` (right-associative),
// `|`, `&`, unary `~` and the quantifiers `!x(...)`/`?x(...)`, equality
// `=`, `+`, `*`, then atoms (`0`, `S(...)`, parenthesized expressions,
// identifiers).
package parser

import (
	"fmt"

	"github.com/gitrdm/peanoprove/pkg/term"
)

// ParseError is returned verbatim to the caller per spec §7 — the
// driver reports it and aborts the session rather than retrying.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Message)
}

// Parser turns surface syntax into a term.Term. It holds no state beyond
// the lexer for the formula currently being parsed.
type Parser struct {
	lex *lexer
}

// New creates a Parser for the given input text.
func New(text string) *Parser {
	return &Parser{lex: newLexer(text)}
}

// Parse parses text as a single top-level formula (or numeric
// expression; see Parser.Parse).
func Parse(text string) (term.Term, error) {
	return New(text).Parse()
}

// Parse runs the parser over its input and returns the resulting term.
// A bare identifier with no "=" after it (e.g. a schema variable "P") is
// read as a LogicVarTerm, at the top level or nested, matching the
// convention that bare identifiers denote logic variables when not used
// as a numeric operand. Any other numeric expression at the top level,
// such as "0" or "x+y", is returned as a numeric term, not an error.
func (p *Parser) Parse() (t term.Term, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				t, err = nil, pe
				return
			}
			panic(r)
		}
	}()
	result := p.parseLogic()
	p.lex.skipWhitespace()
	if p.lex.current() != 0 {
		p.fail("unexpected trailing input")
	}
	return result, nil
}

func (p *Parser) fail(msg string) {
	panic(&ParseError{Pos: p.lex.pos, Message: msg})
}

// parseLogic handles implication, the lowest-precedence, right
// associative operator: A->B->C parses as A->(B->C).
func (p *Parser) parseLogic() term.Term {
	left := p.parseOr()

	p.lex.skipWhitespace()
	if p.lex.current() == '-' && p.lex.peek() == '>' {
		p.lex.advance()
		p.lex.advance()
		right := p.parseLogic()
		return term.Implies(asLogic(left), asLogic(right))
	}
	return left
}

// parseOr desugars P|Q as (¬P)->Q.
func (p *Parser) parseOr() term.Term {
	left := p.parseAnd()
	p.lex.skipWhitespace()
	for p.lex.current() == '|' {
		p.lex.advance()
		right := p.parseAnd()
		left = term.Implies(term.Not(asLogic(left)), asLogic(right))
		p.lex.skipWhitespace()
	}
	return left
}

// parseAnd desugars P&Q as ¬(P->¬Q).
func (p *Parser) parseAnd() term.Term {
	left := p.parseUnary()
	p.lex.skipWhitespace()
	for p.lex.current() == '&' {
		p.lex.advance()
		right := p.parseUnary()
		left = term.Not(term.Implies(asLogic(left), term.Not(asLogic(right))))
		p.lex.skipWhitespace()
	}
	return left
}

func (p *Parser) parseUnary() term.Term {
	p.lex.skipWhitespace()
	switch p.lex.current() {
	case '~':
		p.lex.advance()
		return term.Not(asLogic(p.parseUnary()))
	case '!':
		p.lex.advance()
		name := p.parseVarName()
		body := p.parseUnary()
		return term.Forall(term.NumericVar(name), asLogic(body))
	case '?':
		p.lex.advance()
		name := p.parseVarName()
		body := p.parseUnary()
		// ?x(P) ≡ ¬∀x¬P
		return term.Not(term.Forall(term.NumericVar(name), term.Not(asLogic(body))))
	default:
		return p.parseEquality()
	}
}

func (p *Parser) parseEquality() term.Term {
	left := p.parseNumeric()

	p.lex.skipWhitespace()
	if p.lex.current() == '=' {
		p.lex.advance()
		right := p.parseNumeric()
		return term.Equals(asNumeric(left), asNumeric(right))
	}

	// No relation followed: a bare variable at this level is a
	// schema/propositional variable, not a numeric one (spec §6's
	// naming convention; the original implementation performs this
	// same promotion unconditionally once no "=" follows).
	if v, ok := left.(term.NumericVarTerm); ok {
		return term.LogicVar(v.Name)
	}
	return left
}

func (p *Parser) parseNumeric() term.Term {
	return p.parseAdd()
}

func (p *Parser) parseAdd() term.Term {
	left := p.parseMul()
	p.lex.skipWhitespace()
	for p.lex.current() == '+' {
		p.lex.advance()
		right := p.parseMul()
		left = term.Add(asNumeric(left), asNumeric(right))
		p.lex.skipWhitespace()
	}
	return left
}

func (p *Parser) parseMul() term.Term {
	left := p.parseAtom()
	p.lex.skipWhitespace()
	for p.lex.current() == '*' {
		p.lex.advance()
		right := p.parseAtom()
		left = term.Multiply(asNumeric(left), asNumeric(right))
		p.lex.skipWhitespace()
	}
	return left
}

func (p *Parser) parseAtom() term.Term {
	p.lex.skipWhitespace()
	c := p.lex.current()

	switch {
	case c == '0':
		p.lex.advance()
		return term.Zero
	case c == 'S':
		p.lex.advance()
		if p.lex.current() != '(' {
			p.fail("expected '(' after S")
		}
		p.lex.advance()
		inner := p.parseNumeric()
		if p.lex.current() != ')' {
			p.fail("expected ')' closing S(...)")
		}
		p.lex.advance()
		return term.Successor(asNumeric(inner))
	case c == '(':
		p.lex.advance()
		expr := p.parseLogic()
		if p.lex.current() != ')' {
			p.fail("expected ')'")
		}
		p.lex.advance()
		return expr
	case isAlnum(c):
		name := p.parseVarName()
		return term.NumericVar(name)
	default:
		p.fail(fmt.Sprintf("unexpected character %q", c))
		return nil
	}
}

func (p *Parser) parseVarName() string {
	p.lex.skipWhitespace()
	var name []rune
	for isAlnum(p.lex.current()) {
		name = append(name, p.lex.current())
		p.lex.advance()
	}
	if len(name) == 0 {
		p.fail("expected identifier")
	}
	return string(name)
}

func asLogic(t term.Term) term.Term {
	if t.Sort() != term.Logic {
		panic(&ParseError{Message: fmt.Sprintf("expected a logic expression, got %s", t)})
	}
	return t
}

func asNumeric(t term.Term) term.Term {
	if t.Sort() != term.Numeric {
		panic(&ParseError{Message: fmt.Sprintf("expected a numeric expression, got %s", t)})
	}
	return t
}
