package selector

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SyntaxError is returned by Parse for selector text it cannot make sense of.
type SyntaxError struct {
	Input  string // the text handed to Parse
	Offset int    // byte offset of the offending token
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("selector syntax error at offset %d in %q: %s", e.Offset, e.Input, e.Msg)
}

// Pseudo classes whose argument is itself a selector list. Their arguments
// are normalized to canonical text.
var selectorPseudos = map[string]bool{
	"not": true, "is": true, "where": true, "matches": true, "any": true,
}

// Parse parses a selector list, e.g. "nav > a.link, .btn:hover".
// Whitespace and comments are normalized away, so that the text of the
// returned list is canonical.
func Parse(text string) (List, error) {
	p := &parser{
		input: text,
		lexer: css.NewLexer(parse.NewInputString(text)),
	}
	list, err := p.parseList()
	if err != nil {
		tracer().Debugf("cannot parse selector %q: %v", text, err)
		return nil, err
	}
	return list, nil
}

// MustParse is like Parse but panics on syntax errors. It is intended for
// tests and static initialization.
func MustParse(text string) List {
	list, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return list
}

type token struct {
	tt     css.TokenType
	data   string
	offset int
}

func (t token) isDelim(d string) bool {
	return t.tt == css.DelimToken && t.data == d
}

func (t token) isEnd() bool {
	return t.tt == css.ErrorToken || t.tt == css.CommaToken
}

func (t token) combinator() (Combinator, bool) {
	if t.tt != css.DelimToken {
		return None, false
	}
	switch t.data {
	case ">":
		return Child, true
	case "+":
		return NextSibling, true
	case "~":
		return SubsequentSibling, true
	}
	return None, false
}

type parser struct {
	input  string
	lexer  *css.Lexer
	pos    int
	backup []token
	err    error // lexer error other than EOF
}

// next returns the next non-comment token.
func (p *parser) next() token {
	if n := len(p.backup); n > 0 {
		t := p.backup[n-1]
		p.backup = p.backup[:n-1]
		return t
	}
	for {
		tt, data := p.lexer.Next()
		t := token{tt: tt, data: string(data), offset: p.pos}
		p.pos += len(data)
		if tt == css.CommentToken {
			continue
		}
		if tt == css.ErrorToken && p.lexer.Err() != io.EOF {
			p.err = p.lexer.Err()
		}
		return t
	}
}

func (p *parser) unread(t token) {
	p.backup = append(p.backup, t)
}

func (p *parser) errorf(t token, format string, args ...interface{}) error {
	return &SyntaxError{Input: p.input, Offset: t.offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseList() (List, error) {
	var list List
	for {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		list = append(list, sel)
		t := p.next()
		if t.tt == css.ErrorToken {
			if p.err != nil {
				return nil, p.errorf(t, "%v", p.err)
			}
			return list, nil
		}
		// parseSelector stops at commas and at the end of input only
	}
}

func (p *parser) parseSelector() (Selector, error) {
	var sel Selector
	comb := None
	for {
		t := p.next()
		switch {
		case t.tt == css.WhitespaceToken:
			if len(sel) > 0 && comb == None {
				comb = Descendant
			}
		case t.isEnd():
			if len(sel) == 0 {
				return nil, p.errorf(t, "empty selector")
			}
			if comb != None && comb != Descendant {
				return nil, p.errorf(t, "dangling combinator")
			}
			p.unread(t)
			return sel, nil
		default:
			if c, ok := t.combinator(); ok {
				if len(sel) == 0 {
					return nil, p.errorf(t, "selector starts with combinator %q", t.data)
				}
				if comb != None && comb != Descendant {
					return nil, p.errorf(t, "two combinators in a row")
				}
				comb = c
				continue
			}
			p.unread(t)
			compound, err := p.parseCompound()
			if err != nil {
				return nil, err
			}
			if len(sel) == 0 {
				comb = None
			}
			sel = append(sel, Step{Combinator: comb, Compound: compound})
			comb = None
		}
	}
}

func (p *parser) parseCompound() (Compound, error) {
	var c Compound
	for {
		t := p.next()
		if _, isComb := t.combinator(); isComb || t.isEnd() || t.tt == css.WhitespaceToken {
			p.unread(t)
			if len(c) == 0 {
				return nil, p.errorf(t, "expected simple selector")
			}
			return c, nil
		}
		s, err := p.parseSimple(t)
		if err != nil {
			return nil, err
		}
		if s.isElement() && len(c) > 0 {
			return nil, p.errorf(t, "element selector %q must come first in compound", s)
		}
		c = append(c, s)
	}
}

func (p *parser) parseSimple(t token) (Simple, error) {
	switch {
	case t.tt == css.IdentToken:
		return Simple{Kind: Type, Name: t.data}, nil
	case t.tt == css.HashToken:
		return Simple{Kind: ID, Name: t.data[1:]}, nil
	case t.isDelim("*"):
		return Simple{Kind: Universal}, nil
	case t.isDelim("."):
		name, err := p.ident(t)
		return Simple{Kind: Class, Name: name}, err
	case t.isDelim("%"):
		name, err := p.ident(t)
		return Simple{Kind: Placeholder, Name: name}, err
	case t.isDelim("&"):
		s := Simple{Kind: Parent}
		if suffix := p.next(); suffix.tt == css.IdentToken {
			s.Name = suffix.data
		} else {
			p.unread(suffix)
		}
		return s, nil
	case t.tt == css.LeftBracketToken:
		arg, err := p.attribute(t)
		return Simple{Kind: Attribute, Arg: arg}, err
	case t.tt == css.ColonToken:
		return p.pseudo(t)
	}
	return Simple{}, p.errorf(t, "unexpected %s %q", t.tt, t.data)
}

func (p *parser) ident(after token) (string, error) {
	t := p.next()
	if t.tt != css.IdentToken {
		return "", p.errorf(t, "expected identifier after %q", after.data)
	}
	return t.data, nil
}

func (p *parser) pseudo(colon token) (Simple, error) {
	s := Simple{Kind: PseudoClass}
	t := p.next()
	if t.tt == css.ColonToken {
		s.Kind = PseudoElement
		t = p.next()
	}
	switch t.tt {
	case css.IdentToken:
		s.Name = t.data
		return s, nil
	case css.FunctionToken:
		s.Name = strings.TrimSuffix(t.data, "(")
		arg, err := p.parenArg(t)
		if err != nil {
			return s, err
		}
		if selectorPseudos[strings.ToLower(s.Name)] {
			if list, err := Parse(arg); err == nil {
				arg = list.Text()
			}
		}
		s.Arg = arg
		return s, nil
	}
	return s, p.errorf(t, "expected pseudo selector name after %q", colon.data)
}

// parenArg collects the raw text up to the parenthesis matching the one
// opened by fn, collapsing whitespace.
func (p *parser) parenArg(fn token) (string, error) {
	var b strings.Builder
	depth := 1
	space := false
	for {
		t := p.next()
		switch t.tt {
		case css.ErrorToken:
			return "", p.errorf(t, "unclosed parenthesis of %q", fn.data)
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return strings.TrimSpace(b.String()), nil
			}
		case css.WhitespaceToken:
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteString(t.data)
	}
}

// attribute collects the inside of an attribute selector. Whitespace is
// kept only where it separates two words, as in `[type="text" i]`.
func (p *parser) attribute(open token) (string, error) {
	var b strings.Builder
	var prev css.TokenType
	space := false
	for {
		t := p.next()
		switch t.tt {
		case css.ErrorToken:
			return "", p.errorf(t, "unclosed attribute selector")
		case css.RightBracketToken:
			if b.Len() == 0 {
				return "", p.errorf(t, "empty attribute selector")
			}
			return b.String(), nil
		case css.WhitespaceToken:
			space = true
			continue
		}
		if space && isWord(prev) && isWord(t.tt) {
			b.WriteByte(' ')
		}
		space = false
		prev = t.tt
		b.WriteString(t.data)
	}
}

func isWord(tt css.TokenType) bool {
	return tt == css.IdentToken || tt == css.StringToken || tt == css.NumberToken
}
