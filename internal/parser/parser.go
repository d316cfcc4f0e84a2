package parser

import (
	"errors"
	"fmt"

	"github.com/polinichcka-coding/Compiler/internal/ast"
	"github.com/polinichcka-coding/Compiler/internal/lexer"
	"github.com/polinichcka-coding/Compiler/internal/lexer/token"
)

var ErrUnexpectedEOF = errors.New("Unexpected end of input")

type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Parser builds the tree for exactly one expression:
//
//	expression := NUMBER | NAME '(' [ expression (',' expression)* ] ')'
type Parser struct {
	cursor *cursor
}

func New(tokens []*token.Token) *Parser {
	return &Parser{cursor: newCursor(tokens)}
}

// ParseString tokenizes and parses src.
func ParseString(src string) (ast.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// Parse consumes the whole token slice. Tokens left over after the top-level
// expression are an error.
func (p *Parser) Parse() (ast.Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if extra := p.cursor.peek(); extra != nil {
		return nil, syntaxErrorf("Unexpected token after expression: %s", extra.Text())
	}
	return expr, nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	tok := p.cursor.peek()
	if tok == nil {
		return nil, ErrUnexpectedEOF
	}

	switch tok.Kind {
	case token.NUMBER:
		p.cursor.next()
		return ast.NewNumber(tok.Lexeme), nil
	case token.NAME:
		return p.parseCall()
	default:
		return nil, syntaxErrorf("Unrecognisable token: %s", tok.Text())
	}
}

func (p *Parser) parseCall() (*ast.Call, error) {
	name := p.cursor.next()

	_, err := p.expect(token.OPEN_PAREN, func(found *token.Token) error {
		return syntaxErrorf("Expected ( after %s but found %s", name.Lexeme, found.Text())
	})
	if err != nil {
		return nil, err
	}

	call := ast.NewCall(name.Lexeme)
	if !p.cursor.nextIs(token.CLOSE_PAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			if !p.cursor.nextIs(token.COMMA) {
				break
			}
			p.cursor.next()
		}
	}

	_, err = p.expect(token.CLOSE_PAREN, func(found *token.Token) error {
		return syntaxErrorf("Expected ) but found %s", found.Text())
	})
	if err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) expect(kind token.Kind, mismatch func(*token.Token) error) (*token.Token, error) {
	tok := p.cursor.peek()
	if tok == nil {
		return nil, ErrUnexpectedEOF
	}
	if tok.Kind != kind {
		return nil, mismatch(tok)
	}
	return p.cursor.next(), nil
}
