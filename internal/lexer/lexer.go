package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/polinichcka-coding/Compiler/internal/lexer/token"
)

const eof = '\000'

type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("Unknown symbol: %s", e.Symbol)
}

// Lexer scans one expression. At every offset the token classes are tried in
// order: number, name, punctuation, comment, whitespace. Anything else is an
// unknown symbol and stops the scan.
type Lexer struct {
	src    string
	offset int
}

func New(src string) *Lexer {
	return &Lexer{src: src, offset: 0}
}

// Tokenize scans the whole source. The EOF token is not part of the result.
func Tokenize(src string) ([]*token.Token, error) {
	return New(src).Tokenize()
}

func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (lex *Lexer) Next() (*token.Token, error) {
	for {
		ch := lex.peekChar()
		if ch == eof && lex.offset >= len(lex.src) {
			return token.New("", token.EOF), nil
		}

		if end, ok := lex.matchNumber(); ok {
			return lex.consume(end, token.NUMBER), nil
		}
		if isLetter(ch) {
			return lex.getName(), nil
		}
		if kind, ok := token.PUNCTUATION[ch]; ok {
			return lex.consume(lex.offset+1, kind), nil
		}
		if lex.skipComment() || lex.skipWhitespace() {
			continue
		}

		_, size := utf8.DecodeRuneInString(lex.src[lex.offset:])
		return nil, &UnknownSymbolError{Symbol: lex.src[lex.offset : lex.offset+size]}
	}
}

// matchNumber reports where a number starting at the current offset ends:
// optional sign, digits with an optional fraction or a fraction alone, then an
// optional exponent. Nothing is consumed.
func (lex *Lexer) matchNumber() (int, bool) {
	i := lex.offset
	if c := lex.charAt(i); c == '+' || c == '-' {
		// a sign glued to the end of an operand is an operator, not a prefix
		if lex.followsOperand() {
			return 0, false
		}
		i++
	}

	switch {
	case isDigit(lex.charAt(i)):
		i = lex.digitsFrom(i)
		if lex.charAt(i) == '.' {
			i = lex.digitsFrom(i + 1)
		}
	case lex.charAt(i) == '.' && isDigit(lex.charAt(i+1)):
		i = lex.digitsFrom(i + 1)
	default:
		return 0, false
	}

	if lex.charAt(i) == 'e' {
		j := i + 1
		if c := lex.charAt(j); c == '+' || c == '-' {
			j++
		}
		if isDigit(lex.charAt(j)) {
			i = lex.digitsFrom(j)
		}
	}
	return i, true
}

func (lex *Lexer) getName() *token.Token {
	start := lex.offset
	lex.nextChar()
	for lex.offset < len(lex.src) {
		r, size := utf8.DecodeRuneInString(lex.src[lex.offset:])
		if !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_') {
			break
		}
		lex.offset += size
	}
	return token.New(lex.src[start:lex.offset], token.NAME)
}

// skipComment skips a /* ... */ comment. Like the rest of the scanner the
// comment body cannot span a newline.
func (lex *Lexer) skipComment() bool {
	rest := lex.src[lex.offset:]
	if !strings.HasPrefix(rest, "/*") {
		return false
	}
	body := rest[2:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[:nl]
	}
	end := strings.Index(body, "*/")
	if end < 0 {
		return false
	}
	lex.offset += 2 + end + 2
	return true
}

func (lex *Lexer) skipWhitespace() bool {
	skipped := lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\n'
	})
	return len(skipped) > 0
}

func (lex *Lexer) consume(end int, kind token.Kind) *token.Token {
	tok := token.New(lex.src[lex.offset:end], kind)
	lex.offset = end
	return tok
}

func (lex *Lexer) digitsFrom(i int) int {
	for isDigit(lex.charAt(i)) {
		i++
	}
	return i
}

func (lex *Lexer) readWhile(isValid func(byte) bool) string {
	start := lex.offset
	for lex.offset < len(lex.src) && isValid(lex.peekChar()) {
		lex.nextChar()
	}
	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	return lex.charAt(lex.offset)
}

func (lex *Lexer) charAt(i int) byte {
	if i >= len(lex.src) {
		return eof
	}
	return lex.src[i]
}

func (lex *Lexer) followsOperand() bool {
	if lex.offset == 0 {
		return false
	}
	prev := lex.src[lex.offset-1]
	return isDigit(prev) || isLetter(prev) || prev == '_' || prev == '.' || prev == ')' || prev >= utf8.RuneSelf
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
