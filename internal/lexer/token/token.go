package token

import "fmt"

// Token carries no position: the order of the token slice is all the parser
// needs.
type Token struct {
	Kind   Kind
	Lexeme string
}

func New(lexeme string, kind Kind) *Token {
	return &Token{Lexeme: lexeme, Kind: kind}
}

// Text returns the matched text, or a readable name for tokens without one.
func (token *Token) Text() string {
	if token.Lexeme == "" {
		return token.Kind.String()
	}
	return token.Lexeme
}

func (token *Token) Is(kind Kind) bool {
	return token != nil && token.Kind == kind
}

func (token *Token) String() string {
	return fmt.Sprintf("Token(%s, %s)", token.Kind, token.Lexeme)
}
