package token

type Kind int

const (
	EOF Kind = iota

	// 12, -3.5, .5e+2
	NUMBER
	// add, mul, tern
	NAME

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN
	// ,
	COMMA
)

// PUNCTUATION maps the single-character tokens to their kind. Read-only after
// package initialization.
var PUNCTUATION map[byte]Kind = map[byte]Kind{
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	',': COMMA,
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "eof"
	case NUMBER:
		return "number"
	case NAME:
		return "name"
	case OPEN_PAREN:
		return "leftpar"
	case CLOSE_PAREN:
		return "rightpar"
	case COMMA:
		return "comma"
	}
	return "unknown"
}
