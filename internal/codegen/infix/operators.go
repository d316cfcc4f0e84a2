package infix

type Assoc int

const (
	LEFT Assoc = iota
	RIGHT
)

func (a Assoc) String() string {
	if a == RIGHT {
		return "right"
	}
	return "left"
}

type Operator struct {
	Symbol string // empty for tern, which is rendered as c?t:f
	Prec   int
	Assoc  Assoc
}

const (
	PREC_TERN     = 1
	PREC_TERM     = 2
	PREC_FACTOR   = 3
	PREC_EXPONENT = 4
)

// OPERATORS holds the rendering rules of every function sema accepts.
// Higher precedence binds tighter. Read-only.
var OPERATORS map[string]Operator = map[string]Operator{
	"tern": {Symbol: "", Prec: PREC_TERN, Assoc: RIGHT},
	"add":  {Symbol: "+", Prec: PREC_TERM, Assoc: LEFT},
	"sub":  {Symbol: "-", Prec: PREC_TERM, Assoc: LEFT},
	"mul":  {Symbol: "*", Prec: PREC_FACTOR, Assoc: LEFT},
	"div":  {Symbol: "/", Prec: PREC_FACTOR, Assoc: LEFT},
	"mod":  {Symbol: "%", Prec: PREC_FACTOR, Assoc: LEFT},
	"pow":  {Symbol: "^", Prec: PREC_EXPONENT, Assoc: RIGHT},
}
