package compiler

type Stage int

const (
	STAGE_LEX Stage = iota
	STAGE_PARSE
	STAGE_VALIDATE
)

func (s Stage) String() string {
	switch s {
	case STAGE_LEX:
		return "lex"
	case STAGE_PARSE:
		return "parse"
	case STAGE_VALIDATE:
		return "validate"
	}
	return "unknown"
}

// StageError tags a pipeline failure with the stage that produced it. Its
// message is the inner error's message alone.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }
