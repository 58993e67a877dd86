package polyerr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	DivisionByZero
	UnsupportedOperand
	NegativeExponent
	NonIntegerExponent
	UnknownOperator
	StackUnderflow
	DegreeTooHigh
)

func (c ErrCode) String() string {
	switch c {
	case Parse:
		return "ParseError"
	case DivisionByZero:
		return "DivisionByZero"
	case UnsupportedOperand:
		return "UnsupportedOperand"
	case NegativeExponent:
		return "NegativeExponent"
	case NonIntegerExponent:
		return "NonIntegerExponent"
	case UnknownOperator:
		return "UnknownOperator"
	case StackUnderflow:
		return "StackUnderflow"
	case DegreeTooHigh:
		return "DegreeTooHigh"
	default:
		return "None"
	}
}

type PolyError interface {
	Error() string
	Code() ErrCode
	Positioner

	withStack([]byte) PolyError
	withRange(Range) PolyError
	getStack() []byte
}

func FormatWithCode(e PolyError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatWithSource formats e like FormatWithCode and, when e has a position,
// underlines the offending characters of source
func FormatWithSource(e PolyError, source string) string {
	formatted := FormatWithCode(e)
	start, end := e.Pos(), e.End()
	if end <= start || end > len(source) {
		return formatted
	}
	sb := strings.Builder{}
	sb.WriteString(formatted)
	sb.WriteString("\n  ")
	sb.WriteString(source)
	sb.WriteString("\n  ")
	sb.WriteString(strings.Repeat(" ", start))
	sb.WriteString(strings.Repeat("^", end-start))
	return sb.String()
}

func New[E PolyError](err E) PolyError {
	return err.withStack(debug.Stack())
}

// At attaches r to err, unless err already carries a position
func At(err PolyError, r Range) PolyError {
	if err.End() > err.Pos() {
		return err
	}
	return err.withRange(r)
}

// Is reports whether err, or any error it wraps, is a PolyError with the given code
func Is(err error, code ErrCode) bool {
	var polyErr PolyError
	if !errors.As(err, &polyErr) {
		return false
	}
	return polyErr.Code() == code
}

type NewParse struct {
	Range
	Message string
	stack   []byte
}

func (e NewParse) Error() string               { return e.Message }
func (e NewParse) Code() ErrCode               { return Parse }
func (e NewParse) getStack() []byte            { return e.stack }
func (e NewParse) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewParse) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewDivisionByZero struct {
	Range
	stack []byte
}

func (e NewDivisionByZero) Error() string               { return "division by zero" }
func (e NewDivisionByZero) Code() ErrCode               { return DivisionByZero }
func (e NewDivisionByZero) getStack() []byte            { return e.stack }
func (e NewDivisionByZero) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewDivisionByZero) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewUnsupportedOperand struct {
	Range
	Operator string
	Operand  string
	stack    []byte
}

func (e NewUnsupportedOperand) Error() string {
	return fmt.Sprintf("operator '%s' only supports a constant right operand, found '%s'", e.Operator, e.Operand)
}
func (e NewUnsupportedOperand) Code() ErrCode               { return UnsupportedOperand }
func (e NewUnsupportedOperand) getStack() []byte            { return e.stack }
func (e NewUnsupportedOperand) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewUnsupportedOperand) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewNegativeExponent struct {
	Range
	Exponent float64
	stack    []byte
}

func (e NewNegativeExponent) Error() string {
	return fmt.Sprintf("negative exponent %v is not supported", e.Exponent)
}
func (e NewNegativeExponent) Code() ErrCode               { return NegativeExponent }
func (e NewNegativeExponent) getStack() []byte            { return e.stack }
func (e NewNegativeExponent) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewNegativeExponent) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewNonIntegerExponent struct {
	Range
	Exponent float64
	stack    []byte
}

func (e NewNonIntegerExponent) Error() string {
	return fmt.Sprintf("non-integer exponent %v is not supported", e.Exponent)
}
func (e NewNonIntegerExponent) Code() ErrCode               { return NonIntegerExponent }
func (e NewNonIntegerExponent) getStack() []byte            { return e.stack }
func (e NewNonIntegerExponent) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewNonIntegerExponent) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewUnknownOperator struct {
	Range
	Operator string
	stack    []byte
}

func (e NewUnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator '%s'", e.Operator)
}
func (e NewUnknownOperator) Code() ErrCode               { return UnknownOperator }
func (e NewUnknownOperator) getStack() []byte            { return e.stack }
func (e NewUnknownOperator) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewUnknownOperator) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewStackUnderflow struct {
	Range
	Operator string
	stack    []byte
}

func (e NewStackUnderflow) Error() string {
	return fmt.Sprintf("operator '%s' is missing an operand", e.Operator)
}
func (e NewStackUnderflow) Code() ErrCode               { return StackUnderflow }
func (e NewStackUnderflow) getStack() []byte            { return e.stack }
func (e NewStackUnderflow) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewStackUnderflow) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

type NewDegreeTooHigh struct {
	Range
	Degree int
	Max    int
	stack  []byte
}

func (e NewDegreeTooHigh) Error() string {
	return fmt.Sprintf("degree %d exceeds the maximum of %d", e.Degree, e.Max)
}
func (e NewDegreeTooHigh) Code() ErrCode               { return DegreeTooHigh }
func (e NewDegreeTooHigh) getStack() []byte            { return e.stack }
func (e NewDegreeTooHigh) withRange(r Range) PolyError { e.Range = r; return e }
func (e NewDegreeTooHigh) withStack(stack []byte) PolyError {
	e.stack = stack
	return e
}

// Shift moves the position of err by offset. Errors without a position are returned unchanged.
func Shift(err error, offset int) error {
	var polyErr PolyError
	if !errors.As(err, &polyErr) {
		return err
	}
	r := Range{PosStart: polyErr.Pos(), PosEnd: polyErr.End()}
	if !r.IsValid() {
		return err
	}
	return polyErr.withRange(r.Shift(offset))
}
