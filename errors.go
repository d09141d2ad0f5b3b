package evalexpr

import "strconv"

// InputError is an error with position information. Every error resulting
// from an invalid expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of bytes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// CharError indicates a byte that cannot start any token. It implements
// InputError.
type CharError struct {
	// Col is the position of the byte.
	Col int
	// Char is the offending byte.
	Char byte
}

func (err *CharError) Error() string {
	if err.Char < ' ' || err.Char >= 0x7f {
		s := strconv.FormatUint(uint64(err.Char), 16)
		if len(s) < 2 {
			s = "0" + s
		}
		return errpos(err.Col, "unexpected character 0x"+s)
	}
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(rune(err.Char)))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError indicates a malformed numeric literal. It implements
// InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the scanned literal text.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "bad numeric literal "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// EndError indicates that the expression ended where an operand or further
// input was required. It implements InputError.
type EndError struct {
	// Col is the position one past the end of the input.
	Col int
}

func (err *EndError) Error() string {
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EndError) Pos() int {
	return err.Col
}

// TokenError indicates a token that cannot begin an operand. It implements
// InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token text.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// ExpectError indicates that a required token, such as a closing
// parenthesis, was not found. It implements InputError.
type ExpectError struct {
	// Col is the position of the token that was found instead.
	Col int
	// Want is the required token text.
	Want string
	// Got is the text of the token found instead; empty at end of input.
	Got string
}

func (err *ExpectError) Error() string {
	if err.Got == "" {
		return errpos(err.Col, "expected "+strconv.Quote(err.Want)+" before end of expression")
	}
	return errpos(err.Col, "expected "+strconv.Quote(err.Want)+", found "+strconv.Quote(err.Got))
}

func (err *ExpectError) Pos() int {
	return err.Col
}

// TrailingError indicates unconsumed text after a complete expression. It
// implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Text is the remaining input.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected text at end of expression: "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// FuncError indicates a call to a name that is in no function catalog. It
// implements InputError.
type FuncError struct {
	// Col is the position of the function name.
	Col int
	// Name is the name that was called.
	Name string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "function "+strconv.Quote(err.Name)+" not implemented")
}

func (err *FuncError) Pos() int {
	return err.Col
}

// CallArgsError indicates a call to a known function with an argument count
// for which no catalog holds it. It implements InputError.
type CallArgsError struct {
	// Col is the position of the function name.
	Col int
	// Name is the name that was called.
	Name string
	// Args is the number of arguments parsed.
	Args int
}

func (err *CallArgsError) Error() string {
	return errpos(err.Col, "cannot call "+err.Name+" with "+strconv.Itoa(err.Args)+" arguments")
}

func (err *CallArgsError) Pos() int {
	return err.Col
}

// DivZeroError indicates division, compound division assignment, or modulo
// with a zero divisor. It implements InputError.
type DivZeroError struct {
	// Col is the position of the operator or call.
	Col int
	// Op is the operation: "/", "/=", or "mod".
	Op string
}

func (err *DivZeroError) Error() string {
	if err.Op == "mod" {
		return errpos(err.Col, "divide by zero in mod")
	}
	return errpos(err.Col, "divide by zero")
}

func (err *DivZeroError) Pos() int {
	return err.Col
}

// DepthError indicates an expression nested beyond the recursion limit. It
// implements InputError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested too deeply")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*EndError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*ExpectError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*CallArgsError)(nil)
	_ InputError = (*DivZeroError)(nil)
	_ InputError = (*DepthError)(nil)
)
