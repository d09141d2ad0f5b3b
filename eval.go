package evalexpr

import "math"

// maxDepth bounds recursion through nested operands so that pathological
// inputs are rejected instead of exhausting the call stack.
const maxDepth = 256

// Evaluator evaluates arithmetic expressions against a persistent symbol
// table. The table survives across Evaluate calls, so variables assigned in
// one expression are visible to the next. An Evaluator is not safe to use
// concurrently; give each goroutine its own, or serialize access.
type Evaluator struct {
	syms *SymbolTable

	// Per-call state. Evaluate reinitializes all of it, so repeated calls
	// behave identically regardless of what prior calls did.
	lex   lexer
	tok   token
	depth int
}

// Option is an option used when creating an Evaluator.
type Option interface {
	option(*Evaluator)
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (o varopt) option(e *Evaluator)  { e.syms.Set(o.name, o.val) }
func (o varsopt) option(e *Evaluator) {
	for k, v := range o {
		e.syms.Set(k, v)
	}
}

// SetVar preloads the value of a variable.
func SetVar(name string, value float64) Option {
	return varopt{name, value}
}

// SetVars preloads the values of any number of variables.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// New creates an Evaluator whose symbol table holds pi, e, and any variables
// given as options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{syms: NewSymbolTable()}
	for _, opt := range opts {
		opt.option(e)
	}
	return e
}

// Set inserts a variable or overwrites its value.
func (e *Evaluator) Set(name string, value float64) {
	e.syms.Set(name, value)
}

// Lookup returns the value of a variable, including the computed names
// "time" and "timems". The reported bool is false if the name is absent.
func (e *Evaluator) Lookup(name string) (float64, bool) {
	return e.syms.Lookup(name)
}

// Evaluate evaluates an expression and returns its value. On error the
// result is NaN. Assignments made by the expression persist in the
// Evaluator's symbol table, including assignments that completed before the
// error was detected.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	e.lex = lexer{src: expr}
	e.tok = token{}
	e.depth = 0
	v, err := e.commaList(true)
	if err != nil {
		return math.NaN(), err
	}
	if e.tok.kind != tokenEOF {
		return math.NaN(), &TrailingError{Col: e.tok.pos, Text: expr[e.tok.pos-1:]}
	}
	return v, nil
}

// EvalString evaluates a single expression with a fresh Evaluator.
func EvalString(expr string, opts ...Option) (float64, error) {
	return New(opts...).Evaluate(expr)
}

// next advances the lookahead token.
func (e *Evaluator) next(suppressSign bool) error {
	tok, err := e.lex.next(suppressSign)
	if err != nil {
		return err
	}
	e.tok = tok
	return nil
}

// Each precedence level below takes get, which tells it to advance the
// lookahead before reading it, and leaves the first token it does not
// consume as the lookahead for its caller.

// commaList evaluates a left-to-right chain of comma-separated expressions.
// Each comma discards the previous value and keeps only the last, which is
// how sequential initialization like "a=1, b=a+1" works.
func (e *Evaluator) commaList(get bool) (float64, error) {
	left, err := e.expression(get)
	if err != nil {
		return 0, err
	}
	for e.tok.kind == tokenComma {
		left, err = e.expression(true)
		if err != nil {
			return 0, err
		}
	}
	return left, nil
}

// expression evaluates a chain of && and || over comparisons, yielding 1 or
// 0. Both operands always evaluate; there is no short-circuiting.
func (e *Evaluator) expression(get bool) (float64, error) {
	left, err := e.comparison(get)
	if err != nil {
		return 0, err
	}
	for {
		switch e.tok.kind {
		case tokenAnd:
			right, err := e.comparison(true)
			if err != nil {
				return 0, err
			}
			left = btof(left != 0 && right != 0)
		case tokenOr:
			right, err := e.comparison(true)
			if err != nil {
				return 0, err
			}
			left = btof(left != 0 || right != 0)
		default:
			return left, nil
		}
	}
}

// comparison evaluates a chain of comparison operators over sums, each
// yielding 1 or 0. Chains reinterpret the boolean: a<b<c compares the result
// of a<b against c.
func (e *Evaluator) comparison(get bool) (float64, error) {
	left, err := e.addSubtract(get)
	if err != nil {
		return 0, err
	}
	for {
		kind := e.tok.kind
		switch kind {
		case tokenLT, tokenLE, tokenGT, tokenGE, tokenEQ, tokenNE:
		default:
			return left, nil
		}
		right, err := e.addSubtract(true)
		if err != nil {
			return 0, err
		}
		switch kind {
		case tokenLT:
			left = btof(left < right)
		case tokenLE:
			left = btof(left <= right)
		case tokenGT:
			left = btof(left > right)
		case tokenGE:
			left = btof(left >= right)
		case tokenEQ:
			left = btof(left == right)
		case tokenNE:
			left = btof(left != right)
		}
	}
}

// addSubtract evaluates a left-to-right chain of + and - over terms.
func (e *Evaluator) addSubtract(get bool) (float64, error) {
	left, err := e.term(get)
	if err != nil {
		return 0, err
	}
	for {
		switch e.tok.kind {
		case tokenAdd:
			right, err := e.term(true)
			if err != nil {
				return 0, err
			}
			left += right
		case tokenSub:
			right, err := e.term(true)
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// term evaluates a left-to-right chain of *, /, and ^ over primaries. The ^
// operator binds at this level, so 2^3^2 is (2^3)^2.
func (e *Evaluator) term(get bool) (float64, error) {
	left, err := e.primary(get)
	if err != nil {
		return 0, err
	}
	for {
		switch e.tok.kind {
		case tokenPow:
			right, err := e.primary(true)
			if err != nil {
				return 0, err
			}
			left = math.Pow(left, right)
		case tokenMul:
			right, err := e.primary(true)
			if err != nil {
				return 0, err
			}
			left *= right
		case tokenDiv:
			col := e.tok.pos
			right, err := e.primary(true)
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, &DivZeroError{Col: col, Op: "/"}
			}
			left /= right
		default:
			return left, nil
		}
	}
}

// primary evaluates a base operand: a numeric literal, a variable reference
// or assignment, a function call, a unary - or !, or a parenthesized comma
// list.
func (e *Evaluator) primary(get bool) (float64, error) {
	if e.depth >= maxDepth {
		return 0, &DepthError{Col: e.tok.pos}
	}
	e.depth++
	defer func() { e.depth-- }()
	if get {
		if err := e.next(false); err != nil {
			return 0, err
		}
	}
	switch e.tok.kind {
	case tokenNum:
		v := e.tok.val
		// The operand is complete, so a following + or - is an operator, not
		// the sign of the next literal.
		if err := e.next(true); err != nil {
			return 0, err
		}
		return v, nil
	case tokenIdent:
		return e.identifier()
	case tokenSub:
		v, err := e.primary(true)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokenNot:
		v, err := e.primary(true)
		if err != nil {
			return 0, err
		}
		return btof(v == 0), nil
	case tokenLParen:
		// Inside parentheses, commas are the comma operator.
		v, err := e.commaList(true)
		if err != nil {
			return 0, err
		}
		if e.tok.kind != tokenRParen {
			return 0, &ExpectError{Col: e.tok.pos, Want: ")", Got: e.tok.text}
		}
		// Eat the ) and suppress the sign of what follows: (2+3)-1 is a
		// subtraction, not a signed literal.
		if err := e.next(true); err != nil {
			return 0, err
		}
		return v, nil
	case tokenEOF:
		return 0, &EndError{Col: e.tok.pos}
	default:
		return 0, &TokenError{Col: e.tok.pos, Text: e.tok.text}
	}
}

// identifier resolves the identifier in the lookahead: a function call if
// followed by (, otherwise a variable reference or assignment. Reading a
// name that was never assigned yields NaN without inserting it.
func (e *Evaluator) identifier() (float64, error) {
	name := e.tok.text
	col := e.tok.pos
	if err := e.next(true); err != nil {
		return 0, err
	}
	if e.tok.kind == tokenLParen {
		return e.call(name, col)
	}
	v, ok := e.syms.Lookup(name)
	if !ok {
		v = math.NaN()
	}
	op, opcol := e.tok.kind, e.tok.pos
	switch op {
	case tokenAssign, tokenAddAssign, tokenSubAssign, tokenMulAssign, tokenDivAssign:
		// Assignment binds loosest: the right-hand side consumes everything
		// up to the next comma, closing parenthesis, or end of input. The
		// compound forms combine with the pre-assignment value.
		r, err := e.expression(true)
		if err != nil {
			return 0, err
		}
		switch op {
		case tokenAssign:
			v = r
		case tokenAddAssign:
			v += r
		case tokenSubAssign:
			v -= r
		case tokenMulAssign:
			v *= r
		case tokenDivAssign:
			if r == 0 {
				return 0, &DivZeroError{Col: opcol, Op: "/="}
			}
			v /= r
		}
		e.syms.Set(name, v)
	}
	return v, nil
}

// call evaluates a function call. The lookahead holds the opening
// parenthesis. The argument count is determined by the commas actually
// parsed before the closing parenthesis, and only the catalog of that arity
// is consulted. Arguments evaluate eagerly, in order, before the function
// runs.
func (e *Evaluator) call(name string, col int) (float64, error) {
	if !knownFunc(name) {
		return 0, &FuncError{Col: col, Name: name}
	}
	args := make([]float64, 0, 3)
	v, err := e.expression(true)
	if err != nil {
		return 0, err
	}
	args = append(args, v)
	for e.tok.kind == tokenComma {
		v, err := e.expression(true)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	if e.tok.kind != tokenRParen {
		return 0, &ExpectError{Col: e.tok.pos, Want: ")", Got: e.tok.text}
	}
	if err := e.next(true); err != nil {
		return 0, err
	}
	switch len(args) {
	case 1:
		if f := fun1Table[name]; f != nil {
			return f(args[0]), nil
		}
	case 2:
		if f := fun2Table[name]; f != nil {
			r, err := f(args[0], args[1])
			if err != nil {
				if d, ok := err.(*DivZeroError); ok && d.Col == 0 {
					d.Col = col
				}
				return 0, err
			}
			return r, nil
		}
	case 3:
		if f := fun3Table[name]; f != nil {
			return f(args[0], args[1], args[2]), nil
		}
	}
	return 0, &CallArgsError{Col: col, Name: name, Args: len(args)}
}

func btof(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
