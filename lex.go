package evalexpr

import (
	"errors"
	"strconv"
)

// token is one lexical unit of an expression. val is meaningful only when
// kind is tokenNum.
type token struct {
	kind tokenKind
	text string
	val  float64
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal, possibly signed.
	tokenNum
	// tokenIdent is a variable or function name.
	tokenIdent

	tokenAdd // +
	tokenSub // -
	tokenMul // *
	tokenDiv // /
	tokenPow // ^

	tokenAssign    // =
	tokenAddAssign // +=
	tokenSubAssign // -=
	tokenMulAssign // *=
	tokenDivAssign // /=

	tokenLParen // (
	tokenRParen // )
	tokenComma  // ,
	tokenNot    // !

	tokenLT // <
	tokenLE // <=
	tokenGT // >
	tokenGE // >=
	tokenEQ // ==
	tokenNE // !=

	tokenAnd // &&
	tokenOr  // ||
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenAdd:
		return "Add"
	case tokenSub:
		return "Sub"
	case tokenMul:
		return "Mul"
	case tokenDiv:
		return "Div"
	case tokenPow:
		return "Pow"
	case tokenAssign:
		return "Assign"
	case tokenAddAssign:
		return "AddAssign"
	case tokenSubAssign:
		return "SubAssign"
	case tokenMulAssign:
		return "MulAssign"
	case tokenDivAssign:
		return "DivAssign"
	case tokenLParen:
		return "LParen"
	case tokenRParen:
		return "RParen"
	case tokenComma:
		return "Comma"
	case tokenNot:
		return "Not"
	case tokenLT:
		return "LT"
	case tokenLE:
		return "LE"
	case tokenGT:
		return "GT"
	case tokenGE:
		return "GE"
	case tokenEQ:
		return "EQ"
	case tokenNE:
		return "NE"
	case tokenAnd:
		return "And"
	case tokenOr:
		return "Or"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer scans an expression one token at a time. The zero value with src set
// is ready to use.
type lexer struct {
	src string
	pos int
	// eof records that the EOF token has been produced. Scanning again after
	// that is an error; it guards callers that keep pulling tokens past
	// termination.
	eof bool
}

// next scans the next token from the input. suppressSign disables treating a
// leading + or - as part of a numeric literal; the evaluator sets it for the
// token following a completed operand so that (2+3)-1 subtracts 1 rather
// than scanning the signed literal -1.
func (l *lexer) next(suppressSign bool) (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		if l.eof {
			return token{}, &EndError{Col: start + 1}
		}
		l.eof = true
		return token{kind: tokenEOF, pos: start + 1}, nil
	}
	c := l.src[l.pos]
	var c2 byte
	if l.pos+1 < len(l.src) {
		c2 = l.src[l.pos+1]
	}
	// A numeric literal starts with a digit, a decimal point followed by a
	// digit, or (sign suppression aside) a sign followed by either.
	if isDigit(c) || c == '.' && isDigit(c2) ||
		!suppressSign && (c == '+' || c == '-') && (isDigit(c2) || c2 == '.') {
		return l.scanNum(start)
	}
	// Two-character operators before one-character ones.
	if c2 == '=' {
		var kind tokenKind
		switch c {
		case '=':
			kind = tokenEQ
		case '<':
			kind = tokenLE
		case '>':
			kind = tokenGE
		case '!':
			kind = tokenNE
		case '+':
			kind = tokenAddAssign
		case '-':
			kind = tokenSubAssign
		case '*':
			kind = tokenMulAssign
		case '/':
			kind = tokenDivAssign
		}
		if kind != tokenNone {
			l.pos += 2
			return token{kind: kind, text: l.src[start:l.pos], pos: start + 1}, nil
		}
	}
	switch {
	case c == '&' && c2 == '&':
		l.pos += 2
		return token{kind: tokenAnd, text: "&&", pos: start + 1}, nil
	case c == '|' && c2 == '|':
		l.pos += 2
		return token{kind: tokenOr, text: "||", pos: start + 1}, nil
	}
	if kind := oneChar(c); kind != tokenNone {
		l.pos++
		return token{kind: kind, text: l.src[start:l.pos], pos: start + 1}, nil
	}
	if isAlpha(c) {
		l.pos++
		for l.pos < len(l.src) && (isAlnum(l.src[l.pos]) || l.src[l.pos] == '_') {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.src[start:l.pos], pos: start + 1}, nil
	}
	return token{}, &CharError{Col: start + 1, Char: c}
}

// scanNum scans a numeric literal: optional sign, digits and/or a decimal
// point, and an optional e/E exponent with its own optional sign. The
// scanned substring must parse as a float64 in full; anything else, e.g.
// "1.2.3" or a bare exponent marker, is a lexical error.
func (l *lexer) scanNum(start int) (token, error) {
	if c := l.src[l.pos]; c == '+' || c == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range literals saturate to the nearest representable value,
		// as the platform parser does; anything else is malformed.
		if !errors.Is(err, strconv.ErrRange) {
			return token{}, &NumberError{Col: start + 1, Text: text}
		}
	}
	return token{kind: tokenNum, text: text, val: v, pos: start + 1}, nil
}

// oneChar maps a single-character operator to its kind, or tokenNone.
func oneChar(c byte) tokenKind {
	switch c {
	case '+':
		return tokenAdd
	case '-':
		return tokenSub
	case '*':
		return tokenMul
	case '/':
		return tokenDiv
	case '^':
		return tokenPow
	case '=':
		return tokenAssign
	case '(':
		return tokenLParen
	case ')':
		return tokenRParen
	case ',':
		return tokenComma
	case '!':
		return tokenNot
	case '<':
		return tokenLT
	case '>':
		return tokenGT
	default:
		return tokenNone
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
