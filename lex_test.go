package evalexpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []token
	}{
		{"empty", "", []token{{kind: tokenEOF, pos: 1}}},
		{"spaces", " \t\r\n ", []token{{kind: tokenEOF, pos: 6}}},
		// numbers
		{"zero", "0", []token{{kind: tokenNum, text: "0", val: 0, pos: 1}}},
		{"int", "9876543210", []token{{kind: tokenNum, text: "9876543210", val: 9876543210, pos: 1}}},
		{"two-nums", "1 0", []token{
			{kind: tokenNum, text: "1", val: 1, pos: 1},
			{kind: tokenNum, text: "0", val: 0, pos: 3},
		}},
		{"real", "1.5", []token{{kind: tokenNum, text: "1.5", val: 1.5, pos: 1}}},
		{"bare-point", ".5", []token{{kind: tokenNum, text: ".5", val: 0.5, pos: 1}}},
		{"signed", "-1", []token{{kind: tokenNum, text: "-1", val: -1, pos: 1}}},
		{"signed-point", "-.5", []token{{kind: tokenNum, text: "-.5", val: -0.5, pos: 1}}},
		{"plus-signed", "+5", []token{{kind: tokenNum, text: "+5", val: 5, pos: 1}}},
		{"exponent", "1.5e3", []token{{kind: tokenNum, text: "1.5e3", val: 1500, pos: 1}}},
		{"exponent-sign", "25e-2", []token{{kind: tokenNum, text: "25e-2", val: 0.25, pos: 1}}},
		{"exponent-upper", "1E2", []token{{kind: tokenNum, text: "1E2", val: 100, pos: 1}}},
		{"overflow", "1e999", []token{{kind: tokenNum, text: "1e999", val: math.Inf(1), pos: 1}}},
		// identifiers
		{"ident", "pi", []token{{kind: tokenIdent, text: "pi", pos: 1}}},
		{"ident-digits", "a1_2", []token{{kind: tokenIdent, text: "a1_2", pos: 1}}},
		{"ident-call", "sqrt(", []token{
			{kind: tokenIdent, text: "sqrt", pos: 1},
			{kind: tokenLParen, text: "(", pos: 5},
		}},
		// one-character operators
		{"ops", "a*b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenMul, text: "*", pos: 2},
			{kind: tokenIdent, text: "b", pos: 3},
		}},
		{"pow", "2^3", []token{
			{kind: tokenNum, text: "2", val: 2, pos: 1},
			{kind: tokenPow, text: "^", pos: 2},
			{kind: tokenNum, text: "3", val: 3, pos: 3},
		}},
		{"not", "!a", []token{
			{kind: tokenNot, text: "!", pos: 1},
			{kind: tokenIdent, text: "a", pos: 2},
		}},
		{"comma", "a,b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenComma, text: ",", pos: 2},
			{kind: tokenIdent, text: "b", pos: 3},
		}},
		// two-character operators win over one-character prefixes
		{"le", "a<=b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenLE, text: "<=", pos: 2},
			{kind: tokenIdent, text: "b", pos: 4},
		}},
		{"ge", "a>=b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenGE, text: ">=", pos: 2},
			{kind: tokenIdent, text: "b", pos: 4},
		}},
		{"eq", "a==b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenEQ, text: "==", pos: 2},
			{kind: tokenIdent, text: "b", pos: 4},
		}},
		{"ne", "a!=b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenNE, text: "!=", pos: 2},
			{kind: tokenIdent, text: "b", pos: 4},
		}},
		{"add-assign", "a+=1", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenAddAssign, text: "+=", pos: 2},
			{kind: tokenNum, text: "1", val: 1, pos: 4},
		}},
		{"div-assign", "a/=2", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenDivAssign, text: "/=", pos: 2},
			{kind: tokenNum, text: "2", val: 2, pos: 4},
		}},
		{"and", "a&&b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenAnd, text: "&&", pos: 2},
			{kind: tokenIdent, text: "b", pos: 4},
		}},
		{"or", "a||b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenOr, text: "||", pos: 2},
			{kind: tokenIdent, text: "b", pos: 4},
		}},
		{"assign", "a=b", []token{
			{kind: tokenIdent, text: "a", pos: 1},
			{kind: tokenAssign, text: "=", pos: 2},
			{kind: tokenIdent, text: "b", pos: 3},
		}},
		{"parens", "()", []token{
			{kind: tokenLParen, text: "(", pos: 1},
			{kind: tokenRParen, text: ")", pos: 2},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lexer{src: c.src}
			for _, want := range c.tokens {
				tok, err := l.next(false)
				require.NoError(t, err)
				assert.Equal(t, want, tok)
			}
		})
	}
}

func TestLexSuppressSign(t *testing.T) {
	// With sign suppression, - is the subtraction operator even when a digit
	// follows.
	l := lexer{src: "-1"}
	tok, err := l.next(true)
	require.NoError(t, err)
	assert.Equal(t, token{kind: tokenSub, text: "-", pos: 1}, tok)
	tok, err = l.next(false)
	require.NoError(t, err)
	assert.Equal(t, token{kind: tokenNum, text: "1", val: 1, pos: 2}, tok)
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"bad-number", "1.2.3", `1: bad numeric literal "1.2.3"`},
		{"bare-exponent", "2e", `1: bad numeric literal "2e"`},
		{"signed-exponent", "2e+", `1: bad numeric literal "2e+"`},
		{"hash", "#", `1: unexpected character '#'`},
		{"lone-amp", "&", `1: unexpected character '&'`},
		{"lone-pipe", "|", `1: unexpected character '|'`},
		{"control", "\x01", `1: unexpected character 0x01`},
		{"offset", "1 + $", `5: unexpected character '$'`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lexer{src: c.src}
			var err error
			for err == nil {
				var tok token
				tok, err = l.next(false)
				if err == nil && tok.kind == tokenEOF {
					t.Fatalf("lexing %q reached EOF without error", c.src)
				}
			}
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.msg, err.Error())
		})
	}
}

func TestLexPastEOF(t *testing.T) {
	l := lexer{src: " "}
	tok, err := l.next(false)
	require.NoError(t, err)
	require.Equal(t, tokenEOF, tok.kind)
	_, err = l.next(false)
	var endErr *EndError
	require.ErrorAs(t, err, &endErr)
	assert.Equal(t, "2: unexpected end of expression", err.Error())
}
