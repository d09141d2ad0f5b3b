package evalexpr

import (
	"math"
	"math/rand"
)

// The built-in functions live in three fixed catalogs, one per arity. A call
// consults only the catalog matching the number of comma-separated arguments
// it actually parsed, so a name may safely appear in at most one catalog.

type (
	func1 func(x float64) float64
	func2 func(x, y float64) (float64, error)
	func3 func(x, y, z float64) float64
)

var fun1Table = map[string]func1{
	"abs":     math.Abs,
	"acos":    math.Acos,
	"asin":    math.Asin,
	"atan":    math.Atan,
	"atanh":   math.Atanh,
	"ceil":    math.Ceil,
	"cos":     math.Cos,
	"cosh":    math.Cosh,
	"exp":     math.Exp,
	"floor":   math.Floor,
	"log":     math.Log,
	"log10":   math.Log10,
	"sin":     math.Sin,
	"sinh":    math.Sinh,
	"sqrt":    math.Sqrt,
	"tan":     math.Tan,
	"tanh":    math.Tanh,
	"int":     math.Trunc,
	"rand":    doRand,
	"percent": doPercent,
}

var fun2Table = map[string]func2{
	"min": doMin,
	"max": doMax,
	"mod": doMod,
	"pow": doPow,
}

var fun3Table = map[string]func3{
	"if": doIf,
}

// knownFunc reports whether name is in any catalog.
func knownFunc(name string) bool {
	if _, ok := fun1Table[name]; ok {
		return true
	}
	if _, ok := fun2Table[name]; ok {
		return true
	}
	if _, ok := fun3Table[name]; ok {
		return true
	}
	return false
}

// doRand returns a uniform pseudo-random integer in [0, x), with x truncated
// to an integer. Arguments below 1 yield 0. The range check happens on the
// float value; converting first would overflow for arguments outside int
// range.
func doRand(x float64) float64 {
	if math.IsNaN(x) || x < 1 {
		return 0
	}
	if x > math.MaxInt32 {
		x = math.MaxInt32
	}
	return float64(rand.Intn(int(x)))
}

// doPercent returns 1 with probability x percent and 0 otherwise, with x
// truncated to an integer. x <= 0 always fails and x >= 100 always succeeds.
// The clamps happen on the float value so that arguments outside int range
// cannot overflow past them.
func doPercent(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 100 {
		return 1
	}
	if rand.Intn(100) > 100-int(x) {
		return 1
	}
	return 0
}

func doMin(x, y float64) (float64, error) {
	if x < y {
		return x, nil
	}
	return y, nil
}

func doMax(x, y float64) (float64, error) {
	if x > y {
		return x, nil
	}
	return y, nil
}

// doMod computes the floating-point remainder of x/y. A zero divisor is a
// fatal evaluation error.
func doMod(x, y float64) (float64, error) {
	if y == 0 {
		return 0, &DivZeroError{Op: "mod"}
	}
	return math.Mod(x, y), nil
}

// doPow computes x to the power y. A positive integer exponent up to 64 is
// computed by repeated multiplication, which keeps more precision than the
// general power function.
func doPow(x, y float64) (float64, error) {
	if n := int(y); float64(n) == y && n > 0 && n <= 64 {
		r := x
		for ; n > 1; n-- {
			r *= x
		}
		return r, nil
	}
	return math.Pow(x, y), nil
}

// doIf returns y when x is nonzero and z otherwise. Both branches have
// already been evaluated by the time doIf runs; the language does not
// short-circuit.
func doIf(x, y, z float64) float64 {
	if x != 0 {
		return y
	}
	return z
}
