package evalexpr

import (
	"math"
	"time"
)

// SymbolTable maps variable names to values. Names are case-sensitive and
// unique; writing an existing name overwrites its value. A new table is
// seeded with the constants pi and e. The table grows as needed.
//
// The names "time" and "timems" are computed from the process clock on every
// lookup. They shadow any stored symbol and cannot be overwritten, although
// storing to them is not an error.
type SymbolTable struct {
	vars map[string]float64
}

// NewSymbolTable creates a symbol table seeded with pi and e.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		vars: map[string]float64{
			"pi": math.Pi,
			"e":  math.E,
		},
	}
}

// Lookup returns the value of a variable. The reported bool is false if the
// name is not in the table. Lookup never inserts.
func (t *SymbolTable) Lookup(name string) (float64, bool) {
	switch name {
	case "time":
		// seconds since the epoch
		return float64(time.Now().Unix()), true
	case "timems":
		// milliseconds since the epoch
		return float64(time.Now().UnixMilli()), true
	}
	v, ok := t.vars[name]
	return v, ok
}

// Set inserts a variable or overwrites its value.
func (t *SymbolTable) Set(name string, value float64) {
	t.vars[name] = value
}

// Len returns the number of stored symbols, not counting the computed names.
func (t *SymbolTable) Len() int {
	return len(t.vars)
}
