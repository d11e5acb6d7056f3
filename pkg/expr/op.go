package expr

// Op is a named binary arithmetic function.
type Op struct {
	Name string
	Fn   func(a, b float64) float64
}

func (o Op) String() string { return o.Name }

// Apply calls the operator on a and b.
func (o Op) Apply(a, b float64) float64 { return o.Fn(a, b) }

var (
	Add = Op{Name: "+", Fn: func(a, b float64) float64 { return a + b }}
	Sub = Op{Name: "-", Fn: func(a, b float64) float64 { return a - b }}
	Mul = Op{Name: "*", Fn: func(a, b float64) float64 { return a * b }}
	// Div does not guard b == 0: the result is ±Inf or NaN and is filtered
	// out by the target comparison like any other miss.
	Div = Op{Name: "/", Fn: func(a, b float64) float64 { return a / b }}
)

// standard is the canonical operator table. Its order drives the order in
// which operator assignments, and therefore solutions, are enumerated.
var standard = [...]Op{Add, Sub, Mul, Div}

// Standard returns a fresh copy of the canonical operators in order + - * /.
func Standard() []Op {
	ops := make([]Op, len(standard))
	copy(ops, standard[:])
	return ops
}

// Lookup returns the canonical operator with the given name.
func Lookup(name string) (Op, bool) {
	for _, o := range standard {
		if o.Name == name {
			return o, true
		}
	}
	return Op{}, false
}
