package heat

import "fmt"

// BoundaryKind tags the rule applied at one edge of the domain.
type BoundaryKind int

const (
	// KindNeumann mirrors the interior neighbour (zero gradient).
	KindNeumann BoundaryKind = iota
	// KindDirichlet pins the edge to a constant.
	KindDirichlet
	// KindDirichletFunc pins the edge to f(t).
	KindDirichletFunc
)

func (k BoundaryKind) String() string {
	switch k {
	case KindNeumann:
		return "neumann"
	case KindDirichlet:
		return "dirichlet"
	case KindDirichletFunc:
		return "dirichlet-func"
	default:
		return fmt.Sprintf("BoundaryKind(%d)", int(k))
	}
}

// Boundary is one edge condition. The zero value is Neumann.
type Boundary struct {
	kind  BoundaryKind
	value float64
	fn    func(t float64) float64
}

func Neumann() Boundary {
	return Boundary{kind: KindNeumann}
}

func Dirichlet(value float64) Boundary {
	return Boundary{kind: KindDirichlet, value: value}
}

// DirichletFunc evaluates fn at the time of each new column. A nil fn
// falls back to Neumann.
func DirichletFunc(fn func(t float64) float64) Boundary {
	if fn == nil {
		return Neumann()
	}
	return Boundary{kind: KindDirichletFunc, fn: fn}
}

func (b Boundary) Kind() BoundaryKind { return b.kind }

// Value returns the constant of a Dirichlet boundary and false otherwise.
func (b Boundary) Value() (float64, bool) {
	return b.value, b.kind == KindDirichlet
}

// apply returns the edge value at time t given the adjacent interior value.
func (b Boundary) apply(neighbour, t float64) float64 {
	switch b.kind {
	case KindDirichlet:
		return b.value
	case KindDirichletFunc:
		return b.fn(t)
	case KindNeumann:
		return neighbour
	default:
		panic(fmt.Sprintf("heat: unhandled boundary kind %v", b.kind))
	}
}

func (b Boundary) String() string {
	switch b.kind {
	case KindDirichlet:
		return fmt.Sprintf("dirichlet(%g)", b.value)
	default:
		return b.kind.String()
	}
}
