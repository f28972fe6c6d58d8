package ttable

// ExprKind tags the variant of an Expr node.
type ExprKind uint8

const (
	ExprConst ExprKind = iota
	ExprVar
	ExprInv
	ExprAnd
	ExprOr
	ExprMaj
	ExprXor
)

// Expr is the sum-type expression AST of §3: {const, var(i), inv(e),
// and(e,e), or(e,e), maj(e,e,e), xor(e,e)}. Build one with the Const/Var/
// Inv/And/Or/Maj/Xor constructors below and evaluate it with Eval.
type Expr struct {
	Kind     ExprKind
	Var      int // valid when Kind == ExprVar
	Val      bool // valid when Kind == ExprConst
	Children []Expr
}

// Const builds a constant expression.
func Const(v bool) Expr { return Expr{Kind: ExprConst, Val: v} }

// Var builds a reference to variable i.
func Var(i int) Expr { return Expr{Kind: ExprVar, Var: i} }

// Inv builds ¬e.
func Inv(e Expr) Expr { return Expr{Kind: ExprInv, Children: []Expr{e}} }

// And builds e1∧e2.
func And(e1, e2 Expr) Expr { return Expr{Kind: ExprAnd, Children: []Expr{e1, e2}} }

// Or builds e1∨e2.
func Or(e1, e2 Expr) Expr { return Expr{Kind: ExprOr, Children: []Expr{e1, e2}} }

// Xor builds e1⊕e2.
func Xor(e1, e2 Expr) Expr { return Expr{Kind: ExprXor, Children: []Expr{e1, e2}} }

// Maj builds MAJ(e1,e2,e3).
func Maj(e1, e2, e3 Expr) Expr { return Expr{Kind: ExprMaj, Children: []Expr{e1, e2, e3}} }

// NumVars computes the minimal width (1 + max variable index referenced)
// needed to evaluate e, per §3 "evaluated compositionally to produce a TT
// of minimal width". An expression with no Var node has NumVars 0; Eval
// then evaluates it over 1 variable.
func (e Expr) NumVars() int {
	max := -1
	var walk func(Expr)
	walk = func(x Expr) {
		if x.Kind == ExprVar && x.Var > max {
			max = x.Var
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(e)
	return max + 1
}

// Eval evaluates e into a TT of its minimal width (NumVars(), or 1 when
// that is 0), or over an
// explicit width n (which must be >= NumVars()) when n >= 0 is given.
func (e Expr) Eval(n ...int) TT {
	width := e.NumVars()
	if width == 0 {
		width = 1
	}
	if len(n) > 0 {
		width = n[0]
	}
	return e.evalOver(width)
}

func (e Expr) evalOver(n int) TT {
	switch e.Kind {
	case ExprConst:
		f := New(n)
		if e.Val {
			f = f.Not()
		}
		return f
	case ExprVar:
		f := New(n)
		for row := uint(0); row < f.Size(); row++ {
			f.bits.SetTo(row, (row>>uint(e.Var))&1 == 1)
		}
		return f
	case ExprInv:
		return e.Children[0].evalOver(n).Not()
	case ExprAnd:
		return e.Children[0].evalOver(n).And(e.Children[1].evalOver(n))
	case ExprOr:
		return e.Children[0].evalOver(n).Or(e.Children[1].evalOver(n))
	case ExprXor:
		return e.Children[0].evalOver(n).Xor(e.Children[1].evalOver(n))
	case ExprMaj:
		a := e.Children[0].evalOver(n)
		b := e.Children[1].evalOver(n)
		c := e.Children[2].evalOver(n)
		return a.And(b).Or(a.And(c)).Or(b.And(c))
	default:
		panic("ttable: unknown Expr kind")
	}
}
