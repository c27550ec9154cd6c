package ast

// Node is the closed set of normalized AST node variants. The compare and
// coercion methods are unexported so that the variant set cannot be
// extended outside this package: a pattern-matching tagged sum realized
// through Go's interface satisfaction rather than a concrete enum. The
// type switches over it (sameVariant, Label) are not checked for
// exhaustiveness by the compiler; an unlisted variant falls to their
// default case.
type Node interface {
	// Loc returns the node's source extent. Purely informational.
	Loc() Location
	// Weight is the per-node multiplier applied during comparison, in
	// (0, 1]. Coercion reduces it to reflect the cost of a rewrite.
	Weight() float64
	SetWeight(w float64)
	// Children returns the node's ordered children.
	Children() []Node
	// NthChild returns the child at index, or a synthesized Null at
	// this node's location when the index is out of range.
	NthChild(index int) Node
	HasChildren() bool
	// AppendChild appends a child, applying any variant-specific
	// auto-wrap (see appendWithWrap).
	AppendChild(n Node)

	compareSameType(other Node) float64
	makeAlike(target Node) (Node, bool)
}

// base holds the fields every variant carries. It is embedded, not
// inherited from: Go has no subtyping, so each variant still implements
// the full Node interface, with most methods simply promoted from base.
type base struct {
	location Location
	weight   float64
	children []Node
}

func newBase(loc Location) base {
	return base{location: loc, weight: 1}
}

func (b *base) Loc() Location       { return b.location }
func (b *base) Weight() float64     { return b.weight }
func (b *base) SetWeight(w float64) { b.weight = w }
func (b *base) Children() []Node    { return b.children }
func (b *base) HasChildren() bool   { return len(b.children) > 0 }

func (b *base) NthChild(index int) Node {
	if index >= 0 && index < len(b.children) {
		return b.children[index]
	}
	return &Null{base: newBase(b.location)}
}

func (b *base) AppendChild(n Node) {
	b.children = append(b.children, n)
}

// appendWithWrap implements the auto-wrap invariant shared by
// CStyleLoop, If and While: once an appended child's index would reach
// or pass minIndex (the index of the body slot for CStyleLoop and While,
// of the then slot for If), it is wrapped in a fresh one-element
// Composite before being appended, unless it already is a Composite, so a
// later positional accessor (Body, Else, ...) still finds a single node
// in that slot no matter how many logical statements ended up there.
func appendWithWrap(b *base, minIndex int, child Node) {
	if len(b.children) >= minIndex {
		if _, ok := child.(*Composite); !ok {
			composite := NewComposite(child.Loc())
			composite.AppendChild(child)
			child = composite
		}
	}
	b.children = append(b.children, child)
}

// compareTwice models structural conjunction: both slots must match for
// the pair to match at all. It short-circuits to 0 the moment either
// side scores 0, rather than diluting the result to a small positive
// mean.
func compareTwice(a, b Node, left, right func(Node) Node) float64 {
	leftScore := Compare(left(a), left(b))
	rightScore := Compare(right(a), right(b))
	if leftScore == 0 || rightScore == 0 {
		return 0
	}
	return (leftScore + rightScore) / 2
}

// coerceGeneric implements the two coercion rules every variant shares:
// anything can degrade into a Null (weight 0.1) or be wrapped into a
// one-element Composite (weight 0.9). Variant-specific rewrites (for/
// while, compound assignment) are layered on top by the variant's own
// makeAlike.
func coerceGeneric(self Node, target Node) (Node, bool) {
	switch target.(type) {
	case *Null:
		n := &Null{base: newBase(self.Loc())}
		n.SetWeight(0.1)
		return n, true
	case *Composite:
		c := &Composite{base: newBase(self.Loc())}
		c.AppendChild(self)
		c.SetWeight(0.9)
		return c, true
	default:
		return nil, false
	}
}

// Compare is the similarity engine's entry point: reflexive to 1 on
// identical trees containing no Unknown node, in [0, 1] for all inputs.
// It is not symmetric in general: Composite averages over the left
// operand's children only, so two Composites of different lengths score
// differently depending on which one is a.
//
// Same-variant pairs dispatch straight to compareSameType. Differing
// variants attempt coercion in both directions, a into b's shape first,
// then b into a's, before giving up with a score of 0 — giving a second
// chance for the asymmetric rules (e.g. CStyleLoop -> While) that are
// defined on only one side of the pair.
// A coercion's result does not always share the target's variant (the
// for-loop rewrite produces a Composite even when asked to become a
// While), so the coerced side is fed back through Compare rather than
// straight into compareSameType.
func Compare(a, b Node) float64 {
	if sameVariant(a, b) {
		return a.compareSameType(b) * combinedWeight(a, b)
	}
	if aAlike, ok := a.makeAlike(b); ok {
		return Compare(aAlike, b)
	}
	if bAlike, ok := b.makeAlike(a); ok {
		return Compare(a, bAlike)
	}
	return 0
}

// CompareRoots compares two function bodies. A function whose entire
// body is a single statement is structurally just that statement: the
// builder still wraps it in a one-element root Composite, so CompareRoots
// peels that wrapper off before delegating to Compare. Without it, a
// single for-loop could never align against the two statements
// (`i = 0; while (...) {...}`) its while-loop rewrite expands into, since
// Composite.compareSameType walks positionally over its own (the left
// operand's) children only.
func CompareRoots(a, b Node) float64 {
	return Compare(unwrapSingleton(a), unwrapSingleton(b))
}

func unwrapSingleton(n Node) Node {
	if c, ok := n.(*Composite); ok && len(c.children) == 1 {
		return c.children[0]
	}
	return n
}

func sameVariant(a, b Node) bool {
	switch a.(type) {
	case *Composite:
		_, ok := b.(*Composite)
		return ok
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Unknown:
		_, ok := b.(*Unknown)
		return ok
	case *Identifier:
		_, ok := b.(*Identifier)
		return ok
	case *Literal:
		_, ok := b.(*Literal)
		return ok
	case *Assignment:
		_, ok := b.(*Assignment)
		return ok
	case *Return:
		_, ok := b.(*Return)
		return ok
	case *Unary:
		_, ok := b.(*Unary)
		return ok
	case *Binary:
		_, ok := b.(*Binary)
		return ok
	case *CompoundAssign:
		_, ok := b.(*CompoundAssign)
		return ok
	case *CStyleLoop:
		_, ok := b.(*CStyleLoop)
		return ok
	case *If:
		_, ok := b.(*If)
		return ok
	case *While:
		_, ok := b.(*While)
		return ok
	case *Break:
		_, ok := b.(*Break)
		return ok
	case *Continue:
		_, ok := b.(*Continue)
		return ok
	default:
		return false
	}
}

func combinedWeight(a, b Node) float64 {
	return a.Weight() * b.Weight()
}
