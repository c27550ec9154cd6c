package ast

import "fmt"

// Builder incrementally assembles a Node tree from a stack of
// currently-open interior nodes, mirroring how a recursive-descent
// frontend walks a foreign cursor tree: Open* pushes a new interior
// node onto the stack, Add* appends a leaf to whatever is on top, and
// CloseNode pops back to the parent.
type Builder struct {
	stack []Node
}

// NewBuilder returns an empty Builder. OpenRoot must be called before
// any other method.
func NewBuilder() *Builder {
	return &Builder{}
}

// OpenRoot pushes the function-body Composite that every parse starts
// from.
func (b *Builder) OpenRoot(loc Location) {
	b.stack = append(b.stack, NewComposite(loc))
}

// current returns the interior node on top of the stack, panicking if
// OpenRoot was never called — a structural violation per the builder's
// invariants.
func (b *Builder) current() Node {
	if len(b.stack) == 0 {
		panic("ast: builder has no open node; OpenRoot was never called")
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) addLeaf(n Node) {
	b.current().AppendChild(n)
}

func (b *Builder) openNonleaf(n Node) {
	b.current().AppendChild(n)
	b.stack = append(b.stack, n)
}

// CloseNode pops the current interior node, returning control to its
// parent. It panics if the root itself would be popped, or if
// OpenRoot was never called — both are programmer errors in the caller
// (the frontend adapter), per the builder's structural invariants.
func (b *Builder) CloseNode() {
	if len(b.stack) <= 1 {
		panic(fmt.Sprintf("ast: CloseNode called with %d open node(s); must not pop the root", len(b.stack)))
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Product returns the root node, once every Open* has been matched by a
// CloseNode. Calling it with unclosed interior nodes still on the stack
// is a structural violation.
func (b *Builder) Product() Node {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("ast: Product called with %d unclosed node(s)", len(b.stack)))
	}
	return b.stack[0]
}

func (b *Builder) AddIdentifier(name string, loc Location) { b.addLeaf(NewIdentifier(name, loc)) }
func (b *Builder) AddLiteral(value string, loc Location)   { b.addLeaf(NewLiteral(value, loc)) }
func (b *Builder) AddUnknown(loc Location)                 { b.addLeaf(NewUnknown(loc)) }
func (b *Builder) AddNull(loc Location)                    { b.addLeaf(NewNull(loc)) }
func (b *Builder) AddBreak(loc Location)                   { b.addLeaf(NewBreak(loc)) }
func (b *Builder) AddContinue(loc Location)                { b.addLeaf(NewContinue(loc)) }

func (b *Builder) OpenAssignment(loc Location)          { b.openNonleaf(NewAssignment(loc)) }
func (b *Builder) OpenReturn(loc Location)               { b.openNonleaf(NewReturn(loc)) }
func (b *Builder) OpenBlock(loc Location)                { b.openNonleaf(NewComposite(loc)) }
func (b *Builder) OpenCStyleLoop(loc Location)            { b.openNonleaf(NewCStyleLoop(loc)) }
func (b *Builder) OpenUnary(op string, loc Location)      { b.openNonleaf(NewUnary(op, loc)) }
func (b *Builder) OpenBinary(op string, loc Location)     { b.openNonleaf(NewBinary(op, loc)) }
func (b *Builder) OpenCompoundAssign(op string, loc Location) {
	b.openNonleaf(NewCompoundAssign(op, loc))
}
func (b *Builder) OpenIf(loc Location)    { b.openNonleaf(NewIf(loc)) }
func (b *Builder) OpenWhile(loc Location) { b.openNonleaf(NewWhile(loc)) }
