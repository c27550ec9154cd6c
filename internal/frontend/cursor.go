package frontend

import (
	"github.com/FrankReh/go-clang/clang"

	"github.com/ccplag/ccsim/internal/ast"
)

// location converts a cursor's extent into the normalized ast.Location,
// mirroring ClangLocation in the Python frontend.
func location(cursor clang.Cursor) ast.Location {
	extent := cursor.Extent()
	file, startLine, startCol := extent.Start().PresumedLocation()
	_, endLine, endCol := extent.End().PresumedLocation()
	return ast.Location{
		Filename: file,
		Start:    ast.Coordinate{Line: int(startLine), Column: int(startCol)},
		End:      ast.Coordinate{Line: int(endLine), Column: int(endCol)},
	}
}

// children returns cursor's immediate children, in source order, silently
// dropping any null cursor clang reports (the ordinary case: most cursor
// kinds never have an optional child slot). Kinds with optional clauses
// that must be preserved positionally — currently just for-loops — use
// forLoopChildren instead.
func children(cursor clang.Cursor) []clang.Cursor {
	var out []clang.Cursor
	cursor.Visit(func(child, _ clang.Cursor) clang.ChildVisitResult {
		if !child.IsNull() {
			out = append(out, child)
		}
		return clang.ChildVisit_Continue
	})
	return out
}

// forSlot is one of a for-statement's four positional clauses: init, cond,
// step or body. clang's cursor walk emits a null cursor for any clause the
// source omitted (`for (;;)`), so a plain children() would silently
// collapse the slots and misalign init/cond/step/body. present is false
// for an omitted clause; cursor is then the zero value and must not be
// used — the caller should route it through the builder's AddNull instead.
type forSlot struct {
	cursor  clang.Cursor
	present bool
	loc     ast.Location
}

// forLoopChildren returns the for-statement's four clauses in slot order,
// synthesizing a location for an omitted clause from its neighbors, the
// way NullAwareCursorAdapter resolves a NullCursorSentinel's extent in the
// Python frontend: the enclosing for-statement's own extent if nothing
// else is available.
func forLoopChildren(forNode clang.Cursor) []forSlot {
	enclosing := location(forNode)

	var raw []clang.Cursor
	var present []bool
	forNode.Visit(func(child, _ clang.Cursor) clang.ChildVisitResult {
		raw = append(raw, child)
		present = append(present, !child.IsNull())
		return clang.ChildVisit_Continue
	})

	slots := make([]forSlot, len(raw))
	for i := range raw {
		if present[i] {
			slots[i] = forSlot{cursor: raw[i], present: true, loc: location(raw[i])}
			continue
		}
		slots[i] = forSlot{present: false, loc: nearestSiblingLocation(raw, present, i, enclosing)}
	}
	return slots
}

// nearestSiblingLocation finds the extent to report for an omitted slot at
// index, by walking outward to the nearest present sibling on either side
// and widening to its start or end, falling back to the for-statement's
// own extent when every slot is omitted.
func nearestSiblingLocation(raw []clang.Cursor, present []bool, index int, enclosing ast.Location) ast.Location {
	for i := index - 1; i >= 0; i-- {
		if present[i] {
			loc := location(raw[i])
			return ast.Location{Filename: loc.Filename, Start: loc.End, End: loc.End}
		}
	}
	for i := index + 1; i < len(raw); i++ {
		if present[i] {
			loc := location(raw[i])
			return ast.Location{Filename: loc.Filename, Start: loc.Start, End: loc.Start}
		}
	}
	return enclosing
}

// operatorSpelling recovers the operator token's spelling for a binary,
// unary or compound-assignment cursor. Clang doesn't expose the operator
// as its own cursor or attribute, only as a token inside the expression's
// extent, so this reproduces get_operation's trick: tokenize the whole
// expression and return the first token whose extent lies inside none of
// the operand cursors' extents — the one token that belongs to the
// operator itself, not to a child expression.
func operatorSpelling(tu *clang.TranslationUnit, cursor clang.Cursor) string {
	operands := children(cursor)

	for _, tok := range tu.Tokenize(cursor.Extent()) {
		spelling := tok.Spelling(tu)
		if !tokenInsideAny(tok.Extent(), operands) {
			return spelling
		}
	}
	return ""
}

func tokenInsideAny(tokExtent clang.SourceRange, operands []clang.Cursor) bool {
	for _, operand := range operands {
		if rangeContains(operand.Extent(), tokExtent) {
			return true
		}
	}
	return false
}

// rangeContains reports whether inner's extent lies within outer's,
// comparing (line, column) pairs lexicographically since clang doesn't
// expose a direct source-range containment query.
func rangeContains(outer, inner clang.SourceRange) bool {
	_, outerStartLine, outerStartCol := outer.Start().PresumedLocation()
	_, outerEndLine, outerEndCol := outer.End().PresumedLocation()
	_, innerStartLine, innerStartCol := inner.Start().PresumedLocation()
	_, innerEndLine, innerEndCol := inner.End().PresumedLocation()

	return !before(innerStartLine, innerStartCol, outerStartLine, outerStartCol) &&
		!before(outerEndLine, outerEndCol, innerEndLine, innerEndCol)
}

func before(line, col, otherLine, otherCol uint32) bool {
	if line != otherLine {
		return line < otherLine
	}
	return col < otherCol
}
