package frontend

import (
	"strings"

	"github.com/FrankReh/go-clang/clang"
	"go.uber.org/zap"

	"github.com/ccplag/ccsim/internal/ast"
)

// functionParser walks a single function or method's body, driving an
// ast.Builder the same way the Python FunctionParser drives ASTBuilder:
// a dispatch table keyed on cursor kind, each handler opening/closing the
// matching builder node and recursing into its own children.
type functionParser struct {
	tu      *clang.TranslationUnit
	fnNode  clang.Cursor
	builder *ast.Builder
	logger  *zap.Logger
}

func newFunctionParser(tu *clang.TranslationUnit, fnNode clang.Cursor, logger *zap.Logger) *functionParser {
	p := &functionParser{tu: tu, fnNode: fnNode, builder: ast.NewBuilder(), logger: logger}
	p.builder.OpenRoot(location(fnNode))
	return p
}

// usr is the function's Unified Symbol Resolution string, used as the
// corpus key so overloads and methods with the same spelling don't
// collide.
func (p *functionParser) usr() string { return p.fnNode.USR() }

// body returns the parsed function tree. Call only after parse.
func (p *functionParser) body() ast.Node { return p.builder.Product() }

// parse locates the function's compound-statement body (a function
// declaration with no definition, e.g. a prototype, has none) and walks
// its direct statements.
func (p *functionParser) parse() {
	var block clang.Cursor
	found := false
	for _, child := range children(p.fnNode) {
		if child.Kind() == clang.Cursor_CompoundStmt {
			block = child
			found = true
			break
		}
	}
	if !found {
		return
	}
	for _, stmt := range children(block) {
		p.processNode(stmt)
	}
}

func (p *functionParser) processChildren(node clang.Cursor) {
	for _, child := range children(node) {
		p.processNode(child)
	}
}

func (p *functionParser) processNode(node clang.Cursor) {
	switch node.Kind() {
	case clang.Cursor_DeclStmt:
		p.processChildren(node)
	case clang.Cursor_VarDecl:
		p.processVarDecl(node)
	case clang.Cursor_IntegerLiteral:
		p.processLiteral(node)
	case clang.Cursor_FloatingLiteral:
		p.processLiteral(node)
	case clang.Cursor_StringLiteral:
		p.processLiteral(node)
	case clang.Cursor_UnexposedExpr:
		p.processChildren(node)
	case clang.Cursor_ReturnStmt:
		p.processReturn(node)
	case clang.Cursor_DeclRefExpr:
		p.builder.AddIdentifier(node.Spelling(), location(node))
	case clang.Cursor_ForStmt:
		p.processForStmt(node)
	case clang.Cursor_BinaryOperator:
		p.processBinaryOperator(node)
	case clang.Cursor_CompoundStmt:
		p.processCompoundStmt(node)
	case clang.Cursor_UnaryOperator:
		p.processUnaryOperator(node)
	case clang.Cursor_CompoundAssignOperator:
		p.processCompoundAssignment(node)
	case clang.Cursor_IfStmt:
		p.processIfStmt(node)
	case clang.Cursor_BreakStmt:
		p.builder.AddBreak(location(node))
	case clang.Cursor_ContinueStmt:
		p.builder.AddContinue(location(node))
	case clang.Cursor_WhileStmt:
		p.processWhileStmt(node)
	default:
		p.processUnknown(node)
	}
}

func (p *functionParser) processUnknown(node clang.Cursor) {
	if p.logger != nil {
		p.logger.Warn("unrecognized cursor kind", zap.String("kind", node.Kind().String()), zap.String("usr", p.usr()))
	}
	p.builder.AddUnknown(location(node))
}

func (p *functionParser) processVarDecl(node clang.Cursor) {
	p.builder.OpenAssignment(location(node))
	p.builder.AddIdentifier(node.Spelling(), location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

func (p *functionParser) processLiteral(node clang.Cursor) {
	tokens := p.tu.Tokenize(node.Extent())
	if len(tokens) == 0 {
		p.builder.AddLiteral(node.Spelling(), location(node))
		return
	}
	p.builder.AddLiteral(tokens[0].Spelling(p.tu), location(node))
}

func (p *functionParser) processReturn(node clang.Cursor) {
	p.builder.OpenReturn(location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

func (p *functionParser) processForStmt(node clang.Cursor) {
	p.builder.OpenCStyleLoop(location(node))
	for _, slot := range forLoopChildren(node) {
		if !slot.present {
			p.builder.AddNull(slot.loc)
			continue
		}
		p.processNode(slot.cursor)
	}
	p.builder.CloseNode()
}

func (p *functionParser) processBinaryOperator(node clang.Cursor) {
	p.builder.OpenBinary(operatorSpelling(p.tu, node), location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

func (p *functionParser) processUnaryOperator(node clang.Cursor) {
	p.builder.OpenUnary(operatorSpelling(p.tu, node), location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

func (p *functionParser) processCompoundStmt(node clang.Cursor) {
	p.builder.OpenBlock(location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

// processCompoundAssignment strips the trailing `=` from the operator
// token (`+=` becomes `+`), matching get_operation(node)[:-1] in the
// Python frontend: the stored operator is the arithmetic one the
// CompoundAssign -> Assignment coercion reconstructs a Binary from.
func (p *functionParser) processCompoundAssignment(node clang.Cursor) {
	op := operatorSpelling(p.tu, node)
	op = strings.TrimSuffix(op, "=")
	p.builder.OpenCompoundAssign(op, location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

func (p *functionParser) processIfStmt(node clang.Cursor) {
	p.builder.OpenIf(location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}

func (p *functionParser) processWhileStmt(node clang.Cursor) {
	p.builder.OpenWhile(location(node))
	p.processChildren(node)
	p.builder.CloseNode()
}
