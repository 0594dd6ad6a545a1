// Package ast defines the syntax tree produced by the parser.
//
// Statement and Term are closed sums: the marker methods keep foreign
// types out, so a switch over the concrete types is exhaustive.
package ast

import "oxygen/internal/token"

// Node is anything with a source position.
type Node interface {
	Position() token.Pos
}

// Program is the ordered list of top-level statements of a parsed file.
type Program struct {
	Statements []Statement
}

// Statement is one statement, at top level or inside a function body.
type Statement interface {
	Node
	stmtNode()
}

// FunctionDecl is a function declaration:
//
//	int main() { ... }
//
// It is itself a statement, so declarations may nest inside bodies. The
// only parameter list is the empty one and the only return type is 'int';
// the type is still recorded so dumps and errors can point at it.
//
// A parsed Body is never empty and always ends with a ReturnStatement;
// the parser enforces that, the type does not.
type FunctionDecl struct {
	ReturnType TypeRef
	Name       string
	NamePos    token.Pos
	Body       []Statement
}

func (f *FunctionDecl) Position() token.Pos { return f.ReturnType.Pos }
func (*FunctionDecl) stmtNode()             {}

// ReturnStatement is 'return <term>;'.
type ReturnStatement struct {
	Term Term
	Pos  token.Pos // position of the 'return' keyword
}

func (s *ReturnStatement) Position() token.Pos { return s.Pos }
func (*ReturnStatement) stmtNode()             {}

// TypeKind enumerates the type names a declaration can carry.
type TypeKind uint8

const (
	// TypeInt is the 'int' type.
	TypeInt TypeKind = iota + 1
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	default:
		return "invalid"
	}
}

// TypeRef is a mention of a type name in the source.
type TypeRef struct {
	Kind TypeKind
	Pos  token.Pos
}

func (t TypeRef) Position() token.Pos { return t.Pos }

// Term is the operand of a statement.
type Term interface {
	Node
	termNode()
}

// IntegerLiteral is a digit run. Text is the verbatim source spelling;
// no numeric conversion happens in the front end.
type IntegerLiteral struct {
	Text string
	Pos  token.Pos
}

func (l *IntegerLiteral) Position() token.Pos { return l.Pos }
func (*IntegerLiteral) termNode()             {}

var (
	_ Statement = (*FunctionDecl)(nil)
	_ Statement = (*ReturnStatement)(nil)
	_ Term      = (*IntegerLiteral)(nil)
)
