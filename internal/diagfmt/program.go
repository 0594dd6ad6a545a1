package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"oxygen/internal/ast"
)

// ProgramNodeOutput is the JSON shape of one syntax tree node.
type ProgramNodeOutput struct {
	Type       string              `json:"type"`
	Name       string              `json:"name,omitempty"`
	ReturnType string              `json:"returnType,omitempty"`
	Text       string              `json:"text,omitempty"`
	Line       uint32              `json:"line,omitempty"`
	Column     uint32              `json:"column,omitempty"`
	Children   []ProgramNodeOutput `json:"children,omitempty"`
}

// FormatProgram renders the syntax tree as an indented outline.
func FormatProgram(w io.Writer, prog *ast.Program, opts Options) error {
	fmt.Fprintln(w, "Program")
	writeStatements(w, prog.Statements, "", opts)
	return nil
}

func writeStatements(w io.Writer, stmts []ast.Statement, prefix string, opts Options) {
	for i, stmt := range stmts {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(stmts)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		fmt.Fprintf(w, "%s%sStmt[%d]: ", prefix, connector, i)
		writeStatement(w, stmt, childPrefix, opts)
	}
}

func writeStatement(w io.Writer, stmt ast.Statement, prefix string, opts Options) {
	switch s := stmt.(type) {
	case *ast.FunctionDecl:
		fmt.Fprintf(w, "%s (at %s)\n", paint(kindStyle, opts.Color, "FunctionDecl"), s.Position())
		fmt.Fprintf(w, "%s├─ Type: %s\n", prefix, s.ReturnType.Kind)
		fmt.Fprintf(w, "%s├─ Name: %s\n", prefix, s.Name)
		fmt.Fprintf(w, "%s└─ Body:\n", prefix)
		writeStatements(w, s.Body, prefix+"   ", opts)
	case *ast.ReturnStatement:
		fmt.Fprintf(w, "%s (at %s)\n", paint(kindStyle, opts.Color, "Return"), s.Pos)
		fmt.Fprintf(w, "%s└─ Term: %s\n", prefix, termLabel(s.Term, opts))
	default:
		fmt.Fprintf(w, "%T\n", stmt)
	}
}

func termLabel(t ast.Term, opts Options) string {
	switch term := t.(type) {
	case *ast.IntegerLiteral:
		return fmt.Sprintf("%s %q (at %s)", paint(kindStyle, opts.Color, "IntegerLiteral"), term.Text, term.Pos)
	default:
		return fmt.Sprintf("%T", t)
	}
}

// FormatProgramJSON renders the syntax tree as indented JSON.
func FormatProgramJSON(w io.Writer, prog *ast.Program) error {
	root := ProgramNodeOutput{Type: "Program"}
	for _, stmt := range prog.Statements {
		root.Children = append(root.Children, statementNode(stmt))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

func statementNode(stmt ast.Statement) ProgramNodeOutput {
	switch s := stmt.(type) {
	case *ast.FunctionDecl:
		node := ProgramNodeOutput{
			Type:       "FunctionDecl",
			Name:       s.Name,
			ReturnType: s.ReturnType.Kind.String(),
			Line:       s.Position().Line,
			Column:     s.Position().Column,
		}
		for _, body := range s.Body {
			node.Children = append(node.Children, statementNode(body))
		}
		return node
	case *ast.ReturnStatement:
		node := ProgramNodeOutput{
			Type:   "Return",
			Line:   s.Pos.Line,
			Column: s.Pos.Column,
		}
		node.Children = append(node.Children, termNode(s.Term))
		return node
	default:
		return ProgramNodeOutput{Type: fmt.Sprintf("%T", stmt)}
	}
}

func termNode(t ast.Term) ProgramNodeOutput {
	switch term := t.(type) {
	case *ast.IntegerLiteral:
		return ProgramNodeOutput{
			Type:   "IntegerLiteral",
			Text:   term.Text,
			Line:   term.Pos.Line,
			Column: term.Pos.Column,
		}
	default:
		return ProgramNodeOutput{Type: fmt.Sprintf("%T", t)}
	}
}
