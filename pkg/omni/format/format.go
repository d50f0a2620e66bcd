// Package format renders token streams and AST summaries for the CLI's
// --tokens and --ast modes.
package format

import (
	"strings"

	"github.com/omni-lang/omni/pkg/omni/ast"
	"github.com/omni-lang/omni/pkg/omni/lexer"
)

// Tokens renders a token stream on one line, skipping NEWLINE tokens for
// readability.
func Tokens(tokens []lexer.Token) string {
	var out strings.Builder
	out.WriteString("=== Tokens ===\n")
	for _, tok := range tokens {
		if tok.Type == lexer.NEWLINE {
			continue
		}
		out.WriteString(tok.Type.String())
		out.WriteString("(")
		out.WriteString(tok.Literal)
		out.WriteString(") ")
	}
	out.WriteString("\n")
	return out.String()
}

// ProgramSummary renders the declaration-level shape of a program: imports,
// classes with their fields and methods, and top-level function signatures.
func ProgramSummary(program *ast.Program) string {
	var out strings.Builder
	out.WriteString("=== Omni AST ===\n")

	for _, imp := range program.Imports {
		out.WriteString("[IMPORT] " + imp.Module + "\n")
	}

	for _, iface := range program.Interfaces {
		out.WriteString("\n[INTERFACE] " + iface.Name + "\n")
		for _, method := range iface.Methods {
			out.WriteString("  [METHOD] " + method.Name + "()\n")
		}
	}

	for _, cls := range program.Classes {
		out.WriteString("\n[CLASS] " + cls.Name)
		if cls.Parent != "" {
			out.WriteString(" extends " + cls.Parent)
		}
		if len(cls.Interfaces) > 0 {
			out.WriteString(" implements " + strings.Join(cls.Interfaces, ", "))
		}
		out.WriteString("\n")

		for _, field := range cls.Fields {
			out.WriteString("  [FIELD] " + field.Type.Name + " " + field.Name + "\n")
		}
		if cls.Constructor != nil {
			out.WriteString("  [CONSTRUCTOR] __init__\n")
		}
		for _, method := range cls.Methods {
			out.WriteString("  [METHOD] " + method.Name + "()\n")
		}
	}

	for _, fn := range program.Functions {
		out.WriteString("\n[FUNCTION] " + fn.Name + "(")
		params := make([]string, 0, len(fn.Params))
		for _, p := range fn.Params {
			if p.Type.Name != "" && p.Type.Name != "self" {
				params = append(params, p.Name+": "+p.Type.Name)
			} else {
				params = append(params, p.Name)
			}
		}
		out.WriteString(strings.Join(params, ", "))
		out.WriteString(") -> " + fn.ReturnType.Name + "\n")
	}

	return out.String()
}
