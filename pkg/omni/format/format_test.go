package format

import (
	"strings"
	"testing"

	"github.com/omni-lang/omni/pkg/omni/lexer"
	"github.com/omni-lang/omni/pkg/omni/parser"
)

func TestTokensOmitsNewlines(t *testing.T) {
	tokens := lexer.New("x = 1\ny = 2\n").Tokenize()
	out := Tokens(tokens)

	if strings.Contains(out, "NEWLINE") {
		t.Errorf("NEWLINE tokens should be skipped: %q", out)
	}
	if !strings.Contains(out, "ID(x)") || !strings.Contains(out, "NUMBER(2)") {
		t.Errorf("missing tokens: %q", out)
	}
}

func TestProgramSummary(t *testing.T) {
	source := strings.Join([]string{
		"import utils",
		"",
		"interface IShape:",
		"    def area(self) -> double:",
		"        stub()",
		"",
		"class Circle extends Shape implements IShape:",
		"    double radius",
		"    def __init__(self, r):",
		"        self.radius = r",
		"    def area(self):",
		"        return 3.14 * self.radius * self.radius",
		"",
		"def main():",
		"    c = new Circle(2)",
		"",
	}, "\n")

	p := parser.New(lexer.New(source).Tokenize())
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	out := ProgramSummary(program)

	for _, want := range []string{
		"[IMPORT] utils",
		"[INTERFACE] IShape",
		"[CLASS] Circle extends Shape implements IShape",
		"  [FIELD] double radius",
		"  [CONSTRUCTOR] __init__",
		"  [METHOD] area()",
		"[FUNCTION] main() -> void",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
