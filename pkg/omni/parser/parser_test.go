package parser

import (
	"strings"
	"testing"

	"github.com/omni-lang/omni/pkg/omni/ast"
	"github.com/omni-lang/omni/pkg/omni/lexer"
)

func parseSource(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input).Tokenize())
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parser errors for %q: %v", input, p.ErrorStrings())
	}
	return program
}

func parseBody(t *testing.T, body string) []ast.Statement {
	t.Helper()
	var src strings.Builder
	src.WriteString("def main():\n")
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		src.WriteString("    " + line + "\n")
	}
	program := parseSource(t, src.String())
	if len(program.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(program.Functions))
	}
	return program.Functions[0].Body
}

func TestPythonStyleFunction(t *testing.T) {
	program := parseSource(t, "def add(a: int, b: int) -> int:\n    return a + b\n")

	fn := program.Functions[0]
	if fn.Name != "add" {
		t.Errorf("expected name add, got %q", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Name != "a" || fn.Params[0].Type.Name != "int" {
		t.Errorf("param 0: got %s %s", fn.Params[0].Type.Name, fn.Params[0].Name)
	}
	if fn.ReturnType.Name != "int" {
		t.Errorf("expected return type int, got %q", fn.ReturnType.Name)
	}
}

func TestCStyleFunction(t *testing.T) {
	program := parseSource(t, "int add(int a, int b):\n    return a + b\n")

	fn := program.Functions[0]
	if fn.Name != "add" {
		t.Errorf("expected name add, got %q", fn.Name)
	}
	if fn.ReturnType.Name != "int" {
		t.Errorf("expected return type int, got %q", fn.ReturnType.Name)
	}
	if fn.Params[0].Name != "a" || fn.Params[0].Type.Name != "int" {
		t.Errorf("param 0: got %s %s", fn.Params[0].Type.Name, fn.Params[0].Name)
	}
}

func TestUntypedParamsDefaultToAuto(t *testing.T) {
	program := parseSource(t, "def f(a, b):\n    return a\n")

	fn := program.Functions[0]
	for _, p := range fn.Params {
		if p.Type.Name != "auto" {
			t.Errorf("param %s: expected type auto, got %q", p.Name, p.Type.Name)
		}
	}
	if fn.ReturnType.Name != "void" {
		t.Errorf("expected default return type void, got %q", fn.ReturnType.Name)
	}
}

func TestSelfAndThisNormalize(t *testing.T) {
	for _, lead := range []string{"self", "this"} {
		program := parseSource(t, "def m("+lead+", x):\n    return x\n")
		fn := program.Functions[0]
		if fn.Params[0].Name != "self" || fn.Params[0].Type.Name != "self" {
			t.Errorf("%s: first param not normalized to self: %+v", lead, fn.Params[0])
		}
		if !fn.IsMethod() {
			t.Errorf("%s: expected method", lead)
		}
	}
}

func TestElifChainNesting(t *testing.T) {
	body := parseBody(t, strings.Join([]string{
		"if a:",
		"    one()",
		"elif b:",
		"    two()",
		"elif c:",
		"    three()",
		"else:",
		"    four()",
	}, "\n"))

	ifStmt, ok := body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %T", body[0])
	}

	// Each elif is the sole nested If in the preceding else body
	depth := 0
	for {
		if len(ifStmt.Alternative) != 1 {
			break
		}
		nested, ok := ifStmt.Alternative[0].(*ast.IfStatement)
		if !ok {
			break
		}
		ifStmt = nested
		depth++
	}
	if depth != 2 {
		t.Errorf("expected 2 nested elif levels, got %d", depth)
	}
	if len(ifStmt.Alternative) != 1 {
		t.Errorf("final else body: expected 1 statement, got %d", len(ifStmt.Alternative))
	}
}

func TestAssignmentRewritesToVarStatement(t *testing.T) {
	body := parseBody(t, "x = 10\n")

	stmt, ok := body[0].(*ast.VarStatement)
	if !ok {
		t.Fatalf("expected VarStatement, got %T", body[0])
	}
	if stmt.Name != "x" {
		t.Errorf("expected name x, got %q", stmt.Name)
	}
}

func TestMemberAndIndexAssignment(t *testing.T) {
	tests := []struct {
		input  string
		target string
	}{
		{"self.x = 1", "self.x"},
		{"o.field = 2", "o.field"},
		{"a[0] = 3", "a[0]"},
		{"self.inner.leaf = 4", "self.inner.leaf"},
	}

	for _, tc := range tests {
		body := parseBody(t, tc.input)
		stmt, ok := body[0].(*ast.IndexAssignmentStatement)
		if !ok {
			t.Fatalf("%q: expected IndexAssignmentStatement, got %T", tc.input, body[0])
		}
		if stmt.Target.String() != tc.target {
			t.Errorf("%q: target mismatch, got %q", tc.input, stmt.Target.String())
		}
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"a + b - c", "((a + b) - c)"},
		{"a < b == c", "((a < b) == c)"},
		{"a == b && c == d", "((a == b) && (c == d))"},
		{"a && b || c", "((a && b) || c)"},
		{"!a && b", "((!a) && b)"},
		{"-a * b", "((-a) * b)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a % b * c", "((a % b) * c)"},
	}

	for _, tc := range tests {
		body := parseBody(t, tc.input)
		stmt, ok := body[0].(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("%q: expected ExpressionStatement, got %T", tc.input, body[0])
		}
		if stmt.Expression.String() != tc.expected {
			t.Errorf("%q: expected %s, got %s", tc.input, tc.expected, stmt.Expression.String())
		}
	}
}

func TestMemberChaining(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"obj.field", "obj.field"},
		{"obj.method()", "obj.method()"},
		{"obj.a.b", "obj.a.b"},
		{"obj.m(1, 2)", "obj.m(1, 2)"},
		{"arr[0]", "arr[0]"},
		{"arr[i + 1]", "arr[(i + 1)]"},
		{"obj.items[0].name", "obj.items[0].name"},
		{"Math.sqrt(16)", "Math.sqrt(16)"},
		{"String.length(s)", "String.length(s)"},
	}

	for _, tc := range tests {
		body := parseBody(t, tc.input)
		stmt := body[0].(*ast.ExpressionStatement)
		if stmt.Expression.String() != tc.expected {
			t.Errorf("%q: got %s", tc.input, stmt.Expression.String())
		}
	}
}

func TestLambda(t *testing.T) {
	body := parseBody(t, "f = x -> x * 2\n")

	stmt := body[0].(*ast.VarStatement)
	lambda, ok := stmt.Value.(*ast.LambdaLiteral)
	if !ok {
		t.Fatalf("expected LambdaLiteral, got %T", stmt.Value)
	}
	if len(lambda.Params) != 1 || lambda.Params[0] != "x" {
		t.Errorf("expected params [x], got %v", lambda.Params)
	}
	if lambda.Body.String() != "(x * 2)" {
		t.Errorf("expected body (x * 2), got %s", lambda.Body.String())
	}
}

func TestArrayLiteralAndIndex(t *testing.T) {
	body := parseBody(t, "a = [1, 2, 3]\nb = a[1]\n")

	first := body[0].(*ast.VarStatement)
	arr, ok := first.Value.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("expected ArrayLiteral, got %T", first.Value)
	}
	if len(arr.Elements) != 3 {
		t.Errorf("expected 3 elements, got %d", len(arr.Elements))
	}

	second := body[1].(*ast.VarStatement)
	if _, ok := second.Value.(*ast.IndexExpression); !ok {
		t.Fatalf("expected IndexExpression, got %T", second.Value)
	}
}

func TestNewExpression(t *testing.T) {
	body := parseBody(t, `p = new Point(3, 4)`)

	stmt := body[0].(*ast.VarStatement)
	ne, ok := stmt.Value.(*ast.NewExpression)
	if !ok {
		t.Fatalf("expected NewExpression, got %T", stmt.Value)
	}
	if ne.ClassName != "Point" || len(ne.Arguments) != 2 {
		t.Errorf("got class %q with %d args", ne.ClassName, len(ne.Arguments))
	}
}

func TestClassDeclaration(t *testing.T) {
	input := strings.Join([]string{
		"class Dog extends Animal implements IPet, INoisy:",
		"    String name",
		"    private int age = 0",
		"    def __init__(self, name):",
		"        self.name = name",
		"    def bark(self):",
		"        return \"woof\"",
		"    static def species():",
		"        return \"canine\"",
		"",
	}, "\n")

	program := parseSource(t, input)
	if len(program.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(program.Classes))
	}

	cls := program.Classes[0]
	if cls.Name != "Dog" || cls.Parent != "Animal" {
		t.Errorf("got class %q extends %q", cls.Name, cls.Parent)
	}
	if len(cls.Interfaces) != 2 || cls.Interfaces[0] != "IPet" || cls.Interfaces[1] != "INoisy" {
		t.Errorf("interfaces: %v", cls.Interfaces)
	}
	if len(cls.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(cls.Fields))
	}
	if cls.Fields[0].Name != "name" || cls.Fields[0].Type.Name != "String" {
		t.Errorf("field 0: %+v", cls.Fields[0])
	}
	if cls.Fields[1].Access != ast.Private || cls.Fields[1].Initializer == nil {
		t.Errorf("field 1: %+v", cls.Fields[1])
	}
	if cls.Constructor == nil {
		t.Fatal("expected constructor")
	}
	if len(cls.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(cls.Methods))
	}
	if !cls.Methods[1].IsStatic {
		t.Error("expected species to be static")
	}
}

func TestParenInheritanceSyntax(t *testing.T) {
	program := parseSource(t, "class Dog(Animal):\n    def bark(self):\n        return 1\n")
	if program.Classes[0].Parent != "Animal" {
		t.Errorf("expected parent Animal, got %q", program.Classes[0].Parent)
	}
}

func TestInterfaceDeclaration(t *testing.T) {
	program := parseSource(t, "interface IShape:\n    def area(self) -> double:\n        pass()\n")
	if len(program.Interfaces) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(program.Interfaces))
	}
	iface := program.Interfaces[0]
	if iface.Name != "IShape" || len(iface.Methods) != 1 {
		t.Errorf("interface %q with %d methods", iface.Name, len(iface.Methods))
	}
}

func TestImport(t *testing.T) {
	program := parseSource(t, "import utils\ndef main():\n    x = 1\n")
	if len(program.Imports) != 1 || program.Imports[0].Module != "utils" {
		t.Fatalf("imports: %+v", program.Imports)
	}
}

func TestImportStringPath(t *testing.T) {
	program := parseSource(t, "import \"lib/helpers.omni\"\ndef main():\n    x = 1\n")
	if program.Imports[0].Module != "lib/helpers.omni" {
		t.Errorf("got module %q", program.Imports[0].Module)
	}
}

func TestTryCatchFinally(t *testing.T) {
	body := parseBody(t, strings.Join([]string{
		"try:",
		"    risky()",
		"catch Exception as err:",
		"    handle(err)",
		"finally:",
		"    cleanup()",
	}, "\n"))

	stmt, ok := body[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected TryStatement, got %T", body[0])
	}
	if stmt.CatchType != "Exception" || stmt.CatchVar != "err" {
		t.Errorf("catch clause: %q as %q", stmt.CatchType, stmt.CatchVar)
	}
	if len(stmt.TryBody) != 1 || len(stmt.CatchBody) != 1 || len(stmt.FinallyBody) != 1 {
		t.Errorf("body lengths: %d %d %d", len(stmt.TryBody), len(stmt.CatchBody), len(stmt.FinallyBody))
	}
}

func TestTryCatchDefaults(t *testing.T) {
	body := parseBody(t, "try:\n    risky()\ncatch:\n    recover()\n")

	stmt := body[0].(*ast.TryStatement)
	if stmt.CatchType != "Exception" || stmt.CatchVar != "e" {
		t.Errorf("expected defaults Exception/e, got %q/%q", stmt.CatchType, stmt.CatchVar)
	}
	if len(stmt.FinallyBody) != 0 {
		t.Errorf("expected no finally body")
	}
}

func TestForStatement(t *testing.T) {
	body := parseBody(t, "for i in range(5):\n    print(i)\n")

	stmt, ok := body[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %T", body[0])
	}
	if stmt.VarName != "i" {
		t.Errorf("expected loop var i, got %q", stmt.VarName)
	}
	if stmt.Iterable.String() != "range(5)" {
		t.Errorf("iterable: %s", stmt.Iterable.String())
	}
}

func TestWhileBreakContinue(t *testing.T) {
	body := parseBody(t, strings.Join([]string{
		"while x < 10:",
		"    if x == 3:",
		"        break",
		"    continue",
	}, "\n"))

	stmt, ok := body[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected WhileStatement, got %T", body[0])
	}
	if len(stmt.Body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(stmt.Body))
	}
	if _, ok := stmt.Body[1].(*ast.ContinueStatement); !ok {
		t.Errorf("expected ContinueStatement, got %T", stmt.Body[1])
	}
}

func TestBareReturn(t *testing.T) {
	body := parseBody(t, "return\n")
	stmt := body[0].(*ast.ReturnStatement)
	if stmt.Value != nil {
		t.Errorf("expected nil return value, got %v", stmt.Value)
	}
}

func TestStatementLines(t *testing.T) {
	body := parseBody(t, "x = 1\ny = 2\n")
	if body[0].Line() != 2 || body[1].Line() != 3 {
		t.Errorf("statement lines: %d, %d", body[0].Line(), body[1].Line())
	}
}

func TestTypeAnnotations(t *testing.T) {
	program := parseSource(t, "def f(xs: int[], m: List<int>) -> void:\n    return\n")
	fn := program.Functions[0]
	if !fn.Params[0].Type.IsArray {
		t.Errorf("expected array type for xs: %+v", fn.Params[0].Type)
	}
	if fn.Params[1].Type.GenericParam != "int" {
		t.Errorf("expected generic param int: %+v", fn.Params[1].Type)
	}
}

func TestErrorRecovery(t *testing.T) {
	// The broken first function should not prevent the second from parsing
	input := strings.Join([]string{
		"def broken(:",
		"    x = 1",
		"",
		"def ok():",
		"    return 1",
		"",
	}, "\n")

	p := New(lexer.New(input).Tokenize())
	program := p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one parse error")
	}
	found := false
	for _, fn := range program.Functions {
		if fn.Name == "ok" {
			found = true
		}
	}
	if !found {
		t.Error("parser did not recover to parse the second function")
	}
}

func TestMultipleErrorsSurface(t *testing.T) {
	input := strings.Join([]string{
		"def a(:",
		"    x = 1",
		"",
		"def b(:",
		"    y = 2",
		"",
	}, "\n")

	p := New(lexer.New(input).Tokenize())
	p.ParseProgram()

	if len(p.Errors()) < 2 {
		t.Errorf("expected at least 2 errors, got %d: %v", len(p.Errors()), p.ErrorStrings())
	}
}

func TestParseErrorFormat(t *testing.T) {
	p := New(lexer.New("def f(:\n    x = 1\n").Tokenize())
	p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatal("expected parse error")
	}
	msg := p.Errors()[0].String()
	if !strings.HasPrefix(msg, "Parse Error: ") || !strings.Contains(msg, "at line") {
		t.Errorf("unexpected error format: %q", msg)
	}
}
