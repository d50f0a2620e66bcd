package lexer

import (
	"testing"
)

func tokenize(input string) []Token {
	return New(input).Tokenize()
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != < > <= >= && || ! ++ -- += -= . -> : ; , ( ) [ ] { }`

	expected := []TokenType{
		PLUS, MINUS, ASTERISK, SLASH, PERCENT, ASSIGN, EQ, NOT_EQ,
		LT, GT, LTE, GTE, AND, OR, BANG, PLUSPLUS, MINUSMINUS,
		PLUS_EQ, MINUS_EQ, DOT, ARROW, COLON, SEMICOLON, COMMA,
		LPAREN, RPAREN, LBRACKET, RBRACKET, LBRACE, RBRACE, EOF,
	}

	tokens := tokenize(input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d: expected %s, got %s (%q)", i, tt, tokens[i].Type, tokens[i].Literal)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"def", DEF},
		{"return", RETURN},
		{"elif", ELIF},
		{"while", WHILE},
		{"class", CLASS},
		{"interface", INTERFACE},
		{"extends", EXTENDS},
		{"implements", IMPLEMENTS},
		{"new", NEW},
		{"static", STATIC},
		{"self", SELF},
		{"this", THIS},
		{"try", TRY},
		{"catch", CATCH},
		{"finally", FINALLY},
		{"throw", THROW},
		{"in", IN},
		{"as", AS},
		{"int", INT_TYPE},
		{"String", STRING_TYPE},
		{"void", VOID_TYPE},
		// Reserved value names lex as ordinary identifiers
		{"true", IDENT},
		{"false", IDENT},
		{"null", IDENT},
		{"foobar", IDENT},
		{"_private", IDENT},
		{"x2", IDENT},
	}

	for _, tc := range tests {
		tokens := tokenize(tc.input)
		if tokens[0].Type != tc.expected {
			t.Errorf("%q: expected %s, got %s", tc.input, tc.expected, tokens[0].Type)
		}
		if tokens[0].Literal != tc.input {
			t.Errorf("%q: literal mismatch, got %q", tc.input, tokens[0].Literal)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"2.5f", "2.5f"},
		{"10F", "10F"},
	}

	for _, tc := range tests {
		tokens := tokenize(tc.input)
		if tokens[0].Type != NUMBER {
			t.Errorf("%q: expected NUMBER, got %s", tc.input, tokens[0].Type)
		}
		if tokens[0].Literal != tc.expected {
			t.Errorf("%q: expected literal %q, got %q", tc.input, tc.expected, tokens[0].Literal)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`'single'`, "single"},
		{`"tab\there"`, "tab\there"},
		{`"line\n"`, "line\n"},
		{`"back\\slash"`, `back\slash`},
		{`"quo\"te"`, `quo"te`},
		{`""`, ""},
	}

	for _, tc := range tests {
		tokens := tokenize(tc.input)
		if tokens[0].Type != STRING {
			t.Errorf("%q: expected STRING, got %s", tc.input, tokens[0].Type)
		}
		if tokens[0].Literal != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.input, tc.expected, tokens[0].Literal)
		}
	}
}

func TestFStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`f"hello {name}"`, "hello {name}"},
		{`f'also {x}'`, "also {x}"},
		{`f"escaped \{brace\}"`, "escaped {brace}"},
		{`f"plain"`, "plain"},
	}

	for _, tc := range tests {
		tokens := tokenize(tc.input)
		if tokens[0].Type != FSTRING {
			t.Errorf("%q: expected FSTRING, got %s", tc.input, tokens[0].Type)
		}
		if tokens[0].Literal != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.input, tc.expected, tokens[0].Literal)
		}
	}
}

func TestFPrefixedIdentifier(t *testing.T) {
	// 'f' not followed by a quote is a normal identifier
	tokens := tokenize("foo f")
	if tokens[0].Type != IDENT || tokens[0].Literal != "foo" {
		t.Errorf("expected IDENT foo, got %s %q", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != IDENT || tokens[1].Literal != "f" {
		t.Errorf("expected IDENT f, got %s %q", tokens[1].Type, tokens[1].Literal)
	}
}

func TestComments(t *testing.T) {
	input := `x # hash comment
y // slash comment
/* multi
   line */ z`

	var idents []string
	for _, tok := range tokenize(input) {
		if tok.Type == IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 3 || idents[0] != "x" || idents[1] != "y" || idents[2] != "z" {
		t.Errorf("expected idents x, y, z; got %v", idents)
	}
}

func TestIndentation(t *testing.T) {
	input := "def main():\n    x = 1\n    if x:\n        print(x)\n    y = 2\n"

	var kinds []TokenType
	for _, tok := range tokenize(input) {
		switch tok.Type {
		case INDENT, DEDENT:
			kinds = append(kinds, tok.Type)
		}
	}

	expected := []TokenType{INDENT, INDENT, DEDENT, DEDENT}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, kinds)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
}

func TestIndentDedentBalance(t *testing.T) {
	inputs := []string{
		"def main():\n    x = 1\n",
		"def main():\n    if a:\n        if b:\n            c()\n",
		"def f():\n    pass()\ndef g():\n    pass()\n",
		"def f():\n    while x:\n        y()\n    z()",
		"def f():\n\tx()\n\t\ty()\n",
	}

	for _, input := range inputs {
		depth := 0
		for _, tok := range tokenize(input) {
			switch tok.Type {
			case INDENT:
				depth++
			case DEDENT:
				depth--
			}
			if depth < 0 {
				t.Fatalf("%q: DEDENT below zero", input)
			}
		}
		if depth != 0 {
			t.Errorf("%q: INDENT/DEDENT unbalanced, depth %d at EOF", input, depth)
		}
	}
}

func TestBlankAndCommentLinesKeepIndent(t *testing.T) {
	input := "def main():\n    x = 1\n\n    # comment line\n    y = 2\n"

	count := 0
	for _, tok := range tokenize(input) {
		if tok.Type == DEDENT {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 DEDENT at EOF, got %d", count)
	}
}

func TestTabWidth(t *testing.T) {
	// A tab counts as four spaces, so tab and 4-space lines share one level
	input := "def main():\n\tx = 1\n    y = 2\n"

	indents, dedents := 0, 0
	for _, tok := range tokenize(input) {
		switch tok.Type {
		case INDENT:
			indents++
		case DEDENT:
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Errorf("expected 1 INDENT and 1 DEDENT, got %d and %d", indents, dedents)
	}
}

func TestNewlineTokens(t *testing.T) {
	tokens := tokenize("a\nb\n")
	var kinds []TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	expected := []TokenType{IDENT, NEWLINE, IDENT, NEWLINE, EOF}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, kinds)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
}

func TestLinePositions(t *testing.T) {
	tokens := tokenize("a\nbb\nccc")
	positions := map[string]int{}
	for _, tok := range tokens {
		if tok.Type == IDENT {
			positions[tok.Literal] = tok.Line
		}
	}
	if positions["a"] != 1 || positions["bb"] != 2 || positions["ccc"] != 3 {
		t.Errorf("wrong line positions: %v", positions)
	}
}

func TestUnknownCharacterDiagnostics(t *testing.T) {
	l := New("x @ y ~ z")
	tokens := l.Tokenize()

	diags := l.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Message != "@" || diags[1].Message != "~" {
		t.Errorf("unexpected diagnostics: %v, %v", diags[0].Message, diags[1].Message)
	}

	// Tokenization is total: all three identifiers survive
	var idents int
	for _, tok := range tokens {
		if tok.Type == IDENT {
			idents++
		}
	}
	if idents != 3 {
		t.Errorf("expected 3 identifiers, got %d", idents)
	}
}

func TestEOFAlwaysLast(t *testing.T) {
	for _, input := range []string{"", "x", "def f():\n    y\n", "#only comment"} {
		tokens := tokenize(input)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
			t.Errorf("%q: missing trailing EOF", input)
		}
	}
}
