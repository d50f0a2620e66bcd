// Package parser turns an Omni token stream into an AST.
//
// Statements and declarations are parsed by recursive descent; expressions
// use a Pratt precedence climb. On an expected-token mismatch the parser
// records a structured error, abandons the current declaration, and
// resynchronizes at the next statement-starting token so that several errors
// can surface in a single run.
package parser

import (
	"strconv"
	"strings"

	"github.com/omni-lang/omni/pkg/omni/ast"
	omnierrors "github.com/omni-lang/omni/pkg/omni/errors"
	"github.com/omni-lang/omni/pkg/omni/lexer"
)

// Precedence levels for operators
const (
	_ int = iota
	LOWEST
	LOGIC_OR    // ||
	LOGIC_AND   // &&
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	MEMBER      // obj.member, arr[index]
)

// precedences maps tokens to their precedence
var precedences = map[lexer.TokenType]int{
	lexer.OR:       LOGIC_OR,
	lexer.AND:      LOGIC_AND,
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.LTE:      LESSGREATER,
	lexer.GTE:      LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.DOT:      MEMBER,
	lexer.LBRACKET: MEMBER,
}

// bailout aborts the current declaration after a parse error; it is caught
// at the top-level loop, which resynchronizes.
type bailout struct{}

// Parser represents the parser
type Parser struct {
	tokens []lexer.Token
	pos    int

	errors []*omnierrors.OmniError
}

// New creates a new parser over a token stream
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the structured parse errors collected so far.
func (p *Parser) Errors() []*omnierrors.OmniError {
	return p.errors
}

// ErrorStrings returns parse errors as strings (convenience for tests).
func (p *Parser) ErrorStrings() []string {
	result := make([]string, len(p.errors))
	for i, err := range p.errors {
		result[i] = err.String()
	}
	return result
}

func (p *Parser) addError(msg string, line int) {
	p.errors = append(p.errors, &omnierrors.OmniError{
		Class:   omnierrors.ClassParse,
		Message: msg,
		Line:    line,
	})
}

//
// Token utilities
//

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekNext() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

// expect consumes a token of the given type or records an error and bails
// out of the current declaration.
func (p *Parser) expect(tt lexer.TokenType, msg string) {
	if !p.match(tt) {
		p.addError(msg, p.peek().Line)
		panic(bailout{})
	}
}

// synchronize skips tokens until a statement-starting token so parsing can
// continue after an error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.NEWLINE, lexer.DEF, lexer.CLASS, lexer.IF:
			return
		}
		p.advance()
	}
}

// isTypeName reports whether the current token can start a type annotation.
func (p *Parser) isTypeName() bool {
	return lexer.IsTypeKeyword(p.peek().Type) || p.check(lexer.IDENT)
}

// parseType parses a type annotation: a name with an optional [] array
// marker and an optional single <T> generic parameter.
func (p *Parser) parseType() ast.TypeInfo {
	info := ast.TypeInfo{Name: p.advance().Literal}

	if p.match(lexer.LBRACKET) {
		p.expect(lexer.RBRACKET, "Expected ']' for array type")
		info.IsArray = true
	}

	if p.match(lexer.LT) {
		info.GenericParam = p.advance().Literal
		p.expect(lexer.GT, "Expected '>' for generic type")
	}

	return info
}

func (p *Parser) parseAccessModifier() ast.AccessModifier {
	switch {
	case p.match(lexer.PUBLIC):
		return ast.Public
	case p.match(lexer.PRIVATE):
		return ast.Private
	case p.match(lexer.PROTECTED):
		return ast.Protected
	}
	return ast.Public
}

//
// Top-level parsing
//

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.isAtEnd() {
		for p.match(lexer.NEWLINE) || p.match(lexer.DEDENT) {
		}
		if p.isAtEnd() {
			break
		}
		p.parseDeclaration(program)
	}

	return program
}

// parseDeclaration parses one top-level declaration, recovering at the next
// synchronization point on error.
func (p *Parser) parseDeclaration(program *ast.Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize()
		}
	}()

	switch {
	case p.check(lexer.IMPORT):
		program.Imports = append(program.Imports, p.parseImport())
	case p.check(lexer.CLASS):
		program.Classes = append(program.Classes, p.parseClass())
	case p.check(lexer.INTERFACE):
		program.Interfaces = append(program.Interfaces, p.parseInterface())
	case p.check(lexer.DEF):
		program.Functions = append(program.Functions, p.parseFunction())
	case p.check(lexer.PUBLIC) || p.check(lexer.PRIVATE) || p.check(lexer.PROTECTED):
		access := p.parseAccessModifier()
		switch {
		case p.check(lexer.CLASS):
			program.Classes = append(program.Classes, p.parseClass())
		case p.check(lexer.DEF):
			fn := p.parseFunction()
			fn.Access = access
			program.Functions = append(program.Functions, fn)
		default:
			p.addError("Expected 'class' or 'def' after access modifier", p.peek().Line)
			p.advance()
		}
	case p.isTypeName() && p.peekNext().Type == lexer.IDENT:
		// C-style function: int main()
		program.Functions = append(program.Functions, p.parseFunction())
	default:
		p.addError("Unexpected token at top level: "+p.peek().Literal, p.peek().Line)
		p.advance()
	}
}

func (p *Parser) parseImport() *ast.Import {
	tok := p.peek()
	p.expect(lexer.IMPORT, "Expected 'import'")
	// Accept both an identifier and a string path
	name := p.advance()
	return &ast.Import{Token: tok, Module: name.Literal}
}

//
// Class and interface parsing
//

func (p *Parser) parseClass() *ast.Class {
	tok := p.peek()
	p.expect(lexer.CLASS, "Expected 'class'")

	cls := &ast.Class{Token: tok, Name: p.advance().Literal}

	// Inheritance: class Dog(Animal) or class Dog extends Animal
	if p.match(lexer.LPAREN) {
		cls.Parent = p.advance().Literal
		p.expect(lexer.RPAREN, "Expected ')' after parent class")
	} else if p.match(lexer.EXTENDS) {
		cls.Parent = p.advance().Literal
	}

	// Interfaces: implements IRunnable, IDrawable
	if p.match(lexer.IMPLEMENTS) {
		for {
			cls.Interfaces = append(cls.Interfaces, p.advance().Literal)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	p.expect(lexer.COLON, "Expected ':' before class body")

	for p.match(lexer.NEWLINE) {
	}
	p.expect(lexer.INDENT, "Expected indent for class body")

	for !p.check(lexer.DEDENT) && !p.isAtEnd() {
		for p.match(lexer.NEWLINE) {
		}
		if p.check(lexer.DEDENT) {
			break
		}

		access := p.parseAccessModifier()
		isStatic := p.match(lexer.STATIC)

		switch {
		case p.check(lexer.DEF):
			method := p.parseFunction()
			method.Access = access
			method.IsStatic = isStatic

			if method.Name == "__init__" {
				cls.Constructor = method
			} else {
				cls.Methods = append(cls.Methods, method)
			}
		case p.isTypeName():
			// Field: String name, or public int age = 0
			field := ast.FieldDecl{Access: access, Type: p.parseType()}
			field.Name = p.advance().Literal
			if p.match(lexer.ASSIGN) {
				field.Initializer = p.parseExpression()
			}
			cls.Fields = append(cls.Fields, field)
		default:
			p.addError("Unexpected token in class body: "+p.peek().Literal, p.peek().Line)
			p.advance()
		}
	}

	p.match(lexer.DEDENT)

	return cls
}

func (p *Parser) parseInterface() *ast.Interface {
	tok := p.peek()
	p.expect(lexer.INTERFACE, "Expected 'interface'")

	iface := &ast.Interface{Token: tok, Name: p.advance().Literal}

	p.expect(lexer.COLON, "Expected ':' before interface body")

	for p.match(lexer.NEWLINE) {
	}
	p.expect(lexer.INDENT, "Expected indent for interface body")

	for !p.check(lexer.DEDENT) && !p.isAtEnd() {
		for p.match(lexer.NEWLINE) {
		}
		if p.check(lexer.DEDENT) {
			break
		}

		if p.check(lexer.DEF) {
			iface.Methods = append(iface.Methods, p.parseFunction())
		} else {
			p.addError("Unexpected token in interface body: "+p.peek().Literal, p.peek().Line)
			p.advance()
		}
	}

	p.match(lexer.DEDENT)

	return iface
}

//
// Function parsing
//

// parseFunction accepts both declaration styles:
//
//	def name(a: T, b) -> R:     Python-style, arrow return optional
//	R name(T a, T b):           C-style, return type first
//
// A leading self/this parameter is normalized to the name self with the
// marker type self. Missing return types default to void.
func (p *Parser) parseFunction() *ast.Function {
	tok := p.peek()
	fn := &ast.Function{Token: tok}

	defStyle := false
	if p.match(lexer.DEF) {
		defStyle = true
		fn.Name = p.advance().Literal
	} else if p.isTypeName() {
		fn.ReturnType = p.parseType()
		fn.Name = p.advance().Literal
	}

	p.expect(lexer.LPAREN, "Expected '(' after function name")

	for !p.check(lexer.RPAREN) && !p.isAtEnd() {
		if p.check(lexer.SELF) || p.check(lexer.THIS) {
			p.advance()
			fn.Params = append(fn.Params, ast.Parameter{Name: "self", Type: ast.TypeInfo{Name: "self"}})
			if !p.check(lexer.RPAREN) {
				p.match(lexer.COMMA)
			}
			continue
		}

		var param ast.Parameter
		first := p.advance()

		switch {
		case p.match(lexer.COLON):
			// Python style: name: type
			param.Name = first.Literal
			param.Type = p.parseType()
		case p.check(lexer.IDENT):
			// C style: type name
			param.Type.Name = first.Literal
			param.Name = p.advance().Literal
		default:
			// Bare name, type inferred
			param.Name = first.Literal
			param.Type.Name = "auto"
		}

		fn.Params = append(fn.Params, param)

		if !p.check(lexer.RPAREN) && !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN, "Expected ')' after arguments")

	if defStyle {
		fn.ReturnType.Name = "void"
		if p.match(lexer.ARROW) {
			fn.ReturnType = p.parseType()
		}
	}
	if fn.ReturnType.Name == "" {
		fn.ReturnType.Name = "void"
	}

	p.expect(lexer.COLON, "Expected ':' before function body")

	fn.Body = p.parseBlock()

	return fn
}

//
// Block and statement parsing
//

func (p *Parser) parseBlock() []ast.Statement {
	var statements []ast.Statement

	for p.match(lexer.NEWLINE) {
	}
	p.expect(lexer.INDENT, "Expected indent for block")

	for !p.check(lexer.DEDENT) && !p.isAtEnd() {
		if p.match(lexer.NEWLINE) {
			continue
		}
		if stmt := p.parseStatement(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	p.match(lexer.DEDENT)

	return statements
}

func (p *Parser) parseStatement() ast.Statement {
	for p.match(lexer.NEWLINE) {
	}

	if p.check(lexer.DEDENT) || p.isAtEnd() {
		return nil
	}

	switch p.peek().Type {
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.BREAK:
		return &ast.BreakStatement{Token: p.advance()}
	case lexer.CONTINUE:
		return &ast.ContinueStatement{Token: p.advance()}
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.peek()
	p.expect(lexer.RETURN, "Expected 'return'")
	// A bare return has no expression token following it
	value := p.parseExpression()
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.peek()
	p.expect(lexer.IF, "Expected 'if'")
	cond := p.parseExpression()
	p.expect(lexer.COLON, "Expected ':' after if condition")

	consequence := p.parseBlock()
	alternative := p.parseElifElseChain()

	return &ast.IfStatement{Token: tok, Condition: cond, Consequence: consequence, Alternative: alternative}
}

// parseElifElseChain converts each elif into a nested IfStatement forming
// the sole statement of the preceding else body; a final else terminates the
// chain.
func (p *Parser) parseElifElseChain() []ast.Statement {
	var elseBody []ast.Statement

	for p.match(lexer.NEWLINE) {
	}

	if p.check(lexer.ELIF) {
		tok := p.advance()
		cond := p.parseExpression()
		p.expect(lexer.COLON, "Expected ':' after elif condition")

		body := p.parseBlock()
		nested := &ast.IfStatement{
			Token:       tok,
			Condition:   cond,
			Consequence: body,
			Alternative: p.parseElifElseChain(),
		}
		elseBody = append(elseBody, nested)
	} else if p.check(lexer.ELSE) {
		p.advance()
		p.expect(lexer.COLON, "Expected ':' after else")
		elseBody = p.parseBlock()
	}

	return elseBody
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.peek()
	p.expect(lexer.WHILE, "Expected 'while'")
	cond := p.parseExpression()
	p.expect(lexer.COLON, "Expected ':' after while condition")

	return &ast.WhileStatement{Token: tok, Condition: cond, Body: p.parseBlock()}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.peek()
	p.expect(lexer.FOR, "Expected 'for'")

	if !p.check(lexer.IDENT) {
		p.addError("Expected loop variable", p.peek().Line)
		panic(bailout{})
	}
	varName := p.advance().Literal

	p.expect(lexer.IN, "Expected 'in' after loop variable")

	iterable := p.parseExpression()
	p.expect(lexer.COLON, "Expected ':' after for")

	return &ast.ForStatement{Token: tok, VarName: varName, Iterable: iterable, Body: p.parseBlock()}
}

func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.peek()
	p.expect(lexer.TRY, "Expected 'try'")
	p.expect(lexer.COLON, "Expected ':' after try")

	tryBody := p.parseBlock()

	for p.match(lexer.NEWLINE) {
	}
	p.expect(lexer.CATCH, "Expected 'catch' after try block")

	stmt := &ast.TryStatement{Token: tok, TryBody: tryBody, CatchType: "Exception", CatchVar: "e"}

	// catch Exception as e:
	if p.check(lexer.IDENT) {
		stmt.CatchType = p.advance().Literal
	}
	if p.match(lexer.AS) {
		stmt.CatchVar = p.advance().Literal
	}

	p.expect(lexer.COLON, "Expected ':' after catch")
	stmt.CatchBody = p.parseBlock()

	for p.match(lexer.NEWLINE) {
	}
	if p.match(lexer.FINALLY) {
		p.expect(lexer.COLON, "Expected ':' after finally")
		stmt.FinallyBody = p.parseBlock()
	}

	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.peek()
	p.expect(lexer.THROW, "Expected 'throw'")
	return &ast.ThrowStatement{Token: tok, Value: p.parseExpression()}
}

// parseExpressionStatement parses an expression in statement position. When
// the next token is '=', the statement is rewritten: a bare identifier
// target becomes a variable declaration with inferred type; member and index
// targets become an index assignment.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.peek()
	expr := p.parseExpression()
	if expr == nil {
		p.addError("Unexpected token: "+p.peek().Literal, p.peek().Line)
		panic(bailout{})
	}

	if p.check(lexer.ASSIGN) {
		assignTok := p.advance()
		value := p.parseExpression()

		switch target := expr.(type) {
		case *ast.Identifier:
			return &ast.VarStatement{Token: tok, Name: target.Name, Value: value}
		case *ast.MemberExpression, *ast.IndexExpression:
			return &ast.IndexAssignmentStatement{Token: assignTok, Target: expr, Value: value}
		default:
			p.addError("Invalid assignment target", assignTok.Line)
			panic(bailout{})
		}
	}

	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

//
// Expression parsing
//

func precedenceOf(tt lexer.TokenType) int {
	if prec, ok := precedences[tt]; ok {
		return prec
	}
	return 0
}

// isExpressionToken reports whether a token can start an expression. Type
// keywords are included so static built-in calls like String.length(s)
// parse.
func isExpressionToken(tt lexer.TokenType) bool {
	switch tt {
	case lexer.NUMBER, lexer.STRING, lexer.FSTRING, lexer.IDENT,
		lexer.LPAREN, lexer.LBRACKET, lexer.NEW, lexer.SELF, lexer.THIS,
		lexer.BANG, lexer.MINUS:
		return true
	}
	return lexer.IsTypeKeyword(tt)
}

// parseExpression parses an expression, or returns nil when the current
// token cannot start one.
func (p *Parser) parseExpression() ast.Expression {
	if !isExpressionToken(p.peek().Type) {
		return nil
	}

	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}
	return p.parseBinaryRHS(LOWEST, lhs)
}

// parseBinaryRHS is the Pratt precedence climb. Member access, method
// calls, and indexing bind tightest and are folded directly into the left
// operand.
func (p *Parser) parseBinaryRHS(precedence int, lhs ast.Expression) ast.Expression {
	for {
		tokPrec := precedenceOf(p.peek().Type)
		if tokPrec < precedence {
			return lhs
		}

		opToken := p.advance()

		if opToken.Type == lexer.DOT {
			member := p.advance()

			if p.check(lexer.LPAREN) {
				p.advance()
				args := p.parseArguments(lexer.RPAREN)
				p.expect(lexer.RPAREN, "Expected ')' after method arguments")
				lhs = &ast.MethodCallExpression{Token: member, Object: lhs, Method: member.Literal, Arguments: args}
			} else {
				lhs = &ast.MemberExpression{Token: member, Object: lhs, Member: member.Literal}
			}
			continue
		}

		if opToken.Type == lexer.LBRACKET {
			index := p.parseExpression()
			p.expect(lexer.RBRACKET, "Expected ']'")
			lhs = &ast.IndexExpression{Token: opToken, Left: lhs, Index: index}
			continue
		}

		rhs := p.parsePrimary()
		if rhs == nil {
			return lhs
		}

		if tokPrec < precedenceOf(p.peek().Type) {
			rhs = p.parseBinaryRHS(tokPrec+1, rhs)
		}

		lhs = &ast.InfixExpression{Token: opToken, Operator: opToken.Literal, Left: lhs, Right: rhs}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()

	switch tok.Type {
	case lexer.NEWLINE, lexer.DEDENT, lexer.INDENT, lexer.COLON, lexer.ASSIGN, lexer.EOF:
		return nil

	case lexer.BANG, lexer.MINUS:
		p.advance()
		operand := p.parsePrimary()
		if operand == nil {
			p.addError("Expected operand after '"+tok.Literal+"'", tok.Line)
			panic(bailout{})
		}
		return &ast.PrefixExpression{Token: tok, Operator: tok.Literal, Operand: operand}

	case lexer.NEW:
		return p.parseNewExpression()

	case lexer.SELF, lexer.THIS:
		p.advance()
		return &ast.SelfExpression{Token: tok}

	case lexer.NUMBER:
		p.advance()
		return &ast.NumberLiteral{Token: tok, Value: parseNumber(tok.Literal)}

	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}

	case lexer.FSTRING:
		p.advance()
		return &ast.FStringLiteral{Token: tok, Template: tok.Literal}

	case lexer.IDENT:
		p.advance()

		// Single-parameter lambda: x -> expr
		if p.check(lexer.ARROW) {
			p.advance()
			body := p.parseExpression()
			if body == nil {
				p.addError("Expected expression after '->'", tok.Line)
				panic(bailout{})
			}
			return &ast.LambdaLiteral{Token: tok, Params: []string{tok.Literal}, Body: body}
		}

		if p.check(lexer.LPAREN) {
			return p.parseCallExpression(tok)
		}
		return &ast.Identifier{Token: tok, Name: tok.Literal}

	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN, "Expected ')' after expression")
		return expr

	case lexer.LBRACKET:
		p.advance()
		elements := p.parseArguments(lexer.RBRACKET)
		p.expect(lexer.RBRACKET, "Expected ']'")
		return &ast.ArrayLiteral{Token: tok, Elements: elements}
	}

	// Type keywords act as bare identifiers so String.length(s) and
	// int("42") parse as static calls.
	if lexer.IsTypeKeyword(tok.Type) {
		p.advance()
		if p.check(lexer.LPAREN) {
			return p.parseCallExpression(tok)
		}
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	}

	return nil
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.peek()
	p.expect(lexer.NEW, "Expected 'new'")
	className := p.advance()

	p.expect(lexer.LPAREN, "Expected '(' after class name")
	args := p.parseArguments(lexer.RPAREN)
	p.expect(lexer.RPAREN, "Expected ')' after constructor arguments")

	return &ast.NewExpression{Token: tok, ClassName: className.Literal, Arguments: args}
}

func (p *Parser) parseCallExpression(callee lexer.Token) ast.Expression {
	p.expect(lexer.LPAREN, "Expected '(' for function call")
	args := p.parseArguments(lexer.RPAREN)
	p.expect(lexer.RPAREN, "Expected ')' after arguments")

	return &ast.CallExpression{Token: callee, Callee: callee.Literal, Arguments: args}
}

// parseArguments parses a comma-separated expression list up to (but not
// consuming) the closing token.
func (p *Parser) parseArguments(closing lexer.TokenType) []ast.Expression {
	var args []ast.Expression
	for !p.check(closing) && !p.isAtEnd() {
		arg := p.parseExpression()
		if arg == nil {
			break
		}
		args = append(args, arg)
		if !p.check(closing) && !p.match(lexer.COMMA) {
			break
		}
	}
	return args
}

// parseNumber converts a numeric literal to a float64, tolerating the
// trailing f/F suffix.
func parseNumber(literal string) float64 {
	literal = strings.TrimSuffix(strings.TrimSuffix(literal, "f"), "F")
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0
	}
	return value
}
