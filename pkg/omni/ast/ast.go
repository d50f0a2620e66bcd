// Package ast defines the abstract syntax tree produced by the Omni parser.
package ast

import (
	"bytes"
	"strings"

	"github.com/omni-lang/omni/pkg/omni/lexer"
)

// Node represents any node in the AST
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents statement nodes
type Statement interface {
	Node
	statementNode()
	Line() int
}

// Expression represents expression nodes
type Expression interface {
	Node
	expressionNode()
	Line() int
}

// TypeInfo is a parsed type annotation. Annotations are retained for tooling
// but the evaluator treats them as opaque.
type TypeInfo struct {
	Name         string // "int", "String", "Person", "auto", "self"
	IsArray      bool   // int[]
	GenericParam string // List<int> -> "int"
}

func (t TypeInfo) String() string {
	out := t.Name
	if t.IsArray {
		out += "[]"
	}
	if t.GenericParam != "" {
		out += "<" + t.GenericParam + ">"
	}
	return out
}

// AccessModifier is an access level on a field or method. Parsed but not
// enforced at evaluation.
type AccessModifier int

const (
	Public AccessModifier = iota
	Private
	Protected
)

func (a AccessModifier) String() string {
	switch a {
	case Private:
		return "private"
	case Protected:
		return "protected"
	default:
		return "public"
	}
}

// Parameter is a single function argument: a name and its annotation.
type Parameter struct {
	Name string
	Type TypeInfo
}

// FieldDecl is a field declaration inside a class body.
type FieldDecl struct {
	Access      AccessModifier
	Type        TypeInfo
	Name        string
	Initializer Expression // may be nil
}

// Program is the root of the AST. It owns every top-level declaration in
// source order.
type Program struct {
	Imports    []*Import
	Classes    []*Class
	Interfaces []*Interface
	Functions  []*Function
}

func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, imp := range p.Imports {
		out.WriteString(imp.String())
		out.WriteString("\n")
	}
	for _, cls := range p.Classes {
		out.WriteString(cls.String())
		out.WriteString("\n")
	}
	for _, fn := range p.Functions {
		out.WriteString(fn.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Import represents 'import utils'
type Import struct {
	Token  lexer.Token // the 'import' token
	Module string
}

func (i *Import) TokenLiteral() string { return i.Token.Literal }
func (i *Import) String() string       { return "import " + i.Module }

// Function represents a top-level function, a method, or a constructor.
// A first parameter named self (or this, normalized to self) marks it as a
// method.
type Function struct {
	Token      lexer.Token // the 'def' token or the return type token
	Access     AccessModifier
	IsStatic   bool
	Name       string
	Params     []Parameter
	ReturnType TypeInfo
	Body       []Statement
}

func (f *Function) TokenLiteral() string { return f.Token.Literal }
func (f *Function) String() string {
	var out bytes.Buffer
	out.WriteString("def " + f.Name + "(")
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		if p.Type.Name == "self" {
			params = append(params, p.Name)
		} else {
			params = append(params, p.Name+": "+p.Type.String())
		}
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") -> " + f.ReturnType.Name + ":")
	return out.String()
}

// IsMethod reports whether the function's first parameter is self.
func (f *Function) IsMethod() bool {
	return len(f.Params) > 0 && f.Params[0].Name == "self"
}

// Class represents a class declaration with fields, methods, and an optional
// __init__ constructor.
type Class struct {
	Token       lexer.Token // the 'class' token
	Name        string
	Parent      string // empty when the class has no superclass
	Interfaces  []string
	Fields      []FieldDecl
	Methods     []*Function
	Constructor *Function // nil when the class has no __init__
}

func (c *Class) TokenLiteral() string { return c.Token.Literal }
func (c *Class) String() string {
	var out bytes.Buffer
	out.WriteString("class " + c.Name)
	if c.Parent != "" {
		out.WriteString(" extends " + c.Parent)
	}
	if len(c.Interfaces) > 0 {
		out.WriteString(" implements " + strings.Join(c.Interfaces, ", "))
	}
	out.WriteString(":")
	return out.String()
}

// MethodNamed returns the method with the given name, or nil.
func (c *Class) MethodNamed(name string) *Function {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Interface represents an interface declaration: a name and its abstract
// method signatures.
type Interface struct {
	Token   lexer.Token // the 'interface' token
	Name    string
	Methods []*Function
}

func (i *Interface) TokenLiteral() string { return i.Token.Literal }
func (i *Interface) String() string       { return "interface " + i.Name + ":" }

//
// Statements
//

// ExpressionStatement wraps an expression used in statement position
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) Line() int            { return es.Token.Line }
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// VarStatement represents a variable declaration or a bare-name assignment,
// which the parser rewrites into a declaration with an inferred type.
type VarStatement struct {
	Token lexer.Token // the name token
	Name  string
	Type  TypeInfo
	Value Expression // may be nil
}

func (vs *VarStatement) statementNode()       {}
func (vs *VarStatement) Line() int            { return vs.Token.Line }
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) String() string {
	var out bytes.Buffer
	out.WriteString(vs.Name)
	out.WriteString(" = ")
	if vs.Value != nil {
		out.WriteString(vs.Value.String())
	}
	return out.String()
}

// IndexAssignmentStatement represents assignment to member or index targets
// like 'self.x = v', 'o.f = v', or 'a[i] = v'. The target path must be
// rooted at a variable or self.
type IndexAssignmentStatement struct {
	Token  lexer.Token // the '=' token
	Target Expression  // MemberExpression or IndexExpression
	Value  Expression
}

func (ias *IndexAssignmentStatement) statementNode()       {}
func (ias *IndexAssignmentStatement) Line() int            { return ias.Token.Line }
func (ias *IndexAssignmentStatement) TokenLiteral() string { return ias.Token.Literal }
func (ias *IndexAssignmentStatement) String() string {
	return ias.Target.String() + " = " + ias.Value.String()
}

// ReturnStatement represents 'return expr' or a bare 'return'
type ReturnStatement struct {
	Token lexer.Token // the 'return' token
	Value Expression  // may be nil
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) Line() int            { return rs.Token.Line }
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String()
	}
	return "return"
}

// IfStatement represents an if statement. elif chains are parsed as a nested
// IfStatement forming the sole statement of the preceding Alternative.
type IfStatement struct {
	Token       lexer.Token // the 'if' token
	Condition   Expression
	Consequence []Statement
	Alternative []Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) Line() int            { return is.Token.Line }
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	out := "if " + is.Condition.String() + ": ..."
	if len(is.Alternative) > 0 {
		out += " else: ..."
	}
	return out
}

// WhileStatement represents a while loop
type WhileStatement struct {
	Token     lexer.Token // the 'while' token
	Condition Expression
	Body      []Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) Line() int            { return ws.Token.Line }
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string       { return "while " + ws.Condition.String() + ": ..." }

// ForStatement represents 'for name in iterable:'
type ForStatement struct {
	Token    lexer.Token // the 'for' token
	VarName  string
	Iterable Expression
	Body     []Statement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) Line() int            { return fs.Token.Line }
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	return "for " + fs.VarName + " in " + fs.Iterable.String() + ": ..."
}

// TryStatement represents try/catch with an optional finally block
type TryStatement struct {
	Token       lexer.Token // the 'try' token
	TryBody     []Statement
	CatchVar    string // e.g. "e" in 'catch Exception as e'
	CatchType   string // e.g. "Exception"
	CatchBody   []Statement
	FinallyBody []Statement // empty when no finally block
}

func (ts *TryStatement) statementNode()       {}
func (ts *TryStatement) Line() int            { return ts.Token.Line }
func (ts *TryStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *TryStatement) String() string {
	out := "try: ... catch " + ts.CatchType + " as " + ts.CatchVar + ": ..."
	if len(ts.FinallyBody) > 0 {
		out += " finally: ..."
	}
	return out
}

// ThrowStatement represents 'throw expr'
type ThrowStatement struct {
	Token lexer.Token // the 'throw' token
	Value Expression
}

func (ts *ThrowStatement) statementNode()       {}
func (ts *ThrowStatement) Line() int            { return ts.Token.Line }
func (ts *ThrowStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *ThrowStatement) String() string       { return "throw " + ts.Value.String() }

// BreakStatement represents 'break'
type BreakStatement struct {
	Token lexer.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) Line() int            { return bs.Token.Line }
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string       { return "break" }

// ContinueStatement represents 'continue'
type ContinueStatement struct {
	Token lexer.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) Line() int            { return cs.Token.Line }
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) String() string       { return "continue" }

//
// Expressions
//

// NumberLiteral holds a numeric literal. The evaluator gives it an integer
// tag when the value is exactly representable as a signed 64-bit integer.
type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) Line() int            { return nl.Token.Line }
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }

// StringLiteral holds a plain string literal
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) Line() int            { return sl.Token.Line }
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }

// FStringLiteral holds the raw template of an interpolated string; {name}
// placeholders are resolved at evaluation time.
type FStringLiteral struct {
	Token    lexer.Token
	Template string
}

func (fl *FStringLiteral) expressionNode()      {}
func (fl *FStringLiteral) Line() int            { return fl.Token.Line }
func (fl *FStringLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FStringLiteral) String() string       { return "f\"" + fl.Template + "\"" }

// Identifier is a variable reference. true, false, and null reach the
// evaluator as identifiers and resolve to literal values there.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (id *Identifier) expressionNode()      {}
func (id *Identifier) Line() int            { return id.Token.Line }
func (id *Identifier) TokenLiteral() string { return id.Token.Literal }
func (id *Identifier) String() string       { return id.Name }

// SelfExpression resolves to the binding named self in the nearest
// enclosing scope.
type SelfExpression struct {
	Token lexer.Token
}

func (se *SelfExpression) expressionNode()      {}
func (se *SelfExpression) Line() int            { return se.Token.Line }
func (se *SelfExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SelfExpression) String() string       { return "self" }

// PrefixExpression represents '!x' or '-x'
type PrefixExpression struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) Line() int            { return pe.Token.Line }
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Operand.String() + ")"
}

// InfixExpression represents a binary operation; the operator is kept as its
// literal text.
type InfixExpression struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) Line() int            { return ie.Token.Line }
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// CallExpression is a call to a bare identifier: print("hi"), add(1, 2).
// The callee is resolved against the built-in registry first, then user
// functions.
type CallExpression struct {
	Token     lexer.Token // the callee token
	Callee    string
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) Line() int            { return ce.Token.Line }
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Callee + "(" + strings.Join(args, ", ") + ")"
}

// MethodCallExpression is obj.method(args). When the receiver is a bare
// identifier and 'receiver.method' exists in the built-in registry, the
// evaluator treats it as a qualified built-in call.
type MethodCallExpression struct {
	Token     lexer.Token // the method name token
	Object    Expression
	Method    string
	Arguments []Expression
}

func (mc *MethodCallExpression) expressionNode()      {}
func (mc *MethodCallExpression) Line() int            { return mc.Token.Line }
func (mc *MethodCallExpression) TokenLiteral() string { return mc.Token.Literal }
func (mc *MethodCallExpression) String() string {
	args := make([]string, 0, len(mc.Arguments))
	for _, a := range mc.Arguments {
		args = append(args, a.String())
	}
	return mc.Object.String() + "." + mc.Method + "(" + strings.Join(args, ", ") + ")"
}

// MemberExpression is obj.field
type MemberExpression struct {
	Token  lexer.Token // the member name token
	Object Expression
	Member string
}

func (me *MemberExpression) expressionNode()      {}
func (me *MemberExpression) Line() int            { return me.Token.Line }
func (me *MemberExpression) TokenLiteral() string { return me.Token.Literal }
func (me *MemberExpression) String() string       { return me.Object.String() + "." + me.Member }

// NewExpression constructs an object: new Person("John", 30)
type NewExpression struct {
	Token     lexer.Token // the 'new' token
	ClassName string
	Arguments []Expression
}

func (ne *NewExpression) expressionNode()      {}
func (ne *NewExpression) Line() int            { return ne.Token.Line }
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewExpression) String() string {
	args := make([]string, 0, len(ne.Arguments))
	for _, a := range ne.Arguments {
		args = append(args, a.String())
	}
	return "new " + ne.ClassName + "(" + strings.Join(args, ", ") + ")"
}

// ArrayLiteral is [1, 2, 3]
type ArrayLiteral struct {
	Token    lexer.Token // the '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) Line() int            { return al.Token.Line }
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	elems := make([]string, 0, len(al.Elements))
	for _, e := range al.Elements {
		elems = append(elems, e.String())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// IndexExpression applies to arrays and strings: arr[0], s[1]
type IndexExpression struct {
	Token lexer.Token // the '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) Line() int            { return ie.Token.Line }
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	return ie.Left.String() + "[" + ie.Index.String() + "]"
}

// LambdaLiteral is a single-expression lambda: x -> x * 2
type LambdaLiteral struct {
	Token  lexer.Token // the parameter token
	Params []string
	Body   Expression
}

func (ll *LambdaLiteral) expressionNode()      {}
func (ll *LambdaLiteral) Line() int            { return ll.Token.Line }
func (ll *LambdaLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *LambdaLiteral) String() string {
	return strings.Join(ll.Params, ", ") + " -> " + ll.Body.String()
}
