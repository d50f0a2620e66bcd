package evaluator

import (
	"strings"

	"github.com/omni-lang/omni/pkg/omni/ast"
)

func (in *Interpreter) evalExpression(expr ast.Expression) Value {
	if expr == nil {
		return NULL
	}
	if line := expr.Line(); line > 0 {
		in.currentLine = line
	}

	switch expr := expr.(type) {
	case *ast.NumberLiteral:
		return NormalizeNumber(expr.Value)

	case *ast.StringLiteral:
		return &String{Value: expr.Value}

	case *ast.FStringLiteral:
		return in.evalFString(expr.Template)

	case *ast.Identifier:
		// Reserved names resolve to value literals
		switch expr.Name {
		case "true":
			return TRUE
		case "false":
			return FALSE
		case "null":
			return NULL
		}
		return in.getVar(expr.Name)

	case *ast.SelfExpression:
		return in.getVar("self")

	case *ast.InfixExpression:
		// Both operands always evaluate; && and || do not short-circuit
		left := in.evalExpression(expr.Left)
		if isError(left) {
			return left
		}
		right := in.evalExpression(expr.Right)
		if isError(right) {
			return right
		}
		return evalInfix(expr.Operator, left, right)

	case *ast.PrefixExpression:
		operand := in.evalExpression(expr.Operand)
		if isError(operand) {
			return operand
		}
		switch expr.Operator {
		case "!":
			return nativeBool(!ToBool(operand))
		case "-":
			return NormalizeNumber(-ToDouble(operand))
		}
		return operand

	case *ast.CallExpression:
		return in.evalCall(expr)

	case *ast.MethodCallExpression:
		return in.evalMethodCall(expr)

	case *ast.MemberExpression:
		obj := in.evalExpression(expr.Object)
		if isError(obj) {
			return obj
		}
		if object, ok := obj.(*Object); ok {
			if val, ok := object.Fields[expr.Member]; ok {
				return val
			}
		}
		return NULL

	case *ast.NewExpression:
		return in.newObject(expr)

	case *ast.ArrayLiteral:
		elements := make([]Value, 0, len(expr.Elements))
		for _, e := range expr.Elements {
			val := in.evalExpression(e)
			if isError(val) {
				return val
			}
			elements = append(elements, val)
		}
		return &Array{Elements: elements}

	case *ast.IndexExpression:
		return in.evalIndex(expr)

	case *ast.LambdaLiteral:
		return &Lambda{Params: expr.Params, Body: expr.Body}
	}

	return NULL
}

// evalFString substitutes each {name} placeholder with the string form of
// the named variable. Unmatched braces pass through literally.
func (in *Interpreter) evalFString(template string) Value {
	var out strings.Builder
	i := 0
	for i < len(template) {
		if template[i] == '{' {
			if end := strings.IndexByte(template[i:], '}'); end > 0 {
				name := template[i+1 : i+end]
				out.WriteString(ToString(in.getVar(name)))
				i += end + 1
				continue
			}
		}
		out.WriteByte(template[i])
		i++
	}
	return &String{Value: out.String()}
}

// evalCall resolves a bare-identifier call: the built-in registry wins, then
// user functions; anything else raises.
func (in *Interpreter) evalCall(expr *ast.CallExpression) Value {
	args, errVal := in.evalArguments(expr.Arguments)
	if errVal != nil {
		return errVal
	}

	if in.builtins.Has(expr.Callee) {
		return in.builtins.Call(expr.Callee, args)
	}

	if fn, ok := in.functions[expr.Callee]; ok {
		return in.callFunction(fn, args)
	}

	return &RuntimeError{Message: "Unknown function: " + expr.Callee, Line: in.currentLine}
}

// evalMethodCall dispatches obj.method(args). A bare-identifier receiver
// whose qualified name is registered is a static built-in call and the
// receiver is never evaluated. String receivers route through the String
// built-ins with the receiver prepended. Object receivers dispatch through
// their class tag. Everything else yields null.
func (in *Interpreter) evalMethodCall(expr *ast.MethodCallExpression) Value {
	if ident, ok := expr.Object.(*ast.Identifier); ok {
		qualified := ident.Name + "." + expr.Method
		if in.builtins.Has(qualified) {
			args, errVal := in.evalArguments(expr.Arguments)
			if errVal != nil {
				return errVal
			}
			return in.builtins.Call(qualified, args)
		}
	}

	obj := in.evalExpression(expr.Object)
	if isError(obj) {
		return obj
	}
	args, errVal := in.evalArguments(expr.Arguments)
	if errVal != nil {
		return errVal
	}

	if str, ok := obj.(*String); ok {
		qualified := "String." + expr.Method
		if in.builtins.Has(qualified) {
			return in.builtins.Call(qualified, append([]Value{str}, args...))
		}
		if expr.Method == "length" {
			return &Int{Value: int64(len(str.Value))}
		}
		return NULL
	}

	if object, ok := obj.(*Object); ok {
		className := object.ClassName()
		if cls, ok := in.classes[className]; ok {
			if method := cls.MethodNamed(expr.Method); method != nil {
				in.pushScope()
				defer in.popScope()
				in.setVar("self", object)
				return in.callFunction(method, args)
			}
		}
	}

	return NULL
}

func (in *Interpreter) evalArguments(exprs []ast.Expression) ([]Value, Value) {
	args := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		val := in.evalExpression(e)
		if isError(val) {
			return nil, val
		}
		args = append(args, val)
	}
	return args, nil
}

// evalIndex applies to arrays and strings; out-of-range access yields null,
// and indexing a string yields a one-character string.
func (in *Interpreter) evalIndex(expr *ast.IndexExpression) Value {
	left := in.evalExpression(expr.Left)
	if isError(left) {
		return left
	}
	index := in.evalExpression(expr.Index)
	if isError(index) {
		return index
	}

	i := int(ToInt(index))
	switch left := left.(type) {
	case *Array:
		if i >= 0 && i < len(left.Elements) {
			return left.Elements[i]
		}
	case *String:
		if i >= 0 && i < len(left.Value) {
			return &String{Value: left.Value[i : i+1]}
		}
	}
	return NULL
}

// newObject constructs an instance: the class tag is set, every declared
// field is initialized in declaration order, and the constructor (if any)
// runs with self bound in its scope. Mutations the constructor makes to self
// are preserved by reading self back as the final value.
func (in *Interpreter) newObject(expr *ast.NewExpression) Value {
	obj := &Object{Fields: map[string]Value{ClassKey: &String{Value: expr.ClassName}}}

	cls, ok := in.classes[expr.ClassName]
	if !ok {
		return obj
	}

	for _, field := range cls.Fields {
		var val Value = NULL
		if field.Initializer != nil {
			val = in.evalExpression(field.Initializer)
			if isError(val) {
				return val
			}
		}
		obj.Fields[field.Name] = val
	}

	if cls.Constructor == nil {
		return obj
	}

	args, errVal := in.evalArguments(expr.Arguments)
	if errVal != nil {
		return errVal
	}

	in.pushScope()
	defer in.popScope()
	in.setVar("self", obj)

	argIdx := 0
	for _, param := range cls.Constructor.Params {
		if param.Name == "self" {
			continue
		}
		if argIdx < len(args) {
			in.setVar(param.Name, args[argIdx])
			argIdx++
		}
	}

	for _, stmt := range cls.Constructor.Body {
		result := in.execStatement(stmt)
		if isError(result) {
			return result
		}
		if _, ok := result.(*ReturnSignal); ok {
			break
		}
	}

	return in.getVar("self")
}

// evalInfix implements the operator and coercion table. + concatenates when
// either side is a string; the arithmetic operators work on doubles and
// normalize integral results back to Int; division by zero yields 0.0
// rather than raising.
func evalInfix(op string, left, right Value) Value {
	if op == "+" && (left.Type() == STRING_VALUE || right.Type() == STRING_VALUE) {
		return &String{Value: ToString(left) + ToString(right)}
	}

	switch op {
	case "+":
		return NormalizeNumber(ToDouble(left) + ToDouble(right))
	case "-":
		return NormalizeNumber(ToDouble(left) - ToDouble(right))
	case "*":
		return NormalizeNumber(ToDouble(left) * ToDouble(right))
	case "/":
		if ToDouble(right) == 0 {
			return &Double{Value: 0.0}
		}
		return NormalizeNumber(ToDouble(left) / ToDouble(right))
	case "%":
		divisor := ToInt(right)
		if divisor == 0 {
			return &Int{Value: 0}
		}
		return &Int{Value: ToInt(left) % divisor}

	case "==":
		if left.Type() == STRING_VALUE && right.Type() == STRING_VALUE {
			return nativeBool(left.(*String).Value == right.(*String).Value)
		}
		return nativeBool(ToDouble(left) == ToDouble(right))
	case "!=":
		// No string case: string inequality coerces both sides to 0
		return nativeBool(ToDouble(left) != ToDouble(right))
	case "<":
		return nativeBool(ToDouble(left) < ToDouble(right))
	case ">":
		return nativeBool(ToDouble(left) > ToDouble(right))
	case "<=":
		return nativeBool(ToDouble(left) <= ToDouble(right))
	case ">=":
		return nativeBool(ToDouble(left) >= ToDouble(right))

	case "&&":
		return nativeBool(ToBool(left) && ToBool(right))
	case "||":
		return nativeBool(ToBool(left) || ToBool(right))
	}

	return NULL
}
