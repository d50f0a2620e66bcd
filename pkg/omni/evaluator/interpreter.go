// Package evaluator walks the Omni AST and executes it over a tagged value
// universe with a scope stack, user-defined classes, and non-local control
// transfer for return/break/continue/throw.
package evaluator

import (
	"os"
	"strings"

	"github.com/omni-lang/omni/pkg/omni/ast"
	omnierrors "github.com/omni-lang/omni/pkg/omni/errors"
	"github.com/omni-lang/omni/pkg/omni/lexer"
	"github.com/omni-lang/omni/pkg/omni/parser"
)

// Registry is the built-in library surface the evaluator calls through for
// every name not resolved as a user function, including dotted names like
// Math.sqrt and File.read. The catalog itself is an injected collaborator.
type Registry interface {
	Has(name string) bool
	Call(name string, args []Value) Value
}

// Interpreter holds the process-wide state of one program run: the class and
// function tables, the scope stack, the import set, and ownership of every
// imported AST.
type Interpreter struct {
	builtins Registry

	functions  map[string]*ast.Function
	classes    map[string]*ast.Class
	interfaces map[string]*ast.Interface

	imported map[string]bool
	owned    []*ast.Program

	globals map[string]Value
	scopes  []map[string]Value

	currentLine int
}

// New creates an interpreter with the given built-in registry.
func New(builtins Registry) *Interpreter {
	return &Interpreter{
		builtins:   builtins,
		functions:  make(map[string]*ast.Function),
		classes:    make(map[string]*ast.Class),
		interfaces: make(map[string]*ast.Interface),
		imported:   make(map[string]bool),
		globals:    make(map[string]Value),
	}
}

// Run executes a program: imports are processed first, every class and
// top-level function is registered, and main() is invoked with no arguments.
func (in *Interpreter) Run(program *ast.Program) *omnierrors.OmniError {
	if err := in.Register(program); err != nil {
		return err
	}

	mainFn, ok := in.functions["main"]
	if !ok {
		return omnierrors.New(omnierrors.ClassRuntime, "No main() function found", 0)
	}

	result := in.callFunction(mainFn, nil)
	switch sig := result.(type) {
	case *RuntimeError:
		return omnierrors.New(omnierrors.ClassRuntime, sig.Message, sig.Line)
	case *BreakSignal, *ContinueSignal, *ReturnSignal:
		return omnierrors.New(omnierrors.ErrorClass("internal"), "control transfer escaped program", in.currentLine)
	}
	return nil
}

// Register processes a program's imports and merges its declarations into
// the interpreter's tables without invoking main. The REPL uses this to
// accumulate definitions across inputs.
func (in *Interpreter) Register(program *ast.Program) *omnierrors.OmniError {
	for _, imp := range program.Imports {
		if err := in.processImport(imp.Module); err != nil {
			return err
		}
	}

	for _, cls := range program.Classes {
		in.classes[cls.Name] = cls
	}
	for _, iface := range program.Interfaces {
		in.interfaces[iface.Name] = iface
	}
	for _, fn := range program.Functions {
		in.functions[fn.Name] = fn
	}
	return nil
}

// CallByName invokes a registered function with the given arguments. The
// result is the function's value, or a RuntimeError value when it raised.
func (in *Interpreter) CallByName(name string, args []Value) Value {
	fn, ok := in.functions[name]
	if !ok {
		return &RuntimeError{Message: "Unknown function: " + name, Line: in.currentLine}
	}
	return in.callFunction(fn, args)
}

// processImport loads a module at most once: the named file is read, lexed,
// and parsed, and its non-main functions and classes are merged into the
// interpreter's tables. The imported AST stays owned for the interpreter's
// lifetime so lambda bodies stay valid.
func (in *Interpreter) processImport(module string) *omnierrors.OmniError {
	if in.imported[module] {
		return nil
	}
	in.imported[module] = true

	source, err := os.ReadFile(module)
	if err != nil && !strings.Contains(module, ".") {
		source, err = os.ReadFile(module + ".omni")
	}
	if err != nil {
		return omnierrors.New(omnierrors.ClassImport, "Cannot import: "+module, in.currentLine)
	}

	l := lexer.NewWithFilename(string(source), module)
	p := parser.New(l.Tokenize())
	imported := p.ParseProgram()

	for _, fn := range imported.Functions {
		if fn.Name != "main" {
			in.functions[fn.Name] = fn
		}
	}
	for _, cls := range imported.Classes {
		in.classes[cls.Name] = cls
	}
	in.owned = append(in.owned, imported)

	return nil
}

//
// Scope handling
//

func (in *Interpreter) pushScope() {
	in.scopes = append(in.scopes, make(map[string]Value))
}

func (in *Interpreter) popScope() {
	if len(in.scopes) > 0 {
		in.scopes = in.scopes[:len(in.scopes)-1]
	}
}

// getVar resolves a name from the innermost scope outward, then globals.
// The stored value is deep-copied: every read hands out an independent
// value, which is what gives the language its pass-by-value semantics.
func (in *Interpreter) getVar(name string) Value {
	for i := len(in.scopes) - 1; i >= 0; i-- {
		if val, ok := in.scopes[i][name]; ok {
			return Copy(val)
		}
	}
	if val, ok := in.globals[name]; ok {
		return Copy(val)
	}
	return NULL
}

// binding returns the stored value for a name without copying, for in-place
// mutation by member/index assignment.
func (in *Interpreter) binding(name string) (Value, bool) {
	for i := len(in.scopes) - 1; i >= 0; i-- {
		if val, ok := in.scopes[i][name]; ok {
			return val, true
		}
	}
	val, ok := in.globals[name]
	return val, ok
}

// setVar updates the closest enclosing frame that already binds the name;
// otherwise it binds in the innermost frame, or in globals when the scope
// stack is empty.
func (in *Interpreter) setVar(name string, val Value) {
	val = Copy(val)
	for i := len(in.scopes) - 1; i >= 0; i-- {
		if _, ok := in.scopes[i][name]; ok {
			in.scopes[i][name] = val
			return
		}
	}
	if _, ok := in.globals[name]; ok {
		in.globals[name] = val
		return
	}
	if len(in.scopes) > 0 {
		in.scopes[len(in.scopes)-1][name] = val
	} else {
		in.globals[name] = val
	}
}

//
// Function execution
//

// callFunction runs a function body in a fresh scope, binding arguments
// positionally. self parameters are skipped: method dispatch binds self in
// the frame outside the call. A function without an explicit return yields
// its last statement's value.
func (in *Interpreter) callFunction(fn *ast.Function, args []Value) Value {
	in.pushScope()
	defer in.popScope()

	argIdx := 0
	for _, param := range fn.Params {
		if param.Name == "self" {
			continue
		}
		if argIdx < len(args) {
			in.setVar(param.Name, args[argIdx])
		}
		argIdx++
	}

	var result Value = NULL
	for _, stmt := range fn.Body {
		result = in.execStatement(stmt)
		if sig, ok := result.(*ReturnSignal); ok {
			return sig.Value
		}
		if isSignal(result) {
			return result
		}
	}
	return result
}

//
// Statement execution
//

func (in *Interpreter) execStatement(stmt ast.Statement) Value {
	if stmt == nil {
		return NULL
	}
	if line := stmt.Line(); line > 0 {
		in.currentLine = line
	}

	switch stmt := stmt.(type) {
	case *ast.ExpressionStatement:
		return in.evalExpression(stmt.Expression)

	case *ast.VarStatement:
		var val Value = NULL
		if stmt.Value != nil {
			val = in.evalExpression(stmt.Value)
			if isError(val) {
				return val
			}
		}
		in.setVar(stmt.Name, val)
		return val

	case *ast.IndexAssignmentStatement:
		return in.execIndexAssignment(stmt)

	case *ast.ReturnStatement:
		var val Value = NULL
		if stmt.Value != nil {
			val = in.evalExpression(stmt.Value)
			if isError(val) {
				return val
			}
		}
		return &ReturnSignal{Value: val}

	case *ast.IfStatement:
		cond := in.evalExpression(stmt.Condition)
		if isError(cond) {
			return cond
		}
		if ToBool(cond) {
			return in.execBlock(stmt.Consequence)
		}
		if len(stmt.Alternative) > 0 {
			return in.execBlock(stmt.Alternative)
		}
		return NULL

	case *ast.WhileStatement:
		for {
			cond := in.evalExpression(stmt.Condition)
			if isError(cond) {
				return cond
			}
			if !ToBool(cond) {
				return NULL
			}
			result := in.execBlock(stmt.Body)
			switch result.(type) {
			case *BreakSignal:
				return NULL
			case *ContinueSignal:
				continue
			}
			if isSignal(result) {
				return result
			}
		}

	case *ast.ForStatement:
		return in.execFor(stmt)

	case *ast.TryStatement:
		return in.execTry(stmt)

	case *ast.ThrowStatement:
		val := in.evalExpression(stmt.Value)
		if isError(val) {
			return val
		}
		return &RuntimeError{Message: ToString(val), Line: in.currentLine}

	case *ast.BreakStatement:
		return &BreakSignal{}

	case *ast.ContinueStatement:
		return &ContinueSignal{}
	}

	return NULL
}

// execBlock runs a statement list in a fresh scope and propagates any
// control-transfer signal.
func (in *Interpreter) execBlock(body []ast.Statement) Value {
	in.pushScope()
	defer in.popScope()

	for _, stmt := range body {
		result := in.execStatement(stmt)
		if isSignal(result) {
			return result
		}
	}
	return NULL
}

// execFor iterates an Array iterable, binding the loop variable in a fresh
// per-iteration scope. Non-array iterables produce no iterations and no
// error.
func (in *Interpreter) execFor(stmt *ast.ForStatement) Value {
	iterable := in.evalExpression(stmt.Iterable)
	if isError(iterable) {
		return iterable
	}

	arr, ok := iterable.(*Array)
	if !ok {
		return NULL
	}

	for _, item := range arr.Elements {
		result := in.execLoopBody(stmt, item)
		switch result.(type) {
		case *BreakSignal:
			return NULL
		case *ContinueSignal:
			continue
		}
		if isSignal(result) {
			return result
		}
	}
	return NULL
}

func (in *Interpreter) execLoopBody(stmt *ast.ForStatement, item Value) Value {
	in.pushScope()
	defer in.popScope()

	in.setVar(stmt.VarName, item)
	for _, s := range stmt.Body {
		result := in.execStatement(s)
		if isSignal(result) {
			return result
		}
	}
	return NULL
}

// execTry runs the try body in its own scope. On a raise, the try scope is
// discarded, a fresh scope binds the exception message (a String) to the
// catch variable, and the catch body runs. The finally body always runs in
// its own scope, on every exit path; a signal raised there replaces any
// pending one.
func (in *Interpreter) execTry(stmt *ast.TryStatement) Value {
	pending := in.execBlock(stmt.TryBody)

	if raised, ok := pending.(*RuntimeError); ok {
		pending = in.execCatch(stmt, raised)
	}

	if len(stmt.FinallyBody) > 0 {
		if result := in.execBlock(stmt.FinallyBody); isSignal(result) {
			return result
		}
	}

	if isSignal(pending) {
		return pending
	}
	return NULL
}

func (in *Interpreter) execCatch(stmt *ast.TryStatement, raised *RuntimeError) Value {
	in.pushScope()
	defer in.popScope()

	in.setVar(stmt.CatchVar, &String{Value: raised.Message})
	for _, s := range stmt.CatchBody {
		result := in.execStatement(s)
		if isSignal(result) {
			return result
		}
	}
	return NULL
}

// execIndexAssignment mutates a member or index target rooted at a variable
// or self: the root binding's stored value is navigated in place and the
// leaf slot updated. Missing roots and non-container hops are silent no-ops,
// matching the language's null-propagation style.
func (in *Interpreter) execIndexAssignment(stmt *ast.IndexAssignmentStatement) Value {
	val := in.evalExpression(stmt.Value)
	if isError(val) {
		return val
	}

	// Unwind the access path down to its root variable
	type access struct {
		member string
		index  Value // nil for member accesses
	}
	var path []access
	target := stmt.Target
	for {
		switch t := target.(type) {
		case *ast.MemberExpression:
			path = append([]access{{member: t.Member}}, path...)
			target = t.Object
			continue
		case *ast.IndexExpression:
			idx := in.evalExpression(t.Index)
			if isError(idx) {
				return idx
			}
			path = append([]access{{index: idx}}, path...)
			target = t.Left
			continue
		}
		break
	}

	var rootName string
	switch root := target.(type) {
	case *ast.Identifier:
		rootName = root.Name
	case *ast.SelfExpression:
		rootName = "self"
	default:
		return NULL
	}

	current, ok := in.binding(rootName)
	if !ok {
		return NULL
	}

	for i, step := range path {
		last := i == len(path)-1
		if step.index == nil {
			obj, ok := current.(*Object)
			if !ok {
				return NULL
			}
			if last {
				obj.Fields[step.member] = Copy(val)
				return NULL
			}
			next, ok := obj.Fields[step.member]
			if !ok {
				return NULL
			}
			current = next
		} else {
			arr, ok := current.(*Array)
			if !ok {
				return NULL
			}
			idx := int(ToInt(step.index))
			if idx < 0 || idx >= len(arr.Elements) {
				return NULL
			}
			if last {
				arr.Elements[idx] = Copy(val)
				return NULL
			}
			current = arr.Elements[idx]
		}
	}
	return NULL
}
