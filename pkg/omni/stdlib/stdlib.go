// Package stdlib provides the built-in function catalog for the Omni
// interpreter. The evaluator only sees it through the Registry surface
// (Has/Call); the catalog is injected by the CLI driver, the REPL, and
// tests, which lets tests substitute their own.
//
// Built-ins never raise: failures come back as null, false, or an empty
// value, and collection operations are immutable-style, returning the
// updated container.
package stdlib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

// BuiltinFunc is a native function callable from Omni code.
type BuiltinFunc func(args []evaluator.Value) evaluator.Value

// Library is the name-keyed catalog of built-in functions. It implements
// evaluator.Registry.
type Library struct {
	out io.Writer
	in  *bufio.Reader
	fns map[string]BuiltinFunc
}

// New creates a library wired to stdout/stdin.
func New() *Library {
	return NewWithIO(os.Stdout, os.Stdin)
}

// NewWithIO creates a library with explicit console streams, used by the
// tests to capture print output.
func NewWithIO(out io.Writer, input io.Reader) *Library {
	l := &Library{
		out: out,
		in:  bufio.NewReader(input),
		fns: make(map[string]BuiltinFunc),
	}
	l.registerCore()
	l.registerMath()
	l.registerStrings()
	l.registerFile()
	l.registerCollections()
	l.registerRegex()
	l.registerDatetime()
	l.registerCSV()
	l.registerSerializer()
	l.registerSystem()
	l.registerPath()
	l.registerDatabase()
	l.registerMarkdown()
	l.registerLocale()
	return l
}

// Has reports whether a built-in with the given name exists.
func (l *Library) Has(name string) bool {
	_, ok := l.fns[name]
	return ok
}

// Call invokes a built-in by name. Unknown names yield null; the evaluator
// checks Has before calling.
func (l *Library) Call(name string, args []evaluator.Value) evaluator.Value {
	if fn, ok := l.fns[name]; ok {
		return fn(args)
	}
	return evaluator.NULL
}

// Names returns every registered built-in name, for the REPL completer.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.fns))
	for name := range l.fns {
		names = append(names, name)
	}
	return names
}

func (l *Library) register(name string, fn BuiltinFunc) {
	l.fns[name] = fn
}

// arg returns the i-th argument or null, so built-ins stay total on short
// argument lists.
func arg(args []evaluator.Value, i int) evaluator.Value {
	if i < len(args) {
		return args[i]
	}
	return evaluator.NULL
}

func argString(args []evaluator.Value, i int) string {
	if s, ok := arg(args, i).(*evaluator.String); ok {
		return s.Value
	}
	return ""
}

func argInt(args []evaluator.Value, i int) int64 {
	return evaluator.ToInt(arg(args, i))
}

func argDouble(args []evaluator.Value, i int) float64 {
	return evaluator.ToDouble(arg(args, i))
}

func (l *Library) registerCore() {
	printFn := func(args []evaluator.Value) evaluator.Value {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, evaluator.ToString(a))
		}
		fmt.Fprintln(l.out, strings.Join(parts, " "))
		return evaluator.NULL
	}
	l.register("print", printFn)
	l.register("println", printFn)

	l.register("printf", func(args []evaluator.Value) evaluator.Value {
		if len(args) == 0 {
			return evaluator.NULL
		}
		fmt.Fprint(l.out, formatPrintf(argString(args, 0), args[1:]))
		return evaluator.NULL
	})

	l.register("input", func(args []evaluator.Value) evaluator.Value {
		if len(args) > 0 {
			fmt.Fprint(l.out, evaluator.ToString(args[0]))
		}
		line, err := l.in.ReadString('\n')
		if err != nil && line == "" {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: strings.TrimRight(line, "\r\n")}
	})

	l.register("len", func(args []evaluator.Value) evaluator.Value {
		switch v := arg(args, 0).(type) {
		case *evaluator.String:
			return &evaluator.Int{Value: int64(len(v.Value))}
		case *evaluator.Array:
			return &evaluator.Int{Value: int64(len(v.Elements))}
		}
		return &evaluator.Int{Value: 0}
	})

	l.register("str", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.String{Value: evaluator.ToString(arg(args, 0))}
	})

	l.register("int", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: evaluator.ToInt(arg(args, 0))}
	})

	l.register("float", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: evaluator.ToDouble(arg(args, 0))}
	})

	l.register("typeof", func(args []evaluator.Value) evaluator.Value {
		var name string
		switch arg(args, 0).Type() {
		case evaluator.INT_VALUE:
			name = "int"
		case evaluator.DOUBLE_VALUE:
			name = "double"
		case evaluator.BOOL_VALUE:
			name = "bool"
		case evaluator.STRING_VALUE:
			name = "string"
		case evaluator.ARRAY_VALUE:
			name = "array"
		case evaluator.OBJECT_VALUE:
			name = "object"
		default:
			name = "null"
		}
		return &evaluator.String{Value: name}
	})

	l.register("range", func(args []evaluator.Value) evaluator.Value {
		var start, end, step int64 = 0, 0, 1
		switch {
		case len(args) == 1:
			end = argInt(args, 0)
		case len(args) >= 2:
			start = argInt(args, 0)
			end = argInt(args, 1)
		}
		if len(args) >= 3 {
			step = argInt(args, 2)
		}
		result := &evaluator.Array{}
		if step <= 0 {
			return result
		}
		for i := start; i < end; i += step {
			result.Elements = append(result.Elements, &evaluator.Int{Value: i})
		}
		return result
	})
}

// formatPrintf implements the printf built-in's %d/%i/%f/%s substitution;
// unknown verbs pass through literally.
func formatPrintf(format string, args []evaluator.Value) string {
	var out strings.Builder
	argIdx := 0
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			spec := format[i+1]
			if argIdx < len(args) {
				switch spec {
				case 'd', 'i':
					out.WriteString(fmt.Sprintf("%d", evaluator.ToInt(args[argIdx])))
				case 'f':
					out.WriteString(evaluator.ToString(&evaluator.Double{Value: evaluator.ToDouble(args[argIdx])}))
				case 's':
					out.WriteString(evaluator.ToString(args[argIdx]))
				default:
					out.WriteByte(format[i])
					out.WriteByte(spec)
				}
				argIdx++
			}
			i++
		} else {
			out.WriteByte(format[i])
		}
	}
	return out.String()
}
