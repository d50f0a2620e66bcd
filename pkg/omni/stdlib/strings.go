package stdlib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerStrings() {
	l.register("String.length", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(len(argString(args, 0)))}
	})

	l.register("String.toUpperCase", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.String{Value: strings.ToUpper(argString(args, 0))}
	})

	l.register("String.toLowerCase", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.String{Value: strings.ToLower(argString(args, 0))}
	})

	l.register("String.substring", func(args []evaluator.Value) evaluator.Value {
		s := argString(args, 0)
		start := clamp(int(argInt(args, 1)), 0, len(s))
		if len(args) > 2 {
			end := clamp(int(argInt(args, 2)), start, len(s))
			return &evaluator.String{Value: s[start:end]}
		}
		return &evaluator.String{Value: s[start:]}
	})

	l.register("String.indexOf", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(strings.Index(argString(args, 0), argString(args, 1)))}
	})

	l.register("String.contains", func(args []evaluator.Value) evaluator.Value {
		return boolValue(strings.Contains(argString(args, 0), argString(args, 1)))
	})

	l.register("String.startsWith", func(args []evaluator.Value) evaluator.Value {
		return boolValue(strings.HasPrefix(argString(args, 0), argString(args, 1)))
	})

	l.register("String.endsWith", func(args []evaluator.Value) evaluator.Value {
		return boolValue(strings.HasSuffix(argString(args, 0), argString(args, 1)))
	})

	l.register("String.replace", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.String{Value: strings.ReplaceAll(argString(args, 0), argString(args, 1), argString(args, 2))}
	})

	l.register("String.trim", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.String{Value: strings.Trim(argString(args, 0), " \t\n\r")}
	})

	l.register("String.split", func(args []evaluator.Value) evaluator.Value {
		delim := " "
		if len(args) > 1 {
			delim = argString(args, 1)
		}
		parts := strings.Split(argString(args, 0), delim)
		result := &evaluator.Array{Elements: make([]evaluator.Value, 0, len(parts))}
		for _, part := range parts {
			result.Elements = append(result.Elements, &evaluator.String{Value: part})
		}
		return result
	})

	l.register("String.charAt", func(args []evaluator.Value) evaluator.Value {
		s := argString(args, 0)
		idx := int(argInt(args, 1))
		if idx >= 0 && idx < len(s) {
			return &evaluator.String{Value: s[idx : idx+1]}
		}
		return &evaluator.String{Value: ""}
	})

	l.register("String.isEmpty", func(args []evaluator.Value) evaluator.Value {
		return boolValue(argString(args, 0) == "")
	})

	l.register("String.equals", func(args []evaluator.Value) evaluator.Value {
		return boolValue(argString(args, 0) == argString(args, 1))
	})

	l.register("String.equalsIgnoreCase", func(args []evaluator.Value) evaluator.Value {
		return boolValue(strings.EqualFold(argString(args, 0), argString(args, 1)))
	})

	l.register("String.format", func(args []evaluator.Value) evaluator.Value {
		if len(args) == 0 {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: formatJavaStyle(argString(args, 0), args[1:])}
	})

	l.register("Integer.parseInt", func(args []evaluator.Value) evaluator.Value {
		n, err := strconv.ParseInt(strings.TrimSpace(argString(args, 0)), 10, 64)
		if err != nil {
			return &evaluator.Int{Value: 0}
		}
		return &evaluator.Int{Value: n}
	})

	l.register("Double.parseDouble", func(args []evaluator.Value) evaluator.Value {
		d, err := strconv.ParseFloat(strings.TrimSpace(argString(args, 0)), 64)
		if err != nil {
			return &evaluator.Double{Value: 0}
		}
		return &evaluator.Double{Value: d}
	})
}

func boolValue(b bool) evaluator.Value {
	if b {
		return evaluator.TRUE
	}
	return evaluator.FALSE
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatJavaStyle implements String.format's %[-][width][.precision]{s,d,f}
// conversions plus %n for a newline.
func formatJavaStyle(format string, args []evaluator.Value) string {
	var out strings.Builder
	argIdx := 0

	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			out.WriteByte(format[i])
			continue
		}
		if format[i+1] == 'n' {
			out.WriteByte('\n')
			i++
			continue
		}
		if argIdx >= len(args) {
			out.WriteByte(format[i])
			continue
		}

		start := i
		i++ // skip %

		leftAlign := false
		if format[i] == '-' {
			leftAlign = true
			i++
		}

		width := 0
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}

		precision := -1
		if i < len(format) && format[i] == '.' {
			i++
			precision = 0
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				precision = precision*10 + int(format[i]-'0')
				i++
			}
		}

		if i >= len(format) {
			out.WriteString(format[start:])
			break
		}

		var valStr string
		switch format[i] {
		case 's':
			valStr = evaluator.ToString(args[argIdx])
		case 'd':
			valStr = strconv.FormatInt(evaluator.ToInt(args[argIdx]), 10)
		case 'f':
			if precision >= 0 {
				valStr = strconv.FormatFloat(evaluator.ToDouble(args[argIdx]), 'f', precision, 64)
			} else {
				valStr = fmt.Sprintf("%g", evaluator.ToDouble(args[argIdx]))
			}
		case 'n':
			out.WriteByte('\n')
			continue
		default:
			out.WriteString(format[start : i+1])
			argIdx++
			continue
		}

		if width > 0 && len(valStr) < width {
			pad := strings.Repeat(" ", width-len(valStr))
			if leftAlign {
				valStr += pad
			} else {
				valStr = pad + valStr
			}
		}

		out.WriteString(valStr)
		argIdx++
	}

	return out.String()
}
