package stdlib

import (
	"strings"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerPath() {
	l.register("Path.join", func(args []evaluator.Value) evaluator.Value {
		var out strings.Builder
		for i := range args {
			part := evaluator.ToString(args[i])
			if i > 0 && out.Len() > 0 && !strings.HasSuffix(out.String(), "/") {
				out.WriteString("/")
			}
			out.WriteString(part)
		}
		return &evaluator.String{Value: out.String()}
	})

	l.register("Path.dirname", func(args []evaluator.Value) evaluator.Value {
		path := argString(args, 0)
		idx := strings.LastIndexAny(path, "/\\")
		if idx < 0 {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: path[:idx]}
	})

	l.register("Path.basename", func(args []evaluator.Value) evaluator.Value {
		path := argString(args, 0)
		idx := strings.LastIndexAny(path, "/\\")
		if idx < 0 {
			return &evaluator.String{Value: path}
		}
		return &evaluator.String{Value: path[idx+1:]}
	})

	l.register("Path.extension", func(args []evaluator.Value) evaluator.Value {
		path := argString(args, 0)
		idx := strings.LastIndex(path, ".")
		if idx < 0 {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: path[idx:]}
	})
}
