package stdlib

import (
	"os"
	"time"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerSystem() {
	l.register("System.exit", func(args []evaluator.Value) evaluator.Value {
		code := 0
		if len(args) > 0 {
			code = int(argInt(args, 0))
		}
		os.Exit(code)
		return evaluator.NULL
	})

	l.register("System.getenv", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.String{Value: os.Getenv(argString(args, 0))}
	})

	l.register("System.sleep", func(args []evaluator.Value) evaluator.Value {
		if len(args) > 0 {
			time.Sleep(time.Duration(argInt(args, 0)) * time.Millisecond)
		}
		return evaluator.NULL
	})
}
