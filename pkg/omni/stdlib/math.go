package stdlib

import (
	"math"
	"math/rand"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerMath() {
	unary := func(fn func(float64) float64) BuiltinFunc {
		return func(args []evaluator.Value) evaluator.Value {
			return &evaluator.Double{Value: fn(argDouble(args, 0))}
		}
	}

	l.register("Math.sqrt", unary(math.Sqrt))
	l.register("Math.sin", unary(math.Sin))
	l.register("Math.cos", unary(math.Cos))
	l.register("Math.tan", unary(math.Tan))
	l.register("Math.log", unary(math.Log))
	l.register("Math.log10", unary(math.Log10))
	l.register("Math.exp", unary(math.Exp))

	l.register("Math.pow", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: math.Pow(argDouble(args, 0), argDouble(args, 1))}
	})

	l.register("Math.abs", func(args []evaluator.Value) evaluator.Value {
		if n, ok := arg(args, 0).(*evaluator.Int); ok {
			if n.Value < 0 {
				return &evaluator.Int{Value: -n.Value}
			}
			return &evaluator.Int{Value: n.Value}
		}
		return &evaluator.Double{Value: math.Abs(argDouble(args, 0))}
	})

	l.register("Math.max", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: math.Max(argDouble(args, 0), argDouble(args, 1))}
	})

	l.register("Math.min", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: math.Min(argDouble(args, 0), argDouble(args, 1))}
	})

	l.register("Math.floor", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(math.Floor(argDouble(args, 0)))}
	})

	l.register("Math.ceil", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(math.Ceil(argDouble(args, 0)))}
	})

	l.register("Math.round", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Int{Value: int64(math.Round(argDouble(args, 0)))}
	})

	l.register("Math.random", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: rand.Float64()}
	})

	l.register("Math.PI", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: math.Pi}
	})

	l.register("Math.E", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Double{Value: math.E}
	})
}
