package stdlib

import (
	"regexp"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerRegex() {
	l.register("Regex.matches", func(args []evaluator.Value) evaluator.Value {
		// Full-string match
		re, err := regexp.Compile(`\A(?:` + argString(args, 1) + `)\z`)
		if err != nil {
			return evaluator.FALSE
		}
		return boolValue(re.MatchString(argString(args, 0)))
	})

	l.register("Regex.search", func(args []evaluator.Value) evaluator.Value {
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return evaluator.FALSE
		}
		return boolValue(re.MatchString(argString(args, 0)))
	})

	l.register("Regex.find", func(args []evaluator.Value) evaluator.Value {
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return &evaluator.Int{Value: -1}
		}
		loc := re.FindStringIndex(argString(args, 0))
		if loc == nil {
			return &evaluator.Int{Value: -1}
		}
		return &evaluator.Int{Value: int64(loc[0])}
	})

	l.register("Regex.findAll", func(args []evaluator.Value) evaluator.Value {
		result := &evaluator.Array{}
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return result
		}
		for _, m := range re.FindAllString(argString(args, 0), -1) {
			result.Elements = append(result.Elements, &evaluator.String{Value: m})
		}
		return result
	})

	l.register("Regex.replace", func(args []evaluator.Value) evaluator.Value {
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return &evaluator.String{Value: argString(args, 0)}
		}
		return &evaluator.String{Value: re.ReplaceAllString(argString(args, 0), argString(args, 2))}
	})

	l.register("Regex.split", func(args []evaluator.Value) evaluator.Value {
		result := &evaluator.Array{}
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			result.Elements = append(result.Elements, &evaluator.String{Value: argString(args, 0)})
			return result
		}
		for _, part := range re.Split(argString(args, 0), -1) {
			result.Elements = append(result.Elements, &evaluator.String{Value: part})
		}
		return result
	})

	l.register("Regex.groups", func(args []evaluator.Value) evaluator.Value {
		result := &evaluator.Array{}
		re, err := regexp.Compile(argString(args, 1))
		if err != nil {
			return result
		}
		for _, group := range re.FindStringSubmatch(argString(args, 0)) {
			result.Elements = append(result.Elements, &evaluator.String{Value: group})
		}
		return result
	})
}
