package stdlib

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerMarkdown() {
	l.register("Markdown.toHTML", func(args []evaluator.Value) evaluator.Value {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(argString(args, 0)), &buf); err != nil {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: buf.String()}
	})
}
