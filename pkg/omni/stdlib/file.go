package stdlib

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/ledongthuc/pdf"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerFile() {
	l.register("File.read", func(args []evaluator.Value) evaluator.Value {
		data, err := os.ReadFile(argString(args, 0))
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: string(data)}
	})

	l.register("File.write", func(args []evaluator.Value) evaluator.Value {
		err := os.WriteFile(argString(args, 0), []byte(argString(args, 1)), 0644)
		return boolValue(err == nil)
	})

	l.register("File.append", func(args []evaluator.Value) evaluator.Value {
		f, err := os.OpenFile(argString(args, 0), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return evaluator.FALSE
		}
		defer f.Close()
		_, err = f.WriteString(argString(args, 1))
		return boolValue(err == nil)
	})

	l.register("File.exists", func(args []evaluator.Value) evaluator.Value {
		_, err := os.Stat(argString(args, 0))
		return boolValue(err == nil)
	})

	l.register("File.readGzip", func(args []evaluator.Value) evaluator.Value {
		f, err := os.Open(argString(args, 0))
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		defer f.Close()
		zr, err := gzip.NewReader(f)
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: string(data)}
	})

	l.register("File.writeGzip", func(args []evaluator.Value) evaluator.Value {
		f, err := os.Create(argString(args, 0))
		if err != nil {
			return evaluator.FALSE
		}
		defer f.Close()
		zw := gzip.NewWriter(f)
		if _, err := zw.Write([]byte(argString(args, 1))); err != nil {
			zw.Close()
			return evaluator.FALSE
		}
		return boolValue(zw.Close() == nil)
	})

	l.register("PDF.text", func(args []evaluator.Value) evaluator.Value {
		f, reader, err := pdf.Open(argString(args, 0))
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		defer f.Close()
		content, err := reader.GetPlainText()
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(content); err != nil {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: buf.String()}
	})
}
