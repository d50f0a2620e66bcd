package stdlib

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerCSV() {
	// CSV.parse(content, delim?) splits rows without trimming cells.
	l.register("CSV.parse", func(args []evaluator.Value) evaluator.Value {
		content := argString(args, 0)
		delim := ","
		if len(args) > 1 {
			delim = argString(args, 1)
		}

		result := &evaluator.Array{}
		for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
			line = strings.TrimRight(line, "\r")
			row := &evaluator.Array{}
			for _, cell := range strings.Split(line, delim) {
				row.Elements = append(row.Elements, &evaluator.String{Value: cell})
			}
			result.Elements = append(result.Elements, row)
		}
		return result
	})

	// CSV.readFile(path, delim?) reads a file with whitespace-trimmed cells.
	l.register("CSV.readFile", func(args []evaluator.Value) evaluator.Value {
		result := &evaluator.Array{}

		f, err := os.Open(argString(args, 0))
		if err != nil {
			return result
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.TrimLeadingSpace = true
		reader.FieldsPerRecord = -1
		if len(args) > 1 && argString(args, 1) != "" {
			reader.Comma = rune(argString(args, 1)[0])
		}

		records, err := reader.ReadAll()
		if err != nil {
			return result
		}
		for _, record := range records {
			row := &evaluator.Array{}
			for _, cell := range record {
				row.Elements = append(row.Elements, &evaluator.String{Value: strings.TrimSpace(cell)})
			}
			result.Elements = append(result.Elements, row)
		}
		return result
	})
}
