// Package repl implements the interactive Omni shell with line editing,
// history, and tab completion.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
	"github.com/omni-lang/omni/pkg/omni/lexer"
	"github.com/omni-lang/omni/pkg/omni/parser"
	"github.com/omni-lang/omni/pkg/omni/stdlib"
)

const PROMPT = ">> "
const CONTINUATION_PROMPT = ".. "

// Keywords offered by tab completion, alongside the built-in catalog
var keywordCompletions = []string{
	"def", "return", "if", "elif", "else", "while", "for", "var", "import",
	"try", "catch", "finally", "throw", "break", "continue", "in", "as",
	"class", "interface", "extends", "implements", "new",
	"public", "private", "protected", "static", "self",
	"true", "false", "null",
}

// Start runs the REPL until EOF or an exit command.
func Start(out io.Writer, version string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	lib := stdlib.New()
	completions := append([]string{}, keywordCompletions...)
	completions = append(completions, lib.Names()...)
	sort.Strings(completions)

	line.SetCompleter(func(input string) []string {
		return filterCompletions(completions, input)
	})

	historyFile := filepath.Join(os.TempDir(), ".omni_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	interp := evaluator.New(lib)

	fmt.Fprintf(out, "Omni v%s\n", version)
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "")

	var buffer []string

	for {
		prompt := PROMPT
		if len(buffer) > 0 {
			prompt = CONTINUATION_PROMPT
		}

		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				buffer = nil
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if len(buffer) == 0 && (trimmed == "exit" || trimmed == "quit") {
			return
		}
		if len(buffer) == 0 && trimmed == "" {
			continue
		}

		buffer = append(buffer, input)
		source := strings.Join(buffer, "\n")

		// Block headers keep the buffer open until a blank line
		if needsMoreInput(source, trimmed) {
			continue
		}

		line.AppendHistory(source)
		buffer = nil

		evalInput(out, interp, source)
	}
}

// needsMoreInput reports whether the buffered source is still an open block:
// a line ending in ':' starts one, and only a blank line closes it.
func needsMoreInput(source, lastLine string) bool {
	if !strings.Contains(source, "\n") {
		return strings.HasSuffix(strings.TrimSpace(source), ":")
	}
	return lastLine != ""
}

// evalInput parses one REPL entry. Declarations are registered into the
// session interpreter; bare statements are wrapped in a hidden function and
// executed immediately, printing the resulting value.
func evalInput(out io.Writer, interp *evaluator.Interpreter, source string) {
	trimmed := strings.TrimSpace(source)
	isDeclaration := strings.HasPrefix(trimmed, "def ") ||
		strings.HasPrefix(trimmed, "class ") ||
		strings.HasPrefix(trimmed, "interface ") ||
		strings.HasPrefix(trimmed, "import ")

	if !isDeclaration {
		var wrapped strings.Builder
		wrapped.WriteString("def __repl__():\n")
		for _, l := range strings.Split(source, "\n") {
			wrapped.WriteString("    ")
			wrapped.WriteString(l)
			wrapped.WriteString("\n")
		}
		source = wrapped.String()
	}

	l := lexer.NewWithFilename(source, "<repl>")
	p := parser.New(l.Tokenize())
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, err := range errs {
			fmt.Fprintln(out, err.String())
		}
		return
	}

	if err := interp.Register(program); err != nil {
		fmt.Fprintln(out, err.String())
		return
	}

	if isDeclaration {
		fmt.Fprintln(out, "OK")
		return
	}

	result := interp.CallByName("__repl__", nil)
	if raised, ok := result.(*evaluator.RuntimeError); ok {
		fmt.Fprintln(out, raised.Inspect())
		return
	}
	if result != nil && result.Type() != evaluator.NULL_VALUE {
		fmt.Fprintln(out, result.Inspect())
	}
}

// filterCompletions returns completion suggestions for the word being typed
func filterCompletions(words []string, input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	if strings.HasSuffix(input, " ") || strings.HasSuffix(input, "\t") {
		return nil
	}

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	last := fields[len(fields)-1]

	var matches []string
	for _, word := range words {
		if strings.HasPrefix(word, last) {
			matches = append(matches, word)
		}
	}
	return matches
}
