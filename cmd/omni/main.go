package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	omnierrors "github.com/omni-lang/omni/pkg/omni/errors"
	"github.com/omni-lang/omni/pkg/omni/evaluator"
	"github.com/omni-lang/omni/pkg/omni/format"
	"github.com/omni-lang/omni/pkg/omni/lexer"
	"github.com/omni-lang/omni/pkg/omni/parser"
	"github.com/omni-lang/omni/pkg/omni/repl"
	"github.com/omni-lang/omni/pkg/omni/stdlib"
)

// Version is set at compile time via -ldflags
var Version = "0.3.0"

var (
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	tokensFlag = flag.Bool("tokens", false, "Print the token stream and exit")
	astFlag    = flag.Bool("ast", false, "Print the AST summary and exit")
	runFlag    = flag.Bool("run", false, "Run the program (default)")

	evalFlag     = flag.String("e", "", "Evaluate code string")
	evalLongFlag = flag.String("eval", "", "Evaluate code string")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag || *versionLongFlag {
		fmt.Printf("omni version %s\n", Version)
		os.Exit(0)
	}

	evalCode := *evalFlag
	if evalCode == "" {
		evalCode = *evalLongFlag
	}

	switch {
	case evalCode != "":
		executeSource("<eval>", evalCode)
	case len(flag.Args()) > 0:
		filename := flag.Args()[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Cannot open file %s\n", filename)
			os.Exit(1)
		}
		executeSource(filename, string(content))
	default:
		repl.Start(os.Stdout, Version)
	}
}

func printHelp() {
	fmt.Printf(`omni - Omni language interpreter version %s

Usage:
  omni [options] <file.omni>
  omni -e "code"

Options:
  -h, --help            Show this help message
  -V, --version         Show version information
  --tokens              Print the token stream and exit
  --ast                 Print the AST summary and exit
  --run                 Run the program (default)
  -e, --eval <code>     Evaluate code string

Examples:
  omni                      Start the interactive REPL
  omni script.omni          Run a script's main() function
  omni --tokens script.omni Show the token stream
  omni --ast script.omni    Show the declaration summary
`, Version)
}

// executeSource drives the pipeline over one source text, honoring the
// --tokens/--ast dump modes.
func executeSource(filename, source string) {
	l := lexer.NewWithFilename(source, filename)
	tokens := l.Tokenize()
	for _, diag := range l.Diagnostics() {
		fmt.Fprintln(os.Stderr, diag.String())
	}

	if *tokensFlag {
		fmt.Print(format.Tokens(tokens))
		os.Exit(0)
	}

	p := parser.New(tokens)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		printParseErrors(filename, source, errs)
		os.Exit(1)
	}

	if *astFlag {
		fmt.Print(format.ProgramSummary(program))
		os.Exit(0)
	}

	interp := evaluator.New(stdlib.New())
	if err := interp.Run(program); err != nil {
		fmt.Fprintln(os.Stderr, err.String())
		printSourceContext(strings.Split(source, "\n"), err.Line)
		os.Exit(1)
	}
}

// printParseErrors prints every parse error with its source line
func printParseErrors(filename, source string, errs []*omnierrors.OmniError) {
	lines := strings.Split(source, "\n")
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err.WithFile(filename).PrettyString())
		printSourceContext(lines, err.Line)
	}
}

// printSourceContext prints the offending source line under an error
func printSourceContext(lines []string, lineNum int) {
	if lineNum <= 0 || lineNum > len(lines) {
		return
	}
	fmt.Fprintf(os.Stderr, "    %s\n", strings.TrimLeft(lines[lineNum-1], " \t"))
}
