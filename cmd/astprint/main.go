// astprint parses a Lox source file and prints its syntax tree as
// s-expressions, without resolving or running it. `glox -ast` offers the
// same behavior from the main binary; this standalone command exists for
// piping into other tools without the REPL/runtime machinery attached.
package main

import (
	"fmt"
	"os"

	"github.com/letung3105/glox/internal/lox"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: astprint <script>")
		os.Exit(64)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(74)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	scanner := lox.NewScanner([]rune(string(source)), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		os.Exit(65)
	}

	printer := &lox.AstPrinter{}
	fmt.Print(printer.PrintStmts(statements))
}
