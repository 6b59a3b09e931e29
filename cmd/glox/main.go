package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/letung3105/glox/internal/lox"
)

func main() {
	astPath := flag.String("ast", "", "parse the given file and print its AST instead of running it")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glox [-ast file] [script]")
	}
	flag.Parse()
	args := flag.Args()

	if *astPath != "" {
		printAST(*astPath)
		return
	}

	if len(args) > 1 {
		flag.Usage()
		os.Exit(64)
	}

	cwd, err := os.Getwd()
	exitOnError(err, 74)
	cfg, err := lox.FindConfig(cwd)
	exitOnError(err, 74)

	reporter := lox.NewSimpleReporter(os.Stderr)
	echo := len(args) == 0 && cfg.REPL.EchoExpressionStatements
	interpreter := lox.NewInterpreter(os.Stdout, reporter, echo, cfg.Interpreter.MaxCallDepth)
	if len(args) == 0 {
		runPrompt(interpreter, reporter, cfg)
	} else {
		runFile(args[0], interpreter, reporter)
	}
}

// run scans and runs source as a program. When tryExprFirst is set (the
// REPL case), it first tries source as a single bare expression with no
// trailing ";" via Parser.ParseExpression and, on success, evaluates it
// through Interpreter.EvaluateExpression and prints the result directly —
// this is what lets a REPL line like "1 + 2" display 3 without needing a
// semicolon or a "print". Anything that doesn't parse as a lone expression
// falls back to the ordinary declaration/statement grammar.
func run(script string, interpreter *lox.Interpreter, reporter lox.Reporter, tryExprFirst bool) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	if reporter.HadError() {
		return
	}

	if tryExprFirst {
		if expr, ok := lox.NewParser(tokens, reporter).ParseExpression(); ok {
			value, err := interpreter.EvaluateExpression(expr)
			if err != nil {
				reporter.Report(err)
				return
			}
			fmt.Println(lox.Stringify(value))
			return
		}
	}

	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}
	resolver := lox.NewResolver(interpreter, reporter)
	resolver.Resolve(statements)
	if reporter.HadError() {
		return
	}
	interpreter.Interpret(statements)
}

// runPrompt runs the interpreter in REPL mode, reading one line at a time
// and resetting the reporter between lines so a bad line doesn't poison the
// exit status of the rest of the session.
func runPrompt(interpreter *lox.Interpreter, reporter lox.Reporter, cfg *lox.Config) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print(cfg.REPL.Prompt)
		if !s.Scan() {
			break
		}
		run(s.Text(), interpreter, reporter, true)
		reporter.Reset()
	}
	exitOnError(s.Err(), 74)
}

// runFile runs the given file as a script.
func runFile(fpath string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 74)

	run(string(bytes), interpreter, reporter, false)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

// printAST parses (but does not resolve or run) the given file and prints
// its syntax tree as s-expressions.
func printAST(fpath string) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 74)

	reporter := lox.NewSimpleReporter(os.Stderr)
	scanner := lox.NewScanner([]rune(string(bytes)), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	exitIf(reporter.HadError(), 65)

	printer := &lox.AstPrinter{}
	fmt.Print(printer.PrintStmts(statements))
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
