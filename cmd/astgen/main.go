// astgen regenerates internal/lox/expr.go and internal/lox/stmt.go from the
// type descriptions below. It is not wired into any build step; it exists
// so the AST node boilerplate has a documented source of truth instead of
// being hand-maintained by find-and-replace.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: astgen <output directory>")
		os.Exit(64)
	}
	outputDir := os.Args[1]

	exprTypes := []string{
		"Assign: Name *Token, Value Expr",
		"Binary: Left Expr, Op *Token, Right Expr",
		// Call stores the token for the closing parenthesis so a RuntimeError
		// raised by the call has a source location to point at.
		"Call: Callee Expr, Paren *Token, Args []Expr",
		"Get: Object Expr, Name *Token",
		"Grouping: Expression Expr",
		"Literal: Value interface{}",
		"Logical: Left Expr, Op *Token, Right Expr",
		"Set: Object Expr, Name *Token, Value Expr",
		"Super: Keyword *Token, Method *Token",
		"This: Keyword *Token",
		"Unary: Op *Token, Expression Expr",
		"Variable: Name *Token",
	}
	stmtTypes := []string{
		"Block: Statements []Stmt",
		"Class: Name *Token, Superclass *VariableExpr, Methods []*FunctionStmt",
		"Expression: Expression Expr",
		"Function: Name *Token, Params []*Token, Body []Stmt",
		"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
		"Print: Expression Expr",
		"Return: Keyword *Token, Value Expr",
		"Var: Name *Token, Initializer Expr",
		"While: Condition Expr, Body Stmt",
	}

	defineAST(outputDir, "Expr", exprTypes)
	defineAST(outputDir, "Stmt", stmtTypes)
}

func defineAST(outputDir, baseName string, types []string) {
	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	writer := bufio.NewWriter(f)
	defer writer.Flush()

	fmt.Fprintln(writer, "// Code generated by cmd/astgen; DO NOT EDIT.")
	fmt.Fprintln(writer)
	fmt.Fprintf(writer, "package %s\n\n", filepath.Base(outputDir))

	fmt.Fprintf(writer, "type %s interface {\n", baseName)
	fmt.Fprintf(writer, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintln(writer, "}")
	fmt.Fprintln(writer)

	defineVisitor(writer, baseName, types)

	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		fmt.Fprintln(writer)
		defineType(writer, baseName, typeName, fields)
	}
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(writer, "\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName, strings.ToLower(baseName), typeName, baseName)
	}
	fmt.Fprintln(writer, "}")
}

func defineType(writer io.Writer, baseName, typeName, fieldList string) {
	var fields, fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.TrimSpace(strings.Split(field, " ")[0]))
	}

	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintln(writer, "}")

	fmt.Fprintf(writer, "func New%s%s(%s) *%s%s {\n", typeName, baseName, fieldList, typeName, baseName)
	fmt.Fprintf(writer, "\treturn &%s%s{%s}\n", typeName, baseName, strings.Join(fieldNames, ", "))
	fmt.Fprintln(writer, "}")

	recv := strings.ToLower(baseName)
	fmt.Fprintf(writer, "func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		recv, typeName, baseName, baseName)
	fmt.Fprintf(writer, "\treturn visitor.Visit%s%s(%s)\n", typeName, baseName, recv)
	fmt.Fprintln(writer, "}")
}
