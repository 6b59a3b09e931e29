package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders an AST as a Lisp-like s-expression, for the -ast debug
// flag. It never runs a program: only the shape of the parse is shown.
type AstPrinter struct{}

// Print renders a single expression.
func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

// PrintStmts renders a whole program, one s-expression per line.
func (printer *AstPrinter) PrintStmts(statements []Stmt) string {
	var b strings.Builder
	for _, stmt := range statements {
		s, _ := stmt.Accept(printer)
		fmt.Fprintf(&b, "%v\n", s)
	}
	return b.String()
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteByte(' ')
		s, _ := expr.Accept(printer)
		fmt.Fprintf(&b, "%v", s)
	}
	b.WriteByte(')')
	return b.String()
}

func (printer *AstPrinter) parenthesizeStmts(name string, statements []Stmt) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, stmt := range statements {
		b.WriteByte(' ')
		s, _ := stmt.Accept(printer)
		fmt.Fprintf(&b, "%v", s)
	}
	b.WriteByte(')')
	return b.String()
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return printer.parenthesize("= "+expr.Name.Lexeme, expr.Value), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return printer.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...), nil
}

func (printer *AstPrinter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	return printer.parenthesize("get-"+expr.Name.Lexeme, expr.Object), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Expression), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Value.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	return printer.parenthesize("set-"+expr.Name.Lexeme, expr.Object, expr.Value), nil
}

func (printer *AstPrinter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	return fmt.Sprintf("(super %s)", expr.Method.Lexeme), nil
}

func (printer *AstPrinter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return "this", nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Expression), nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return printer.parenthesizeStmts("block", stmt.Statements), nil
}

func (printer *AstPrinter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	name := "class " + stmt.Name.Lexeme
	if stmt.Superclass != nil {
		name += " < " + stmt.Superclass.Name.Lexeme
	}
	methods := make([]Stmt, len(stmt.Methods))
	for i, m := range stmt.Methods {
		methods[i] = m
	}
	return printer.parenthesizeStmts(name, methods), nil
}

func (printer *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return printer.parenthesize(";", stmt.Expression), nil
}

func (printer *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	name := "fun " + stmt.Name.Lexeme + "("
	params := make([]string, len(stmt.Params))
	for i, p := range stmt.Params {
		params[i] = p.Lexeme
	}
	name += strings.Join(params, " ") + ")"
	return printer.parenthesizeStmts(name, stmt.Body), nil
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	branches := []Stmt{stmt.ThenBranch}
	if stmt.ElseBranch != nil {
		branches = append(branches, stmt.ElseBranch)
	}
	cond, _ := stmt.Condition.Accept(printer)
	return fmt.Sprintf("(if %v %s)", cond, printer.parenthesizeStmts("do", branches)), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return printer.parenthesize("print", stmt.Expression), nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Value == nil {
		return "(return)", nil
	}
	return printer.parenthesize("return", stmt.Value), nil
}

func (printer *AstPrinter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	if stmt.Initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.Name.Lexeme), nil
	}
	return printer.parenthesize("var "+stmt.Name.Lexeme, stmt.Initializer), nil
}

func (printer *AstPrinter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	cond, _ := stmt.Condition.Accept(printer)
	return fmt.Sprintf("(while %v %s)", cond, printer.parenthesizeStmts("do", []Stmt{stmt.Body})), nil
}
