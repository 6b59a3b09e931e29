package lox

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// defaultMaxCallDepth bounds function call nesting when no config overrides
// it. Exceeding it raises a catchable RuntimeError instead of crashing the
// process.
const defaultMaxCallDepth = 255

// Interpreter walks the resolved AST and produces side effects: it is the
// terminal stage of the pipeline (scanner -> parser -> resolver ->
// Interpreter). One Interpreter is reused across every REPL line so that
// top-level var/fun/class declarations persist across lines.
type Interpreter struct {
	globals         *Environment
	environment     *Environment
	locals          map[Expr]int
	output          io.Writer
	reporter        Reporter
	echoExpressions bool
	callDepth       int
	maxCallDepth    int
}

// NewInterpreter creates an Interpreter that prints to output and reports
// faults to reporter. echoExpressions enables printing the value of a bare
// expression statement, the behavior a REPL wants and a script run doesn't.
// maxCallDepth <= 0 selects the default of 255.
func NewInterpreter(output io.Writer, reporter Reporter, echoExpressions bool, maxCallDepth int) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", &nativeClock{})

	if maxCallDepth <= 0 {
		maxCallDepth = defaultMaxCallDepth
	}

	return &Interpreter{
		globals:         globals,
		environment:     globals,
		locals:          make(map[Expr]int),
		output:          output,
		reporter:        reporter,
		echoExpressions: echoExpressions,
		maxCallDepth:    maxCallDepth,
	}
}

// Interpret executes a program's statements in order. A RuntimeError aborts
// the remaining statements and is reported rather than returned, matching
// the Parser/Resolver's report-and-continue posture at the REPL.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			break
		}
	}
}

// EvaluateExpression evaluates a single expression and returns its value,
// the "evaluate expression" entry point alongside Interpret's "execute" one.
// Unlike Interpret, it never prints: the caller decides whether and how to
// display the result. It still runs against the global/current environment,
// so a REPL line evaluated this way sees variables and functions declared
// by earlier statements.
func (in *Interpreter) EvaluateExpression(expr Expr) (interface{}, error) {
	return in.eval(expr)
}

// resolve records that expr's variable reference resolves depth environment
// frames outward from wherever it is evaluated. Called only by the Resolver.
func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return nil, in.execBlock(stmt.Statements, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	var superclass *loxClass
	if stmt.Superclass != nil {
		val, err := in.eval(stmt.Superclass)
		if err != nil {
			return nil, err
		}
		sc, ok := val.(*loxClass)
		if !ok {
			return nil, NewRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(stmt.Name.Lexeme, nil)

	if stmt.Superclass != nil {
		in.environment = NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*loxFunction)
	for _, method := range stmt.Methods {
		methods[method.Name.Lexeme] = newLoxFunction(method, in.environment, method.Name.Lexeme == "init")
	}

	class := newLoxClass(stmt.Name.Lexeme, superclass, methods)

	if stmt.Superclass != nil {
		in.environment = in.environment.enclosing
	}

	return nil, in.environment.Assign(stmt.Name, class)
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	value, err := in.eval(stmt.Expression)
	if err != nil {
		return nil, err
	}
	if in.echoExpressions {
		if _, ok := stmt.Expression.(*AssignExpr); !ok {
			fmt.Fprintln(in.output, Stringify(value))
		}
	}
	return nil, nil
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := newLoxFunction(stmt, in.environment, false)
	in.environment.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.eval(stmt.Condition)
	if err != nil {
		return nil, err
	}
	switch {
	case isTruthy(cond):
		return in.exec(stmt.ThenBranch)
	case stmt.ElseBranch != nil:
		return in.exec(stmt.ElseBranch)
	}
	return nil, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	value, err := in.eval(stmt.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, Stringify(value))
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var value interface{}
	if stmt.Value != nil {
		v, err := in.eval(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, &loxReturn{value}
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var initVal interface{}
	if stmt.Initializer != nil {
		var err error
		initVal, err = in.eval(stmt.Initializer)
		if err != nil {
			return nil, err
		}
	}
	in.environment.Define(stmt.Name.Lexeme, initVal)
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		if _, err := in.exec(stmt.Body); err != nil {
			return nil, err
		}
	}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, err := in.eval(expr.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[expr]; ok {
		in.environment.AssignAt(distance, expr.Name, val)
		return val, nil
	}
	if err := in.globals.Assign(expr.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil

	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil

	case GREATER:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l > r, nil

	case GREATER_EQUAL:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l >= r, nil

	case LESS:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l < r, nil

	case LESS_EQUAL:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l <= r, nil

	case MINUS:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case PLUS:
		if ls, ok := lhs.(string); ok {
			if rs, ok := rhs.(string); ok {
				return ls + rs, nil
			}
		}
		if ln, ok := lhs.(float64); ok {
			if rn, ok := rhs.(float64); ok {
				return ln + rn, nil
			}
		}
		return nil, NewRuntimeError(expr.Op, "Operands must be two numbers or two strings.")

	case SLASH:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l / r, nil

	case STAR:
		l, r, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(expr.Args))
	for i, argExpr := range expr.Args {
		v, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(loxCallable)
	if !ok {
		return nil, NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, NewRuntimeError(expr.Paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}

	if in.callDepth >= in.maxCallDepth {
		return nil, NewRuntimeError(expr.Paren, "Stack overflow.")
	}
	in.callDepth++
	defer func() { in.callDepth-- }()

	return fn.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	object, err := in.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	if instance, ok := object.(*loxInstance); ok {
		return instance.get(expr.Name)
	}
	return nil, NewRuntimeError(expr.Name, "Only instances have fields.")
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.eval(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic("Unreachable")
	}

	return in.eval(expr.Right)
}

func (in *Interpreter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	object, err := in.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxInstance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only instances have fields.")
	}
	value, err := in.eval(expr.Value)
	if err != nil {
		return nil, err
	}
	instance.set(expr.Name, value)
	return value, nil
}

func (in *Interpreter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	distance := in.locals[expr]
	superclass := in.environment.GetAt(distance, "super").(*loxClass)
	instance := in.environment.GetAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(expr.Method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(expr.Method, fmt.Sprintf("Undefined property '%s'.", expr.Method.Lexeme))
	}
	return method.bind(instance), nil
}

func (in *Interpreter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return in.lookUpVariable(expr.Keyword, expr)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := in.eval(expr.Expression)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(exprVal), nil
	case MINUS:
		n, err := checkNumberOperand(expr.Op, exprVal)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return in.lookUpVariable(expr.Name, expr)
}

func (in *Interpreter) lookUpVariable(name *Token, expr Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) error {
	previous := in.environment
	in.environment = environment
	defer func() {
		in.environment = previous
	}()
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

func checkNumberOperand(op *Token, operand interface{}) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, NewRuntimeError(op, "Operand must be a number.")
}

func checkNumberOperands(op *Token, lhs, rhs interface{}) (float64, float64, error) {
	l, lok := lhs.(float64)
	r, rok := rhs.(float64)
	if !lok || !rok {
		return 0, 0, NewRuntimeError(op, "Operands must be numbers.")
	}
	return l, r, nil
}

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a runtime value the way "print" and the REPL echo it.
// Whole-valued floats drop their trailing ".0" since Lox has a single
// numeric type and prints it like an integer when it is one.
func Stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = text[:len(text)-2]
		}
		return text
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

// nativeClock implements Lox's only built-in: clock(), returning the
// current wall-clock time in fractional seconds.
type nativeClock struct{}

func (*nativeClock) Arity() int { return 0 }

func (*nativeClock) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func (*nativeClock) String() string { return "<native fn>" }
