package lox

import "container/list"

// scopeMap represents a single block scope. true means the name is fully
// defined in that scope; false means only declared (its initializer is
// still being resolved). Variables at the global scope are not tracked
// here — if resolveLocal cannot find a name in any local scope, it assumes
// the variable is global and looks it up by name at runtime.
type scopeMap = map[string]bool

type loxFnType int

const (
	fnTypeNone loxFnType = iota
	fnTypeFunction
	fnTypeMethod
	fnTypeInitializer
)

type loxClassType int

const (
	classTypeNone loxClassType = iota
	classTypeClass
	classTypeSubclass
)

// Resolver performs a static pass over the AST, annotating every local
// variable reference with the number of environment frames between the use
// site and the scope that declared it (spec.md §4.3). It also catches a
// family of static errors that would otherwise surface as confusing runtime
// faults, or not at all.
type Resolver struct {
	scopes       *list.List
	interpreter  *Interpreter
	reporter     Reporter
	currentFn    loxFnType
	currentClass loxClassType
}

// NewResolver creates a Resolver that annotates interpreter's locals table.
func NewResolver(interpreter *Interpreter, reporter Reporter) *Resolver {
	r := new(Resolver)
	r.scopes = list.New()
	r.interpreter = interpreter
	r.reporter = reporter
	r.currentFn = fnTypeNone
	r.currentClass = classTypeNone
	return r
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(statements []Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	r.beginScope()
	r.Resolve(stmt.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.reporter.Report(newResolveError(stmt.Superclass.Name, "A class can't inherit from itself."))
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopeAt(0)["super"] = true
	}

	r.beginScope()
	r.scopeAt(0)["this"] = true

	for _, method := range stmt.Methods {
		declaration := fnTypeMethod
		if method.Name.Lexeme == "init" {
			declaration = fnTypeInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()
	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	r.resolveFunction(stmt, fnTypeFunction)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if r.currentFn == fnTypeNone {
		r.reporter.Report(newResolveError(stmt.Keyword, "Can't return from top-level code."))
	}
	if stmt.Value != nil {
		if r.currentFn == fnTypeInitializer {
			r.reporter.Report(newResolveError(stmt.Keyword, "Can't return a value from an initializer."))
		}
		r.resolveExpr(stmt.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	r.resolveExpr(expr.Object)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	r.resolveExpr(expr.Value)
	r.resolveExpr(expr.Object)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	if r.currentClass == classTypeNone {
		r.reporter.Report(newResolveError(expr.Keyword, "Can't use 'super' outside of a class."))
	} else if r.currentClass != classTypeSubclass {
		r.reporter.Report(newResolveError(expr.Keyword, "Can't use 'super' in a class with no superclass."))
	}
	r.resolveLocal(expr, expr.Keyword)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	if r.currentClass == classTypeNone {
		r.reporter.Report(newResolveError(expr.Keyword, "Can't use 'this' outside of a class."))
		return nil, nil
	}
	r.resolveLocal(expr, expr.Keyword)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	if r.scopes.Front() != nil {
		if defined, exist := r.scopeAt(0)[expr.Name.Lexeme]; exist && !defined {
			r.reporter.Report(newResolveError(expr.Name, "Can't read local variable in its own initializer."))
		}
	}
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) resolveFunction(fn *FunctionStmt, fnType loxFnType) {
	enclosingFn := r.currentFn
	r.currentFn = fnType

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.Resolve(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// resolveLocal walks scopes from innermost outward; the hop count at the
// matching scope is its zero-based distance from the use site. A name not
// found in any local scope is assumed global and left unannotated.
func (r *Resolver) resolveLocal(expr Expr, name *Token) {
	depth := 0
	for scope := r.scopes.Front(); scope != nil; scope = scope.Next() {
		if _, ok := scope.Value.(scopeMap)[name.Lexeme]; ok {
			r.interpreter.resolve(expr, depth)
			return
		}
		depth++
	}
}

// resolveStmt mirrors Interpreter.exec.
func (r *Resolver) resolveStmt(stmt Stmt) {
	stmt.Accept(r)
}

// resolveExpr mirrors Interpreter.eval.
func (r *Resolver) resolveExpr(expr Expr) {
	expr.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes.PushFront(make(scopeMap))
}

func (r *Resolver) endScope() {
	r.scopes.Remove(r.scopes.Front())
}

func (r *Resolver) scopeAt(n int) scopeMap {
	e := r.scopes.Front()
	for i := 0; i < n; i++ {
		e = e.Next()
	}
	return e.Value.(scopeMap)
}

func (r *Resolver) declare(name *Token) {
	if r.scopes.Front() == nil {
		return
	}
	scope := r.scopeAt(0)
	if _, hasName := scope[name.Lexeme]; hasName {
		r.reporter.Report(newResolveError(name, "Already a variable with this name in this scope."))
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name *Token) {
	if r.scopes.Front() == nil {
		return
	}
	r.scopeAt(0)[name.Lexeme] = true
}
