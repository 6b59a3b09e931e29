package lox

import "fmt"

// loxReturn unwinds the Go call stack back to the nearest loxFunction.Call
// when a "return" statement executes. It satisfies the error interface
// purely so it can travel through the same (interface{}, error) return
// path every Accept method already uses; it never reaches a Reporter.
type loxReturn struct {
	val interface{}
}

func (r *loxReturn) Error() string {
	return fmt.Sprintf("return %v", Stringify(r.val))
}

// loxCallable is implemented by every Lox value that can appear before a
// "(" — user functions, methods, native functions, and classes themselves
// (calling a class constructs an instance).
type loxCallable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
}

// loxFunction is a user-defined function or method: its declaration plus
// the environment that was live when it was declared. Closing over that
// environment by reference, rather than copying it, is what makes closures
// observe later mutations of their captured variables.
type loxFunction struct {
	decl          *FunctionStmt
	closure       *Environment
	isInitializer bool
}

func newLoxFunction(decl *FunctionStmt, closure *Environment, isInitializer bool) *loxFunction {
	return &loxFunction{decl, closure, isInitializer}
}

// bind returns a copy of fn whose closure additionally binds "this" to
// instance. Called once per method lookup so the same method declaration
// can be shared by every instance of a class while "this" varies per call.
func (fn *loxFunction) bind(instance *loxInstance) *loxFunction {
	env := NewEnvironment(fn.closure)
	env.Define("this", instance)
	return newLoxFunction(fn.decl, env, fn.isInitializer)
}

func (fn *loxFunction) Arity() int {
	return len(fn.decl.Params)
}

// Call creates a fresh environment for this invocation so recursive and
// concurrent-in-time calls to the same function never share parameter
// bindings, then executes the body in it.
func (fn *loxFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		if ret, ok := err.(*loxReturn); ok {
			if fn.isInitializer {
				return fn.closure.GetAt(0, "this"), nil
			}
			return ret.val, nil
		}
		return nil, err
	}

	if fn.isInitializer {
		return fn.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (fn *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// loxClass is a runtime class value: its own methods plus an optional
// superclass to fall back to. Calling a class constructs a loxInstance and
// runs its "init" method, if it has one.
type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

func newLoxClass(name string, superclass *loxClass, methods map[string]*loxFunction) *loxClass {
	return &loxClass{name, superclass, methods}
}

// findMethod looks up name on this class, then walks the superclass chain.
func (class *loxClass) findMethod(name string) *loxFunction {
	if method, ok := class.methods[name]; ok {
		return method
	}
	if class.superclass != nil {
		return class.superclass.findMethod(name)
	}
	return nil
}

func (class *loxClass) Arity() int {
	if init := class.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (class *loxClass) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	instance := newLoxInstance(class)
	if init := class.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (class *loxClass) String() string {
	return class.name
}

// loxInstance is a runtime object: a class reference plus a bag of fields
// set after construction. Fields shadow methods of the same name.
type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func newLoxInstance(class *loxClass) *loxInstance {
	return &loxInstance{class, make(map[string]interface{})}
}

func (instance *loxInstance) get(name *Token) (interface{}, error) {
	if value, ok := instance.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := instance.class.findMethod(name.Lexeme); method != nil {
		return method.bind(instance), nil
	}
	return nil, NewRuntimeError(name, fmt.Sprintf("Undefined property '%s'.", name.Lexeme))
}

func (instance *loxInstance) set(name *Token, value interface{}) {
	instance.fields[name.Lexeme] = value
}

func (instance *loxInstance) String() string {
	return instance.class.name + " instance"
}
