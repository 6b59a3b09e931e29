package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)

	val, err := env.Get(NewToken(IDENTIFIER, "a", nil, 1))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, val)
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(NewToken(IDENTIFIER, "missing", nil, 1))
	assert.Error(t, err)
	assert.IsType(t, &RuntimeError{}, err)
}

func TestEnvironmentGetWalksEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", 1.0)
	inner := NewEnvironment(outer)

	val, err := inner.Get(NewToken(IDENTIFIER, "a", nil, 1))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, val)
}

func TestEnvironmentAssignWalksEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", 1.0)
	inner := NewEnvironment(outer)

	err := inner.Assign(NewToken(IDENTIFIER, "a", nil, 1), 2.0)
	assert.NoError(t, err)

	val, _ := outer.Get(NewToken(IDENTIFIER, "a", nil, 1))
	assert.Equal(t, 2.0, val)
}

func TestEnvironmentAssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(NewToken(IDENTIFIER, "missing", nil, 1), 1.0)
	assert.Error(t, err)
	assert.IsType(t, &RuntimeError{}, err)
}

func TestEnvironmentGetAtAndAssignAt(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", 1.0)
	mid := NewEnvironment(global)
	inner := NewEnvironment(mid)

	assert.Equal(t, 1.0, inner.GetAt(2, "a"))

	inner.AssignAt(2, NewToken(IDENTIFIER, "a", nil, 1), 2.0)
	assert.Equal(t, 2.0, global.values["a"])
}
