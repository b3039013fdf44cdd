/*
File    : symstatic/eval/builtins_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danilopedraza/symstatic/object"
)

func TestBuiltins_PrintlnWritesAndReturnsEmptyTuple(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)

	v := run(t, e, `println("hi")`)
	assert.Equal(t, "hi\n", buf.String())
	assert.Equal(t, "()", v.(interface{ String() string }).String())
}

func TestBuiltins_PrintWritesNoNewline(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)

	run(t, e, `print("hi")`)
	assert.Equal(t, "hi", buf.String())
}

func TestBuiltins_GetlnReadsOneLineWithoutTerminator(t *testing.T) {
	e := New()
	e.SetReader(strings.NewReader("hello world\nsecond line\n"))

	v := run(t, e, "getln()")
	assert.Equal(t, "hello world", v.(interface{ String() string }).String())
}

func TestBuiltins_AssertTrueReturnsEmptyTuple(t *testing.T) {
	e := New()
	v := run(t, e, "assert(true)")
	assert.Equal(t, "()", v.(interface{ String() string }).String())
}

func TestBuiltins_AssertFalseReturnsFailedAssertionValue(t *testing.T) {
	e := New()
	v := run(t, e, `assert(false, "must be true")`)
	errObj, ok := v.(*object.Error)
	assert.True(t, ok)
	assert.Equal(t, "must be true", errObj.Message)
}

func TestBuiltins_AssertIsImmutable(t *testing.T) {
	e := New()
	assert.True(t, e.Global.IsImmutable("assert"))
	assert.True(t, e.Global.IsImmutable("println"))
}
