package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	t.Setenv("STREAMTA_TEST_BOOL", "true")
	v, ok := Bool("STREAMTA_TEST_BOOL")
	assert.True(t, ok)
	assert.True(t, v)

	t.Setenv("STREAMTA_TEST_BOOL", "not-a-bool")
	v, ok = Bool("STREAMTA_TEST_BOOL", true)
	assert.False(t, ok)
	assert.True(t, v, "falls back to the default")

	v, ok = Bool("STREAMTA_TEST_UNSET")
	assert.False(t, ok)
	assert.False(t, v)
}

func TestSetBool(t *testing.T) {
	flag := false
	assert.False(t, SetBool("STREAMTA_TEST_UNSET", &flag))
	assert.False(t, flag)

	t.Setenv("STREAMTA_TEST_FLAG", "1")
	assert.True(t, SetBool("STREAMTA_TEST_FLAG", &flag))
	assert.True(t, flag)
}

func TestString(t *testing.T) {
	v, ok := String("STREAMTA_TEST_UNSET", "fallback")
	assert.False(t, ok)
	assert.Equal(t, "fallback", v)

	t.Setenv("STREAMTA_TEST_STRING", "value")
	v, ok = String("STREAMTA_TEST_STRING")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}
