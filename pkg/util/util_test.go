package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("disk on fire")
	err := WrapErrorf(orig, ErrNotFound, "read %s", "network.yaml")

	assert.ErrorIs(t, err, orig)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrBadParamInput)
	assert.Equal(t, "read network.yaml: disk on fire", err.Error())

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, ErrNotFound, e.Code())

	assert.Equal(t, "bad", WrapErrorf(nil, ErrBadParamInput, "bad").Error())
}

func TestAssertPanic(t *testing.T) {
	assert.NotPanics(t, func() { AssertPanic(true, "fine") })
	assert.PanicsWithValue(t, "broken", func() { AssertPanic(false, "broken") })
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 7, Max(2, 7))
	assert.Equal(t, "a", Min("b", "a"))
}
