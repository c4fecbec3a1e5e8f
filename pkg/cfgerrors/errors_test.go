package cfgerrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesDetailsAndStack(t *testing.T) {
	inner := New(ErrorTypeIntegrity, "verification failed").WithDetail("path", "a.bin")
	outer := Wrap(inner, ErrorTypeIntegrity, "load failed")

	require.NotNil(t, outer)
	assert.Equal(t, "a.bin", outer.Details["path"])
	assert.Equal(t, inner.Stack, outer.Stack)
	assert.True(t, errors.Is(outer, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeFile, "nothing"))
}

func TestWrapForeignError(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, ErrorTypeFile, "short read")

	assert.Equal(t, "file: short read: unexpected EOF", err.Error())
	assert.NotEmpty(t, err.Stack)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestDetailKeysSorted(t *testing.T) {
	err := New(ErrorTypeInvariant, "x").
		WithDetail("zeta", 1).
		WithDetail("alpha", 2).
		WithDetail("mid", 3)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, err.DetailKeys())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrorTypeInvariant, "event id %d out of range", 300)
	assert.Equal(t, "invariant: event id 300 out of range", err.Error())
	assert.Equal(t, ErrorTypeInvariant, TypeOf(err))
}
