package glcall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queue []uint32

func (q *queue) GetError() uint32 {
	if len(*q) == 0 {
		return NoError
	}
	code := (*q)[0]
	*q = (*q)[1:]
	return code
}

type stuck uint32

func (s stuck) GetError() uint32 { return uint32(s) }

func TestCheckNoError(t *testing.T) {
	q := &queue{}
	assert.NoError(t, Check(q, "glDrawElements"))
}

func TestCheckReportsFirstAndDrains(t *testing.T) {
	q := &queue{InvalidValue, InvalidOperation}
	err := Check(q, "glAttachShader")
	require.Error(t, err)

	var glErr *Error
	require.True(t, errors.As(err, &glErr))
	assert.Equal(t, InvalidValue, glErr.Code)
	assert.Equal(t, "glAttachShader", glErr.Call)
	assert.Equal(t, "glcall_test.go", glErr.File)
	assert.NotZero(t, glErr.Line)
	assert.Empty(t, *q)
	assert.Contains(t, err.Error(), "GL_INVALID_VALUE")
}

func TestClearTerminatesOnStuckSource(t *testing.T) {
	Clear(stuck(OutOfMemory))
}

func TestCodeName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", CodeName(InvalidEnum))
	assert.Equal(t, "0x9999", CodeName(0x9999))
}
