package cfitsio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateDrainsStackInOrder(t *testing.T) {
	clearMessages()
	pushMessage("first message")
	pushMessage("second message")
	pushMessage("third message")

	err := newError(104, "open")
	require.Equal(t, []string{"first message", "second message", "third message"}, err.Stack)

	// the stack must be empty now, so an unrelated failure sees no residue
	err = newError(105, "")
	require.Empty(t, err.Stack)
}

func TestTranslateAppendsContext(t *testing.T) {
	clearMessages()

	err := newError(104, "files/cube.fits")
	require.Equal(t, 104, err.Code)
	require.Contains(t, err.Message, "(files/cube.fits)")
	require.NotEqual(t, "(files/cube.fits)", err.Message)

	bare := newError(104, "")
	require.NotContains(t, bare.Message, "(")
}

func TestNotOpenError(t *testing.T) {
	err := notOpenError("cube.fits")
	require.ErrorIs(t, err, ErrFileNotOpen)
	require.Contains(t, err.Message, "cube.fits")

	code, ok := Status(err)
	require.True(t, ok)
	require.Equal(t, StatusFileNotOpened, code)
}

func TestStatusOnForeignError(t *testing.T) {
	_, ok := Status(errors.New("not ours"))
	require.False(t, ok)
}
