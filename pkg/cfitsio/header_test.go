package cfitsio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordRoundTrip(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	t.Run("string", func(t *testing.T) {
		require.NoError(t, f.WriteKeyString("OBSERVER", "A. Astronomer", "who"))
		v, err := f.ReadKeyString("OBSERVER")
		require.NoError(t, err)
		require.Equal(t, "A. Astronomer", v)
	})

	t.Run("logical", func(t *testing.T) {
		require.NoError(t, f.WriteKeyLogical("CALIB", true, ""))
		require.NoError(t, f.WriteKeyLogical("RAWDATA", false, ""))
		v, err := f.ReadKeyLogical("CALIB")
		require.NoError(t, err)
		require.True(t, v)
		v, err = f.ReadKeyLogical("RAWDATA")
		require.NoError(t, err)
		require.False(t, v)
	})

	t.Run("int", func(t *testing.T) {
		require.NoError(t, f.WriteKeyInt("NFRAMES", 42, ""))
		v, err := f.ReadKeyInt("NFRAMES")
		require.NoError(t, err)
		require.Equal(t, int64(42), v)
	})

	t.Run("float", func(t *testing.T) {
		// exactly representable in both binary and 15 decimal digits
		require.NoError(t, f.WriteKeyFloat("EXPTIME", 1234.5625, "seconds"))
		v, err := f.ReadKeyFloat("EXPTIME")
		require.NoError(t, err)
		require.Equal(t, 1234.5625, v)
	})
}

func TestWriteKeyDispatch(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	require.NoError(t, f.WriteKey("TELESCOP", "MeerKAT", ""))
	require.NoError(t, f.WriteKey("NCHAN", 4096, ""))
	require.NoError(t, f.WriteKey("BSCALE", 0.25, ""))
	require.NoError(t, f.WriteKey("FLAGGED", false, ""))

	v, err := f.ReadKeyInt("NCHAN")
	require.NoError(t, err)
	require.Equal(t, int64(4096), v)

	raw, _, err := f.ReadKey("TELESCOP")
	require.NoError(t, err)
	require.Contains(t, raw, "MeerKAT")
}

func TestWriteKeyUnknownType(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	err := f.WriteKey("BAD", struct{}{}, "")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestUpdateAndDeleteKey(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	require.NoError(t, f.WriteKeyInt("SEQNUM", 1, ""))
	require.NoError(t, f.UpdateKey("SEQNUM", int64(2), ""))
	v, err := f.ReadKeyInt("SEQNUM")
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	// update of a missing key appends it
	require.NoError(t, f.UpdateKey("OBJECT", "NGC 1365", ""))
	s, err := f.ReadKeyString("OBJECT")
	require.NoError(t, err)
	require.Equal(t, "NGC 1365", s)

	require.NoError(t, f.DeleteKey("SEQNUM"))
	_, err = f.ReadKeyInt("SEQNUM")
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	require.Contains(t, ferr.Message, "SEQNUM")
}

func TestReadRecords(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	n, err := f.NumKeys()
	require.NoError(t, err)
	require.Greater(t, n, 0)

	first, err := f.ReadRecord(0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(first, "SIMPLE"))

	_, err = f.ReadRecord(n + 10)
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
}

func TestCommentHistoryDate(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	before, err := f.NumKeys()
	require.NoError(t, err)

	require.NoError(t, f.WriteComment("reduced with go-fits"))
	require.NoError(t, f.WriteHistory("flat-field applied"))
	require.NoError(t, f.WriteDate())

	after, err := f.NumKeys()
	require.NoError(t, err)
	require.Equal(t, before+3, after)
}
