package cfitsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempName(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.fits")
}

// newTestFile creates a fresh FITS file with a header-only primary HDU.
func newTestFile(t *testing.T) *File {
	t.Helper()
	f, err := Create(tempName(t))
	require.NoError(t, err)
	require.NoError(t, f.CreateImage(Byte8, nil))
	return f
}

func TestOpenMissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "absent.fits")
	f, err := Open(name, ReadOnly)
	require.Nil(t, f)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, StatusFileNotOpened, ferr.Code)
	require.Contains(t, ferr.Message, name)
}

func TestCreateClobbersExisting(t *testing.T) {
	name := tempName(t)
	require.NoError(t, os.WriteFile(name, []byte("not a fits file"), 0o644))

	f, err := Create(name)
	require.NoError(t, err)
	require.NoError(t, f.CreateImage(Byte8, nil))
	require.NoError(t, f.Close())

	// the replacement must be a readable FITS file
	f, err = Open(name, ReadOnly)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestCreateNoClobberRefusesExisting(t *testing.T) {
	name := tempName(t)
	f, err := Create(name)
	require.NoError(t, err)
	require.NoError(t, f.CreateImage(Byte8, nil))
	require.NoError(t, f.Close())

	dup, err := CreateNoClobber(name)
	require.Nil(t, dup)
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
}

func TestCloseTwice(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, f.Close())
	require.False(t, f.IsOpen())

	err := f.Close()
	require.ErrorIs(t, err, ErrFileNotOpen)
}

func TestDeleteRemovesFile(t *testing.T) {
	f := newTestFile(t)
	name := f.Name()
	require.NoError(t, f.Delete())

	_, err := os.Stat(name)
	require.True(t, os.IsNotExist(err))

	_, err = f.NumHDUs()
	require.ErrorIs(t, err, ErrFileNotOpen)
}

// Every handle operation must fail on an unopened handle before the native
// layer is reached: the zero-value File carries a nil fitsfile pointer, so
// surviving the call at all proves no native call was attempted.
func TestOperationsRequireOpenHandle(t *testing.T) {
	ops := map[string]func(f *File) error{
		"Close":        func(f *File) error { return f.Close() },
		"Delete":       func(f *File) error { return f.Delete() },
		"NumHDUs":      func(f *File) error { _, err := f.NumHDUs(); return err },
		"CurrentHDU":   func(f *File) error { _, err := f.CurrentHDU(); return err },
		"MoveAbsHDU":   func(f *File) error { _, err := f.MoveAbsHDU(1); return err },
		"MoveRelHDU":   func(f *File) error { _, err := f.MoveRelHDU(1); return err },
		"MoveNamedHDU": func(f *File) error { return f.MoveNamedHDU(ImageHDU, "SCI", 0) },
		"HDUType":      func(f *File) error { _, err := f.HDUType(); return err },
		"NumKeys":      func(f *File) error { _, err := f.NumKeys(); return err },
		"ReadRecord":   func(f *File) error { _, err := f.ReadRecord(0); return err },
		"ReadKey":      func(f *File) error { _, _, err := f.ReadKey("KEY"); return err },
		"ReadKeyStr":   func(f *File) error { _, err := f.ReadKeyString("KEY"); return err },
		"WriteKeyStr":  func(f *File) error { return f.WriteKeyString("KEY", "v", "") },
		"UpdateKey":    func(f *File) error { return f.UpdateKey("KEY", int64(1), "") },
		"DeleteKey":    func(f *File) error { return f.DeleteKey("KEY") },
		"WriteComment": func(f *File) error { return f.WriteComment("c") },
		"CreateImage":  func(f *File) error { return f.CreateImage(Byte8, nil) },
		"ImageType":    func(f *File) error { _, err := f.ImageType(); return err },
		"ImageDims":    func(f *File) error { _, err := f.ImageDims(); return err },
		"ImageSize":    func(f *File) error { _, err := f.ImageSize(); return err },
		"WritePixels":  func(f *File) error { return f.WritePixels(1, []float64{1}) },
		"ReadPixels":   func(f *File) error { return f.ReadPixels(1, []float64{1}) },
		"CreateTable": func(f *File) error {
			return f.CreateTable(BinaryTable, "T", []Column{{Name: "A", Format: "1J"}})
		},
		"NumRows":      func(f *File) error { _, err := f.NumRows(); return err },
		"NumCols":      func(f *File) error { _, err := f.NumCols(); return err },
		"ColumnNumber": func(f *File) error { _, err := f.ColumnNumber("A"); return err },
		"ColumnType":   func(f *File) error { _, _, _, err := f.ColumnType(1); return err },
		"WriteColumn":  func(f *File) error { return f.WriteColumn(1, 1, []int32{1}) },
		"ReadColumn":   func(f *File) error { return f.ReadColumn(1, 1, []int32{1}) },
		"InsertRows":   func(f *File) error { return f.InsertRows(0, 1) },
		"DeleteRows":   func(f *File) error { return f.DeleteRows(1, 1) },
	}

	for name, op := range ops {
		t.Run(name+"/unopened", func(t *testing.T) {
			var f File
			require.ErrorIs(t, op(&f), ErrFileNotOpen)
		})
	}

	closed := newTestFile(t)
	require.NoError(t, closed.Close())
	for name, op := range ops {
		t.Run(name+"/closed", func(t *testing.T) {
			require.ErrorIs(t, op(closed), ErrFileNotOpen)
		})
	}
}
