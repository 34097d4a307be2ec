package cfitsio

// #cgo pkg-config: cfitsio
// #include <stdlib.h>
// #include "fitsio.h"
import "C"

import (
	"fmt"
	"unsafe"
)

// Column describes one field of a table HDU: the TTYPE name, the TFORM
// storage format (e.g. "1J", "1D", "10A") and an optional TUNIT.
type Column struct {
	Name   string
	Format string
	Unit   string
}

// cstrings converts a slice of Go strings into a C char* array. The caller
// must release it with freeCstrings.
func cstrings(values []string) []*C.char {
	out := make([]*C.char, len(values))
	for i, v := range values {
		out[i] = C.CString(v)
	}
	return out
}

func freeCstrings(values []*C.char) {
	for _, v := range values {
		C.free(unsafe.Pointer(v))
	}
}

// CreateTable appends a table HDU (BinaryTable or ASCIITable) with the given
// extension name and columns.
func (f *File) CreateTable(typ HDUType, extname string, cols []Column) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	if len(cols) == 0 {
		return fmt.Errorf("table %q: %w", extname, ErrNoColumns)
	}

	names := make([]string, len(cols))
	forms := make([]string, len(cols))
	units := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
		forms[i] = col.Format
		units[i] = col.Unit
	}
	ttype := cstrings(names)
	defer freeCstrings(ttype)
	tform := cstrings(forms)
	defer freeCstrings(tform)
	tunit := cstrings(units)
	defer freeCstrings(tunit)

	cext := C.CString(extname)
	defer C.free(unsafe.Pointer(cext))

	var status C.int
	C.ffcrtb(f.ptr, C.int(typ), 0, C.int(len(cols)),
		&ttype[0], &tform[0], &tunit[0], cext, &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s table %s", f.name, extname))
	}
	return nil
}

// NumRows returns the number of rows in the current table HDU.
func (f *File) NumRows() (int64, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var nrows C.LONGLONG
	var status C.int
	C.ffgnrwll(f.ptr, &nrows, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return int64(nrows), nil
}

// NumCols returns the number of columns in the current table HDU.
func (f *File) NumCols() (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var ncols, status C.int
	C.ffgncl(f.ptr, &ncols, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return int(ncols), nil
}

// ColumnNumber resolves a column name to its 1-based number. The name may
// use the usual CFITSIO wildcard template syntax; matching is
// case-insensitive.
func (f *File) ColumnNumber(name string) (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var colnum, status C.int
	C.ffgcno(f.ptr, C.CASEINSEN, cname, &colnum, &status)
	if status != 0 {
		return 0, newError(int(status), colContext(f.name, name))
	}
	return int(colnum), nil
}

// ColumnType reports the CFITSIO datatype code, vector repeat count and
// byte width of a column.
func (f *File) ColumnType(col int) (typecode int, repeat, width int64, err error) {
	if err := f.requireOpen(); err != nil {
		return 0, 0, 0, err
	}
	var tc, status C.int
	var rep, wid C.long
	C.ffgtcl(f.ptr, C.int(col), &tc, &rep, &wid, &status)
	if status != 0 {
		return 0, 0, 0, newError(int(status), fmt.Sprintf("%s col %d", f.name, col))
	}
	return int(tc), int64(rep), int64(wid), nil
}

// WriteColumn writes the slice into a column starting at the 1-based row.
// Writing past the current end of the table extends it. Supported element
// types are the sliceInfo scalars plus string and bool.
func (f *File) WriteColumn(col int, firstRow int64, data any) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	var status C.int
	switch v := data.(type) {
	case []string:
		if len(v) == 0 {
			return fmt.Errorf("empty []string: %w", ErrUnknownType)
		}
		carr := cstrings(v)
		defer freeCstrings(carr)
		C.ffpcls(f.ptr, C.int(col), C.LONGLONG(firstRow), 1,
			C.LONGLONG(len(v)), &carr[0], &status)
	case []bool:
		if len(v) == 0 {
			return fmt.Errorf("empty []bool: %w", ErrUnknownType)
		}
		carr := make([]C.char, len(v))
		for i, b := range v {
			if b {
				carr[i] = 1
			}
		}
		C.ffpcll(f.ptr, C.int(col), C.LONGLONG(firstRow), 1,
			C.LONGLONG(len(v)), &carr[0], &status)
	default:
		dtype, ptr, nelem, err := sliceInfo(data)
		if err != nil {
			return err
		}
		C.ffpcl(f.ptr, dtype, C.int(col), C.LONGLONG(firstRow), 1,
			nelem, ptr, &status)
	}
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s col %d row %d", f.name, col, firstRow))
	}
	return nil
}

// ReadColumn fills the slice from a column starting at the 1-based row,
// converting stored values to the slice's element type. The slice length
// sets how many rows are read.
func (f *File) ReadColumn(col int, firstRow int64, data any) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	switch v := data.(type) {
	case []string:
		return f.readStringColumn(col, firstRow, v)
	case []bool:
		return f.readLogicalColumn(col, firstRow, v)
	}
	dtype, ptr, nelem, err := sliceInfo(data)
	if err != nil {
		return err
	}
	var anynul, status C.int
	C.ffgcv(f.ptr, dtype, C.int(col), C.LONGLONG(firstRow), 1,
		nelem, nil, ptr, &anynul, &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s col %d row %d", f.name, col, firstRow))
	}
	return nil
}

func (f *File) readStringColumn(col int, firstRow int64, out []string) error {
	if len(out) == 0 {
		return fmt.Errorf("empty []string: %w", ErrUnknownType)
	}
	_, _, width, err := f.ColumnType(col)
	if err != nil {
		return err
	}

	// one NUL-terminated buffer per row, sized from the column width
	bufs := make([]*C.char, len(out))
	for i := range bufs {
		bufs[i] = (*C.char)(C.malloc(C.size_t(width + 1)))
	}
	defer freeCstrings(bufs)

	cnul := C.CString("")
	defer C.free(unsafe.Pointer(cnul))

	var anynul, status C.int
	C.ffgcvs(f.ptr, C.int(col), C.LONGLONG(firstRow), 1,
		C.LONGLONG(len(out)), cnul, &bufs[0], &anynul, &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s col %d row %d", f.name, col, firstRow))
	}
	for i := range out {
		out[i] = C.GoString(bufs[i])
	}
	return nil
}

func (f *File) readLogicalColumn(col int, firstRow int64, out []bool) error {
	if len(out) == 0 {
		return fmt.Errorf("empty []bool: %w", ErrUnknownType)
	}
	carr := make([]C.char, len(out))
	var anynul, status C.int
	C.ffgcvl(f.ptr, C.int(col), C.LONGLONG(firstRow), 1,
		C.LONGLONG(len(out)), 0, &carr[0], &anynul, &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s col %d row %d", f.name, col, firstRow))
	}
	for i, c := range carr {
		out[i] = c != 0
	}
	return nil
}

// InsertRows inserts blank rows after the given 1-based row (0 inserts at
// the top).
func (f *File) InsertRows(afterRow, nrows int64) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	var status C.int
	C.ffirow(f.ptr, C.LONGLONG(afterRow), C.LONGLONG(nrows), &status)
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

// DeleteRows removes nrows rows starting at the given 1-based row.
func (f *File) DeleteRows(firstRow, nrows int64) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	var status C.int
	C.ffdrow(f.ptr, C.LONGLONG(firstRow), C.LONGLONG(nrows), &status)
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

func colContext(name, col string) string {
	return fmt.Sprintf("%s col %s", name, col)
}
