package cfitsio

// #cgo pkg-config: cfitsio
// #include <stdlib.h>
// #include "fitsio.h"
import "C"

import (
	"fmt"
	"unsafe"
)

// NumKeys returns the number of keyword records in the current HDU header,
// excluding the END card.
func (f *File) NumKeys() (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var nkeys, status C.int
	C.ffghsp(f.ptr, &nkeys, nil, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return int(nkeys), nil
}

// ReadRecord returns the i-th 80-character header card of the current HDU.
// Note: zero-indexed, while fits_read_record is 1-indexed.
func (f *File) ReadRecord(i int) (string, error) {
	if err := f.requireOpen(); err != nil {
		return "", err
	}
	var card [C.FLEN_CARD]C.char
	var status C.int
	C.ffgrec(f.ptr, C.int(i+1), &card[0], &status)
	if status != 0 {
		return "", newError(int(status), fmt.Sprintf("%s record %d", f.name, i))
	}
	return C.GoString(&card[0]), nil
}

// ReadKey returns the raw value string and comment of a keyword.
func (f *File) ReadKey(key string) (value, comment string, err error) {
	if err := f.requireOpen(); err != nil {
		return "", "", err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var cvalue [C.FLEN_VALUE]C.char
	var ccomm [C.FLEN_COMMENT]C.char
	var status C.int
	C.ffgkey(f.ptr, ckey, &cvalue[0], &ccomm[0], &status)
	if status != 0 {
		return "", "", newError(int(status), keyContext(f.name, key))
	}
	return C.GoString(&cvalue[0]), C.GoString(&ccomm[0]), nil
}

// ReadKeyString returns the value of a string keyword.
func (f *File) ReadKeyString(key string) (string, error) {
	if err := f.requireOpen(); err != nil {
		return "", err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var cvalue [C.FLEN_VALUE]C.char
	var status C.int
	C.ffgkys(f.ptr, ckey, &cvalue[0], nil, &status)
	if status != 0 {
		return "", newError(int(status), keyContext(f.name, key))
	}
	return C.GoString(&cvalue[0]), nil
}

// ReadKeyLogical returns the value of a logical (T/F) keyword.
func (f *File) ReadKeyLogical(key string) (bool, error) {
	if err := f.requireOpen(); err != nil {
		return false, err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var cvalue, status C.int
	C.ffgkyl(f.ptr, ckey, &cvalue, nil, &status)
	if status != 0 {
		return false, newError(int(status), keyContext(f.name, key))
	}
	return cvalue != 0, nil
}

// ReadKeyInt returns the value of an integer keyword.
func (f *File) ReadKeyInt(key string) (int64, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var cvalue C.LONGLONG
	var status C.int
	C.ffgkyjj(f.ptr, ckey, &cvalue, nil, &status)
	if status != 0 {
		return 0, newError(int(status), keyContext(f.name, key))
	}
	return int64(cvalue), nil
}

// ReadKeyFloat returns the value of a floating-point keyword.
func (f *File) ReadKeyFloat(key string) (float64, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var cvalue C.double
	var status C.int
	C.ffgkyd(f.ptr, ckey, &cvalue, nil, &status)
	if status != 0 {
		return 0, newError(int(status), keyContext(f.name, key))
	}
	return float64(cvalue), nil
}

// WriteKey appends a keyword with a value of any supported scalar type:
// string, bool, int variants, float32 or float64. Other types fail with
// ErrUnknownType.
func (f *File) WriteKey(key string, value any, comment string) error {
	switch v := value.(type) {
	case string:
		return f.WriteKeyString(key, v, comment)
	case bool:
		return f.WriteKeyLogical(key, v, comment)
	case int:
		return f.WriteKeyInt(key, int64(v), comment)
	case int32:
		return f.WriteKeyInt(key, int64(v), comment)
	case int64:
		return f.WriteKeyInt(key, v, comment)
	case float32:
		return f.WriteKeyFloat(key, float64(v), comment)
	case float64:
		return f.WriteKeyFloat(key, v, comment)
	}
	return fmt.Errorf("keyword %q value %T: %w", key, value, ErrUnknownType)
}

// WriteKeyString appends a string keyword.
func (f *File) WriteKeyString(key, value, comment string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))
	ccomm := C.CString(comment)
	defer C.free(unsafe.Pointer(ccomm))

	var status C.int
	C.ffpkys(f.ptr, ckey, cvalue, ccomm, &status)
	if status != 0 {
		return newError(int(status), keyContext(f.name, key))
	}
	return nil
}

// WriteKeyLogical appends a logical (T/F) keyword.
func (f *File) WriteKeyLogical(key string, value bool, comment string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	ccomm := C.CString(comment)
	defer C.free(unsafe.Pointer(ccomm))

	cvalue := C.int(0)
	if value {
		cvalue = 1
	}
	var status C.int
	C.ffpkyl(f.ptr, ckey, cvalue, ccomm, &status)
	if status != 0 {
		return newError(int(status), keyContext(f.name, key))
	}
	return nil
}

// WriteKeyInt appends an integer keyword.
func (f *File) WriteKeyInt(key string, value int64, comment string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	ccomm := C.CString(comment)
	defer C.free(unsafe.Pointer(ccomm))

	var status C.int
	C.ffpkyj(f.ptr, ckey, C.LONGLONG(value), ccomm, &status)
	if status != 0 {
		return newError(int(status), keyContext(f.name, key))
	}
	return nil
}

// WriteKeyFloat appends a floating-point keyword with full precision.
func (f *File) WriteKeyFloat(key string, value float64, comment string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	ccomm := C.CString(comment)
	defer C.free(unsafe.Pointer(ccomm))

	var status C.int
	C.ffpkyd(f.ptr, ckey, C.double(value), -15, ccomm, &status)
	if status != 0 {
		return newError(int(status), keyContext(f.name, key))
	}
	return nil
}

// UpdateKey writes a keyword, replacing an existing record with the same
// name or appending a new one. Accepts the same value types as WriteKey.
func (f *File) UpdateKey(key string, value any, comment string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	ccomm := C.CString(comment)
	defer C.free(unsafe.Pointer(ccomm))

	var status C.int
	switch v := value.(type) {
	case string:
		cvalue := C.CString(v)
		defer C.free(unsafe.Pointer(cvalue))
		C.ffukys(f.ptr, ckey, cvalue, ccomm, &status)
	case bool:
		cvalue := C.int(0)
		if v {
			cvalue = 1
		}
		C.ffukyl(f.ptr, ckey, cvalue, ccomm, &status)
	case int:
		C.ffukyj(f.ptr, ckey, C.LONGLONG(v), ccomm, &status)
	case int32:
		C.ffukyj(f.ptr, ckey, C.LONGLONG(v), ccomm, &status)
	case int64:
		C.ffukyj(f.ptr, ckey, C.LONGLONG(v), ccomm, &status)
	case float32:
		C.ffukyd(f.ptr, ckey, C.double(v), -15, ccomm, &status)
	case float64:
		C.ffukyd(f.ptr, ckey, C.double(v), -15, ccomm, &status)
	default:
		return fmt.Errorf("keyword %q value %T: %w", key, value, ErrUnknownType)
	}
	if status != 0 {
		return newError(int(status), keyContext(f.name, key))
	}
	return nil
}

// DeleteKey removes a keyword record from the current HDU header.
func (f *File) DeleteKey(key string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var status C.int
	C.ffdkey(f.ptr, ckey, &status)
	if status != 0 {
		return newError(int(status), keyContext(f.name, key))
	}
	return nil
}

// WriteComment appends a COMMENT record.
func (f *File) WriteComment(text string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	var status C.int
	C.ffpcom(f.ptr, ctext, &status)
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

// WriteHistory appends a HISTORY record.
func (f *File) WriteHistory(text string) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	var status C.int
	C.ffphis(f.ptr, ctext, &status)
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

// WriteDate writes or updates the DATE keyword with the current UTC time.
func (f *File) WriteDate() error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	var status C.int
	C.ffpdat(f.ptr, &status)
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

func keyContext(name, key string) string {
	return fmt.Sprintf("%s key %s", name, key)
}
