package cfitsio

// #cgo pkg-config: cfitsio
// #include <stdlib.h>
// #include "fitsio.h"
import "C"

import (
	"fmt"
	"unsafe"
)

// NumHDUs returns the total number of HDUs in the file.
func (f *File) NumHDUs() (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var n, status C.int
	C.ffthdu(f.ptr, &n, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return int(n), nil
}

// CurrentHDU returns the 1-based number of the current HDU.
func (f *File) CurrentHDU() (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var n C.int
	C.ffghdn(f.ptr, &n)
	return int(n), nil
}

// MoveAbsHDU moves to the HDU with the given 1-based number and reports its
// type.
func (f *File) MoveAbsHDU(hdu int) (HDUType, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var tag, status C.int
	C.ffmahd(f.ptr, C.int(hdu), &tag, &status)
	if status != 0 {
		return 0, newError(int(status), fmt.Sprintf("%s hdu %d", f.name, hdu))
	}
	return decodeHDUType(int(tag))
}

// MoveRelHDU moves forward or backward by n HDUs and reports the type of
// the HDU it lands on.
func (f *File) MoveRelHDU(n int) (HDUType, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var tag, status C.int
	C.ffmrhd(f.ptr, C.int(n), &tag, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return decodeHDUType(int(tag))
}

// MoveNamedHDU moves to the HDU matching the given type, EXTNAME and EXTVER.
// An extver of 0 matches any version.
func (f *File) MoveNamedHDU(typ HDUType, extname string, extver int) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	cname := C.CString(extname)
	defer C.free(unsafe.Pointer(cname))

	var status C.int
	C.ffmnhd(f.ptr, C.int(typ), cname, C.int(extver), &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s ext %s", f.name, extname))
	}
	return nil
}

// HDUType reports the type of the current HDU.
func (f *File) HDUType() (HDUType, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var tag, status C.int
	C.ffghdt(f.ptr, &tag, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return decodeHDUType(int(tag))
}
