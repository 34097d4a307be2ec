package cfitsio

// #cgo pkg-config: cfitsio
// #include <stdlib.h>
// #include "fitsio.h"
import "C"

import (
	"strings"
	"unsafe"
)

// File is an open FITS file. It owns the underlying fitsfile pointer
// exclusively: once Close or Delete has run, the handle is permanently dead
// and the file must be reopened through Open or Create to get a fresh one.
type File struct {
	ptr  *C.fitsfile
	name string
	open bool
}

// Name returns the path the file was opened or created with.
func (f *File) Name() string {
	return f.name
}

// IsOpen reports whether the handle still owns a live native resource.
func (f *File) IsOpen() bool {
	return f != nil && f.open
}

// requireOpen guards every operation that touches the native handle. It
// must run before the first C call in each method so a closed or zero-value
// File never reaches the library.
func (f *File) requireOpen() error {
	if f == nil || !f.open {
		name := ""
		if f != nil {
			name = f.name
		}
		return notOpenError(name)
	}
	return nil
}

// Open opens an existing FITS file.
func Open(name string, mode IOMode) (*File, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	f := &File{name: name}
	var status C.int
	C.ffopen(&f.ptr, cname, C.int(mode), &status)
	if status != 0 {
		return nil, newError(int(status), name)
	}
	f.open = true
	return f, nil
}

// Create creates a new FITS file, replacing any existing file at the same
// path. CFITSIO signals overwrite with a "!" path prefix; Create adds it
// unless the caller already did.
func Create(name string) (*File, error) {
	spec := name
	if !strings.HasPrefix(spec, "!") {
		spec = "!" + spec
	}
	return create(spec, strings.TrimPrefix(name, "!"))
}

// CreateNoClobber creates a new FITS file, failing if the path already
// exists.
func CreateNoClobber(name string) (*File, error) {
	return create(name, name)
}

func create(spec, name string) (*File, error) {
	cspec := C.CString(spec)
	defer C.free(unsafe.Pointer(cspec))

	f := &File{name: name}
	var status C.int
	C.ffinit(&f.ptr, cspec, &status)
	if status != 0 {
		return nil, newError(int(status), name)
	}
	f.open = true
	return f, nil
}

// Close releases the native resource. The handle is marked closed even when
// the native close fails: the resource is unusable either way, and the
// error tells the caller the flush-out may not have completed. A second
// Close fails with ErrFileNotOpen.
func (f *File) Close() error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	var status C.int
	C.ffclos(f.ptr, &status)
	f.ptr = nil
	f.open = false
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

// Delete closes the handle and removes the backing file. Like Close, the
// handle is dead afterwards whether or not the native call succeeded.
func (f *File) Delete() error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	var status C.int
	C.ffdelt(f.ptr, &status)
	f.ptr = nil
	f.open = false
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}
