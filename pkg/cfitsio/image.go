package cfitsio

// #cgo pkg-config: cfitsio
// #include "fitsio.h"
import "C"

import (
	"fmt"
	"unsafe"
)

// sliceInfo maps a Go slice onto the CFITSIO datatype code, base pointer and
// element count used by the bulk pixel and column routines. The element
// sizes are exact matches (TBYTE/TSHORT/TINT/TLONGLONG/TFLOAT/TDOUBLE), so
// no conversion buffer is needed.
func sliceInfo(data any) (C.int, unsafe.Pointer, C.LONGLONG, error) {
	switch v := data.(type) {
	case []uint8:
		if len(v) == 0 {
			return 0, nil, 0, fmt.Errorf("empty []uint8: %w", ErrUnknownType)
		}
		return C.TBYTE, unsafe.Pointer(&v[0]), C.LONGLONG(len(v)), nil
	case []int16:
		if len(v) == 0 {
			return 0, nil, 0, fmt.Errorf("empty []int16: %w", ErrUnknownType)
		}
		return C.TSHORT, unsafe.Pointer(&v[0]), C.LONGLONG(len(v)), nil
	case []int32:
		if len(v) == 0 {
			return 0, nil, 0, fmt.Errorf("empty []int32: %w", ErrUnknownType)
		}
		return C.TINT, unsafe.Pointer(&v[0]), C.LONGLONG(len(v)), nil
	case []int64:
		if len(v) == 0 {
			return 0, nil, 0, fmt.Errorf("empty []int64: %w", ErrUnknownType)
		}
		return C.TLONGLONG, unsafe.Pointer(&v[0]), C.LONGLONG(len(v)), nil
	case []float32:
		if len(v) == 0 {
			return 0, nil, 0, fmt.Errorf("empty []float32: %w", ErrUnknownType)
		}
		return C.TFLOAT, unsafe.Pointer(&v[0]), C.LONGLONG(len(v)), nil
	case []float64:
		if len(v) == 0 {
			return 0, nil, 0, fmt.Errorf("empty []float64: %w", ErrUnknownType)
		}
		return C.TDOUBLE, unsafe.Pointer(&v[0]), C.LONGLONG(len(v)), nil
	}
	return 0, nil, 0, fmt.Errorf("slice type %T: %w", data, ErrUnknownType)
}

// CreateImage appends an image HDU with the given pixel encoding and axis
// lengths. An empty naxes creates a header-only HDU, the usual form for a
// primary that exists just to carry keywords.
func (f *File) CreateImage(bitpix int, naxes []int64) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	caxes := make([]C.long, len(naxes)+1)
	for i, n := range naxes {
		caxes[i] = C.long(n)
	}
	var status C.int
	C.ffcrim(f.ptr, C.int(bitpix), C.int(len(naxes)), &caxes[0], &status)
	if status != 0 {
		return newError(int(status), f.name)
	}
	return nil
}

// ImageType returns the BITPIX encoding of the current image HDU.
func (f *File) ImageType() (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var bitpix, status C.int
	C.ffgidt(f.ptr, &bitpix, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return int(bitpix), nil
}

// ImageDims returns the number of axes of the current image HDU.
func (f *File) ImageDims() (int, error) {
	if err := f.requireOpen(); err != nil {
		return 0, err
	}
	var naxis, status C.int
	C.ffgidm(f.ptr, &naxis, &status)
	if status != 0 {
		return 0, newError(int(status), f.name)
	}
	return int(naxis), nil
}

// ImageSize returns the axis lengths of the current image HDU.
func (f *File) ImageSize() ([]int64, error) {
	naxis, err := f.ImageDims()
	if err != nil {
		return nil, err
	}
	if naxis == 0 {
		return nil, nil
	}
	caxes := make([]C.LONGLONG, naxis)
	var status C.int
	C.ffgiszll(f.ptr, C.int(naxis), &caxes[0], &status)
	if status != 0 {
		return nil, newError(int(status), f.name)
	}
	axes := make([]int64, naxis)
	for i, n := range caxes {
		axes[i] = int64(n)
	}
	return axes, nil
}

// WritePixels writes the slice into the current image HDU starting at the
// 1-based linear element position. Supported element types are uint8,
// int16, int32, int64, float32 and float64.
func (f *File) WritePixels(firstElem int64, data any) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	dtype, ptr, nelem, err := sliceInfo(data)
	if err != nil {
		return err
	}
	var status C.int
	C.ffppr(f.ptr, dtype, C.LONGLONG(firstElem), nelem, ptr, &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s pixel %d", f.name, firstElem))
	}
	return nil
}

// ReadPixels fills the slice from the current image HDU starting at the
// 1-based linear element position, converting pixels to the slice's element
// type. The slice length sets how many pixels are read.
func (f *File) ReadPixels(firstElem int64, data any) error {
	if err := f.requireOpen(); err != nil {
		return err
	}
	dtype, ptr, nelem, err := sliceInfo(data)
	if err != nil {
		return err
	}
	var anynul, status C.int
	C.ffgpv(f.ptr, dtype, C.LONGLONG(firstElem), nelem, nil, ptr, &anynul, &status)
	if status != 0 {
		return newError(int(status), fmt.Sprintf("%s pixel %d", f.name, firstElem))
	}
	return nil
}
