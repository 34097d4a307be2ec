// Package cfitsio wraps the CFITSIO library for reading and writing FITS
// files. Every operation calls straight into libcfitsio through cgo and
// blocks until the underlying I/O completes; nothing is parsed or buffered
// on the Go side.
//
// CFITSIO keeps a single process-wide error-message stack, so the package is
// not safe for unsynchronized concurrent use: callers must serialize access
// to each File, and should serialize error-producing calls across Files as
// well, or one goroutine's diagnostics can be drained by another.
package cfitsio

// #cgo pkg-config: cfitsio
// #include "fitsio.h"
import "C"

import "fmt"

// IOMode selects how an existing file is opened.
type IOMode int

const (
	ReadOnly  IOMode = C.READONLY
	ReadWrite IOMode = C.READWRITE
)

// HDUType identifies the kind of header/data unit the current HDU holds.
type HDUType int

const (
	ImageHDU    HDUType = C.IMAGE_HDU
	ASCIITable  HDUType = C.ASCII_TBL
	BinaryTable HDUType = C.BINARY_TBL
)

func (t HDUType) String() string {
	switch t {
	case ImageHDU:
		return "IMAGE"
	case ASCIITable:
		return "ASCII_TABLE"
	case BinaryTable:
		return "BINARY_TABLE"
	}
	return fmt.Sprintf("HDUType(%d)", int(t))
}

// decodeHDUType maps a native hdutype tag onto HDUType. CFITSIO only ever
// reports the three tags below; anything else is a local decoding failure,
// not a status-code failure.
func decodeHDUType(tag int) (HDUType, error) {
	switch tag {
	case C.IMAGE_HDU, C.ASCII_TBL, C.BINARY_TBL:
		return HDUType(tag), nil
	}
	return 0, fmt.Errorf("hdu type tag %d: %w", tag, ErrUnknownType)
}

// Image pixel encodings (BITPIX values).
const (
	Byte8   = C.BYTE_IMG
	Short16 = C.SHORT_IMG
	Long32  = C.LONG_IMG
	Long64  = C.LONGLONG_IMG
	Float32 = C.FLOAT_IMG
	Float64 = C.DOUBLE_IMG
)
