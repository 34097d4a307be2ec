package cfitsio

// #cgo pkg-config: cfitsio
// #include <stdlib.h>
// #include "fitsio.h"
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrFileNotOpen reports an operation on a File that was never opened,
	// or was already closed or deleted. It is raised before any native call
	// is made, so a released fitsfile pointer is never dereferenced.
	ErrFileNotOpen = errors.New("cfitsio: file not open")

	// ErrUnknownType reports a Go value or native type tag that has no
	// mapping in this package. It is a local decoding failure and carries
	// no CFITSIO status code.
	ErrUnknownType = errors.New("cfitsio: unsupported type")

	// ErrNoColumns reports a table creation request with an empty column
	// list, rejected locally before the native layer is reached.
	ErrNoColumns = errors.New("cfitsio: table needs at least one column")
)

// StatusFileNotOpened is the CFITSIO code surfaced alongside ErrFileNotOpen,
// kept so callers matching on numeric codes see the same value the library
// itself uses for "could not open the named file".
const StatusFileNotOpened = C.FILE_NOT_OPENED

// Error is a failure reported by CFITSIO. It is built once at the failure
// site and never mutated: Code and Message come from the status value, and
// Stack holds every pending message drained from the library's global
// error stack, oldest first.
type Error struct {
	Code    int
	Message string
	Stack   []string

	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cfitsio: status %d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Status extracts the CFITSIO status code from err, if it carries one.
func Status(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// statusText returns the short description CFITSIO associates with a
// status code.
func statusText(status int) string {
	var text [C.FLEN_STATUS]C.char
	C.ffgerr(C.int(status), &text[0])
	return C.GoString(&text[0])
}

// drainMessages pops every message off the global CFITSIO error stack, in
// the order the library queued them. The stack must always end up empty so
// a later unrelated failure does not inherit stale diagnostics; the message
// count is unknown up front, so the slice grows until ffgmsg reports
// exhaustion.
func drainMessages() []string {
	var msgs []string
	var buf [C.FLEN_ERRMSG]C.char
	for C.ffgmsg(&buf[0]) != 0 {
		msgs = append(msgs, C.GoString(&buf[0]))
	}
	return msgs
}

// pushMessage queues a message on the global CFITSIO error stack.
func pushMessage(msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.ffpmsg(cmsg)
}

// clearMessages discards all pending messages on the global error stack.
func clearMessages() {
	C.ffcmsg()
}

// newError translates a nonzero status into an Error, appending the context
// label to the library's short description and draining the error stack.
func newError(status int, context string) *Error {
	msg := statusText(status)
	if context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, context)
	}
	return &Error{Code: status, Message: msg, Stack: drainMessages()}
}

// notOpenError builds the use-before-open failure. The kind is the distinct
// ErrFileNotOpen sentinel; the numeric code mirrors what CFITSIO reports for
// open failures so status matching still behaves.
func notOpenError(name string) *Error {
	msg := "file not opened"
	if name != "" {
		msg = fmt.Sprintf("%s (%s)", msg, name)
	}
	return &Error{Code: StatusFileNotOpened, Message: msg, err: ErrFileNotOpen}
}
