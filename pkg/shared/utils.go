package helpers

import (
	"io"
	"log/slog"
)

// CloseOrLog attempts to close a resource and logs the error if it fails, useful for closing on defer
func CloseOrLog(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		slog.Error("Error closing resource", "error", err)
	}
}
