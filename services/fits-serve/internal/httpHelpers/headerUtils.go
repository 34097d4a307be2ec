package httpHelpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Timings maps a phase label ("describe-time", "header-time") to how long
// the CFITSIO work behind one response took.
type Timings map[string]time.Duration

// WriteTimings reports the phases as a Server-Timing header so clients can
// see how much of a request was spent inside the native library.
func WriteTimings(w http.ResponseWriter, timings Timings) {
	timingEntries := make([]string, 0, len(timings))
	for k, v := range timings {
		timingEntries = append(timingEntries, fmt.Sprintf("%s;dur=%.2f", k, v.Seconds()*1000.0))
	}
	w.Header().Set("Server-Timing", strings.Join(timingEntries, ","))
}
