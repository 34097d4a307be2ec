package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/spf13/pflag"

	"github.com/CARTAvis/go-fits/pkg/cfitsio"
	"github.com/CARTAvis/go-fits/pkg/config"
	helpers "github.com/CARTAvis/go-fits/pkg/shared"
	"github.com/CARTAvis/go-fits/pkg/shared/defs"
	"github.com/CARTAvis/go-fits/services/fits-serve/internal/fileBrowse"
	"github.com/CARTAvis/go-fits/services/fits-serve/internal/httpHelpers"
)

var upgrader = websocket.Upgrader{
	// Ignore Origin header
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func main() {
	logger := helpers.NewLogger("fits-serve", "info")
	slog.SetDefault(logger)

	id := uuid.New()
	slog.Info("Starting FITS server", "uuid", id.String())

	pflag.String("config", "", "Path to config file (default: ./config.toml)")
	pflag.String("log_level", "info", "Log level (debug|info|warn|error)")
	pflag.Int("port", 8080, "HTTP server port")
	pflag.String("hostname", "", "Hostname to listen on")
	pflag.String("base_folder", "", "Folder that FITS files are served from")
	pflag.String("override", "", "Override simple config values (string, int, bool) as comma-separated key:value pairs (e.g., serve.port:9000,log_level:debug)")

	pflag.Parse()

	config.BindFlags(map[string]string{
		"log_level":   "log_level",
		"port":        "serve.port",
		"hostname":    "serve.hostname",
		"base_folder": "serve.base_folder",
	})

	cfg := config.Load(pflag.Lookup("config").Value.String(), pflag.Lookup("override").Value.String())

	// Update the logger to use the configured log level
	logger = helpers.NewLogger("fits-serve", cfg.LogLevel)
	slog.SetDefault(logger)

	// Default the base folder to $HOME if unset
	baseFolder := cfg.Serve.BaseFolder
	if len(strings.TrimSpace(baseFolder)) == 0 {
		dirname, err := os.UserHomeDir()
		if err != nil {
			dirname = "/"
		}
		baseFolder = dirname
	}
	slog.Info("Serving FITS files", "baseFolder", baseFolder)

	r := chi.NewRouter()

	// List FITS files in a folder
	r.Get("/api/files", func(w http.ResponseWriter, r *http.Request) {
		dir := fileBrowse.Resolve(baseFolder, r.URL.Query().Get("dir"))
		items, err := fileBrowse.ListFITS(dir)
		if err != nil {
			slog.Error("Error listing folder", "dir", dir, "error", err)
			httpHelpers.WriteError(w, http.StatusNotFound, "Error listing folder")
			return
		}
		httpHelpers.WriteOutput(w, items)
	})

	// Summarize every HDU of one file
	r.Get("/api/file/info", func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		full := fileBrowse.Resolve(baseFolder, path)

		start := time.Now()
		info, err := describeFile(full)
		elapsed := time.Since(start)
		if err != nil {
			slog.Error("Error describing file", "path", full, "error", err)
			writeFitsError(w, err)
			return
		}
		info.Path = path

		httpHelpers.WriteTimings(w, httpHelpers.Timings{"describe-time": elapsed})
		httpHelpers.WriteOutput(w, info)
	})

	// Dump the full header of one HDU
	r.Get("/api/file/header", func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		hdu, err := strconv.Atoi(r.URL.Query().Get("hdu"))
		if err != nil || hdu < 1 {
			hdu = 1
		}
		full := fileBrowse.Resolve(baseFolder, path)

		start := time.Now()
		records, err := readHeader(full, hdu)
		elapsed := time.Since(start)
		if err != nil {
			slog.Error("Error reading header", "path", full, "hdu", hdu, "error", err)
			writeFitsError(w, err)
			return
		}

		httpHelpers.WriteTimings(w, httpHelpers.Timings{"header-time": elapsed})
		httpHelpers.WriteOutput(w, defs.HeaderDump{Path: path, HDU: hdu, Records: records})
	})

	// WebSocket endpoint streaming header cards one frame at a time
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("Upgrade failed", "error", err)
			return
		}
		slog.Info("Client connected")
		defer helpers.CloseOrLog(c)

		for {
			messageType, message, err := c.ReadMessage()
			if err != nil {
				slog.Info("Client disconnected", "error", err)
				break
			}

			// Ping/pong sequence
			if messageType == websocket.TextMessage && string(message) == "PING" {
				if err := c.WriteMessage(websocket.TextMessage, []byte("PONG")); err != nil {
					slog.Error("Failed to send pong message", "error", err)
				}
				continue
			}

			if messageType != websocket.TextMessage {
				slog.Info("Ignoring non-text message")
				continue
			}

			var req defs.HeaderStreamRequest
			if err := json.Unmarshal(message, &req); err != nil {
				slog.Error("Invalid header stream request", "error", err)
				writeWsError(c, err)
				continue
			}
			if err := streamHeader(c, baseFolder, req); err != nil {
				slog.Error("Failed to stream header", "path", req.Path, "error", err)
				writeWsError(c, err)
			}
		}
	})

	addr := fmt.Sprintf("%s:%d", cfg.Serve.Hostname, cfg.Serve.Port)
	slog.Info("Listening", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// fitsMu serializes all CFITSIO work across handlers. Each request opens
// its own handle, but the library's diagnostic stack is process-wide, so
// two failing requests running at once would drain each other's messages.
var fitsMu sync.Mutex

// describeFile opens a FITS file read-only and summarizes each HDU.
func describeFile(full string) (*defs.FileInfo, error) {
	fitsMu.Lock()
	defer fitsMu.Unlock()

	f, err := cfitsio.Open(full, cfitsio.ReadOnly)
	if err != nil {
		return nil, err
	}
	defer helpers.CloseOrLog(f)

	n, err := f.NumHDUs()
	if err != nil {
		return nil, err
	}

	info := &defs.FileInfo{NumHDUs: n}
	for i := 1; i <= n; i++ {
		typ, err := f.MoveAbsHDU(i)
		if err != nil {
			return nil, err
		}
		hdu := defs.HDUInfo{Number: i, Type: typ.String()}
		switch typ {
		case cfitsio.ImageHDU:
			if hdu.Bitpix, err = f.ImageType(); err != nil {
				return nil, err
			}
			if hdu.Axes, err = f.ImageSize(); err != nil {
				return nil, err
			}
		default:
			if hdu.NumRows, err = f.NumRows(); err != nil {
				return nil, err
			}
			if hdu.NumCols, err = f.NumCols(); err != nil {
				return nil, err
			}
		}
		info.HDUs = append(info.HDUs, hdu)
	}
	return info, nil
}

// readHeader returns every card of one HDU.
func readHeader(full string, hdu int) ([]string, error) {
	fitsMu.Lock()
	defer fitsMu.Unlock()

	f, err := cfitsio.Open(full, cfitsio.ReadOnly)
	if err != nil {
		return nil, err
	}
	defer helpers.CloseOrLog(f)

	if _, err := f.MoveAbsHDU(hdu); err != nil {
		return nil, err
	}
	n, err := f.NumKeys()
	if err != nil {
		return nil, err
	}
	records := make([]string, 0, n)
	for i := 0; i < n; i++ {
		card, err := f.ReadRecord(i)
		if err != nil {
			return nil, err
		}
		records = append(records, card)
	}
	return records, nil
}

// streamHeader sends one text frame per header card, then an END frame.
func streamHeader(c *websocket.Conn, baseFolder string, req defs.HeaderStreamRequest) error {
	hdu := req.HDU
	if hdu < 1 {
		hdu = 1
	}
	records, err := readHeader(fileBrowse.Resolve(baseFolder, req.Path), hdu)
	if err != nil {
		return err
	}
	for _, card := range records {
		if err := c.WriteMessage(websocket.TextMessage, []byte(card)); err != nil {
			return err
		}
	}
	return c.WriteMessage(websocket.TextMessage, []byte("END"))
}

// writeFitsError surfaces the CFITSIO code, message and diagnostic stack in
// the JSON error body. Files the library could not open map to 404.
func writeFitsError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := map[string]any{"msg": err.Error()}

	var ferr *cfitsio.Error
	if errors.As(err, &ferr) {
		body["code"] = ferr.Code
		if len(ferr.Stack) > 0 {
			body["stack"] = ferr.Stack
		}
		if ferr.Code == cfitsio.StatusFileNotOpened {
			status = http.StatusNotFound
		}
	}
	httpHelpers.WriteJSON(w, status, body)
}

func writeWsError(c *websocket.Conn, err error) {
	if werr := c.WriteMessage(websocket.TextMessage, []byte("ERROR "+err.Error())); werr != nil {
		slog.Error("Failed to send error message", "error", werr)
	}
}
