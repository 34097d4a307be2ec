package fileBrowse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CARTAvis/go-fits/pkg/shared/defs"
)

var fitsExtensions = []string{".fits", ".fit", ".fts", ".fits.gz", ".fz"}

// IsFITS reports whether a file name looks like a FITS file.
func IsFITS(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range fitsExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Resolve maps a client-supplied relative path onto the base folder. The
// path is rooted before joining, so ".." segments cannot escape the base.
func Resolve(baseFolder, rel string) string {
	return filepath.Join(baseFolder, filepath.Clean("/"+rel))
}

// ListFITS returns the FITS files directly inside a directory.
func ListFITS(dir string) ([]defs.FileListItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	items := []defs.FileListItem{}
	for _, entry := range entries {
		if entry.IsDir() || !IsFITS(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		items = append(items, defs.FileListItem{
			Name: entry.Name(),
			Size: info.Size(),
			Date: info.ModTime().Unix(),
		})
	}
	return items, nil
}
