package defs

type FileListItem struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Date int64  `json:"date"`
}

type HDUInfo struct {
	Number  int     `json:"number"`
	Type    string  `json:"type"`
	Bitpix  int     `json:"bitpix,omitempty"`
	Axes    []int64 `json:"axes,omitempty"`
	NumRows int64   `json:"numRows,omitempty"`
	NumCols int     `json:"numCols,omitempty"`
}

type FileInfo struct {
	Path    string    `json:"path"`
	NumHDUs int       `json:"numHdus"`
	HDUs    []HDUInfo `json:"hdus"`
}

type HeaderDump struct {
	Path    string   `json:"path"`
	HDU     int      `json:"hdu"`
	Records []string `json:"records"`
}

type HeaderStreamRequest struct {
	Path string `json:"path"`
	HDU  int    `json:"hdu"`
}
