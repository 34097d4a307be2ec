package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/CARTAvis/go-fits/pkg/cfitsio"
	helpers "github.com/CARTAvis/go-fits/pkg/shared"
)

var (
	hdu      = pflag.Int("hdu", 0, "HDU to print (0 prints every HDU)")
	logLevel = pflag.String("log_level", "info", "Log level (debug|info|warn|error)")
)

func main() {
	pflag.Parse()

	logger := helpers.NewLogger("fits-head", *logLevel)
	slog.SetDefault(logger)

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fits-head [--hdu N] <file.fits>")
		os.Exit(2)
	}
	name := pflag.Arg(0)

	f, err := cfitsio.Open(name, cfitsio.ReadOnly)
	if err != nil {
		slog.Error("Failed to open file", "file", name, "error", err)
		os.Exit(1)
	}
	defer helpers.CloseOrLog(f)

	first, last := 1, 1
	if *hdu > 0 {
		first, last = *hdu, *hdu
	} else {
		n, err := f.NumHDUs()
		if err != nil {
			slog.Error("Failed to count HDUs", "file", name, "error", err)
			os.Exit(1)
		}
		last = n
	}

	for i := first; i <= last; i++ {
		typ, err := f.MoveAbsHDU(i)
		if err != nil {
			slog.Error("Failed to move to HDU", "hdu", i, "error", err)
			os.Exit(1)
		}
		fmt.Printf("# HDU %d (%s)\n", i, typ)

		n, err := f.NumKeys()
		if err != nil {
			slog.Error("Failed to count header keys", "hdu", i, "error", err)
			os.Exit(1)
		}
		for j := 0; j < n; j++ {
			card, err := f.ReadRecord(j)
			if err != nil {
				slog.Error("Failed to read header record", "record", j, "error", err)
				os.Exit(1)
			}
			fmt.Println(card)
		}
	}
}
