// Command scdump extracts PNG textures and decompressed tables from SC, CSV,
// KTX, and SCTX game-asset containers.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clashtools/scdump"
)

var (
	outDir  = flag.String("o", ".", "output directory")
	old     = flag.Bool("old", false, "parse chunk streams with the legacy OldDictionary string-table prologue")
	verbose = flag.Bool("verbose", false, "log per-chunk decode trace")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file [file...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts PNG textures and decompressed tables from SC/CSV/KTX/SCTX files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		processFile(log, path)
	}
}

func processFile(log *logrus.Logger, path string) {
	entry := log.WithField("file", path)

	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI-supplied positional argument
	if err != nil {
		entry.WithError(err).Error("read failed")
		return
	}

	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := filepath.Ext(path)

	paths, warnings, err := scdump.DecodeAndWriteFile(data, dir, *outDir, base, ext, scdump.Options{
		OldDictionary: *old,
		Log:           log,
	})
	for _, w := range warnings {
		entry.WithError(w).Warn("decode warning")
	}
	if err != nil {
		entry.WithError(err).Error("decode failed")
		return
	}

	for _, p := range paths {
		entry.WithField("output", p).Debug("wrote output")
	}
	entry.WithField("outputs", len(paths)).Info("decoded")
}
