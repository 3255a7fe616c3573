package scdump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options configures DecodeFile. The zero value decodes a modern (non-legacy)
// chunk stream and logs to logrus.StandardLogger().
type Options struct {
	// OldDictionary enables the legacy string-table prologue (CLI --old).
	OldDictionary bool
	// Log receives diagnostics; a nil Log uses logrus.StandardLogger().
	Log *logrus.Logger
}

func (o Options) logger() *logrus.Logger {
	if o.Log != nil {
		return o.Log
	}
	return logrus.StandardLogger()
}

// DecodeFile classifies data by container kind and decodes it into zero or
// more Outputs. dir is the source file's directory and is used only to
// resolve tag-47 SCTX sibling references; baseName is the source file's stem
// and prefixes every Output's Name; sourceExt is the raw table extension used
// when writing a raw CSV output.
func DecodeFile(data []byte, dir, baseName, sourceExt string, opts Options) ([]Output, []error, error) {
	log := opts.logger()

	kind, err := Dispatch(data)
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case ContainerSC:
		_, inner, err := ParseOuterSC(data, log)
		if err != nil {
			return nil, nil, fmt.Errorf("parse outer SC: %w", err)
		}
		resolver := func(filename string) ([]byte, error) {
			return os.ReadFile(filepath.Join(dir, filename)) //nolint:gosec // filename is wire-format data scoped to the source file's own directory
		}
		outs, warnings, err := WalkChunks(inner, WalkOptions{
			OldDictionary: opts.OldDictionary,
			ResolveSCTX:   resolver,
			BaseName:      baseName,
			Log:           log,
		})
		if err != nil {
			return outs, warnings, fmt.Errorf("walk chunks: %w", err)
		}
		return outs, warnings, nil

	case ContainerCSV, ContainerSignedCSV:
		payload := data
		if kind == ContainerSignedCSV {
			if len(data) < signedCSVPrefixLen {
				return nil, nil, ErrTruncatedInput
			}
			payload = data[signedCSVPrefixLen:]
		}
		raw, err := DecompressPayload(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("decompress csv: %w", err)
		}
		return []Output{{Kind: OutputRaw, Name: baseName + sourceExt, Raw: raw}}, nil, nil

	case ContainerKTX:
		raster, err := DecodeKTX(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decode ktx: %w", err)
		}
		return []Output{{Kind: OutputPNG, Name: baseName + ".png", Raster: raster}}, nil, nil

	case ContainerSCTX:
		raster, err := DecodeSCTX(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decode sctx: %w", err)
		}
		return []Output{{Kind: OutputPNG, Name: baseName + ".png", Raster: raster}}, nil, nil

	default:
		return nil, nil, ErrUnknownContainer
	}
}

// DecodeAndWriteFile runs DecodeFile on data and writes every resulting
// Output under outDir, deriving each filename from baseName. It returns the
// paths written alongside the same non-fatal warnings DecodeFile produced.
func DecodeAndWriteFile(data []byte, srcDir, outDir, baseName, sourceExt string, opts Options) ([]string, []error, error) {
	outs, warnings, err := DecodeFile(data, srcDir, baseName, sourceExt, opts)
	if err != nil {
		return nil, warnings, err
	}

	paths := make([]string, 0, len(outs))
	for _, out := range outs {
		path, err := WriteOutput(outDir, out)
		if err != nil {
			return paths, warnings, fmt.Errorf("write output: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, warnings, nil
}
