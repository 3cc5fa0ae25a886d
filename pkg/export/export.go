/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	cerrors "github.com/NVIDIA/census/pkg/errors"
	"github.com/NVIDIA/census/pkg/record"
	"github.com/NVIDIA/census/pkg/table"
)

// Fixed per-format suffixes appended to the output base name.
const (
	SuffixHTML = ".html"
	SuffixCSV  = ".csv"
	SuffixList = ".txt"
)

// Options selects the export formats and the output base name. Each
// format is independent and any combination may be enabled at once.
type Options struct {
	HTML bool
	CSV  bool
	List bool

	// Base is the caller-supplied output base name; targets are derived
	// deterministically as Base plus the per-format suffix.
	Base string
}

// Enabled reports whether any format is selected.
func (o Options) Enabled() bool {
	return o.HTML || o.CSV || o.List
}

// Files returns the target paths for the enabled formats.
func (o Options) Files() []string {
	var files []string
	if o.HTML {
		files = append(files, o.Base+SuffixHTML)
	}
	if o.CSV {
		files = append(files, o.Base+SuffixCSV)
	}
	if o.List {
		files = append(files, o.Base+SuffixList)
	}
	return files
}

// Run writes every enabled format. The HTML export reads the normalized
// table; CSV and the flat listing read the raw record sequence. A write
// failure in one format is contained to that format: the remaining
// formats are still attempted and the per-format errors are joined.
func Run(opts Options, t *table.Table, records []record.Sourced) error {
	var errs []error

	if opts.HTML {
		path := opts.Base + SuffixHTML
		if err := createAndWrite(path, func(w io.Writer) error {
			return WriteHTML(w, t, DocumentTitle(opts.Base))
		}); err != nil {
			slog.Error("html export failed", "path", path, "error", err)
			errs = append(errs, cerrors.WrapWithContext(cerrors.ErrCodeExportWrite,
				"html export failed", err, map[string]any{"path": path}))
		} else {
			slog.Info("wrote export", "format", "html", "path", path)
		}
	}

	if opts.CSV {
		path := opts.Base + SuffixCSV
		if err := createAndWrite(path, func(w io.Writer) error {
			return WriteCSV(w, records)
		}); err != nil {
			slog.Error("csv export failed", "path", path, "error", err)
			errs = append(errs, cerrors.WrapWithContext(cerrors.ErrCodeExportWrite,
				"csv export failed", err, map[string]any{"path": path}))
		} else {
			slog.Info("wrote export", "format", "csv", "path", path)
		}
	}

	if opts.List {
		path := opts.Base + SuffixList
		if err := AppendListing(path, records); err != nil {
			slog.Error("listing export failed", "path", path, "error", err)
			errs = append(errs, cerrors.WrapWithContext(cerrors.ErrCodeExportWrite,
				"listing export failed", err, map[string]any{"path": path}))
		} else {
			slog.Info("wrote export", "format", "list", "path", path)
		}
	}

	return errors.Join(errs...)
}

func createAndWrite(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// errWriter tracks the first write error so format writers can stay
// readable without checking every print.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
