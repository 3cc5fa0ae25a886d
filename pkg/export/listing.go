/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package export

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/NVIDIA/census/pkg/record"
)

// WriteListing writes human-readable "field : value" blocks, one block
// per record, with a blank line between blocks. Field names within a
// block are padded to the widest name so values line up.
func WriteListing(w io.Writer, records []record.Sourced) error {
	ew := &errWriter{w: w}

	for i, src := range records {
		if i > 0 {
			ew.printf("\n")
		}

		width := 0
		for _, f := range src.Record.Fields() {
			if fw := runewidth.StringWidth(f.Name); fw > width {
				width = fw
			}
		}

		for _, f := range src.Record.Fields() {
			pad := strings.Repeat(" ", width-runewidth.StringWidth(f.Name))
			ew.printf("%s%s : %s\n", f.Name, pad, f.Value.String())
		}
	}

	return ew.err
}

// AppendListing appends the listing to the target file, creating it if
// needed. Appending rather than overwriting preserves output from prior
// runs against the same base name.
func AppendListing(path string, records []record.Sourced) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := WriteListing(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
