/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package export

import (
	"encoding/csv"
	"io"

	"github.com/NVIDIA/census/pkg/record"
)

// WriteCSV writes the raw record sequence as standard quoted CSV with a
// header row of the first record's field names. Values use the canonical
// string forms from the record package (Bool is "True"/"False", lists
// join on record.ListSeparator), so output is byte-stable for a fixed
// input regardless of locale. Fields missing from a record yield empty
// cells; fields the first record does not carry are not emitted.
func WriteCSV(w io.Writer, records []record.Sourced) error {
	if len(records) == 0 {
		return nil
	}

	header := records[0].Record.Names()

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, src := range records {
		for i, name := range header {
			row[i] = ""
			if v, ok := src.Record.Get(name); ok && v.Kind() != record.KindNull {
				row[i] = v.String()
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
