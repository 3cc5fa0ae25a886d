// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/NVIDIA/census/pkg/record"
)

// Column is a table column definition: a field name and the kind every
// cell in the column is coerced toward.
type Column struct {
	Name string      `json:"name" yaml:"name"`
	Kind record.Kind `json:"kind" yaml:"kind"`
}

// Row is a fixed-width sequence of cells aligned to the table columns.
// A nil cell is absent. Host is bookkeeping metadata identifying the
// originating host; it is never emitted as a data column.
type Row struct {
	Host  string
	Cells []record.Value
}

// Table is the normalized tabular form of a record sequence. It is
// immutable after Build and safe for concurrent readers.
type Table struct {
	Columns []Column
	Rows    []Row
}

// Options controls schema inference.
type Options struct {
	// DefaultKind is assigned to a column whose first observed value is
	// not a scalar (a null or a list). Empty or non-scalar values fall
	// back to String.
	DefaultKind record.Kind

	// UnionSchema widens the schema to the union of all field names seen
	// across the input instead of the first record only. The default is
	// off: the first record defines the schema, and fields first seen
	// later are dropped. That restriction matches the historical
	// behavior and is deliberate.
	UnionSchema bool
}

// Build normalizes an ordered record sequence into a Table.
//
// The first record fixes the column set and order; each column's kind is
// the kind of that field's first value when scalar, otherwise
// DefaultKind. Every record then yields one row aligned to the fixed
// columns: missing fields and failed coercions become absent cells, list
// values flatten to their canonical string form, and a malformed record
// is logged and skipped without aborting the build.
//
// Build is a pure function of the input order: the same sequence always
// produces an identical table, and reordering the input can legitimately
// change inferred column kinds.
func Build(records []record.Sourced, opts Options) *Table {
	def := opts.DefaultKind
	if !def.Scalar() {
		def = record.KindString
	}

	t := &Table{}
	index := make(map[string]int)

	addColumns := func(r *record.Record) {
		for _, f := range r.Fields() {
			if _, seen := index[f.Name]; seen {
				continue
			}
			kind := f.Value.Kind()
			if !kind.Scalar() {
				kind = def
			}
			index[f.Name] = len(t.Columns)
			t.Columns = append(t.Columns, Column{Name: f.Name, Kind: kind})
		}
	}

	// Fix the schema before building any row so every row has the same
	// width regardless of mode.
	for _, src := range records {
		if src.Record.Len() == 0 {
			continue
		}
		addColumns(src.Record)
		if !opts.UnionSchema {
			break
		}
	}

	for _, src := range records {
		if src.Record.Len() == 0 {
			slog.Warn("skipping record with no fields", "host", src.Host)
			continue
		}

		cells := make([]record.Value, len(t.Columns))
		for i, col := range t.Columns {
			v, ok := src.Record.Get(col.Name)
			if !ok {
				continue
			}
			cells[i] = cell(v, col.Kind)
		}
		t.Rows = append(t.Rows, Row{Host: src.Host, Cells: cells})
	}

	return t
}

// Hosts returns the distinct row hosts in first-appearance order.
func (t *Table) Hosts() []string {
	seen := make(map[string]bool)
	hosts := make([]string, 0)
	for _, row := range t.Rows {
		if seen[row.Host] {
			continue
		}
		seen[row.Host] = true
		hosts = append(hosts, row.Host)
	}
	return hosts
}

// cell converts one field value into a cell of the given column kind.
// Lists flatten to text, matching kinds pass through, everything else is
// coerced best-effort with failure yielding an absent cell.
func cell(v record.Value, kind record.Kind) record.Value {
	switch {
	case v == nil, v.Kind() == record.KindNull:
		return nil
	case v.Kind() == record.KindList:
		return record.Str(v.String())
	case v.Kind() == kind:
		return v
	default:
		return coerce(v, kind)
	}
}

func coerce(v record.Value, kind record.Kind) record.Value {
	switch kind {
	case record.KindString:
		return record.Str(v.String())

	case record.KindBool:
		switch val := v.Any().(type) {
		case string:
			if b, err := strconv.ParseBool(val); err == nil {
				return record.Bool(b)
			}
		case int64:
			return record.Bool(val != 0)
		}

	case record.KindInt:
		switch val := v.Any().(type) {
		case float64:
			if val == float64(int64(val)) {
				return record.Int(int64(val))
			}
		case string:
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				return record.Int(n)
			}
		case bool:
			if val {
				return record.Int(1)
			}
			return record.Int(0)
		}

	case record.KindFloat:
		switch val := v.Any().(type) {
		case int64:
			return record.Float(float64(val))
		case string:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return record.Float(f)
			}
		}

	case record.KindTime:
		if s, ok := v.Any().(string); ok {
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				return record.Time(ts)
			}
		}

	case record.KindBytes:
		if s, ok := v.Any().(string); ok {
			return record.Bytes([]byte(s))
		}
	}

	return nil
}
