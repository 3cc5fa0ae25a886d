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

package record

import (
	"bytes"
	"encoding/json"
	"time"
)

// Field is a single named value within a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered mapping from field name to a tagged Value.
// Field order is insertion order and is preserved through serialization.
// Records from different hosts may carry different field sets, or
// different kinds for the same field name.
type Record struct {
	fields []Field
	index  map[string]int
}

// New creates an empty Record.
func New() *Record {
	return &Record{
		index: make(map[string]int),
	}
}

// Set adds a field, or replaces the value of an existing field in place
// without changing its position. It returns the record for chaining.
func (r *Record) Set(name string, v Value) *Record {
	if v == nil {
		v = Null()
	}
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = v
		return r
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
	return r
}

// SetAny converts the given native value with ToValue and sets it.
func (r *Record) SetAny(name string, v any) *Record {
	return r.Set(name, ToValue(v))
}

// SetString is a convenience method for adding string values.
func (r *Record) SetString(name, v string) *Record {
	return r.Set(name, Str(v))
}

// SetInt is a convenience method for adding integer values.
func (r *Record) SetInt(name string, v int64) *Record {
	return r.Set(name, Int(v))
}

// SetFloat is a convenience method for adding float values.
func (r *Record) SetFloat(name string, v float64) *Record {
	return r.Set(name, Float(v))
}

// SetBool is a convenience method for adding boolean values.
func (r *Record) SetBool(name string, v bool) *Record {
	return r.Set(name, Bool(v))
}

// SetTime is a convenience method for adding timestamp values.
func (r *Record) SetTime(name string, v time.Time) *Record {
	return r.Set(name, Time(v))
}

// SetStrings is a convenience method for adding a list of strings.
func (r *Record) SetStrings(name string, v ...string) *Record {
	return r.Set(name, Strings(v...))
}

// Get retrieves a field value by name.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Has checks whether a field with the given name exists.
func (r *Record) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.index[name]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns the fields in insertion order.
// The returned slice is owned by the record and must not be modified.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	return r.fields
}

// Names returns the field names in insertion order.
func (r *Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON serializes the record as a JSON object with fields in
// insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Sourced couples a Record with the host it was collected from.
// The host tag is carried as bookkeeping metadata through normalization
// and grouping; it is never emitted as a data column.
type Sourced struct {
	Host   string  `json:"host"`
	Record *Record `json:"record"`
}
