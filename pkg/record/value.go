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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind identifies the tagged type of a Value. The kind is decided once,
// when the value is constructed at the producer boundary, so downstream
// consumers never need runtime type introspection.
type Kind string

const (
	KindNull   Kind = "Null"
	KindBool   Kind = "Bool"
	KindInt    Kind = "Int"
	KindFloat  Kind = "Float"
	KindString Kind = "String"
	KindTime   Kind = "Time"
	KindBytes  Kind = "Bytes"
	KindList   Kind = "List"
)

// Kinds is the list of all supported value kinds.
var Kinds = []Kind{
	KindNull,
	KindBool,
	KindInt,
	KindFloat,
	KindString,
	KindTime,
	KindBytes,
	KindList,
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Scalar reports whether the kind is a single scalar value
// (everything except Null and List).
func (k Kind) Scalar() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindString, KindTime, KindBytes:
		return true
	default:
		return false
	}
}

// ParseKind parses a string into a value Kind.
// Returns the Kind and true if parsing succeeds, or empty Kind and false otherwise.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), s) {
			return k, true
		}
	}
	return "", false
}

// ListSeparator joins list elements when a list value is flattened into a
// single textual cell. Splitting the flattened string on this separator
// recovers the original element strings.
const ListSeparator = ", "

// Canonical string forms used by String on every Value implementation.
// These are fixed and locale-independent so that exports are byte-stable:
//
//	Bool  -> "True" / "False"
//	Int   -> base-10 digits
//	Float -> shortest form (strconv 'g', 64-bit)
//	Time  -> RFC 3339
//	Bytes -> standard base64
//	List  -> elements joined with ListSeparator
//	Null  -> ""
const (
	boolTrue  = "True"
	boolFalse = "False"
)

// Value is a tagged scalar or list value carried by a Record field.
type Value interface {
	isValue()

	// Kind returns the tag assigned at construction.
	Kind() Kind

	// Any returns the underlying native value.
	Any() any

	// String returns the canonical textual form of the value.
	String() string

	json.Marshaler
	yaml.Marshaler
}

type nullValue struct{}

func (nullValue) isValue()                     {}
func (nullValue) Kind() Kind                   { return KindNull }
func (nullValue) Any() any                     { return nil }
func (nullValue) String() string               { return "" }
func (nullValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (nullValue) MarshalYAML() (any, error)    { return nil, nil }

type boolValue bool

func (boolValue) isValue()   {}
func (boolValue) Kind() Kind { return KindBool }

func (v boolValue) Any() any { return bool(v) }

func (v boolValue) String() string {
	if v {
		return boolTrue
	}
	return boolFalse
}

func (v boolValue) MarshalJSON() ([]byte, error) { return json.Marshal(bool(v)) }
func (v boolValue) MarshalYAML() (any, error)    { return bool(v), nil }

type intValue int64

func (intValue) isValue()   {}
func (intValue) Kind() Kind { return KindInt }

func (v intValue) Any() any                     { return int64(v) }
func (v intValue) String() string               { return strconv.FormatInt(int64(v), 10) }
func (v intValue) MarshalJSON() ([]byte, error) { return json.Marshal(int64(v)) }
func (v intValue) MarshalYAML() (any, error)    { return int64(v), nil }

type floatValue float64

func (floatValue) isValue()   {}
func (floatValue) Kind() Kind { return KindFloat }

func (v floatValue) Any() any                     { return float64(v) }
func (v floatValue) String() string               { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v floatValue) MarshalJSON() ([]byte, error) { return json.Marshal(float64(v)) }
func (v floatValue) MarshalYAML() (any, error)    { return float64(v), nil }

type stringValue string

func (stringValue) isValue()   {}
func (stringValue) Kind() Kind { return KindString }

func (v stringValue) Any() any                     { return string(v) }
func (v stringValue) String() string               { return string(v) }
func (v stringValue) MarshalJSON() ([]byte, error) { return json.Marshal(string(v)) }
func (v stringValue) MarshalYAML() (any, error)    { return string(v), nil }

type timeValue time.Time

func (timeValue) isValue()   {}
func (timeValue) Kind() Kind { return KindTime }

func (v timeValue) Any() any                     { return time.Time(v) }
func (v timeValue) String() string               { return time.Time(v).Format(time.RFC3339) }
func (v timeValue) MarshalJSON() ([]byte, error) { return json.Marshal(time.Time(v)) }
func (v timeValue) MarshalYAML() (any, error)    { return v.String(), nil }

type bytesValue []byte

func (bytesValue) isValue()   {}
func (bytesValue) Kind() Kind { return KindBytes }

func (v bytesValue) Any() any                     { return []byte(v) }
func (v bytesValue) String() string               { return base64.StdEncoding.EncodeToString(v) }
func (v bytesValue) MarshalJSON() ([]byte, error) { return json.Marshal([]byte(v)) }
func (v bytesValue) MarshalYAML() (any, error)    { return v.String(), nil }

type listValue struct {
	elem  Kind
	items []Value
}

func (listValue) isValue()   {}
func (listValue) Kind() Kind { return KindList }

func (v listValue) Any() any {
	out := make([]any, len(v.items))
	for i, item := range v.items {
		out[i] = item.Any()
	}
	return out
}

func (v listValue) String() string {
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ListSeparator)
}

func (v listValue) MarshalJSON() ([]byte, error) { return json.Marshal(v.items) }

func (v listValue) MarshalYAML() (any, error) {
	out := make([]any, len(v.items))
	for i, item := range v.items {
		y, err := item.MarshalYAML()
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// Null returns the null value.
func Null() Value { return nullValue{} }

// Bool wraps a boolean.
func Bool(v bool) Value { return boolValue(v) }

// Int wraps a signed integer.
func Int(v int64) Value { return intValue(v) }

// Float wraps a 64-bit float.
func Float(v float64) Value { return floatValue(v) }

// Str wraps a string.
func Str(v string) Value { return stringValue(v) }

// Time wraps a timestamp.
func Time(v time.Time) Value { return timeValue(v) }

// Bytes wraps a byte sequence.
func Bytes(v []byte) Value { return bytesValue(v) }

// List builds an ordered list value from the given elements. The element
// kind is fixed by the first element; elements of any other kind are
// carried as their canonical string form. Nested lists are serialized one
// level deep: a list element that is itself a list becomes opaque text.
func List(items ...Value) Value {
	if len(items) == 0 {
		return listValue{elem: KindString}
	}
	elem := items[0].Kind()
	if !elem.Scalar() {
		elem = KindString
	}
	out := make([]Value, len(items))
	for i, item := range items {
		if item == nil {
			item = Null()
		}
		if item.Kind() == elem {
			out[i] = item
			continue
		}
		out[i] = Str(item.String())
	}
	return listValue{elem: elem, items: out}
}

// Strings is a convenience constructor for a list of strings.
func Strings(items ...string) Value {
	out := make([]Value, len(items))
	for i, s := range items {
		out[i] = Str(s)
	}
	return List(out...)
}

// ListItems returns the elements and element kind of a list value.
// The second return is false when v is not a list.
func ListItems(v Value) ([]Value, Kind, bool) {
	lv, ok := v.(listValue)
	if !ok {
		return nil, "", false
	}
	return lv.items, lv.elem, true
}

// ToValue creates a Value from any supported native type, deciding the tag
// once at the boundary. Unrecognized types are carried as their fmt string
// form rather than rejected.
func ToValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint:
		return Int(int64(val))
	case uint8:
		return Int(int64(val))
	case uint16:
		return Int(int64(val))
	case uint32:
		return Int(int64(val))
	case uint64:
		return Int(int64(val))
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case string:
		return Str(val)
	case time.Time:
		return Time(val)
	case []byte:
		return Bytes(val)
	case []string:
		return Strings(val...)
	case []int:
		items := make([]Value, len(val))
		for i, n := range val {
			items[i] = Int(int64(n))
		}
		return List(items...)
	case []int64:
		items := make([]Value, len(val))
		for i, n := range val {
			items[i] = Int(n)
		}
		return List(items...)
	case []float64:
		items := make([]Value, len(val))
		for i, f := range val {
			items[i] = Float(f)
		}
		return List(items...)
	case []bool:
		items := make([]Value, len(val))
		for i, b := range val {
			items[i] = Bool(b)
		}
		return List(items...)
	case []any:
		items := make([]Value, len(val))
		for i, e := range val {
			items[i] = ToValue(e)
		}
		return List(items...)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}
