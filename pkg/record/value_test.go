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
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCanonicalStrings(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"bool true", Bool(true), "True"},
		{"bool false", Bool(false), "False"},
		{"int", Int(-42), "-42"},
		{"float", Float(3.5), "3.5"},
		{"float integral", Float(2), "2"},
		{"string", Str("eth0"), "eth0"},
		{"time", Time(ts), "2025-06-01T12:30:00Z"},
		{"bytes", Bytes([]byte("hi")), "aGk="},
		{"null", Null(), ""},
		{"list", Strings("10.0.0.1", "10.0.0.2"), "10.0.0.1, 10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindScalar(t *testing.T) {
	for _, k := range Kinds {
		scalar := k.Scalar()
		if k == KindNull || k == KindList {
			if scalar {
				t.Errorf("%s should not be scalar", k)
			}
		} else if !scalar {
			t.Errorf("%s should be scalar", k)
		}
	}
}

func TestParseKind(t *testing.T) {
	if k, ok := ParseKind("int"); !ok || k != KindInt {
		t.Errorf("ParseKind(int) = %v, %v", k, ok)
	}
	if k, ok := ParseKind("String"); !ok || k != KindString {
		t.Errorf("ParseKind(String) = %v, %v", k, ok)
	}
	if _, ok := ParseKind("decimal"); ok {
		t.Error("ParseKind(decimal) should fail")
	}
}

func TestToValueKinds(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBool},
		{"int", 7, KindInt},
		{"int64", int64(7), KindInt},
		{"uint64", uint64(7), KindInt},
		{"float64", 1.5, KindFloat},
		{"string", "x", KindString},
		{"time", time.Now(), KindTime},
		{"bytes", []byte{1}, KindBytes},
		{"strings", []string{"a"}, KindList},
		{"ints", []int{1, 2}, KindList},
		{"any slice", []any{"a", "b"}, KindList},
		{"unknown type", struct{ X int }{1}, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToValue(tt.in).Kind(); got != tt.want {
				t.Errorf("ToValue(%v).Kind() = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestListSeparatorRoundTrip(t *testing.T) {
	in := []string{"10.0.0.1", "10.0.0.2", "fe80::1"}
	flat := Strings(in...).String()

	got := strings.Split(flat, ListSeparator)
	if len(got) != len(in) {
		t.Fatalf("split yielded %d elements, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("element %d = %q, want %q", i, got[i], in[i])
		}
	}
}

func TestListMixedKinds(t *testing.T) {
	// Element kind is fixed by the first element; stragglers carry their
	// canonical string form.
	v := List(Int(1), Str("two"), Int(3))
	items, elem, ok := ListItems(v)
	if !ok {
		t.Fatal("expected a list value")
	}
	if elem != KindInt {
		t.Errorf("element kind = %s, want %s", elem, KindInt)
	}
	if items[1].Kind() != KindString || items[1].String() != "two" {
		t.Errorf("mixed element = %s %q", items[1].Kind(), items[1].String())
	}
}

func TestListNestedFlattensOneLevel(t *testing.T) {
	inner := Strings("a", "b")
	v := List(Str("x"), inner)
	items, _, _ := ListItems(v)
	if items[1].Kind() != KindString {
		t.Errorf("nested list should become opaque text, got kind %s", items[1].Kind())
	}
	if items[1].String() != "a, b" {
		t.Errorf("nested list text = %q", items[1].String())
	}
}

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"bool", Bool(true), "true"},
		{"int", Int(5), "5"},
		{"string", Str("a"), `"a"`},
		{"null", Null(), "null"},
		{"list", Strings("a", "b"), `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal = %s, want %s", b, tt.want)
			}
		})
	}
}
