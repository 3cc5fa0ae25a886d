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

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New(ErrCodeTimeout, "query timed out")
	if got := err.Error(); got != "[TIMEOUT] query timed out" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(ErrCodeProducerFailed, "query failed", fmt.Errorf("connection refused"))
	if got := wrapped.Error(); !strings.Contains(got, "connection refused") {
		t.Errorf("wrapped Error() = %q, missing cause", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrCodeExportWrite, "write failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", New(ErrCodeTimeout, "x"), ErrCodeTimeout},
		{"wrapped once", fmt.Errorf("outer: %w", New(ErrCodeHostUnreachable, "x")), ErrCodeHostUnreachable},
		{"joined", stderrors.Join(fmt.Errorf("plain"), New(ErrCodeExportWrite, "x")), ErrCodeExportWrite},
		{"plain error", fmt.Errorf("plain"), ErrCodeInternal},
		{"nil", nil, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeInvalidConfiguration, "bad option", map[string]any{"option": "concurrency"})
	if err.Context["option"] != "concurrency" {
		t.Errorf("Context = %v", err.Context)
	}
}
