// Copyright 2025 The Rivaas Authors
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

package oaschema

import "sync"

// WarningRecorder captures engine warnings for inspection in tests.
//
//	rec := oaschema.NewWarningRecorder()
//	result, err := schema.Unmarshal(value, oaschema.WithWarnFunc(rec.Record))
//	require.Len(t, rec.Warnings(), 1)
//
// WarningRecorder is safe for concurrent use.
type WarningRecorder struct {
	mu       sync.Mutex
	warnings []Warning
}

// NewWarningRecorder creates an empty recorder.
func NewWarningRecorder() *WarningRecorder {
	return &WarningRecorder{}
}

// Record appends a warning. Pass it to [WithWarnFunc].
func (r *WarningRecorder) Record(w Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

// Warnings returns a copy of the recorded warnings in emission order.
func (r *WarningRecorder) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Warning(nil), r.warnings...)
}

// Codes returns the recorded warning codes in emission order.
func (r *WarningRecorder) Codes() []WarningCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes := make([]WarningCode, len(r.warnings))
	for i, w := range r.warnings {
		codes[i] = w.Code
	}

	return codes
}
