// Copyright 2026 The Relcheck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package relcheck

import "context"

// Row is one record from a tabular input: header-keyed raw values plus the
// 1-based line number it came from, kept for diagnostics.
type Row struct {
	Line   int
	Values map[string]string
}

// RowSource supplies the validator with an ordered, finite sequence of rows.
// Implementations own all I/O; the validator reads a source exactly once.
type RowSource interface {
	// Name identifies the input in diagnostics (file path or table name).
	Name() string

	Rows(ctx context.Context) ([]Row, error)
}
