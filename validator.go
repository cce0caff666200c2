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

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"
)

const createdColumn = "created"

// Diagnostic describes a single validation failure at a known input position.
type Diagnostic struct {
	Source  string `json:"source"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// String renders the diagnostic in the canonical `<source>:<line>: <message>.' form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s.", d.Source, d.Line, d.Message)
}

// DiagnosticSink receives diagnostics as the validator finds them. The sink
// owns every diagnostic it is handed; the validator keeps nothing beyond the
// running failure count.
type DiagnosticSink func(Diagnostic)

// ValidationResult represents the aggregate outcome of one validation run.
// Pass holds iff Failures is zero.
type ValidationResult struct {
	Source   string `json:"source"`
	Failures int    `json:"failures"`
	Pass     bool   `json:"pass"`
}

// Validator checks release record rows against a single schema dialect.
// A Validator carries no per-run state and is safe for concurrent use as
// long as each call owns its own sink.
type Validator struct {
	schema *Schema
	logger *slog.Logger
}

func NewValidator(schema *Schema, logger *slog.Logger) *Validator {
	if logger == nil {
		// noop logger by default
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Validator{schema: schema, logger: logger}
}

// Validate reads every row from source and checks it against the schema.
// The returned error covers only the inability to obtain the rows; data
// problems are reported through the sink and the result, never as errors.
func (v *Validator) Validate(ctx context.Context, source RowSource, sink DiagnosticSink) (*ValidationResult, error) {
	rows, err := source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", source.Name(), err)
	}

	return v.ValidateRows(source.Name(), rows, sink), nil
}

// ValidateRows checks every row independently, in order, emitting one
// diagnostic per violation. It never short-circuits: all rows are processed
// and every violation is reported. An empty row sequence is valid.
func (v *Validator) ValidateRows(name string, rows []Row, sink DiagnosticSink) *ValidationResult {
	if sink == nil {
		sink = func(Diagnostic) {}
	}

	startTime := time.Now()

	failures := 0
	for _, row := range rows {
		failures += v.validateRow(name, row, sink)
	}

	v.logger.Debug("finished validation",
		"source", name,
		"rows", len(rows),
		"failures", failures,
		"duration_ms", time.Since(startTime).Milliseconds())

	return &ValidationResult{
		Source:   name,
		Failures: failures,
		Pass:     failures == 0,
	}
}

// validateRow runs the per-row checks in a fixed order so diagnostics are
// reproducible: missing columns, extra columns, empty required strings, date
// parsing, the mandatory created date, then the ordering pairs.
func (v *Validator) validateRow(name string, row Row, sink DiagnosticSink) int {
	failures := 0
	fail := func(message string) {
		sink(Diagnostic{Source: name, Line: row.Line, Message: message})
		failures++
	}

	for _, column := range v.schema.Columns {
		if _, ok := row.Values[column]; !ok {
			fail(fmt.Sprintf("Column `%s' is missing", column))
		}
	}

	// row values are a map, so extra columns are sorted for stable output
	var extra []string
	for column := range row.Values {
		if !v.schema.HasColumn(column) {
			extra = append(extra, column)
		}
	}
	sort.Strings(extra)
	for _, column := range extra {
		fail(fmt.Sprintf("Additional column `%s' is specified", column))
	}

	for _, column := range v.schema.RequiredColumns {
		if value, ok := row.Values[column]; ok && value == "" {
			fail(fmt.Sprintf("Empty column `%s' specified", column))
		}
	}

	// Effective date per column: parsed value, or nil when the column is
	// absent, empty or malformed. A malformed date is reported once here and
	// treated as absent by every later check.
	dates := make(map[string]*Date, len(v.schema.DateColumns))
	for _, column := range v.schema.DateColumns {
		raw, ok := row.Values[column]
		if !ok {
			continue
		}

		parsed, err := ParseDate(raw)
		if err != nil {
			fail(fmt.Sprintf("Invalid date `%s' specified in column `%s'", raw, column))
			parsed = nil
		}
		dates[column] = parsed
	}

	if _, ok := row.Values[createdColumn]; ok && v.schema.HasDateColumn(createdColumn) && dates[createdColumn] == nil {
		fail(fmt.Sprintf("No date specified in column `%s'", createdColumn))
	}

	for _, pair := range v.schema.OrderingPairs {
		if _, ok := row.Values[pair.Later]; !ok {
			continue
		}
		later := dates[pair.Later]
		if later == nil {
			continue
		}

		earlier := dates[pair.Earlier]
		if earlier == nil {
			fail(fmt.Sprintf("A date needs to be specified in column `%s' due to the date %s of column `%s'",
				pair.Earlier, later, pair.Later))
			continue
		}

		if earlier.After(later) {
			fail(fmt.Sprintf("Date %s of column `%s' needs to be later than %s of column `%s'",
				later, pair.Later, earlier, pair.Earlier))
		}
	}

	return failures
}
