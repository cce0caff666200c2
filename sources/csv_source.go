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

package sources

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DataBridgeTech/relcheck"
)

// CsvRowSource reads release records from a comma-separated file. Lines
// starting with `#' are ignored, the first remaining record is the header,
// and line numbers refer to the original file, comments included.
type CsvRowSource struct {
	path   string
	logger *slog.Logger
}

func NewCsvRowSource(path string, logger *slog.Logger) *CsvRowSource {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &CsvRowSource{path: path, logger: logger}
}

func (s *CsvRowSource) Name() string {
	return s.path
}

func (s *CsvRowSource) Rows(ctx context.Context) ([]relcheck.Row, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer file.Close()

	return s.readRows(ctx, file)
}

func (s *CsvRowSource) readRows(ctx context.Context, r io.Reader) ([]relcheck.Row, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	// ragged records are handled by the validator, not the reader
	reader.FieldsPerRecord = -1

	var header []string
	var rows []relcheck.Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		if header == nil {
			header = record
			continue
		}

		line, _ := reader.FieldPos(0)
		values := make(map[string]string, len(header))
		for i, column := range header {
			if i >= len(record) {
				break
			}
			values[column] = record[i]
		}
		rows = append(rows, relcheck.Row{Line: line, Values: values})
	}

	s.logger.Debug("read csv rows", "path", s.path, "rows", len(rows))
	return rows, nil
}
