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
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/DataBridgeTech/relcheck"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_]+)?$`)

// SqlRowSource reads release records from a database table through
// database/sql. Every column is scanned as nullable text; SQL NULL is
// treated as an absent column. Line numbers are 1-based row ordinals in
// result order.
type SqlRowSource struct {
	db     *sql.DB
	table  string
	logger *slog.Logger
}

func NewSqlRowSource(db *sql.DB, table string, logger *slog.Logger) *SqlRowSource {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &SqlRowSource{db: db, table: table, logger: logger}
}

func (s *SqlRowSource) Name() string {
	return s.table
}

func (s *SqlRowSource) Rows(ctx context.Context) ([]relcheck.Row, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	if !tableNameRegex.MatchString(s.table) {
		return nil, fmt.Errorf("invalid table name: %s", s.table)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("select * from %s", s.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", s.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column names: %w", err)
	}

	var result []relcheck.Row
	line := 0
	for rows.Next() {
		line++

		values := make([]sql.NullString, len(columns))
		scanArgs := make([]interface{}, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rowValues := make(map[string]string, len(columns))
		for i, column := range columns {
			if values[i].Valid {
				rowValues[column] = values[i].String
			}
		}
		result = append(result, relcheck.Row{Line: line, Values: rowValues})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error occurred during row iteration: %w", err)
	}

	s.logger.Debug("read table rows", "table", s.table, "rows", len(result))
	return result, nil
}
