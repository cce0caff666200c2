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

package relq

import (
	"fmt"
	"log/slog"

	"github.com/DataBridgeTech/relcheck"
	"github.com/DataBridgeTech/relcheck/cnn"
	"github.com/DataBridgeTech/relcheck/sources"
)

const (
	Version = "v0.1.0"
)

func GetRelcheckLibVersion() string {
	return Version
}

// NewCsvRowSource returns a row source over a comment-stripped CSV file.
func NewCsvRowSource(path string, logger *slog.Logger) relcheck.RowSource {
	return sources.NewCsvRowSource(path, logger)
}

// NewRowSource returns a row source over a table in the configured datasource.
func NewRowSource(dataSource *relcheck.DataSource, table string, logger *slog.Logger) (relcheck.RowSource, error) {
	switch dataSource.Type {
	case relcheck.DataSourceTypeClickhouse:
		connection, err := cnn.NewClickhouseConnection(dataSource.Configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to create clickhouse connection: %w", err)
		}
		return sources.NewSqlRowSource(connection, table, logger), nil
	case relcheck.DataSourceTypePostgresql:
		connection, err := cnn.NewPostgresqlConnection(dataSource.Configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgresql connection: %w", err)
		}
		return sources.NewSqlRowSource(connection, table, logger), nil
	case relcheck.DataSourceTypeMysql:
		connection, err := cnn.NewMysqlConnection(dataSource.Configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to create mysql connection: %w", err)
		}
		return sources.NewSqlRowSource(connection, table, logger), nil
	default:
		return nil, fmt.Errorf("unsupported data source type: %s", dataSource.Type)
	}
}
