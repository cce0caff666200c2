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
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlRowSource_Rows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("select \\* from releases").WillReturnRows(
		sqlmock.NewRows([]string{"version", "codename", "series", "created", "release", "eol"}).
			AddRow("7", "Wheezy", "wheezy", "2011-01-01", "2013-05-04", "2016-04-25").
			AddRow("8", "Jessie", "jessie", "2013-05-04", nil, nil))

	source := NewSqlRowSource(db, "releases", nil)
	assert.Equal(t, "releases", source.Name())

	rows, err := source.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "wheezy", rows[0].Values["series"])

	// SQL NULL is an absent column, not an empty string
	assert.Equal(t, 2, rows[1].Line)
	_, ok := rows[1].Values["release"]
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlRowSource_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("select \\* from releases").WillReturnError(assert.AnError)

	source := NewSqlRowSource(db, "releases", nil)
	_, err = source.Rows(context.Background())
	assert.Error(t, err)
}

func TestSqlRowSource_RejectsInvalidTableName(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	source := NewSqlRowSource(db, "releases; drop table users", nil)
	_, err = source.Rows(context.Background())
	assert.Error(t, err)
}

func TestSqlRowSource_NilConnection(t *testing.T) {
	source := NewSqlRowSource(nil, "releases", nil)
	_, err := source.Rows(context.Background())
	assert.Error(t, err)
}
