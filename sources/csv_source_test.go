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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvRowSource_ReadRows(t *testing.T) {
	input := `# Debian releases
version,codename,series,created,release,eol
7,Wheezy,wheezy,2011-01-01,2013-05-04,2016-04-25
# testing is not released yet
8,Jessie,jessie,2013-05-04,2015-04-25,
`

	source := NewCsvRowSource("debian.csv", nil)
	rows, err := source.readRows(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 3, rows[0].Line)
	assert.Equal(t, map[string]string{
		"version":  "7",
		"codename": "Wheezy",
		"series":   "wheezy",
		"created":  "2011-01-01",
		"release":  "2013-05-04",
		"eol":      "2016-04-25",
	}, rows[0].Values)

	// comment lines still count towards line numbers
	assert.Equal(t, 5, rows[1].Line)
	assert.Equal(t, "", rows[1].Values["eol"])
}

func TestCsvRowSource_ShortRecordYieldsAbsentColumns(t *testing.T) {
	input := `version,codename,series
7,Wheezy
`

	source := NewCsvRowSource("debian.csv", nil)
	rows, err := source.readRows(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, map[string]string{"version": "7", "codename": "Wheezy"}, rows[0].Values)
	_, ok := rows[0].Values["series"]
	assert.False(t, ok)
}

func TestCsvRowSource_HeaderOnly(t *testing.T) {
	source := NewCsvRowSource("debian.csv", nil)
	rows, err := source.readRows(context.Background(), strings.NewReader("version,codename\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCsvRowSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewCsvRowSource("debian.csv", nil)
	_, err := source.readRows(ctx, strings.NewReader("version\n7\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCsvRowSource_Rows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debian.csv")
	content := "version,codename,series,created,release,eol\n7,Wheezy,wheezy,2011-01-01,2013-05-04,2016-04-25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	source := NewCsvRowSource(path, nil)
	assert.Equal(t, path, source.Name())

	rows, err := source.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "wheezy", rows[0].Values["series"])
}

func TestCsvRowSource_MissingFile(t *testing.T) {
	source := NewCsvRowSource(filepath.Join(t.TempDir(), "nope.csv"), nil)
	_, err := source.Rows(context.Background())
	assert.Error(t, err)
}
