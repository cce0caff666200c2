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

import "fmt"

// Dialect selects one of the built-in release record schemas.
type Dialect string

const (
	DialectDebian Dialect = "debian"
	DialectUbuntu Dialect = "ubuntu"
)

// OrderingPair declares that when the Later column carries a date, the
// Earlier column must carry one as well, and it must not fall after Later's.
type OrderingPair struct {
	Earlier string
	Later   string
}

// Schema describes the expected shape of one release record dialect.
// Schemas are immutable once built; the package-level built-ins are shared
// between validators and must not be modified by callers.
type Schema struct {
	Name            string
	Columns         []string
	DateColumns     []string
	RequiredColumns []string
	OrderingPairs   []OrderingPair
}

func (s *Schema) HasColumn(name string) bool {
	return containsString(s.Columns, name)
}

func (s *Schema) HasDateColumn(name string) bool {
	return containsString(s.DateColumns, name)
}

var debianSchema = &Schema{
	Name:            string(DialectDebian),
	Columns:         []string{"version", "codename", "series", "created", "release", "eol"},
	DateColumns:     []string{"created", "release", "eol"},
	RequiredColumns: []string{"codename", "series"},
	OrderingPairs: []OrderingPair{
		{Earlier: "created", Later: "release"},
		{Earlier: "release", Later: "eol"},
	},
}

var ubuntuSchema = &Schema{
	Name:            string(DialectUbuntu),
	Columns:         []string{"version", "codename", "series", "created", "release", "eol", "eol-server", "eol-esm"},
	DateColumns:     []string{"created", "release", "eol", "eol-server", "eol-esm"},
	RequiredColumns: []string{"version", "codename", "series"},
	OrderingPairs: []OrderingPair{
		{Earlier: "created", Later: "release"},
		{Earlier: "release", Later: "eol"},
		{Earlier: "eol", Later: "eol-server"},
	},
}

// SchemaForDialect returns the built-in schema registered for the dialect.
func SchemaForDialect(dialect Dialect) (*Schema, error) {
	switch dialect {
	case DialectDebian:
		return debianSchema, nil
	case DialectUbuntu:
		return ubuntuSchema, nil
	default:
		return nil, fmt.Errorf("unknown dialect: %s", dialect)
	}
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
