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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemasFileConfig declares additional schema dialects loaded from a YAML
// file. Built-in dialect names cannot be redeclared.
type SchemasFileConfig struct {
	Version string         `yaml:"version"`
	Schemas []SchemaConfig `yaml:"schemas"`
}

type SchemaConfig struct {
	Name            string       `yaml:"name"`
	Columns         []string     `yaml:"columns"`
	DateColumns     []string     `yaml:"date_columns,omitempty"`
	RequiredColumns []string     `yaml:"required_columns,omitempty"`
	OrderingPairs   []PairConfig `yaml:"ordering_pairs,omitempty"`
}

type PairConfig struct {
	Earlier string `yaml:"earlier"`
	Later   string `yaml:"later"`
}

func LoadSchemasFileConfig(fileName string) (*SchemasFileConfig, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg SchemasFileConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	for _, schemaCfg := range cfg.Schemas {
		if _, err := schemaCfg.Schema(); err != nil {
			return nil, fmt.Errorf("invalid schema `%s': %w", schemaCfg.Name, err)
		}
	}

	return &cfg, nil
}

// SchemaForName builds the declared schema with the given dialect name.
func (c *SchemasFileConfig) SchemaForName(name string) (*Schema, error) {
	for _, schemaCfg := range c.Schemas {
		if schemaCfg.Name == name {
			return schemaCfg.Schema()
		}
	}
	return nil, fmt.Errorf("dialect `%s' is not declared in the schemas file", name)
}

// Schema validates the declaration for internal consistency and builds an
// immutable Schema from it.
func (c *SchemaConfig) Schema() (*Schema, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("schema name is required")
	}
	if c.Name == string(DialectDebian) || c.Name == string(DialectUbuntu) {
		return nil, fmt.Errorf("schema name `%s' shadows a built-in dialect", c.Name)
	}
	if len(c.Columns) == 0 {
		return nil, fmt.Errorf("schema declares no columns")
	}

	seen := make(map[string]bool, len(c.Columns))
	for _, column := range c.Columns {
		if seen[column] {
			return nil, fmt.Errorf("column `%s' is declared twice", column)
		}
		seen[column] = true
	}

	for _, column := range c.DateColumns {
		if !seen[column] {
			return nil, fmt.Errorf("date column `%s' is not in the column set", column)
		}
	}
	for _, column := range c.RequiredColumns {
		if !seen[column] {
			return nil, fmt.Errorf("required column `%s' is not in the column set", column)
		}
	}
	for _, pair := range c.OrderingPairs {
		if !containsString(c.DateColumns, pair.Earlier) {
			return nil, fmt.Errorf("ordering pair references `%s', which is not a date column", pair.Earlier)
		}
		if !containsString(c.DateColumns, pair.Later) {
			return nil, fmt.Errorf("ordering pair references `%s', which is not a date column", pair.Later)
		}
	}

	schema := &Schema{
		Name:            c.Name,
		Columns:         append([]string(nil), c.Columns...),
		DateColumns:     append([]string(nil), c.DateColumns...),
		RequiredColumns: append([]string(nil), c.RequiredColumns...),
	}
	for _, pair := range c.OrderingPairs {
		schema.OrderingPairs = append(schema.OrderingPairs, OrderingPair{Earlier: pair.Earlier, Later: pair.Later})
	}

	return schema, nil
}
