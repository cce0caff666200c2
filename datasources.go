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

// DataSourceType represents the type of the data source.
type DataSourceType string

const (
	DataSourceTypeClickhouse DataSourceType = "clickhouse"
	DataSourceTypePostgresql DataSourceType = "postgresql"
	DataSourceTypeMysql      DataSourceType = "mysql"
)

type DataSourcesFileConfig struct {
	Version     string       `yaml:"version"`
	DataSources []DataSource `yaml:"datasources"`
}

type DataSource struct {
	Name          string           `yaml:"name"`
	Type          DataSourceType   `yaml:"type"`
	Configuration ConnectionConfig `yaml:"configuration"`
}

type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
}

func LoadDataSourcesFileConfig(fileName string) (*DataSourcesFileConfig, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg DataSourcesFileConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DataSource returns the configured datasource with the given name.
func (c *DataSourcesFileConfig) DataSource(name string) (*DataSource, error) {
	for i := range c.DataSources {
		if c.DataSources[i].Name == name {
			return &c.DataSources[i], nil
		}
	}
	return nil, fmt.Errorf("datasource `%s' is not configured", name)
}
