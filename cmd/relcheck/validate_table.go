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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DataBridgeTech/relcheck"
	"github.com/DataBridgeTech/relcheck/relq"
)

var validateTableCmd = &cobra.Command{
	Use:   "validate-table [flags]",
	Short: "Validate release data stored in a database table",
	Args:  cobra.NoArgs,
	RunE:  runValidateTable,
}

func init() {
	addDialectFlags(validateTableCmd)
	validateTableCmd.Flags().String("config", "datasources.yaml", "path to the datasources config file")
	validateTableCmd.Flags().String("datasource", "", "name of the configured datasource to read from")
	validateTableCmd.Flags().String("table", "", "table holding the release records")
	_ = validateTableCmd.MarkFlagRequired("datasource")
	_ = validateTableCmd.MarkFlagRequired("table")
}

func runValidateTable(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	schema, err := resolveSchema(cmd)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	dataSourceName, err := cmd.Flags().GetString("datasource")
	if err != nil {
		return err
	}
	table, err := cmd.Flags().GetString("table")
	if err != nil {
		return err
	}

	cfg, err := relcheck.LoadDataSourcesFileConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load datasources config: %w", err)
	}
	dataSource, err := cfg.DataSource(dataSourceName)
	if err != nil {
		return err
	}

	source, err := relq.NewRowSource(dataSource, table, logger)
	if err != nil {
		return err
	}

	validator := relcheck.NewValidator(schema, logger)
	printer := newDiagnosticPrinter(os.Stderr)

	result, err := validator.Validate(cmd.Context(), source, printer.Print)
	if err != nil {
		return err
	}
	if !result.Pass {
		logger.Debug("input is not valid",
			"source", result.Source,
			"failures", result.Failures)
		return errInvalidData
	}
	return nil
}
