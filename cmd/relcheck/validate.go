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
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/DataBridgeTech/relcheck"
	"github.com/DataBridgeTech/relcheck/relq"
)

var errInvalidData = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <file.csv>...",
	Short: "Validate release data files",
	Long:  `Validate one or more release data files against a built-in dialect (debian, ubuntu) or a custom dialect declared in a schemas file`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	addDialectFlags(validateCmd)
	validateCmd.Flags().Int("jobs", 1, "max files validated in parallel")
}

func addDialectFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("debian", false, "validate against the built-in debian dialect")
	cmd.Flags().Bool("ubuntu", false, "validate against the built-in ubuntu dialect")
	cmd.Flags().String("dialect", "", "name of a dialect declared in the schemas file")
	cmd.Flags().String("schemas", "", "path to a YAML file declaring custom dialects")
}

// resolveSchema maps the dialect flags to a schema. Selecting no dialect, or
// more than one, is a usage error.
func resolveSchema(cmd *cobra.Command) (*relcheck.Schema, error) {
	debian, err := cmd.Flags().GetBool("debian")
	if err != nil {
		return nil, err
	}
	ubuntu, err := cmd.Flags().GetBool("ubuntu")
	if err != nil {
		return nil, err
	}
	dialect, err := cmd.Flags().GetString("dialect")
	if err != nil {
		return nil, err
	}
	schemasFile, err := cmd.Flags().GetString("schemas")
	if err != nil {
		return nil, err
	}

	selected := 0
	if debian {
		selected++
	}
	if ubuntu {
		selected++
	}
	if dialect != "" {
		selected++
	}
	if selected != 1 {
		return nil, fmt.Errorf("exactly one of --debian, --ubuntu or --dialect must be specified")
	}

	switch {
	case debian:
		return relcheck.SchemaForDialect(relcheck.DialectDebian)
	case ubuntu:
		return relcheck.SchemaForDialect(relcheck.DialectUbuntu)
	}

	if schemasFile == "" {
		return nil, fmt.Errorf("--dialect requires --schemas")
	}
	cfg, err := relcheck.LoadSchemasFileConfig(schemasFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load schemas file: %w", err)
	}
	return cfg.SchemaForName(dialect)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	schema, err := resolveSchema(cmd)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	validator := relcheck.NewValidator(schema, logger)
	printer := newDiagnosticPrinter(os.Stderr)

	var invalid atomic.Bool
	pool := relcheck.NewTaskPool(jobs, logger)
	for _, path := range args {
		source := relq.NewCsvRowSource(path, logger)
		pool.Enqueue(path, func() error {
			result, err := validator.Validate(cmd.Context(), source, printer.Print)
			if err != nil {
				return err
			}
			if !result.Pass {
				invalid.Store(true)
				logger.Debug("input is not valid",
					"source", result.Source,
					"failures", result.Failures)
			}
			return nil
		})
	}
	pool.Join()

	if failed := pool.FailedTasks(); len(failed) > 0 {
		return fmt.Errorf("%d input(s) could not be read", len(failed))
	}
	if invalid.Load() {
		return errInvalidData
	}
	return nil
}
