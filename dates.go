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
	"strconv"
	"strings"
	"time"
)

// FormatError reports a raw value that cannot be interpreted as a calendar date.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date format: `%s'", e.Value)
}

// Date is a plain calendar date without time-of-day or zone information.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate interprets raw as a calendar date. The accepted form is exactly
// three integer components in year-month-day order, separated by `-' or `.'.
// An empty string yields nil without error; any other shape, and any
// component combination that is not a real calendar day (no clamping of
// out-of-range months or days), yields a *FormatError.
func ParseDate(raw string) (*Date, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(strings.ReplaceAll(raw, ".", "-"), "-")
	if len(parts) != 3 {
		return nil, &FormatError{Value: raw}
	}

	var components [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, &FormatError{Value: raw}
		}
		components[i] = n
	}

	year, month, day := components[0], time.Month(components[1]), components[2]

	// time.Date normalizes out-of-range components instead of rejecting them,
	// so a round-trip mismatch marks the input invalid.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return nil, &FormatError{Value: raw}
	}

	return &Date{Year: year, Month: month, Day: day}, nil
}

// After reports whether d falls strictly after other.
func (d *Date) After(other *Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

func (d *Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
