// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package validation

import (
	"strconv"
	"strings"
)

// DriverParams identifies a single driver.
type DriverParams struct {
	Driver string `json:"driver" validate:"required,max=64,printunicode"`
}

// DriverYearParams identifies one season of a driver.
type DriverYearParams struct {
	Driver string `json:"driver" validate:"required,max=64,printunicode"`
	Year   int    `json:"year"`
}

// CompareParams identifies two drivers within one season.
type CompareParams struct {
	Driver1 string `json:"driver1" validate:"required,max=64,printunicode"`
	Driver2 string `json:"driver2" validate:"required,max=64,printunicode"`
	Year    int    `json:"year"`
}

// ParseYear converts a path segment to a season year. Any integer is
// accepted; a season with no rows yields empty results, not an error.
func ParseYear(raw string) (int, *RequestValidationError) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fieldError("year", "numeric", raw, "year must be an integer")
	}
	return year, nil
}

// NewDriverParams validates a driver path parameter.
func NewDriverParams(driver string) (DriverParams, *RequestValidationError) {
	p := DriverParams{Driver: driver}
	return p, ValidateStruct(&p)
}

// NewDriverYearParams parses and validates driver and year path parameters.
func NewDriverYearParams(driver, rawYear string) (DriverYearParams, *RequestValidationError) {
	year, verr := ParseYear(rawYear)
	if verr != nil {
		return DriverYearParams{}, verr
	}
	p := DriverYearParams{Driver: driver, Year: year}
	return p, ValidateStruct(&p)
}

// NewCompareParams parses and validates the driver pair and year.
func NewCompareParams(driver1, driver2, rawYear string) (CompareParams, *RequestValidationError) {
	year, verr := ParseYear(rawYear)
	if verr != nil {
		return CompareParams{}, verr
	}
	p := CompareParams{Driver1: driver1, Driver2: driver2, Year: year}
	return p, ValidateStruct(&p)
}
