// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lmendieta/plotproof/spatial"
	"github.com/lmendieta/plotproof/utils"
)

// maxImportRows caps how many data rows a single upload may contribute.
const maxImportRows = 100

// Common errors returned by the ingestor. Handlers turn these into user
// messages; they never mutate the session.
var (
	ErrNoSheets      = errors.New("workbook has no sheets")
	ErrNoCoordColumn = errors.New("no latitude/longitude columns found in header row")
)

// findCoordinateColumns locates the first header cell whose normalized name
// contains "lat" and the first containing "lon". The substring heuristic is
// deliberately isolated here so it can be swapped for explicit column
// mapping without touching the rest of the pipeline.
func findCoordinateColumns(header []string) (latCol, lonCol int, ok bool) {
	latCol, lonCol = -1, -1

	for i, cell := range header {
		name := utils.LowerASCIIFolding(cell)

		if latCol == -1 && strings.Contains(name, "lat") {
			latCol = i
		}

		if lonCol == -1 && strings.Contains(name, "lon") {
			lonCol = i
		}
	}

	return latCol, lonCol, latCol != -1 && lonCol != -1
}

// ParseWorkbook reads an uploaded .xlsx/.xls survey and extracts coordinate
// pairs from the first sheet. The header row is required; up to the first
// maxImportRows rows with parseable values in both sniffed columns are
// returned. Rows missing either value are skipped, not errors.
func ParseWorkbook(r io.Reader) ([]spatial.Point, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNoCoordColumn
	}

	latCol, lonCol, ok := findCoordinateColumns(rows[0])
	if !ok {
		return nil, ErrNoCoordColumn
	}

	points := make([]spatial.Point, 0, min(len(rows)-1, maxImportRows))

	for _, row := range rows[1:] {
		if len(points) == maxImportRows {
			break
		}

		lat, ok := cellFloat(row, latCol)
		if !ok {
			continue
		}

		lng, ok := cellFloat(row, lonCol)
		if !ok {
			continue
		}

		points = append(points, spatial.Point{Lat: lat, Lng: lng})
	}

	return points, nil
}

// cellFloat parses the cell at col as a float. Short rows and empty or
// non-numeric cells count as missing values.
func cellFloat(row []string, col int) (float64, bool) {
	if col >= len(row) {
		return 0, false
	}

	raw := strings.TrimSpace(row[col])
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
