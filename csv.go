package motif

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file reads raw coordinate data into point slices. The expected CSV
// layout is a header row followed by one point per record: onset in the
// first column, pitch in the second, any further columns ignored. The
// readers hand back plain slices; building the PointSet (sorting,
// deduplication) is the caller's concern.

func parseFloatField(record []string, index int) (float64, error) {
	if index >= len(record) {
		return 0, fmt.Errorf("value missing at column %d", index)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[index]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", index, err)
	}
	return v, nil
}

func parseIntField(record []string, index int) (int64, error) {
	if index >= len(record) {
		return 0, fmt.Errorf("value missing at column %d", index)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(record[index]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", index, err)
	}
	return v, nil
}

// readCSVRecords reads all data records, skipping the header row.
func readCSVRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// ReadPoints2D reads exact floating-point 2-D points from CSV data.
func ReadPoints2D(r io.Reader) ([]Point2D, error) {
	records, err := readCSVRecords(r)
	if err != nil {
		return nil, err
	}

	points := make([]Point2D, 0, len(records))
	for _, record := range records {
		x, err := parseFloatField(record, 0)
		if err != nil {
			return nil, err
		}
		y, err := parseFloatField(record, 1)
		if err != nil {
			return nil, err
		}
		points = append(points, Point2D{X: x, Y: y})
	}
	return points, nil
}

// ReadRoundedPoints2D reads 2-D points from CSV data with the onset rounded
// for tuplet tolerance.
func ReadRoundedPoints2D(r io.Reader) ([]RoundedPoint2D, error) {
	records, err := readCSVRecords(r)
	if err != nil {
		return nil, err
	}

	points := make([]RoundedPoint2D, 0, len(records))
	for _, record := range records {
		x, err := parseFloatField(record, 0)
		if err != nil {
			return nil, err
		}
		y, err := parseFloatField(record, 1)
		if err != nil {
			return nil, err
		}
		points = append(points, NewRoundedPoint2D(x, y))
	}
	return points, nil
}

// ReadIntPoints2D reads integer 2-D points from CSV data.
func ReadIntPoints2D(r io.Reader) ([]IntPoint2D, error) {
	records, err := readCSVRecords(r)
	if err != nil {
		return nil, err
	}

	points := make([]IntPoint2D, 0, len(records))
	for _, record := range records {
		x, err := parseIntField(record, 0)
		if err != nil {
			return nil, err
		}
		y, err := parseIntField(record, 1)
		if err != nil {
			return nil, err
		}
		points = append(points, IntPoint2D{X: x, Y: y})
	}
	return points, nil
}
