// Segment list input/output for the CLI
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/gcode"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/report"
)

// loadSegments reads a toolpath from either G-code or a CSV segment list,
// chosen by file extension.
func loadSegments(path string, filamentDiameter float64) ([]plan.Segment, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readSegmentsCSV(path)
	default:
		return gcode.ReadFile(path, gcode.Options{FilamentDiameter: filamentDiameter})
	}
}

// readSegmentsCSV reads "length,feed_rate,extrusion" records. A header row
// starting with "length" is skipped.
func readSegmentsCSV(path string) ([]plan.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var segments []plan.Segment
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "length") {
			continue
		}
		vals := [3]float64{}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", path, i+1, err)
			}
			vals[j] = v
		}
		seg, err := plan.NewSegment(vals[0], vals[1], vals[2])
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", path, i+1, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// writeSegmentsCSV writes an adjusted segment list in the same CSV schema
// readSegmentsCSV accepts.
func writeSegmentsCSV(path string, segments []plan.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"length", "feed_rate", "extrusion"}); err != nil {
		return err
	}
	for _, s := range segments {
		rec := []string{
			strconv.FormatFloat(s.Length, 'g', -1, 64),
			strconv.FormatFloat(s.FeedRate, 'g', -1, 64),
			strconv.FormatFloat(s.Extrusion, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeAnalysisCSV writes the per-segment analysis rows to a file.
func writeAnalysisCSV(path string, analysis *report.Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return analysis.WriteCSV(f)
}
