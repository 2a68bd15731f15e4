// Text and CSV rendering of flow analyses
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable renders the analysis as an aligned text table followed by the
// summary block.
func (a *Analysis) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tt(s)\tlen(mm)\tfeed(mm/min)\tfeed'\tflow(mm³/s)\tflow'\tpressure\t")
	for _, r := range a.Rows {
		mark := ""
		if r.Changed {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%.2f\t%.1f\t%.1f\t%.1f\t%.3f\t%.3f\t%.3f\t\n",
			r.Index, mark, r.StartTime, r.Length,
			r.OriginalFeed, r.AdjustedFeed,
			r.OriginalFlow, r.AdjustedFlow, r.PressureLevel)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := a.Summary
	fmt.Fprintf(w, "\nsegments: %d (%d adjusted)\n", s.Segments, s.ChangedSegments)
	fmt.Fprintf(w, "flow limit: %.2f mm³/s\n", s.FlowLimit)
	fmt.Fprintf(w, "peak flow: %.3f -> %.3f mm³/s\n", s.PeakFlowOriginal, s.PeakFlowAdjusted)
	fmt.Fprintf(w, "mean flow: %.3f -> %.3f mm³/s\n", s.MeanFlowOriginal, s.MeanFlowAdjusted)
	fmt.Fprintf(w, "print time: %.2f -> %.2f s (+%.1f%%)\n",
		s.TotalTimeOrig, s.TotalTimeAdj, s.TimeCost()*100)
	return nil
}

// WriteCSV renders the per-segment rows as CSV with a header record.
func (a *Analysis) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"index", "start_time_s", "length_mm", "extrusion_mm3",
		"original_feed", "adjusted_feed",
		"original_flow", "adjusted_flow", "pressure_level",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range a.Rows {
		rec := []string{
			strconv.Itoa(r.Index),
			formatFloat(r.StartTime),
			formatFloat(r.Length),
			formatFloat(r.Extrusion),
			formatFloat(r.OriginalFeed),
			formatFloat(r.AdjustedFeed),
			formatFloat(r.OriginalFlow),
			formatFloat(r.AdjustedFlow),
			formatFloat(r.PressureLevel),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
