package main

import (
	"context"
	"fmt"
	"io"
)

// processMETAR fetches (unless a raw report was piped in), decodes and
// prints a METAR
func processMETAR(ctx context.Context, client *Client, out io.Writer, stationCode, rawInput string, noRaw bool) error {
	metar := rawInput
	if metar == "" {
		fmt.Fprintf(out, "Fetching METAR for %s...\n", stationCode)
		report, err := client.FetchMETAR(ctx, stationCode)
		if err != nil {
			return fmt.Errorf("error fetching METAR: %w", err)
		}
		metar = report.Text
	}

	decoded := DecodeMETAR(metar)
	fmt.Fprint(out, FormatMETAR(stationCode, metar, decoded, !noRaw))
	return nil
}

// processTAF fetches, decodes and prints a TAF
func processTAF(ctx context.Context, client *Client, out io.Writer, stationCode string, noRaw bool) error {
	fmt.Fprintf(out, "Fetching TAF for %s...\n", stationCode)
	report, err := client.FetchTAF(ctx, stationCode)
	if err != nil {
		return fmt.Errorf("error fetching TAF: %w", err)
	}

	decoded := DecodeTAF(report.Text)
	fmt.Fprint(out, FormatTAF(stationCode, report.Text, decoded, !noRaw))
	return nil
}
