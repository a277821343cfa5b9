package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readFromStdin reads a piped report from stdin if there is one. The station
// code is taken from the first token of the report.
func readFromStdin() (string, string, bool) {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return "", "", false
	}
	return readReport(os.Stdin)
}

func readReport(r io.Reader) (string, string, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rawInput := strings.TrimSpace(scanner.Text())
		if rawInput == "" {
			continue
		}

		parts := strings.Fields(rawInput)
		station := parts[0]
		if (station == "METAR" || station == "SPECI") && len(parts) > 1 {
			station = parts[1]
		}
		return station, rawInput, true
	}
	return "", "", false
}

// checkReportFlags rejects flag combinations that would leave nothing to
// print. A piped report is always decoded as a METAR.
func checkReportFlags(metarOnly, tafOnly, piped bool) error {
	switch {
	case metarOnly && tafOnly:
		return errors.New("-metar and -taf cannot be used together")
	case piped && tafOnly:
		return errors.New("piped input is always a METAR; -taf is not supported")
	}
	return nil
}

// getStationCodeFromArgs gets station code from command-line args
func getStationCodeFromArgs(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no station code provided")
	}
	return NormalizeStationCode(args[0])
}

// promptForStationCode prompts the user for a station code
func promptForStationCode(in io.Reader, out io.Writer) (string, error) {
	reader := bufio.NewReader(in)
	fmt.Fprint(out, "Enter airport code (e.g., KSEA, BFI): ")
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return NormalizeStationCode(input)
}
