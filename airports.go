package main

import (
	"fmt"
	"strings"
)

// airportNames maps the stations we label by name. It is never modified.
var airportNames = map[string]string{
	"KSEA": "Seattle-Tacoma International",
	"KBFI": "Boeing Field/King County International",
	"KPAE": "Snohomish County (Paine Field)",
	"KBVS": "Skagit Regional",
	"KAWO": "Arlington Municipal",
	"KTCM": "McChord Field",
	"KOLM": "Olympia Regional",
	"KGRF": "Gray Army Airfield",
	"KHQM": "Bowerman Airport",
	"KUIL": "Quillayute",
	"KCLM": "William R. Fairchild International",
}

// AirportName returns the display name for an ICAO identifier, or
// "Unknown Airport" if the station is not in the table
func AirportName(icao string) string {
	if name, ok := airportNames[icao]; ok {
		return name
	}
	return unknownAirport
}

// NormalizeStationCode upper-cases and trims a station code. Three letter
// codes are treated as US identifiers and get a K prefix.
func NormalizeStationCode(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	switch len(code) {
	case 3:
		return "K" + code, nil
	case 4:
		return code, nil
	}
	return "", fmt.Errorf("%w: %q must be 3 or 4 characters", ErrInvalidStation, input)
}
