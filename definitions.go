package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Placeholder values for fields that could not be decoded
const (
	unknownValue      = "Unknown"
	clearValue        = "Clear"
	notAvailableValue = "Data not available"
	unknownAirport    = "Unknown Airport"
)

var (
	ErrUnknownKind     = errors.New("unknown report kind")
	ErrInvalidStation  = errors.New("invalid station code")
	ErrNoData          = errors.New("no report data")
	ErrUpstreamFailure = errors.New("upstream weather service failed")
)

// Cloud coverage descriptions used in decoded sky conditions
var cloudCoverage = map[string]string{
	"SKC": "Clear",
	"CLR": "Clear",
	"FEW": "Few clouds",
	"SCT": "Scattered clouds",
	"BKN": "Broken clouds",
	"OVC": "Overcast",
}

// Flight category summaries, checked in order
var flightCategories = []struct {
	Token   string
	Summary string
}{
	{"VFR", "VFR conditions expected"},
	{"IFR", "IFR conditions possible"},
	{"MVFR", "Marginal VFR conditions possible"},
}

const forecastFallback = "Check raw TAF for detailed forecast"

// Commonly used regular expressions. None of them are anchored: the decoder
// searches the whole report for the first (or every) occurrence.
var (
	windRegex      = regexp.MustCompile(`(\d{3})(\d{2,3})(G\d{2,3})?KT`)
	visRegexSM     = regexp.MustCompile(`(\d{1,2})SM`)
	visRegexMeters = regexp.MustCompile(`(?:^|\s)(\d{4})(?:NDV|[NESW]{1,2})?(?:\s|$)`)
	tempRegex      = regexp.MustCompile(`M?(\d{2})/M?(\d{2})`)
	altimeterRegex = regexp.MustCompile(`A(\d{4})`)
	cloudRegex     = regexp.MustCompile(`(SKC|CLR|FEW|SCT|BKN|OVC)(\d{3})?`)
	validRegex     = regexp.MustCompile(`(\d{2})(\d{2})(\d{2})Z\s+(\d{2})(\d{2})/(\d{2})(\d{2})`)
)

// ReportKind distinguishes the two supported report formats
type ReportKind string

const (
	KindMETAR ReportKind = "METAR"
	KindTAF   ReportKind = "TAF"
)

// ParseReportKind parses a report kind case-insensitively
func ParseReportKind(s string) (ReportKind, error) {
	switch ReportKind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindMETAR:
		return KindMETAR, nil
	case KindTAF:
		return KindTAF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RawReport is a single undecoded report as supplied by a fetcher
type RawReport struct {
	Kind      ReportKind
	Text      string
	StationID string
}

// DecodedMetar holds the human-readable fields extracted from a METAR
type DecodedMetar struct {
	Conditions  string `json:"conditions"`
	Visibility  string `json:"visibility"`
	Wind        string `json:"wind"`
	Temperature string `json:"temperature"`
	Altimeter   string `json:"altimeter"`
}

// DefaultMetar returns a DecodedMetar with every field at its default
func DefaultMetar() DecodedMetar {
	return DecodedMetar{
		Conditions:  clearValue,
		Visibility:  unknownValue,
		Wind:        unknownValue,
		Temperature: unknownValue,
		Altimeter:   unknownValue,
	}
}

// DecodedTaf holds the human-readable fields extracted from a TAF
type DecodedTaf struct {
	Valid    string `json:"valid"`
	Forecast string `json:"forecast"`
}

// DefaultTaf returns a DecodedTaf with every field at its default
func DefaultTaf() DecodedTaf {
	return DecodedTaf{
		Valid:    unknownValue,
		Forecast: unknownValue,
	}
}

// DecodedReport is the result of decoding a RawReport. Exactly one of
// Metar and Taf is set, matching Kind.
type DecodedReport struct {
	Kind      ReportKind    `json:"kind"`
	StationID string        `json:"station,omitempty"`
	Raw       string        `json:"raw"`
	Metar     *DecodedMetar `json:"metar,omitempty"`
	Taf       *DecodedTaf   `json:"taf,omitempty"`
}

// Wind represents the wind group of a METAR
type Wind struct {
	Direction string
	Speed     string
	Gust      *string
}

// Cloud represents a single sky condition layer
type Cloud struct {
	Coverage string
	Height   *int // hundreds of feet
}

// ValidPeriod holds the digit groups of a TAF issuance time and validity range
type ValidPeriod struct {
	IssueDay, IssueHour, IssueMinute string
	FromDay, FromHour                string
	ToDay, ToHour                    string
}

// WeatherReport is the combined METAR + TAF view served by the proxy
type WeatherReport struct {
	Name       string       `json:"name"`
	ICAO       string       `json:"icao"`
	METAR      string       `json:"metar"`
	TAF        string       `json:"taf"`
	Decoded    DecodedMetar `json:"decoded"`
	TAFDecoded DecodedTaf   `json:"tafDecoded"`
}
