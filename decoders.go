package main

import (
	"strings"
	"unicode/utf8"
)

// Decode decodes a raw report according to its kind
func Decode(report RawReport) (DecodedReport, error) {
	kind, err := ParseReportKind(string(report.Kind))
	if err != nil {
		return DecodedReport{}, err
	}

	decoded := DecodedReport{
		Kind:      kind,
		StationID: report.StationID,
		Raw:       report.Text,
	}

	switch kind {
	case KindMETAR:
		m := DecodeMETAR(report.Text)
		decoded.Metar = &m
	case KindTAF:
		t := DecodeTAF(report.Text)
		decoded.Taf = &t
	}

	return decoded, nil
}

// isMalformed reports whether a raw report cannot be decoded at all
func isMalformed(raw string) bool {
	return strings.TrimSpace(raw) == "" || !utf8.ValidString(raw)
}

// DecodeMETAR decodes a raw METAR string. Every field is populated: fields
// whose pattern does not match keep their default. Malformed input yields
// the full default object.
func DecodeMETAR(raw string) (m DecodedMetar) {
	m = DefaultMetar()
	if isMalformed(raw) {
		return m
	}

	defer func() {
		if recover() != nil {
			m = DefaultMetar()
		}
	}()

	if wind := parseWind(raw); wind != nil {
		m.Wind = formatWind(*wind)
	}

	if miles, meters := parseVisibility(raw); miles != nil {
		m.Visibility = formatStatuteMiles(*miles)
	} else if meters != nil && *meters > 50 {
		m.Visibility = formatMetersAsMiles(*meters)
	}

	if temp, dewPoint := parseTemperature(raw); temp != nil && dewPoint != nil {
		m.Temperature = formatTemperature(*temp, *dewPoint)
	}

	if altimeter := parseAltimeter(raw); altimeter != nil {
		m.Altimeter = formatAltimeter(*altimeter)
	}

	if clouds := parseClouds(raw); len(clouds) > 0 {
		m.Conditions = formatClouds(clouds)
	}

	return m
}

// DecodeTAF decodes a raw TAF string. Malformed input yields the full
// default object.
func DecodeTAF(raw string) (t DecodedTaf) {
	t = DefaultTaf()
	if isMalformed(raw) {
		return t
	}

	defer func() {
		if recover() != nil {
			t = DefaultTaf()
		}
	}()

	if period := parseValidPeriod(raw); period != nil {
		t.Valid = formatValidPeriod(*period)
	}

	if summary, ok := parseForecastSummary(raw); ok {
		t.Forecast = summary
	} else {
		t.Forecast = forecastFallback
	}

	return t
}
