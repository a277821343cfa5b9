package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color definitions using fatih/color
var (
	labelColor   = color.New(color.FgCyan)
	sectionColor = color.New(color.FgBlue, color.Bold)
	valueColor   = color.New(color.FgWhite)
	numberColor  = color.New(color.FgGreen)
	missingColor = color.New(color.FgYellow)
	rawColor     = color.New(color.Faint)
)

// formatWind converts a Wind to "DDD° at SS knots[ gusting GG]"
func formatWind(wind Wind) string {
	s := fmt.Sprintf("%s° at %s knots", wind.Direction, wind.Speed)
	if wind.Gust != nil {
		s += " gusting " + *wind.Gust
	}
	return s
}

func formatStatuteMiles(miles string) string {
	return miles + " statute miles"
}

func formatMetersAsMiles(meters int) string {
	return fmt.Sprintf("%.1f statute miles", MetersToStatuteMiles(meters))
}

func formatTemperature(temp, dewPoint int) string {
	return fmt.Sprintf("%d°C / %d°C dewpoint (%d°F / %d°F)",
		temp, dewPoint, CelsiusToFahrenheit(temp), CelsiusToFahrenheit(dewPoint))
}

func formatAltimeter(inHg float64) string {
	return fmt.Sprintf("%.2f inHg", inHg)
}

// formatClouds describes each layer and joins them with commas. Clear layers
// never carry a height.
func formatClouds(clouds []Cloud) string {
	descriptions := make([]string, 0, len(clouds))
	for _, cloud := range clouds {
		desc, ok := cloudCoverage[cloud.Coverage]
		if !ok {
			continue
		}
		if cloud.Height != nil && desc != clearValue {
			desc += " at " + formatNumberWithCommas(*cloud.Height*100) + " ft"
		}
		descriptions = append(descriptions, desc)
	}
	return strings.Join(descriptions, ", ")
}

// formatValidPeriod re-slices the TAF time groups without any calendar math
func formatValidPeriod(p ValidPeriod) string {
	return fmt.Sprintf("From %s:%sZ to %s:%sZ on day %s/%s",
		p.FromDay, p.FromHour, p.ToDay, p.ToHour, p.IssueDay, p.IssueHour)
}

// formatNumberWithCommas adds thousands separators to a number
func formatNumberWithCommas(n int) string {
	numStr := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, numStr = "-", numStr[1:]
	}

	var sb strings.Builder
	for i, c := range numStr {
		if i > 0 && (len(numStr)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sign + sb.String()
}

// writeField writes a colored "Label: value" line, highlighting placeholders
func writeField(sb *strings.Builder, label, value string) {
	labelColor.Fprint(sb, label+": ")
	switch value {
	case unknownValue, notAvailableValue:
		missingColor.Fprint(sb, value)
	default:
		valueColor.Fprint(sb, value)
	}
	sb.WriteString("\n")
}

// formatStation returns "ICAO (Airport Name)" when the airport is known
func formatStation(icao string) string {
	name := AirportName(icao)
	if name == unknownAirport {
		return icao
	}
	return fmt.Sprintf("%s (%s)", icao, name)
}

// FormatMETAR renders a decoded METAR for the terminal
func FormatMETAR(station, raw string, m DecodedMetar, showRaw bool) string {
	var sb strings.Builder

	sectionColor.Fprint(&sb, "METAR")
	sb.WriteString("\n")
	writeField(&sb, "Station", formatStation(station))
	if showRaw {
		labelColor.Fprint(&sb, "Raw: ")
		rawColor.Fprint(&sb, raw)
		sb.WriteString("\n")
	}

	writeField(&sb, "Conditions", m.Conditions)
	writeField(&sb, "Visibility", m.Visibility)
	writeField(&sb, "Wind", m.Wind)
	writeField(&sb, "Temperature", m.Temperature)

	labelColor.Fprint(&sb, "Altimeter: ")
	if altimeter := parseAltimeter(raw); altimeter != nil && m.Altimeter != unknownValue {
		valueColor.Fprint(&sb, m.Altimeter)
		numberColor.Fprintf(&sb, " (%.1f hPa)", InHgToMillibars(*altimeter))
	} else {
		missingColor.Fprint(&sb, m.Altimeter)
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatTAF renders a decoded TAF for the terminal
func FormatTAF(station, raw string, t DecodedTaf, showRaw bool) string {
	var sb strings.Builder

	sectionColor.Fprint(&sb, "TAF")
	sb.WriteString("\n")
	writeField(&sb, "Station", formatStation(station))
	if showRaw {
		labelColor.Fprint(&sb, "Raw: ")
		rawColor.Fprint(&sb, raw)
		sb.WriteString("\n")
	}

	writeField(&sb, "Valid", t.Valid)
	writeField(&sb, "Forecast", t.Forecast)

	return sb.String()
}
