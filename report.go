package main

import "fmt"

// BuildWeatherReport assembles the combined view for a station. A missing
// report is replaced by a "not available" sentinel and is never decoded.
func BuildWeatherReport(icao string, metar, taf FetchResult) WeatherReport {
	report := WeatherReport{
		Name: AirportName(icao),
		ICAO: icao,
	}

	if metar.Err == nil && metar.Report.Text != "" {
		report.METAR = metar.Report.Text
		report.Decoded = DecodeMETAR(metar.Report.Text)
	} else {
		report.METAR = fmt.Sprintf("%s METAR data not available", icao)
		report.Decoded = DecodedMetar{
			Conditions:  notAvailableValue,
			Visibility:  unknownValue,
			Wind:        unknownValue,
			Temperature: unknownValue,
			Altimeter:   unknownValue,
		}
	}

	if taf.Err == nil && taf.Report.Text != "" {
		report.TAF = taf.Report.Text
		report.TAFDecoded = DecodeTAF(taf.Report.Text)
	} else {
		report.TAF = fmt.Sprintf("%s TAF data not available", icao)
		report.TAFDecoded = DecodedTaf{
			Valid:    unknownValue,
			Forecast: notAvailableValue,
		}
	}

	return report
}
