package main

import (
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// parseWind returns the first wind group in the report, or nil
func parseWind(raw string) *Wind {
	matches := windRegex.FindStringSubmatch(raw)
	if matches == nil {
		return nil
	}

	wind := &Wind{
		Direction: matches[1],
		Speed:     matches[2],
	}
	if matches[3] != "" {
		wind.Gust = ptr.To(strings.TrimPrefix(matches[3], "G"))
	}
	return wind
}

// parseVisibility returns either statute miles as written or a distance in
// meters. Statute miles win when both notations are present.
func parseVisibility(raw string) (miles *string, meters *int) {
	if matches := visRegexSM.FindStringSubmatch(raw); matches != nil {
		return ptr.To(matches[1]), nil
	}

	if matches := visRegexMeters.FindStringSubmatch(raw); matches != nil {
		value, err := strconv.Atoi(matches[1])
		if err == nil {
			return nil, ptr.To(value)
		}
	}

	return nil, nil
}

// parseTemperature parses the temperature/dewpoint group. The sign of each
// value comes from looking for the M-prefixed literal in the full report.
func parseTemperature(raw string) (temp, dewPoint *int) {
	matches := tempRegex.FindStringSubmatch(raw)
	if matches == nil {
		return nil, nil
	}

	t, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, nil
	}
	d, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, nil
	}

	if strings.Contains(raw, "M"+matches[1]+"/") {
		t = -t
	}
	if strings.Contains(raw, "/M"+matches[2]) {
		d = -d
	}

	return ptr.To(t), ptr.To(d)
}

// parseAltimeter returns the altimeter setting in inches of mercury
func parseAltimeter(raw string) *float64 {
	matches := altimeterRegex.FindStringSubmatch(raw)
	if matches == nil {
		return nil
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil
	}
	return ptr.To(float64(value) / 100)
}

// parseClouds returns every sky condition layer in order of appearance
func parseClouds(raw string) []Cloud {
	var clouds []Cloud
	for _, matches := range cloudRegex.FindAllStringSubmatch(raw, -1) {
		cloud := Cloud{Coverage: matches[1]}
		if matches[2] != "" {
			if height, err := strconv.Atoi(matches[2]); err == nil {
				cloud.Height = ptr.To(height)
			}
		}
		clouds = append(clouds, cloud)
	}
	return clouds
}

// parseValidPeriod slices the issuance time and validity range of a TAF
func parseValidPeriod(raw string) *ValidPeriod {
	matches := validRegex.FindStringSubmatch(raw)
	if matches == nil {
		return nil
	}

	return &ValidPeriod{
		IssueDay:    matches[1],
		IssueHour:   matches[2],
		IssueMinute: matches[3],
		FromDay:     matches[4],
		FromHour:    matches[5],
		ToDay:       matches[6],
		ToHour:      matches[7],
	}
}

// parseForecastSummary returns the summary of the first flight category
// token found, in priority order
func parseForecastSummary(raw string) (string, bool) {
	for _, category := range flightCategories {
		if strings.Contains(raw, category.Token) {
			return category.Summary, true
		}
	}
	return "", false
}
