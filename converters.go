package main

import "math"

const metersPerStatuteMile = 1609.34

// CelsiusToFahrenheit converts temperature from Celsius to Fahrenheit,
// rounding halves up
func CelsiusToFahrenheit(celsius int) int {
	return int(math.Floor(float64(celsius)*9/5 + 32 + 0.5))
}

// MetersToStatuteMiles converts a visibility distance in meters to statute miles
func MetersToStatuteMiles(meters int) float64 {
	return float64(meters) / metersPerStatuteMile
}

// InHgToMillibars converts pressure from inches of mercury to millibars (hPa)
func InHgToMillibars(inHg float64) float64 {
	return inHg * 33.8639
}
