package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := map[int]int{
		-40: -40,
		-13: 9,
		-10: 14,
		-5:  23,
		-3:  27,
		0:   32,
		1:   34,
		18:  64,
		22:  72,
		37:  99,
	}
	for celsius, want := range tests {
		assert.Equal(t, want, CelsiusToFahrenheit(celsius), "%d°C", celsius)
	}
}

func TestMetersToStatuteMiles(t *testing.T) {
	assert.InDelta(t, 6.2131, MetersToStatuteMiles(9999), 0.0001)
	assert.Equal(t, "6.2 statute miles", formatMetersAsMiles(9999))
	assert.InDelta(t, 1.0, MetersToStatuteMiles(1609), 0.001)
}

func TestInHgToMillibars(t *testing.T) {
	assert.InDelta(t, 1013.2, InHgToMillibars(29.92), 0.1)
}
