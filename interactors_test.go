package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadReport(t *testing.T) {
	station, raw, ok := readReport(strings.NewReader("\nKSEA 121853Z 24015G25KT 10SM CLR 22/18 A3012\nKBFI ...\n"))
	require.True(t, ok)
	assert.Equal(t, "KSEA", station)
	assert.Equal(t, "KSEA 121853Z 24015G25KT 10SM CLR 22/18 A3012", raw)

	station, _, ok = readReport(strings.NewReader("METAR KBFI 121853Z 18008KT 10SM"))
	require.True(t, ok)
	assert.Equal(t, "KBFI", station)

	_, _, ok = readReport(strings.NewReader("  \n\n"))
	assert.False(t, ok)
}

func TestGetStationCodeFromArgs(t *testing.T) {
	code, err := getStationCodeFromArgs([]string{"pae"})
	require.NoError(t, err)
	assert.Equal(t, "KPAE", code)

	_, err = getStationCodeFromArgs(nil)
	assert.Error(t, err)

	_, err = getStationCodeFromArgs([]string{"TOOLONG"})
	assert.ErrorIs(t, err, ErrInvalidStation)
}

func TestPromptForStationCode(t *testing.T) {
	var out bytes.Buffer
	code, err := promptForStationCode(strings.NewReader("olm\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "KOLM", code)
	assert.Contains(t, out.String(), "Enter airport code")

	// no trailing newline
	code, err = promptForStationCode(strings.NewReader("KUIL"), &out)
	require.NoError(t, err)
	assert.Equal(t, "KUIL", code)

	_, err = promptForStationCode(strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestCheckReportFlags(t *testing.T) {
	assert.NoError(t, checkReportFlags(false, false, false))
	assert.NoError(t, checkReportFlags(true, false, false))
	assert.NoError(t, checkReportFlags(false, true, false))
	assert.NoError(t, checkReportFlags(false, false, true))
	assert.NoError(t, checkReportFlags(true, false, true))

	err := checkReportFlags(false, true, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-taf is not supported")

	assert.Error(t, checkReportFlags(true, true, false))
	assert.Error(t, checkReportFlags(true, true, true))
}
