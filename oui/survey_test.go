package oui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	values []int
	idx    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.idx%len(r.values)]
	r.idx++
	return v % n
}

func writeSurvey(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maclist.lst")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func Test_LoadSurvey(t *testing.T) {
	path := writeSurvey(t,
		"1 wlan usb-adapter D-Link DWA-125 A3 28 10 7b",
		"2 eth onboard Hewlett-Packard - - 00 1f 29",
		"garbage line",
		"4 wlan usb-adapter TP-Link TL-WN722N v1 c4 6e 1f",
	)

	s, err := LoadSurvey(path)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	recs := s.Records()
	assert.Equal(t, 1, recs[0].LineNumber)
	assert.Equal(t, "wlan", recs[0].InterfaceClass)
	assert.Equal(t, "D-Link", recs[0].Manufacturer)
	assert.Equal(t, [3]string{"28", "10", "7B"}, recs[0].OUI)

	// the malformed third line is skipped, the record after it keeps its
	// physical line number
	assert.Equal(t, 4, recs[2].LineNumber)
	assert.Equal(t, [3]string{"C4", "6E", "1F"}, recs[2].OUI)
}

func Test_LoadSurvey_MissingFile(t *testing.T) {
	_, err := LoadSurvey(filepath.Join(t.TempDir(), "nope.lst"))
	require.Error(t, err)
}

func Test_ByLine(t *testing.T) {
	path := writeSurvey(t,
		"1 wlan usb-adapter D-Link DWA-125 A3 28 10 7B",
		"2 eth onboard Hewlett-Packard - - 00 1F 29",
		"3 wlan laptop Apple MacBook-Air - AA BB CC",
	)
	s, err := LoadSurvey(path)
	require.NoError(t, err)

	rec, err := s.ByLine(3)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.LineNumber)
	assert.Equal(t, [3]string{"AA", "BB", "CC"}, rec.OUI)

	for _, n := range []int{0, -1, 4, 100} {
		_, err := s.ByLine(n)
		assert.True(t, errors.Is(err, ErrRecordNotFound), "line %d", n)
	}
}

func Test_Match_CaseInsensitive(t *testing.T) {
	path := writeSurvey(t,
		"1 wlan usb-adapter D-Link DWA-125 A3 28 10 7B",
		"2 wlan usb-adapter TP-Link TL-WN722N v1 C4 6E 1F",
		"3 eth onboard Hewlett-Packard - - 00 1F 29",
	)
	s, err := LoadSurvey(path)
	require.NoError(t, err)

	matches := s.Match("LINK")
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].LineNumber)
	assert.Equal(t, 2, matches[1].LineNumber)

	assert.Len(t, s.Match("wlan"), 2)
	assert.Empty(t, s.Match("broadcom"))
}

func Test_PickRandom_NoMatch(t *testing.T) {
	path := writeSurvey(t,
		"1 wlan usb-adapter D-Link DWA-125 A3 28 10 7B",
	)
	s, err := LoadSurvey(path)
	require.NoError(t, err)

	_, err = s.PickRandom("wlan0", "broadcom", &scriptedRand{values: []int{0}})
	require.True(t, errors.Is(err, ErrPatternNotFound))
	assert.Contains(t, err.Error(), "broadcom")
	assert.Contains(t, err.Error(), "wlan0")
}

func Test_PickRandom_Exhaustive(t *testing.T) {
	path := writeSurvey(t,
		"1 wlan usb-adapter D-Link DWA-125 A3 28 10 7B",
		"2 eth onboard Hewlett-Packard - - 00 1F 29",
		"3 wlan usb-adapter TP-Link TL-WN722N v1 C4 6E 1F",
		"4 wlan laptop Apple MacBook-Air - 60 F8 1D",
	)
	s, err := LoadSurvey(path)
	require.NoError(t, err)

	matches := s.Match("wlan")
	require.Len(t, matches, 3)

	// every possible draw maps onto a distinct match, in file order
	seen := map[int]bool{}
	for draw := 0; draw < len(matches); draw++ {
		rec, err := s.PickRandom("wlan0", "wlan", &scriptedRand{values: []int{draw}})
		require.NoError(t, err)
		assert.Equal(t, matches[draw].LineNumber, rec.LineNumber)
		seen[rec.LineNumber] = true
	}
	assert.Len(t, seen, 3)
}
