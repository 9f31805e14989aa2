package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_NextLevel(t *testing.T) {
	tests := []struct {
		name      string
		current   Level
		difficult bool
		expected  Level
	}{
		{name: "low advances to medium", current: LevelLow, difficult: false, expected: LevelMedium},
		{name: "medium advances to high", current: LevelMedium, difficult: false, expected: LevelHigh},
		{name: "high clamps at high", current: LevelHigh, difficult: false, expected: LevelHigh},
		{name: "low difficult clamps at low", current: LevelLow, difficult: true, expected: LevelLow},
		{name: "medium difficult steps back to low", current: LevelMedium, difficult: true, expected: LevelLow},
		{name: "high difficult steps back to medium", current: LevelHigh, difficult: true, expected: LevelMedium},
		{name: "unknown level advances to high", current: Level("X"), difficult: false, expected: LevelHigh},
		{name: "unknown level difficult falls to low", current: Level("X"), difficult: true, expected: LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.current.NextLevel(tt.difficult))
		})
	}
}

func TestLevel_NextLevel_StepBackThenForward(t *testing.T) {
	// A difficulty step followed by a normal step never ends below the start
	// for L and M starts
	for _, start := range []Level{LevelLow, LevelMedium} {
		recovered := start.NextLevel(true).NextLevel(false)
		assert.GreaterOrEqual(t, recovered.Ordinal(), start.Ordinal(), "start %s", start)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected Level
	}{
		{name: "low", code: "L", expected: LevelLow},
		{name: "medium", code: "M", expected: LevelMedium},
		{name: "high", code: "H", expected: LevelHigh},
		{name: "unknown falls back to low", code: "X", expected: LevelLow},
		{name: "empty falls back to low", code: "", expected: LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.code))
		})
	}
}

func TestLevel_Compare(t *testing.T) {
	assert.Negative(t, LevelLow.Compare(LevelMedium))
	assert.Negative(t, LevelMedium.Compare(LevelHigh))
	assert.Positive(t, LevelHigh.Compare(LevelLow))
	assert.Zero(t, LevelMedium.Compare(LevelMedium))
	// Unknown codes rank lowest
	assert.Zero(t, Level("X").Compare(LevelLow))
}

func TestLevel_Label(t *testing.T) {
	assert.Equal(t, "초급", LevelLow.Label())
	assert.Equal(t, "중급", LevelMedium.Label())
	assert.Equal(t, "고급", LevelHigh.Label())
	assert.Equal(t, "X", Level("X").Label())
}
