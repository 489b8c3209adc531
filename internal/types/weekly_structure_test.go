//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDayLabel(t *testing.T) {
	tests := []struct {
		input string
		want  DayLabel
		ok    bool
	}{
		{input: "Push", want: DayPush, ok: true},
		{input: "pull", want: DayPull, ok: true},
		{input: "  LEGS ", want: DayLegs, ok: true},
		{input: "Full Body", want: DayFullBody, ok: true},
		{input: "full-body", want: DayFullBody, ok: true},
		{input: "FULL_BODY", want: DayFullBody, ok: true},
		{input: "fullbody", want: DayFullBody, ok: true},
		{input: "upper", want: DayUpper, ok: true},
		{input: "Lower", want: DayLower, ok: true},
		{input: "Arms", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDayLabel(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeeklyStructure_Clone(t *testing.T) {
	original := WeeklyStructure{DayPush, DayPull, DayLegs}
	clone := original.Clone()

	assert.Equal(t, original, clone)
	clone[0] = DayUpper
	assert.Equal(t, DayPush, original[0])

	var empty WeeklyStructure
	assert.Nil(t, empty.Clone())
}

func TestWeeklyStructure_String(t *testing.T) {
	w := WeeklyStructure{DayFullBody, DayUpper}

	assert.Equal(t, []string{"Full Body", "Upper"}, w.Strings())
	assert.Equal(t, "Full Body / Upper", w.String())
	assert.Equal(t, "", WeeklyStructure(nil).String())
}
