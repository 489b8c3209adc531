package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

func TestParseStructure(t *testing.T) {
	assert.Equal(t, types.WeeklyStructure{"push", "Pull", "legs"}, parseStructure(" push, Pull ,legs,"))
	assert.Empty(t, parseStructure(""))
}

func TestOverrideCommand_SetAndClear(t *testing.T) {
	path := writeProfileFile(t, t.TempDir(), "sam.json", nil)

	output, err := executeCommand(t, "override", "set", "--profile", path, "--structure", "push,pull,LEGS")
	require.NoError(t, err)
	assert.Contains(t, output, "Push / Pull / Legs")

	saved := readProfileFile(t, path)
	assert.Equal(t, types.WeeklyStructure{types.DayPush, types.DayPull, types.DayLegs}, saved.WeeklyStructureOverride)

	r := generateFromFile(t, path)
	assert.True(t, r.OverrideApplied)
	assert.Equal(t, saved.WeeklyStructureOverride, r.WeeklyStructure)

	_, err = executeCommand(t, "override", "clear", "--profile", path)
	require.NoError(t, err)
	assert.Nil(t, readProfileFile(t, path).WeeklyStructureOverride)

	r = generateFromFile(t, path)
	assert.False(t, r.OverrideApplied)
	assert.Equal(t, types.WeeklyStructure{types.DayFullBody, types.DayFullBody, types.DayFullBody}, r.WeeklyStructure)
}

func TestOverrideCommand_RejectsAndLeavesFileUnchanged(t *testing.T) {
	path := writeProfileFile(t, t.TempDir(), "sam.json", nil)

	_, err := executeCommand(t, "override", "set", "-p", path, "-s", "Upper,Lower")
	assert.ErrorIs(t, err, roadmap.ErrStructureLengthMismatch)

	_, err = executeCommand(t, "override", "set", "-p", path, "-s", "Upper,Arms,Lower")
	var labelErr *roadmap.InvalidDayLabelError
	assert.ErrorAs(t, err, &labelErr)

	assert.Nil(t, readProfileFile(t, path).WeeklyStructureOverride)
}

func TestOverrideCommand_KeepsDefaultPersonalization(t *testing.T) {
	path := writeProfileFile(t, t.TempDir(), "sam.json", map[string]any{"personalization_enabled": nil})

	_, err := executeCommand(t, "override", "set", "-p", path, "-s", "Push,Pull,Legs")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, true, raw["personalization_enabled"])
}

func TestOverrideCommand_RequiresTarget(t *testing.T) {
	_, err := executeCommand(t, "override", "set", "--structure", "Upper")
	assert.ErrorContains(t, err, "exactly one of")

	_, err = executeCommand(t, "override", "clear")
	assert.ErrorContains(t, err, "exactly one of")

	_, err = executeCommand(t, "override", "set", "--member-id", memberA)
	assert.ErrorContains(t, err, "required")
}

func TestPersonalizationCommand(t *testing.T) {
	path := writeProfileFile(t, t.TempDir(), "sam.json", nil)

	output, err := executeCommand(t, "personalization", "disable", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Personalization disabled")
	assert.False(t, readProfileFile(t, path).PersonalizationEnabled)

	// Repeating the current setting is a no-op.
	_, err = executeCommand(t, "personalization", "disable", "--profile", path)
	require.NoError(t, err)
	assert.False(t, readProfileFile(t, path).PersonalizationEnabled)

	r := generateFromFile(t, path)
	assert.False(t, r.PersonalizationEnabled)
	assert.Nil(t, r.Objective)

	output, err = executeCommand(t, "personalization", "enable", "-p", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Personalization enabled")
	assert.True(t, readProfileFile(t, path).PersonalizationEnabled)
}

func TestPersonalizationCommand_DisablingKeepsOverride(t *testing.T) {
	path := writeProfileFile(t, t.TempDir(), "sam.json", map[string]any{"weekly_structure_override": []string{"Upper", "Lower", "Upper"}})

	_, err := executeCommand(t, "personalization", "disable", "--profile", path)
	require.NoError(t, err)
	_, err = executeCommand(t, "personalization", "enable", "--profile", path)
	require.NoError(t, err)

	r := generateFromFile(t, path)
	assert.True(t, r.OverrideApplied)
	assert.Equal(t, types.WeeklyStructure{types.DayUpper, types.DayLower, types.DayUpper}, r.WeeklyStructure)
}
