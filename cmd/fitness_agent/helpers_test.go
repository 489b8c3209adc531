package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

const (
	memberA = "5b1f0c9e-7a2d-4e3f-8c1b-9d0e6f4a2b7c"
	memberB = "0c7e4d1a-3b9f-4a2e-b6d8-5f1c2e9a7b30"
)

// executeCommand runs the CLI in-process with fresh flag values and an
// environment that points nowhere.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("FITNESS_CATALOG_PATH", "")
	t.Setenv("PORT", "")

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// writeProfileFile writes a three-day intermediate muscle_gain profile,
// with overrides applied from fields.
func writeProfileFile(t *testing.T, dir, name string, fields map[string]any) string {
	t.Helper()
	profile := map[string]any{
		"member_id":               memberA,
		"age":                     29,
		"gender":                  "female",
		"experience_level":        "intermediate",
		"training_days_per_week":  3,
		"primary_goal":            "muscle_gain",
		"height_cm":               170,
		"weight_kg":               70,
		"personalization_enabled": true,
	}
	for k, v := range fields {
		if v == nil {
			delete(profile, k)
			continue
		}
		profile[k] = v
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func readProfileFile(t *testing.T, path string) *types.Profile {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var p types.Profile
	require.NoError(t, json.Unmarshal(data, &p))
	return &p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
