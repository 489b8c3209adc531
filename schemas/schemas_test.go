package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	internalschemas "github.com/jonathan/fitness-roadmap/internal/schemas"
	"github.com/jonathan/fitness-roadmap/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaNames = []string{schemas.Catalog, schemas.Profile, schemas.Roadmap}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaNames {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasType := schemaObj["type"]
			assert.True(t, hasSchema && hasType, "schema should declare $schema and type")
		})
	}
}

func TestEmbeddedSchemasMatchDisk(t *testing.T) {
	for _, schemaFile := range schemaNames {
		embedded, err := schemas.FS.ReadFile(schemaFile)
		require.NoError(t, err)

		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		assert.Equal(t, string(onDisk), string(embedded))
	}
}

func TestSchemas_CompileAndAcceptEmptyValidDocuments(t *testing.T) {
	documents := map[string]string{
		schemas.Catalog: `{"entries": []}`,
		schemas.Profile: `{"age": 40, "gender": "male", "experience_level": "advanced", "training_days_per_week": 6, "primary_goal": "strength"}`,
		schemas.Roadmap: `{
			"member_id": "5b1f0c9e-7a2d-4e3f-8c1b-9d0e6f4a2b7c",
			"personalization_enabled": false,
			"weekly_structure": [],
			"objective": null,
			"health_status": "unavailable",
			"health_metrics": null,
			"recommended_workouts": [],
			"generated_at": "2024-03-04T09:30:00Z"
		}`,
	}

	for name, doc := range documents {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, internalschemas.Validate(name, []byte(doc)))
		})
	}
}

func TestRoadmapSchema_RejectsUnknownDayLabel(t *testing.T) {
	doc := `{
		"member_id": "5b1f0c9e-7a2d-4e3f-8c1b-9d0e6f4a2b7c",
		"personalization_enabled": true,
		"weekly_structure": ["Push", "Arms"],
		"objective": {"goal": "muscle_gain", "guidance": ["Lift"]},
		"health_status": "available",
		"health_metrics": {"bmi": 24.22, "category": "normal"},
		"recommended_workouts": [],
		"generated_at": "2024-03-04T09:30:00Z"
	}`

	err := internalschemas.Validate(schemas.Roadmap, []byte(doc))
	var validationErr *internalschemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
