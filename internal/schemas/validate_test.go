package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keywordSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["keyword", "priority_rank"],
		"properties": {
			"keyword": {"type": "string", "minLength": 1},
			"priority_rank": {"type": "integer", "minimum": 1}
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(keywordSchema, `[{"keyword":"python","priority_rank":1}]`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(keywordSchema, `[{"keyword":"python"}]`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "priority_rank")
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(keywordSchema), 0o600))
	require.NoError(t, os.WriteFile(docPath, []byte(`[{"keyword":"go","priority_rank":2}]`), 0o600))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(keywordSchema), 0o600))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	err = ValidateJSON(filepath.Join(dir, "missing-schema.json"), schemaPath)
	assert.Error(t, err)
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Running from internal/schemas, the repo's schema files are two levels up
	path := ResolveSchemaPath(JobContextSchema)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
