// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/config"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/jsonutils"
)

const testSchema = `{
	"typeName": "Example::Test::Resource",
	"properties": {
		"Id": {"type": "string"},
		"Count": {"type": "integer"}
	},
	"required": ["Id"],
	"primaryIdentifier": ["/properties/Id"]
}`

func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	settings := &config.Settings{
		ArtifactType:   "RESOURCE",
		TypeName:       "Example::Test::Resource",
		Language:       "typescript",
		Runtime:        "nodejs12.x",
		Entrypoint:     "dist/handlers.entrypoint",
		TestEntrypoint: "dist/handlers.testEntrypoint",
		Settings: config.HandlerSettings{
			ProtocolVersion: config.ProtocolVersion,
		},
	}
	require.NoError(t, settings.Save(filepath.Join(root, config.FileName)))
	require.NoError(t, os.WriteFile(filepath.Join(root, "example-test-resource.json"), []byte(testSchema), 0o644))

	return root
}

func TestLoadFrom(t *testing.T) {
	root := writeProject(t)

	project, err := LoadFrom(root)
	require.NoError(t, err)

	assert.Equal(t, root, project.Root)
	assert.Equal(t, "Example::Test::Resource", project.Settings.TypeName)
	assert.Equal(t, "example-test-resource.json", project.SchemaFileName())
	assert.Equal(t, []string{"/properties/Id"}, project.Schema.PrimaryIdentifier)

	require.Len(t, project.Models, 1)
	assert.Equal(t, jsonutils.ResourceModelName, project.Models[0].Name)
}

func TestLoadFrom_NotInitialized(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestLoadFrom_InvalidSettings(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("{}"), 0o644))

	_, err := LoadFrom(root)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestLoadFrom_SchemaNotFound(t *testing.T) {
	root := writeProject(t)
	require.NoError(t, os.Remove(filepath.Join(root, "example-test-resource.json")))

	_, err := LoadFrom(root)
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestLoadFrom_InvalidSchema(t *testing.T) {
	root := writeProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "example-test-resource.json"), []byte("{"), 0o644))

	_, err := LoadFrom(root)
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(context.Background()))

	project := &Project{Root: "/tmp/project"}
	ctx := context.WithValue(context.Background(), contextKey{}, project)
	assert.Same(t, project, From(ctx))
}
