// SPDX-License-Identifier: Apache-2.0

package typescript

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand_Default(t *testing.T) {
	project := newTestProject(t)
	project.Settings.Settings.UseDocker = false
	plugin := NewPlugin()

	command := plugin.BuildCommand(project)

	assert.Contains(t, command, "npm install --optional && sam build --debug --build-dir")
	assert.Contains(t, command, filepath.Join(project.Root, "build"))
	assert.NotContains(t, command, "--use-container")
	assert.Equal(t, " "+MainHandlerFunction, command[len(command)-len(MainHandlerFunction)-1:])
}

func TestBuildCommand_UseDocker(t *testing.T) {
	project := newTestProject(t)
	project.Settings.Settings.UseDocker = true
	plugin := NewPlugin()

	command := plugin.BuildCommand(project)

	assert.Contains(t, command, "--use-container "+MainHandlerFunction)
}

func TestBuildCommand_Override(t *testing.T) {
	project := newTestProject(t)
	project.Settings.Settings.UseDocker = false
	project.Settings.Settings.BuildCommand = "npm run custom-build"
	plugin := NewPlugin()

	command := plugin.BuildCommand(project)

	assert.Equal(t, "npm run custom-build "+MainHandlerFunction, command)
	assert.NotContains(t, command, "sam build")
}

func TestZipDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.js"), []byte("handler"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "util.js"), []byte("util"), 0o644))

	raw, err := zipDirectory(root)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)

	contents := map[string]string{}
	for _, file := range reader.File {
		f, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		contents[file.Name] = string(data)
	}

	assert.Equal(t, map[string]string{
		"index.js":       "handler",
		"nested/util.js": "util",
	}, contents)
}

func TestPackage(t *testing.T) {
	project := newTestProject(t)
	project.Settings.Settings.UseDocker = false
	// Stand in for the npm/sam pipeline: produce a build directory the way
	// sam build would, then ignore the appended function name.
	project.Settings.Settings.BuildCommand =
		"mkdir -p build/" + MainHandlerFunction + " && echo 'exports.handler = () => {};' > build/" + MainHandlerFunction + "/index.js && true"
	plugin := NewPlugin()

	require.NoError(t, plugin.Init(project))

	var buf bytes.Buffer
	require.NoError(t, plugin.Package(context.Background(), project, &buf, false))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, file := range reader.File {
		names[file.Name] = true
	}
	assert.True(t, names["ResourceProvider.zip"], "expected inner provider zip")
	assert.True(t, names["src/handlers.ts"], "expected handler sources")

	for _, file := range reader.File {
		if file.Name != "ResourceProvider.zip" {
			continue
		}
		f, err := file.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(f)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		inner, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
		require.NoError(t, err)
		require.Len(t, inner.File, 1)
		assert.Equal(t, "index.js", inner.File[0].Name)
	}
}

func TestPackage_BuildFailure(t *testing.T) {
	project := newTestProject(t)
	project.Settings.Settings.UseDocker = false
	project.Settings.Settings.BuildCommand = "exit 1 ;"
	plugin := NewPlugin()

	err := plugin.Package(context.Background(), project, io.Discard, false)
	require.ErrorIs(t, err, ErrBuildFailed)
}

func TestPackage_DryRunSkipsBuild(t *testing.T) {
	project := newTestProject(t)
	project.Settings.Settings.UseDocker = false
	// Would fail the packaging step if the build ran.
	project.Settings.Settings.BuildCommand = "exit 1 ;"
	plugin := NewPlugin()

	require.NoError(t, plugin.Init(project))

	buildDir := filepath.Join(project.Root, "build", MainHandlerFunction)
	require.NoError(t, os.MkdirAll(buildDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "index.js"), []byte("exports.handler = () => {};"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, plugin.Package(context.Background(), project, &buf, true))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, file := range reader.File {
		names[file.Name] = true
	}
	assert.True(t, names["ResourceProvider.zip"], "expected inner provider zip")
	assert.True(t, names["src/handlers.ts"], "expected handler sources")
}
