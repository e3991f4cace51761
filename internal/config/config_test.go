// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		ArtifactType:   "RESOURCE",
		TypeName:       "Example::Test::Resource",
		Language:       "typescript",
		Runtime:        "nodejs12.x",
		Entrypoint:     "dist/handlers.entrypoint",
		TestEntrypoint: "dist/handlers.testEntrypoint",
		Settings: HandlerSettings{
			UseDocker:       true,
			ProtocolVersion: ProtocolVersion,
		},
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	settings := validSettings()

	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingsSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, validSettings().Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `    "typeName": "Example::Test::Resource"`)
	assert.Contains(t, string(raw), `"protocolVersion": "2.0.0"`)
	assert.NotContains(t, string(raw), "buildCommand")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(s *Settings) {},
		},
		{
			name:    "bad type name",
			mutate:  func(s *Settings) { s.TypeName = "NotAResource" },
			wantErr: "invalid type name",
		},
		{
			name:    "wrong language",
			mutate:  func(s *Settings) { s.Language = "java" },
			wantErr: "unsupported language",
		},
		{
			name:    "missing protocol version",
			mutate:  func(s *Settings) { s.Settings.ProtocolVersion = "" },
			wantErr: "missing protocol version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := validSettings()
			tt.mutate(settings)

			err := settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateTypeName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"AWS::S3::Bucket", true},
		{"Initech::TPS::Report", true},
		{"My0rg::Svc1::Res2", true},
		{"", false},
		{"AWS::S3", false},
		{"A::S3::Bucket", false},
		{"AWS::S3::Bucket::Extra", false},
		{"aws::s-3::bucket", false},
	}

	for _, tt := range tests {
		err := ValidateTypeName(tt.name)
		if tt.valid {
			assert.NoError(t, err, tt.name)
		} else {
			assert.Error(t, err, tt.name)
		}
	}
}

func TestHyphenatedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AWS::Foo::Bar", "aws-foo-bar"},
		{"Initech::TPS::Report", "initech-tps-report"},
		{"Example::Test::Resource", "example-test-resource"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HyphenatedName(tt.in))
	}
}
