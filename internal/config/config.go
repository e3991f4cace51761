// SPDX-License-Identifier: Apache-2.0

// Package config handles resource provider project settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// FileName is the name of the project settings file.
const FileName = ".rpdk-config"

// ProtocolVersion is the handler wire protocol version written at init.
const ProtocolVersion = "2.0.0"

// typeNamePattern matches resource type names like Organization::Service::Resource.
var typeNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{2,64}::[a-zA-Z0-9]{2,64}::[a-zA-Z0-9]{2,64}$`)

// HandlerSettings are the language-plugin settings stored under "settings".
type HandlerSettings struct {
	UseDocker       bool   `json:"useDocker"`
	ProtocolVersion string `json:"protocolVersion"`
	BuildCommand    string `json:"buildCommand,omitempty"`
}

// Settings represents the project settings file.
type Settings struct {
	ArtifactType   string          `json:"artifact_type"`
	TypeName       string          `json:"typeName"`
	Language       string          `json:"language"`
	Runtime        string          `json:"runtime"`
	Entrypoint     string          `json:"entrypoint"`
	TestEntrypoint string          `json:"testEntrypoint"`
	Settings       HandlerSettings `json:"settings"`
}

// Load reads Settings from a file path.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var s Settings
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the Settings to a file path.
func (s *Settings) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	return enc.Encode(s)
}

// Validate checks the settings for required fields and valid values.
func (s *Settings) Validate() error {
	if !typeNamePattern.MatchString(s.TypeName) {
		return fmt.Errorf("invalid type name %q", s.TypeName)
	}
	if s.Language != "typescript" {
		return fmt.Errorf("unsupported language %q", s.Language)
	}
	if s.Settings.ProtocolVersion == "" {
		return errors.New("missing protocol version")
	}
	return nil
}

// ValidateTypeName checks a resource type name against the
// Organization::Service::Resource pattern.
func ValidateTypeName(name string) error {
	if !typeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid type name %q, expected Organization::Service::Resource", name)
	}
	return nil
}

// HyphenatedName returns the lowercased, hyphen-joined form of a type name,
// e.g. "AWS::Foo::Bar" becomes "aws-foo-bar". It names the schema file and
// the npm package.
func HyphenatedName(typeName string) string {
	return strings.ToLower(strings.ReplaceAll(typeName, "::", "-"))
}
