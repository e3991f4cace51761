// SPDX-License-Identifier: Apache-2.0

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/config"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/jsonutils"
)

var (
	// ErrNotInitialized indicates no settings file was found in the current directory.
	ErrNotInitialized = errors.New("not in a resource provider project (" + config.FileName + " not found)")

	// ErrInvalidSettings indicates the settings file exists but is invalid.
	ErrInvalidSettings = errors.New("invalid project settings")

	// ErrSchemaNotFound indicates the resource schema file doesn't exist.
	ErrSchemaNotFound = errors.New("resource schema not found")

	// ErrInvalidSchema indicates the schema file exists but couldn't be parsed.
	ErrInvalidSchema = errors.New("invalid resource schema")
)

// contextKey is used to store Project in context.Context.
type contextKey struct{}

// Project holds the resolved settings, parsed schema and resolved models for
// the provider project in the working directory.
type Project struct {
	// Root is the project root directory.
	Root string

	// Settings are the loaded project settings.
	Settings *config.Settings

	// Schema is the parsed resource provider schema document.
	Schema *jsonutils.Document

	// Models are the schema's resolved models, root model first.
	Models []jsonutils.Model
}

// SchemaFileName returns the schema file name for the project's type,
// e.g. "aws-foo-bar.json".
func (p *Project) SchemaFileName() string {
	return config.HyphenatedName(p.Settings.TypeName) + ".json"
}

// Load loads the project from the current working directory and returns a new
// context.Context with the Project stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	project, err := LoadFrom(cwd)
	if err != nil {
		return nil, err
	}

	return context.WithValue(ctx, contextKey{}, project), nil
}

// LoadFrom loads the project rooted at the given directory.
func LoadFrom(root string) (*Project, error) {
	settingsPath := filepath.Join(root, config.FileName)
	if _, statErr := os.Stat(settingsPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	project := &Project{Root: root, Settings: settings}

	schemaPath := filepath.Join(root, project.SchemaFileName())
	if _, statErr := os.Stat(schemaPath); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, schemaPath)
	}

	loader := jsonutils.NewLoader(os.DirFS(root))
	doc, err := loader.LoadFile(project.SchemaFileName())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	project.Schema = doc

	models, err := jsonutils.ResolveModels(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	project.Models = models

	return project, nil
}

// From extracts the Project from a context.Context.
// Returns nil if no Project is stored.
func From(ctx context.Context) *Project {
	project, _ := ctx.Value(contextKey{}).(*Project)
	return project
}
