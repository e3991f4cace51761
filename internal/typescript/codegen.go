// SPDX-License-Identifier: Apache-2.0

package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/config"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/session"
)

const (
	// Runtime is the Lambda runtime for generated handlers.
	Runtime = "nodejs12.x"

	// Entrypoint and TestEntrypoint are the compiled handler entrypoints.
	Entrypoint     = "dist/handlers.entrypoint"
	TestEntrypoint = "dist/handlers.testEntrypoint"

	// SupportLibName is the npm package generated code depends on.
	SupportLibName    = "@amazon-web-services-cloudformation/cloudformation-cli-typescript-lib"
	SupportLibVersion = "^1.0.1"

	// MainHandlerFunction is the SAM logical id of the handler function.
	MainHandlerFunction = "TypeFunction"

	// Executable is the host CLI generated READMEs refer to.
	Executable = "cfn"

	codeURI = "./"
)

//go:embed templates
var templatesFS embed.FS

//go:embed data
var dataFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"translateType": TranslateType,
	"containsModel": ContainsModel,
	"getInnerType":  GetInnerType,
	"safeReserved":  SafeReserved,
	"propertyName":  propertyName,
	"identifierName": func(path string) string {
		return strings.TrimPrefix(path, "/properties/")
	},
	"join": strings.Join,
}).ParseFS(templatesFS, "templates/*.tmpl"))

// propertyName maps a schema property name to the generated class member
// name: leading lowercase, sanitized against keyword collisions.
func propertyName(name string) string {
	if name == "" {
		return name
	}
	return SafeReserved(strings.ToLower(name[:1]) + name[1:])
}

// Plugin generates, builds and packages TypeScript resource provider
// projects.
type Plugin struct{}

// NewPlugin creates a Plugin.
func NewPlugin() *Plugin {
	return &Plugin{}
}

// DefaultSettings returns the project settings this plugin writes at init.
func (p *Plugin) DefaultSettings(typeName string, useDocker bool) *config.Settings {
	return &config.Settings{
		ArtifactType:   "RESOURCE",
		TypeName:       typeName,
		Language:       "typescript",
		Runtime:        Runtime,
		Entrypoint:     Entrypoint,
		TestEntrypoint: TestEntrypoint,
		Settings: config.HandlerSettings{
			UseDocker:       useDocker,
			ProtocolVersion: config.ProtocolVersion,
		},
	}
}

// Init scaffolds a new provider project: handler stub, npm and TypeScript
// manifests, README and the SAM template. Existing files are preserved, so
// re-running init never destroys handler code.
func (p *Plugin) Init(project *session.Project) error {
	log.Debug("init started", "type", project.Settings.TypeName)

	packageName := config.HyphenatedName(project.Settings.TypeName)

	srcDir := filepath.Join(project.Root, "src")
	if err := os.MkdirAll(srcDir, 0o750); err != nil {
		return fmt.Errorf("failed to create source directory: %w", err)
	}

	if err := p.renderSafe(filepath.Join(srcDir, "handlers.ts"), "handlers.ts.tmpl", map[string]any{
		"LibName":  SupportLibName,
		"TypeName": project.Settings.TypeName,
	}); err != nil {
		return err
	}

	resources := map[string]string{
		".gitignore":            "typescript.gitignore",
		".npmrc":                "npmrc",
		"tsconfig.json":         "tsconfig.json",
		"sam-tests/create.json": "create.json",
	}
	for target, name := range resources {
		path := filepath.Join(project.Root, filepath.FromSlash(target))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		contents, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return fmt.Errorf("missing packaged resource %s: %w", name, err)
		}
		if err := safeWrite(path, contents); err != nil {
			return err
		}
	}

	if err := p.renderSafe(filepath.Join(project.Root, "package.json"), "package.json.tmpl", map[string]any{
		"Name":        packageName,
		"Description": fmt.Sprintf("AWS custom resource provider named %s.", project.Settings.TypeName),
		"LibName":     SupportLibName,
		"LibVersion":  SupportLibVersion,
	}); err != nil {
		return err
	}

	if err := p.renderSafe(filepath.Join(project.Root, "README.md"), "README.md.tmpl", map[string]any{
		"TypeName":    project.Settings.TypeName,
		"SchemaPath":  project.SchemaFileName(),
		"PackageName": packageName,
		"Executable":  Executable,
		"LibName":     SupportLibName,
	}); err != nil {
		return err
	}

	if err := p.writeSAMTemplate(project); err != nil {
		return err
	}

	log.Debug("init complete")
	return nil
}

// WriteSchemaStub writes the starter resource schema for a freshly
// initialized project. An existing schema is never overwritten.
func (p *Plugin) WriteSchemaStub(root, typeName string) error {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "schema.json.tmpl", map[string]any{
		"TypeName": typeName,
	})
	if err != nil {
		return fmt.Errorf("failed to render schema stub: %w", err)
	}

	path := filepath.Join(root, config.HyphenatedName(typeName)+".json")
	return safeWrite(path, buf.Bytes())
}

// Generate renders src/models.ts from the project's resolved models. Unlike
// Init, generated model code is always overwritten.
func (p *Plugin) Generate(project *session.Project) error {
	log.Debug("generate started", "models", len(project.Models))

	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "models.ts.tmpl", map[string]any{
		"LibName":               SupportLibName,
		"TypeName":              project.Settings.TypeName,
		"Models":                project.Models,
		"PrimaryIdentifier":     project.Schema.PrimaryIdentifier,
		"AdditionalIdentifiers": project.Schema.AdditionalIdentifiers,
	})
	if err != nil {
		return fmt.Errorf("failed to generate models: %w", err)
	}

	path := filepath.Join(project.Root, "src", "models.ts")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create source directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debug("generate complete", "path", path)
	return nil
}

// renderSafe renders the named template to path unless the file already exists.
func (p *Plugin) renderSafe(path, name string, data map[string]any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return safeWrite(path, buf.Bytes())
}

func safeWrite(path string, contents []byte) error {
	if _, err := os.Stat(path); err == nil {
		log.Debug("skipping existing file", "path", path)
		return nil
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// samFunction is one AWS::Serverless::Function entry in template.yml.
type samFunction struct {
	Handler string `yaml:"Handler"`
	Runtime string `yaml:"Runtime"`
	CodeUri string `yaml:"CodeUri"`
}

type samResource struct {
	Type       string      `yaml:"Type"`
	Properties samFunction `yaml:"Properties"`
}

type samTemplate struct {
	FormatVersion string `yaml:"AWSTemplateFormatVersion"`
	Transform     string `yaml:"Transform"`
	Description   string `yaml:"Description"`
	Globals       struct {
		Function struct {
			Timeout    int `yaml:"Timeout"`
			MemorySize int `yaml:"MemorySize"`
		} `yaml:"Function"`
	} `yaml:"Globals"`
	Resources map[string]samResource `yaml:"Resources"`
}

// writeSAMTemplate emits template.yml with one function per handler
// entrypoint, pointing SAM at the compiled handler code.
func (p *Plugin) writeSAMTemplate(project *session.Project) error {
	tmpl := samTemplate{
		FormatVersion: "2010-09-09",
		Transform:     "AWS::Serverless-2016-10-31",
		Description:   fmt.Sprintf("AWS SAM template for the %s resource type", project.Settings.TypeName),
		Resources: map[string]samResource{
			MainHandlerFunction: {
				Type: "AWS::Serverless::Function",
				Properties: samFunction{
					Handler: project.Settings.Entrypoint,
					Runtime: project.Settings.Runtime,
					CodeUri: codeURI,
				},
			},
			"TestEntrypoint": {
				Type: "AWS::Serverless::Function",
				Properties: samFunction{
					Handler: project.Settings.TestEntrypoint,
					Runtime: project.Settings.Runtime,
					CodeUri: codeURI,
				},
			},
		},
	}
	tmpl.Globals.Function.Timeout = 180
	tmpl.Globals.Function.MemorySize = 256

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&tmpl); err != nil {
		return fmt.Errorf("failed to encode template.yml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode template.yml: %w", err)
	}

	return safeWrite(filepath.Join(project.Root, "template.yml"), buf.Bytes())
}
