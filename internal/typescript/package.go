// SPDX-License-Identifier: Apache-2.0

package typescript

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/session"
)

// ErrBuildFailed indicates the downstream npm/sam build did not complete.
var ErrBuildFailed = errors.New("local build failed")

// Package builds the project and writes the provider package to w: an inner
// ResourceProvider.zip holding the built handler function, with the handler
// sources written beside it. With dryRun the npm/sam build is skipped and the
// archive is assembled from the existing build output.
func (p *Plugin) Package(ctx context.Context, project *session.Project, w io.Writer, dryRun bool) error {
	log.Debug("package started", "type", project.Settings.TypeName, "dryRun", dryRun)

	buildPath := filepath.Join(project.Root, "build")

	if !dryRun {
		removeBuildArtifacts(buildPath)
		if err := p.build(ctx, project); err != nil {
			return err
		}
	}

	inner, err := zipDirectory(filepath.Join(buildPath, MainHandlerFunction))
	if err != nil {
		return fmt.Errorf("failed to package handler function: %w", err)
	}

	outer := zip.NewWriter(w)
	f, err := outer.Create("ResourceProvider.zip")
	if err != nil {
		return err
	}
	if _, err := f.Write(inner); err != nil {
		return err
	}

	srcDir := filepath.Join(project.Root, "src")
	if err := writeRelative(outer, srcDir, project.Root); err != nil {
		return fmt.Errorf("failed to package handler sources: %w", err)
	}

	if err := outer.Close(); err != nil {
		return err
	}

	log.Debug("package complete")
	return nil
}

// BuildCommand returns the shell command used to build the project. An
// explicit buildCommand setting overrides the default npm/sam pipeline;
// docker packaging adds sam's container flag.
func (p *Plugin) BuildCommand(project *session.Project) string {
	command := fmt.Sprintf("npm install --optional && sam build --debug --build-dir %s",
		filepath.Join(project.Root, "build"))
	if override := project.Settings.Settings.BuildCommand; override != "" {
		command = override
	}
	if project.Settings.Settings.UseDocker {
		command += " --use-container"
	}
	return command + " " + MainHandlerFunction
}

func (p *Plugin) build(ctx context.Context, project *session.Project) error {
	command := p.BuildCommand(project)
	log.Warn("Starting build.")
	log.Debug("dependencies build started", "root", project.Root, "command", command)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "/bin/bash", "-c", command) //nolint:gosec
	cmd.Dir = project.Root
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Debug("build output", "stdout", stdout.String(), "stderr", stderr.String())
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	log.Debug("build output", "stdout", stdout.String(), "stderr", stderr.String())
	log.Debug("dependencies build finished")
	return nil
}

func removeBuildArtifacts(buildPath string) {
	if err := os.RemoveAll(buildPath); err != nil {
		log.Debug("failed to remove build artifacts", "path", buildPath, "error", err)
	}
}

// zipDirectory zips every file under root, with paths relative to root.
func zipDirectory(root string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if err := writeRelative(zw, root, root); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeRelative writes every file under srcDir into zw, naming entries
// relative to baseDir with forward slashes.
func writeRelative(zw *zip.Writer, srcDir, baseDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relative, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(relative))
		if err != nil {
			return err
		}

		f, err := os.Open(path) //nolint:gosec // path walked from project root
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck

		_, err = io.Copy(w, f)
		return err
	})
}
