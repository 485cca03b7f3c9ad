// Package scaffold generates Express projects and resource modules on disk.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/fsutil"
	"github.com/expressmod/cli/internal/naming"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/project"
	"github.com/expressmod/cli/internal/templates"
)

// Installer installs the dependencies of a generated project.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// CreateOptions configures CreateProject.
type CreateOptions struct {
	// Name is the project name; the project is created at Dir/Name.
	Name string

	// Dir is the directory the project is created in.
	Dir string

	// Installer runs after every file is written. Nil skips the step.
	Installer Installer
}

// CreateResult describes a generated project.
type CreateResult struct {
	// Root is the absolute project directory.
	Root string

	// Files maps slash-separated paths relative to Root to their descriptions.
	// Directories end in "/".
	Files map[string]string

	// Installed is true when the installer ran and succeeded.
	Installed bool
}

// CreateProject writes a new project into Dir/Name and then installs its
// dependencies. Nothing is written when the target already exists. Files
// written before a failure are left in place.
func CreateProject(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	if err := naming.Validate(opts.Name); err != nil {
		return nil, oerrors.NewUsageError(err.Error(), "Project names are used as a directory name, e.g. my-app.")
	}

	root, err := filepath.Abs(filepath.Join(opts.Dir, opts.Name))
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	exists, err := project.TargetExists(root)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}
	if exists {
		return nil, oerrors.NewExistsError(
			fmt.Sprintf("Directory %s already exists!", opts.Name),
			root,
			"Choose a different project name or remove the existing directory.",
		)
	}

	files, err := templates.NewRenderer().RenderProject(opts.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering project: %w", err)
	}

	log := output.ProjectLogger(opts.Name)
	log.Info(fmt.Sprintf("Creating a new Express project in %s", root))

	result := &CreateResult{
		Root:  root,
		Files: make(map[string]string, len(files)+1),
	}

	for _, f := range files {
		if err := fsutil.WriteFile(filepath.Join(root, filepath.FromSlash(f.TargetPath)), f.Content); err != nil {
			return result, err
		}
		log.Debug("created file", "path", f.TargetPath)
		result.Files[f.TargetPath] = templates.Describe(f.TargetPath)
	}

	if err := fsutil.EnsureDir(filepath.Join(root, filepath.FromSlash(templates.ModulesDir))); err != nil {
		return result, err
	}
	result.Files[templates.ModulesDir+"/"] = "Resource modules"

	if opts.Installer == nil {
		log.Debug("skipping dependency install")
		return result, nil
	}

	log.Info("Installing dependencies...")
	if err := opts.Installer.Install(ctx, root); err != nil {
		return result, oerrors.NewExternalError("Dependency installation failed. Generated files were kept.", root, err)
	}
	result.Installed = true

	return result, nil
}
