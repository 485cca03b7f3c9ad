package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/fsutil"
	"github.com/expressmod/cli/internal/naming"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/patch"
	"github.com/expressmod/cli/internal/project"
	"github.com/expressmod/cli/internal/templates"
)

// NotInProjectMessage is reported when add runs outside a project root.
const NotInProjectMessage = "Please run this command from the root of your Express project."

// AddOptions configures AddModule.
type AddOptions struct {
	// Name is the module name.
	Name string

	// Dir is the project root.
	Dir string
}

// AddResult describes an added module.
type AddResult struct {
	Root   string
	Module naming.Names

	// ModuleDir is the absolute directory the module files go into.
	ModuleDir string

	// Files maps slash-separated paths relative to Root to their descriptions.
	Files map[string]string

	// Patched lists the files edited in place.
	Patched []string

	// Failed is the relative path that could not be written or patched.
	// Files and Patched still list what was done before the failure.
	Failed string
}

// AddModule writes the model, controller and routes files for a module and
// registers its router in the entry point: the import line goes below the
// import marker, then the mount line below the mounting marker.
//
// Adding the same module twice overwrites its files and inserts the two
// lines again. Both markers are checked before anything is written.
func AddModule(opts AddOptions) (*AddResult, error) {
	if err := naming.Validate(opts.Name); err != nil {
		return nil, oerrors.NewUsageError(err.Error(), "Module names are used as a directory name and URL path, e.g. users.")
	}

	root, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	if !project.IsProject(root) {
		return nil, oerrors.NewNotFoundError(NotInProjectMessage, root,
			"Change into the directory that contains package.json.")
	}

	names := naming.Derive(opts.Name)
	entryPoint := project.EntryPointPath(root)
	importLine := templates.ImportStatement(names)
	mountLine := templates.MountStatement(names)

	if err := checkMarkers(entryPoint, importLine, mountLine); err != nil {
		return nil, err
	}

	files, err := templates.NewRenderer().RenderModule(opts.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering module: %w", err)
	}

	log := output.ProjectLogger(filepath.Base(root))
	log.Info(fmt.Sprintf("Adding new module: %s", names.Name))

	result := &AddResult{
		Root:      root,
		Module:    names,
		ModuleDir: project.ModuleDir(root, names.Name),
		Files:     make(map[string]string, len(files)),
	}

	for _, f := range files {
		if err := fsutil.WriteFile(filepath.Join(root, filepath.FromSlash(f.TargetPath)), f.Content); err != nil {
			result.Failed = f.TargetPath
			return result, err
		}
		log.Debug("created file", "path", f.TargetPath)
		result.Files[f.TargetPath] = templates.Describe(f.TargetPath)
	}

	if err := patch.Patch(entryPoint, templates.ImportMarker, importLine); err != nil {
		result.Failed = templates.EntryPointFile
		return result, markerError(err, entryPoint, importLine, mountLine)
	}
	if err := patch.Patch(entryPoint, templates.MountingMarker, mountLine); err != nil {
		result.Failed = templates.EntryPointFile
		return result, markerError(err, entryPoint, importLine, mountLine)
	}
	log.Debug("patched file", "path", templates.EntryPointFile)
	result.Patched = append(result.Patched, templates.EntryPointFile)

	return result, nil
}

// checkMarkers fails when the entry point is missing or lacks a marker.
func checkMarkers(entryPoint, importLine, mountLine string) error {
	content, err := os.ReadFile(entryPoint)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("%s is missing.", templates.EntryPointFile),
				entryPoint,
				"add registers routes in the entry point generated by create.",
			)
		}
		return fmt.Errorf("reading %s: %w", entryPoint, err)
	}

	for _, marker := range []string{templates.ImportMarker, templates.MountingMarker} {
		if !bytes.Contains(content, []byte(marker)) {
			return markerError(fmt.Errorf("%q: %w", marker, patch.ErrMarkerNotFound), entryPoint, importLine, mountLine)
		}
	}
	return nil
}

func markerError(err error, entryPoint, importLine, mountLine string) error {
	if !errors.Is(err, patch.ErrMarkerNotFound) {
		return err
	}
	return &oerrors.DetailError{
		Type:     "marker not found",
		Message:  fmt.Sprintf("%s must contain %s and %s.", templates.EntryPointFile, templates.ImportMarker, templates.MountingMarker),
		Location: entryPoint,
		Hint: fmt.Sprintf("Restore the marker comments, or register the module by hand:\n  %s\n  %s",
			importLine, mountLine),
		Cause: err,
	}
}
