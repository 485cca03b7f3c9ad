package templates

import (
	"fmt"
	"path"
	"strings"
)

// Well-known project paths, slash-separated and relative to the project root.
const (
	ManifestFile   = "package.json"
	EntryPointFile = "src/index.js"
	ModulesDir     = "src/modules"

	// DBNameSuffix is appended to the project name for the default database name.
	DBNameSuffix = "_db"
)

// Artifact describes how one generated file is produced.
type Artifact struct {
	// Kind is the artifact identifier.
	Kind Kind

	// Scope is ProjectScope or ModuleScope.
	Scope Scope

	// Source is the template path in the embedded filesystem.
	// Empty for artifacts built from structured data.
	Source string

	// Description is shown next to the file in the created-files tree.
	Description string

	target func(TemplateData) string
}

// Target returns the slash-separated output path for data.
func (a Artifact) Target(data TemplateData) string {
	return a.target(data)
}

func fixed(p string) func(TemplateData) string {
	return func(TemplateData) string { return p }
}

func modulePath(suffix string) func(TemplateData) string {
	return func(d TemplateData) string {
		name := d.Module.Name
		return path.Join(ModulesDir, name, name+suffix)
	}
}

// artifacts is the ordered registry of generated files.
var artifacts = []Artifact{
	{
		Kind:        KindManifest,
		Scope:       ProjectScope,
		Description: "Package manifest",
		target:      fixed(ManifestFile),
	},
	{
		Kind:        KindEntryPoint,
		Scope:       ProjectScope,
		Source:      "files/project/index.js.tmpl",
		Description: "Server entry point",
		target:      fixed(EntryPointFile),
	},
	{
		Kind:        KindDatabase,
		Scope:       ProjectScope,
		Source:      "files/project/db.js.tmpl",
		Description: "MongoDB connection",
		target:      fixed("src/config/db.js"),
	},
	{
		Kind:        KindErrorHandler,
		Scope:       ProjectScope,
		Source:      "files/project/errorHandler.js.tmpl",
		Description: "Error handling middleware",
		target:      fixed("src/middleware/errorHandler.js"),
	},
	{
		Kind:        KindEnv,
		Scope:       ProjectScope,
		Source:      "files/project/env.tmpl",
		Description: "Environment defaults",
		target:      fixed(".env"),
	},
	{
		Kind:        KindGitignore,
		Scope:       ProjectScope,
		Source:      "files/project/gitignore.tmpl",
		Description: "Git ignore rules",
		target:      fixed(".gitignore"),
	},
	{
		Kind:        KindModel,
		Scope:       ModuleScope,
		Source:      "files/module/model.js.tmpl",
		Description: "Mongoose schema and model",
		target:      modulePath(".model.js"),
	},
	{
		Kind:        KindController,
		Scope:       ModuleScope,
		Source:      "files/module/controller.js.tmpl",
		Description: "Request handlers",
		target:      modulePath(".controller.js"),
	},
	{
		Kind:        KindRoutes,
		Scope:       ModuleScope,
		Source:      "files/module/routes.js.tmpl",
		Description: "Express routes",
		target:      modulePath(".routes.js"),
	},
}

// Get returns the artifact for kind.
func Get(kind Kind) (Artifact, error) {
	for _, a := range artifacts {
		if a.Kind == kind {
			return a, nil
		}
	}
	return Artifact{}, fmt.Errorf("unknown artifact %q", kind)
}

// List returns the artifacts of a scope in generation order.
func List(scope Scope) []Artifact {
	var out []Artifact
	for _, a := range artifacts {
		if a.Scope == scope {
			out = append(out, a)
		}
	}
	return out
}

// Describe returns the tree description for a generated path, or "".
func Describe(targetPath string) string {
	base := path.Base(targetPath)
	for _, a := range artifacts {
		if a.Scope == ProjectScope {
			if a.Target(TemplateData{}) == targetPath {
				return a.Description
			}
			continue
		}
		// Module targets end in a fixed suffix after the module name.
		suffix := path.Base(a.Target(TemplateData{}))
		if len(base) > len(suffix) && strings.HasSuffix(base, suffix) {
			return a.Description
		}
	}
	return ""
}
