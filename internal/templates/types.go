// Package templates renders the files of a generated Express project.
package templates

import "github.com/expressmod/cli/internal/naming"

// Kind identifies one generated artifact.
type Kind string

// Artifact kinds.
const (
	KindManifest     Kind = "manifest"
	KindEntryPoint   Kind = "entry-point"
	KindDatabase     Kind = "database"
	KindErrorHandler Kind = "error-handler"
	KindEnv          Kind = "env"
	KindGitignore    Kind = "gitignore"
	KindModel        Kind = "model"
	KindController   Kind = "controller"
	KindRoutes       Kind = "routes"
)

// Scope says whether an artifact belongs to the project or to a module.
type Scope int

const (
	// ProjectScope artifacts are written once by create.
	ProjectScope Scope = iota

	// ModuleScope artifacts are written by add, once per module.
	ModuleScope
)

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName is the project name as typed (create only).
	ProjectName string

	// DBName is the default database name derived from ProjectName.
	DBName string

	// Module holds the module name variants (add only).
	Module naming.Names
}

// TemplateFile is a rendered artifact ready to be written.
type TemplateFile struct {
	// Kind is the artifact kind.
	Kind Kind

	// TargetPath is the slash-separated path relative to the project root.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// NewProjectData returns template data for a project.
func NewProjectData(projectName string) TemplateData {
	return TemplateData{
		ProjectName: projectName,
		DBName:      projectName + DBNameSuffix,
	}
}

// NewModuleData returns template data for a module.
func NewModuleData(moduleName string) TemplateData {
	return TemplateData{Module: naming.Derive(moduleName)}
}
