package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"
)

//go:embed files/project/* files/module/*
var templateFS embed.FS

// Renderer maps template data to generated file content.
// Rendering is pure: it never touches the filesystem.
type Renderer struct {
	fsys fs.FS
}

// NewRenderer creates a renderer backed by the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{fsys: templateFS}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(source string, data TemplateData) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, source)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", source, err)
	}

	tmpl, err := template.New(source).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", source, err)
	}

	return buf.Bytes(), nil
}

// Render renders one artifact.
func (r *Renderer) Render(kind Kind, data TemplateData) (TemplateFile, error) {
	a, err := Get(kind)
	if err != nil {
		return TemplateFile{}, err
	}

	var content []byte
	if kind == KindManifest {
		content, err = NewPackageJSON(data.ProjectName).Marshal()
	} else {
		content, err = r.RenderFile(a.Source, data)
	}
	if err != nil {
		return TemplateFile{}, fmt.Errorf("rendering %s: %w", kind, err)
	}

	return TemplateFile{
		Kind:       kind,
		TargetPath: a.Target(data),
		Content:    content,
	}, nil
}

// RenderProject renders every project-scoped artifact for projectName.
func (r *Renderer) RenderProject(projectName string) ([]TemplateFile, error) {
	return r.renderScope(ProjectScope, NewProjectData(projectName))
}

// RenderModule renders the model, controller and routes files for moduleName.
func (r *Renderer) RenderModule(moduleName string) ([]TemplateFile, error) {
	return r.renderScope(ModuleScope, NewModuleData(moduleName))
}

func (r *Renderer) renderScope(scope Scope, data TemplateData) ([]TemplateFile, error) {
	list := List(scope)
	files := make([]TemplateFile, 0, len(list))
	for _, a := range list {
		f, err := r.Render(a.Kind, data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
