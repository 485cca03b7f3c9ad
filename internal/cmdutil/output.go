package cmdutil

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/expressmod/cli/internal/installer"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/scaffold"
)

// PrintCreated prints the generated file tree under rootName.
func PrintCreated(rootDir string, files map[string]string) {
	output.Print(output.RenderFileTree(filepath.Base(rootDir), files))
}

// PrintFileLines prints one status line per path, sorted.
func PrintFileLines(paths []string, status string) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	for _, p := range sorted {
		output.Println(output.FormatFileLine(p, status))
	}
}

// PrintMarkdown renders and prints next-step instructions.
func PrintMarkdown(md string) {
	output.Print(output.RenderMarkdown(md))
}

// spinnerInstaller shows a spinner while a quiet install runs.
type spinnerInstaller struct {
	inst *installer.Installer
}

func (s spinnerInstaller) Install(ctx context.Context, dir string) error {
	return output.RunWithSpinner(ctx, func() error {
		return s.inst.Install(ctx, dir)
	}, output.WithTitle("Installing dependencies ("+s.inst.Command()+")..."))
}

// WrapInstaller adapts inst for the scaffold engine. Quiet installs get a
// spinner on a terminal; otherwise the package manager owns the terminal.
func WrapInstaller(inst *installer.Installer) scaffold.Installer {
	if inst.Quiet() {
		return spinnerInstaller{inst: inst}
	}
	return inst
}
