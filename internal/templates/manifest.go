package templates

import (
	"encoding/json"
	"fmt"
)

// PackageJSON is the dependency manifest of a generated project.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// NewPackageJSON returns the manifest for projectName.
func NewPackageJSON(projectName string) PackageJSON {
	return PackageJSON{
		Name:        projectName,
		Version:     "1.0.0",
		Description: "Express application with MVC architecture",
		Main:        "src/index.js",
		Scripts: map[string]string{
			"start": "node src/index.js",
			"dev":   "nodemon src/index.js",
		},
		Dependencies: map[string]string{
			"express":  "^5.1.0",
			"mongoose": "^8.7.0",
			"dotenv":   "^17.2.3",
			"cors":     "^2.8.5",
			"helmet":   "^8.1.0",
		},
		DevDependencies: map[string]string{
			"nodemon": "^3.1.10",
		},
	}
}

// Marshal encodes the manifest as two-space indented JSON.
func (p PackageJSON) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling package.json: %w", err)
	}
	return data, nil
}
