package project

import (
	"fmt"
	"path/filepath"

	"github.com/jammission/jamsetup/internal/filesystem"
)

// Project locates the site checkout on disk. The root is the directory
// holding the dependency manifest; manage.py is expected alongside it.
type Project struct {
	Root         string
	ManifestPath string
	ManagePath   string
}

// Discover walks up from the current directory looking for the dependency
// manifest, mirroring how developers run the tool from anywhere inside the
// checkout.
func Discover(fsys filesystem.FileSystem, manifestName, manageName string) (*Project, error) {
	cwd, err := fsys.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		manifestPath := filepath.Join(dir, manifestName)
		if fsys.Exists(manifestPath) {
			return &Project{
				Root:         dir,
				ManifestPath: manifestPath,
				ManagePath:   filepath.Join(dir, manageName),
			}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("project root not found: no %s in %s or any parent directory", manifestName, cwd)
		}
		dir = parent
	}
}

// HasManage reports whether the project's manage.py entry point exists.
func (p *Project) HasManage(fsys filesystem.FileSystem) bool {
	return fsys.Exists(p.ManagePath)
}
