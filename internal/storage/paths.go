package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultDirName = "app_data"
	imagesDirName  = "images"
	dbFileName     = "app.db"
)

// Paths derives every on-disk location from a single data root.
type Paths struct {
	root string
}

// NewPaths returns the layout rooted at root.
func NewPaths(root string) Paths {
	return Paths{root: filepath.Clean(root)}
}

func (p Paths) Root() string { return p.root }

func (p Paths) ImagesDir() string { return filepath.Join(p.root, imagesDirName) }

func (p Paths) DBPath() string { return filepath.Join(p.root, dbFileName) }

// DefaultRoot returns app_data next to the running executable.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), defaultDirName), nil
}
