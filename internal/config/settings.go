package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultGenerator is the npx package that creates the base project.
const DefaultGenerator = "@react-native-community/cli@latest"

// Settings controls where and how a project is provisioned.
type Settings struct {
	// ParentDir is the directory the project directory is created in.
	ParentDir string

	// Generator is the npx package invoked as "npx <Generator> init <name>".
	Generator string

	// PackageManager installs the add-on dependencies.
	PackageManager PackageManager
}

// NewSettings validates the raw flag values and returns Settings.
func NewSettings(parentDir, generator, packageManager string) (*Settings, error) {
	if strings.TrimSpace(generator) == "" {
		return nil, ErrGeneratorRequired
	}
	if packageManager == "" {
		packageManager = DefaultPackageManager
	}
	pm, err := LookupPackageManager(packageManager)
	if err != nil {
		return nil, err
	}
	if parentDir == "" {
		parentDir = "."
	}
	return &Settings{
		ParentDir:      filepath.Clean(parentDir),
		Generator:      generator,
		PackageManager: pm,
	}, nil
}

// ProjectDir returns the directory the generator creates for name.
func (s *Settings) ProjectDir(name string) string {
	return filepath.Join(s.ParentDir, name)
}

// String implements fmt.Stringer.
func (s *Settings) String() string {
	return fmt.Sprintf("dir=%s generator=%s pm=%s", s.ParentDir, s.Generator, s.PackageManager.Name)
}
