package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imamik/rnsetup/internal/project"
)

// Preset answers the interactive questions ahead of time.
type Preset struct {
	// Name is optional; when empty the name is still prompted for.
	Name string `yaml:"name"`

	// PackageManager overrides the --package-manager flag when set.
	PackageManager string `yaml:"packageManager"`

	Features PresetFeatures `yaml:"features"`
}

// PresetFeatures mirrors the add-on questions. Missing keys mean "No".
type PresetFeatures struct {
	Navigation          bool `yaml:"navigation"`
	StackNavigator      bool `yaml:"stackNavigator"`
	BottomTabsNavigator bool `yaml:"bottomTabsNavigator"`
	DrawerNavigator     bool `yaml:"drawerNavigator"`
	HTTPClient          bool `yaml:"httpClient"`
	FolderStructure     bool `yaml:"folderStructure"`
}

// LoadPreset reads and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	// #nosec G304 - path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset decodes preset YAML. Unknown keys are rejected.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	if p.Name != "" {
		if err := project.ValidateName(p.Name); err != nil {
			return nil, fmt.Errorf("preset name %q: %w", p.Name, err)
		}
	}
	if p.PackageManager != "" {
		if _, err := LookupPackageManager(p.PackageManager); err != nil {
			return nil, fmt.Errorf("preset: %w", err)
		}
	}
	return &p, nil
}

// Apply copies the preset's feature answers onto req. The name is left alone.
func (p *Preset) Apply(req *project.Request) {
	req.Navigation = p.Features.Navigation
	req.StackNavigator = p.Features.StackNavigator
	req.BottomTabsNavigator = p.Features.BottomTabsNavigator
	req.DrawerNavigator = p.Features.DrawerNavigator
	req.HTTPClient = p.Features.HTTPClient
	req.FolderStructure = p.Features.FolderStructure
}
