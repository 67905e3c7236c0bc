package config

import (
	"fmt"
	"sort"
	"strings"
)

// PackageManager describes how to drive one JavaScript package manager.
type PackageManager struct {
	// Name is the binary name.
	Name string

	// AddArgs precede the package list when installing dependencies.
	AddArgs []string

	// RunPrefix is how a package.json script is invoked, e.g. "npm run".
	RunPrefix string
}

// Supported package managers.
var PackageManagers = map[string]PackageManager{
	"npm":  {Name: "npm", AddArgs: []string{"install"}, RunPrefix: "npm run"},
	"yarn": {Name: "yarn", AddArgs: []string{"add"}, RunPrefix: "yarn"},
	"pnpm": {Name: "pnpm", AddArgs: []string{"add"}, RunPrefix: "pnpm"},
	"bun":  {Name: "bun", AddArgs: []string{"add"}, RunPrefix: "bun run"},
}

// DefaultPackageManager is used when none is configured.
const DefaultPackageManager = "npm"

// LookupPackageManager returns the package manager called name.
func LookupPackageManager(name string) (PackageManager, error) {
	pm, ok := PackageManagers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PackageManager{}, fmt.Errorf("%w %q (supported: %s)", ErrUnknownPackageManager, name, strings.Join(PackageManagerNames(), ", "))
	}
	return pm, nil
}

// PackageManagerNames returns the supported names, sorted.
func PackageManagerNames() []string {
	names := make([]string, 0, len(PackageManagers))
	for n := range PackageManagers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// InstallArgs returns the argument list that installs packages.
func (pm PackageManager) InstallArgs(packages []string) []string {
	args := make([]string, 0, len(pm.AddArgs)+len(packages))
	args = append(args, pm.AddArgs...)
	return append(args, packages...)
}

// RunScript returns the command line that runs a package.json script.
func (pm PackageManager) RunScript(script string) string {
	return pm.RunPrefix + " " + script
}
