// Package config holds the runtime settings of a scaffolding run.
//
// Settings come from command-line flags and, optionally, a YAML preset file
// that answers the interactive questions ahead of time (see LoadPreset).
// The supported package managers and their command shapes are defined in
// PackageManagers.
package config
