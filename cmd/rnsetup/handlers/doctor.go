package handlers

import (
	"context"
	"runtime"

	"github.com/imamik/rnsetup/internal/config"
	"github.com/imamik/rnsetup/internal/util/prerequisites"
)

// checkAllTools checks required and optional tools; replaced in tests.
var checkAllTools = prerequisites.CheckAll

// Doctor reports which of the external tools a run depends on are installed.
// It fails only when a required tool is missing.
func Doctor(_ context.Context, packageManager string) error {
	pm, err := config.LookupPackageManager(packageManager)
	if err != nil {
		return err
	}

	out := newPrinter()
	results := checkAllTools(pm.Name, runtime.GOOS)

	out.Banner("Checking tools")
	for _, r := range results.Results {
		switch {
		case r.Found:
			out.Success("%-6s %s", r.Tool.Name, versionOrPath(r))
		case r.Tool.Required:
			out.Fail("%-6s missing (required) - %s", r.Tool.Name, r.Tool.InstallURL)
		default:
			out.Warn("[??] %-6s missing (optional) - %s", r.Tool.Name, r.Tool.Description)
		}
	}

	return results.Error()
}

func versionOrPath(r prerequisites.CheckResult) string {
	if r.Version != "" {
		return r.Version
	}
	return r.Path
}
